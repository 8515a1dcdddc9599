package datastore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/models"
)

// ProfileRepository handles database operations for user profiles.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreateProfile returns the user's profile, creating an empty row on
// first access. The profile id is the authenticated user id.
func (r *ProfileRepository) GetOrCreateProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	query := `
		INSERT INTO profiles (id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING id, username, full_name, avatar_url, bio, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, query, userID)
	profile, err := scanProfile(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create profile %s: %w", userID, err)
	}
	return profile, nil
}

// UpdateProfile updates the user's profile fields.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if _, err := uuid.Parse(profile.ID); err != nil {
		return fmt.Errorf("invalid profile ID format: %w", err)
	}

	query := `
		UPDATE profiles
		SET username = $2, full_name = $3, avatar_url = $4, bio = $5, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Username, profile.FullName, profile.AvatarURL, profile.Bio,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", profile.ID, err)
	}
	return requireRowAffected(result, "profile", profile.ID)
}

func scanProfile(scan func(dest ...any) error) (*models.Profile, error) {
	var profile models.Profile
	var username, fullName, avatarURL, bio sql.NullString

	err := scan(&profile.ID, &username, &fullName, &avatarURL, &bio, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}

	profile.Username = username.String
	profile.FullName = fullName.String
	profile.AvatarURL = avatarURL.String
	profile.Bio = bio.String
	return &profile, nil
}
