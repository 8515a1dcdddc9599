package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/models"
)

// ExportHistoryRepository records completed exports per book.
type ExportHistoryRepository struct {
	db *sql.DB
}

func NewExportHistoryRepository(db *sql.DB) *ExportHistoryRepository {
	return &ExportHistoryRepository{db: db}
}

// CreateExportRecord inserts one export history row.
func (r *ExportHistoryRepository) CreateExportRecord(ctx context.Context, record *models.ExportRecord) error {
	if _, err := uuid.Parse(record.ID); err != nil {
		return fmt.Errorf("invalid export record ID format: %w", err)
	}
	if _, err := uuid.Parse(record.BookID); err != nil {
		return fmt.Errorf("invalid book ID format: %w", err)
	}
	if _, err := uuid.Parse(record.UserID); err != nil {
		return fmt.Errorf("invalid user ID format: %w", err)
	}

	settings, err := marshalMetadata(record.Settings)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO export_history (id, book_id, user_id, format, file_size, settings, exported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		record.ID, record.BookID, record.UserID, string(record.Format),
		record.FileSize, settings, record.ExportedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert export record: %w", err)
	}
	return nil
}

// GetExportRecordsByBookID retrieves a book's export history, newest first,
// scoped by owner.
func (r *ExportHistoryRepository) GetExportRecordsByBookID(ctx context.Context, bookID, userID string) ([]models.ExportRecord, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, fmt.Errorf("invalid book ID format: %w", err)
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	query := `
		SELECT id, book_id, user_id, format, file_size, settings, exported_at
		FROM export_history
		WHERE book_id = $1 AND user_id = $2
		ORDER BY exported_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, bookID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query export history for book %s: %w", bookID, err)
	}
	defer rows.Close()

	var records []models.ExportRecord
	for rows.Next() {
		var record models.ExportRecord
		var formatStr string
		var fileSize sql.NullInt64
		var settingsRaw []byte

		if err := rows.Scan(
			&record.ID, &record.BookID, &record.UserID, &formatStr,
			&fileSize, &settingsRaw, &record.ExportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export record row: %w", err)
		}

		record.Format = models.ExportFormat(formatStr)
		record.FileSize = int(fileSize.Int64)
		if len(settingsRaw) > 0 {
			if err := json.Unmarshal(settingsRaw, &record.Settings); err != nil {
				return nil, fmt.Errorf("failed to decode export record settings: %w", err)
			}
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating export record rows: %w", err)
	}

	if records == nil {
		records = []models.ExportRecord{}
	}
	return records, nil
}
