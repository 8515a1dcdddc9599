package datastore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/models"
)

// ChapterRepository handles database operations for chapters and the
// editor's autosave drafts. Chapter reads used by exports always come back
// in order_index ascending order, the canonical reading order.
type ChapterRepository struct {
	db *sql.DB
}

func NewChapterRepository(db *sql.DB) *ChapterRepository {
	return &ChapterRepository{db: db}
}

const chapterColumns = `
	id, book_id, title, content, order_index, word_count, created_at, updated_at
`

// CreateChapter inserts a new chapter record.
func (r *ChapterRepository) CreateChapter(ctx context.Context, chapter *models.Chapter) error {
	if chapter.Title == "" {
		return fmt.Errorf("chapter title is required")
	}
	if _, err := uuid.Parse(chapter.ID); err != nil {
		return fmt.Errorf("invalid chapter ID format: %w", err)
	}
	if _, err := uuid.Parse(chapter.BookID); err != nil {
		return fmt.Errorf("invalid book ID format: %w", err)
	}

	query := `
		INSERT INTO chapters (id, book_id, title, content, order_index, word_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		chapter.ID, chapter.BookID, chapter.Title, chapter.Content, chapter.OrderIndex, chapter.WordCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chapter: %w", err)
	}

	touchBookUpdatedAt(ctx, r.db, chapter.BookID)
	return nil
}

// GetChapterByID retrieves a single chapter.
func (r *ChapterRepository) GetChapterByID(ctx context.Context, chapterID string) (*models.Chapter, error) {
	if _, err := uuid.Parse(chapterID); err != nil {
		return nil, fmt.Errorf("invalid chapter ID format: %w", err)
	}

	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, chapterID)
	chapter, err := scanChapter(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chapter %s not found: %w", chapterID, err)
		}
		return nil, fmt.Errorf("failed to get chapter by ID: %w", err)
	}
	return chapter, nil
}

// GetChapterByIDForUser retrieves a chapter only when its parent book is
// owned by userID.
func (r *ChapterRepository) GetChapterByIDForUser(ctx context.Context, chapterID, userID string) (*models.Chapter, error) {
	if _, err := uuid.Parse(chapterID); err != nil {
		return nil, fmt.Errorf("invalid chapter ID format: %w", err)
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	query := `
		SELECT c.id, c.book_id, c.title, c.content, c.order_index, c.word_count, c.created_at, c.updated_at
		FROM chapters c
		JOIN books b ON c.book_id = b.id
		WHERE c.id = $1 AND b.user_id = $2
	`
	row := r.db.QueryRowContext(ctx, query, chapterID, userID)
	chapter, err := scanChapter(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chapter %s not found for user: %w", chapterID, err)
		}
		return nil, fmt.Errorf("failed to get chapter for user: %w", err)
	}
	return chapter, nil
}

// GetChaptersByBookID retrieves a book's chapters ordered by order_index
// ascending.
func (r *ChapterRepository) GetChaptersByBookID(ctx context.Context, bookID string) ([]models.Chapter, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, fmt.Errorf("invalid book ID format: %w", err)
	}

	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE book_id = $1 ORDER BY order_index ASC`
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters for book %s: %w", bookID, err)
	}
	defer rows.Close()

	var chapters []models.Chapter
	for rows.Next() {
		chapter, err := scanChapter(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chapter row: %w", err)
		}
		chapters = append(chapters, *chapter)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chapter rows: %w", err)
	}

	if chapters == nil {
		chapters = []models.Chapter{}
	}
	return chapters, nil
}

// UpdateChapter updates a chapter's title, content, ordering, and derived
// word count.
func (r *ChapterRepository) UpdateChapter(ctx context.Context, chapter *models.Chapter) error {
	if _, err := uuid.Parse(chapter.ID); err != nil {
		return fmt.Errorf("invalid chapter ID format: %w", err)
	}
	if chapter.Title == "" {
		return fmt.Errorf("chapter title is required")
	}

	query := `
		UPDATE chapters
		SET title = $2, content = $3, order_index = $4, word_count = $5, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		chapter.ID, chapter.Title, chapter.Content, chapter.OrderIndex, chapter.WordCount,
	)
	if err != nil {
		return fmt.Errorf("failed to update chapter %s: %w", chapter.ID, err)
	}
	if err := requireRowAffected(result, "chapter", chapter.ID); err != nil {
		return err
	}

	touchBookUpdatedAt(ctx, r.db, chapter.BookID)
	return nil
}

// DeleteChapter removes a chapter.
func (r *ChapterRepository) DeleteChapter(ctx context.Context, chapterID string) error {
	if _, err := uuid.Parse(chapterID); err != nil {
		return fmt.Errorf("invalid chapter ID format: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = $1`, chapterID)
	if err != nil {
		return fmt.Errorf("failed to delete chapter %s: %w", chapterID, err)
	}
	return requireRowAffected(result, "chapter", chapterID)
}

// UpsertAutosaveDraft stores the editor's working copy of a chapter,
// replacing any previous draft for the same chapter.
func (r *ChapterRepository) UpsertAutosaveDraft(ctx context.Context, draft *models.AutosaveDraft) error {
	if _, err := uuid.Parse(draft.ID); err != nil {
		return fmt.Errorf("invalid draft ID format: %w", err)
	}
	if _, err := uuid.Parse(draft.ChapterID); err != nil {
		return fmt.Errorf("invalid chapter ID format: %w", err)
	}

	query := `
		INSERT INTO autosave_drafts (id, chapter_id, content, saved_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (chapter_id) DO UPDATE SET content = EXCLUDED.content, saved_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, draft.ID, draft.ChapterID, draft.Content); err != nil {
		return fmt.Errorf("failed to upsert autosave draft for chapter %s: %w", draft.ChapterID, err)
	}
	return nil
}

func scanChapter(scan func(dest ...any) error) (*models.Chapter, error) {
	var chapter models.Chapter
	var content sql.NullString

	err := scan(
		&chapter.ID, &chapter.BookID, &chapter.Title, &content,
		&chapter.OrderIndex, &chapter.WordCount, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if content.Valid {
		chapter.Content = &content.String
	}
	return &chapter, nil
}
