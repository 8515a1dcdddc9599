package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/models"
)

// BookRepository handles database operations for books. Every read and
// mutation is scoped by owner: a lookup by both book id and user id must
// match exactly one row or the book is treated as not found.
type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

const bookColumns = `
	id, user_id, title, author, description, cover_image_url,
	language, isbn, publisher, status, metadata, created_at, updated_at
`

// CreateBook inserts a new book record. The caller provides the generated ID.
func (r *BookRepository) CreateBook(ctx context.Context, book *models.Book) error {
	if book.Title == "" {
		return fmt.Errorf("book title is required")
	}
	if _, err := uuid.Parse(book.ID); err != nil {
		return fmt.Errorf("invalid book ID format: %w", err)
	}
	if _, err := uuid.Parse(book.UserID); err != nil {
		return fmt.Errorf("invalid user ID format: %w", err)
	}
	if book.Status == "" {
		book.Status = models.BookStatusDraft
	}
	if book.Language == "" {
		book.Language = "ja"
	}

	metadata, err := marshalMetadata(book.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO books (
			id, user_id, title, author, description, cover_image_url,
			language, isbn, publisher, status, metadata, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err = r.db.ExecContext(ctx, query,
		book.ID, book.UserID, book.Title, book.Author, book.Description, book.CoverImageURL,
		book.Language, book.ISBN, book.Publisher, string(book.Status), metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// GetBookByIDForUser retrieves a book scoped by owner. A book that exists
// but belongs to someone else is indistinguishable from a missing one; both
// surface sql.ErrNoRows.
func (r *BookRepository) GetBookByIDForUser(ctx context.Context, bookID, userID string) (*models.Book, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, fmt.Errorf("invalid book ID format: %w", err)
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRowContext(ctx, query, bookID, userID)
	book, err := scanBook(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("book %s not found for user: %w", bookID, err)
		}
		return nil, fmt.Errorf("failed to get book by ID: %w", err)
	}
	return book, nil
}

// GetBooksByUserID retrieves all of a user's books, most recently updated
// first.
func (r *BookRepository) GetBooksByUserID(ctx context.Context, userID string) ([]models.Book, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books for user %s: %w", userID, err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, *book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

// UpdateBook updates a book's mutable fields, scoped by owner.
func (r *BookRepository) UpdateBook(ctx context.Context, book *models.Book) error {
	if _, err := uuid.Parse(book.ID); err != nil {
		return fmt.Errorf("invalid book ID format: %w", err)
	}
	if _, err := uuid.Parse(book.UserID); err != nil {
		return fmt.Errorf("invalid user ID format: %w", err)
	}
	if book.Title == "" {
		return fmt.Errorf("book title is required")
	}

	metadata, err := marshalMetadata(book.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE books
		SET title = $3, author = $4, description = $5, cover_image_url = $6,
		    language = $7, isbn = $8, publisher = $9, status = $10,
		    metadata = $11, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		book.ID, book.UserID, book.Title, book.Author, book.Description, book.CoverImageURL,
		book.Language, book.ISBN, book.Publisher, string(book.Status), metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to update book %s: %w", book.ID, err)
	}
	return requireRowAffected(result, "book", book.ID)
}

// DeleteBook removes a book and, via FK cascade, its chapters.
func (r *BookRepository) DeleteBook(ctx context.Context, bookID, userID string) error {
	if _, err := uuid.Parse(bookID); err != nil {
		return fmt.Errorf("invalid book ID format: %w", err)
	}
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("invalid user ID format: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1 AND user_id = $2`, bookID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete book %s: %w", bookID, err)
	}
	return requireRowAffected(result, "book", bookID)
}

func scanBook(scan func(dest ...any) error) (*models.Book, error) {
	var book models.Book
	var statusStr string
	var author, description, coverImageURL, isbn, publisher sql.NullString
	var metadataRaw []byte

	err := scan(
		&book.ID, &book.UserID, &book.Title, &author, &description, &coverImageURL,
		&book.Language, &isbn, &publisher, &statusStr, &metadataRaw,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	book.Author = author.String
	book.Description = description.String
	book.CoverImageURL = coverImageURL.String
	book.ISBN = isbn.String
	book.Publisher = publisher.String
	book.Status = models.BookStatus(statusStr)

	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &book.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode book metadata: %w", err)
		}
	}
	return &book, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return []byte(`{}`), nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	return raw, nil
}

// requireRowAffected converts a zero-row mutation into sql.ErrNoRows so the
// handler layer maps it to a 404.
func requireRowAffected(result sql.Result, entity, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for %s %s: %w", entity, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %s not found: %w", entity, id, sql.ErrNoRows)
	}
	return nil
}

// touchBookUpdatedAt bumps the parent book's updated_at after a chapter
// mutation, keeping list ordering by recency correct. Non-fatal: the
// chapter write already succeeded.
func touchBookUpdatedAt(ctx context.Context, db *sql.DB, bookID string) {
	if _, err := db.ExecContext(ctx, `UPDATE books SET updated_at = $2 WHERE id = $1`, bookID, time.Now().UTC()); err != nil {
		log.Printf("WARN (BookRepository): Failed to touch updated_at for book %s: %v", bookID, err)
	}
}
