package models

import "time"

// BookStatus defines the lifecycle states of a Book.
type BookStatus string

const (
	BookStatusDraft     BookStatus = "draft"
	BookStatusPublished BookStatus = "published"
	BookStatusArchived  BookStatus = "archived"
)

// IsValidBookStatus reports whether s names a known lifecycle state and
// returns the typed value if so.
func IsValidBookStatus(s string) (BookStatus, bool) {
	switch BookStatus(s) {
	case BookStatusDraft, BookStatusPublished, BookStatusArchived:
		return BookStatus(s), true
	}
	return "", false
}

type Book struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	Title         string         `json:"title"`
	Author        string         `json:"author,omitempty"`
	Description   string         `json:"description,omitempty"`
	CoverImageURL string         `json:"cover_image_url,omitempty"`
	Language      string         `json:"language"`
	ISBN          string         `json:"isbn,omitempty"`
	Publisher     string         `json:"publisher,omitempty"`
	Status        BookStatus     `json:"status"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
