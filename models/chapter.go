package models

import "time"

// Chapter is one unit of a book's content. Content is a pointer because a
// chapter can exist before anything has been written for it. The ordered
// sequence of a book's chapters sorted by OrderIndex ascending is the
// canonical reading order used by every export.
type Chapter struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	Title      string    `json:"title"`
	Content    *string   `json:"content"`
	OrderIndex int       `json:"order_index"`
	WordCount  int       `json:"word_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ContentOrEmpty returns the chapter body, or "" when nothing has been
// written yet.
func (c *Chapter) ContentOrEmpty() string {
	if c.Content == nil {
		return ""
	}
	return *c.Content
}

// AutosaveDraft is the editor's periodically saved working copy of a
// chapter, kept separately from the chapter row itself.
type AutosaveDraft struct {
	ID        string    `json:"id"`
	ChapterID string    `json:"chapter_id"`
	Content   *string   `json:"content"`
	SavedAt   time.Time `json:"saved_at"`
}
