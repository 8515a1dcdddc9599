package models

import "time"

// ExportFormat defines the set of output artifacts an export can produce.
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatJPEG ExportFormat = "jpeg"
	ExportFormatEPUB ExportFormat = "epub"
)

// IsValidExportFormat reports whether s names a supported output format and
// returns the typed value if so.
func IsValidExportFormat(s string) (ExportFormat, bool) {
	switch ExportFormat(s) {
	case ExportFormatPDF, ExportFormatJPEG, ExportFormatEPUB:
		return ExportFormat(s), true
	}
	return "", false
}

// ExportRecord is one row of a book's export history.
type ExportRecord struct {
	ID         string         `json:"id"`
	BookID     string         `json:"book_id"`
	UserID     string         `json:"user_id"`
	Format     ExportFormat   `json:"format"`
	FileSize   int            `json:"file_size,omitempty"`
	Settings   map[string]any `json:"settings,omitempty"`
	ExportedAt time.Time      `json:"exported_at"`
}
