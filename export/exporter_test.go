package export

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/templates"
)

type fakeBookStore struct {
	book *models.Book
}

func (s *fakeBookStore) GetBookByIDForUser(ctx context.Context, bookID, userID string) (*models.Book, error) {
	if s.book == nil || s.book.ID != bookID || s.book.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return s.book, nil
}

type fakeChapterStore struct {
	chapters []models.Chapter
}

func (s *fakeChapterStore) GetChaptersByBookID(ctx context.Context, bookID string) ([]models.Chapter, error) {
	return s.chapters, nil
}

type fakeHistoryStore struct {
	records []models.ExportRecord
	err     error
}

func (s *fakeHistoryStore) CreateExportRecord(ctx context.Context, record *models.ExportRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, *record)
	return nil
}

func newTestExporter(books *fakeBookStore, chapters *fakeChapterStore, history *fakeHistoryStore) *Exporter {
	registry := templates.NewRegistry()
	sanitizer := NewSanitizer()
	return NewExporter(
		books,
		chapters,
		history,
		registry,
		NewAssembler(registry, sanitizer),
		NewRenderer(),
		NewEpubPackager(sanitizer),
	)
}

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()
	content := "<h2>本文</h2><p>内容です。</p>"
	book := &models.Book{ID: "b1", UserID: "u1", Title: "電子書籍"}
	chapters := []models.Chapter{
		{ID: "c2", BookID: "b1", Title: "第二", Content: &content, OrderIndex: 2},
		{ID: "c1", BookID: "b1", Title: "第一", Content: &content, OrderIndex: 1},
	}

	t.Run("Unknown format is rejected before any work", func(t *testing.T) {
		ex := newTestExporter(&fakeBookStore{book: book}, &fakeChapterStore{chapters: chapters}, &fakeHistoryStore{})

		_, err := ex.Export(ctx, "b1", "u1", Options{Format: "docx"})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("Missing book yields ErrBookNotFound", func(t *testing.T) {
		ex := newTestExporter(&fakeBookStore{}, &fakeChapterStore{}, &fakeHistoryStore{})

		_, err := ex.Export(ctx, "b1", "u1", Options{Format: models.ExportFormatEPUB})
		if !errors.Is(err, ErrBookNotFound) {
			t.Errorf("Expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("Another user's book yields ErrBookNotFound", func(t *testing.T) {
		ex := newTestExporter(&fakeBookStore{book: book}, &fakeChapterStore{chapters: chapters}, &fakeHistoryStore{})

		_, err := ex.Export(ctx, "b1", "someone-else", Options{Format: models.ExportFormatEPUB})
		if !errors.Is(err, ErrBookNotFound) {
			t.Errorf("Expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("EPUB export produces an archive and records history", func(t *testing.T) {
		history := &fakeHistoryStore{}
		ex := newTestExporter(&fakeBookStore{book: book}, &fakeChapterStore{chapters: chapters}, history)

		result, err := ex.Export(ctx, "b1", "u1", Options{Format: models.ExportFormatEPUB, AuthorName: "著者名"})
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		if result.ContentType != "application/epub+zip" {
			t.Errorf("Wrong content type: %s", result.ContentType)
		}
		if result.Filename != "電子書籍.epub" {
			t.Errorf("Wrong filename: %s", result.Filename)
		}
		// EPUB is a zip archive; check the magic bytes.
		if !bytes.HasPrefix(result.Bytes, []byte("PK")) {
			t.Error("Result is not a zip archive")
		}

		if len(history.records) != 1 {
			t.Fatalf("Expected 1 history record, got %d", len(history.records))
		}
		record := history.records[0]
		if record.BookID != "b1" || record.Format != models.ExportFormatEPUB {
			t.Errorf("History record mismatch: %+v", record)
		}
		if record.FileSize != len(result.Bytes) {
			t.Errorf("History file size %d, artifact size %d", record.FileSize, len(result.Bytes))
		}
	})

	t.Run("History write failure does not fail the export", func(t *testing.T) {
		history := &fakeHistoryStore{err: errors.New("db down")}
		ex := newTestExporter(&fakeBookStore{book: book}, &fakeChapterStore{chapters: chapters}, history)

		result, err := ex.Export(ctx, "b1", "u1", Options{Format: models.ExportFormatEPUB})
		if err != nil {
			t.Fatalf("Export should succeed despite history failure: %v", err)
		}
		if len(result.Bytes) == 0 {
			t.Error("Expected a non-empty artifact")
		}
	})
}

func TestExportFilename(t *testing.T) {
	if got := exportFilename("My Book", "pdf"); got != "My Book.pdf" {
		t.Errorf("Unexpected filename: %s", got)
	}
	if got := exportFilename("", "epub"); got != "book.epub" {
		t.Errorf("Empty title should fall back: %s", got)
	}
}
