package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/templates"
)

// Error kinds for expected failure conditions. Rendering engine and
// packaging failures are wrapped and propagated as-is.
var (
	// ErrBookNotFound means the book does not exist or is not owned by
	// the caller. The two cases are deliberately indistinguishable.
	ErrBookNotFound = errors.New("book not found")

	// ErrUnsupportedFormat means the requested format is not one of
	// pdf, jpeg, or epub. Rejected before any rendering work begins.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// BookStore fetches a book scoped by both book id and owner id.
type BookStore interface {
	GetBookByIDForUser(ctx context.Context, bookID, userID string) (*models.Book, error)
}

// ChapterStore fetches a book's chapters in order_index ascending order.
type ChapterStore interface {
	GetChaptersByBookID(ctx context.Context, bookID string) ([]models.Chapter, error)
}

// ExportHistoryStore records completed exports.
type ExportHistoryStore interface {
	CreateExportRecord(ctx context.Context, record *models.ExportRecord) error
}

// Result is the final output artifact of one export request.
type Result struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// Exporter orchestrates the export pipeline: fetch records, assemble the
// document, then render or package per the requested format. Each request
// is fully synchronous and owns any browser instance it launches; there is
// no queuing, no retries, and no cross-request shared mutable state beyond
// the read-only template registry.
type Exporter struct {
	books     BookStore
	chapters  ChapterStore
	history   ExportHistoryStore
	registry  *templates.Registry
	assembler *Assembler
	renderer  *Renderer
	packager  *EpubPackager
}

func NewExporter(
	books BookStore,
	chapters ChapterStore,
	history ExportHistoryStore,
	registry *templates.Registry,
	assembler *Assembler,
	renderer *Renderer,
	packager *EpubPackager,
) *Exporter {
	return &Exporter{
		books:     books,
		chapters:  chapters,
		history:   history,
		registry:  registry,
		assembler: assembler,
		renderer:  renderer,
		packager:  packager,
	}
}

// Export produces the requested artifact for the caller's book. Failure is
// terminal for the request; the caller must resubmit.
func (ex *Exporter) Export(ctx context.Context, bookID, userID string, opts Options) (*Result, error) {
	if _, ok := models.IsValidExportFormat(string(opts.Format)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
	opts.applyDefaults(ex.registry)

	book, err := ex.books.GetBookByIDForUser(ctx, bookID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrBookNotFound, bookID)
		}
		return nil, fmt.Errorf("failed to fetch book %s: %w", bookID, err)
	}

	chapters, err := ex.chapters.GetChaptersByBookID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chapters for book %s: %w", bookID, err)
	}

	tmpl := ex.registry.Resolve(opts.Template)
	log.Printf("INFO (Exporter): Exporting book %s (%d chapters) as %s with template %s",
		bookID, len(chapters), opts.Format, tmpl.ID)

	result, err := ex.produce(ctx, book, chapters, opts, tmpl)
	if err != nil {
		return nil, err
	}

	ex.recordExport(ctx, book, opts, len(result.Bytes))
	return result, nil
}

func (ex *Exporter) produce(
	ctx context.Context,
	book *models.Book,
	chapters []models.Chapter,
	opts Options,
	tmpl templates.Template,
) (*Result, error) {
	switch opts.Format {
	case models.ExportFormatPDF:
		doc := ex.assembler.AssembleDocument(book, chapters, opts)
		data, err := ex.renderer.RenderPDF(ctx, doc, tmpl.PageSetup)
		if err != nil {
			return nil, fmt.Errorf("PDF rendering failed for book %s: %w", book.ID, err)
		}
		return &Result{Bytes: data, ContentType: "application/pdf", Filename: exportFilename(book.Title, "pdf")}, nil

	case models.ExportFormatJPEG:
		doc := ex.assembler.AssembleDocument(book, chapters, opts)
		data, err := ex.renderer.RenderJPEG(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("JPEG rendering failed for book %s: %w", book.ID, err)
		}
		return &Result{Bytes: data, ContentType: "image/jpeg", Filename: exportFilename(book.Title, "jpg")}, nil

	case models.ExportFormatEPUB:
		data, err := ex.packager.Package(book, orderChapters(chapters), opts, tmpl.CSSStyles)
		if err != nil {
			return nil, fmt.Errorf("EPUB packaging failed for book %s: %w", book.ID, err)
		}
		return &Result{Bytes: data, ContentType: "application/epub+zip", Filename: exportFilename(book.Title, "epub")}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
}

// recordExport appends to the book's export history. Best-effort: the
// artifact was produced regardless of whether the record write succeeds.
func (ex *Exporter) recordExport(ctx context.Context, book *models.Book, opts Options, size int) {
	record := &models.ExportRecord{
		ID:       uuid.NewString(),
		BookID:   book.ID,
		UserID:   book.UserID,
		Format:   opts.Format,
		FileSize: size,
		Settings: map[string]any{
			"template":     opts.Template,
			"author_name":  opts.AuthorName,
			"language":     opts.Language,
			"generate_toc": opts.GenerateTOC,
		},
		ExportedAt: time.Now().UTC(),
	}
	if err := ex.history.CreateExportRecord(ctx, record); err != nil {
		log.Printf("WARN (Exporter): Failed to record export of book %s: %v", book.ID, err)
	}
}

func exportFilename(title, ext string) string {
	if title == "" {
		title = "book"
	}
	return title + "." + ext
}
