package export

import (
	"bytes"
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	epub "github.com/go-shiori/go-epub"

	"github.com/bookmakerhq/bookmaker/models"
)

const defaultEpubAuthor = "Anonymous"

// EpubPackager bundles per-chapter sanitized HTML into an e-book container.
// A packaging failure is surfaced to the caller as an error; there is no
// silent fallback to another content type.
type EpubPackager struct {
	sanitizer *Sanitizer
}

func NewEpubPackager(sanitizer *Sanitizer) *EpubPackager {
	log.Println("INFO (EpubPackager): Using go-epub for EPUB packaging")
	return &EpubPackager{sanitizer: sanitizer}
}

// Package builds the EPUB for a book. Chapters must already be in
// order_index order. Each chapter becomes one content file named
// chapter-<order_index>.html; css is the resolved template stylesheet.
func (p *EpubPackager) Package(book *models.Book, chapters []models.Chapter, opts Options, css string) ([]byte, error) {
	title := book.Title
	if title == "" {
		title = "Untitled"
	}
	author := opts.AuthorName
	if author == "" {
		author = defaultEpubAuthor
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return nil, fmt.Errorf("failed to create epub: %w", err)
	}
	e.SetAuthor(author)
	e.SetLang(opts.Language)
	if book.Description != "" {
		e.SetDescription(book.Description)
	}

	cssPath, cleanup, err := writeStylesheetTempFile(css)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	internalCSSPath, err := e.AddCSS(cssPath, "styles.css")
	if err != nil {
		return nil, fmt.Errorf("failed to add stylesheet to epub: %w", err)
	}

	for i, ch := range chapters {
		body := p.sanitizer.Sanitize(ch.ContentOrEmpty())
		if strings.TrimSpace(body) == "" {
			body = emptyChapterPlaceholder
		}
		sectionTitle := ch.Title
		if sectionTitle == "" {
			sectionTitle = fmt.Sprintf("第%d章", i+1)
		}
		if opts.GenerateTOC {
			body = fmt.Sprintf("<h2>第%d章: %s</h2>\n%s", i+1, html.EscapeString(sectionTitle), body)
		}
		filename := fmt.Sprintf("chapter-%d.html", ch.OrderIndex)
		if _, err := e.AddSection(body, sectionTitle, filename, internalCSSPath); err != nil {
			return nil, fmt.Errorf("failed to add chapter %q to epub: %w", ch.ID, err)
		}
	}

	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write epub: %w", err)
	}
	return buf.Bytes(), nil
}

// writeStylesheetTempFile persists css to a temp file because the epub
// library ingests CSS from a path, not a reader. The returned cleanup
// removes the file.
func writeStylesheetTempFile(css string) (string, func(), error) {
	tmpFile, err := os.CreateTemp("", "bookmaker-epub-*.css")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp stylesheet: %w", err)
	}
	if _, err := tmpFile.WriteString(css); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", nil, fmt.Errorf("failed to write temp stylesheet: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", nil, fmt.Errorf("failed to close temp stylesheet: %w", err)
	}

	path := tmpFile.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("WARN (EpubPackager): Failed to remove temp stylesheet %s: %v", path, err)
		}
	}
	return path, cleanup, nil
}
