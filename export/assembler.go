package export

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/templates"
)

const (
	defaultLanguage = "ja"

	// Shown in place of a chapter whose content has not been written yet.
	emptyChapterPlaceholder = `<p class="placeholder">（本文未執筆）</p>`
)

// Options carries the request-scoped settings of one export. Defaults:
// Template falls back to the registry's designated default id, Language to
// "ja", GenerateTOC to false.
type Options struct {
	Format      models.ExportFormat `json:"format"`
	Template    string              `json:"template"`
	AuthorName  string              `json:"author_name"`
	Language    string              `json:"language"`
	GenerateTOC bool                `json:"generate_toc"`
}

func (o *Options) applyDefaults(registry *templates.Registry) {
	if o.Template == "" {
		o.Template = registry.Default().ID
	}
	if o.Language == "" {
		o.Language = defaultLanguage
	}
}

// Assembler produces one complete, self-contained markup document from a
// book, its chapters, and export options. The stylesheet is resolved via
// the template registry and inlined; missing optional fields are substituted
// with empty strings, never errors.
type Assembler struct {
	registry  *templates.Registry
	sanitizer *Sanitizer
}

func NewAssembler(registry *templates.Registry, sanitizer *Sanitizer) *Assembler {
	return &Assembler{registry: registry, sanitizer: sanitizer}
}

// AssembleDocument renders the full document for the requested template.
// Chapters are ordered by order_index ascending regardless of slice order.
func (a *Assembler) AssembleDocument(book *models.Book, chapters []models.Chapter, opts Options) string {
	opts.applyDefaults(a.registry)
	tmpl := a.registry.Resolve(opts.Template)
	ordered := orderChapters(chapters)

	var body string
	if tmpl.Paged {
		body = a.assemblePagedBody(book, ordered, opts)
	} else {
		body = a.assembleFlowingBody(book, ordered, opts)
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n")
	doc.WriteString(fmt.Sprintf(`<html lang="%s">`+"\n", html.EscapeString(opts.Language)))
	doc.WriteString("<head>\n<meta charset=\"UTF-8\">\n")
	doc.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	doc.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(book.Title)))
	doc.WriteString("<style>" + tmpl.CSSStyles + "</style>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.WriteString(body)
	doc.WriteString("</body>\n</html>\n")
	return doc.String()
}

// assembleFlowingBody emits the default layout: title, front matter,
// optional table of contents, then one section per chapter.
func (a *Assembler) assembleFlowingBody(book *models.Book, chapters []models.Chapter, opts Options) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(book.Title)))
	if opts.AuthorName != "" {
		b.WriteString(fmt.Sprintf(`<p class="author">著者: %s</p>`+"\n", html.EscapeString(opts.AuthorName)))
	}
	if book.Description != "" {
		b.WriteString(fmt.Sprintf(`<p class="description">%s</p>`+"\n", html.EscapeString(book.Description)))
	}

	if opts.GenerateTOC {
		b.WriteString(`<div class="toc">` + "\n<h2>目次</h2>\n<ul>\n")
		for i, ch := range chapters {
			b.WriteString(fmt.Sprintf("<li>%s</li>\n", chapterHeading(i, ch.Title)))
		}
		b.WriteString("</ul>\n</div>\n")
	}

	for i, ch := range chapters {
		b.WriteString(`<div class="chapter">` + "\n")
		b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", chapterHeading(i, ch.Title)))
		b.WriteString(`<div class="content">` + "\n")
		content := a.sanitizer.Sanitize(ch.ContentOrEmpty())
		if strings.TrimSpace(content) == "" {
			content = emptyChapterPlaceholder
		}
		b.WriteString(content)
		b.WriteString("\n</div>\n</div>\n")
	}

	return b.String()
}

// assemblePagedBody emits the paged layout: a leading title page, then one
// page container per fragment across all chapters, each page carrying a
// running header with its source chapter's title. Fragments that came from
// a wrapped pagination marker render full-bleed and emphasized.
func (a *Assembler) assemblePagedBody(book *models.Book, chapters []models.Chapter, opts Options) string {
	var b strings.Builder

	b.WriteString(`<div class="page title-page">` + "\n")
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(book.Title)))
	if opts.AuthorName != "" {
		b.WriteString(fmt.Sprintf(`<p class="author">著者: %s</p>`+"\n", html.EscapeString(opts.AuthorName)))
	}
	if book.Description != "" {
		b.WriteString(fmt.Sprintf(`<p class="description">%s</p>`+"\n", html.EscapeString(book.Description)))
	}
	b.WriteString("</div>\n")

	for _, ch := range chapters {
		// Segmentation runs on the raw markup so the pagination markers
		// are still visible; sanitization follows per fragment.
		fragments := SegmentChapterContent(ch.ContentOrEmpty())
		for _, frag := range fragments {
			b.WriteString(`<div class="page">` + "\n")
			b.WriteString(fmt.Sprintf(`<div class="chapter-title-header">%s</div>`+"\n", html.EscapeString(ch.Title)))
			content := a.sanitizer.Sanitize(frag.Content)
			if frag.IsPageBreakContent {
				b.WriteString(fmt.Sprintf(`<div class="page-break-content">%s</div>`+"\n", strings.TrimSpace(content)))
			} else {
				if strings.TrimSpace(content) == "" {
					content = emptyChapterPlaceholder
				}
				b.WriteString(fmt.Sprintf(`<div class="page-body">%s</div>`+"\n", content))
			}
			b.WriteString("</div>\n")
		}
	}

	return b.String()
}

// chapterHeading formats the numbered heading shared by the table of
// contents and the chapter sections, e.g. 第1章: はじめに.
func chapterHeading(index int, title string) string {
	return fmt.Sprintf("第%d章: %s", index+1, html.EscapeString(title))
}

// orderChapters returns a copy sorted by order_index ascending, the
// canonical reading order.
func orderChapters(chapters []models.Chapter) []models.Chapter {
	ordered := make([]models.Chapter, len(chapters))
	copy(ordered, chapters)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})
	return ordered
}
