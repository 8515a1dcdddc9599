package export

import (
	"strings"
	"testing"

	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/templates"
)

func strptr(s string) *string {
	return &s
}

func testBook() *models.Book {
	return &models.Book{
		ID:          "b1",
		UserID:      "u1",
		Title:       "テスト本",
		Description: "説明文",
	}
}

func TestAssembleDocument_Flowing(t *testing.T) {
	a := NewAssembler(templates.NewRegistry(), NewSanitizer())

	t.Run("Chapters render in order_index order", func(t *testing.T) {
		chapters := []models.Chapter{
			{ID: "c2", Title: "Second", Content: strptr("<p>two</p>"), OrderIndex: 2},
			{ID: "c1", Title: "First", Content: strptr("<p>one</p>"), OrderIndex: 1},
		}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF})

		first := strings.Index(doc, "First")
		second := strings.Index(doc, "Second")
		if first == -1 || second == -1 {
			t.Fatalf("Chapter titles missing from document:\n%s", doc)
		}
		if first > second {
			t.Error("Chapters not ordered by order_index")
		}
		if !strings.Contains(doc, "第1章: First") || !strings.Contains(doc, "第2章: Second") {
			t.Errorf("Numbered headings missing:\n%s", doc)
		}
	})

	t.Run("TOC lists every chapter when enabled", func(t *testing.T) {
		chapters := []models.Chapter{
			{ID: "c1", Title: "はじめに", Content: strptr("<p>a</p>"), OrderIndex: 1},
			{ID: "c2", Title: "おわりに", Content: strptr("<p>b</p>"), OrderIndex: 2},
		}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF, GenerateTOC: true})
		if !strings.Contains(doc, "目次") {
			t.Fatal("TOC heading missing")
		}
		if !strings.Contains(doc, "<li>第1章: はじめに</li>") || !strings.Contains(doc, "<li>第2章: おわりに</li>") {
			t.Errorf("TOC entries missing:\n%s", doc)
		}
	})

	t.Run("No TOC by default", func(t *testing.T) {
		chapters := []models.Chapter{{ID: "c1", Title: "A", Content: strptr("<p>a</p>"), OrderIndex: 1}}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF})
		if strings.Contains(doc, "目次") {
			t.Error("TOC rendered without generate_toc")
		}
	})

	t.Run("Empty chapter gets a placeholder", func(t *testing.T) {
		chapters := []models.Chapter{{ID: "c1", Title: "空", Content: nil, OrderIndex: 1}}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF})
		if !strings.Contains(doc, "（本文未執筆）") {
			t.Errorf("Placeholder missing:\n%s", doc)
		}
	})

	t.Run("Author and description appear when set", func(t *testing.T) {
		chapters := []models.Chapter{{ID: "c1", Title: "A", Content: strptr("<p>a</p>"), OrderIndex: 1}}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF, AuthorName: "山田太郎"})
		if !strings.Contains(doc, "著者: 山田太郎") {
			t.Error("Author line missing")
		}
		if !strings.Contains(doc, "説明文") {
			t.Error("Description missing")
		}
	})

	t.Run("Chapter markup is sanitized", func(t *testing.T) {
		chapters := []models.Chapter{
			{ID: "c1", Title: "A", Content: strptr(`<p onclick="x">ok</p><script>bad()</script>`), OrderIndex: 1},
		}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF})
		if strings.Contains(doc, "onclick") || strings.Contains(doc, "bad()") {
			t.Errorf("Unsafe markup leaked:\n%s", doc)
		}
	})

	t.Run("Document carries language and inline stylesheet", func(t *testing.T) {
		chapters := []models.Chapter{{ID: "c1", Title: "A", Content: strptr("<p>a</p>"), OrderIndex: 1}}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF, Language: "en"})
		if !strings.Contains(doc, `<html lang="en">`) {
			t.Error("Language attribute missing")
		}
		if !strings.Contains(doc, "<style>") {
			t.Error("Inline stylesheet missing")
		}
	})
}

func TestAssembleDocument_Paged(t *testing.T) {
	a := NewAssembler(templates.NewRegistry(), NewSanitizer())

	t.Run("Title page leads and fragments become pages", func(t *testing.T) {
		chapters := []models.Chapter{
			{ID: "c1", Title: "章一", Content: strptr("<p>a</p><pagebreak><p>big</p></pagebreak><p>b</p>"), OrderIndex: 1},
		}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF, Template: "essay"})

		if !strings.Contains(doc, `<div class="page title-page">`) {
			t.Fatal("Title page missing")
		}
		if strings.Count(doc, `<div class="page">`) != 3 {
			t.Errorf("Expected 3 content pages, got %d:\n%s", strings.Count(doc, `<div class="page">`), doc)
		}
		if !strings.Contains(doc, `<div class="page-break-content">`) {
			t.Error("Flagged fragment did not get the emphasized treatment")
		}
		if strings.Contains(doc, "<pagebreak") {
			t.Error("Pagination marker leaked into final document")
		}
	})

	t.Run("Every page carries its chapter title header", func(t *testing.T) {
		chapters := []models.Chapter{
			{ID: "c1", Title: "章一", Content: strptr("<h2>x</h2><p>1</p><h2>y</h2><p>2</p>"), OrderIndex: 1},
		}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF, Template: "satomata-life-lessons"})
		if strings.Count(doc, `<div class="chapter-title-header">章一</div>`) != 2 {
			t.Errorf("Expected a chapter title header per page:\n%s", doc)
		}
	})

	t.Run("Empty chapter still yields one page", func(t *testing.T) {
		chapters := []models.Chapter{{ID: "c1", Title: "空", Content: nil, OrderIndex: 1}}

		doc := a.AssembleDocument(testBook(), chapters, Options{Format: models.ExportFormatPDF, Template: "essay"})
		if strings.Count(doc, `<div class="page">`) != 1 {
			t.Errorf("Expected exactly one page for an empty chapter:\n%s", doc)
		}
		if !strings.Contains(doc, "（本文未執筆）") {
			t.Error("Placeholder missing on empty page")
		}
	})
}
