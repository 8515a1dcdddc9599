package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bookmakerhq/bookmaker/models"
)

func epubFileNames(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Result is not a readable zip: %v", err)
	}

	files := make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(content)
	}
	return files
}

func TestEpubPackager_Package(t *testing.T) {
	p := NewEpubPackager(NewSanitizer())
	book := &models.Book{ID: "b1", UserID: "u1", Title: "随筆集", Description: "短い随筆"}

	t.Run("Chapter files are named by order index", func(t *testing.T) {
		one := "<p>一</p>"
		two := "<p>二</p>"
		chapters := []models.Chapter{
			{ID: "c1", Title: "春", Content: &one, OrderIndex: 1},
			{ID: "c2", Title: "夏", Content: &two, OrderIndex: 2},
		}

		data, err := p.Package(book, chapters, Options{Format: models.ExportFormatEPUB, Language: "ja"}, "body { margin: 0; }")
		if err != nil {
			t.Fatalf("Package failed: %v", err)
		}

		files := epubFileNames(t, data)
		foundOne, foundTwo := false, false
		for name := range files {
			if strings.HasSuffix(name, "chapter-1.html") {
				foundOne = true
			}
			if strings.HasSuffix(name, "chapter-2.html") {
				foundTwo = true
			}
		}
		if !foundOne || !foundTwo {
			t.Errorf("Expected chapter-1.html and chapter-2.html in archive, got %v", keys(files))
		}
	})

	t.Run("Chapter markup is sanitized", func(t *testing.T) {
		evil := `<p>ok</p><script>alert(1)</script>`
		chapters := []models.Chapter{{ID: "c1", Title: "章", Content: &evil, OrderIndex: 1}}

		data, err := p.Package(book, chapters, Options{Format: models.ExportFormatEPUB}, "")
		if err != nil {
			t.Fatalf("Package failed: %v", err)
		}

		for name, content := range epubFileNames(t, data) {
			if strings.HasSuffix(name, "chapter-1.html") && strings.Contains(content, "alert(1)") {
				t.Errorf("Script content leaked into %s", name)
			}
		}
	})

	t.Run("Empty chapter gets the placeholder", func(t *testing.T) {
		chapters := []models.Chapter{{ID: "c1", Title: "空", Content: nil, OrderIndex: 1}}

		data, err := p.Package(book, chapters, Options{Format: models.ExportFormatEPUB}, "")
		if err != nil {
			t.Fatalf("Package failed: %v", err)
		}

		found := false
		for name, content := range epubFileNames(t, data) {
			if strings.HasSuffix(name, "chapter-1.html") && strings.Contains(content, "（本文未執筆）") {
				found = true
			}
		}
		if !found {
			t.Error("Placeholder missing from empty chapter file")
		}
	})

	t.Run("Numbered headings prepend when TOC requested", func(t *testing.T) {
		one := "<p>一</p>"
		chapters := []models.Chapter{{ID: "c1", Title: "春", Content: &one, OrderIndex: 1}}

		data, err := p.Package(book, chapters, Options{Format: models.ExportFormatEPUB, GenerateTOC: true}, "")
		if err != nil {
			t.Fatalf("Package failed: %v", err)
		}

		found := false
		for name, content := range epubFileNames(t, data) {
			if strings.HasSuffix(name, "chapter-1.html") && strings.Contains(content, "第1章: 春") {
				found = true
			}
		}
		if !found {
			t.Error("Numbered heading missing from chapter body")
		}
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
