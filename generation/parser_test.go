package generation

import (
	"strings"
	"testing"
)

func TestParseChapters(t *testing.T) {
	t.Run("Bare JSON array", func(t *testing.T) {
		text := `[{"title": "はじめに", "content": "<p>本文</p>"}, {"title": "おわりに", "content": "<p>結び</p>"}]`

		chapters, err := ParseChapters(text)
		if err != nil {
			t.Fatalf("ParseChapters failed: %v", err)
		}
		if len(chapters) != 2 {
			t.Fatalf("Expected 2 chapters, got %d", len(chapters))
		}
		if chapters[0].Title != "はじめに" || chapters[0].Content != "<p>本文</p>" {
			t.Errorf("First chapter mismatch: %+v", chapters[0])
		}
	})

	t.Run("JSON wrapped in a code fence", func(t *testing.T) {
		text := "以下が結果です。\n```json\n[{\"title\": \"第一章\", \"content\": \"<p>x</p>\"}]\n```\n以上です。"

		chapters, err := ParseChapters(text)
		if err != nil {
			t.Fatalf("ParseChapters failed: %v", err)
		}
		if len(chapters) != 1 || chapters[0].Title != "第一章" {
			t.Errorf("Unexpected result: %+v", chapters)
		}
	})

	t.Run("JSON surrounded by prose without fences", func(t *testing.T) {
		text := `Here you go: [{"title": "A", "content": "<p>a</p>"}] hope that helps`

		chapters, err := ParseChapters(text)
		if err != nil {
			t.Fatalf("ParseChapters failed: %v", err)
		}
		if len(chapters) != 1 {
			t.Fatalf("Expected 1 chapter, got %d", len(chapters))
		}
	})

	t.Run("No array is an error", func(t *testing.T) {
		if _, err := ParseChapters("すみません、生成できませんでした。"); err == nil {
			t.Error("Expected an error for output without a JSON array")
		}
	})

	t.Run("Empty array is an error", func(t *testing.T) {
		if _, err := ParseChapters("[]"); err == nil {
			t.Error("Expected an error for an empty array")
		}
	})

	t.Run("Empty title is an error", func(t *testing.T) {
		_, err := ParseChapters(`[{"title": "  ", "content": "<p>x</p>"}]`)
		if err == nil {
			t.Fatal("Expected an error for an empty title")
		}
		if !strings.Contains(err.Error(), "empty title") {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestParseSlides(t *testing.T) {
	t.Run("Valid deck", func(t *testing.T) {
		text := "```\n[{\"title\": \"概要\", \"bullets\": [\"一\", \"二\"]}]\n```"

		slides, err := ParseSlides(text)
		if err != nil {
			t.Fatalf("ParseSlides failed: %v", err)
		}
		if len(slides) != 1 {
			t.Fatalf("Expected 1 slide, got %d", len(slides))
		}
		if len(slides[0].Bullets) != 2 {
			t.Errorf("Expected 2 bullets, got %d", len(slides[0].Bullets))
		}
	})

	t.Run("Malformed JSON is an error", func(t *testing.T) {
		if _, err := ParseSlides(`[{"title": "x", "bullets": [}]`); err == nil {
			t.Error("Expected a decode error")
		}
	})
}
