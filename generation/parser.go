package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// GeneratedChapter is one chapter of model-written book content. Content is
// HTML restricted by the prompt to the same structural tags the export
// sanitizer allows.
type GeneratedChapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GeneratedSlide is one slide of model-written deck content.
type GeneratedSlide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

var codeFenceRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSONArray pulls the first JSON array out of raw model output.
// Models often wrap JSON in code fences or surround it with prose, so the
// fences are stripped first and the text is then trimmed to the outermost
// brackets.
func extractJSONArray(text string) (string, error) {
	if m := codeFenceRegex.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in model output")
	}
	return text[start : end+1], nil
}

// ParseChapters parses model output into chapters, rejecting entries with
// empty titles.
func ParseChapters(text string) ([]GeneratedChapter, error) {
	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var chapters []GeneratedChapter
	if err := json.Unmarshal([]byte(raw), &chapters); err != nil {
		return nil, fmt.Errorf("failed to decode chapters from model output: %w", err)
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("model output contained no chapters")
	}
	for i, ch := range chapters {
		if strings.TrimSpace(ch.Title) == "" {
			return nil, fmt.Errorf("chapter %d has an empty title", i+1)
		}
	}
	return chapters, nil
}

// ParseSlides parses model output into slides, rejecting entries with empty
// titles.
func ParseSlides(text string) ([]GeneratedSlide, error) {
	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var slides []GeneratedSlide
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		return nil, fmt.Errorf("failed to decode slides from model output: %w", err)
	}
	if len(slides) == 0 {
		return nil, fmt.Errorf("model output contained no slides")
	}
	for i, s := range slides {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("slide %d has an empty title", i+1)
		}
	}
	return slides, nil
}
