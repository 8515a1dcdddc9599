package generation

import (
	"context"
	"fmt"

	"github.com/bookmakerhq/bookmaker/export"
)

// Service drives content generation end to end: prompt construction, the
// Gemini call, JSON parsing, and a sanitation pass over chapter HTML so
// generated markup is held to the same allow-list as authored content.
type Service struct {
	client    *Client
	sanitizer *export.Sanitizer
}

func NewService(client *Client, sanitizer *export.Sanitizer) *Service {
	return &Service{client: client, sanitizer: sanitizer}
}

// GenerateBook produces the chapters for a new book.
func (s *Service) GenerateBook(ctx context.Context, req BookRequest) ([]GeneratedChapter, error) {
	if req.Topic == "" && req.BookTitle == "" {
		return nil, fmt.Errorf("topic or book title is required")
	}

	text, err := s.client.GenerateText(ctx, buildBookPrompt(req))
	if err != nil {
		return nil, err
	}

	chapters, err := ParseChapters(text)
	if err != nil {
		return nil, err
	}
	for i := range chapters {
		chapters[i].Content = s.sanitizer.Sanitize(chapters[i].Content)
	}
	return chapters, nil
}

// GenerateSlides produces the slides for a new deck.
func (s *Service) GenerateSlides(ctx context.Context, req SlideRequest) ([]GeneratedSlide, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	text, err := s.client.GenerateText(ctx, buildSlidePrompt(req))
	if err != nil {
		return nil, err
	}
	return ParseSlides(text)
}

// Chat relays a conversation to the model and returns its reply.
func (s *Service) Chat(ctx context.Context, messages []Message) (string, error) {
	return s.client.Chat(ctx, messages)
}

// ListModels returns the models available to the configured API key.
func (s *Service) ListModels(ctx context.Context) ([]ModelInfo, error) {
	return s.client.ListModels(ctx)
}
