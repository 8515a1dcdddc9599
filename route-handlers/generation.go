package routehandlers

import (
	"encoding/json"
	"net/http"

	"github.com/bookmakerhq/bookmaker/auth"
	"github.com/bookmakerhq/bookmaker/generation"
	"github.com/bookmakerhq/bookmaker/webutil"
)

// GenerationHandler exposes the AI content generation endpoints. Service is
// nil when no Gemini API key is configured; requests then fail with 503
// rather than at startup so the rest of the app stays usable.
type GenerationHandler struct {
	Service *generation.Service
}

func NewGenerationHandler(service *generation.Service) *GenerationHandler {
	return &GenerationHandler{Service: service}
}

type chatRequest struct {
	Messages []generation.Message `json:"messages"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *GenerationHandler) HandleGenerateBook(w http.ResponseWriter, r *http.Request) error {
	if err := h.requireService(); err != nil {
		return err
	}
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		return webutil.ErrUnauthorized("")
	}

	var req generation.BookRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if req.Topic == "" && req.BookTitle == "" {
		return webutil.ErrBadRequest("Topic or book title is required")
	}

	chapters, err := h.Service.GenerateBook(r.Context(), req)
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"chapters": chapters})
	return nil
}

func (h *GenerationHandler) HandleGenerateSlides(w http.ResponseWriter, r *http.Request) error {
	if err := h.requireService(); err != nil {
		return err
	}
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		return webutil.ErrUnauthorized("")
	}

	var req generation.SlideRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if req.Topic == "" {
		return webutil.ErrBadRequest("Topic is required")
	}

	slides, err := h.Service.GenerateSlides(r.Context(), req)
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"slides": slides})
	return nil
}

func (h *GenerationHandler) HandleChat(w http.ResponseWriter, r *http.Request) error {
	if err := h.requireService(); err != nil {
		return err
	}
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		return webutil.ErrUnauthorized("")
	}

	var req chatRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if len(req.Messages) == 0 {
		return webutil.ErrBadRequest("At least one message is required")
	}

	reply, err := h.Service.Chat(r.Context(), req.Messages)
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, chatResponse{Reply: reply})
	return nil
}

// HandleListModels lists the Gemini models available to the configured API
// key, for the client's model picker.
func (h *GenerationHandler) HandleListModels(w http.ResponseWriter, r *http.Request) error {
	if err := h.requireService(); err != nil {
		return err
	}
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		return webutil.ErrUnauthorized("")
	}

	models, err := h.Service.ListModels(r.Context())
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"models": models})
	return nil
}

func (h *GenerationHandler) requireService() error {
	if h.Service == nil {
		return webutil.ErrServiceUnavailable("Content generation is not configured")
	}
	return nil
}
