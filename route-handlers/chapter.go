package routehandlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jaytaylor/html2text"

	"github.com/bookmakerhq/bookmaker/auth"
	"github.com/bookmakerhq/bookmaker/datastore"
	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/webutil"
)

type ChapterHandler struct {
	Repo     *datastore.ChapterRepository
	BookRepo *datastore.BookRepository
}

func NewChapterHandler(repo *datastore.ChapterRepository, bookRepo *datastore.BookRepository) *ChapterHandler {
	return &ChapterHandler{Repo: repo, BookRepo: bookRepo}
}

type chapterRequest struct {
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	OrderIndex int     `json:"order_index"`
}

type autosaveRequest struct {
	Content *string `json:"content"`
}

// HandleGetChapters lists a book's chapters in reading order. Ownership of
// the parent book is checked first.
func (h *ChapterHandler) HandleGetChapters(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	if _, err := h.BookRepo.GetBookByIDForUser(r.Context(), bookID, userID); err != nil {
		return err
	}

	chapters, err := h.Repo.GetChaptersByBookID(r.Context(), bookID)
	if err != nil {
		return fmt.Errorf("failed to retrieve chapters for book %s: %w", bookID, err)
	}
	webutil.RespondWithJSON(w, http.StatusOK, chapters)
	return nil
}

func (h *ChapterHandler) HandleCreateChapter(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	if _, err := h.BookRepo.GetBookByIDForUser(r.Context(), bookID, userID); err != nil {
		return err
	}

	var req chapterRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if req.Title == "" {
		return webutil.ErrBadRequest("Chapter title is required")
	}

	newChapter := models.Chapter{
		ID:         uuid.NewString(),
		BookID:     bookID,
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: req.OrderIndex,
		WordCount:  computeWordCount(req.Content),
	}

	if err := h.Repo.CreateChapter(r.Context(), &newChapter); err != nil {
		return fmt.Errorf("failed to create chapter %q in book %s: %w", req.Title, bookID, err)
	}

	webutil.RespondWithJSON(w, http.StatusCreated, newChapter)
	return nil
}

func (h *ChapterHandler) HandleGetChapter(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	chapterID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(chapterID); err != nil {
		return webutil.ErrBadRequest("Invalid chapter ID format")
	}

	chapter, err := h.Repo.GetChapterByIDForUser(r.Context(), chapterID, userID)
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, chapter)
	return nil
}

func (h *ChapterHandler) HandleUpdateChapter(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	chapterID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(chapterID); err != nil {
		return webutil.ErrBadRequest("Invalid chapter ID format")
	}

	existing, err := h.Repo.GetChapterByIDForUser(r.Context(), chapterID, userID)
	if err != nil {
		return err
	}

	var req chapterRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if req.Title == "" {
		return webutil.ErrBadRequest("Chapter title is required")
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.OrderIndex = req.OrderIndex
	existing.WordCount = computeWordCount(req.Content)

	if err := h.Repo.UpdateChapter(r.Context(), existing); err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, existing)
	return nil
}

func (h *ChapterHandler) HandleDeleteChapter(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	chapterID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(chapterID); err != nil {
		return webutil.ErrBadRequest("Invalid chapter ID format")
	}

	if _, err := h.Repo.GetChapterByIDForUser(r.Context(), chapterID, userID); err != nil {
		return err
	}
	if err := h.Repo.DeleteChapter(r.Context(), chapterID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// HandleAutosaveChapter stores the editor's working copy without touching
// the chapter row itself.
func (h *ChapterHandler) HandleAutosaveChapter(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	chapterID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(chapterID); err != nil {
		return webutil.ErrBadRequest("Invalid chapter ID format")
	}

	if _, err := h.Repo.GetChapterByIDForUser(r.Context(), chapterID, userID); err != nil {
		return err
	}

	var req autosaveRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	draft := models.AutosaveDraft{
		ID:        uuid.NewString(),
		ChapterID: chapterID,
		Content:   req.Content,
	}
	if err := h.Repo.UpsertAutosaveDraft(r.Context(), &draft); err != nil {
		return fmt.Errorf("failed to autosave chapter %s: %w", chapterID, err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// computeWordCount derives a chapter's word count as the number of
// non-whitespace runes in its plain-text rendering. Rune counting suits
// Japanese prose, where space-delimited words are rare.
func computeWordCount(content *string) int {
	if content == nil || *content == "" {
		return 0
	}

	text, err := html2text.FromString(*content, html2text.Options{TextOnly: true})
	if err != nil {
		log.Printf("WARN (ChapterHandler): Failed to extract text for word count: %v", err)
		text = *content
	}

	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
