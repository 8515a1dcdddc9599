package routehandlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/auth"
	"github.com/bookmakerhq/bookmaker/datastore"
	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/webutil"
)

type BookHandler struct {
	Repo *datastore.BookRepository
}

func NewBookHandler(repo *datastore.BookRepository) *BookHandler {
	return &BookHandler{Repo: repo}
}

type bookRequest struct {
	Title         string         `json:"title"`
	Author        string         `json:"author"`
	Description   string         `json:"description"`
	CoverImageURL string         `json:"cover_image_url"`
	Language      string         `json:"language"`
	ISBN          string         `json:"isbn"`
	Publisher     string         `json:"publisher"`
	Status        string         `json:"status"`
	Metadata      map[string]any `json:"metadata"`
}

func (h *BookHandler) HandleGetBooks(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	books, err := h.Repo.GetBooksByUserID(r.Context(), userID)
	if err != nil {
		return fmt.Errorf("failed to retrieve books for user %s: %w", userID, err)
	}
	webutil.RespondWithJSON(w, http.StatusOK, books)
	return nil
}

func (h *BookHandler) HandleCreateBook(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	var req bookRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if req.Title == "" {
		return webutil.ErrBadRequest("Book title is required")
	}

	status := models.BookStatusDraft
	if req.Status != "" {
		validStatus, ok := models.IsValidBookStatus(req.Status)
		if !ok {
			return webutil.ErrBadRequest("Invalid status value. Must be one of: draft, published, archived")
		}
		status = validStatus
	}

	newBook := models.Book{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		Language:      req.Language,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
		Status:        status,
		Metadata:      req.Metadata,
	}

	if err := h.Repo.CreateBook(r.Context(), &newBook); err != nil {
		return fmt.Errorf("failed to create book %q for user %s: %w", req.Title, userID, err)
	}

	webutil.RespondWithJSON(w, http.StatusCreated, newBook)
	return nil
}

func (h *BookHandler) HandleGetBook(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	book, err := h.Repo.GetBookByIDForUser(r.Context(), bookID, userID)
	if err != nil {
		return err // sql.ErrNoRows maps to 404 in the handler adapter
	}

	webutil.RespondWithJSON(w, http.StatusOK, book)
	return nil
}

func (h *BookHandler) HandleUpdateBook(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	var req bookRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	if req.Title == "" {
		return webutil.ErrBadRequest("Book title is required")
	}

	status := models.BookStatusDraft
	if req.Status != "" {
		validStatus, ok := models.IsValidBookStatus(req.Status)
		if !ok {
			return webutil.ErrBadRequest("Invalid status value. Must be one of: draft, published, archived")
		}
		status = validStatus
	}

	book := models.Book{
		ID:            bookID,
		UserID:        userID,
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		Language:      req.Language,
		ISBN:          req.ISBN,
		Publisher:     req.Publisher,
		Status:        status,
		Metadata:      req.Metadata,
	}

	if err := h.Repo.UpdateBook(r.Context(), &book); err != nil {
		return err
	}

	updated, err := h.Repo.GetBookByIDForUser(r.Context(), bookID, userID)
	if err != nil {
		return err
	}
	webutil.RespondWithJSON(w, http.StatusOK, updated)
	return nil
}

func (h *BookHandler) HandleDeleteBook(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	if err := h.Repo.DeleteBook(r.Context(), bookID, userID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
