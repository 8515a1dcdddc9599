package routehandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookmakerhq/bookmaker/auth"
	"github.com/bookmakerhq/bookmaker/datastore"
	"github.com/bookmakerhq/bookmaker/export"
	"github.com/bookmakerhq/bookmaker/models"
	"github.com/bookmakerhq/bookmaker/webutil"
)

type ExportHandler struct {
	Exporter    *export.Exporter
	HistoryRepo *datastore.ExportHistoryRepository
}

func NewExportHandler(exporter *export.Exporter, historyRepo *datastore.ExportHistoryRepository) *ExportHandler {
	return &ExportHandler{Exporter: exporter, HistoryRepo: historyRepo}
}

type exportRequest struct {
	Format      string `json:"format"`
	Template    string `json:"template"`
	AuthorName  string `json:"author_name"`
	Language    string `json:"language"`
	GenerateTOC bool   `json:"generate_toc"`
}

// HandleExportBook runs the export pipeline synchronously and streams the
// artifact back as a file attachment.
func (h *ExportHandler) HandleExportBook(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	var req exportRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return webutil.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()

	opts := export.Options{
		Format:      models.ExportFormat(req.Format),
		Template:    req.Template,
		AuthorName:  req.AuthorName,
		Language:    req.Language,
		GenerateTOC: req.GenerateTOC,
	}

	result, err := h.Exporter.Export(r.Context(), bookID, userID, opts)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrUnsupportedFormat):
			return webutil.ErrBadRequest(fmt.Sprintf("Unsupported export format %q", req.Format))
		case errors.Is(err, export.ErrBookNotFound):
			return webutil.ErrNotFound("Book not found")
		}
		return err
	}

	webutil.RespondWithAttachment(w, result.ContentType, result.Filename, result.Bytes)
	return nil
}

// HandleGetExportHistory lists the book's past exports, newest first.
func (h *ExportHandler) HandleGetExportHistory(w http.ResponseWriter, r *http.Request) error {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return webutil.ErrUnauthorized("")
	}

	bookID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(bookID); err != nil {
		return webutil.ErrBadRequest("Invalid book ID format")
	}

	records, err := h.HistoryRepo.GetExportRecordsByBookID(r.Context(), bookID, userID)
	if err != nil {
		return fmt.Errorf("failed to retrieve export history for book %s: %w", bookID, err)
	}
	webutil.RespondWithJSON(w, http.StatusOK, records)
	return nil
}
