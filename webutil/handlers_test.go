package webutil

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func invoke(t *testing.T, handler AppHandler) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	MakeHandler(handler)(rec, req)

	var body map[string]string
	// Non-JSON bodies (attachments) leave body nil.
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestMakeHandler(t *testing.T) {
	t.Run("Nil error writes nothing extra", func(t *testing.T) {
		rec, _ := invoke(t, func(w http.ResponseWriter, r *http.Request) error {
			RespondWithJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
			return nil
		})
		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("HTTPError keeps its code and message", func(t *testing.T) {
		rec, body := invoke(t, func(w http.ResponseWriter, r *http.Request) error {
			return ErrBadRequest("Chapter title is required")
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
		if body["error"] != "Chapter title is required" {
			t.Errorf("Wrong public message: %q", body["error"])
		}
	})

	t.Run("Wrapped HTTPError still resolves", func(t *testing.T) {
		rec, _ := invoke(t, func(w http.ResponseWriter, r *http.Request) error {
			return fmt.Errorf("loading book: %w", ErrNotFound(""))
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})

	t.Run("sql.ErrNoRows maps to 404", func(t *testing.T) {
		rec, body := invoke(t, func(w http.ResponseWriter, r *http.Request) error {
			return fmt.Errorf("failed to fetch book abc: %w", sql.ErrNoRows)
		})
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
		if body["error"] != "Resource not found" {
			t.Errorf("Wrong public message: %q", body["error"])
		}
	})

	t.Run("Unknown error is a 500 with a generic message", func(t *testing.T) {
		rec, body := invoke(t, func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("pq: connection refused")
		})
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
		if body["error"] != "Internal Server Error" {
			t.Errorf("Internal detail leaked: %q", body["error"])
		}
	})

	t.Run("Error after a started response is not doubled", func(t *testing.T) {
		rec, _ := invoke(t, func(w http.ResponseWriter, r *http.Request) error {
			RespondWithAttachment(w, "application/pdf", "x.pdf", []byte("%PDF"))
			return errors.New("late failure")
		})
		if rec.Code != http.StatusOK {
			t.Errorf("Expected the original 200 to stand, got %d", rec.Code)
		}
		if rec.Body.String() != "%PDF" {
			t.Errorf("Body was altered: %q", rec.Body.String())
		}
	})
}
