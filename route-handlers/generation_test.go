package routehandlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookmakerhq/bookmaker/webutil"
)

func TestGenerationHandler_Unconfigured(t *testing.T) {
	h := NewGenerationHandler(nil)

	endpoints := []struct {
		name    string
		method  string
		handler webutil.AppHandler
	}{
		{"Generate book", http.MethodPost, h.HandleGenerateBook},
		{"Generate slides", http.MethodPost, h.HandleGenerateSlides},
		{"Chat", http.MethodPost, h.HandleChat},
		{"List models", http.MethodGet, h.HandleListModels},
	}

	for _, ep := range endpoints {
		t.Run(ep.name+" returns 503 without a Gemini key", func(t *testing.T) {
			req := httptest.NewRequest(ep.method, "/api/generate", strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			webutil.MakeHandler(ep.handler)(rec, req)

			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("Expected 503, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "not configured") {
				t.Errorf("Unexpected body: %q", rec.Body.String())
			}
		})
	}
}
