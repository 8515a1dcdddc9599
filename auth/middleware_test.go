package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func runMiddleware(authHeader string) (*httptest.ResponseRecorder, string, bool) {
	var gotUserID string
	var gotOK bool
	handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotUserID, gotOK
}

func TestMiddleware(t *testing.T) {
	userID := uuid.NewString()

	t.Run("Valid token passes through with the user id", func(t *testing.T) {
		rec, gotUserID, ok := runMiddleware("Bearer " + signToken(t, testSecret, userID))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if !ok || gotUserID != userID {
			t.Errorf("Expected user id %s in context, got %q (ok=%v)", userID, gotUserID, ok)
		}
	})

	t.Run("Missing header is rejected", func(t *testing.T) {
		rec, _, ok := runMiddleware("")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
		if ok {
			t.Error("Handler should not have run")
		}
	})

	t.Run("Malformed header is rejected", func(t *testing.T) {
		rec, _, _ := runMiddleware("Token abc")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		rec, _, _ := runMiddleware("Bearer " + signToken(t, []byte("other-secret"), userID))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": userID,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := token.SignedString(testSecret)
		if err != nil {
			t.Fatalf("Failed to sign token: %v", err)
		}
		rec, _, _ := runMiddleware("Bearer " + signed)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("Non-UUID subject is rejected", func(t *testing.T) {
		rec, _, _ := runMiddleware("Bearer " + signToken(t, testSecret, "not-a-uuid"))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})
}
