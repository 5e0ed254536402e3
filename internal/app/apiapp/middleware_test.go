package apiapp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	authsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/auth"
)

func TestAuthMiddlewarePassesIdentity(t *testing.T) {
	manager := authsvc.NewJWTManager("test-secret", time.Minute)
	token, _, err := manager.GenerateAccessToken(42, "member")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var gotIdentity authsvc.Identity
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := authsvc.IdentityFromContext(r.Context())
		if !ok {
			t.Fatalf("identity missing from context")
		}
		gotIdentity = id
	})

	handler := AuthMiddleware(manager, zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/discover", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("next handler was not called, status %d", rec.Code)
	}
	if gotIdentity.UserID != 42 || gotIdentity.Role != "member" {
		t.Fatalf("unexpected identity: %+v", gotIdentity)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	manager := authsvc.NewJWTManager("test-secret", time.Minute)
	handler := AuthMiddleware(manager, zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("next handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/discover", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	manager := authsvc.NewJWTManager("test-secret", time.Minute)
	other := authsvc.NewJWTManager("other-secret", time.Minute)
	token, _, err := other.GenerateAccessToken(42, "member")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	handler := AuthMiddleware(manager, zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("next handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/discover", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareWithoutManager(t *testing.T) {
	handler := AuthMiddleware(nil, zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("next handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/discover", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusInternalServerError)
	}
}
