package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func setupSessionRouter(tokens *SessionTokens) *gin.Engine {
	r := gin.New()
	r.Use(SessionAuthMiddleware(tokens))
	r.GET("/test", func(c *gin.Context) {
		id, _ := SessionID(c)
		c.JSON(http.StatusOK, gin.H{"session_id": id})
	})
	return r
}

func doAuthRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSessionTokens(t *testing.T) {
	tokens := NewSessionTokens("test-secret", time.Hour)

	t.Run("round_trip", func(t *testing.T) {
		token, expiresAt, err := tokens.Generate("session-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Until(expiresAt) <= 59*time.Minute {
			t.Errorf("unexpected expiry %s", expiresAt)
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.SessionID != "session-1" {
			t.Errorf("session id = %q, want session-1", claims.SessionID)
		}
	})

	t.Run("wrong_secret", func(t *testing.T) {
		token, _, _ := NewSessionTokens("other-secret", time.Hour).Generate("session-1")
		if _, err := tokens.Parse(token); err == nil {
			t.Error("expected token signed with another secret to be rejected")
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, _, _ := NewSessionTokens("test-secret", -time.Minute).Generate("session-1")
		if _, err := tokens.Parse(token); err == nil {
			t.Error("expected expired token to be rejected")
		}
	})

	t.Run("foreign_issuer", func(t *testing.T) {
		claims := &SessionClaims{
			SessionID:        "session-1",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"},
		}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if _, err := tokens.Parse(token); err == nil {
			t.Error("expected token from another issuer to be rejected")
		}
	})
}

func TestSessionAuthMiddleware(t *testing.T) {
	tokens := NewSessionTokens("test-secret", time.Hour)
	valid, _, err := tokens.Generate("session-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid_token", "Bearer " + valid, http.StatusOK},
		{"missing_header", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage_token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAuthRequest(setupSessionRouter(tokens), tt.header)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			body := parseBody(t, rec)
			if tt.wantStatus == http.StatusOK {
				if id, _ := body["session_id"].(string); id != "session-42" {
					t.Errorf("session_id = %q, want session-42", id)
				}
				return
			}
			errObj, ok := body["error"].(map[string]interface{})
			if !ok {
				t.Fatal("expected error object in response")
			}
			if code, _ := errObj["code"].(string); code != "UNAUTHORIZED" {
				t.Errorf("error code = %q, want UNAUTHORIZED", code)
			}
		})
	}
}
