package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/validator"
)

const testSessionID = "0191f0a2-7c1e-7b3a-9e2f-1a2b3c4d5e6f"

var errBoom = errors.New("boom")

// --- mock audit service ---

type auditEntry struct {
	sessionID string
	action    string
	detail    map[string]interface{}
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(sessionID, action, _ string, detail map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{sessionID: sessionID, action: action, detail: detail})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectSessionID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("sessionID", id)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- helper tests ---

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", apperrors.ErrInsufficientFunds, http.StatusBadRequest, "INSUFFICIENT_FUNDS"},
		{"wrapped app error", apperrors.Wrap(apperrors.ErrInternalServer, errBoom), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain error", errBoom, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { respondWithError(c, tt.err) })

			rec := doRequest(r, "GET", "/", "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tt.wantCode)
		})
	}
}

func TestParsePathIndex(t *testing.T) {
	r := gin.New()
	r.GET("/offers/:index", func(c *gin.Context) {
		n, err := parsePathIndex(c, "index")
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"index": n})
	})

	for path, want := range map[string]int{"/offers/0": http.StatusOK, "/offers/2": http.StatusOK, "/offers/-1": http.StatusBadRequest, "/offers/x": http.StatusBadRequest} {
		rec := doRequest(r, "GET", path, "")
		if rec.Code != want {
			t.Errorf("%s: expected %d, got %d", path, want, rec.Code)
		}
	}
}
