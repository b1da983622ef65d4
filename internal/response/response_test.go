package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFail_BodyShape(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"email": "bad"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != ErrValidation || body.Message != GetMessage(ErrValidation) {
		t.Errorf("body = %+v", body)
	}
	if body.RequestID != "req-123" || w.Header().Get("X-Request-ID") != "req-123" {
		t.Errorf("request id not propagated: %q", body.RequestID)
	}
	if body.Fields["email"] != "bad" {
		t.Errorf("fields = %v", body.Fields)
	}
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
	r.ServeHTTP(w, req)

	if got := w.Body.String(); len(got) > maxRequestIDLen || got == "" {
		t.Errorf("request id = %q", got)
	}
}

func TestUnavailable(t *testing.T) {
	r := gin.New()
	r.GET("/x", Unavailable)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
	if !strings.Contains(w.Body.String(), string(ErrServiceUnavailable)) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetMessage_AuthMessages(t *testing.T) {
	tests := map[ErrCode]string{
		ErrTokenRequired:      "Token required",
		ErrTokenInvalid:       "Invalid token",
		ErrInvalidCredentials: "Invalid login",
		ErrInternal:           "Server error",
		ErrCode("UNKNOWN"):    "Server error",
	}
	for code, want := range tests {
		if got := GetMessage(code); got != want {
			t.Errorf("GetMessage(%s) = %q, want %q", code, got, want)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	if p.TotalPages != 3 || p.TotalItems != 25 {
		t.Errorf("pagination = %+v", p)
	}
	if NewPagination(1, 0, 5).TotalPages != 0 {
		t.Error("zero per-page should not divide")
	}
}
