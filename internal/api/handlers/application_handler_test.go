package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lkcs/lkcs-backend/internal/services"
	"github.com/lkcs/lkcs-backend/internal/upload"
)

func newApplicationRouter(t *testing.T) (*gin.Engine, *memApplicationRepo, *memSaver) {
	t.Helper()

	repo := newMemApplicationRepo()
	store := newMemSaver()
	svc := services.NewApplicationService(repo, store, testLogger())
	h := NewApplicationHandler(svc, upload.ResumePolicy(store))

	r := gin.New()
	r.GET("/api/applications", h.List)
	r.POST("/api/applications", h.Create)
	r.GET("/api/applications/:id/resume", h.Resume)
	r.DELETE("/api/applications/:id", h.Delete)
	return r, repo, store
}

func applicationBody(t *testing.T, fields map[string]string, resumeName, resumeType string, resumeBytes []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if resumeName != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="resume"; filename="`+resumeName+`"`)
		h.Set("Content-Type", resumeType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(resumeBytes); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "9876543210",
		"position": "Math Teacher",
	}
}

func TestApplicationCreateEndpoint(t *testing.T) {
	r, _, _ := newApplicationRouter(t)

	body, ct := applicationBody(t, validFields(), "cv.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Email  string `json:"email"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.Status != "pending" {
		t.Fatalf("bad response: %s", rec.Body.String())
	}
}

func TestApplicationCreateOversizedResume(t *testing.T) {
	r, _, store := newApplicationRouter(t)

	big := bytes.Repeat([]byte("a"), 6<<20) // 6MB, over the 5MB ceiling
	body, ct := applicationBody(t, validFields(), "cv.pdf", "application/pdf", big)
	req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "File too large" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if store.count() != 0 {
		t.Fatal("oversized upload left a file behind")
	}
}

func TestApplicationCreateMissingFieldsLeavesNoFile(t *testing.T) {
	r, _, store := newApplicationRouter(t)

	body, ct := applicationBody(t, map[string]string{"name": "J"}, "cv.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Validation failed" || len(resp.Details) == 0 {
		t.Fatalf("expected rule list, got %s", rec.Body.String())
	}
	if store.count() != 0 {
		t.Fatal("rejected submission left a file behind")
	}
}

func TestApplicationCreateUnsupportedType(t *testing.T) {
	r, _, _ := newApplicationRouter(t)

	body, ct := applicationBody(t, validFields(), "cv.exe", "application/x-msdownload", []byte("MZ"))
	req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestApplicationDuplicateEmail(t *testing.T) {
	r, _, store := newApplicationRouter(t)

	for attempt, want := range []int{http.StatusCreated, http.StatusConflict} {
		body, ct := applicationBody(t, validFields(), "cv.pdf", "application/pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("attempt %d: expected %d, got %d: %s", attempt+1, want, rec.Code, rec.Body.String())
		}
	}
	if store.count() != 1 {
		t.Fatalf("expected only the first resume on disk, got %d files", store.count())
	}
}

func TestApplicationResumeInvalidID(t *testing.T) {
	r, _, _ := newApplicationRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/not-a-valid-id/resume", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Invalid application ID format" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
