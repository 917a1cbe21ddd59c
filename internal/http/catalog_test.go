package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func doMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, imageName string, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = fw.Write([]byte("fake-image-bytes"))
	}
	_ = w.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validPackageForm() map[string]string {
	return map[string]string{
		"title":             "Bali Escape",
		"category_id":       "2",
		"price":             "1250.50",
		"duration_days":     "5",
		"short_description": "Five days in Bali",
		"description":       "Full itinerary...",
		"status":            "active",
	}
}

func TestCreatePackageRejectsBadNumbers(t *testing.T) {
	r, mock := newTestRouter(t)
	token := adminToken(t)

	bad := []map[string]string{
		{"price": "0"},
		{"price": "-10"},
		{"price": "abc"},
		{"duration_days": "0"},
		{"duration_days": "2.5"},
		{"category_id": ""},
		{"title": ""},
	}
	for i, override := range bad {
		form := validPackageForm()
		for k, v := range override {
			form[k] = v
		}
		w := doMultipart(t, r, http.MethodPost, "/api/admin/packages", form, "", token)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("case %d (%v): expected 400, got %d (%s)", i, override, w.Code, w.Body.String())
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("rejected forms must not reach the DB: %v", err)
	}
}

func TestCreatePackageWithImage(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO packages").
		WillReturnResult(sqlmock.NewResult(4, 1))

	w := doMultipart(t, r, http.MethodPost, "/api/admin/packages",
		validPackageForm(), "bali beach.jpg", adminToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTourStoresImageOnDisk(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO tours").
		WillReturnResult(sqlmock.NewResult(9, 1))

	w := doMultipart(t, r, http.MethodPost, "/api/admin/tours",
		validPackageForm(), "dune ride.png", adminToken(t))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	entries, err := os.ReadDir(filepath.Join(lastUploadDir, "tours"))
	if err != nil {
		t.Fatalf("upload dir missing: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "-dune-ride.png") {
		t.Fatalf("expected one sanitized tour image, got %v", entries)
	}
}
