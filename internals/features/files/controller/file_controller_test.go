package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Tanpa konfigurasi OSS, controller dipasang dengan Blob nil; setiap
// endpoint file harus menjawab 503, bukan panic.
func TestFileEndpointsWithoutBlobStore(t *testing.T) {
	app := fiber.New()
	ctl := NewFileController(nil)
	app.Post("/files/images", ctl.UploadImage)
	app.Post("/files", ctl.UploadRaw)
	app.Get("/files/signed-url", ctl.SignedURL)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"upload image", "POST", "/files/images"},
		{"upload raw", "POST", "/files"},
		{"signed url", "GET", "/files/signed-url?url=https://example.com/x.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != fiber.StatusServiceUnavailable {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusServiceUnavailable)
			}
		})
	}
}
