// file: internals/helpers/oss/oss_file_service.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// OSSBlobService adalah blob store path-addressed di atas Aliyun OSS.
// Dibuat sekali di route setup dan dioper ke controller (bukan singleton
// per-file seperti implementasi lama).
type OSSBlobService struct {
	cfg    OSSConfig
	bucket *oss.Bucket
	webp   WebPOptions
}

func NewOSSBlobServiceFromEnv() (*OSSBlobService, error) {
	cfg, err := OSSConfigFromEnv()
	if err != nil {
		return nil, err
	}
	bucket, err := cfg.NewBucket()
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{cfg: cfg, bucket: bucket, webp: DefaultWebPOptionsFromEnv()}, nil
}

// UploadImage re-encode gambar ke WebP (plus thumbnail) lalu simpan di dir.
// Mengembalikan URL publik gambar utama dan thumbnail.
func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > MaxUploadSize {
		return "", "", fmt.Errorf("file terlalu besar (maks %d bytes)", MaxUploadSize)
	}
	raw, err := readAll(fh)
	if err != nil {
		return "", "", err
	}

	encoded, err := ToWebP(raw, b.webp)
	if err != nil {
		return "", "", err
	}
	thumb, err := Thumbnail(raw, b.webp)
	if err != nil {
		return "", "", err
	}

	base := uuid.New().String()
	key := joinKey(dir, base+".webp")
	thumbKey := joinKey(dir, base+"_thumb.webp")

	if err := putObject(b.bucket, key, bytes.NewReader(encoded), "image/webp"); err != nil {
		return "", "", fmt.Errorf("upload gambar: %w", err)
	}
	if err := putObject(b.bucket, thumbKey, bytes.NewReader(thumb), "image/webp"); err != nil {
		// thumbnail best-effort; gambar utama sudah tersimpan
		return b.cfg.PublicURL(key), "", nil
	}
	return b.cfg.PublicURL(key), b.cfg.PublicURL(thumbKey), nil
}

// UploadRawToDir menyimpan file apa adanya (dokumen, CSV, dsb).
// Mengembalikan URL publik dan object key.
func (b *OSSBlobService) UploadRawToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > MaxUploadSize {
		return "", "", fmt.Errorf("file terlalu besar (maks %d bytes)", MaxUploadSize)
	}
	raw, err := readAll(fh)
	if err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := mime.TypeByExtension(ext)
	key := joinKey(dir, uuid.New().String()+ext)

	if err := putObject(b.bucket, key, bytes.NewReader(raw), contentType); err != nil {
		return "", "", fmt.Errorf("upload file: %w", err)
	}
	return b.cfg.PublicURL(key), key, nil
}

// SignedURLByKey membuat URL GET bertanda tangan dengan masa berlaku ttl.
func (b *OSSBlobService) SignedURLByKey(key string, ttl time.Duration) (string, error) {
	return signURL(b.bucket, key, ttl)
}

// SignedURLByPublicURL menerima URL publik lalu menandatanganinya.
func (b *OSSBlobService) SignedURLByPublicURL(publicURL string, ttl time.Duration) (string, error) {
	key, err := b.cfg.KeyFromPublicURL(publicURL)
	if err != nil {
		return "", err
	}
	return signURL(b.bucket, key, ttl)
}

// DeleteByPublicURL menghapus object berdasarkan URL publiknya.
func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := b.cfg.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return b.bucket.DeleteObject(key)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("buka file upload: %w", err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
}

func joinKey(dir, name string) string {
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
