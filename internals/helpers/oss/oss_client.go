// file: internals/helpers/oss/oss_client.go
package helper

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// batas ukuran uploader di controller (guard ringan)
var MaxUploadSize = int64(5 * 1024 * 1024)

type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicBaseURL   string
}

func OSSConfigFromEnv() (OSSConfig, error) {
	cfg := OSSConfig{
		Endpoint:        getEnv("OSS_ENDPOINT"),
		AccessKeyID:     getEnv("OSS_ACCESS_KEY_ID"),
		AccessKeySecret: getEnv("OSS_ACCESS_KEY_SECRET"),
		Bucket:          getEnv("OSS_BUCKET"),
		PublicBaseURL:   getEnv("OSS_PUBLIC_BASE_URL"),
	}
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return cfg, fmt.Errorf("OSS env belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint)
	}
	return cfg, nil
}

func (cfg OSSConfig) NewBucket() (*oss.Bucket, error) {
	client, err := oss.New("https://"+cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", cfg.Bucket, err)
	}
	return bucket, nil
}

// PublicURL membentuk URL publik dari object key.
func (cfg OSSConfig) PublicURL(key string) string {
	return strings.TrimRight(cfg.PublicBaseURL, "/") + "/" + strings.TrimLeft(key, "/")
}

// KeyFromPublicURL membalikkan PublicURL: ambil object key dari URL publik.
func (cfg OSSConfig) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("url tidak valid: %w", err)
	}
	key := strings.TrimLeft(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("object key kosong di URL %q", publicURL)
	}
	return key, nil
}

func putObject(bucket *oss.Bucket, key string, r io.Reader, contentType string) error {
	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	return bucket.PutObject(key, r, opts...)
}

func signURL(bucket *oss.Bucket, key string, ttl time.Duration) (string, error) {
	secs := int64(ttl / time.Second)
	if secs <= 0 {
		secs = 300
	}
	return bucket.SignURL(key, oss.HTTPGet, secs)
}
