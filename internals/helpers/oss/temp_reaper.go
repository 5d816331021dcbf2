// file: internals/helpers/oss/temp_reaper.go
package helper

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

type TempReaperConfig struct {
	Dir          string
	TTL          time.Duration
	CronSchedule string
	DryRun       bool
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnvIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// ── ENTRYPOINT: panggil dari main.go
// Job ini hanya menyapu file temp hasil upload/export, tidak menyentuh data inti.
func StartTempFileReaperCron() {
	cfg := TempReaperConfig{
		Dir:          getEnvOrDefault("TEMP_DIR", os.TempDir()+"/sekolahku"),
		TTL:          time.Duration(getEnvIntOr("TEMP_TTL_HOURS", 24)) * time.Hour,
		CronSchedule: getEnvOrDefault("TEMP_REAPER_CRON", "0 * * * *"), // tiap jam
		DryRun:       getEnvBool("TEMP_REAPER_DRY_RUN", false),
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSchedule, func() { reapTempFiles(cfg) }); err != nil {
		log.Printf("[ERROR] temp reaper cron schedule %q: %v", cfg.CronSchedule, err)
		return
	}
	c.Start()
	log.Printf("[INFO] temp reaper aktif: dir=%s ttl=%s cron=%q dry_run=%v",
		cfg.Dir, cfg.TTL, cfg.CronSchedule, cfg.DryRun)
}

func reapTempFiles(cfg TempReaperConfig) {
	cutoff := time.Now().Add(-cfg.TTL)
	removed := 0

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[ERROR] temp reaper baca dir %s: %v", cfg.Dir, err)
		}
		return
	}

	for _, e := range entries {
		info, err := e.Info()
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(cfg.Dir, e.Name())
		if cfg.DryRun {
			log.Printf("[DRY-RUN] temp reaper akan hapus %s (umur %s)", path, time.Since(info.ModTime()))
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Printf("[ERROR] temp reaper hapus %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("[CLEANUP] %d file temp dihapus dari %s", removed, cfg.Dir)
	}
}
