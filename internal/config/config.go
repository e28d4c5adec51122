package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DataDir      string
	DBDSN        string
	UseSQLite    bool // static toggle: when off, the blob store is the write target
	PollInterval time.Duration
	KVQuota      int
	LogFile      string
}

func Load() Config {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("MOTOPARTS_PORT", "8080"),
		DataDir:      getenv("MOTOPARTS_DATA_DIR", "./data"),
		UseSQLite:    getbool("MOTOPARTS_USE_SQLITE", true),
		PollInterval: getdur("MOTOPARTS_POLL_INTERVAL", 500*time.Millisecond),
		KVQuota:      getint("MOTOPARTS_KV_QUOTA", 5<<20),
		LogFile:      os.Getenv("MOTOPARTS_LOG_FILE"),
	}
	cfg.DBDSN = getenv("MOTOPARTS_DB_DSN", filepath.Join(cfg.DataDir, "motoparts.db"))

	log.Printf("[config] PORT=%s DATA_DIR=%s DB_DSN=%s USE_SQLITE=%v POLL=%s",
		cfg.Port, cfg.DataDir, cfg.DBDSN, cfg.UseSQLite, cfg.PollInterval)
	return cfg
}

// KVPath is where the single-file key-value store lives.
func (c Config) KVPath() string {
	return filepath.Join(c.DataDir, "local.json")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] bad bool %s=%q, using %v", key, v, def)
		return def
	}
	return b
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] bad int %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] bad duration %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
