package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	KeyOutputDir    = "STF_OUTPUT_DIR"
	KeyQuality      = "STF_QUALITY"
	KeyFFmpegPath   = "STF_FFMPEG_PATH"
	KeyCookieFile   = "STF_COOKIE_FILE"
	KeyJSRuntime    = "STF_JS_RUNTIME"
	KeyPaceDelay    = "STF_PACE_DELAY_SECONDS"
	KeyMaxAttempts  = "STF_MAX_ATTEMPTS"
	KeyLogLevel     = "STF_LOG_LEVEL"
	KeyLogFile      = "STF_LOG_FILE"
	KeyLogMaxSizeMB = "STF_LOG_MAX_SIZE_MB"
)

// Default values
const (
	DefaultOutputDir   = "files"
	DefaultQuality     = "192"
	DefaultPaceDelay   = 2 * time.Second
	DefaultMaxAttempts = 3
	DefaultLogLevel    = "info"
	DefaultLogMaxSize  = 20
)

// Quality presets accepted for MP3 encoding, in kbps.
var QualityChoices = []string{"128", "192", "320"}

// Settings stores the application configuration, read from the environment
// with an optional .env file. Optional collaborator inputs (cookie file) are
// explicit here so tests can inject presence or absence deterministically
// instead of relying on ambient discovery.
type Settings struct {
	OutputDir   string
	Quality     string // MP3 bitrate in kbps
	FFmpegPath  string // empty resolves "ffmpeg" on PATH
	CookieFile  string // optional; passed to the retrieval tool when set
	JSRuntime   string // optional script runtime binary for access challenges
	PaceDelay   time.Duration
	MaxAttempts int
	LogLevel    string
	LogFile     string
	LogMaxSize  int
}

// Load builds Settings from the environment. A .env file in the working
// directory is honored when present; a missing file is not an error.
func Load() *Settings {
	_ = godotenv.Load()

	return &Settings{
		OutputDir:   getEnv(KeyOutputDir, DefaultOutputDir),
		Quality:     getEnv(KeyQuality, DefaultQuality),
		FFmpegPath:  getEnv(KeyFFmpegPath, ""),
		CookieFile:  getEnv(KeyCookieFile, ""),
		JSRuntime:   getEnv(KeyJSRuntime, ""),
		PaceDelay:   time.Duration(getEnvInt(KeyPaceDelay, int(DefaultPaceDelay/time.Second))) * time.Second,
		MaxAttempts: clampAttempts(getEnvInt(KeyMaxAttempts, DefaultMaxAttempts)),
		LogLevel:    getEnv(KeyLogLevel, DefaultLogLevel),
		LogFile:     getEnv(KeyLogFile, ""),
		LogMaxSize:  getEnvInt(KeyLogMaxSizeMB, DefaultLogMaxSize),
	}
}

// ValidQuality reports whether q is one of the supported bitrates.
func ValidQuality(q string) bool {
	for _, choice := range QualityChoices {
		if q == choice {
			return true
		}
	}
	return false
}

func clampAttempts(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
