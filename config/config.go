package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	TessdataPrefix string
	PaddleAPIURL   string
	FuzzyThreshold int
	MaxFileSize    int64
	LogLevel       string
	LogFormat      string
}

// LoadConfig reads configuration from the environment, seeded from a local
// .env file when present.
func LoadConfig() *Config {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	threshold := 65
	if v := os.Getenv("FUZZY_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			threshold = n
		}
	}

	return &Config{
		ServerPort:     envOr("SERVER_PORT", "8080"),
		TessdataPrefix: envOr("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		PaddleAPIURL:   envOr("PADDLEOCR_API_URL", "http://paddleocr:8866/predict/ocr_system"),
		FuzzyThreshold: threshold,
		MaxFileSize:    32 << 20, // 32 MB multipart limit
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "console"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
