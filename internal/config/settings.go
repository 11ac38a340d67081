package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Settings holds process configuration loaded from the environment.
type Settings struct {
	Port      string
	LogLevel  string
	OutputDir string

	BrandName    string
	BrandPrimary string
	BrandAccent  string
	ContactURL   string
}

// LoadSettings reads an optional .env file (or the given files) and then the
// COASTFI_* environment variables. Variables already set in the environment
// win over file values.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	s := &Settings{
		Port:         getenv("COASTFI_PORT", "8080"),
		LogLevel:     getenv("COASTFI_LOG_LEVEL", "info"),
		OutputDir:    getenv("COASTFI_OUTPUT_DIR", "."),
		BrandName:    getenv("COASTFI_BRAND_NAME", "Coast FI Calculator"),
		BrandPrimary: getenv("COASTFI_BRAND_PRIMARY", "#2F2A26"),
		BrandAccent:  getenv("COASTFI_BRAND_ACCENT", "#E3B800"),
		ContactURL:   os.Getenv("COASTFI_CONTACT_URL"),
	}
	if _, err := strconv.Atoi(s.Port); err != nil {
		return nil, fmt.Errorf("COASTFI_PORT must be numeric, got %q", s.Port)
	}
	if _, err := s.Level(); err != nil {
		return nil, err
	}
	return s, nil
}

// Level parses the configured log level.
func (s *Settings) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
