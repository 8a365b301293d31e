package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-embedlogo/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // EMBEDLOGO_CONFIG: config file name or path
	Image      string // EMBEDLOGO_IMAGE: image path
	Document   string // EMBEDLOGO_DOCUMENT: document path
	SrcValue   string // EMBEDLOGO_SRC: src attribute value to replace
	MIMEType   string // EMBEDLOGO_MIME_TYPE: data URI media type
}

// knownEnvVars lists valid EMBEDLOGO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"EMBEDLOGO_CONFIG":    true,
	"EMBEDLOGO_IMAGE":     true,
	"EMBEDLOGO_DOCUMENT":  true,
	"EMBEDLOGO_SRC":       true,
	"EMBEDLOGO_MIME_TYPE": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("EMBEDLOGO_CONFIG"),
		Image:      os.Getenv("EMBEDLOGO_IMAGE"),
		Document:   os.Getenv("EMBEDLOGO_DOCUMENT"),
		SrcValue:   os.Getenv("EMBEDLOGO_SRC"),
		MIMEType:   os.Getenv("EMBEDLOGO_MIME_TYPE"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized EMBEDLOGO_* variables.
// Helps catch typos like EMBEDLOGO_IMG instead of EMBEDLOGO_IMAGE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "EMBEDLOGO_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Image != "" {
		cfg.Image.Path = env.Image
	}
	if env.Document != "" {
		cfg.Document.Path = env.Document
	}
	if env.SrcValue != "" {
		cfg.Document.SrcValue = env.SrcValue
	}
	if env.MIMEType != "" {
		cfg.Image.MIMEType = env.MIMEType
	}
}
