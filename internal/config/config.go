package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"

	"github.com/alnah/go-embedlogo/internal/fileutil"
)

// AppName names the per-user config directory under XDG_CONFIG_HOME.
const AppName = "go-embedlogo"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// MaxInputSize limits config input to prevent memory exhaustion (1MB).
var MaxInputSize = 1 << 20

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxMIMETypeLength = 127  // RFC 6838: type and subtype are 127 chars each at most
	MaxSrcValueLength = 2048 // Browser URL limit
)

// Default values applied when neither config, env nor flags set a field.
const (
	DefaultImagePath    = "logo.png"
	DefaultDocumentPath = "index.html"
	DefaultMIMEType     = "image/png"
)

// Config holds all configuration for an inlining run.
type Config struct {
	Image    ImageConfig    `yaml:"image"`
	Document DocumentConfig `yaml:"document"`
}

// ImageConfig describes the image asset to inline.
type ImageConfig struct {
	Path     string `yaml:"path"`     // default: logo.png
	MIMEType string `yaml:"mimeType"` // default: image/png
	Keep     bool   `yaml:"keep"`     // keep the image after inlining
}

// DocumentConfig describes the HTML document to rewrite.
type DocumentConfig struct {
	Path     string `yaml:"path"`     // default: index.html
	SrcValue string `yaml:"srcValue"` // src attribute value to replace (default: image path)
}

// DefaultConfig returns the configuration matching a plain run in the
// current directory.
func DefaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Path:     DefaultImagePath,
			MIMEType: DefaultMIMEType,
		},
		Document: DocumentConfig{
			Path: DefaultDocumentPath,
		},
	}
}

// Validate checks field lengths and formats.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("image.path", c.Image.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("image.mimeType", c.Image.MIMEType, MaxMIMETypeLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.path", c.Document.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.srcValue", c.Document.SrcValue, MaxSrcValueLength); err != nil {
		return err
	}

	if c.Image.MIMEType != "" && !IsMIMEType(c.Image.MIMEType) {
		return fmt.Errorf("%w: image.mimeType %q (must be type/subtype)", ErrInvalidField, c.Image.MIMEType)
	}
	if strings.ContainsRune(c.Document.SrcValue, '"') {
		return fmt.Errorf("%w: document.srcValue must not contain double quotes", ErrInvalidField)
	}

	return nil
}

// IsMIMEType reports whether s has the shape type/subtype with no
// whitespace or parameters.
func IsMIMEType(s string) bool {
	typ, sub, ok := strings.Cut(s, "/")
	if !ok || typ == "" || sub == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n;,") && !strings.Contains(sub, "/")
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields left empty in the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeStrict unmarshals YAML, rejecting unknown fields.
func decodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return errors.New("empty config file")
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("input exceeds maximum size: %d bytes (max %d)", len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// UserConfigDir returns the per-user config directory.
// On Linux: ~/.config/go-embedlogo
func UserConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, UserConfigDir()
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	locations := []string{"", UserConfigDir()}
	triedPaths := make([]string, 0, len(extensions)*len(locations))

	for _, dir := range locations {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			triedPaths = append(triedPaths, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
