package main

// Notes:
// - loadEnvConfig and warnUnknownEnvVars use t.Setenv() which prevents
//   t.Parallel() at parent level.
// - applyEnvConfig: env values override the config file; flags are layered
//   on top by mergeFlags (see inline_test.go).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-embedlogo/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("EMBEDLOGO_CONFIG", "/path/to/config.yaml")
	t.Setenv("EMBEDLOGO_IMAGE", "brand.png")
	t.Setenv("EMBEDLOGO_DOCUMENT", "site/index.html")
	t.Setenv("EMBEDLOGO_SRC", "/static/brand.png")
	t.Setenv("EMBEDLOGO_MIME_TYPE", "image/webp")

	cfg := loadEnvConfig()

	if cfg.ConfigPath != "/path/to/config.yaml" {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.Image != "brand.png" {
		t.Errorf("Image = %q", cfg.Image)
	}
	if cfg.Document != "site/index.html" {
		t.Errorf("Document = %q", cfg.Document)
	}
	if cfg.SrcValue != "/static/brand.png" {
		t.Errorf("SrcValue = %q", cfg.SrcValue)
	}
	if cfg.MIMEType != "image/webp" {
		t.Errorf("MIMEType = %q", cfg.MIMEType)
	}
}

func TestLoadEnvConfig_Unset(t *testing.T) {
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}

	cfg := loadEnvConfig()
	if *cfg != (envConfig{}) {
		t.Errorf("loadEnvConfig() = %+v, want zero value", *cfg)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("EMBEDLOGO_IMGAE", "typo")
	t.Setenv("EMBEDLOGO_IMAGE", "ok")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "EMBEDLOGO_IMGAE") {
		t.Errorf("expected warning for EMBEDLOGO_IMGAE, got %q", out)
	}
	if strings.Contains(out, "EMBEDLOGO_IMAGE ") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Image.Path = "from-config.png"
		applyEnvConfig(&envConfig{
			Image:    "from-env.png",
			Document: "env.html",
			SrcValue: "env.png",
			MIMEType: "image/gif",
		}, cfg)

		if cfg.Image.Path != "from-env.png" {
			t.Errorf("Image.Path = %q", cfg.Image.Path)
		}
		if cfg.Document.Path != "env.html" {
			t.Errorf("Document.Path = %q", cfg.Document.Path)
		}
		if cfg.Document.SrcValue != "env.png" {
			t.Errorf("Document.SrcValue = %q", cfg.Document.SrcValue)
		}
		if cfg.Image.MIMEType != "image/gif" {
			t.Errorf("Image.MIMEType = %q", cfg.Image.MIMEType)
		}
	})

	t.Run("empty values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Document.Path = "from-config.html"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Document.Path != "from-config.html" {
			t.Errorf("Document.Path = %q", cfg.Document.Path)
		}
		if cfg.Image.Path != config.DefaultImagePath {
			t.Errorf("Image.Path = %q", cfg.Image.Path)
		}
	})
}
