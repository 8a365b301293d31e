package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	embedlogo "github.com/alnah/go-embedlogo"
	"github.com/alnah/go-embedlogo/internal/config"
	"github.com/alnah/go-embedlogo/internal/fileutil"
	"github.com/alnah/go-embedlogo/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUnexpectedArgs = errors.New("unexpected argument")
)

// runInline resolves configuration, runs the inliner and prints the outcome.
// The returned Result is nil if configuration failed before the run.
func runInline(ctx context.Context, flags *inlineFlags, env *Environment) (*embedlogo.Result, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inl := embedlogo.NewInliner(buildOptions(cfg, flags, env)...)
	result, runErr := inl.Run(ctx)
	printResult(result, inl.SrcValue(), flags, env)
	return result, runErr
}

// resolveConfig loads the config named by the flag, else by EMBEDLOGO_CONFIG,
// else returns defaults.
func resolveConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over cfg (CLI wins).
func mergeFlags(flags *inlineFlags, cfg *config.Config) {
	if flags.image != "" {
		cfg.Image.Path = flags.image
	}
	if flags.document != "" {
		cfg.Document.Path = flags.document
	}
	if flags.srcValue != "" {
		cfg.Document.SrcValue = flags.srcValue
	}
	if flags.mimeType != "" {
		cfg.Image.MIMEType = flags.mimeType
	}
	if flags.keepImage {
		cfg.Image.Keep = true
	}
}

// buildOptions converts a validated config into inliner options.
// Empty fields keep the inliner defaults.
func buildOptions(cfg *config.Config, flags *inlineFlags, env *Environment) []embedlogo.Option {
	opts := []embedlogo.Option{embedlogo.WithClock(env.Now)}

	if cfg.Image.Path != "" {
		opts = append(opts, embedlogo.WithImagePath(cfg.Image.Path))
	}
	if cfg.Document.Path != "" {
		opts = append(opts, embedlogo.WithDocumentPath(cfg.Document.Path))
	}
	if cfg.Document.SrcValue != "" {
		opts = append(opts, embedlogo.WithSrcValue(cfg.Document.SrcValue))
	}
	if cfg.Image.MIMEType != "" {
		opts = append(opts, embedlogo.WithMIMEType(cfg.Image.MIMEType))
	}
	if cfg.Image.Keep {
		opts = append(opts, embedlogo.WithKeepImage())
	}
	if flags.dryRun {
		opts = append(opts, embedlogo.WithDryRun())
	}

	return opts
}

// printResult writes the console report for a run. It is called even when
// the run failed, so completed steps are still reported before the error.
func printResult(r *embedlogo.Result, srcValue string, flags *inlineFlags, env *Environment) {
	if r == nil {
		return
	}
	quiet, verbose := flags.common.quiet, flags.common.verbose

	if r.Skipped {
		if !quiet {
			fmt.Fprintf(env.Stdout, "%s not found!\n", r.ImagePath)
		}
		return
	}

	if r.DryRun && !quiet {
		fmt.Fprintf(env.Stdout, "Would embed %s into %s (Size: %d chars, %d replacements)\n",
			r.ImagePath, r.DocumentPath, r.EmbedSize, r.Replacements)
	}

	if r.DocumentWritten && !quiet {
		fmt.Fprintf(env.Stdout, "Embedded %s into %s (Size: %d chars)\n", r.ImagePath, r.DocumentPath, r.EmbedSize)
	}

	if (r.DryRun || r.DocumentWritten) && !quiet {
		if r.Replacements == 0 {
			fmt.Fprintf(env.Stderr, "warning: %s unchanged%s\n", r.DocumentPath, hints.ForNoReplacements(srcValue))
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "Replaced %d src attribute(s)\n", r.Replacements)
			for _, ref := range r.Unreplaced {
				fmt.Fprintf(env.Stderr, "warning: %s still mentioned at %s\n", srcValue, ref)
			}
		}
	}

	if r.ImageDeleted && !quiet {
		fmt.Fprintf(env.Stdout, "Deleted %s\n", r.ImagePath)
	}

	if verbose && !quiet {
		fmt.Fprintf(env.Stdout, "Done in %v\n", r.Duration.Round(time.Millisecond))
	}
}

// formatError appends an actionable hint to err when one applies.
// r may be nil when the error happened before the run.
func formatError(err error, r *embedlogo.Result, configName string) string {
	msg := err.Error()

	imagePath, documentPath := embedlogo.DefaultImagePath, embedlogo.DefaultDocumentPath
	if r != nil {
		imagePath, documentPath = r.ImagePath, r.DocumentPath
	}

	switch {
	case errors.Is(err, embedlogo.ErrReadDocument) && errors.Is(err, os.ErrNotExist):
		return msg + hints.ForDocumentNotFound(documentPath)
	case errors.Is(err, embedlogo.ErrWriteDocument):
		return msg + hints.ForDocumentWrite(documentPath)
	case errors.Is(err, embedlogo.ErrDeleteImage):
		return msg + hints.ForImageDelete(imagePath)
	case errors.Is(err, config.ErrConfigNotFound):
		var candidates []string
		if configName != "" && !fileutil.IsFilePath(configName) {
			candidates = append(candidates, filepath.Join(config.UserConfigDir(), configName+".yaml"))
		}
		return msg + hints.ForConfigNotFound(candidates)
	}

	return msg
}
