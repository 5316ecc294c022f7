package blackotp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mitchellh/go-homedir"

	"github.com/randalmurphal/blackotp/config"
)

// Config holds Decoder settings.
type Config struct {
	// PadDir holds pad files named <id><PadExt>.
	PadDir string

	// PadExt is appended to the id when looking in PadDir.
	PadExt string

	// ManifestPath names a pad manifest, checked before PadDir.
	ManifestPath string

	// LogLevel is the minimum level NewLogger emits.
	LogLevel slog.Level
}

// LoadConfig maps resolved settings onto a Config, expanding "~" in paths.
func LoadConfig(resolved *config.Resolved) (Config, error) {
	cfg := Config{PadExt: resolved.Get(config.KeyPadExt)}

	var err error
	if cfg.PadDir, err = homedir.Expand(resolved.Get(config.KeyPadDir)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", config.KeyPadDir, err)
	}
	if cfg.ManifestPath, err = homedir.Expand(resolved.Get(config.KeyManifest)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", config.KeyManifest, err)
	}

	if level := resolved.Get(config.KeyLogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", config.KeyLogLevel, err)
		}
	}

	return cfg, nil
}

// NewLogger returns a text logger writing to w at cfg.LogLevel.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
