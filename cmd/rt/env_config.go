package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/alnah/go-redtape/internal/config"
	"github.com/alnah/go-redtape/internal/ui"
)

// envPrefix is the prefix of every environment override.
const envPrefix = "RT"

// ErrInvalidEnv indicates an RT_* variable that cannot be decoded.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envConfig holds configuration from RT_* environment variables.
// Field names map to variables through split_words: ChromaStyle is
// RT_CHROMA_STYLE.
type envConfig struct {
	Config      string        `split_words:"true"`
	InputDir    string        `split_words:"true"`
	Destination string        `split_words:"true"`
	Fenced      string        `split_words:"true"`
	ChromaStyle string        `split_words:"true"`
	Renderer    string        `split_words:"true"`
	Template    string        `split_words:"true"`
	AssetPath   string        `split_words:"true"`
	Embed       bool          `split_words:"true"`
	Lang        string        `split_words:"true"`
	Timeout     time.Duration `split_words:"true"`
	Workers     int           `split_words:"true"`
}

// knownEnvVars lists valid RT_* environment variables.
var knownEnvVars = map[string]bool{
	"RT_CONFIG":       true,
	"RT_INPUT_DIR":    true,
	"RT_DESTINATION":  true,
	"RT_FENCED":       true,
	"RT_CHROMA_STYLE": true,
	"RT_RENDERER":     true,
	"RT_TEMPLATE":     true,
	"RT_ASSET_PATH":   true,
	"RT_EMBED":        true,
	"RT_LANG":         true,
	"RT_TIMEOUT":      true,
	"RT_WORKERS":      true,
}

// loadEnvConfig reads configuration from RT_* environment variables.
func loadEnvConfig() (*envConfig, error) {
	var cfg envConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: RT_TIMEOUT must be positive, got %v", ErrInvalidEnv, cfg.Timeout)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: RT_WORKERS must be >= 0, got %d", ErrInvalidEnv, cfg.Workers)
	}
	return &cfg, nil
}

// warnUnknownEnvVars warns about RT_* variables that are not recognized,
// which are usually typos.
func warnUnknownEnvVars(u *ui.UI) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix+"_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			u.Warning("unknown environment variable %s (typo?)", name)
		}
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. CLI flags are applied afterwards by mergeFlags, giving
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.Destination != "" {
		cfg.Output.DefaultDir = env.Destination
	}
	if env.Fenced != "" {
		cfg.Highlight.Fenced = env.Fenced
	}
	if env.ChromaStyle != "" {
		cfg.Highlight.ChromaStyle = env.ChromaStyle
	}
	if env.Renderer != "" {
		cfg.Renderer = env.Renderer
	}
	if env.Template != "" {
		cfg.Template.Name = env.Template
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Embed {
		cfg.Assets.Embed = true
	}
	if env.Lang != "" {
		cfg.Template.Lang = env.Lang
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
