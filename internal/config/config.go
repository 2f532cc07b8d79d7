// Package config loads and validates the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-redtape/internal/fileutil"
	"github.com/alnah/go-redtape/internal/gfm"
	"github.com/alnah/go-redtape/internal/pipeline"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength  = 4096
	MaxURLLength   = 2048 // Browser limit
	MaxNameLength  = 100
	MaxLangLength  = 35 // BCP 47 practical maximum
	MaxScriptCount = 20
)

// AppDirName is the directory under the user config dir searched for configs.
const AppDirName = "go-redtape"

// Config holds all configuration for document generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Assets    AssetsConfig    `yaml:"assets"`
	Template  TemplateConfig  `yaml:"template"`
	Highlight HighlightConfig `yaml:"highlight"`
	Scripts   ScriptsConfig   `yaml:"scripts"`
	Renderer  string          `yaml:"renderer"` // "goldmark" (default) or "commonmark"
	Workers   int             `yaml:"workers"`  // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Used when no arguments are given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to each source
}

// AssetsConfig defines stylesheet options.
type AssetsConfig struct {
	BasePath string   `yaml:"basePath"` // Empty = embedded assets only
	Embed    bool     `yaml:"embed"`    // Inline stylesheets instead of linking
	Styles   []string `yaml:"styles"`   // Extra styles loaded after base
}

// TemplateConfig selects the document template.
type TemplateConfig struct {
	Name string `yaml:"name"` // Template name or path to an .html file
	Lang string `yaml:"lang"` // <html lang>, default "en"
}

// HighlightConfig defines code block handling.
type HighlightConfig struct {
	Fenced      string `yaml:"fenced"`      // rich, light, none
	ChromaStyle string `yaml:"chromaStyle"` // chroma style name, default "github"
}

// ScriptsConfig defines extra scripts appended to every page.
type ScriptsConfig struct {
	Enabled bool     `yaml:"enabled"`
	URLs    []string `yaml:"urls"`
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig; available for configs built in code.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"template.name", c.Template.Name, MaxPathLength},
		{"template.lang", c.Template.Lang, MaxLangLength},
		{"highlight.chromaStyle", c.Highlight.ChromaStyle, MaxNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for i, style := range c.Assets.Styles {
		if err := validateFieldLength(fmt.Sprintf("assets.styles[%d]", i), style, MaxNameLength); err != nil {
			return err
		}
	}

	if c.Highlight.Fenced != "" {
		if _, err := gfm.ParseFencedMode(c.Highlight.Fenced); err != nil {
			return fmt.Errorf("%w: highlight.fenced: %v", ErrInvalidValue, err)
		}
	}
	if c.Highlight.ChromaStyle != "" && !gfm.IsChromaStyle(c.Highlight.ChromaStyle) {
		return fmt.Errorf("%w: highlight.chromaStyle: unknown style %q", ErrInvalidValue, c.Highlight.ChromaStyle)
	}

	if c.Renderer != "" {
		switch strings.ToLower(c.Renderer) {
		case pipeline.RendererGoldmark, pipeline.RendererCommonMark:
		default:
			return fmt.Errorf("%w: renderer: %q (must be %s)", ErrInvalidValue, c.Renderer, strings.Join(pipeline.Renderers, " or "))
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers: must be >= 0, got %d", ErrInvalidValue, c.Workers)
	}

	if len(c.Scripts.URLs) > MaxScriptCount {
		return fmt.Errorf("%w: scripts.urls: %d entries (max %d)", ErrInvalidValue, len(c.Scripts.URLs), MaxScriptCount)
	}
	for i, u := range c.Scripts.URLs {
		field := fmt.Sprintf("scripts.urls[%d]", i)
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("%w: %s: empty", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field, u, MaxURLLength); err != nil {
			return err
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Highlight: HighlightConfig{
			Fenced:      string(gfm.DefaultFencedMode),
			ChromaStyle: gfm.DefaultChromaStyle,
		},
		Renderer: pipeline.RendererGoldmark,
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator or extension is read as a path;
// otherwise it is resolved in standard locations.
// Missing files are an error, never a silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
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
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files a config name resolves to, in lookup
// order: name.yaml then name.yml, in the current directory and then in the
// user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, AppDirName))
	}

	paths := make([]string, 0, len(dirs)*len(extensions))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
