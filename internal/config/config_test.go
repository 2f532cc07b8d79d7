package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Highlight.Fenced != "light" {
		t.Errorf("Highlight.Fenced = %q, want light", cfg.Highlight.Fenced)
	}
	if cfg.Highlight.ChromaStyle != "github" {
		t.Errorf("Highlight.ChromaStyle = %q, want github", cfg.Highlight.ChromaStyle)
	}
	if cfg.Renderer != "goldmark" {
		t.Errorf("Renderer = %q, want goldmark", cfg.Renderer)
	}
	if cfg.Assets.Embed {
		t.Error("Assets.Embed = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", false},
		{"at limit", "1234567890", false},
		{"over limit", "12345678901", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, 10)
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantMsg string
	}{
		{
			name: "valid full config",
			mutate: func(c *Config) {
				c.Assets = AssetsConfig{BasePath: "./assets", Embed: true, Styles: []string{"print"}}
				c.Template = TemplateConfig{Name: "custom.html", Lang: "fr"}
				c.Highlight = HighlightConfig{Fenced: "rich", ChromaStyle: "monokai"}
				c.Scripts = ScriptsConfig{Enabled: true, URLs: []string{"https://cdn.example.com/a.js"}}
				c.Renderer = "commonmark"
				c.Workers = 4
			},
		},
		{
			name:   "fenced alias accepted",
			mutate: func(c *Config) { c.Highlight.Fenced = "pygments" },
		},
		{
			name:    "unknown fenced mode",
			mutate:  func(c *Config) { c.Highlight.Fenced = "fancy" },
			wantErr: ErrInvalidValue,
			wantMsg: "highlight.fenced",
		},
		{
			name:    "unknown chroma style",
			mutate:  func(c *Config) { c.Highlight.ChromaStyle = "no-such-style" },
			wantErr: ErrInvalidValue,
			wantMsg: "highlight.chromaStyle",
		},
		{
			name:    "unknown renderer",
			mutate:  func(c *Config) { c.Renderer = "blackfriday" },
			wantErr: ErrInvalidValue,
			wantMsg: "renderer",
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: ErrInvalidValue,
			wantMsg: "workers",
		},
		{
			name:    "empty script url",
			mutate:  func(c *Config) { c.Scripts.URLs = []string{" "} },
			wantErr: ErrInvalidValue,
			wantMsg: "scripts.urls[0]",
		},
		{
			name: "too many scripts",
			mutate: func(c *Config) {
				c.Scripts.URLs = make([]string, MaxScriptCount+1)
			},
			wantErr: ErrInvalidValue,
			wantMsg: "scripts.urls",
		},
		{
			name:    "script url too long",
			mutate:  func(c *Config) { c.Scripts.URLs = []string{"https://x/" + strings.Repeat("a", MaxURLLength)} },
			wantErr: ErrFieldTooLong,
			wantMsg: "scripts.urls[0]",
		},
		{
			name:    "lang too long",
			mutate:  func(c *Config) { c.Template.Lang = strings.Repeat("x", MaxLangLength+1) },
			wantErr: ErrFieldTooLong,
			wantMsg: "template.lang",
		},
		{
			name:    "style name too long",
			mutate:  func(c *Config) { c.Assets.Styles = []string{strings.Repeat("s", MaxNameLength+1)} },
			wantErr: ErrFieldTooLong,
			wantMsg: "assets.styles[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config from path", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "site.yaml", `
input:
  defaultDir: ./docs
output:
  defaultDir: ./public
assets:
  basePath: ./theme
  embed: true
  styles: [print]
template:
  name: article
  lang: de
highlight:
  fenced: rich
  chromaStyle: dracula
scripts:
  enabled: true
  urls:
    - https://cdn.example.com/mermaid.js
renderer: commonmark
workers: 2
`)

		got, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		want := &Config{
			Input:     InputConfig{DefaultDir: "./docs"},
			Output:    OutputConfig{DefaultDir: "./public"},
			Assets:    AssetsConfig{BasePath: "./theme", Embed: true, Styles: []string{"print"}},
			Template:  TemplateConfig{Name: "article", Lang: "de"},
			Highlight: HighlightConfig{Fenced: "rich", ChromaStyle: "dracula"},
			Scripts:   ScriptsConfig{Enabled: true, URLs: []string{"https://cdn.example.com/mermaid.js"}},
			Renderer:  "commonmark",
			Workers:   2,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "min.yml", "assets:\n  embed: true\n")

		got, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got.Highlight.Fenced != "light" || got.Renderer != "goldmark" {
			t.Errorf("defaults lost: %+v", got)
		}
		if !got.Assets.Embed {
			t.Error("Assets.Embed = false, want true")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "watermark:\n  enabled: true\n")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "empty.yaml", "")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "highlight:\n  fenced: sparkly\n")

		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yaml")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("name resolved in user config dir", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
		}

		configHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", configHome)
		appDir := filepath.Join(configHome, AppDirName)
		if err := os.MkdirAll(appDir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeConfig(t, appDir, "blog-x7q.yml", "renderer: commonmark\n")

		got, err := LoadConfig("blog-x7q")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got.Renderer != "commonmark" {
			t.Errorf("Renderer = %q, want commonmark", got.Renderer)
		}
	})

	t.Run("unresolved name lists tried paths", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		_, err := LoadConfig("nonexistent-config-q9z")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nonexistent-config-q9z.yaml") {
			t.Errorf("error should list tried paths, got %q", err)
		}
	})
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	data := []byte("renderer: goldmark\n# " + strings.Repeat("x", MaxInputSize))

	var cfg Config
	if err := unmarshalStrict(data, &cfg); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestSearchPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	got := SearchPaths("work")
	want := []string{
		"work.yaml",
		"work.yml",
		filepath.Join(home, AppDirName, "work.yaml"),
		filepath.Join(home, AppDirName, "work.yml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SearchPaths() mismatch (-want +got):\n%s", diff)
	}
}
