package assets

import (
	"errors"
	"testing"
)

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadStyle(StyleBase); err != nil {
			t.Errorf("LoadStyle(base) error = %v", err)
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeAsset(t, base, "styles", "base.css", "/* mine */")
		writeAsset(t, base, "templates", "default.html", "mine")

		r, err := NewAssetResolver(base)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := r.LoadStyle(StyleBase); got != "/* mine */" {
			t.Errorf("LoadStyle(base) = %q, want custom content", got)
		}
		if got, _ := r.LoadTemplate(DefaultTemplateName); got != "mine" {
			t.Errorf("LoadTemplate(default) = %q, want custom content", got)
		}
	})

	t.Run("falls back when missing", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		embedded, _ := NewEmbeddedLoader().LoadStyle(StylePrettify)
		if got, err := r.LoadStyle(StylePrettify); err != nil || got != embedded {
			t.Errorf("LoadStyle(prettify) = %v, want embedded content", err)
		}
	})

	t.Run("validation errors are not masked", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadTemplate("a/b"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("error = %v, want ErrInvalidAssetName", err)
		}
	})
}
