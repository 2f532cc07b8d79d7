package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-redtape/internal/gfm"
)

func TestNewHTMLConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr error
	}{
		{name: ""},
		{name: "goldmark"},
		{name: "GOLDMARK"},
		{name: "commonmark"},
		{name: "blackfriday", wantErr: ErrUnknownRenderer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewHTMLConverter(tt.name, gfm.DefaultChromaStyle)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c == nil {
				t.Fatal("converter is nil")
			}
		})
	}
}

func TestHTMLConverters_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "heading",
			input:        "# Hello\n",
			wantContains: []string{"Hello</h1>"},
		},
		{
			name:         "hard break",
			input:        "one  \ntwo\n",
			wantContains: []string{"<br", "two"},
		},
		{
			name:         "escaped underscores render literally",
			input:        "foo\\_bar\\_baz\n",
			wantContains: []string{"foo_bar_baz"},
			wantExcludes: []string{"<em>"},
		},
		{
			name:         "raw pre block passes through",
			input:        "<pre class=\"prettyprint linenums\">\nx &lt; y\n</pre>\n",
			wantContains: []string{`<pre class="prettyprint linenums">`, "x &lt; y"},
		},
		{
			name:         "inline link",
			input:        "[x](https://example.com)\n",
			wantContains: []string{`<a href="https://example.com">x</a>`},
		},
	}

	for _, renderer := range Renderers {
		converter, err := NewHTMLConverter(renderer, gfm.DefaultChromaStyle)
		if err != nil {
			t.Fatalf("NewHTMLConverter(%q): %v", renderer, err)
		}

		for _, tt := range tests {
			t.Run(renderer+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				got, err := converter.ToHTML(context.Background(), tt.input)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				for _, want := range tt.wantContains {
					if !strings.Contains(got, want) {
						t.Errorf("output should contain %q, got %q", want, got)
					}
				}
				for _, exclude := range tt.wantExcludes {
					if strings.Contains(got, exclude) {
						t.Errorf("output should not contain %q, got %q", exclude, got)
					}
				}
			})
		}
	}
}

func TestGoldmarkConverter_Extensions(t *testing.T) {
	t.Parallel()

	c := NewGoldmarkConverter(gfm.DefaultChromaStyle)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |\n", "<table>"},
		{"strikethrough", "~~gone~~\n", "<del>gone</del>"},
		{"heading id", "## Getting Started\n", `id="getting-started"`},
		{"footnote", "x[^1]\n\n[^1]: note\n", "footnote"},
		{"fenced highlighted with classes", "```go\nfunc main() {}\n```\n", `class="chroma"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output should contain %q, got %q", tt.want, got)
			}
		})
	}
}

func TestToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, renderer := range Renderers {
		converter, err := NewHTMLConverter(renderer, gfm.DefaultChromaStyle)
		if err != nil {
			t.Fatalf("NewHTMLConverter(%q): %v", renderer, err)
		}
		if _, err := converter.ToHTML(ctx, "# x"); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", renderer, err)
		}
	}
}
