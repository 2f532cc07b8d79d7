package pipeline

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"
)

const testTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}"><head><title>{{.Title}}</title>
{{range .CSS}}<link rel="stylesheet" href="{{.}}">{{end}}
{{range .Embed.CSS}}<style>{{.}}</style>{{end}}
</head><body>{{.Document}}
{{range .JS}}<script src="{{.}}"></script>{{end}}</body></html>`

func TestTemplateRenderer_RenderDocument(t *testing.T) {
	t.Parallel()

	r, err := NewTemplateRenderer("test", testTemplate)
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}

	data := &DocumentData{
		Title:    "A <b> title",
		Document: TrustedHTML("<p>Hello</p>"),
		CSS:      []string{"assets/css/base.css"},
		JS:       []string{PrettifyLoaderURL},
		Embed:    EmbedData{CSS: []template.CSS{EmbedCSS("body{color:red}</style><script>")}},
	}

	got, err := r.RenderDocument(context.Background(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantContains := []string{
		`<html lang="en">`,
		"<title>A &lt;b&gt; title</title>",
		"<p>Hello</p>",
		`href="assets/css/base.css"`,
		`<script src="` + PrettifyLoaderURL + `">`,
		`body{color:red}<\/style>`,
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q, got %q", want, got)
		}
	}
	if strings.Contains(got, "</style><script>") {
		t.Error("embedded CSS escaped its <style> block")
	}
}

func TestTemplateRenderer_Errors(t *testing.T) {
	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		if _, err := NewTemplateRenderer("bad", "{{.Title"); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("execute error", func(t *testing.T) {
		t.Parallel()

		r, err := NewTemplateRenderer("missing", "{{.Nope}}")
		if err != nil {
			t.Fatalf("NewTemplateRenderer: %v", err)
		}
		_, err = r.RenderDocument(context.Background(), &DocumentData{})
		if !errors.Is(err, ErrTemplateRender) {
			t.Errorf("error = %v, want ErrTemplateRender", err)
		}
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()

		r, _ := NewTemplateRenderer("ok", "x")
		if _, err := r.RenderDocument(context.Background(), nil); !errors.Is(err, ErrTemplateRender) {
			t.Errorf("error = %v, want ErrTemplateRender", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r, _ := NewTemplateRenderer("ok", "x")
		if _, err := r.RenderDocument(ctx, &DocumentData{}); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
