package pipeline

import (
	"runtime"
	"strings"
	"testing"
)

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("expectations use slash-separated absolute paths")
	}

	tests := []struct {
		name         string
		html         string
		sourceDir    string
		outputDir    string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "image into sibling output dir",
			html:         `<img src="images/logo.png">`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`src="../docs/images/logo.png"`},
		},
		{
			name:         "dot slash prefix",
			html:         `<img src="./logo.png">`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`src="../docs/logo.png"`},
		},
		{
			name:         "output nested under source",
			html:         `<a href="guide.md">guide</a>`,
			sourceDir:    "/docs",
			outputDir:    "/docs/out",
			wantContains: []string{`href="../guide.md"`},
		},
		{
			name:         "parent reference",
			html:         `<a href="../README.md">readme</a>`,
			sourceDir:    "/repo/docs",
			outputDir:    "/repo/site",
			wantContains: []string{`href="../README.md"`},
		},
		{
			name:         "anchor and query preserved",
			html:         `<a href="guide.html?v=2#setup">setup</a>`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`href="../docs/guide.html?v=2#setup"`},
		},
		{
			name:         "same directory unchanged",
			html:         `<img src="./logo.png"/>`,
			sourceDir:    "/docs",
			outputDir:    "/docs/",
			wantContains: []string{`<img src="./logo.png"/>`},
		},
		{
			name:         "empty source dir unchanged",
			html:         `<img src="./logo.png">`,
			sourceDir:    "",
			outputDir:    "/site",
			wantContains: []string{`src="./logo.png"`},
		},
		{
			name:         "empty output dir unchanged",
			html:         `<img src="./logo.png">`,
			sourceDir:    "/docs",
			outputDir:    "",
			wantContains: []string{`src="./logo.png"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/abs/logo.png">`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`src="/abs/logo.png"`},
		},
		{
			name:         "http URL unchanged",
			html:         `<a href="https://example.com/x">x</a>`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`href="https://example.com/x"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:me@example.com">me</a>`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`href="mailto:me@example.com"`},
		},
		{
			name:         "data URI unchanged",
			html:         `<img src="data:image/png;base64,ABC123">`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`src="data:image/png;base64,ABC123"`},
		},
		{
			name:         "protocol relative unchanged",
			html:         `<img src="//cdn.example.com/a.png">`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`src="//cdn.example.com/a.png"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#intro">intro</a>`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`href="#intro"`},
		},
		{
			name:         "script src untouched",
			html:         `<script src="app.js"></script>`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`src="app.js"`},
			wantExcludes: []string{`../docs/app.js`},
		},
		{
			name:         "fragment not wrapped in document",
			html:         `<p>hi <img src="a.png"></p>`,
			sourceDir:    "/docs",
			outputDir:    "/site",
			wantContains: []string{`<p>hi <img src="../docs/a.png"/></p>`},
			wantExcludes: []string{"<html>", "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir, tt.outputDir)
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

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"", false},
		{"#top", false},
		{"//host/x", false},
		{"http://x", false},
		{"ftp://x", false},
		{"mailto:a@b", false},
		{"/abs", false},
		{"a.png", true},
		{"./a.png", true},
		{"../a.png", true},
		{"dir/page.html#x", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.path); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
