//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-redtape/internal/gfm"
)

func BenchmarkPreprocessMarkdown(b *testing.B) {
	ctx := context.Background()

	for _, mode := range gfm.FencedModes {
		p := NewGFMPreprocessor(mode, nil)
		content := generateMarkdown(50)

		b.Run(string(mode), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = p.PreprocessMarkdown(ctx, content)
			}
		})
	}
}

func BenchmarkToHTML(b *testing.B) {
	ctx := context.Background()

	for _, name := range Renderers {
		converter, err := NewHTMLConverter(name, gfm.DefaultChromaStyle)
		if err != nil {
			b.Fatal(err)
		}

		for _, size := range []int{1, 10, 100} {
			content := generateMarkdown(size)
			b.Run(fmt.Sprintf("%s/sections_%d", name, size), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if _, err := converter.ToHTML(ctx, content); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func generateMarkdown(sections int) string {
	var sb strings.Builder
	for i := range sections {
		fmt.Fprintf(&sb, "## Section %d\n\n", i+1)
		sb.WriteString("Some text with a snake_case_name and https://example.com/x.\n")
		sb.WriteString("Second line of the same paragraph.\n\n")
		sb.WriteString("```go\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```\n\n")
		sb.WriteString("| a | b |\n|---|---|\n| 1 | 2 |\n\n")
	}
	return sb.String()
}
