// Package redtape converts GitHub-flavored Markdown into standalone HTML
// documents.
//
// # Quick Start
//
//	conv, err := redtape.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, redtape.Input{
//	    Markdown: "# Hello\n\nsnake_case_name stays intact",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0o644)
//
// # Conversion Pipeline
//
//  1. Line ending normalization
//  2. GitHub-flavored preprocessing: fenced, <pre> and inline code are
//     masked with placeholders; fenced blocks are optionally rewritten
//     (FencedRich, FencedLight); intra-word underscores are escaped;
//     naked URLs become links; single newlines become hard breaks; masked
//     regions are restored
//  3. Markdown to HTML (goldmark by default, or zombiezen commonmark)
//  4. Relative link rewriting when Input.OutputDir differs from SourceDir
//  5. Title extraction from the first <h1>
//  6. Document template rendering with stylesheets and scripts
//
// Preprocess exposes step 2 alone for callers that render Markdown
// themselves.
//
// # Configuration
//
//	conv, err := redtape.NewConverter(
//	    redtape.WithFencedMode(redtape.FencedRich),
//	    redtape.WithChromaStyle("monokai"),
//	    redtape.WithEmbed(true),
//	    redtape.WithAssetPath("./theme"),
//	)
//
// # Assets
//
// Linked documents reference assets/css/{name}.css. ExportAssets writes
// those files; WithEmbed inlines them instead. An asset directory set with
// WithAssetPath overrides built-in styles and templates:
//
//	theme/
//	├── styles/
//	│   └── base.css
//	└── templates/
//	    └── default.html
//
// # Concurrency
//
// A Converter is safe for concurrent use. ResolveWorkers picks a worker
// count for batch conversion.
package redtape
