// Package pipeline implements the Markdown-to-HTML document pipeline.
//
// Stages, in order:
//   - Markdown preprocessing (line normalization, GFM rewrites via package gfm)
//   - Markdown to HTML conversion (goldmark or zombiezen commonmark)
//   - Relative path rewriting when output lands in another directory
//   - Title extraction from the first <h1>
//   - Document template rendering (stylesheets, scripts, body)
//
// Each stage sits behind a small interface so the root redtape package can
// swap implementations in tests.
package pipeline
