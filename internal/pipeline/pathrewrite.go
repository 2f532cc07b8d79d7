package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Elements and the attribute holding their link target.
var linkAttrs = map[atom.Atom]string{
	atom.A:      "href",
	atom.Img:    "src",
	atom.Source: "src",
	atom.Video:  "src",
	atom.Audio:  "src",
}

// RewriteRelativePaths re-targets relative links and image sources in an
// HTML fragment so they still resolve when the document is written to
// outputDir instead of next to its source in sourceDir.
// If either directory is empty, or both resolve to the same place, the
// fragment is returned unchanged.
//
// Left alone:
//   - URLs with a scheme (http:, mailto:, data:, ...) and protocol-relative URLs
//   - Anchors (#section)
//   - Absolute paths
//   - srcset attributes
func RewriteRelativePaths(fragment, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return fragment, nil
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSource == absOutput {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	rewriteNode(root, absSource, absOutput)

	return renderFragment(root)
}

// parseFragment parses HTML with a body context and hangs the resulting
// nodes off a synthetic document node.
func parseFragment(content string) (*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// renderFragment renders the children of root without a document wrapper.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, sourceDir, outputDir string) {
	if n.Type == html.ElementNode {
		if attr, ok := linkAttrs[n.DataAtom]; ok {
			rewriteAttr(n, attr, sourceDir, outputDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir, outputDir)
	}
}

func rewriteAttr(n *html.Node, attrName, sourceDir, outputDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}
		if rewritten, ok := relocate(attr.Val, sourceDir, outputDir); ok {
			n.Attr[i].Val = rewritten
		}
	}
}

// relocate expresses ref, relative to sourceDir, as a path relative to
// outputDir. Query and fragment suffixes are preserved.
func relocate(ref, sourceDir, outputDir string) (string, bool) {
	path, suffix := ref, ""
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		path, suffix = ref[:i], ref[i:]
	}
	if path == "" {
		return "", false
	}

	target := filepath.Join(sourceDir, filepath.FromSlash(path))
	rel, err := filepath.Rel(outputDir, target)
	if err != nil {
		return "", false
	}

	rel = filepath.ToSlash(rel)
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(rel, "/") {
		rel += "/"
	}
	return rel + suffix, true
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// Anchors and protocol-relative URLs
	if strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}

	if u, err := url.Parse(path); err != nil || u.Scheme != "" {
		return false
	}

	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}
