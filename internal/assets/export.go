package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/alnah/go-redtape/internal/fileutil"
)

// DefaultExportDir is where `rt assets` writes when no directory is given.
const DefaultExportDir = "assets"

// StylesheetHref returns the relative link generated pages use for a
// stylesheet exported under DefaultExportDir.
func StylesheetHref(name string) string {
	return DefaultExportDir + "/css/" + name + ".css"
}

// Export writes each stylesheet to {dir}/css/{name}.css and returns the
// written paths in name order. Existing files are overwritten.
// Returns ErrExportTarget if dir exists and is not a directory.
func Export(dir string, stylesheets map[string]string) ([]string, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrExportTarget, dir)
	}

	cssDir := filepath.Join(dir, "css")
	if err := os.MkdirAll(cssDir, fileutil.DirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", cssDir, err)
	}

	names := make([]string, 0, len(stylesheets))
	for name := range stylesheets {
		if err := ValidateAssetName(name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	slices.Sort(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(cssDir, name+".css")
		if err := fileutil.WriteFile(path, []byte(stylesheets[name])); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
