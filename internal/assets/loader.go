package assets

// AssetLoader loads stylesheets and document templates by name.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a document template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}
