// Package assets provides the stylesheets and document templates used to
// wrap rendered Markdown into a standalone HTML page.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and templates (go:embed)
//	    ├── FilesystemLoader  - user asset directory (--asset-path)
//	    └── AssetResolver     - filesystem first, embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # base, prettify, or any extra style
//	└── templates/
//	    └── {name}.html      # html/template document layout
//
// Export writes the stylesheets linked by generated pages into
// {dir}/css/{name}.css, the layout produced by `rt assets`.
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
