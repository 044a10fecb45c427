package widget

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded default templates rooted at the template
// names, so hosts can copy or wrap them in their own asset pipeline.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen; fall back to the raw FS so templates stay usable.
		return embeddedTemplates
	}
	return sub
}
