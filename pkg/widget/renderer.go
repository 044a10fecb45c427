package widget

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract so hosts can mount the engine they already use for form rendering.
// The built-in Engine satisfies it.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
