// Package widget renders the color select control. The widget consumes an
// assembled choice list plus two template identifiers (one for the control,
// one per option) and delegates markup to the template engine, so hosts can
// replace either template without touching choice assembly.
package widget

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-colorfield/pkg/choices"
)

// Default template identifiers, matching the embedded bundle.
const (
	DefaultTemplateName       = "color_select.html"
	DefaultOptionTemplateName = "color_select_option.html"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	// CSS class lists are attribute values, not markup; restrict them to
	// plain class-name characters instead of HTML-sanitizing.
	classPattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_\-:/]*$`)
)

// Option configures a Widget.
type Option func(*Widget)

// WithTemplates overrides the control and per-option template identifiers.
func WithTemplates(templateName, optionTemplateName string) Option {
	return func(w *Widget) {
		if strings.TrimSpace(templateName) != "" {
			w.TemplateName = templateName
		}
		if strings.TrimSpace(optionTemplateName) != "" {
			w.OptionTemplateName = optionTemplateName
		}
	}
}

// WithEngine mounts a custom template engine. The engine must be able to
// resolve the widget's template identifiers.
func WithEngine(engine TemplateRenderer) Option {
	return func(w *Widget) {
		if engine != nil {
			w.engine = engine
		}
	}
}

// Widget renders a color select control.
type Widget struct {
	TemplateName       string
	OptionTemplateName string

	engine TemplateRenderer
}

// New constructs a widget backed by the embedded templates unless an engine
// override is supplied.
func New(options ...Option) (*Widget, error) {
	w := &Widget{
		TemplateName:       DefaultTemplateName,
		OptionTemplateName: DefaultOptionTemplateName,
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if w.engine == nil {
		engine, err := NewEngine(WithFS(TemplatesFS()))
		if err != nil {
			return nil, err
		}
		w.engine = engine
	}
	return w, nil
}

// RenderData describes one render of the control.
type RenderData struct {
	// Name is the form control name.
	Name string
	// ID is the element id; empty omits the attribute.
	ID string
	// CSSClass is applied to the select element.
	CSSClass string
	// Selected marks the matching option. Only the first match is selected.
	Selected string
	// Attrs adds extra attributes to the select element.
	Attrs map[string]string
	// Choices is the assembled choice list, rendered in order.
	Choices []choices.Choice
}

// Render produces the select markup for the supplied choices.
func (w *Widget) Render(data RenderData) (string, error) {
	if w == nil || w.engine == nil {
		return "", fmt.Errorf("widget: widget is not initialized")
	}

	var rendered strings.Builder
	hasSelected := false
	for index, choice := range data.Choices {
		selected := !hasSelected && choice.Value == data.Selected && data.Selected != ""
		hasSelected = hasSelected || selected

		option, err := w.engine.RenderTemplate(w.OptionTemplateName, optionContext(data.Name, choice, selected, index))
		if err != nil {
			return "", err
		}
		rendered.WriteString(option)
	}

	return w.engine.RenderTemplate(w.TemplateName, map[string]any{
		"name":      data.Name,
		"id":        data.ID,
		"css_class": sanitizeClasses(data.CSSClass),
		"attrs":     renderAttrs(data.Attrs),
		"options":   rendered.String(),
	})
}

// RenderTo writes the select markup to wr.
func (w *Widget) RenderTo(wr io.Writer, data RenderData) error {
	out, err := w.Render(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(wr, out)
	return err
}

// optionContext mirrors the option payload the original widget handed its
// option template: value, label, css class variants, selection state, index.
func optionContext(name string, choice choices.Choice, selected bool, index int) map[string]any {
	bg := sanitizeClasses(choice.Background)
	text := sanitizeClasses(choice.Text)
	return map[string]any{
		"name":           name,
		"value":          choice.Value,
		"label":          sanitizeLabel(choice.Label),
		"bg_css_class":   bg,
		"text_css_class": text,
		"css_class":      strings.TrimSpace(bg + " " + text),
		"selected":       selected,
		"index":          strconv.Itoa(index),
	}
}

// sanitizeLabel strips markup from labels; lookup-source records are host
// data and must not smuggle HTML into the option body.
func sanitizeLabel(label string) string {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(labelPolicy.Sanitize(label))
}

// sanitizeClasses drops class tokens containing anything outside the plain
// class-name charset.
func sanitizeClasses(classes string) string {
	fields := strings.Fields(classes)
	kept := fields[:0]
	for _, field := range fields {
		if classPattern.MatchString(field) {
			kept = append(kept, field)
		}
	}
	return strings.Join(kept, " ")
}

// renderAttrs serialises extra attributes sorted by name, escaped, with a
// leading space so the template can interpolate the block verbatim.
func renderAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		out.WriteString(" ")
		out.WriteString(html.EscapeString(name))
		out.WriteString(`="`)
		out.WriteString(html.EscapeString(attrs[name]))
		out.WriteString(`"`)
	}
	return out.String()
}
