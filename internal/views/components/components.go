package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates markup and remembers the first write error so component
// bodies can be written without checking every call.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (hw *Writer) Raw(parts ...string) {
	for _, part := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, part)
	}
}

// Text writes s with HTML escaping.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Attr writes name="value" with the value escaped, preceded by a space.
func (hw *Writer) Attr(name, value string) {
	hw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// URLAttr writes a link attribute through templ.URL, so unsafe schemes such as
// javascript: render as templ's sanitization placeholder.
func (hw *Writer) URLAttr(name, value string) {
	hw.Attr(name, string(templ.URL(value)))
}

// BoolAttr writes a valueless attribute when on is true.
func (hw *Writer) BoolAttr(name string, on bool) {
	if on {
		hw.Raw(" ", name)
	}
}

// Render renders a nested component.
func (hw *Writer) Render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Err returns the first error encountered.
func (hw *Writer) Err() error {
	return hw.err
}

// Stat renders a labelled figure, used by totals panels and print reports.
func Stat(tag, label, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw("<", tag, ` class="stat">`, "<span>")
		hw.Text(label)
		hw.Raw("</span><strong>")
		hw.Text(value)
		hw.Raw("</strong></", tag, ">")
		return hw.Err()
	})
}

// NumberField renders a labelled text input that submits its value on input.
type NumberField struct {
	ID        string
	Label     string
	Value     string
	Endpoint  string
	FieldName string
	Mode      string
	Sync      string
}

// Field renders an input that posts {field, value} to its endpoint without
// swapping any content in place.
func Field(f NumberField) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<label class="card__field"><span>`)
		hw.Text(f.Label)
		hw.Raw("</span><input")
		hw.Attr("id", f.ID)
		hw.Attr("type", "text")
		if f.Mode != "" {
			hw.Attr("inputmode", f.Mode)
		}
		hw.Attr("name", "value")
		hw.Attr("value", f.Value)
		hw.Attr("hx-post", f.Endpoint)
		hw.Attr("hx-trigger", "input changed delay:250ms")
		hw.Attr("hx-vals", `{"field":"`+f.FieldName+`"}`)
		if f.Sync != "" {
			hw.Attr("hx-sync", f.Sync)
		}
		hw.Attr("hx-swap", "none")
		hw.Raw("></label>")
		return hw.Err()
	})
}
