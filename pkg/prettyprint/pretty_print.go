package prettyprint

import (
	"fmt"
	"strings"
)

// A Doc is a layout tree which renders to a string. Docs are built by
// the combinators below and rendered with String.
type Doc interface {
	// String returns the rendered representation.
	String() string
	// Debug returns the doc tree itself, for debugging layout code.
	Debug() string

	render(out *strings.Builder, indent int)
}

// Text

type text string

var _ Doc = text("")

func Text(s string) Doc {
	return text(s)
}

func Textf(format string, args ...interface{}) Doc {
	return text(fmt.Sprintf(format, args...))
}

func (t text) String() string {
	return render(t)
}

func (t text) render(out *strings.Builder, _ int) {
	out.WriteString(string(t))
}

func (t text) Debug() string {
	return fmt.Sprintf("Text(%#v)", string(t))
}

// Newline

type newline struct{}

var Newline Doc = newline{}

func (newline) String() string {
	return "\n"
}

func (newline) render(out *strings.Builder, indent int) {
	out.WriteString("\n")
	out.WriteString(strings.Repeat(" ", indent))
}

func (newline) Debug() string {
	return "Newline"
}

// Empty

type empty struct{}

var Empty Doc = empty{}

func (empty) String() string {
	return ""
}

func (empty) render(*strings.Builder, int) {}

func (empty) Debug() string {
	return "Empty"
}

// Seq

type seq []Doc

func Seq(docs []Doc) Doc {
	return seq(docs)
}

func (s seq) String() string {
	return render(s)
}

func (s seq) render(out *strings.Builder, indent int) {
	for _, doc := range s {
		doc.render(out, indent)
	}
}

func (s seq) Debug() string {
	parts := make([]string, len(s))
	for idx, doc := range s {
		parts[idx] = doc.Debug()
	}
	return fmt.Sprintf("Seq(%s)", strings.Join(parts, ", "))
}

// Indent

type indented struct {
	doc Doc
	by  int
}

// Indent indents every line break inside doc by `by` spaces.
func Indent(by int, doc Doc) Doc {
	return &indented{doc: doc, by: by}
}

func (i *indented) String() string {
	return render(i)
}

func (i *indented) render(out *strings.Builder, indent int) {
	i.doc.render(out, indent+i.by)
}

func (i *indented) Debug() string {
	return fmt.Sprintf("Indent(%d, %s)", i.by, i.doc.Debug())
}

// Combinators

func Join(docs []Doc, sep Doc) Doc {
	var out []Doc
	for idx, doc := range docs {
		if idx > 0 {
			out = append(out, sep)
		}
		out = append(out, doc)
	}
	return Seq(out)
}

var Comma = Text(",")

var CommaSpace = Text(", ")

var CommaNewline = Seq([]Doc{Comma, Newline})

func render(doc Doc) string {
	out := &strings.Builder{}
	doc.render(out, 0)
	return out.String()
}
