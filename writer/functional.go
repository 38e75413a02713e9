// Package writer provides the stateful accumulator that serializes an
// ontology tree into OWL2 Functional-Style Syntax text.
package writer

import (
	"strings"

	"github.com/clin113jhu/funowl/graph"
)

// DefaultTab is the indentation unit used by Indented sections.
const DefaultTab = "    "

// Functional accumulates functional-syntax text for one render pass.
//
// The writer owns a live namespace registry: identifiers rendered through
// Resource abbreviate to prefixed names whenever their namespace is bound
// bidirectionally, and fall back to the <full-iri> form otherwise.
//
// Tokens on one line are separated by single spaces. A bracketed group
// produced by Func has no inner padding: Name(child child). Line breaks and
// indentation are a pretty-printing policy, not a semantic requirement.
//
// A Functional is single-use: build a fresh writer per render pass. It is
// not safe for concurrent use.
type Functional struct {
	b       strings.Builder
	ns      *graph.Namespaces
	tab     string
	depth   int
	needSep bool
	atLine  bool
}

// NewFunctional creates a writer around the given namespace registry.
// A nil registry gets a fresh empty one.
func NewFunctional(ns *graph.Namespaces) *Functional {
	if ns == nil {
		ns = graph.NewNamespaces()
	}
	return &Functional{ns: ns, tab: DefaultTab, atLine: true}
}

// Namespaces returns the writer's live namespace registry.
func (w *Functional) Namespaces() *graph.Namespaces {
	return w.ns
}

// Token appends one token, space-separated from the previous token on the
// same line.
func (w *Functional) Token(s string) *Functional {
	if !w.atLine && w.needSep {
		w.b.WriteString(" ")
	}
	w.b.WriteString(s)
	w.atLine = false
	w.needSep = true
	return w
}

// Resource appends an identifier token, abbreviated to a prefixed name when
// its namespace is registered, or in <full-iri> form otherwise.
func (w *Functional) Resource(full string) *Functional {
	if qname, ok := w.ns.Abbreviate(full); ok {
		return w.Token(qname)
	}
	return w.Token("<" + full + ">")
}

// Literal appends a quoted literal token. A non-empty lang renders as
// "value"@lang; a non-empty datatype renders as "value"^^datatype with the
// datatype abbreviated like any resource; lang wins when both are set.
func (w *Functional) Literal(value, datatype, lang string) *Functional {
	quoted := `"` + escapeLiteral(value) + `"`
	switch {
	case lang != "":
		return w.Token(quoted + "@" + lang)
	case datatype != "":
		dt := "<" + datatype + ">"
		if qname, ok := w.ns.Abbreviate(datatype); ok {
			dt = qname
		}
		return w.Token(quoted + "^^" + dt)
	default:
		return w.Token(quoted)
	}
}

// Func appends a bracketed group: the keyword, an opening parenthesis, the
// tokens produced by body, and the closing parenthesis.
func (w *Functional) Func(name string, body func()) *Functional {
	w.Token(name + "(")
	w.needSep = false
	body()
	w.b.WriteString(")")
	w.atLine = false
	w.needSep = true
	return w
}

// Break starts a new line at the current indentation depth.
func (w *Functional) Break() *Functional {
	w.b.WriteString("\n")
	w.b.WriteString(strings.Repeat(w.tab, w.depth))
	w.atLine = true
	w.needSep = false
	return w
}

// HardBreak forces a blank line between sections.
func (w *Functional) HardBreak() *Functional {
	if w.atLine {
		w.b.WriteString("\n")
	} else {
		w.b.WriteString("\n\n")
	}
	w.atLine = true
	w.needSep = false
	return w
}

// Indented runs body one indentation level deeper. Only line breaks made
// inside body pick up the extra depth.
func (w *Functional) Indented(body func()) *Functional {
	w.depth++
	body()
	w.depth--
	return w
}

// String returns the accumulated text.
func (w *Functional) String() string {
	return w.b.String()
}

// escapeLiteral escapes backslashes and double quotes per the functional
// syntax quoted-string production.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
