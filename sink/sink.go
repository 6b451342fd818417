// Package sink describes the contract between a markup parsing engine
// and the code that builds a tree from its output.
package sink

import "strconv"

// QuirksMode is the compatibility mode selected by the parser from the
// doctype.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (m QuirksMode) String() string {
	switch m {
	case NoQuirks:
		return "no-quirks"
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "QuirksMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ElementFlags carries parser state about an element being created.
type ElementFlags struct {
	// Template is set for HTML template elements.
	Template bool

	// MathMLAnnotationXMLIntegrationPoint is set for annotation-xml
	// elements that are HTML integration points.
	MathMLAnnotationXMLIntegrationPoint bool
}

// NodeOrText is either a node handle or a run of text to be placed in
// the tree.
type NodeOrText[H any] struct {
	node   H
	text   string
	isText bool
}

// AppendNode wraps an existing node handle.
func AppendNode[H any](h H) NodeOrText[H] {
	return NodeOrText[H]{node: h}
}

// AppendText wraps a text run.
func AppendText[H any](s string) NodeOrText[H] {
	return NodeOrText[H]{text: s, isText: true}
}

func (v NodeOrText[H]) IsText() bool {
	return v.isText
}

// Node returns the wrapped handle, if v holds one.
func (v NodeOrText[H]) Node() (H, bool) {
	return v.node, !v.isText
}

// Text returns the wrapped text, if v holds text.
func (v NodeOrText[H]) Text() (string, bool) {
	return v.text, v.isText
}
