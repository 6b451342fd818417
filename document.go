package forest

import (
	"slices"

	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/sink"
	"github.com/lestrrat-go/forest/tree"
	"github.com/pkg/errors"
)

func newDocument(root node.Node) *Document {
	t := tree.New(root)
	rootID, _ := t.FirstNodeID()
	return &Document{
		tree:       t,
		root:       rootID,
		quirksMode: sink.NoQuirks,
		tlog:       nullLogger,
	}
}

// NewDocument creates an empty document whose root is a node.Document.
func NewDocument() *Document {
	return newDocument(node.NewDocument())
}

// NewFragment creates an empty document whose root is a node.Fragment.
func NewFragment() *Document {
	return newDocument(node.NewFragment())
}

// Tree returns the underlying node store.
func (d *Document) Tree() *tree.Tree[node.Node] {
	return d.tree
}

// Root returns the identity of the root node.
func (d *Document) Root() tree.NodeID {
	return d.root
}

// QuirksMode returns the quirks mode recorded by the parser.
func (d *Document) QuirksMode() sink.QuirksMode {
	return d.quirksMode
}

// Errors returns the parse errors reported so far, in order.
func (d *Document) Errors() []string {
	return slices.Clone(d.errors)
}

// Cursor returns a cursor positioned at id.
func (d *Document) Cursor(id tree.NodeID) (*tree.Cursor[node.Node], error) {
	return d.tree.Cursor(id)
}

// Node returns the payload at id.
func (d *Document) Node(id tree.NodeID) (node.Node, error) {
	return d.tree.Value(id)
}

// Element returns the element at id. It fails with
// ErrInvariantViolation if the node is not an element.
func (d *Document) Element(id tree.NodeID) (*node.Element, error) {
	n, err := d.tree.Value(id)
	if err != nil {
		return nil, err
	}
	e, ok := node.AsElement(n)
	if !ok {
		return nil, errors.Wrapf(ErrInvariantViolation, "%s is a %s node, not an element", id, n.Type())
	}
	return e, nil
}

func (d *Document) text(id tree.NodeID) (*node.Text, bool) {
	n, err := d.tree.Value(id)
	if err != nil {
		return nil, false
	}
	return node.AsText(n)
}

// TextContent returns the concatenation of all text nodes at or below
// id, in document order.
func (d *Document) TextContent(id tree.NodeID) string {
	var buf []byte
	for c := range d.tree.Descendants(id) {
		if t, ok := d.text(c); ok {
			buf = t.Content(buf)
		}
	}
	return string(buf)
}

// ElementByID returns the first attached element, in document order,
// whose id is the given value.
func (d *Document) ElementByID(id string) (tree.NodeID, bool) {
	for c := range d.tree.Descendants(d.root) {
		n, _ := d.tree.Value(c)
		if e, ok := node.AsElement(n); ok {
			if v, ok := e.ID(); ok && v == id {
				return c, true
			}
		}
	}
	return tree.NodeID{}, false
}
