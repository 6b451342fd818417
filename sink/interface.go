package sink

import "github.com/lestrrat-go/forest/node"

// TreeSink is the set of callbacks a parsing engine uses to build a
// tree. H is the handle type the sink hands out for nodes; the engine
// treats handles as opaque values and only passes back handles it
// received from an earlier call.
//
// Methods that return an error only fail when the engine breaks the
// contract (for example by asking for the name of a non-element). The
// engine should stop building the tree when that happens.
type TreeSink[H any] interface {
	// ParseError records a diagnostic. It never stops construction.
	ParseError(msg string)

	// GetDocument returns the handle of the root node.
	GetDocument() H

	// ElemName returns the qualified name of the element at target.
	ElemName(target H) (node.QualName, error)

	// CreateElement creates a detached element.
	CreateElement(name node.QualName, attrs []node.Attribute, flags ElementFlags) (H, error)

	// CreateComment creates a detached comment.
	CreateComment(text string) H

	// CreatePI creates a detached processing instruction.
	CreatePI(target, data string) H

	// Append adds child as the last child of parent.
	Append(parent H, child NodeOrText[H]) error

	// AppendBasedOnParentNode appends child to element if element has
	// a parent, and to prevElement otherwise.
	AppendBasedOnParentNode(element, prevElement H, child NodeOrText[H]) error

	// AppendDoctypeToDocument adds a doctype as a child of the root.
	AppendDoctypeToDocument(name, publicID, systemID string) error

	// GetTemplateContents returns the content container of a template
	// element.
	GetTemplateContents(target H) (H, error)

	// SameNode reports whether x and y refer to the same node.
	SameNode(x, y H) bool

	SetQuirksMode(mode QuirksMode)

	// AppendBeforeSibling adds child immediately before sibling.
	AppendBeforeSibling(sibling H, child NodeOrText[H]) error

	// AddAttrsIfMissing adds each attribute whose name target does not
	// have yet.
	AddAttrsIfMissing(target H, attrs []node.Attribute) error

	// RemoveFromParent detaches target, keeping its children.
	RemoveFromParent(target H) error

	// ReparentChildren moves all children of target to newParent.
	ReparentChildren(target, newParent H) error
}
