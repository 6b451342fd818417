// Package node defines the payloads stored in a document tree.
//
// The set of node kinds is closed: Document, Fragment, Doctype, Comment,
// Text, Element and ProcessingInstruction are the only implementations
// of Node. Consumers are expected to switch over all of them.
package node

import (
	"errors"
	"strconv"
)

// NodeType represents the kind of a node in the document tree
type NodeType int

const (
	DocumentNodeType NodeType = iota + 1
	FragmentNodeType
	DoctypeNodeType
	CommentNodeType
	TextNodeType
	ElementNodeType
	ProcessingInstructionNodeType
)

var nodeTypeNames = map[NodeType]string{
	DocumentNodeType:              "Document",
	FragmentNodeType:              "Fragment",
	DoctypeNodeType:               "Doctype",
	CommentNodeType:               "Comment",
	TextNodeType:                  "Text",
	ElementNodeType:               "Element",
	ProcessingInstructionNodeType: "ProcessingInstruction",
}

func (t NodeType) String() string {
	if s, ok := nodeTypeNames[t]; ok {
		return s
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}

var ErrInvalidOperation = errors.New("invalid operation")

// Node is the payload of one tree node.
type Node interface {
	Type() NodeType

	// LocalName returns the local name of the node: the tag name for
	// elements, "#text", "#comment" and so on for the others.
	LocalName() string

	node()
}

// AsElement returns n as an *Element if it is one.
func AsElement(n Node) (*Element, bool) {
	e, ok := n.(*Element)
	return e, ok
}

// AsText returns n as a *Text if it is one.
func AsText(n Node) (*Text, bool) {
	t, ok := n.(*Text)
	return t, ok
}
