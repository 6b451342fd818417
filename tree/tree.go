// Package tree implements an arena of nodes linked into a tree.
//
// All nodes live in a single slice owned by the Tree and are addressed
// by NodeID. Structural edits only rewrite links, so a NodeID obtained
// before an edit still refers to the same node afterwards. Nodes are
// never freed: a detached subtree remains reachable through the NodeID
// of its top node.
package tree

import (
	"fmt"
	"iter"
)

// Tree owns every node created through it. The first node allocated
// is the root.
//
// A Tree is not safe for concurrent mutation.
type Tree[T any] struct {
	nodes []Node[T]
}

// New creates a Tree whose root holds v.
func New[T any](v T) *Tree[T] {
	return &Tree[T]{
		nodes: []Node[T]{newNode(v)},
	}
}

// Len returns the number of nodes ever allocated, attached or not.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// FirstNodeID returns the identity of the first node allocated, which
// is the root of the tree.
func (t *Tree[T]) FirstNodeID() (NodeID, error) {
	if len(t.nodes) == 0 {
		return NodeID{}, ErrEmpty
	}
	return newNodeID(0), nil
}

// CreateNode allocates a new detached node holding v.
func (t *Tree[T]) CreateNode(v T) NodeID {
	t.nodes = append(t.nodes, newNode(v))
	return newNodeID(len(t.nodes) - 1)
}

func (t *Tree[T]) lookup(id NodeID) (*Node[T], error) {
	idx := id.index()
	if idx < 0 || idx >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &t.nodes[idx], nil
}

// node is lookup for identities that the tree itself stored in a link.
func (t *Tree[T]) node(id NodeID) *Node[T] {
	return &t.nodes[id.index()]
}

// Get returns the record for id. The returned pointer is valid until
// the next node is allocated.
func (t *Tree[T]) Get(id NodeID) (*Node[T], error) {
	return t.lookup(id)
}

// Value returns the payload stored at id.
func (t *Tree[T]) Value(id NodeID) (T, error) {
	n, err := t.lookup(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.Value, nil
}

func (t *Tree[T]) isRoot(id NodeID) bool {
	return id.index() == 0
}

// isAncestorOrSelf reports whether a is id or one of its ancestors.
func (t *Tree[T]) isAncestorOrSelf(a, id NodeID) bool {
	for ; !id.IsZero(); id = t.node(id).parent {
		if id == a {
			return true
		}
	}
	return false
}

// AppendChild makes child the last child of parent.
func (t *Tree[T]) AppendChild(parent, child NodeID) error {
	pn, err := t.lookup(parent)
	if err != nil {
		return err
	}
	cn, err := t.lookup(child)
	if err != nil {
		return err
	}

	if t.isRoot(child) || t.isAncestorOrSelf(child, parent) {
		return fmt.Errorf("%w: cannot append %s to %s", ErrInvalidOperation, child, parent)
	}
	if !cn.parent.IsZero() {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, child)
	}

	cn.parent = parent
	if last := pn.lastChild; last.IsZero() {
		pn.firstChild = child
	} else {
		t.node(last).next = child
		cn.prev = last
	}
	pn.lastChild = child
	return nil
}

// AppendValue allocates a node holding v and appends it to parent.
func (t *Tree[T]) AppendValue(parent NodeID, v T) (NodeID, error) {
	if _, err := t.lookup(parent); err != nil {
		return NodeID{}, err
	}

	id := t.CreateNode(v)
	if err := t.AppendChild(parent, id); err != nil {
		return NodeID{}, err
	}
	return id, nil
}

// InsertBefore links newNode immediately before sibling, under
// sibling's parent.
func (t *Tree[T]) InsertBefore(sibling, newNode NodeID) error {
	sn, err := t.lookup(sibling)
	if err != nil {
		return err
	}
	nn, err := t.lookup(newNode)
	if err != nil {
		return err
	}

	if t.isRoot(newNode) || t.isAncestorOrSelf(newNode, sibling) {
		return fmt.Errorf("%w: cannot insert %s before %s", ErrInvalidOperation, newNode, sibling)
	}
	if sn.parent.IsZero() {
		return fmt.Errorf("%w: %s", ErrNoParent, sibling)
	}
	if !nn.parent.IsZero() {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, newNode)
	}

	parent := sn.parent
	nn.parent = parent
	nn.next = sibling
	nn.prev = sn.prev
	if prev := sn.prev; prev.IsZero() {
		t.node(parent).firstChild = newNode
	} else {
		t.node(prev).next = newNode
	}
	sn.prev = newNode
	return nil
}

// Detach unlinks id from its parent and siblings. The children of id
// are left untouched.
func (t *Tree[T]) Detach(id NodeID) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	if n.parent.IsZero() {
		return fmt.Errorf("%w: %s", ErrNotAttached, id)
	}

	pn := t.node(n.parent)
	if prev := n.prev; prev.IsZero() {
		pn.firstChild = n.next
	} else {
		t.node(prev).next = n.next
	}
	if next := n.next; next.IsZero() {
		pn.lastChild = n.prev
	} else {
		t.node(next).prev = n.prev
	}

	n.parent = NodeID{}
	n.prev = NodeID{}
	n.next = NodeID{}
	return nil
}

// ReparentChildren moves every child of from to the end of to's
// children, keeping their order.
func (t *Tree[T]) ReparentChildren(from, to NodeID) error {
	fn, err := t.lookup(from)
	if err != nil {
		return err
	}
	tn, err := t.lookup(to)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: cannot reparent children of %s onto itself", ErrInvalidOperation, from)
	}

	first := fn.firstChild
	if first.IsZero() {
		return nil
	}

	if t.isAncestorOrSelf(from, tn.parent) {
		return fmt.Errorf("%w: %s is a descendant of %s", ErrInvalidOperation, to, from)
	}

	for c := first; !c.IsZero(); c = t.node(c).next {
		t.node(c).parent = to
	}

	if last := tn.lastChild; last.IsZero() {
		tn.firstChild = first
	} else {
		t.node(last).next = first
		t.node(first).prev = last
	}
	tn.lastChild = fn.lastChild

	fn.firstChild = NodeID{}
	fn.lastChild = NodeID{}
	return nil
}

// Children iterates over the direct children of id. The sequence is
// empty if id is unknown.
func (t *Tree[T]) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		n, err := t.lookup(id)
		if err != nil {
			return
		}
		for c := n.firstChild; !c.IsZero(); c = t.node(c).next {
			if !yield(c) {
				return
			}
		}
	}
}

// Descendants iterates over id and everything below it in document
// order.
func (t *Tree[T]) Descendants(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if _, err := t.lookup(id); err != nil {
			return
		}

		cur := id
		for {
			if !yield(cur) {
				return
			}

			n := t.node(cur)
			if !n.firstChild.IsZero() {
				cur = n.firstChild
				continue
			}

			// climb until a next sibling is found, without leaving id
			for cur != id {
				if next := t.node(cur).next; !next.IsZero() {
					cur = next
					break
				}
				cur = t.node(cur).parent
			}
			if cur == id {
				return
			}
		}
	}
}

// Cursor returns a Cursor positioned at id.
func (t *Tree[T]) Cursor(id NodeID) (*Cursor[T], error) {
	if _, err := t.lookup(id); err != nil {
		return nil, err
	}
	return &Cursor[T]{tree: t, id: id}, nil
}
