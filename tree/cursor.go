package tree

import "fmt"

// Cursor is a movable handle on one node of a Tree. A failed movement
// leaves the cursor where it was.
//
// A Cursor does not keep nodes alive and does not notice edits made
// through other handles; after such an edit the caller must not assume
// the relations it saw earlier still hold.
type Cursor[T any] struct {
	tree *Tree[T]
	id   NodeID
}

// ID returns the identity of the current node.
func (c *Cursor[T]) ID() NodeID {
	return c.id
}

func (c *Cursor[T]) current() *Node[T] {
	return c.tree.node(c.id)
}

// Value returns the payload of the current node.
func (c *Cursor[T]) Value() T {
	return c.current().Value
}

// ValuePtr returns a pointer to the payload of the current node, for
// in-place modification.
func (c *Cursor[T]) ValuePtr() *T {
	return &c.current().Value
}

// MoveTo repositions the cursor on id.
func (c *Cursor[T]) MoveTo(id NodeID) error {
	if _, err := c.tree.lookup(id); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cursor[T]) move(rel string, next NodeID) error {
	if next.IsZero() {
		return fmt.Errorf("%w: %s has no %s", ErrNoSuchRelative, c.id, rel)
	}
	c.id = next
	return nil
}

func (c *Cursor[T]) Parent() error {
	return c.move("parent", c.current().parent)
}

func (c *Cursor[T]) FirstChild() error {
	return c.move("first child", c.current().firstChild)
}

func (c *Cursor[T]) LastChild() error {
	return c.move("last child", c.current().lastChild)
}

func (c *Cursor[T]) PrevSibling() error {
	return c.move("previous sibling", c.current().prev)
}

func (c *Cursor[T]) NextSibling() error {
	return c.move("next sibling", c.current().next)
}

// PeekParent returns the parent of the current node without moving.
func (c *Cursor[T]) PeekParent() (NodeID, bool) {
	return c.current().Parent()
}
