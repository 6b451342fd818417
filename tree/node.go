package tree

import "strconv"

// NodeID identifies a node in the Tree that allocated it. NodeIDs are
// compared by identity: two NodeIDs are the same node if and only if
// they are equal. The zero value does not identify any node.
type NodeID struct {
	n uint32 // index + 1
}

func newNodeID(idx int) NodeID {
	return NodeID{n: uint32(idx) + 1}
}

// IsZero reports whether id is the zero NodeID.
func (id NodeID) IsZero() bool {
	return id.n == 0
}

func (id NodeID) index() int {
	return int(id.n) - 1
}

func (id NodeID) String() string {
	if id.n == 0 {
		return "#nil"
	}
	return "#" + strconv.Itoa(id.index())
}

// Node is the structural record stored for each node in a Tree. The
// links are maintained by the Tree; only Value may be modified directly.
type Node[T any] struct {
	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	prev       NodeID
	next       NodeID

	Value T
}

func newNode[T any](v T) Node[T] {
	return Node[T]{Value: v}
}

func optional(id NodeID) (NodeID, bool) {
	return id, !id.IsZero()
}

func (n *Node[T]) Parent() (NodeID, bool) {
	return optional(n.parent)
}

func (n *Node[T]) FirstChild() (NodeID, bool) {
	return optional(n.firstChild)
}

func (n *Node[T]) LastChild() (NodeID, bool) {
	return optional(n.lastChild)
}

func (n *Node[T]) PrevSibling() (NodeID, bool) {
	return optional(n.prev)
}

func (n *Node[T]) NextSibling() (NodeID, bool) {
	return optional(n.next)
}

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool {
	return !n.firstChild.IsZero()
}
