package tree

import "errors"

var (
	// ErrNotFound is returned when a NodeID was not allocated by the Tree
	// it is being used with.
	ErrNotFound = errors.New("node not found")

	// ErrAlreadyAttached is returned when attaching a node that already
	// has a parent.
	ErrAlreadyAttached = errors.New("node is already attached")

	// ErrNotAttached is returned when detaching a node without a parent.
	ErrNotAttached = errors.New("node is not attached")

	// ErrNoParent is returned when inserting relative to a node without
	// a parent.
	ErrNoParent = errors.New("node has no parent")

	// ErrEmpty is returned by FirstNodeID on a tree without nodes.
	ErrEmpty = errors.New("tree is empty")

	// ErrNoSuchRelative is returned by Cursor movements when the
	// requested relation does not exist.
	ErrNoSuchRelative = errors.New("no such relative")

	ErrInvalidOperation = errors.New("invalid operation")
)
