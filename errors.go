package forest

import "errors"

// ErrInvariantViolation is returned when a construction event refers to
// a node of the wrong kind, for example asking for the name of a node
// that is not an element. It means the parser and the tree builder
// disagree about the state of the tree.
var ErrInvariantViolation = errors.New("tree construction invariant violated")
