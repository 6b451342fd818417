package node_test

import (
	"testing"

	"github.com/lestrrat-go/forest/node"
	"github.com/stretchr/testify/require"
)

func TestTextAddContent(t *testing.T) {
	n := node.NewText([]byte("Hello "))
	n.AddContent([]byte("World!"))

	require.Equal(t, []byte("Hello World!"), n.Content(nil), "Content matches")
	require.Equal(t, "Hello World!", n.String())
	require.Equal(t, []byte(">Hello World!"), n.Content([]byte(">")), "Content appends to dst")
}

func TestAsText(t *testing.T) {
	txt, ok := node.AsText(node.NewText([]byte("x")))
	require.True(t, ok)
	require.Equal(t, "x", txt.String())

	_, ok = node.AsText(node.NewComment([]byte("x")))
	require.False(t, ok)
}
