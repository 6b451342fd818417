package sink_test

import (
	"testing"

	"github.com/lestrrat-go/forest/sink"
	"github.com/stretchr/testify/require"
)

func TestNodeOrText(t *testing.T) {
	n := sink.AppendNode(42)
	require.False(t, n.IsText())
	h, ok := n.Node()
	require.True(t, ok)
	require.Equal(t, 42, h)
	_, ok = n.Text()
	require.False(t, ok)

	txt := sink.AppendText[int]("hello")
	require.True(t, txt.IsText())
	s, ok := txt.Text()
	require.True(t, ok)
	require.Equal(t, "hello", s)
	_, ok = txt.Node()
	require.False(t, ok)

	empty := sink.AppendText[int]("")
	require.True(t, empty.IsText(), "empty text is still text")
}

func TestQuirksMode(t *testing.T) {
	require.Equal(t, "no-quirks", sink.NoQuirks.String())
	require.Equal(t, "limited-quirks", sink.LimitedQuirks.String())
	require.Equal(t, "quirks", sink.Quirks.String())
	require.Equal(t, "QuirksMode(7)", sink.QuirksMode(7).String())
}
