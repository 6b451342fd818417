package node_test

import (
	"testing"

	"github.com/lestrrat-go/forest/node"
	"github.com/stretchr/testify/require"
)

func TestNodeTypes(t *testing.T) {
	testcases := []struct {
		Node      node.Node
		Type      node.NodeType
		LocalName string
	}{
		{Node: node.NewDocument(), Type: node.DocumentNodeType, LocalName: "#document"},
		{Node: node.NewFragment(), Type: node.FragmentNodeType, LocalName: "#document-fragment"},
		{Node: node.NewDoctype("html", "", ""), Type: node.DoctypeNodeType, LocalName: "html"},
		{Node: node.NewComment([]byte("c")), Type: node.CommentNodeType, LocalName: "#comment"},
		{Node: node.NewText([]byte("t")), Type: node.TextNodeType, LocalName: "#text"},
		{Node: node.NewElement(node.HTMLName("body"), nil), Type: node.ElementNodeType, LocalName: "body"},
		{Node: node.NewProcessingInstruction("xml-stylesheet", `href="a.css"`), Type: node.ProcessingInstructionNodeType, LocalName: "xml-stylesheet"},
	}

	for _, tc := range testcases {
		t.Run(tc.Type.String(), func(t *testing.T) {
			require.Equal(t, tc.Type, tc.Node.Type())
			require.Equal(t, tc.LocalName, tc.Node.LocalName())
		})
	}

	require.Equal(t, "NodeType(99)", node.NodeType(99).String())
}

func TestDoctype(t *testing.T) {
	d := node.NewDoctype("html", "-//W3C//DTD HTML 4.01//EN", "http://www.w3.org/TR/html4/strict.dtd")
	require.Equal(t, "html", d.Name())
	require.Equal(t, "-//W3C//DTD HTML 4.01//EN", d.PublicID())
	require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", d.SystemID())
}

func TestProcessingInstruction(t *testing.T) {
	pi := node.NewProcessingInstruction("target", "data")
	require.Equal(t, "target", pi.Target())
	require.Equal(t, "data", pi.Data())
}
