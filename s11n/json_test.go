package s11n_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lestrrat-go/forest"
	"github.com/lestrrat-go/forest/s11n"
	"github.com/stretchr/testify/require"
)

type decodedNode struct {
	Value    json.RawMessage `json:"value"`
	Children []*decodedNode  `json:"children"`
}

func TestEncodeJSON(t *testing.T) {
	const input = `<!DOCTYPE html><p id="x" class="a b a" title="t">hi</p>`

	doc, err := forest.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s11n.EncodeJSON(&buf, doc), `EncodeJSON should succeed`)
	require.True(t, strings.HasSuffix(buf.String(), "\n"))

	var root decodedNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &root))
	require.JSONEq(t, `"Document"`, string(root.Value))
	require.Len(t, root.Children, 2)

	doctype := root.Children[0]
	require.JSONEq(t, `{"Doctype":{"name":"html","public_id":"","system_id":""}}`, string(doctype.Value))
	require.Empty(t, doctype.Children, `leaves have no children member`)

	html := root.Children[1]
	require.Len(t, html.Children, 2)
	body := html.Children[1]
	require.Len(t, body.Children, 1)
	p := body.Children[0]

	require.JSONEq(t, `{"Element":{
		"name": "p",
		"id": "x",
		"classes": ["a", "b"],
		"attributes": {"id": "x", "class": "a b a", "title": "t"}
	}}`, string(p.Value))
	require.Contains(t, string(p.Value), `"attributes":{"id":"x","class":"a b a","title":"t"}`, `attributes keep source order`)

	require.Len(t, p.Children, 1)
	require.JSONEq(t, `{"Text":"hi"}`, string(p.Children[0].Value))
}

func TestEncodeJSONElementWithoutID(t *testing.T) {
	doc, err := forest.Parse(context.Background(), strings.NewReader(`<!DOCTYPE html>`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s11n.EncodeJSON(&buf, doc))
	require.Contains(t, buf.String(), `{"Element":{"name":"html","id":null,"classes":[],"attributes":{}}}`)
}
