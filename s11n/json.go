package s11n

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/lestrrat-go/forest"
	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/tree"
)

// jsonNode is one node of the JSON form. Value holds the node payload as
// an externally tagged variant: a bare string for kinds without data
// ("Document", "Fragment"), and an object with a single key naming the
// kind otherwise, e.g. {"Text": "hello"}.
type jsonNode struct {
	Value    any         `json:"value"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonDoctype struct {
	Name     string `json:"name"`
	PublicID string `json:"public_id"`
	SystemID string `json:"system_id"`
}

type jsonElement struct {
	Name       string       `json:"name"`
	ID         *string      `json:"id"`
	Classes    []string     `json:"classes"`
	Attributes orderedAttrs `json:"attributes"`
}

type jsonPI struct {
	Target string `json:"target"`
	Data   string `json:"data"`
}

// orderedAttrs marshals as a JSON object whose keys keep source order.
type orderedAttrs []node.Attribute

func (a orderedAttrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(attr.Name.Local)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonValue(n node.Node) any {
	switch v := n.(type) {
	case *node.Document:
		return "Document"
	case *node.Fragment:
		return "Fragment"
	case *node.Doctype:
		return map[string]jsonDoctype{"Doctype": {Name: v.Name(), PublicID: v.PublicID(), SystemID: v.SystemID()}}
	case *node.Comment:
		return map[string]string{"Comment": v.String()}
	case *node.Text:
		return map[string]string{"Text": v.String()}
	case *node.ProcessingInstruction:
		return map[string]jsonPI{"ProcessingInstruction": {Target: v.Target(), Data: v.Data()}}
	case *node.Element:
		e := jsonElement{
			Name:       v.Name().Local,
			Classes:    v.Classes(),
			Attributes: make(orderedAttrs, 0, v.AttributeLen()),
		}
		if id, ok := v.ID(); ok {
			e.ID = &id
		}
		if e.Classes == nil {
			e.Classes = []string{}
		}
		for name, value := range v.Attributes() {
			// keyed by local name, so the first of two same-named
			// attributes in different namespaces wins
			if !hasLocal(e.Attributes, name.Local) {
				e.Attributes = append(e.Attributes, node.Attribute{Name: name, Value: value})
			}
		}
		return map[string]jsonElement{"Element": e}
	}
	return nil
}

func hasLocal(attrs orderedAttrs, local string) bool {
	for _, a := range attrs {
		if a.Name.Local == local {
			return true
		}
	}
	return false
}

func buildJSON(doc *forest.Document, id tree.NodeID) (*jsonNode, error) {
	n, err := doc.Node(id)
	if err != nil {
		return nil, err
	}

	jn := &jsonNode{Value: jsonValue(n)}
	for c := range doc.Tree().Children(id) {
		child, err := buildJSON(doc, c)
		if err != nil {
			return nil, err
		}
		jn.Children = append(jn.Children, child)
	}
	return jn, nil
}

// EncodeJSON writes doc to w as a single JSON value, followed by a
// newline. Each node is an object with a "value" member holding its
// payload and a "children" member, omitted for leaves.
func EncodeJSON(w io.Writer, doc *forest.Document) error {
	root, err := buildJSON(doc, doc.Root())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(root)
}
