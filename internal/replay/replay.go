// Package replay drives a sink.TreeSink from a tree produced by
// golang.org/x/net/html.
//
// x/net/html runs the tokenizer and the tree construction rules itself
// and hands back a finished tree. Replaying that tree as construction
// events lets any TreeSink receive the result: elements, comments and
// text are created and appended in document order, the doctype is
// attached to the document, and the children of a template element are
// placed into its content fragment.
package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestrrat-go/forest/internal/stack"
	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/sink"
	"github.com/lestrrat-go/pdebug/v3"
	"golang.org/x/net/html"
)

// engine namespace names, as stored in html.Node.Namespace and
// html.Attribute.Namespace
var namespaces = map[string]string{
	"":      node.HTMLNamespace,
	"math":  node.MathMLNamespace,
	"svg":   node.SVGNamespace,
	"xlink": node.XLinkNamespace,
	"xml":   node.XMLNamespace,
	"xmlns": node.XMLNSNamespace,
}

// EngineNamespace returns the x/net/html short namespace name for a
// namespace URI, and false if the engine has none.
func EngineNamespace(uri string) (string, bool) {
	for short, u := range namespaces {
		if u == uri {
			return short, true
		}
	}
	return "", false
}

func elementName(n *html.Node) node.QualName {
	space, ok := namespaces[n.Namespace]
	if !ok {
		space = n.Namespace
	}
	return node.QualName{Space: space, Local: n.Data}
}

func attributes(n *html.Node) []node.Attribute {
	if len(n.Attr) == 0 {
		return nil
	}

	ret := make([]node.Attribute, 0, len(n.Attr))
	for _, a := range n.Attr {
		name := node.QualName{Local: a.Key}
		if a.Namespace != "" {
			name.Prefix = a.Namespace
			if space, ok := namespaces[a.Namespace]; ok {
				name.Space = space
			}
		}
		ret = append(ret, node.Attribute{Name: name, Value: a.Val})
	}
	return ret
}

func elementFlags(name node.QualName, attrs []node.Attribute) sink.ElementFlags {
	var flags sink.ElementFlags
	switch {
	case name.Is(node.HTMLNamespace, "template"):
		flags.Template = true
	case name.Is(node.MathMLNamespace, "annotation-xml"):
		for _, a := range attrs {
			if a.Name.Space == "" && a.Name.Local == "encoding" {
				enc := strings.ToLower(a.Value)
				flags.MathMLAnnotationXMLIntegrationPoint = enc == "text/html" || enc == "application/xhtml+xml"
				break
			}
		}
	}
	return flags
}

func doctypeIDs(n *html.Node) (publicID, systemID string, hasSystemID bool) {
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			publicID = a.Val
		case "system":
			systemID = a.Val
			hasSystemID = true
		}
	}
	return publicID, systemID, hasSystemID
}

type item[H any] struct {
	n      *html.Node
	parent H
}

type replayer[H any] struct {
	sink  sink.TreeSink[H]
	stack stack.Stack[item[H]]
}

// Document replays a document tree. root must be an html.DocumentNode.
func Document[H any](ctx context.Context, s sink.TreeSink[H], root *html.Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if root == nil || root.Type != html.DocumentNode {
		return fmt.Errorf("replay: expected a document node")
	}

	r := &replayer[H]{sink: s}
	doc := s.GetDocument()

	hasDoctype := false
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			hasDoctype = true
			break
		}
	}
	if !hasDoctype {
		s.ParseError("expected a DOCTYPE")
		s.SetQuirksMode(sink.Quirks)
	}

	r.pushChildren(root, doc)
	return r.run(ctx)
}

// Fragment replays the nodes returned by html.ParseFragment as children
// of parent.
func Fragment[H any](ctx context.Context, s sink.TreeSink[H], parent H, nodes []*html.Node) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	r := &replayer[H]{sink: s}
	for i := len(nodes) - 1; i >= 0; i-- {
		r.stack.Push(item[H]{n: nodes[i], parent: parent})
	}
	return r.run(ctx)
}

// pushChildren pushes the children of n in reverse, so that they are
// popped in document order.
func (r *replayer[H]) pushChildren(n *html.Node, parent H) {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		r.stack.Push(item[H]{n: c, parent: parent})
	}
}

func (r *replayer[H]) run(ctx context.Context) error {
	for {
		it, ok := r.stack.Pop()
		if !ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.replay(it); err != nil {
			return err
		}
	}
}

func (r *replayer[H]) replay(it item[H]) error {
	s := r.sink
	n := it.n

	switch n.Type {
	case html.TextNode:
		return s.Append(it.parent, sink.AppendText[H](n.Data))
	case html.CommentNode:
		h := s.CreateComment(n.Data)
		return s.Append(it.parent, sink.AppendNode(h))
	case html.DoctypeNode:
		if n.Parent == nil || n.Parent.Type != html.DocumentNode {
			s.ParseError("unexpected DOCTYPE")
			return nil
		}
		publicID, systemID, hasSystemID := doctypeIDs(n)
		if err := s.AppendDoctypeToDocument(n.Data, publicID, systemID); err != nil {
			return err
		}
		s.SetQuirksMode(QuirksModeFor(n.Data, publicID, systemID, hasSystemID))
		return nil
	case html.ElementNode:
		return r.element(it)
	case html.ErrorNode:
		s.ParseError("error node in parse tree")
		return nil
	default:
		s.ParseError(fmt.Sprintf("unexpected node type %d in parse tree", n.Type))
		return nil
	}
}

func (r *replayer[H]) element(it item[H]) error {
	s := r.sink
	name := elementName(it.n)
	attrs := attributes(it.n)
	flags := elementFlags(name, attrs)

	if pdebug.Enabled {
		pdebug.Printf("replay element %s (%d attributes)", name, len(attrs))
	}

	h, err := s.CreateElement(name, attrs, flags)
	if err != nil {
		return err
	}
	if err := s.Append(it.parent, sink.AppendNode(h)); err != nil {
		return err
	}

	parent := h
	if flags.Template {
		contents, err := s.GetTemplateContents(h)
		if err != nil {
			return err
		}
		parent = contents
	}
	r.pushChildren(it.n, parent)
	return nil
}
