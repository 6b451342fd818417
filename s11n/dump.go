// Package s11n writes documents out in forms meant for people and for
// other programs: an indented outline, and JSON.
package s11n

import (
	"bufio"
	"io"
	"strings"

	"github.com/lestrrat-go/forest"
	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/tree"
)

// Dumper writes a document as an indented outline, one node per line:
//
//	| <!DOCTYPE html>
//	| <html>
//	|   <head>
//	|   <body>
//	|     <p>
//	|       class="intro"
//	|       "hello"
//
// Attributes are listed under their element, in source order. Elements
// outside the HTML namespace carry a namespace prefix ("svg", "math"),
// and the content of a template is introduced by a "content" line.
type Dumper struct {
	// Indent is the indentation added per level. Two spaces if empty.
	Indent string
}

var namespacePrefixes = map[string]string{
	node.MathMLNamespace: "math",
	node.SVGNamespace:    "svg",
	node.XLinkNamespace:  "xlink",
	node.XMLNamespace:    "xml",
	node.XMLNSNamespace:  "xmlns",
}

func (d *Dumper) indent() string {
	if d.Indent == "" {
		return "  "
	}
	return d.Indent
}

// DumpDocument writes the outline of doc. The root node itself is not
// written.
func (d *Dumper) DumpDocument(out io.Writer, doc *forest.Document) error {
	w := bufio.NewWriter(out)
	for c := range doc.Tree().Children(doc.Root()) {
		if err := d.dumpNode(w, doc, c, 0); err != nil {
			return err
		}
	}
	return w.Flush()
}

// DumpNode writes the outline of the subtree at id, starting at the
// given depth.
func (d *Dumper) DumpNode(out io.Writer, doc *forest.Document, id tree.NodeID, depth int) error {
	w := bufio.NewWriter(out)
	if err := d.dumpNode(w, doc, id, depth); err != nil {
		return err
	}
	return w.Flush()
}

func (d *Dumper) line(w *bufio.Writer, depth int, parts ...string) {
	_, _ = w.WriteString("| ")
	_, _ = w.WriteString(strings.Repeat(d.indent(), depth))
	for _, p := range parts {
		_, _ = w.WriteString(p)
	}
	_ = w.WriteByte('\n')
}

func (d *Dumper) dumpNode(w *bufio.Writer, doc *forest.Document, id tree.NodeID, depth int) error {
	n, err := doc.Node(id)
	if err != nil {
		return err
	}

	switch v := n.(type) {
	case *node.Document:
		// only ever the root
	case *node.Fragment:
		d.line(w, depth, "content")
	case *node.Doctype:
		dumpDoctype(d, w, depth, v)
	case *node.Comment:
		d.line(w, depth, "<!-- ", v.String(), " -->")
	case *node.Text:
		d.line(w, depth, `"`, v.String(), `"`)
	case *node.ProcessingInstruction:
		d.line(w, depth, "<?", v.Target(), " ", v.Data(), ">")
	case *node.Element:
		d.line(w, depth, "<", qualifiedName(v.Name()), ">")
		for name, value := range v.Attributes() {
			d.line(w, depth+1, qualifiedName(name), `="`, value, `"`)
		}
	}

	for c := range doc.Tree().Children(id) {
		if err := d.dumpNode(w, doc, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func dumpDoctype(d *Dumper, w *bufio.Writer, depth int, v *node.Doctype) {
	if v.PublicID() == "" && v.SystemID() == "" {
		d.line(w, depth, "<!DOCTYPE ", v.Name(), ">")
		return
	}
	d.line(w, depth, "<!DOCTYPE ", v.Name(), ` "`, v.PublicID(), `" "`, v.SystemID(), `">`)
}

func qualifiedName(name node.QualName) string {
	if name.Space == "" || name.Space == node.HTMLNamespace {
		return name.Local
	}
	if prefix, ok := namespacePrefixes[name.Space]; ok {
		return prefix + " " + name.Local
	}
	return name.String()
}
