package forest

import (
	"log/slog"

	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/sink"
	"github.com/lestrrat-go/forest/tree"
)

// Version is the version of this library.
const Version = "v0.1.0"

// Document is a markup document under construction, or the result of a
// finished parse. It owns the node tree together with the metadata the
// parser reports about the document: its quirks mode and the list of
// parse errors.
//
// Document implements sink.TreeSink, with tree.NodeID as the handle
// type, and is normally filled by Parse or ParseFragment. It can also be
// driven directly by any other engine that speaks the sink contract.
type Document struct {
	tree       *tree.Tree[node.Node]
	root       tree.NodeID
	quirksMode sink.QuirksMode
	errors     []string
	tlog       *slog.Logger
}

var _ sink.TreeSink[tree.NodeID] = (*Document)(nil)
