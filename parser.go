package forest

import (
	"context"
	"io"
	"log/slog"

	"github.com/lestrrat-go/forest/encoding"
	"github.com/lestrrat-go/forest/internal/replay"
	"github.com/lestrrat-go/forest/node"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func inputReader(r io.Reader, cfg parseConfig) (io.Reader, error) {
	if cfg.encoding == "" {
		return r, nil
	}
	return encoding.NewReader(r, cfg.encoding)
}

// Parse parses a complete HTML document from r.
//
// Parse errors reported by the parser do not make Parse fail; they are
// collected in Document.Errors. An error is returned only when the input
// cannot be read or decoded, when ctx is cancelled, or when the tree
// builder rejects a construction event. No document is returned in that
// case.
func Parse(ctx context.Context, r io.Reader, options ...ParseOption) (*Document, error) {
	ctx, span := StartSpan(ctx, "forest.Parse")
	defer span.End()

	cfg := newParseConfig(options)
	in, err := inputReader(r, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up input")
	}

	root, err := html.ParseWithOptions(in, html.ParseOptionEnableScripting(cfg.scripting))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}

	doc := NewDocument()
	doc.tlog = getTraceLogFromContext(ctx)
	if err := replay.Document(ctx, doc, root); err != nil {
		return nil, errors.Wrap(err, "failed to build document")
	}

	TraceEvent(ctx, "parsed document",
		slog.Int("nodes", doc.tree.Len()),
		slog.Int("errors", len(doc.errors)),
	)
	return doc, nil
}

// ParseFragment parses an HTML fragment from r as if it were the content
// of an element named by contextName. The returned document is rooted at
// a node.Fragment. A zero contextName means <body>.
func ParseFragment(ctx context.Context, r io.Reader, contextName node.QualName, options ...ParseOption) (*Document, error) {
	ctx, span := StartSpan(ctx, "forest.ParseFragment")
	defer span.End()

	if contextName.Local == "" {
		contextName = node.HTMLName("body")
	}
	if contextName.Space == "" {
		contextName.Space = node.HTMLNamespace
	}
	ns, ok := replay.EngineNamespace(contextName.Space)
	if !ok {
		return nil, errors.Errorf("unsupported context namespace %q", contextName.Space)
	}
	// x/net/html rejects a context whose DataAtom does not match Data
	contextNode := &html.Node{
		Type:      html.ElementNode,
		DataAtom:  atom.Lookup([]byte(contextName.Local)),
		Data:      contextName.Local,
		Namespace: ns,
	}

	cfg := newParseConfig(options)
	in, err := inputReader(r, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up input")
	}

	nodes, err := html.ParseFragmentWithOptions(in, contextNode, html.ParseOptionEnableScripting(cfg.scripting))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse fragment")
	}

	doc := NewFragment()
	doc.tlog = getTraceLogFromContext(ctx)
	if err := replay.Fragment(ctx, doc, doc.root, nodes); err != nil {
		return nil, errors.Wrap(err, "failed to build fragment")
	}

	TraceEvent(ctx, "parsed fragment",
		slog.String("context", contextName.String()),
		slog.Int("nodes", doc.tree.Len()),
	)
	return doc, nil
}
