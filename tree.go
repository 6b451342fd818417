package forest

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/sink"
	"github.com/lestrrat-go/forest/tree"
	"github.com/pkg/errors"
)

func (d *Document) trace(msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	d.tlog.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

func idAttr(key string, id tree.NodeID) slog.Attr {
	return slog.String(key, id.String())
}

func (d *Document) ParseError(msg string) {
	d.trace("tree.ParseError", slog.String("msg", msg))
	d.errors = append(d.errors, msg)
}

func (d *Document) GetDocument() tree.NodeID {
	return d.root
}

func (d *Document) ElemName(target tree.NodeID) (node.QualName, error) {
	e, err := d.Element(target)
	if err != nil {
		return node.QualName{}, err
	}
	return e.Name(), nil
}

// CreateElement creates a detached element. An HTML template element is
// created together with its content fragment, which becomes its only
// child.
func (d *Document) CreateElement(name node.QualName, attrs []node.Attribute, _ sink.ElementFlags) (tree.NodeID, error) {
	id := d.tree.CreateNode(node.NewElement(name, attrs))
	d.trace("tree.CreateElement", idAttr("id", id), slog.String("name", name.String()))

	if name.Is(node.HTMLNamespace, "template") {
		if _, err := d.tree.AppendValue(id, node.NewFragment()); err != nil {
			return tree.NodeID{}, errors.Wrapf(err, "failed to create contents of template %s", id)
		}
	}
	return id, nil
}

func (d *Document) CreateComment(text string) tree.NodeID {
	id := d.tree.CreateNode(node.NewComment([]byte(text)))
	d.trace("tree.CreateComment", idAttr("id", id))
	return id
}

func (d *Document) CreatePI(target, data string) tree.NodeID {
	id := d.tree.CreateNode(node.NewProcessingInstruction(target, data))
	d.trace("tree.CreatePI", idAttr("id", id), slog.String("target", target))
	return id
}

// Append adds child as the last child of parent. Text that follows a
// text node is merged into it instead of creating a new node.
func (d *Document) Append(parent tree.NodeID, child sink.NodeOrText[tree.NodeID]) error {
	if h, ok := child.Node(); ok {
		d.trace("tree.Append", idAttr("parent", parent), idAttr("child", h))
		return errors.Wrapf(d.tree.AppendChild(parent, h), "failed to append %s to %s", h, parent)
	}

	text, _ := child.Text()
	d.trace("tree.Append", idAttr("parent", parent), slog.Int("text", len(text)))

	pn, err := d.tree.Get(parent)
	if err != nil {
		return errors.Wrap(err, "failed to append text")
	}
	if last, ok := pn.LastChild(); ok {
		if t, ok := d.text(last); ok {
			t.AddContent([]byte(text))
			return nil
		}
	}

	_, err = d.tree.AppendValue(parent, node.NewText([]byte(text)))
	return errors.Wrapf(err, "failed to append text to %s", parent)
}

// AppendBasedOnParentNode appends child to element when element is in
// the tree, and to prevElement otherwise. The parser uses this for
// foster parenting, passing the foster parent as prevElement.
func (d *Document) AppendBasedOnParentNode(element, prevElement tree.NodeID, child sink.NodeOrText[tree.NodeID]) error {
	cur, err := d.tree.Cursor(element)
	if err != nil {
		return errors.Wrap(err, "failed to append based on parent node")
	}

	if _, ok := cur.PeekParent(); ok {
		return d.Append(element, child)
	}
	return d.Append(prevElement, child)
}

func (d *Document) AppendDoctypeToDocument(name, publicID, systemID string) error {
	d.trace("tree.AppendDoctypeToDocument", slog.String("name", name))
	_, err := d.tree.AppendValue(d.root, node.NewDoctype(name, publicID, systemID))
	return errors.Wrap(err, "failed to append doctype")
}

func (d *Document) GetTemplateContents(target tree.NodeID) (tree.NodeID, error) {
	cur, err := d.tree.Cursor(target)
	if err != nil {
		return tree.NodeID{}, err
	}
	if err := cur.FirstChild(); err != nil {
		return tree.NodeID{}, errors.Wrapf(ErrInvariantViolation, "%s has no template contents", target)
	}
	if cur.Value().Type() != node.FragmentNodeType {
		return tree.NodeID{}, errors.Wrapf(ErrInvariantViolation, "first child of %s is a %s node, not a fragment", target, cur.Value().Type())
	}
	return cur.ID(), nil
}

func (d *Document) SameNode(x, y tree.NodeID) bool {
	return x == y
}

func (d *Document) SetQuirksMode(mode sink.QuirksMode) {
	d.trace("tree.SetQuirksMode", slog.String("mode", mode.String()))
	d.quirksMode = mode
}

// AppendBeforeSibling inserts child before sibling. Text that follows a
// text node is merged into it instead of creating a new node.
func (d *Document) AppendBeforeSibling(sibling tree.NodeID, child sink.NodeOrText[tree.NodeID]) error {
	if h, ok := child.Node(); ok {
		d.trace("tree.AppendBeforeSibling", idAttr("sibling", sibling), idAttr("child", h))
		return errors.Wrapf(d.tree.InsertBefore(sibling, h), "failed to insert %s before %s", h, sibling)
	}

	text, _ := child.Text()
	d.trace("tree.AppendBeforeSibling", idAttr("sibling", sibling), slog.Int("text", len(text)))

	sn, err := d.tree.Get(sibling)
	if err != nil {
		return errors.Wrap(err, "failed to insert text")
	}
	if _, ok := sn.Parent(); !ok {
		return errors.Wrapf(tree.ErrNoParent, "failed to insert text before %s", sibling)
	}
	if prev, ok := sn.PrevSibling(); ok {
		if t, ok := d.text(prev); ok {
			t.AddContent([]byte(text))
			return nil
		}
	}

	id := d.tree.CreateNode(node.NewText([]byte(text)))
	return errors.Wrapf(d.tree.InsertBefore(sibling, id), "failed to insert text before %s", sibling)
}

// AddAttrsIfMissing adds the attributes target does not have yet.
// Existing values are never overwritten.
func (d *Document) AddAttrsIfMissing(target tree.NodeID, attrs []node.Attribute) error {
	e, err := d.Element(target)
	if err != nil {
		return err
	}

	d.trace("tree.AddAttrsIfMissing", idAttr("target", target), slog.Int("attrs", len(attrs)))
	for _, attr := range attrs {
		e.AddAttributeIfMissing(attr)
	}
	return nil
}

// RemoveFromParent detaches target from the tree. Its children stay
// with it. Removing a node that has no parent does nothing.
func (d *Document) RemoveFromParent(target tree.NodeID) error {
	n, err := d.tree.Get(target)
	if err != nil {
		return errors.Wrap(err, "failed to remove from parent")
	}
	if _, ok := n.Parent(); !ok {
		return nil
	}

	d.trace("tree.RemoveFromParent", idAttr("target", target))
	return errors.Wrapf(d.tree.Detach(target), "failed to remove %s from parent", target)
}

// ReparentChildren moves all of target's children to the end of
// newParent's children, keeping their order, and detaches target.
// Nothing is changed if the move is rejected.
func (d *Document) ReparentChildren(target, newParent tree.NodeID) error {
	d.trace("tree.ReparentChildren", idAttr("target", target), idAttr("new_parent", newParent))

	if err := d.tree.ReparentChildren(target, newParent); err != nil {
		return errors.Wrapf(err, "failed to move children of %s to %s", target, newParent)
	}
	return d.RemoveFromParent(target)
}
