package tree_test

import (
	"slices"
	"testing"

	"github.com/lestrrat-go/forest/tree"
	"github.com/stretchr/testify/require"
)

func values(t *testing.T, tr *tree.Tree[string], ids []tree.NodeID) []string {
	t.Helper()
	ret := make([]string, 0, len(ids))
	for _, id := range ids {
		v, err := tr.Value(id)
		require.NoError(t, err, "Value(%s) should succeed", id)
		ret = append(ret, v)
	}
	return ret
}

func forward(t *testing.T, tr *tree.Tree[string], parent tree.NodeID) []tree.NodeID {
	t.Helper()
	n, err := tr.Get(parent)
	require.NoError(t, err)

	var ret []tree.NodeID
	id, ok := n.FirstChild()
	for ok {
		ret = append(ret, id)
		c, err := tr.Get(id)
		require.NoError(t, err)
		id, ok = c.NextSibling()
	}
	return ret
}

func backward(t *testing.T, tr *tree.Tree[string], parent tree.NodeID) []tree.NodeID {
	t.Helper()
	n, err := tr.Get(parent)
	require.NoError(t, err)

	var ret []tree.NodeID
	id, ok := n.LastChild()
	for ok {
		ret = append(ret, id)
		c, err := tr.Get(id)
		require.NoError(t, err)
		id, ok = c.PrevSibling()
	}
	return ret
}

func TestNew(t *testing.T) {
	tr := tree.New("root")
	require.Equal(t, 1, tr.Len())

	root, err := tr.FirstNodeID()
	require.NoError(t, err, "FirstNodeID should succeed")
	require.False(t, root.IsZero())

	v, err := tr.Value(root)
	require.NoError(t, err)
	require.Equal(t, "root", v)

	n, err := tr.Get(root)
	require.NoError(t, err)
	_, ok := n.Parent()
	require.False(t, ok, "root has no parent")
	require.False(t, n.HasChildren())

	var empty tree.Tree[string]
	_, err = empty.FirstNodeID()
	require.ErrorIs(t, err, tree.ErrEmpty)
}

func TestGetUnknown(t *testing.T) {
	tr := tree.New("root")
	_, err := tr.Get(tree.NodeID{})
	require.ErrorIs(t, err, tree.ErrNotFound, "zero NodeID is never found")

	other := tree.New("other")
	id := other.CreateNode("x")
	_, err = tr.Get(id)
	require.ErrorIs(t, err, tree.ErrNotFound, "NodeID from a larger tree is not found")
}

func TestAppendChild(t *testing.T) {
	t.Run("SiblingChain", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()

		var ids []tree.NodeID
		for _, v := range []string{"a", "b", "c", "d"} {
			id := tr.CreateNode(v)
			require.NoError(t, tr.AppendChild(root, id), "AppendChild(%s) should succeed", v)
			ids = append(ids, id)
		}

		fwd := forward(t, tr, root)
		require.Equal(t, ids, fwd, "forward traversal visits every child once")
		require.Equal(t, []string{"a", "b", "c", "d"}, values(t, tr, fwd))

		bwd := backward(t, tr, root)
		slices.Reverse(bwd)
		require.Equal(t, fwd, bwd, "backward traversal is the exact reverse")

		for _, id := range ids {
			n, err := tr.Get(id)
			require.NoError(t, err)
			p, ok := n.Parent()
			require.True(t, ok)
			require.Equal(t, root, p)
		}

		first, _ := tr.Get(ids[0])
		_, ok := first.PrevSibling()
		require.False(t, ok, "first child has no previous sibling")
		last, _ := tr.Get(ids[3])
		_, ok = last.NextSibling()
		require.False(t, ok, "last child has no next sibling")
	})

	t.Run("AlreadyAttached", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()
		a, err := tr.AppendValue(root, "a")
		require.NoError(t, err)
		b, err := tr.AppendValue(root, "b")
		require.NoError(t, err)

		require.ErrorIs(t, tr.AppendChild(b, a), tree.ErrAlreadyAttached)
		require.Equal(t, []string{"a", "b"}, values(t, tr, forward(t, tr, root)), "failed append leaves tree untouched")
	})

	t.Run("Invalid", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()
		a := tr.CreateNode("a")

		require.ErrorIs(t, tr.AppendChild(a, a), tree.ErrInvalidOperation)
		require.ErrorIs(t, tr.AppendChild(a, root), tree.ErrInvalidOperation, "root cannot be attached")
		require.ErrorIs(t, tr.AppendChild(root, tree.NodeID{}), tree.ErrNotFound)

		a1, err := tr.AppendValue(a, "a1")
		require.NoError(t, err)
		require.ErrorIs(t, tr.AppendChild(a1, a), tree.ErrInvalidOperation, "no cycles")
		require.ErrorIs(t, tr.InsertBefore(a1, a), tree.ErrInvalidOperation, "no cycles")
	})
}

func TestInsertBefore(t *testing.T) {
	tr := tree.New("root")
	root, _ := tr.FirstNodeID()
	b, err := tr.AppendValue(root, "b")
	require.NoError(t, err)
	d, err := tr.AppendValue(root, "d")
	require.NoError(t, err)

	a := tr.CreateNode("a")
	require.NoError(t, tr.InsertBefore(b, a), "insert before first child")
	c := tr.CreateNode("c")
	require.NoError(t, tr.InsertBefore(d, c), "insert in the middle")

	require.Equal(t, []string{"a", "b", "c", "d"}, values(t, tr, forward(t, tr, root)))
	bwd := backward(t, tr, root)
	slices.Reverse(bwd)
	require.Equal(t, []string{"a", "b", "c", "d"}, values(t, tr, bwd))

	require.ErrorIs(t, tr.InsertBefore(root, tr.CreateNode("x")), tree.ErrNoParent)
	require.ErrorIs(t, tr.InsertBefore(d, a), tree.ErrAlreadyAttached)
	require.ErrorIs(t, tr.InsertBefore(d, d), tree.ErrInvalidOperation)
}

func TestDetach(t *testing.T) {
	tr := tree.New("root")
	root, _ := tr.FirstNodeID()
	a, _ := tr.AppendValue(root, "a")
	b, _ := tr.AppendValue(root, "b")
	c, _ := tr.AppendValue(root, "c")
	b1, _ := tr.AppendValue(b, "b1")

	require.NoError(t, tr.Detach(b), "Detach middle child")
	require.Equal(t, []string{"a", "c"}, values(t, tr, forward(t, tr, root)))
	bwd := backward(t, tr, root)
	require.Equal(t, []tree.NodeID{c, a}, bwd)

	n, err := tr.Get(b)
	require.NoError(t, err)
	_, ok := n.Parent()
	require.False(t, ok)
	_, ok = n.PrevSibling()
	require.False(t, ok)
	_, ok = n.NextSibling()
	require.False(t, ok)
	require.Equal(t, []tree.NodeID{b1}, slices.Collect(tr.Children(b)), "subtree is kept")

	require.ErrorIs(t, tr.Detach(b), tree.ErrNotAttached, "detach is not idempotent")
	require.ErrorIs(t, tr.Detach(root), tree.ErrNotAttached)

	require.NoError(t, tr.Detach(a))
	require.NoError(t, tr.Detach(c))
	rn, _ := tr.Get(root)
	require.False(t, rn.HasChildren())
	_, ok = rn.LastChild()
	require.False(t, ok)

	require.NoError(t, tr.AppendChild(root, b), "a detached node can be attached again")
	require.Equal(t, []tree.NodeID{b}, forward(t, tr, root))
}

func TestReparentChildren(t *testing.T) {
	t.Run("AfterDetach", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()
		src, _ := tr.AppendValue(root, "src")
		dst, _ := tr.AppendValue(root, "dst")
		existing, _ := tr.AppendValue(dst, "existing")

		var moved []tree.NodeID
		for _, v := range []string{"x", "y", "z"} {
			id, err := tr.AppendValue(src, v)
			require.NoError(t, err)
			moved = append(moved, id)
		}

		require.NoError(t, tr.Detach(src))
		require.NoError(t, tr.ReparentChildren(src, dst))

		sn, _ := tr.Get(src)
		require.False(t, sn.HasChildren(), "source ends with no children")
		_, ok := sn.LastChild()
		require.False(t, ok)

		require.Equal(t, append([]tree.NodeID{existing}, moved...), forward(t, tr, dst))
		bwd := backward(t, tr, dst)
		slices.Reverse(bwd)
		require.Equal(t, forward(t, tr, dst), bwd)

		for _, id := range moved {
			n, _ := tr.Get(id)
			p, ok := n.Parent()
			require.True(t, ok)
			require.Equal(t, dst, p)
		}
	})

	t.Run("EmptySource", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()
		a := tr.CreateNode("a")
		require.NoError(t, tr.ReparentChildren(a, root))
		require.Empty(t, forward(t, tr, root))
	})

	t.Run("IntoEmptyDestination", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()
		x, _ := tr.AppendValue(root, "x")
		y, _ := tr.AppendValue(root, "y")
		dst := tr.CreateNode("dst")

		require.NoError(t, tr.ReparentChildren(root, dst))
		require.Equal(t, []tree.NodeID{x, y}, forward(t, tr, dst))
		require.Equal(t, []tree.NodeID{y, x}, backward(t, tr, dst))
	})

	t.Run("Invalid", func(t *testing.T) {
		tr := tree.New("root")
		root, _ := tr.FirstNodeID()
		a, _ := tr.AppendValue(root, "a")
		a1, _ := tr.AppendValue(a, "a1")

		require.ErrorIs(t, tr.ReparentChildren(root, root), tree.ErrInvalidOperation)
		require.ErrorIs(t, tr.ReparentChildren(root, a1), tree.ErrInvalidOperation, "destination inside source")
		require.Equal(t, []tree.NodeID{a}, forward(t, tr, root), "failed reparent leaves tree untouched")
	})
}

func TestDescendants(t *testing.T) {
	tr := tree.New("root")
	root, _ := tr.FirstNodeID()
	a, _ := tr.AppendValue(root, "a")
	_, _ = tr.AppendValue(a, "a1")
	a2, _ := tr.AppendValue(a, "a2")
	_, _ = tr.AppendValue(a2, "a2x")
	b, _ := tr.AppendValue(root, "b")
	_, _ = tr.AppendValue(b, "b1")

	require.Equal(t,
		[]string{"root", "a", "a1", "a2", "a2x", "b", "b1"},
		values(t, tr, slices.Collect(tr.Descendants(root))),
	)
	require.Equal(t,
		[]string{"a", "a1", "a2", "a2x"},
		values(t, tr, slices.Collect(tr.Descendants(a))),
		"iteration stays inside the subtree",
	)

	var first []tree.NodeID
	for id := range tr.Descendants(root) {
		first = append(first, id)
		if len(first) == 2 {
			break
		}
	}
	require.Len(t, first, 2)
	require.Empty(t, slices.Collect(tr.Descendants(tree.NodeID{})))
}
