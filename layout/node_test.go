package layout_test

import (
	"testing"

	"github.com/loomware/flexlayout/layout"
	"github.com/stretchr/testify/require"
)

func TestNode_AppendChildOrdering(t *testing.T) {
	root := layout.NewNode()
	a, b, c := layout.NewNode(), layout.NewNode(), layout.NewNode()
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	require.Equal(t, 3, root.ChildCount())
	require.Equal(t, a, root.FirstChild())
	require.Equal(t, c, root.LastChild())
	require.Equal(t, b, a.Next())
	require.Equal(t, b, c.Prev())
	require.Equal(t, 1, root.IndexOf(b))
}

func TestNode_InsertChildAtMovesAcrossParents(t *testing.T) {
	p1, p2 := layout.NewNode(), layout.NewNode()
	child := layout.NewNode()
	p1.AppendChild(child)
	require.Equal(t, 1, p1.ChildCount())

	p2.InsertChildAt(child, 0)

	require.Equal(t, 0, p1.ChildCount())
	require.Equal(t, 1, p2.ChildCount())
	require.Equal(t, p2, child.Parent())
}

func TestNode_RemoveChildUnlinksSiblings(t *testing.T) {
	root := layout.NewNode()
	a, b, c := layout.NewNode(), layout.NewNode(), layout.NewNode()
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	root.RemoveChild(b)

	require.Equal(t, 2, root.ChildCount())
	require.Equal(t, c, a.Next())
	require.Equal(t, a, c.Prev())
	require.Nil(t, b.Parent())
}

func TestNode_MarkDirtyPropagatesToRootOnceThenShortCircuits(t *testing.T) {
	root := layout.NewNode()
	child := layout.NewNode()
	root.AppendChild(child)
	// Appending marks the parent dirty; the child itself is untouched
	// until something sets its own style or children.
	require.True(t, root.Dirty())
	require.False(t, child.Dirty())

	child.SetStyleProperty("width", "10px", false)
	require.True(t, child.Dirty())

	// MarkDirty on an already-dirty node is a no-op, including its
	// propagation: it returns before reaching the parent.
	child.MarkDirty(true)
	require.True(t, child.Dirty())
}

func TestNode_ApplyWidthConstraintsClampOrderFloorsLast(t *testing.T) {
	n := layout.NewNode()
	st := n.Style()
	st.MinWidth, st.MaxWidth = layout.Fixed(50), layout.Fixed(100)
	st.PaddingLeft, st.PaddingRight = layout.Fixed(60), layout.Fixed(60)
	n.UpdateLayoutInfo(1000, 1000)

	// Requested width is clamped into [50,100] first, then floored at
	// the minimum border box (120 here) which is larger than both
	// bounds, so the floor wins.
	require.Equal(t, float32(120), n.ApplyWidthConstraints(10))
	require.Equal(t, float32(120), n.ApplyWidthConstraints(500))
}

func TestNode_SetStyleDisplayNoneZeroesSubtreeOnNextMeasure(t *testing.T) {
	root := layout.NewNode()
	root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(100)

	child := layout.NewNode()
	child.Style().Width, child.Style().Height = layout.Fixed(50), layout.Fixed(50)
	root.AppendChild(child)

	root.ReLayout(0, 0, 200, 100)
	require.Equal(t, float32(50), child.OffsetWidth())

	child.SetStyleProperty("display", "none", false)
	root.ReLayout(0, 0, 200, 100)
	require.Equal(t, float32(0), child.OffsetWidth())
	require.Equal(t, float32(0), child.OffsetHeight())
}
