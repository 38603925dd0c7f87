package layout_test

import (
	"testing"

	"github.com/loomware/flexlayout/layout"
	"github.com/stretchr/testify/require"
)

func newFlexChild(width, height float32) *layout.Node {
	n := layout.NewNode()
	st := n.Style()
	st.Width, st.Height = layout.Fixed(width), layout.Fixed(height)
	return n
}

// TestFlexLayout_Cases runs the core flexbox pipeline scenarios, one
// assertion block per case. Each comment carries the exact formula the
// expectation was derived from.
func TestFlexLayout_Cases(t *testing.T) {
	t.Run("S1_row_fixed_widths", func(t *testing.T) {
		// container 200x100, row, three children width=40.
		// No grow/shrink/wrap: children keep their own width and pack
		// from the main-start edge.
		root := layout.NewNode()
		root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(100)

		children := make([]*layout.Node, 3)
		for i := range children {
			children[i] = newFlexChild(40, 20)
			root.AppendChild(children[i])
		}

		root.ReLayout(0, 0, 200, 100)

		require.Equal(t, float32(200), root.OffsetWidth())
		require.Equal(t, float32(100), root.OffsetHeight())
		expectedLeft := []float32{0, 40, 80}
		for i, c := range children {
			require.Equalf(t, expectedLeft[i], c.OffsetLeft(), "child %d left", i)
			require.Equal(t, float32(0), c.OffsetTop())
		}
	})

	t.Run("S2_row_equal_grow", func(t *testing.T) {
		// container 200x100, row, three children flex-grow:1 width:0.
		// freeSpace = 200, split 3 ways → 66.666... each.
		root := layout.NewNode()
		root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(100)

		children := make([]*layout.Node, 3)
		for i := range children {
			children[i] = newFlexChild(0, 20)
			children[i].Style().FlexGrow = 1
			root.AppendChild(children[i])
		}

		root.ReLayout(0, 0, 200, 100)

		const share = float32(200) / 3
		expectedLeft := []float32{0, share, 2 * share}
		for i, c := range children {
			require.InDeltaf(t, share, c.OffsetWidth(), 0.01, "child %d width", i)
			require.InDeltaf(t, expectedLeft[i], c.OffsetLeft(), 0.01, "child %d left", i)
		}
	})

	t.Run("S3_row_weighted_shrink", func(t *testing.T) {
		// container 100x100, row, two children width:60 flex-shrink:1.
		// hypothetical sum = 120 > 100, weighted shrink (weight = factor *
		// base size = 60 each) distributes the -20 overflow evenly →
		// each ends at 50.
		root := layout.NewNode()
		root.Style().Width, root.Style().Height = layout.Fixed(100), layout.Fixed(100)

		a, b := newFlexChild(60, 20), newFlexChild(60, 20)
		a.Style().FlexShrink, b.Style().FlexShrink = 1, 1
		root.AppendChild(a)
		root.AppendChild(b)

		root.ReLayout(0, 0, 100, 100)

		require.Equal(t, float32(50), a.OffsetWidth())
		require.Equal(t, float32(50), b.OffsetWidth())
	})

	t.Run("S4_row_wrap_two_lines", func(t *testing.T) {
		// container 300x200, row wrap, five children width:100.
		// Line 1 packs the first three (0,100,200 fit exactly in 300);
		// the fourth would overflow to 400 and starts line 2.
		root := layout.NewNode()
		root.Style().Width, root.Style().Height = layout.Fixed(300), layout.Fixed(200)
		root.Style().FlexWrap = layout.FlexWrapWrap

		children := make([]*layout.Node, 5)
		for i := range children {
			children[i] = newFlexChild(100, 20)
			root.AppendChild(children[i])
		}

		root.ReLayout(0, 0, 300, 200)

		require.Equal(t, []float32{0, 100, 200}, []float32{children[0].OffsetLeft(), children[1].OffsetLeft(), children[2].OffsetLeft()})
		require.Equal(t, []float32{0, 100}, []float32{children[3].OffsetLeft(), children[4].OffsetLeft()})
		require.Equal(t, children[0].OffsetTop(), children[1].OffsetTop())
		require.Greater(t, children[3].OffsetTop(), children[0].OffsetTop())
	})

	t.Run("S5_column_space_between", func(t *testing.T) {
		// container 300x200, column, justify-content: space-between,
		// three children height:40. freeSpace = 200 - 120 = 80, split
		// into 2 gaps of 40 → tops 0, 80, 160.
		root := layout.NewNode()
		root.Style().Width, root.Style().Height = layout.Fixed(300), layout.Fixed(200)
		root.Style().FlexDirection = layout.FlexDirectionColumn
		root.Style().JustifyContent = layout.JustifySpaceBetween

		children := make([]*layout.Node, 3)
		for i := range children {
			children[i] = newFlexChild(40, 40)
			root.AppendChild(children[i])
		}

		root.ReLayout(0, 0, 300, 200)

		expectedTop := []float32{0, 80, 160}
		for i, c := range children {
			require.Equalf(t, expectedTop[i], c.OffsetTop(), "child %d top", i)
		}
	})

	t.Run("S6_order_overrides_document_order", func(t *testing.T) {
		// order=2,1,3 on three identically-styled siblings lays out as
		// [1,2,3]; ties preserve document order.
		root := layout.NewNode()
		root.Style().Width, root.Style().Height = layout.Fixed(300), layout.Fixed(20)

		a, b, c := newFlexChild(100, 20), newFlexChild(100, 20), newFlexChild(100, 20)
		a.Style().Order, b.Style().Order, c.Style().Order = 2, 1, 3
		root.AppendChild(a)
		root.AppendChild(b)
		root.AppendChild(c)

		root.ReLayout(0, 0, 300, 20)

		require.Equal(t, float32(100), a.OffsetLeft())
		require.Equal(t, float32(0), b.OffsetLeft())
		require.Equal(t, float32(200), c.OffsetLeft())
	})
}

func TestFlexLayout_WrapReverseStacksLinesFromCrossEnd(t *testing.T) {
	root := layout.NewNode()
	root.Style().Width, root.Style().Height = layout.Fixed(300), layout.Fixed(100)
	root.Style().FlexWrap = layout.FlexWrapWrapReverse

	children := make([]*layout.Node, 4)
	for i := range children {
		children[i] = newFlexChild(100, 20)
		root.AppendChild(children[i])
	}

	root.ReLayout(0, 0, 300, 100)

	// line 1 (items 0-2) is the document-first line but wrap-reverse
	// stacks it at the cross-end, below line 2 (item 3).
	require.Greater(t, children[0].OffsetTop(), children[3].OffsetTop())
}

func TestFlexLayout_AutoMarginsAbsorbMainAxisFreeSpace(t *testing.T) {
	root := layout.NewNode()
	root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(40)

	a := newFlexChild(40, 20)
	a.Style().MarginLeft = layout.Auto()
	root.AppendChild(a)

	root.ReLayout(0, 0, 200, 40)

	// freeSpace 160 goes entirely to the single auto margin, pushing
	// the item flush against the main-end edge.
	require.Equal(t, float32(160), a.OffsetLeft())
}

func TestFlexLayout_DisplayNoneItemIsExcludedAndZeroed(t *testing.T) {
	root := layout.NewNode()
	root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(40)

	hidden := newFlexChild(50, 20)
	hidden.Style().Display = layout.DisplayNone
	visible := newFlexChild(50, 20)
	root.AppendChild(hidden)
	root.AppendChild(visible)

	root.ReLayout(0, 0, 200, 40)

	require.Equal(t, float32(0), hidden.OffsetWidth())
	require.Equal(t, float32(0), hidden.OffsetHeight())
	require.Equal(t, float32(0), visible.OffsetLeft())
}

func TestFlexLayout_PercentPaddingResolvesAgainstParentWidthOnAllSides(t *testing.T) {
	root := layout.NewNode()
	root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(100)
	root.Style().PaddingTop = layout.Percent(10)
	root.Style().PaddingLeft = layout.Percent(10)

	child := newFlexChild(50, 20)
	root.AppendChild(child)

	root.ReLayout(0, 0, 200, 100)

	// Both paddingTop and paddingLeft resolve against the parent's
	// width (200), so both come out to 20 even though top is a
	// vertical edge.
	require.Equal(t, float32(20), child.OffsetLeft())
	require.Equal(t, float32(20), child.OffsetTop())
}

func TestFlexLayout_AlignItemsCenterUnderWrapReverseStillCenters(t *testing.T) {
	root := layout.NewNode()
	root.Style().Width, root.Style().Height = layout.Fixed(200), layout.Fixed(100)
	root.Style().FlexWrap = layout.FlexWrapWrapReverse
	root.Style().AlignItems = layout.AlignItemsCenter

	child := newFlexChild(50, 20)
	root.AppendChild(child)

	root.ReLayout(0, 0, 200, 100)

	require.Equal(t, float32(40), child.OffsetTop())
}
