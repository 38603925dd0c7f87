package layout

import "sort"

// itemInfo is the transient per-child bookkeeping a FlexLayoutAlgorithm
// keeps for one measure pass.
type itemInfo struct {
	node                  *Node
	flexBaseSize          float32
	hypotheticalMainSize  float32
	usedMainSize          float32
	frozen                bool
	hypotheticalCrossSize float32
	usedCrossSize         float32
}

// flexLine is a contiguous run of items sharing one row or column
// under wrap, with the running totals needed to resolve flexible
// lengths and cross size for that line.
type flexLine struct {
	start, end int

	sumFlexBasisSize        float32
	totalFlexGrow           float32
	totalFlexShrink         float32
	totalWeightedFlexShrink float32
	sumHypotheticalMainSize float32
	remainingFreeSpace      float32
	initialFreeSpace        float32
	shouldApplyGrow         bool

	lineCrossSize float32
}

// FlexLayoutAlgorithm is the LayoutAlgorithm for display:flex
// containers: direction resolution, item classification, flex-basis,
// line collection, flexible-length resolution, cross sizing, and
// alignment.
type FlexLayoutAlgorithm struct {
	container *Node

	mainAvailableSize  float32
	crossAvailableSize float32
	mainAxisMode       LayoutMode
	crossAxisMode      LayoutMode

	mainAxisHorizontal bool
	mainAxisFront      Side
	mainAxisAfter      Side
	crossAxisFront     Side
	crossAxisAfter     Side

	items         []*itemInfo
	absoluteItems []*Node
	lines         []*flexLine
}

func newFlexLayoutAlgorithm(container *Node) *FlexLayoutAlgorithm {
	return &FlexLayoutAlgorithm{
		container:      container,
		mainAxisFront:  SideLeft,
		mainAxisAfter:  SideRight,
		crossAxisFront: SideTop,
		crossAxisAfter: SideBottom,
	}
}

func (f *FlexLayoutAlgorithm) solveDirection() {
	f.mainAxisHorizontal = f.container.style.isMainAxisHorizontal()
	if f.mainAxisHorizontal {
		f.mainAxisFront, f.mainAxisAfter = SideLeft, SideRight
		f.crossAxisFront, f.crossAxisAfter = SideTop, SideBottom
	} else {
		f.mainAxisFront, f.mainAxisAfter = SideTop, SideBottom
		f.crossAxisFront, f.crossAxisAfter = SideLeft, SideRight
	}
}

// mainSize returns the main-axis specified size (width for row/row-reverse,
// height for column/column-reverse).
func (f *FlexLayoutAlgorithm) mainSize(st *Style) Length {
	if f.mainAxisHorizontal {
		return st.Width
	}
	return st.Height
}

// crossSize is mainSize's counterpart on the cross axis.
func (f *FlexLayoutAlgorithm) crossSize(st *Style) Length {
	if f.mainAxisHorizontal {
		return st.Height
	}
	return st.Width
}

func (f *FlexLayoutAlgorithm) minMainSize(li *LayoutInfo) float32 {
	if f.mainAxisHorizontal {
		return li.MinWidth
	}
	return li.MinHeight
}

func (f *FlexLayoutAlgorithm) maxMainSize(li *LayoutInfo) float32 {
	if f.mainAxisHorizontal {
		return li.MaxWidth
	}
	return li.MaxHeight
}

func (f *FlexLayoutAlgorithm) minCrossSize(li *LayoutInfo) float32 {
	if f.mainAxisHorizontal {
		return li.MinHeight
	}
	return li.MinWidth
}

func (f *FlexLayoutAlgorithm) maxCrossSize(li *LayoutInfo) float32 {
	if f.mainAxisHorizontal {
		return li.MaxHeight
	}
	return li.MaxWidth
}

// marginMainStart/End and marginCrossStart/End read a node's resolved margin on the
// logical main/cross edges, accounting for axis orientation.
func (f *FlexLayoutAlgorithm) marginMainStart(li *LayoutInfo) float32 { return li.Margin[f.mainAxisFront] }
func (f *FlexLayoutAlgorithm) marginMainEnd(li *LayoutInfo) float32   { return li.Margin[f.mainAxisAfter] }
func (f *FlexLayoutAlgorithm) marginCrossStart(li *LayoutInfo) float32 {
	return li.Margin[f.crossAxisFront]
}
func (f *FlexLayoutAlgorithm) marginCrossEnd(li *LayoutInfo) float32 { return li.Margin[f.crossAxisAfter] }

func (f *FlexLayoutAlgorithm) marginMainSum(li *LayoutInfo) float32 {
	return f.marginMainStart(li) + f.marginMainEnd(li)
}
func (f *FlexLayoutAlgorithm) marginCrossSum(li *LayoutInfo) float32 {
	return f.marginCrossStart(li) + f.marginCrossEnd(li)
}

// mainCrossToWH returns (width, height) mapped from
// (main, cross) sizes according to the current axis.
func (f *FlexLayoutAlgorithm) mainCrossToWH(main, cross float32) (width, height float32) {
	if f.mainAxisHorizontal {
		return main, cross
	}
	return cross, main
}

// resolveSizeAndMode binds main/cross available size and mode from the
// outer box. The height branch is skipped only on AtMost while the
// width branch is skipped only on Undefined — this asymmetry is
// preserved verbatim from the reference behaviour (see DESIGN.md, open
// question 1).
func (f *FlexLayoutAlgorithm) resolveSizeAndMode(width, height float32, widthMode, heightMode LayoutMode) {
	pad := f.container.layoutInfo.Padding
	st := &f.container.style

	contentWidth, contentHeight := width, height
	if widthMode != Undefined {
		width = f.container.ApplyWidthConstraints(width)
		contentWidth = width - pad[SideLeft] - pad[SideRight] - st.BorderLeft - st.BorderRight
	}
	if heightMode != AtMost {
		height = f.container.ApplyHeightConstraints(height)
		contentHeight = height - pad[SideTop] - pad[SideBottom] - st.BorderTop - st.BorderBottom
	}

	if f.mainAxisHorizontal {
		f.mainAvailableSize, f.crossAvailableSize = contentWidth, contentHeight
		f.mainAxisMode, f.crossAxisMode = widthMode, heightMode
	} else {
		f.mainAvailableSize, f.crossAvailableSize = contentHeight, contentWidth
		f.mainAxisMode, f.crossAxisMode = heightMode, widthMode
	}

	for _, it := range f.items {
		it.node.UpdateLayoutInfo(contentWidth, contentHeight)
	}
}

// Initialize classifies the container's direct children once, sorts
// them by order if needed, and resolves the initial size and mode.
func (f *FlexLayoutAlgorithm) Initialize(width, height float32, widthMode, heightMode LayoutMode) {
	f.solveDirection()

	needOrder := false
	for c := f.container.firstChild; c != nil; c = c.next {
		switch c.style.Display {
		case DisplayNone:
			c.measureDisplayNone()
		default:
			if c.style.Position == PositionRelative {
				if c.style.Order != 0 {
					needOrder = true
				}
				f.items = append(f.items, &itemInfo{node: c})
			} else {
				f.absoluteItems = append(f.absoluteItems, c)
			}
		}
	}

	if needOrder {
		sort.SliceStable(f.items, func(i, j int) bool {
			return f.items[i].node.style.Order < f.items[j].node.style.Order
		})
	}

	f.resolveSizeAndMode(width, height, widthMode, heightMode)
}

// Update re-resolves size and mode for a container whose item list was
// already classified by Initialize.
func (f *FlexLayoutAlgorithm) Update(width, height float32, widthMode, heightMode LayoutMode) {
	f.resolveSizeAndMode(width, height, widthMode, heightMode)
}

// Measure runs the full flex measure pipeline and writes the
// container's border-box offset width/height.
func (f *FlexLayoutAlgorithm) Measure() {
	f.calculateFlexBasis()
	f.determineContainerMainSize()
	f.collectIntoFlexLines()
	f.resolveFlexLines()

	f.determineHypotheticalCrossSize()
	f.calculateFlexLineCrossSize()
	f.expandFlexLineCrossSizeDueToAlignContentStretch()
	f.determineFlexItemUsedCrossSize()
	f.determineContainerUsedCrossSize()

	pad := f.container.layoutInfo.Padding
	st := &f.container.style

	var mainForWidth, crossForHeight float32
	if f.mainAxisHorizontal {
		mainForWidth, crossForHeight = f.mainAvailableSize, f.crossAvailableSize
	} else {
		mainForWidth, crossForHeight = f.crossAvailableSize, f.mainAvailableSize
	}
	offsetWidth := mainForWidth + pad[SideLeft] + pad[SideRight] + st.BorderLeft + st.BorderRight
	offsetHeight := crossForHeight + pad[SideTop] + pad[SideBottom] + st.BorderTop + st.BorderBottom

	f.container.setOffsetWidth(offsetWidth)
	f.container.setOffsetHeight(offsetHeight)
}

// Alignment positions every item on the main axis, then on the cross
// axis.
func (f *FlexLayoutAlgorithm) Alignment() {
	f.mainAxisAlignment()
	f.crossAxisAlignment()
}
