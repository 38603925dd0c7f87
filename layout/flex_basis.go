package layout

// calculateFlexBasis resolves each item's flex base size (CSS flexbox
// §9.2.3) and clamps it into a hypothetical main size against the
// item's own min/max main size.
func (f *FlexLayoutAlgorithm) calculateFlexBasis() {
	for _, it := range f.items {
		node := it.node
		st := &node.style
		li := &node.layoutInfo

		basis := st.FlexBasis
		switch {
		case !basis.IsAuto():
			it.flexBaseSize = basis.Resolve(f.mainAvailableSize)
		case !f.mainSize(st).IsAuto():
			it.flexBaseSize = f.mainSize(st).Resolve(f.mainAvailableSize)
		default:
			it.flexBaseSize = f.measureContentMainSize(node)
		}

		minMain := f.minMainSize(li)
		maxMain := f.maxMainSize(li)
		it.hypotheticalMainSize = maxF32(minMain, minF32(it.flexBaseSize, maxMain))
	}
}

// measureContentMainSize measures a content-sized item (flex-basis:
// auto and its own main size: auto) by laying it out with an
// unconstrained main axis. The cross axis only gets the container's
// available cross size, as an Exact constraint, when the item's
// effective align is Stretch; otherwise it is measured with an
// Undefined cross of 0, matching CalculateFlexBasis's kLengthAuto case.
func (f *FlexLayoutAlgorithm) measureContentMainSize(node *Node) float32 {
	st := &node.style
	li := &node.layoutInfo

	align := st.AlignSelf.resolve(f.container.style.AlignItems)

	var crossAvail float32
	crossMode := Undefined
	if align == AlignItemsStretch {
		crossAvail = maxF32(f.crossAvailableSize-f.marginCrossSum(li), 0)
		crossMode = Exact
	}

	width, height := f.mainCrossToWH(0, crossAvail)
	var widthMode, heightMode LayoutMode
	if f.mainAxisHorizontal {
		widthMode, heightMode = Undefined, crossMode
	} else {
		widthMode, heightMode = crossMode, Undefined
	}

	w, h := node.Measure(width, height, widthMode, heightMode)
	if f.mainAxisHorizontal {
		return w
	}
	return h
}

// determineContainerMainSize fixes the container's own main available
// size when it was not given a definite one: the content-based size is
// the sum of every item's hypothetical main size and its margins,
// clamped to the container's min/max main size and, when the mode is
// AtMost, to the available size itself.
func (f *FlexLayoutAlgorithm) determineContainerMainSize() {
	if f.mainAxisMode == Exact {
		return
	}

	var sum float32
	for _, it := range f.items {
		sum += it.hypotheticalMainSize + f.marginMainSum(&it.node.layoutInfo)
	}

	li := &f.container.layoutInfo
	minMain := f.minMainSize(li)
	maxMain := f.maxMainSize(li)
	sum = maxF32(minMain, minF32(sum, maxMain))

	if f.mainAxisMode == AtMost {
		sum = minF32(sum, f.mainAvailableSize)
	}
	f.mainAvailableSize = sum
}
