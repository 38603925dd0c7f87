package layout

// determineHypotheticalCrossSize measures each item's cross size at
// its resolved main size, the way CSS flexbox §9.4 describes: items
// whose cross size is auto are measured against their used main size
// to find the size they'd take if nothing stretched them.
func (f *FlexLayoutAlgorithm) determineHypotheticalCrossSize() {
	for _, it := range f.items {
		node := it.node
		st := &node.style
		li := &node.layoutInfo

		crossLen := f.crossSize(st)

		var width, height float32
		var widthMode, heightMode LayoutMode
		if crossLen.IsAuto() {
			width, height = f.mainCrossToWH(it.usedMainSize, 0)
			if f.mainAxisHorizontal {
				widthMode, heightMode = Exact, Undefined
			} else {
				widthMode, heightMode = Undefined, Exact
			}
		} else {
			resolved := crossLen.Resolve(f.crossAvailableSize)
			width, height = f.mainCrossToWH(it.usedMainSize, resolved)
			widthMode, heightMode = Exact, Exact
		}

		w, h := node.Measure(width, height, widthMode, heightMode)
		var cross float32
		if f.mainAxisHorizontal {
			cross = h
		} else {
			cross = w
		}
		it.hypotheticalCrossSize = maxF32(f.minCrossSize(li), minF32(cross, f.maxCrossSize(li)))
	}
}

// calculateFlexLineCrossSize sets each line's cross size to the
// largest hypothetical cross size (plus margins) among its items. A
// single-line, definite-cross-size container instead takes the
// container's own cross size.
func (f *FlexLayoutAlgorithm) calculateFlexLineCrossSize() {
	if len(f.lines) == 1 && f.crossAxisMode == Exact {
		f.lines[0].lineCrossSize = f.crossAvailableSize
		return
	}
	for _, line := range f.lines {
		var maxCross float32
		for i := line.start; i < line.end; i++ {
			it := f.items[i]
			outer := it.hypotheticalCrossSize + f.marginCrossSum(&it.node.layoutInfo)
			maxCross = maxF32(maxCross, outer)
		}
		line.lineCrossSize = maxCross
	}
}

// expandFlexLineCrossSizeDueToAlignContentStretch adds an equal share
// of the leftover space to every line's cross size so the lines exactly fill the container's
// cross size, when align-content: stretch applies and the container's
// cross axis isn't Undefined. Under Exact this applies unconditionally,
// even when it shrinks lines that overflow; under AtMost it's skipped
// once the lines already fill or exceed the available size.
func (f *FlexLayoutAlgorithm) expandFlexLineCrossSizeDueToAlignContentStretch() {
	if f.container.style.AlignContent != AlignContentStretch || f.crossAxisMode == Undefined || len(f.lines) == 0 {
		return
	}
	var total float32
	for _, line := range f.lines {
		total += line.lineCrossSize
	}
	extra := f.crossAvailableSize - total
	if f.crossAxisMode == AtMost && extra < 0 {
		return
	}
	share := extra / float32(len(f.lines))
	for _, line := range f.lines {
		line.lineCrossSize += share
	}
}

// determineFlexItemUsedCrossSize fixes each item's final cross size:
// stretched to its line's cross size when align-self resolves to
// stretch and the item's own cross size is auto, otherwise its
// hypothetical cross size.
func (f *FlexLayoutAlgorithm) determineFlexItemUsedCrossSize() {
	for _, line := range f.lines {
		for i := line.start; i < line.end; i++ {
			it := f.items[i]
			node := it.node
			st := &node.style
			li := &node.layoutInfo

			align := st.AlignSelf.resolve(f.container.style.AlignItems)
			if align == AlignItemsStretch && f.crossSize(st).IsAuto() {
				stretched := line.lineCrossSize - f.marginCrossSum(li)
				it.usedCrossSize = maxF32(f.minCrossSize(li), minF32(stretched, f.maxCrossSize(li)))
			} else {
				it.usedCrossSize = it.hypotheticalCrossSize
			}

			width, height := f.mainCrossToWH(it.usedMainSize, it.usedCrossSize)
			node.Measure(width, height, Exact, Exact)
		}
	}
}

// determineContainerUsedCrossSize fixes the container's own cross
// available size when it was not given a definite one: the sum of the
// lines' cross sizes, clamped to the container's min/max cross size.
func (f *FlexLayoutAlgorithm) determineContainerUsedCrossSize() {
	if f.crossAxisMode == Exact {
		return
	}
	var sum float32
	for _, line := range f.lines {
		sum += line.lineCrossSize
	}
	li := &f.container.layoutInfo
	sum = maxF32(f.minCrossSize(li), minF32(sum, f.maxCrossSize(li)))
	if f.crossAxisMode == AtMost {
		sum = minF32(sum, f.crossAvailableSize)
	}
	f.crossAvailableSize = sum
}
