package layout

// distKind names the six ways CSS flexbox distributes free space
// among a run of boxes along an axis; justify-content and
// align-content both reduce to this shape, align-content's stretch
// mapping to start since its free space was already absorbed by
// expandFlexLineCrossSizeDueToAlignContentStretch.
type distKind int

const (
	distStart distKind = iota
	distEnd
	distCenter
	distBetween
	distAround
	distEvenly
)

// spaceDistribution returns the leading offset before the first of n
// boxes and the gap between each subsequent pair, given freeSpace left
// over after the boxes' own sizes.
func spaceDistribution(kind distKind, freeSpace float32, n int) (leading, between float32) {
	switch kind {
	case distEnd:
		return freeSpace, 0
	case distCenter:
		return freeSpace / 2, 0
	case distBetween:
		if n <= 1 {
			return 0, 0
		}
		return 0, freeSpace / float32(n-1)
	case distAround:
		b := freeSpace / float32(n)
		return b / 2, b
	case distEvenly:
		b := freeSpace / float32(n+1)
		return b, b
	default:
		return 0, 0
	}
}

// mirrorStartEnd swaps start and end, leaving every other kind
// unchanged. main-axis reverse directions and wrap-reverse both flip
// which physical edge "start" refers to without touching the
// symmetric distributions.
func mirrorStartEnd(k distKind, mirror bool) distKind {
	if !mirror {
		return k
	}
	switch k {
	case distStart:
		return distEnd
	case distEnd:
		return distStart
	default:
		return k
	}
}

func justifyDistKind(j JustifyContent) distKind {
	switch j {
	case JustifyFlexEnd:
		return distEnd
	case JustifyCenter:
		return distCenter
	case JustifySpaceBetween:
		return distBetween
	case JustifySpaceAround:
		return distAround
	case JustifySpaceEvenly:
		return distEvenly
	default:
		return distStart
	}
}

func alignContentDistKind(a AlignContent) distKind {
	switch a {
	case AlignContentFlexEnd:
		return distEnd
	case AlignContentCenter:
		return distCenter
	case AlignContentSpaceBetween:
		return distBetween
	case AlignContentSpaceAround:
		return distAround
	default:
		return distStart
	}
}

func alignItemsDistKind(a AlignItems) distKind {
	if a == AlignItemsFlexEnd {
		return distEnd
	}
	if a == AlignItemsCenter {
		return distCenter
	}
	return distStart
}

func (f *FlexLayoutAlgorithm) setMainOffset(node *Node, v float32) {
	if f.mainAxisHorizontal {
		node.setOffsetLeft(v)
	} else {
		node.setOffsetTop(v)
	}
}

func (f *FlexLayoutAlgorithm) setCrossOffset(node *Node, v float32) {
	if f.mainAxisHorizontal {
		node.setOffsetTop(v)
	} else {
		node.setOffsetLeft(v)
	}
}

// mainAxisAlignment positions every item's main-axis coordinate. Auto
// margins on the main axis absorb free space before justify-content
// gets a say, per CSS flexbox §8.1: the collected auto margins split
// the line's free space evenly, keyed on which physical side each
// margin actually sits on (the stored front/after side of the margin,
// not an unrelated item-index parity).
func (f *FlexLayoutAlgorithm) mainAxisAlignment() {
	pad := f.container.layoutInfo.Padding
	st := &f.container.style
	mainBorder := [4]float32{SideTop: st.BorderTop, SideLeft: st.BorderLeft, SideBottom: st.BorderBottom, SideRight: st.BorderRight}
	mainOrigin := pad[f.mainAxisFront] + mainBorder[f.mainAxisFront]
	reverse := st.isMainAxisReverse()

	for _, line := range f.lines {
		n := line.end - line.start
		if n == 0 {
			continue
		}

		var fixedSpace float32
		autoMarginCount := 0
		for i := line.start; i < line.end; i++ {
			it := f.items[i]
			li := &it.node.layoutInfo
			itSt := &it.node.style
			fixedSpace += it.usedMainSize
			if itSt.marginLength(f.mainAxisFront).IsAuto() {
				autoMarginCount++
			} else {
				fixedSpace += li.Margin[f.mainAxisFront]
			}
			if itSt.marginLength(f.mainAxisAfter).IsAuto() {
				autoMarginCount++
			} else {
				fixedSpace += li.Margin[f.mainAxisAfter]
			}
		}
		freeSpace := f.mainAvailableSize - fixedSpace

		var autoShare, leading, between float32
		if freeSpace > 0 && autoMarginCount > 0 {
			autoShare = freeSpace / float32(autoMarginCount)
		} else {
			kind := mirrorStartEnd(justifyDistKind(st.JustifyContent), reverse)
			leading, between = spaceDistribution(kind, freeSpace, n)
		}

		pos := mainOrigin + leading
		visit := func(idx int, last bool) {
			it := f.items[idx]
			li := &it.node.layoutInfo
			itSt := &it.node.style

			if itSt.marginLength(f.mainAxisFront).IsAuto() {
				pos += autoShare
			} else {
				pos += li.Margin[f.mainAxisFront]
			}

			f.setMainOffset(it.node, pos)
			pos += it.usedMainSize

			if itSt.marginLength(f.mainAxisAfter).IsAuto() {
				pos += autoShare
			} else {
				pos += li.Margin[f.mainAxisAfter]
			}
			if !last {
				pos += between
			}
		}

		if reverse {
			for i := line.end - 1; i >= line.start; i-- {
				visit(i, i == line.start)
			}
		} else {
			for i := line.start; i < line.end; i++ {
				visit(i, i == line.end-1)
			}
		}
	}
}

// crossAxisAlignment positions every line along the container's cross
// axis (per align-content) and every item within its line (per
// align-items/align-self), honoring wrap-reverse's flip of both the
// line stacking order and which edge of a line "start" refers to.
func (f *FlexLayoutAlgorithm) crossAxisAlignment() {
	pad := f.container.layoutInfo.Padding
	st := &f.container.style
	crossBorder := [4]float32{SideTop: st.BorderTop, SideLeft: st.BorderLeft, SideBottom: st.BorderBottom, SideRight: st.BorderRight}
	crossOrigin := pad[f.crossAxisFront] + crossBorder[f.crossAxisFront]
	wrapReverse := st.FlexWrap == FlexWrapWrapReverse

	var linesCross float32
	for _, line := range f.lines {
		linesCross += line.lineCrossSize
	}
	freeSpace := f.crossAvailableSize - linesCross
	kind := mirrorStartEnd(alignContentDistKind(st.AlignContent), wrapReverse)
	leading, between := spaceDistribution(kind, freeSpace, len(f.lines))

	placeLine := func(line *flexLine, base float32) {
		for i := line.start; i < line.end; i++ {
			it := f.items[i]
			li := &it.node.layoutInfo
			itSt := &it.node.style

			frontAuto := itSt.marginLength(f.crossAxisFront).IsAuto()
			afterAuto := itSt.marginLength(f.crossAxisAfter).IsAuto()
			itemFree := line.lineCrossSize - it.usedCrossSize - f.marginCrossSum(li)

			var offset float32
			switch {
			case frontAuto && afterAuto:
				offset = maxF32(itemFree, 0) / 2
			case frontAuto:
				offset = maxF32(itemFree, 0)
			case afterAuto:
				offset = 0
			default:
				align := itSt.AlignSelf.resolve(st.AlignItems)
				itemKind := mirrorStartEnd(alignItemsDistKind(align), wrapReverse)
				offset, _ = spaceDistribution(itemKind, itemFree, 1)
			}

			marginFront := li.Margin[f.crossAxisFront]
			if frontAuto {
				marginFront = offset
				offset = 0
			}
			f.setCrossOffset(it.node, base+marginFront+offset)
		}
	}

	pos := crossOrigin + leading
	if wrapReverse {
		for i := len(f.lines) - 1; i >= 0; i-- {
			line := f.lines[i]
			placeLine(line, pos)
			pos += line.lineCrossSize
			if i > 0 {
				pos += between
			}
		}
	} else {
		for i, line := range f.lines {
			placeLine(line, pos)
			pos += line.lineCrossSize
			if i < len(f.lines)-1 {
				pos += between
			}
		}
	}
}
