package layout

// collectIntoFlexLines partitions items into one or more flexLines.
// nowrap always produces exactly one line holding every item; wrap
// and wrap-reverse pack items greedily, breaking before the first item
// that would overflow the container's main size (each line always gets
// at least one item, however large).
func (f *FlexLayoutAlgorithm) collectIntoFlexLines() {
	f.lines = nil
	if len(f.items) == 0 {
		f.lines = append(f.lines, &flexLine{})
		return
	}
	if f.container.style.FlexWrap == FlexWrapNoWrap {
		f.collectAllIntoSingleLine()
		return
	}
	for next := 0; next < len(f.items); {
		f.collectIntoSingleFlexLine(&next)
	}
}

// collectAllIntoSingleLine builds the single line used in nowrap mode:
// every item belongs to it regardless of overflow.
func (f *FlexLayoutAlgorithm) collectAllIntoSingleLine() {
	line := &flexLine{start: 0, end: len(f.items)}
	for i := range f.items {
		f.accumulateIntoLine(line, i)
	}
	f.lines = append(f.lines, line)
}

// collectIntoSingleFlexLine packs one wrapped line starting at
// *nextIndex, advancing it past the items it consumed.
func (f *FlexLayoutAlgorithm) collectIntoSingleFlexLine(nextIndex *int) {
	start := *nextIndex
	line := &flexLine{start: start}
	var used float32
	i := start
	for i < len(f.items) {
		it := f.items[i]
		outer := it.hypotheticalMainSize + f.marginMainSum(&it.node.layoutInfo)
		if i > start && f.mainAxisMode != Undefined && used+outer > f.mainAvailableSize {
			break
		}
		used += outer
		f.accumulateIntoLine(line, i)
		i++
	}
	line.end = i
	f.lines = append(f.lines, line)
	*nextIndex = i
}

func (f *FlexLayoutAlgorithm) accumulateIntoLine(line *flexLine, i int) {
	it := f.items[i]
	margin := f.marginMainSum(&it.node.layoutInfo)
	line.sumFlexBasisSize += it.flexBaseSize + margin
	line.sumHypotheticalMainSize += it.hypotheticalMainSize + margin
	line.totalFlexGrow += it.node.style.FlexGrow
	line.totalFlexShrink += it.node.style.FlexShrink
	line.totalWeightedFlexShrink += it.node.style.FlexShrink * it.flexBaseSize
}

// resolveFlexLines runs the flexible-length resolution algorithm (CSS
// flexbox §9.7) independently on each line.
func (f *FlexLayoutAlgorithm) resolveFlexLines() {
	for _, line := range f.lines {
		f.resolveSingleFlexLine(line)
	}
}

func (f *FlexLayoutAlgorithm) resolveSingleFlexLine(line *flexLine) {
	line.initialFreeSpace = f.mainAvailableSize - line.sumFlexBasisSize
	line.remainingFreeSpace = line.initialFreeSpace
	line.shouldApplyGrow = line.initialFreeSpace > 0

	f.freezeInflexibleItems(line)
	for f.freezeViolations(line) {
	}
}

// freezeInflexibleItems freezes, before any round of distribution,
// every item with a zero relevant flex factor and every item whose
// flex base size already lies on the side of its hypothetical size
// that the resolution direction would never move it from.
func (f *FlexLayoutAlgorithm) freezeInflexibleItems(line *flexLine) {
	for i := line.start; i < line.end; i++ {
		it := f.items[i]
		factor := it.node.style.FlexGrow
		if !line.shouldApplyGrow {
			factor = it.node.style.FlexShrink
		}
		violatesBase := (line.shouldApplyGrow && it.flexBaseSize > it.hypotheticalMainSize) ||
			(!line.shouldApplyGrow && it.flexBaseSize < it.hypotheticalMainSize)
		if factor == 0 || violatesBase {
			it.usedMainSize = it.hypotheticalMainSize
			it.frozen = true
			line.remainingFreeSpace -= it.usedMainSize - it.flexBaseSize
		}
	}
}

// freezeViolations runs one round of the iterative distribute-clamp-
// freeze loop and reports whether the round found any unfrozen item to
// work on; it returns false only once every item was already frozen.
func (f *FlexLayoutAlgorithm) freezeViolations(line *flexLine) bool {
	var factorSum float32
	anyUnfrozen := false
	for i := line.start; i < line.end; i++ {
		it := f.items[i]
		if it.frozen {
			continue
		}
		anyUnfrozen = true
		if line.shouldApplyGrow {
			factorSum += it.node.style.FlexGrow
		} else {
			factorSum += it.node.style.FlexShrink * it.flexBaseSize
		}
	}
	if !anyUnfrozen {
		return false
	}

	remaining := line.remainingFreeSpace
	if line.shouldApplyGrow && factorSum < 1 {
		if scaled := line.initialFreeSpace * factorSum; scaled < remaining {
			remaining = scaled
		}
	}

	type round struct {
		it      *itemInfo
		target  float32
		clamped float32
	}
	var rounds []round
	var totalViolation float32

	for i := line.start; i < line.end; i++ {
		it := f.items[i]
		if it.frozen {
			continue
		}
		var distributed float32
		if factorSum > 0 {
			if line.shouldApplyGrow {
				distributed = remaining * (it.node.style.FlexGrow / factorSum)
			} else {
				weight := it.node.style.FlexShrink * it.flexBaseSize
				distributed = remaining * (weight / factorSum)
			}
		}
		target := it.flexBaseSize + distributed
		li := &it.node.layoutInfo
		clamped := maxF32(f.minMainSize(li), minF32(target, f.maxMainSize(li)))
		totalViolation += clamped - target
		rounds = append(rounds, round{it, target, clamped})
	}

	for _, r := range rounds {
		switch {
		case totalViolation == 0:
			r.it.usedMainSize = r.clamped
		case totalViolation > 0:
			if r.clamped <= r.target {
				continue
			}
			r.it.usedMainSize = r.clamped
		default:
			if r.clamped >= r.target {
				continue
			}
			r.it.usedMainSize = r.clamped
		}
		r.it.frozen = true
		line.remainingFreeSpace -= r.it.usedMainSize - r.it.flexBaseSize
	}

	return true
}
