package layout

// maxLengthValue stands in for an unbounded max-width/max-height: the
// style value Auto resolves to this rather than true infinity, matching
// the reference implementation's clamp-friendly sentinel.
const maxLengthValue float32 = 1e7

// LayoutInfo holds the per-node values resolved from Style against a
// parent reference size: min/max bounds and the four padding/margin
// sides, indexed by Side (Top=0, Left=1, Bottom=2, Right=3).
type LayoutInfo struct {
	MinWidth, MinHeight float32
	MaxWidth, MaxHeight float32
	Padding             [4]float32
	Margin              [4]float32
}

// defaultLayoutInfo matches the reference's LayoutInfo zero value:
// zero min, a very large max, zero padding/margin.
func defaultLayoutInfo() LayoutInfo {
	return LayoutInfo{MaxWidth: maxLengthValue, MaxHeight: maxLengthValue}
}

// resolve fills li from style against a parent content box. All eight
// padding/margin values resolve against parentWidth, including the
// vertical sides — this matches CSS flexbox and is deliberate (see
// DESIGN.md, open question 5).
func (li *LayoutInfo) resolve(style *Style, parentWidth, parentHeight float32) {
	li.MinWidth = style.MinWidth.Resolve(parentWidth)
	li.MinHeight = style.MinHeight.Resolve(parentHeight)

	if style.MaxWidth.IsAuto() {
		li.MaxWidth = maxLengthValue
	} else {
		li.MaxWidth = style.MaxWidth.Resolve(parentWidth)
	}
	if style.MaxHeight.IsAuto() {
		li.MaxHeight = maxLengthValue
	} else {
		li.MaxHeight = style.MaxHeight.Resolve(parentHeight)
	}

	li.Padding[SideTop] = style.PaddingTop.Resolve(parentWidth)
	li.Padding[SideLeft] = style.PaddingLeft.Resolve(parentWidth)
	li.Padding[SideBottom] = style.PaddingBottom.Resolve(parentWidth)
	li.Padding[SideRight] = style.PaddingRight.Resolve(parentWidth)

	li.Margin[SideTop] = style.MarginTop.Resolve(parentWidth)
	li.Margin[SideLeft] = style.MarginLeft.Resolve(parentWidth)
	li.Margin[SideBottom] = style.MarginBottom.Resolve(parentWidth)
	li.Margin[SideRight] = style.MarginRight.Resolve(parentWidth)
}
