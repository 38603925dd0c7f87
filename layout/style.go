package layout

import (
	"strconv"
	"strings"
)

// Style is the full set of layout-relevant properties for a node. It
// is pure data: no method on Style performs layout. The zero value is
// not a valid Style — use DefaultStyle.
type Style struct {
	Width, Height             Length
	MinWidth, MinHeight       Length
	MaxWidth, MaxHeight       Length
	PaddingTop, PaddingLeft   Length
	PaddingBottom, PaddingRight Length
	MarginTop, MarginLeft     Length
	MarginBottom, MarginRight Length
	BorderTop, BorderLeft     float32
	BorderBottom, BorderRight float32

	Display  Display
	Position PositionType

	FlexBasis     Length
	FlexGrow      float32
	FlexShrink    float32
	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent

	Order int
}

// DefaultStyle returns a Style with every property at its CSS-flexbox
// initial value (flex-shrink defaults to 0 here, not the real-CSS 1 —
// see spec.md §3).
func DefaultStyle() Style {
	return Style{
		Width: Auto(), Height: Auto(),
		MinWidth: Fixed(0), MinHeight: Fixed(0),
		MaxWidth: Auto(), MaxHeight: Auto(),
		PaddingTop: Fixed(0), PaddingLeft: Fixed(0), PaddingBottom: Fixed(0), PaddingRight: Fixed(0),
		MarginTop: Fixed(0), MarginLeft: Fixed(0), MarginBottom: Fixed(0), MarginRight: Fixed(0),

		Display:  DisplayFlex,
		Position: PositionRelative,

		FlexBasis:  Auto(),
		FlexGrow:   0,
		FlexShrink: 0,

		FlexDirection: FlexDirectionRow,
		FlexWrap:      FlexWrapNoWrap,

		JustifyContent: JustifyFlexStart,
		AlignItems:     AlignItemsStretch,
		AlignSelf:      AlignSelfAuto,
		AlignContent:   AlignContentFlexStart,
	}
}

// isMainAxisHorizontal reports whether this style's flex-direction
// runs along the horizontal axis.
func (s *Style) isMainAxisHorizontal() bool {
	return s.FlexDirection == FlexDirectionRow || s.FlexDirection == FlexDirectionRowReverse
}

// isMainAxisReverse reports whether this style's flex-direction flows
// from the end of the main axis toward its start.
func (s *Style) isMainAxisReverse() bool {
	return s.FlexDirection == FlexDirectionRowReverse || s.FlexDirection == FlexDirectionColumnReverse
}

// marginLength returns the style's margin Length on the given side,
// letting alignment code detect margin: auto without re-deriving it
// from the already-resolved (auto collapses to 0) LayoutInfo.
func (s *Style) marginLength(side Side) Length {
	switch side {
	case SideTop:
		return s.MarginTop
	case SideLeft:
		return s.MarginLeft
	case SideBottom:
		return s.MarginBottom
	default:
		return s.MarginRight
	}
}

func parseLength(value string) (Length, bool) {
	if value == "auto" {
		return Auto(), true
	}
	if value == "" {
		return Length{}, false
	}
	if strings.HasSuffix(value, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 32)
		if err != nil {
			return Length{}, false
		}
		return Percent(float32(f)), true
	}
	if strings.HasSuffix(value, "px") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 32)
		if err != nil {
			return Length{}, false
		}
		return Fixed(float32(f)), true
	}
	return Length{}, false
}

func parseBareFloat(value string) (float32, bool) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

func setLength(dst *Length, value string, reset bool, def Length) {
	if reset {
		*dst = def
	}
	if l, ok := parseLength(value); ok {
		*dst = l
	}
}

func setFloat(dst *float32, value string, reset bool, def float32) {
	if reset {
		*dst = def
	}
	if f, ok := parseBareFloat(value); ok {
		*dst = f
	}
}

// Set applies a single style property by name. name is matched
// case-sensitively against both the camelCase and kebab-case spelling
// of every recognised property (see the table built in styleSetters).
// Unknown names are a silent no-op; unparseable values leave the
// property at its previous value, or its default when reset is true.
func (s *Style) Set(name, value string, reset bool) {
	if setter, ok := styleSetters[name]; ok {
		setter(s, value, reset)
	}
}

func (s *Style) setWidth(v string, r bool)  { setLength(&s.Width, v, r, Auto()) }
func (s *Style) setHeight(v string, r bool) { setLength(&s.Height, v, r, Auto()) }
func (s *Style) setMinWidth(v string, r bool)  { setLength(&s.MinWidth, v, r, Fixed(0)) }
func (s *Style) setMinHeight(v string, r bool) { setLength(&s.MinHeight, v, r, Fixed(0)) }
func (s *Style) setMaxWidth(v string, r bool)  { setLength(&s.MaxWidth, v, r, Auto()) }
func (s *Style) setMaxHeight(v string, r bool) { setLength(&s.MaxHeight, v, r, Auto()) }

func (s *Style) setPaddingTop(v string, r bool)    { setLength(&s.PaddingTop, v, r, Fixed(0)) }
func (s *Style) setPaddingLeft(v string, r bool)   { setLength(&s.PaddingLeft, v, r, Fixed(0)) }
func (s *Style) setPaddingBottom(v string, r bool) { setLength(&s.PaddingBottom, v, r, Fixed(0)) }
func (s *Style) setPaddingRight(v string, r bool)  { setLength(&s.PaddingRight, v, r, Fixed(0)) }

func (s *Style) setMarginTop(v string, r bool)    { setLength(&s.MarginTop, v, r, Fixed(0)) }
func (s *Style) setMarginLeft(v string, r bool)   { setLength(&s.MarginLeft, v, r, Fixed(0)) }
func (s *Style) setMarginBottom(v string, r bool) { setLength(&s.MarginBottom, v, r, Fixed(0)) }
func (s *Style) setMarginRight(v string, r bool)  { setLength(&s.MarginRight, v, r, Fixed(0)) }

func (s *Style) setPosition(v string, r bool) {
	if r {
		s.Position = PositionRelative
	}
	switch v {
	case "relative":
		s.Position = PositionRelative
	case "absolute":
		s.Position = PositionAbsolute
	case "fixed":
		s.Position = PositionFixed
	}
}

func (s *Style) setDisplay(v string, r bool) {
	if r {
		s.Display = DisplayFlex
	}
	switch v {
	case "flex":
		s.Display = DisplayFlex
	case "grid":
		s.Display = DisplayGrid
	case "none":
		s.Display = DisplayNone
	}
}

func (s *Style) setFlexBasis(v string, r bool) { setLength(&s.FlexBasis, v, r, Auto()) }
func (s *Style) setFlexGrow(v string, r bool)  { setFloat(&s.FlexGrow, v, r, 0) }
func (s *Style) setFlexShrink(v string, r bool) { setFloat(&s.FlexShrink, v, r, 0) }

func (s *Style) setFlexDirection(v string, r bool) {
	if r {
		s.FlexDirection = FlexDirectionRow
	}
	switch v {
	case "row":
		s.FlexDirection = FlexDirectionRow
	case "row-reverse":
		s.FlexDirection = FlexDirectionRowReverse
	case "column":
		s.FlexDirection = FlexDirectionColumn
	case "column-reverse":
		s.FlexDirection = FlexDirectionColumnReverse
	}
}

func (s *Style) setFlexWrap(v string, r bool) {
	if r {
		s.FlexWrap = FlexWrapNoWrap
	}
	switch v {
	case "nowrap":
		s.FlexWrap = FlexWrapNoWrap
	case "wrap":
		s.FlexWrap = FlexWrapWrap
	case "wrap-reverse":
		s.FlexWrap = FlexWrapWrapReverse
	}
}

// setFlex implements the `flex` shorthand exactly as spec.md §4.2
// describes it.
func (s *Style) setFlex(v string, r bool) {
	if r {
		s.FlexBasis = Auto()
		s.FlexGrow = 0
		s.FlexShrink = 1
	}
	switch v {
	case "auto":
		s.FlexBasis, s.FlexGrow, s.FlexShrink = Auto(), 1, 1
	case "none":
		s.FlexBasis, s.FlexGrow, s.FlexShrink = Auto(), 0, 0
	case "initial":
		s.FlexBasis, s.FlexGrow, s.FlexShrink = Auto(), 0, 1
	default:
		if n, ok := parseBareFloat(v); ok {
			s.FlexBasis, s.FlexGrow, s.FlexShrink = Fixed(0), n, 1
		}
	}
}

// setFlexFlow implements the `flex-flow` shorthand: `<direction>
// <wrap>`, splitting on whitespace.
func (s *Style) setFlexFlow(v string, r bool) {
	if r {
		s.setFlexDirection("", true)
		s.setFlexWrap("", true)
	}
	parts := strings.Fields(v)
	if len(parts) > 0 {
		s.setFlexDirection(parts[0], false)
	}
	if len(parts) > 1 {
		s.setFlexWrap(parts[1], false)
	}
}

func (s *Style) setJustifyContent(v string, r bool) {
	if r {
		s.JustifyContent = JustifyFlexStart
	}
	switch v {
	case "flex-start":
		s.JustifyContent = JustifyFlexStart
	case "flex-end":
		s.JustifyContent = JustifyFlexEnd
	case "center":
		s.JustifyContent = JustifyCenter
	case "space-between":
		s.JustifyContent = JustifySpaceBetween
	case "space-around":
		s.JustifyContent = JustifySpaceAround
	case "space-evenly":
		s.JustifyContent = JustifySpaceEvenly
	}
}

func (s *Style) setAlignItems(v string, r bool) {
	if r {
		s.AlignItems = AlignItemsStretch
	}
	switch v {
	case "flex-start":
		s.AlignItems = AlignItemsFlexStart
	case "center":
		s.AlignItems = AlignItemsCenter
	case "flex-end":
		s.AlignItems = AlignItemsFlexEnd
	case "stretch":
		s.AlignItems = AlignItemsStretch
	}
}

func (s *Style) setAlignSelf(v string, r bool) {
	if r {
		s.AlignSelf = AlignSelfAuto
	}
	switch v {
	case "auto":
		s.AlignSelf = AlignSelfAuto
	case "flex-start":
		s.AlignSelf = AlignSelfFlexStart
	case "center":
		s.AlignSelf = AlignSelfCenter
	case "flex-end":
		s.AlignSelf = AlignSelfFlexEnd
	case "stretch":
		s.AlignSelf = AlignSelfStretch
	}
}

// setAlignContent implements align-content parsing. The original
// reference nests this whole dispatch inside the reset branch, making
// non-reset assignments a no-op; here the dispatch always runs (see
// DESIGN.md, open question 2).
func (s *Style) setAlignContent(v string, r bool) {
	if r {
		s.AlignContent = AlignContentFlexStart
	}
	switch v {
	case "flex-start":
		s.AlignContent = AlignContentFlexStart
	case "flex-end":
		s.AlignContent = AlignContentFlexEnd
	case "center":
		s.AlignContent = AlignContentCenter
	case "space-between":
		s.AlignContent = AlignContentSpaceBetween
	case "space-around":
		s.AlignContent = AlignContentSpaceAround
	case "stretch":
		s.AlignContent = AlignContentStretch
	}
}

func (s *Style) setOrder(v string, r bool) {
	if r {
		s.Order = 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		s.Order = n
	}
}

// setBoxShorthand implements the 1/2/3/4-token box shorthand shared by
// `padding`, `margin` and `border-width`:
// top, top/right, top/right/bottom, top/right/bottom/left, with
// standard CSS mirroring.
func setBoxShorthand(v string, r bool, top, left, bottom, right *Length, def Length) {
	if r {
		*top, *left, *bottom, *right = def, def, def, def
	}
	tokens := strings.Fields(v)
	var values [4]Length
	ok := true
	for i, t := range tokens {
		if i >= 4 {
			break
		}
		l, good := parseLength(t)
		if !good {
			ok = false
			break
		}
		values[i] = l
	}
	if !ok || len(tokens) == 0 {
		return
	}
	switch len(tokens) {
	case 1:
		*top, *right, *bottom, *left = values[0], values[0], values[0], values[0]
	case 2:
		*top, *bottom = values[0], values[0]
		*right, *left = values[1], values[1]
	case 3:
		*top, *right, *left = values[0], values[1], values[1]
		*bottom = values[2]
	default:
		*top, *right, *bottom, *left = values[0], values[1], values[2], values[3]
	}
}

func (s *Style) setPaddingShorthand(v string, r bool) {
	setBoxShorthand(v, r, &s.PaddingTop, &s.PaddingLeft, &s.PaddingBottom, &s.PaddingRight, Fixed(0))
}

func (s *Style) setMarginShorthand(v string, r bool) {
	setBoxShorthand(v, r, &s.MarginTop, &s.MarginLeft, &s.MarginBottom, &s.MarginRight, Fixed(0))
}

func (s *Style) setBorderWidthShorthand(v string, r bool) {
	var top, left, bottom, right Length
	if !r {
		top, left, bottom, right = Fixed(s.BorderTop), Fixed(s.BorderLeft), Fixed(s.BorderBottom), Fixed(s.BorderRight)
	}
	setBoxShorthand(v, r, &top, &left, &bottom, &right, Fixed(0))
	s.BorderTop, s.BorderLeft, s.BorderBottom, s.BorderRight = top.Value, left.Value, bottom.Value, right.Value
}

type styleSetterFunc func(*Style, string, bool)

// styleSetters maps every recognised property name, in both its
// camelCase and kebab-case spelling, to the method that applies it.
// Mirrors the teacher's style_setters_ map shape (name -> setter),
// built once and shared by every Style.
var styleSetters = map[string]styleSetterFunc{
	"width":  (*Style).setWidth,
	"height": (*Style).setHeight,

	"min-width":  (*Style).setMinWidth,
	"minWidth":   (*Style).setMinWidth,
	"min-height": (*Style).setMinHeight,
	"minHeight":  (*Style).setMinHeight,
	"max-width":  (*Style).setMaxWidth,
	"maxWidth":   (*Style).setMaxWidth,
	"max-height": (*Style).setMaxHeight,
	"maxHeight":  (*Style).setMaxHeight,

	"padding": (*Style).setPaddingShorthand,
	"padding-top":    (*Style).setPaddingTop,
	"paddingTop":     (*Style).setPaddingTop,
	"padding-left":   (*Style).setPaddingLeft,
	"paddingLeft":    (*Style).setPaddingLeft,
	"padding-bottom": (*Style).setPaddingBottom,
	"paddingBottom":  (*Style).setPaddingBottom,
	"padding-right":  (*Style).setPaddingRight,
	"paddingRight":   (*Style).setPaddingRight,

	"margin": (*Style).setMarginShorthand,
	"margin-top":    (*Style).setMarginTop,
	"marginTop":     (*Style).setMarginTop,
	"margin-left":   (*Style).setMarginLeft,
	"marginLeft":    (*Style).setMarginLeft,
	"margin-bottom": (*Style).setMarginBottom,
	"marginBottom":  (*Style).setMarginBottom,
	"margin-right":  (*Style).setMarginRight,
	"marginRight":   (*Style).setMarginRight,

	"border-width": (*Style).setBorderWidthShorthand,
	"borderWidth":  (*Style).setBorderWidthShorthand,
	"border-top-width":    borderWidthMethod(0),
	"borderTopWidth":      borderWidthMethod(0),
	"border-left-width":   borderWidthMethod(1),
	"borderLeftWidth":     borderWidthMethod(1),
	"border-bottom-width": borderWidthMethod(2),
	"borderBottomWidth":   borderWidthMethod(2),
	"border-right-width":  borderWidthMethod(3),
	"borderRightWidth":    borderWidthMethod(3),

	"position": (*Style).setPosition,
	"display":  (*Style).setDisplay,

	"flex":        (*Style).setFlex,
	"flex-basis":  (*Style).setFlexBasis,
	"flexBasis":   (*Style).setFlexBasis,
	"flex-grow":   (*Style).setFlexGrow,
	"flexGrow":    (*Style).setFlexGrow,
	"flex-shrink": (*Style).setFlexShrink,
	"flexShrink":  (*Style).setFlexShrink,
	"flex-direction": (*Style).setFlexDirection,
	"flexDirection":  (*Style).setFlexDirection,
	"flex-wrap":      (*Style).setFlexWrap,
	"flexWrap":       (*Style).setFlexWrap,
	"flex-flow":      (*Style).setFlexFlow,
	"flexFlow":       (*Style).setFlexFlow,

	"justify-content": (*Style).setJustifyContent,
	"justifyContent":  (*Style).setJustifyContent,
	"align-items":     (*Style).setAlignItems,
	"alignItems":      (*Style).setAlignItems,
	"align-self":      (*Style).setAlignSelf,
	"alignSelf":       (*Style).setAlignSelf,
	"align-content":   (*Style).setAlignContent,
	"alignContent":    (*Style).setAlignContent,

	"order": (*Style).setOrder,
}

// borderWidthMethod returns a setter for one individual border side,
// keyed by Side ordinal (Top=0, Left=1, Bottom=2, Right=3).
func borderWidthMethod(side int) styleSetterFunc {
	return func(s *Style, v string, r bool) {
		var dst *float32
		switch Side(side) {
		case SideTop:
			dst = &s.BorderTop
		case SideLeft:
			dst = &s.BorderLeft
		case SideBottom:
			dst = &s.BorderBottom
		default:
			dst = &s.BorderRight
		}
		if r {
			*dst = 0
		}
		if l, ok := parseLength(v); ok && !l.IsAuto() {
			*dst = l.Value
		}
	}
}
