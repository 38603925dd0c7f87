package flexlayout

import "github.com/loomware/flexlayout/layout"

// Type aliases for public API.
//
// These re-export the layout package's types under the module's root
// namespace so callers only need one import.
type (
	Node   = layout.Node
	Style  = layout.Style
	Length = layout.Length

	LayoutMode   = layout.LayoutMode
	Side         = layout.Side
	Display      = layout.Display
	PositionType = layout.PositionType

	FlexDirection  = layout.FlexDirection
	FlexWrap       = layout.FlexWrap
	JustifyContent = layout.JustifyContent
	AlignItems     = layout.AlignItems
	AlignSelf      = layout.AlignSelf
	AlignContent   = layout.AlignContent
)

// Layout mode constants.
const (
	Exact     = layout.Exact
	Undefined = layout.Undefined
	AtMost    = layout.AtMost
)

// Box side constants.
const (
	SideTop    = layout.SideTop
	SideLeft   = layout.SideLeft
	SideBottom = layout.SideBottom
	SideRight  = layout.SideRight
)

// Display constants.
const (
	DisplayFlex = layout.DisplayFlex
	DisplayGrid = layout.DisplayGrid
	DisplayNone = layout.DisplayNone
)

// Position constants.
const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
	PositionFixed    = layout.PositionFixed
)

// Flex-direction constants.
const (
	FlexDirectionRow        = layout.FlexDirectionRow
	FlexDirectionRowReverse = layout.FlexDirectionRowReverse
	FlexDirectionColumn     = layout.FlexDirectionColumn
	FlexDirectionColumnReverse = layout.FlexDirectionColumnReverse
)

// Flex-wrap constants.
const (
	FlexWrapNoWrap      = layout.FlexWrapNoWrap
	FlexWrapWrap        = layout.FlexWrapWrap
	FlexWrapWrapReverse = layout.FlexWrapWrapReverse
)

// Justify-content constants.
const (
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align-items / align-self constants.
const (
	AlignItemsFlexStart = layout.AlignItemsFlexStart
	AlignItemsCenter    = layout.AlignItemsCenter
	AlignItemsFlexEnd   = layout.AlignItemsFlexEnd
	AlignItemsStretch   = layout.AlignItemsStretch

	AlignSelfAuto     = layout.AlignSelfAuto
	AlignSelfFlexStart = layout.AlignSelfFlexStart
	AlignSelfCenter   = layout.AlignSelfCenter
	AlignSelfFlexEnd  = layout.AlignSelfFlexEnd
	AlignSelfStretch  = layout.AlignSelfStretch
)

// Align-content constants.
const (
	AlignContentFlexStart    = layout.AlignContentFlexStart
	AlignContentFlexEnd      = layout.AlignContentFlexEnd
	AlignContentCenter       = layout.AlignContentCenter
	AlignContentSpaceBetween = layout.AlignContentSpaceBetween
	AlignContentSpaceAround  = layout.AlignContentSpaceAround
	AlignContentStretch      = layout.AlignContentStretch
)

// Length constructors.
var (
	Fixed   = layout.Fixed
	Percent = layout.Percent
	Auto    = layout.Auto
)

// NewNode returns a Node with default style and zeroed layout outputs.
var NewNode = layout.NewNode

// DefaultStyle returns a Style with every property at its CSS-flexbox
// initial value.
var DefaultStyle = layout.DefaultStyle
