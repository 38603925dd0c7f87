package layout_test

import (
	"testing"

	"github.com/loomware/flexlayout/layout"
	"github.com/stretchr/testify/require"
)

func TestStyle_FlexShorthand(t *testing.T) {
	cases := []struct {
		name              string
		value             string
		grow, shrink      float32
		basisFixed        bool
		basisFixedValue   float32
		basisAuto         bool
	}{
		{name: "auto", value: "auto", grow: 1, shrink: 1, basisAuto: true},
		{name: "none", value: "none", grow: 0, shrink: 0, basisAuto: true},
		{name: "initial", value: "initial", grow: 0, shrink: 1, basisAuto: true},
		{name: "bare_number", value: "2", grow: 2, shrink: 1, basisFixed: true, basisFixedValue: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := layout.DefaultStyle()
			st.Set("flex", tc.value, false)
			require.Equal(t, tc.grow, st.FlexGrow)
			require.Equal(t, tc.shrink, st.FlexShrink)
			if tc.basisAuto {
				require.True(t, st.FlexBasis.IsAuto())
			} else {
				require.True(t, st.FlexBasis.IsFixed())
				require.Equal(t, tc.basisFixedValue, st.FlexBasis.Value)
			}
		})
	}
}

func TestStyle_PaddingShorthandExpansion(t *testing.T) {
	cases := []struct {
		name                               string
		value                              string
		top, right, bottom, left           float32
	}{
		{name: "one_token", value: "10px", top: 10, right: 10, bottom: 10, left: 10},
		{name: "two_tokens", value: "10px 5px", top: 10, bottom: 10, right: 5, left: 5},
		{name: "three_tokens", value: "10px 5px 2px", top: 10, right: 5, left: 5, bottom: 2},
		{name: "four_tokens", value: "1px 2px 3px 4px", top: 1, right: 2, bottom: 3, left: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := layout.DefaultStyle()
			st.Set("padding", tc.value, false)
			require.Equal(t, tc.top, st.PaddingTop.Value)
			require.Equal(t, tc.right, st.PaddingRight.Value)
			require.Equal(t, tc.bottom, st.PaddingBottom.Value)
			require.Equal(t, tc.left, st.PaddingLeft.Value)
		})
	}
}

func TestStyle_BorderWidthAcceptsPxSuffix(t *testing.T) {
	st := layout.DefaultStyle()
	st.Set("border-top-width", "3px", false)
	require.Equal(t, float32(3), st.BorderTop)
}

// TestStyle_AlignContentAppliesOutsideReset verifies the dispatch
// applies a non-reset value even though the original it's grounded on
// only ran this switch inside its reset branch (see DESIGN.md).
func TestStyle_AlignContentAppliesOutsideReset(t *testing.T) {
	st := layout.DefaultStyle()
	st.Set("align-content", "center", false)
	require.Equal(t, layout.AlignContentCenter, st.AlignContent)
}

func TestStyle_SetIgnoresUnknownProperty(t *testing.T) {
	st := layout.DefaultStyle()
	before := st
	st.Set("not-a-real-property", "123", false)
	require.Equal(t, before, st)
}

func TestStyle_JustifyContentSpaceEvenly(t *testing.T) {
	st := layout.DefaultStyle()
	st.Set("justify-content", "space-evenly", false)
	require.Equal(t, layout.JustifySpaceEvenly, st.JustifyContent)
}
