package layout

import "github.com/loomware/flexlayout/internal/core/geom"

func maxF32(a, b float32) float32 { return geom.MaxF32(a, b) }
func minF32(a, b float32) float32 { return geom.MinF32(a, b) }
