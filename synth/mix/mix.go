// Package mix combines per-partial curves into one aggregate curve.
package mix

import (
	"fmt"

	"github.com/cwbudde/algo-additive/synth/core"
	"github.com/cwbudde/algo-vecmath"
)

// Combine returns the pointwise sum of all curves scaled by gain.
//
// Every curve must share one length; that length becomes the output length.
// The sum is intentionally not normalized by curve count, so the result can
// exceed [-1, 1] when several loud curves overlap.
// An empty curve set yields an empty slice.
func Combine(curves [][]float64, gain float64) ([]float64, error) {
	if len(curves) == 0 {
		return []float64{}, nil
	}
	out := make([]float64, len(curves[0]))
	if err := CombineInto(out, curves, gain); err != nil {
		return nil, err
	}
	return out, nil
}

// CombineInto sums all curves scaled by gain into dst.
//
// This is the allocation-free path for callers that reuse an output buffer.
// dst and every curve must share one length.
func CombineInto(dst []float64, curves [][]float64, gain float64) error {
	for i, c := range curves {
		if len(c) != len(dst) {
			return fmt.Errorf("combine curve %d length mismatch: %d != %d", i, len(c), len(dst))
		}
	}

	core.Zero(dst)
	for _, c := range curves {
		vecmath.AddBlockInPlace(dst, c)
	}
	vecmath.ScaleBlockInPlace(dst, gain)
	return nil
}

// Peak returns the maximum absolute sample value of curve, 0 for empty input.
func Peak(curve []float64) float64 {
	if len(curve) == 0 {
		return 0
	}
	return vecmath.MaxAbs(curve)
}
