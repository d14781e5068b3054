/*
 *
 * hisview - a legacy .drr/.his histogram catalog viewer
 * Copyright (C) 2024 hisview contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package histogram implements the 1D and 2D binned containers: storage,
// indexing, arithmetic, rebinning, gating and cropping.
package histogram

import (
	"fmt"
	"math"
)

// axis1D carries the extent/bin-count/bin-width state shared by Histogram1D's
// single axis and by each of Histogram2D's two axes, mirroring the common base
// the legacy C++ Histogram class factors out.
type axis1D struct {
	min, max  float64
	nBin      int
	binWidth  float64
}

func newAxis1D(min, max float64, nBin int) (axis1D, error) {
	if nBin < 1 {
		return axis1D{}, fmt.Errorf("%w: nBin %d must be >= 1", ErrBadRebin, nBin)
	}
	if max <= min {
		return axis1D{}, fmt.Errorf("%w: max %g must be > min %g", ErrBadRebin, max, min)
	}
	return axis1D{min: min, max: max, nBin: nBin, binWidth: (max - min) / float64(nBin)}, nil
}

// index returns the bin for x, with the result clamped into [0, nBin); callers
// distinguish in-range from underflow/overflow themselves before calling it.
func (a axis1D) index(x float64) int {
	i := int(math.Floor((x - a.min) / a.binWidth))
	if i < 0 {
		i = 0
	}
	if i > a.nBin-1 {
		i = a.nBin - 1
	}
	return i
}

// clampedIndex is binIndex: always in [0, nBin), clamping out-of-range x.
func (a axis1D) clampedIndex(x float64) int {
	if x < a.min {
		return 0
	}
	if x >= a.max {
		return a.nBin - 1
	}
	return a.index(x)
}

func (a axis1D) low(i int) float64  { return a.min + float64(i)*a.binWidth }
func (a axis1D) high(i int) float64 { return a.min + float64(i+1)*a.binWidth }
func (a axis1D) mid(i int) float64  { return a.min + (float64(i)+0.5)*a.binWidth }

func (a axis1D) sameShape(b axis1D) bool {
	return a.nBin == b.nBin && a.min == b.min && a.max == b.max
}

// roundHalfEven rounds x to the nearest integer, ties to even, matching the
// legacy loader's double-to-bin rounding discipline. Used both by Rebin and
// by SetDataRaw.
func roundHalfEven(x float64) int64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return int64(floor)
	case diff > 0.5:
		return int64(floor) + 1
	default:
		if int64(floor)%2 == 0 {
			return int64(floor)
		}
		return int64(floor) + 1
	}
}

// overlap returns the length of the intersection of [a,b) and [p,q), or 0 if
// they don't overlap.
func overlap(a, b, p, q float64) float64 {
	lo := math.Max(a, p)
	hi := math.Min(b, q)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
