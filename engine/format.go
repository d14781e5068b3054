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

package engine

import (
	"fmt"
	"io"
	"math"
)

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}

// writeSeries1D writes the "#X N dN" header followed by one row per bin of
// xs/counts/errs (all equal length), honoring stride and zero-suppression.
// errs holds the value printed in the dN column directly — for plain 1D mode
// that is sqrt(count); for a gated/background-subtracted projection it is
// the Poisson-floored error histogram's sqrt, computed by the caller.
func writeSeries1D(w io.Writer, xs []float64, counts []int64, errs []float64, stride int, zeroSup bool) error {
	if _, err := fmt.Fprintln(w, "#X N dN"); err != nil {
		return err
	}
	for i := 0; i < len(xs); i += stride {
		if zeroSup && counts[i] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %d %s\n", formatFloat(xs[i]), counts[i], formatFloat(errs[i])); err != nil {
			return err
		}
	}
	return nil
}

// writeGrid2D writes the "#X Y N" header followed by one row per cell of h,
// honoring per-axis stride and zero-suppression, with a blank line between
// x-columns to preserve the block structure downstream plotters expect.
func writeGrid2D(w io.Writer, h gridSource, everyX, everyY int, zeroSup bool) error {
	if _, err := fmt.Fprintln(w, "#X Y N"); err != nil {
		return err
	}
	for ix := 0; ix < h.NBinX(); ix += everyX {
		x := h.GetX(ix)
		for iy := 0; iy < h.NBinY(); iy += everyY {
			v := h.Get(ix, iy)
			if zeroSup && v == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s %s %d\n", formatFloat(x), formatFloat(h.GetY(iy)), v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// gridSource is the subset of Histogram2D's API writeGrid2D needs, so it can
// be exercised with a fixture in tests without constructing a full Histogram2D.
type gridSource interface {
	NBinX() int
	NBinY() int
	GetX(i int) float64
	GetY(i int) float64
	Get(ix, iy int) int64
}

// sqrtCounts turns a count array into √count, per bin, for plain (non
// background-subtracted) error columns.
func sqrtCounts(counts []int64) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = math.Sqrt(float64(c))
	}
	return out
}

// poissonFloor replaces any zero entry with 1 — the Poisson floor a
// background-subtracted error histogram needs before taking a square root —
// then returns its element-wise square root.
func poissonFloor(errCounts []int64) []float64 {
	out := make([]float64, len(errCounts))
	for i, c := range errCounts {
		if c == 0 {
			c = 1
		}
		out[i] = math.Sqrt(float64(c))
	}
	return out
}
