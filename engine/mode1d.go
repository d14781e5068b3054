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
	"io"

	"github.com/drr-tools/hisview/histogram"
)

// applyBinFactor1D rebins h by an integer width factor: bin[k] multiplies
// the bin width, so the new bin count is the old count divided by the
// factor (never below 1). A factor of 1 is a no-op.
func applyBinFactor1D(h *histogram.Histogram1D, factor int) (*histogram.Histogram1D, error) {
	if factor == 1 {
		return h, nil
	}
	newNBin := h.NBinX() / factor
	if newNBin < 1 {
		newNBin = 1
	}
	return h.Rebin(h.XMin(), h.XMax(), newNBin)
}

// run1D prints a plain 1D histogram: optional rebin, stride, zero
// suppression, "x center | count | √count".
func run1D(w io.Writer, h *histogram.Histogram1D, cfg Configuration) error {
	h, err := applyBinFactor1D(h, cfg.BinX)
	if err != nil {
		return err
	}

	n := h.NBinX()
	xs := make([]float64, n)
	counts := make([]int64, n)
	for i := 0; i < n; i++ {
		xs[i] = h.GetX(i)
		counts[i] = h.Get(i)
	}
	return writeSeries1D(w, xs, counts, sqrtCounts(counts), cfg.EveryX, cfg.ZeroSup)
}
