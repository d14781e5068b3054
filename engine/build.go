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

	"github.com/drr-tools/hisview/drr"
	"github.com/drr-tools/hisview/histogram"
)

func toFloat64(bins drr.BinArray) []float64 {
	out := make([]float64, len(bins))
	for i, v := range bins {
		out[i] = float64(v)
	}
	return out
}

// buildHistogram1D allocates a Histogram1D sized from h and fills it with
// bins, using the axis range [minCh, maxCh+1) with scaled bins.
func buildHistogram1D(h drr.HistogramHeader, bins drr.BinArray) (*histogram.Histogram1D, error) {
	out, err := histogram.NewHistogram1D(float64(h.MinCh[0]), float64(h.MaxCh[0]+1), h.Scaled[0], h.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: histogram %d: %v", ErrBadConfig, h.ID, err)
	}
	if err := out.SetDataRaw(toFloat64(bins)); err != nil {
		return nil, err
	}
	return out, nil
}

// buildHistogram2D mirrors buildHistogram1D for both axes; bins is already
// row-major (iy*nBinX+ix) matching Histogram2D's own storage order.
func buildHistogram2D(h drr.HistogramHeader, bins drr.BinArray) (*histogram.Histogram2D, error) {
	out, err := histogram.NewHistogram2D(
		float64(h.MinCh[0]), float64(h.MaxCh[0]+1),
		float64(h.MinCh[1]), float64(h.MaxCh[1]+1),
		h.Scaled[0], h.Scaled[1], h.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: histogram %d: %v", ErrBadConfig, h.ID, err)
	}
	if err := out.SetDataRaw(toFloat64(bins)); err != nil {
		return nil, err
	}
	return out, nil
}
