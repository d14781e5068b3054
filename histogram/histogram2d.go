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

package histogram

import "fmt"

// Histogram2D is a binned container over two axes, stored row-major: bin
// (ix, iy) lives at iy*nBinX + ix.
type Histogram2D struct {
	x, y axis1D

	ID   int
	bins []int64

	Underflow int64
	Overflow  int64
}

// NewHistogram2D constructs an empty histogram with nBinX*nBinY bins.
func NewHistogram2D(xMin, xMax float64, yMin, yMax float64, nBinX, nBinY int, id int) (*Histogram2D, error) {
	xa, err := newAxis1D(xMin, xMax, nBinX)
	if err != nil {
		return nil, err
	}
	ya, err := newAxis1D(yMin, yMax, nBinY)
	if err != nil {
		return nil, err
	}
	return &Histogram2D{x: xa, y: ya, ID: id, bins: make([]int64, nBinX*nBinY)}, nil
}

func (h *Histogram2D) NBinX() int      { return h.x.nBin }
func (h *Histogram2D) NBinY() int      { return h.y.nBin }
func (h *Histogram2D) XMin() float64   { return h.x.min }
func (h *Histogram2D) XMax() float64   { return h.x.max }
func (h *Histogram2D) YMin() float64   { return h.y.min }
func (h *Histogram2D) YMax() float64   { return h.y.max }
func (h *Histogram2D) BinWidthX() float64 { return h.x.binWidth }
func (h *Histogram2D) BinWidthY() float64 { return h.y.binWidth }

func (h *Histogram2D) at(ix, iy int) int { return iy*h.x.nBin + ix }

// Add increments the cell containing (x, y) by n. A point outside either
// axis' range counts as Underflow (below either axis' minimum) or Overflow
// (at or above either axis' maximum); there is a single pair of counters, not
// one per axis, matching the container's scalar underflow/overflow fields.
func (h *Histogram2D) Add(x, y float64, n int64) {
	switch {
	case x < h.x.min || y < h.y.min:
		h.Underflow += n
	case x >= h.x.max || y >= h.y.max:
		h.Overflow += n
	default:
		h.bins[h.at(h.x.index(x), h.y.index(y))] += n
	}
}

// Get returns the count of cell (ix, iy).
func (h *Histogram2D) Get(ix, iy int) int64 { return h.bins[h.at(ix, iy)] }

// Set overwrites the count of cell (ix, iy).
func (h *Histogram2D) Set(ix, iy int, v int64) { h.bins[h.at(ix, iy)] = v }

// BinIndexX/BinIndexY return the clamped bin index on each axis.
func (h *Histogram2D) BinIndexX(x float64) int { return h.x.clampedIndex(x) }
func (h *Histogram2D) BinIndexY(y float64) int { return h.y.clampedIndex(y) }

// GetX/GetY return the midpoint of bin i on the named axis.
func (h *Histogram2D) GetX(i int) float64 { return h.x.mid(i) }
func (h *Histogram2D) GetY(i int) float64 { return h.y.mid(i) }

func clampChannel(ch, nBin int) int {
	if ch < 0 {
		return 0
	}
	if ch > nBin-1 {
		return nBin - 1
	}
	return ch
}

// GateX sums, for every y-bin, the counts across x-bins whose channel index
// lies in [xlCh, xhCh] inclusive (channel indices, not coordinates; values
// outside [0, nBinX) clamp). The result spans (yMin, yMax, nBinY).
func (h *Histogram2D) GateX(xlCh, xhCh int) (*Histogram1D, error) {
	lo := clampChannel(xlCh, h.x.nBin)
	hi := clampChannel(xhCh, h.x.nBin)
	out, err := NewHistogram1D(h.y.min, h.y.max, h.y.nBin, h.ID)
	if err != nil {
		return nil, err
	}
	for iy := 0; iy < h.y.nBin; iy++ {
		var sum int64
		for ix := lo; ix <= hi; ix++ {
			sum += h.Get(ix, iy)
		}
		out.Set(iy, sum)
	}
	return out, nil
}

// GateY is GateX's mirror image over the y-axis, projecting onto x.
func (h *Histogram2D) GateY(ylCh, yhCh int) (*Histogram1D, error) {
	lo := clampChannel(ylCh, h.y.nBin)
	hi := clampChannel(yhCh, h.y.nBin)
	out, err := NewHistogram1D(h.x.min, h.x.max, h.x.nBin, h.ID)
	if err != nil {
		return nil, err
	}
	for ix := 0; ix < h.x.nBin; ix++ {
		var sum int64
		for iy := lo; iy <= hi; iy++ {
			sum += h.Get(ix, iy)
		}
		out.Set(ix, sum)
	}
	return out, nil
}

// Transpose swaps the x and y axes in place: (xMin,xMax,nBinX) <-> (yMin,
// yMax,nBinY), and cell (i,j) moves to (j,i).
func (h *Histogram2D) Transpose() {
	newBins := make([]int64, len(h.bins))
	newH := &Histogram2D{x: h.y, y: h.x, bins: newBins}
	for ix := 0; ix < h.x.nBin; ix++ {
		for iy := 0; iy < h.y.nBin; iy++ {
			newH.Set(iy, ix, h.Get(ix, iy))
		}
	}
	h.x, h.y = newH.x, newH.y
	h.bins = newH.bins
}

// Crop returns a new histogram whose extents are the channel-index crop
// rectangle and whose bin widths equal the original; cell values copy
// directly. Channel indices clamp to each axis' valid range.
func (h *Histogram2D) Crop(xlCh, xhCh, ylCh, yhCh int) (*Histogram2D, error) {
	xlo, xhi := clampChannel(xlCh, h.x.nBin), clampChannel(xhCh, h.x.nBin)
	ylo, yhi := clampChannel(ylCh, h.y.nBin), clampChannel(yhCh, h.y.nBin)
	if xhi < xlo || yhi < ylo {
		return nil, fmt.Errorf("%w: empty crop range", ErrBadRebin)
	}
	out, err := NewHistogram2D(h.x.low(xlo), h.x.high(xhi), h.y.low(ylo), h.y.high(yhi), xhi-xlo+1, yhi-ylo+1, h.ID)
	if err != nil {
		return nil, err
	}
	for ix := xlo; ix <= xhi; ix++ {
		for iy := ylo; iy <= yhi; iy++ {
			out.Set(ix-xlo, iy-ylo, h.Get(ix, iy))
		}
	}
	return out, nil
}

func (h *Histogram2D) sameShape(o *Histogram2D) bool {
	return h.x.sameShape(o.x) && h.y.sameShape(o.y)
}

func (h *Histogram2D) checkShape(o *Histogram2D) error {
	if !h.sameShape(o) {
		return fmt.Errorf("%w: (%d x %d) vs (%d x %d)", ErrShapeMismatch, h.x.nBin, h.y.nBin, o.x.nBin, o.y.nBin)
	}
	return nil
}

// AddAssign adds o's cells into h in place.
func (h *Histogram2D) AddAssign(o *Histogram2D) error {
	if err := h.checkShape(o); err != nil {
		return err
	}
	for i := range h.bins {
		h.bins[i] += o.bins[i]
	}
	h.Underflow += o.Underflow
	h.Overflow += o.Overflow
	return nil
}

// SubAssign subtracts o's cells from h in place.
func (h *Histogram2D) SubAssign(o *Histogram2D) error {
	if err := h.checkShape(o); err != nil {
		return err
	}
	for i := range h.bins {
		h.bins[i] -= o.bins[i]
	}
	h.Underflow -= o.Underflow
	h.Overflow -= o.Overflow
	return nil
}

// ScaleAssign multiplies every cell by k in place.
func (h *Histogram2D) ScaleAssign(k int64) {
	for i := range h.bins {
		h.bins[i] *= k
	}
	h.Underflow *= k
	h.Overflow *= k
}

func (h *Histogram2D) clone() *Histogram2D {
	bins := make([]int64, len(h.bins))
	copy(bins, h.bins)
	return &Histogram2D{x: h.x, y: h.y, ID: h.ID, bins: bins, Underflow: h.Underflow, Overflow: h.Overflow}
}

// Plus returns h + o as a new histogram.
func (h *Histogram2D) Plus(o *Histogram2D) (*Histogram2D, error) {
	out := h.clone()
	if err := out.AddAssign(o); err != nil {
		return nil, err
	}
	return out, nil
}

// Minus returns h - o as a new histogram.
func (h *Histogram2D) Minus(o *Histogram2D) (*Histogram2D, error) {
	out := h.clone()
	if err := out.SubAssign(o); err != nil {
		return nil, err
	}
	return out, nil
}

// Scaled returns h * k as a new histogram.
func (h *Histogram2D) Scaled(k int64) *Histogram2D {
	out := h.clone()
	out.ScaleAssign(k)
	return out
}

// TotalCounts sums every cell; Underflow/Overflow are excluded.
func (h *Histogram2D) TotalCounts() int64 {
	var s int64
	for _, v := range h.bins {
		s += v
	}
	return s
}

// Rebin generalizes Histogram1D.Rebin's area-proportional rule to the
// product of x- and y-overlap fractions, rounding each new cell
// independently with ties to even.
func (h *Histogram2D) Rebin(xMin, xMax, yMin, yMax float64, nBinX, nBinY int) (*Histogram2D, error) {
	out, err := NewHistogram2D(xMin, xMax, yMin, yMax, nBinX, nBinY, h.ID)
	if err != nil {
		return nil, err
	}
	for jx := 0; jx < nBinX; jx++ {
		ax, bx := out.x.low(jx), out.x.high(jx)
		for jy := 0; jy < nBinY; jy++ {
			ay, by := out.y.low(jy), out.y.high(jy)
			var acc float64
			for ix := 0; ix < h.x.nBin; ix++ {
				px, qx := h.x.low(ix), h.x.high(ix)
				fx := overlap(ax, bx, px, qx) / (qx - px)
				if fx <= 0 {
					continue
				}
				for iy := 0; iy < h.y.nBin; iy++ {
					py, qy := h.y.low(iy), h.y.high(iy)
					fy := overlap(ay, by, py, qy) / (qy - py)
					if fy <= 0 {
						continue
					}
					acc += float64(h.Get(ix, iy)) * fx * fy
				}
			}
			out.Set(jx, jy, roundHalfEven(acc))
		}
	}
	return out, nil
}

// SetDataRaw overwrites every cell from row-major raw data, rounding each
// element to the nearest integer with ties to even.
func (h *Histogram2D) SetDataRaw(data []float64) error {
	if len(data) != len(h.bins) {
		return fmt.Errorf("%w: got %d values, want %d", ErrBadRebin, len(data), len(h.bins))
	}
	for i, v := range data {
		h.bins[i] = roundHalfEven(v)
	}
	return nil
}

// GetDataRaw returns the bin array widened to float64, row-major.
func (h *Histogram2D) GetDataRaw() []float64 {
	out := make([]float64, len(h.bins))
	for i, v := range h.bins {
		out[i] = float64(v)
	}
	return out
}
