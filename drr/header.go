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

// Package drr decodes the legacy .drr directory / .his data file pair that
// describes a catalog of 1D and 2D histograms, and extracts the raw bin
// counts for a requested histogram id.
package drr

import "fmt"

// MaxAxes is the number of per-axis slots a HistogramHeader carries; only the
// first Dim of them are meaningful.
const MaxAxes = 4

// HistogramHeader is an immutable description of one histogram, decoded from
// a single fixed-width directory record.
type HistogramHeader struct {
	ID        int
	Dim       int
	HalfWords int // 1 => 16-bit stored bins, 2 => 32-bit stored bins

	Params [MaxAxes]int
	Raw    [MaxAxes]int
	Scaled [MaxAxes]int
	MinCh  [MaxAxes]int
	MaxCh  [MaxAxes]int

	Offset int64 // half-words from the start of the .his file

	CalibrationConstants [4]float64

	XLabel string
	YLabel string
	Title  string
}

// BinCount returns the number of stored bins (prod of Scaled[0:Dim]).
func (h HistogramHeader) BinCount() int64 {
	n := int64(1)
	for i := 0; i < h.Dim; i++ {
		n *= int64(h.Scaled[i])
	}
	return n
}

// byteSize is how many bytes of the .his file this histogram's bins occupy.
func (h HistogramHeader) byteSize() int64 {
	bytesPerBin := int64(2)
	if h.HalfWords == 2 {
		bytesPerBin = 4
	}
	return h.BinCount() * bytesPerBin
}

// validate checks the invariants a decoded HistogramHeader must satisfy.
// dataFileLen is the size of the companion .his file.
func (h HistogramHeader) validate(dataFileLen int64) error {
	if h.Dim != 1 && h.Dim != 2 {
		return fmt.Errorf("%w: histogram %d has dim %d", ErrBadHeader, h.ID, h.Dim)
	}
	if h.HalfWords != 1 && h.HalfWords != 2 {
		return fmt.Errorf("%w: histogram %d has halfWords %d", ErrBadHeader, h.ID, h.HalfWords)
	}
	for i := 0; i < h.Dim; i++ {
		if h.Scaled[i] < 1 {
			return fmt.Errorf("%w: histogram %d axis %d has scaled %d", ErrBadHeader, h.ID, i, h.Scaled[i])
		}
		if h.MinCh[i] > h.MaxCh[i] {
			return fmt.Errorf("%w: histogram %d axis %d has minCh %d > maxCh %d",
				ErrBadHeader, h.ID, i, h.MinCh[i], h.MaxCh[i])
		}
	}
	offsetBytes := h.Offset * 2
	if offsetBytes+h.byteSize() > dataFileLen {
		return fmt.Errorf("%w: histogram %d spans [%d, %d) past data file length %d",
			ErrBadHeader, h.ID, offsetBytes, offsetBytes+h.byteSize(), dataFileLen)
	}
	return nil
}
