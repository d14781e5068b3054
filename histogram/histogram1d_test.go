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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHist1D(t *testing.T, xMin, xMax float64, nBin, id int) *Histogram1D {
	t.Helper()
	h, err := NewHistogram1D(xMin, xMax, nBin, id)
	require.NoError(t, err)
	return h
}

func TestHistogram1DAddUnderflowOverflow(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	h.Add(-1, 5)
	h.Add(10, 7)
	h.Add(9.5, 1)
	assert.Equal(t, int64(5), h.Underflow)
	assert.Equal(t, int64(7), h.Overflow)
	assert.Equal(t, int64(1), h.Get(9))
}

func TestHistogram1DBinIndexTotality(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	assert.Equal(t, 0, h.BinIndex(-5))
	assert.Equal(t, 9, h.BinIndex(10))
	assert.Equal(t, 9, h.BinIndex(999))
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, h.BinIndex(h.GetX(i)))
	}
}

func TestHistogram1DRoundTripRawData(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	v := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.NoError(t, h.SetDataRaw(v))
	assert.Equal(t, v, h.GetDataRaw())
}

func TestHistogram1DSum(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	require.NoError(t, h.SetDataRaw([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	h.Add(-1, 100) // excluded from Sum
	assert.Equal(t, int64(55), h.Sum())
}

func TestHistogram1DArithmeticIdentities(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	require.NoError(t, h.SetDataRaw([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	sum, err := h.Plus(h)
	require.NoError(t, err)
	diff, err := sum.Minus(h)
	require.NoError(t, err)
	assert.Equal(t, h.GetDataRaw(), diff.GetDataRaw())

	zero := h.Scaled(0)
	for i := 0; i < zero.NBinX(); i++ {
		assert.Equal(t, int64(0), zero.Get(i))
	}
	assert.Equal(t, h.NBinX(), zero.NBinX())
}

func TestHistogram1DShapeMismatch(t *testing.T) {
	a := mustHist1D(t, 0, 10, 10, 1)
	b := mustHist1D(t, 0, 20, 10, 2)
	_, err := a.Plus(b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestHistogram1DRebinConservesTotalOnExactDivisor(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	require.NoError(t, h.SetDataRaw([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	rebinned, err := h.Rebin(0, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, h.Sum(), rebinned.Sum())
}

func TestHistogram1DRebinMergesAdjacentBins(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	require.NoError(t, h.SetDataRaw([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	rebinned, err := h.Rebin(0, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 11, 15, 19}, rebinned.GetDataRaw())
}

func TestHistogram1DBadRebin(t *testing.T) {
	h := mustHist1D(t, 0, 10, 10, 1)
	_, err := h.Rebin(0, 10, 0)
	assert.ErrorIs(t, err, ErrBadRebin)
	_, err = h.Rebin(10, 10, 5)
	assert.ErrorIs(t, err, ErrBadRebin)
}
