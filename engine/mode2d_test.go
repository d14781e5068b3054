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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	null "gopkg.in/guregu/null.v3"

	"github.com/drr-tools/hisview/histogram"
	"github.com/drr-tools/hisview/polygon"
)

// grid5x5 builds a 5x5 histogram shared by several gate/crop scenarios below:
// cell (i,j) = i+j over [0,5)x[0,5).
func grid5x5(t *testing.T) *histogram.Histogram2D {
	t.Helper()
	h, err := histogram.NewHistogram2D(0, 5, 0, 5, 5, 5, 7)
	require.NoError(t, err)
	for ix := 0; ix < 5; ix++ {
		for iy := 0; iy < 5; iy++ {
			h.Set(ix, iy, int64(ix+iy))
		}
	}
	return h
}

func TestRunGate1DProjectsOntoOtherAxis(t *testing.T) {
	h := grid5x5(t)
	cfg := Configuration{
		GateXLo: null.IntFrom(0), GateXHi: null.IntFrom(2),
		BinX: 1, BinY: 1, EveryX: 1, EveryY: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, runGate1D(&buf, h, cfg))

	lines := splitLines(buf.String())
	assert.Equal(t, []string{
		"#X N dN",
		"0.5 3 1.7320508075688772",
		"1.5 6 2.449489742783178",
		"2.5 9 3",
		"3.5 12 3.4641016151377544",
		"4.5 15 3.872983346207417",
	}, lines)
}

func TestRunGate1DSubtractsBackground(t *testing.T) {
	h := grid5x5(t)
	cfg := Configuration{
		GateXLo: null.IntFrom(0), GateXHi: null.IntFrom(2),
		BgLo: null.IntFrom(3), BgHi: null.IntFrom(4),
		BinX: 1, BinY: 1, EveryX: 1, EveryY: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, runGate1D(&buf, h, cfg))

	lines := splitLines(buf.String())
	// signal [3,6,9,12,15] - background [7,9,11,13,15] = [-4,-3,-2,-1,0]
	// error histogram = signal+background = [10,15,20,25,30]; no zero entries.
	assert.Equal(t, []string{
		"#X N dN",
		"0.5 -4 3.1622776601683795",
		"1.5 -3 3.872983346207417",
		"2.5 -2 4.47213595499958",
		"3.5 -1 5",
		"4.5 0 5.477225575051661",
	}, lines)
}

func TestRunPolygonGateSumsCellsInsidePolygon(t *testing.T) {
	h := grid5x5(t)
	poly, err := polygon.New([]polygon.Point{{1, 1}, {3, 1}, {3, 3}, {1, 3}})
	require.NoError(t, err)
	cfg := Configuration{
		GateXLo: null.IntFrom(0), GateXHi: null.IntFrom(4),
		BinX: 1, BinY: 1, EveryX: 1, EveryY: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, runPolygonGate1D(&buf, h, cfg, poly))

	lines := splitLines(buf.String())
	// only cells (1,1),(2,1),(1,2),(2,2) qualify: y=1 gets (1,1)+(2,1)=2+3=5,
	// y=2 gets (1,2)+(2,2)=3+4=7.
	require.Len(t, lines, 6)
	assert.Equal(t, "#X N dN", lines[0])
	assert.Equal(t, "0.5 0 1", lines[1])
	assert.Equal(t, "1.5 5 2.23606797749979", lines[2])
	assert.Equal(t, "2.5 7 2.6457513110645907", lines[3])
	assert.Equal(t, "3.5 0 1", lines[4])
	assert.Equal(t, "4.5 0 1", lines[5])
}

func TestRunCropOrNoGateEmitsGrid(t *testing.T) {
	h := grid5x5(t)
	cfg := Configuration{BinX: 1, BinY: 1, EveryX: 1, EveryY: 1}
	var buf bytes.Buffer
	require.NoError(t, runCropOrNoGate(&buf, h, cfg))

	lines := splitLines(buf.String())
	assert.Equal(t, "#X Y N", lines[0])
	// 5 columns x 5 rows + 4 blank separators + header = 30 lines (the blank
	// line after the last column is dropped by splitLines).
	assert.Len(t, lines, 1+5*5+4)
}

func TestRunCropChannelsScenario(t *testing.T) {
	h := grid5x5(t)
	cfg := Configuration{
		GateXLo: null.IntFrom(1), GateXHi: null.IntFrom(3),
		GateYLo: null.IntFrom(1), GateYHi: null.IntFrom(3),
		BinX: 1, BinY: 1, EveryX: 1, EveryY: 1,
	}
	var buf bytes.Buffer
	require.NoError(t, runCropOrNoGate(&buf, h, cfg))

	lines := splitLines(buf.String())
	assert.Equal(t, "#X Y N", lines[0])
	assert.Equal(t, "1.5 1.5 2", lines[1])
}
