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
	"encoding/binary"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	null "gopkg.in/guregu/null.v3"

	"github.com/drr-tools/hisview/drr"
)

// TestRunDispatches1D wires a real drr.Reader over a synthetic catalog into
// Run, exercising the full id -> header -> bins -> Histogram1D -> text path
// rather than a hand-built Histogram1D fixture.
func TestRunDispatches1D(t *testing.T) {
	fs := afero.NewMemMapFs()
	specs := []listFixtureSpec{
		{id: 10, dim: 1, halfWords: 1, scaled: [4]int{4}, minCh: [4]int{0}, maxCh: [4]int{3}, offset: 0},
	}
	var his bytes.Buffer
	for _, v := range []uint16{5, 6, 7, 8} {
		require.NoError(t, binary.Write(&his, binary.LittleEndian, v))
	}
	writeListFixture(t, fs, "cat", specs, his.Bytes())

	r, err := drr.Open(fs, "cat")
	require.NoError(t, err)
	defer r.Close()

	cfg := Configuration{ID: null.IntFrom(10), BinX: 1, BinY: 1, EveryX: 1, EveryY: 1}
	var buf bytes.Buffer
	require.NoError(t, Run(cfg, r, fs, &buf))

	assert.Equal(t, []string{
		"#X N dN",
		"0.5 5 2.23606797749979",
		"1.5 6 2.449489742783178",
		"2.5 7 2.6457513110645907",
		"3.5 8 2.8284271247461903",
	}, splitLines(buf.String()))
}

// TestRunDispatches2DNoGate exercises the grid-output path end to end.
func TestRunDispatches2DNoGate(t *testing.T) {
	fs := afero.NewMemMapFs()
	specs := []listFixtureSpec{
		{id: 20, dim: 2, halfWords: 1, scaled: [4]int{2, 2}, minCh: [4]int{0, 0}, maxCh: [4]int{1, 1}, offset: 0},
	}
	var his bytes.Buffer
	// row-major iy*nBinX+ix: (0,0)=1 (1,0)=2 (0,1)=3 (1,1)=4
	for _, v := range []uint16{1, 2, 3, 4} {
		require.NoError(t, binary.Write(&his, binary.LittleEndian, v))
	}
	writeListFixture(t, fs, "cat", specs, his.Bytes())

	r, err := drr.Open(fs, "cat")
	require.NoError(t, err)
	defer r.Close()

	cfg := Configuration{ID: null.IntFrom(20), BinX: 1, BinY: 1, EveryX: 1, EveryY: 1}
	var buf bytes.Buffer
	require.NoError(t, Run(cfg, r, fs, &buf))

	lines := splitLines(buf.String())
	assert.Equal(t, "#X Y N", lines[0])
	assert.Len(t, lines, 1+2*2+1)
}

func TestRunListModeDispatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	specs := []listFixtureSpec{
		{id: 10, dim: 1, halfWords: 1, scaled: [4]int{4}, minCh: [4]int{0}, maxCh: [4]int{3}, offset: 0},
	}
	writeListFixture(t, fs, "cat", specs, make([]byte, 8))

	r, err := drr.Open(fs, "cat")
	require.NoError(t, err)
	defer r.Close()

	cfg := Configuration{List: true}
	var buf bytes.Buffer
	require.NoError(t, Run(cfg, r, fs, &buf))
	assert.Equal(t, []string{"#id dim", "10 1"}, splitLines(buf.String()))
}

func TestRunRejectsMissingIDOutsideListMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	specs := []listFixtureSpec{
		{id: 10, dim: 1, halfWords: 1, scaled: [4]int{4}, minCh: [4]int{0}, maxCh: [4]int{3}, offset: 0},
	}
	writeListFixture(t, fs, "cat", specs, make([]byte, 8))

	r, err := drr.Open(fs, "cat")
	require.NoError(t, err)
	defer r.Close()

	var buf bytes.Buffer
	err = Run(Configuration{BinX: 1, BinY: 1, EveryX: 1, EveryY: 1}, r, fs, &buf)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestRunUnknownIDPropagatesError(t *testing.T) {
	fs := afero.NewMemMapFs()
	specs := []listFixtureSpec{
		{id: 10, dim: 1, halfWords: 1, scaled: [4]int{4}, minCh: [4]int{0}, maxCh: [4]int{3}, offset: 0},
	}
	writeListFixture(t, fs, "cat", specs, make([]byte, 8))

	r, err := drr.Open(fs, "cat")
	require.NoError(t, err)
	defer r.Close()

	cfg := Configuration{ID: null.IntFrom(999), BinX: 1, BinY: 1, EveryX: 1, EveryY: 1}
	var buf bytes.Buffer
	err = Run(cfg, r, fs, &buf)
	assert.ErrorIs(t, err, drr.ErrUnknownID)
}
