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

	"github.com/drr-tools/hisview/drr"
)

// runList emits a table of every id with its dimensionality and, if
// withEmptiness is set, whether every bin is zero. Deciding emptiness
// requires a full bin read per histogram (HisDrrHisto::runListMode(true)
// does the same) — the header alone can't tell.
func runList(w io.Writer, r *drr.Reader, withEmptiness bool) error {
	header := "#id dim"
	if withEmptiness {
		header += " empty"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, id := range r.SortedIDs() {
		h, err := r.HeaderOf(id)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%d %d", h.ID, h.Dim)
		if withEmptiness {
			bins, err := r.ReadBins(id)
			if err != nil {
				return err
			}
			line += fmt.Sprintf(" %t", isEmpty(bins))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isEmpty(bins drr.BinArray) bool {
	for _, v := range bins {
		if v != 0 {
			return false
		}
	}
	return true
}

// runInfo emits a header's fields as "#key: value" lines.
func runInfo(w io.Writer, h drr.HistogramHeader) error {
	lines := []string{
		fmt.Sprintf("#id: %d", h.ID),
		fmt.Sprintf("#dim: %d", h.Dim),
		fmt.Sprintf("#title: %s", h.Title),
		fmt.Sprintf("#xlabel: %s", h.XLabel),
	}
	if h.Dim == 2 {
		lines = append(lines, fmt.Sprintf("#ylabel: %s", h.YLabel))
	}
	for i := 0; i < h.Dim; i++ {
		lines = append(lines,
			fmt.Sprintf("#axis%d.scaled: %d", i, h.Scaled[i]),
			fmt.Sprintf("#axis%d.minCh: %d", i, h.MinCh[i]),
			fmt.Sprintf("#axis%d.maxCh: %d", i, h.MaxCh[i]),
			fmt.Sprintf("#axis%d.calibration: %g", i, h.CalibrationConstants[i]),
		)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
