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

// Package engine dispatches a Configuration to the right combination of
// gating, cropping and rebinning operations on a histogram read through a
// drr.Reader, and formats the result to an output stream.
package engine

import (
	"fmt"

	null "gopkg.in/guregu/null.v3"
)

// Configuration is the flat, read-only record of every option the viewer
// recognizes. Options that are meaningfully three-valued (unset / set to
// zero / set to n) use null.v3 scalars so the orchestrator can tell "not
// requested" from "requested with a zero-ish value".
type Configuration struct {
	ID null.Int

	List      bool
	ListEmpty bool
	Info      bool

	GateXLo, GateXHi null.Int
	GateYLo, GateYHi null.Int

	BgLo, BgHi   null.Int
	SBgLo, SBgHi null.Int

	PolygonPath null.String
	PolygonID   null.Int

	// BinX/BinY are rebin factors; 1 means no rebin. EveryX/EveryY are
	// output strides. The CLI's flags default all four to 1; a value below 1,
	// including the zero value of an unset field, fails validate.
	BinX, BinY     int
	EveryX, EveryY int

	ZeroSup bool
}

func (c Configuration) hasGateX() bool { return c.GateXLo.Valid && c.GateXHi.Valid }
func (c Configuration) hasGateY() bool { return c.GateYLo.Valid && c.GateYHi.Valid }
func (c Configuration) hasPolygon() bool { return c.PolygonPath.Valid }
func (c Configuration) hasBg() bool  { return c.BgLo.Valid && c.BgHi.Valid }
func (c Configuration) hasSBg() bool { return c.SBgLo.Valid && c.SBgHi.Valid }

// validate checks the cross-field invariants a Configuration must satisfy
// before the orchestrator acts on it.
func (c Configuration) validate() error {
	if c.BinX < 1 || c.BinY < 1 {
		return fmt.Errorf("%w: bin factors must be >= 1, got (%d, %d)", ErrBadConfig, c.BinX, c.BinY)
	}
	if c.EveryX < 1 || c.EveryY < 1 {
		return fmt.Errorf("%w: stride factors must be >= 1, got (%d, %d)", ErrBadConfig, c.EveryX, c.EveryY)
	}
	if c.hasSBg() && !c.hasBg() {
		return fmt.Errorf("%w: sbg requires bg to also be set", ErrBadConfig)
	}
	if c.PolygonID.Valid && !c.PolygonPath.Valid {
		return fmt.Errorf("%w: polygon id given without a polygon path", ErrBadConfig)
	}
	return nil
}
