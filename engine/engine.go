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

	"github.com/spf13/afero"

	"github.com/drr-tools/hisview/drr"
	"github.com/drr-tools/hisview/histogram"
	"github.com/drr-tools/hisview/polygon"
)

// Run decides and executes one of the viewing modes in priority order
// (list/listEmpty, info, plain 1D, gated 2D projection, polygon-gated
// projection, crop, full grid), and writes the result to w. fs is used only
// to resolve a configured polygon file; it may be nil if no mode will need
// one (callers that never set PolygonPath can safely pass nil).
func Run(cfg Configuration, r *drr.Reader, fs afero.Fs, w io.Writer) error {
	if cfg.List || cfg.ListEmpty {
		return runList(w, r, cfg.ListEmpty)
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	if !cfg.ID.Valid {
		return fmt.Errorf("%w: an id is required outside list mode", ErrBadConfig)
	}
	id := int(cfg.ID.Int64)

	header, err := r.HeaderOf(id)
	if err != nil {
		return err
	}

	if cfg.Info {
		return runInfo(w, header)
	}

	bins, err := r.ReadBins(id)
	if err != nil {
		return err
	}

	switch header.Dim {
	case 1:
		h1, err := buildHistogram1D(header, bins)
		if err != nil {
			return err
		}
		return run1D(w, h1, cfg)
	case 2:
		h2, err := buildHistogram2D(header, bins)
		if err != nil {
			return err
		}
		return run2D(w, h2, cfg, fs)
	default:
		return fmt.Errorf("%w: histogram %d has dim %d", ErrUnsupportedDim, id, header.Dim)
	}
}

func run2D(w io.Writer, h2 *histogram.Histogram2D, cfg Configuration, fs afero.Fs) error {
	singleAxisGate := (cfg.hasGateX() != cfg.hasGateY()) && !cfg.hasPolygon()
	polygonGate := cfg.hasPolygon() && (cfg.hasGateX() || cfg.hasGateY())
	crop := cfg.hasGateX() && cfg.hasGateY()

	switch {
	case singleAxisGate:
		return runGate1D(w, h2, cfg)
	case polygonGate:
		poly, err := loadPolygonFromConfig(cfg, func(path string, id int, hasID bool) (*polygon.Polygon, error) {
			return polygon.LoadFile(fs, path, id, hasID)
		})
		if err != nil {
			return err
		}
		return runPolygonGate1D(w, h2, cfg, poly)
	case crop:
		return runCropOrNoGate(w, h2, cfg)
	default:
		return runCropOrNoGate(w, h2, cfg)
	}
}
