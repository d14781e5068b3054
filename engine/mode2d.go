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

	"github.com/drr-tools/hisview/histogram"
	"github.com/drr-tools/hisview/polygon"
)

func applyBinFactor2D(h *histogram.Histogram2D, factorX, factorY int) (*histogram.Histogram2D, error) {
	if factorX == 1 && factorY == 1 {
		return h, nil
	}
	newNBinX := h.NBinX() / factorX
	if newNBinX < 1 {
		newNBinX = 1
	}
	newNBinY := h.NBinY() / factorY
	if newNBinY < 1 {
		newNBinY = 1
	}
	return h.Rebin(h.XMin(), h.XMax(), h.YMin(), h.YMax(), newNBinX, newNBinY)
}

// project1D gates h on the named axis ("x" or "y") over [lo, hi] and returns
// the resulting projection.
func project1D(h *histogram.Histogram2D, axis string, lo, hi int) (*histogram.Histogram1D, error) {
	if axis == "x" {
		return h.GateX(lo, hi)
	}
	return h.GateY(lo, hi)
}

// runGate1D projects a 2D histogram onto the axis it is not gated on, optionally
// subtracts background (with split background), propagates the subtraction
// into a parallel error histogram, rebins both identically, then emits with
// a Poisson floor on the error histogram.
func runGate1D(w io.Writer, h *histogram.Histogram2D, cfg Configuration) error {
	axis, lo, hi := "x", int(cfg.GateXLo.Int64), int(cfg.GateXHi.Int64)
	binFactor, stride := cfg.BinY, cfg.EveryY
	if !cfg.hasGateX() {
		axis, lo, hi = "y", int(cfg.GateYLo.Int64), int(cfg.GateYHi.Int64)
		binFactor, stride = cfg.BinX, cfg.EveryX
	}

	proj, err := project1D(h, axis, lo, hi)
	if err != nil {
		return err
	}

	n := proj.NBinX()
	errCounts := make([]float64, n)
	for i := 0; i < n; i++ {
		errCounts[i] = float64(proj.Get(i))
	}

	if cfg.hasBg() {
		bgProj, err := project1D(h, axis, int(cfg.BgLo.Int64), int(cfg.BgHi.Int64))
		if err != nil {
			return err
		}
		if err := proj.SubAssign(bgProj); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			errCounts[i] += float64(bgProj.Get(i))
		}
	}
	if cfg.hasSBg() {
		sbgProj, err := project1D(h, axis, int(cfg.SBgLo.Int64), int(cfg.SBgHi.Int64))
		if err != nil {
			return err
		}
		if err := proj.SubAssign(sbgProj); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			errCounts[i] += float64(sbgProj.Get(i))
		}
	}

	errHist, err := histogram.NewHistogram1D(proj.XMin(), proj.XMax(), proj.NBinX(), proj.ID)
	if err != nil {
		return err
	}
	if err := errHist.SetDataRaw(errCounts); err != nil {
		return err
	}

	proj, err = applyBinFactor1D(proj, binFactor)
	if err != nil {
		return err
	}
	errHist, err = applyBinFactor1D(errHist, binFactor)
	if err != nil {
		return err
	}

	xs := make([]float64, proj.NBinX())
	counts := make([]int64, proj.NBinX())
	errInt := make([]int64, proj.NBinX())
	for i := 0; i < proj.NBinX(); i++ {
		xs[i] = proj.GetX(i)
		counts[i] = proj.Get(i)
		errInt[i] = errHist.Get(i)
	}
	return writeSeries1D(w, xs, counts, poissonFloor(errInt), stride, cfg.ZeroSup)
}

// runPolygonGate1D sums every cell whose bin center lies inside the
// polygon's bounding rectangle and inside the polygon itself into the bin
// of the non-gate axis it corresponds to.
func runPolygonGate1D(w io.Writer, h *histogram.Histogram2D, cfg Configuration, poly *polygon.Polygon) error {
	nonGateIsY := cfg.hasGateX()

	var out *histogram.Histogram1D
	var err error
	if nonGateIsY {
		out, err = histogram.NewHistogram1D(h.YMin(), h.YMax(), h.NBinY(), h.ID)
	} else {
		out, err = histogram.NewHistogram1D(h.XMin(), h.XMax(), h.NBinX(), h.ID)
	}
	if err != nil {
		return err
	}

	xl, yl, xh, yh := poly.BoundingRect()
	for ix := 0; ix < h.NBinX(); ix++ {
		cx := h.GetX(ix)
		if cx < xl || cx > xh {
			continue
		}
		for iy := 0; iy < h.NBinY(); iy++ {
			cy := h.GetY(iy)
			if cy < yl || cy > yh {
				continue
			}
			if !poly.PointIn(cx, cy) {
				continue
			}
			idx := iy
			if !nonGateIsY {
				idx = ix
			}
			out.Set(idx, out.Get(idx)+h.Get(ix, iy))
		}
	}

	binFactor, stride := cfg.BinY, cfg.EveryY
	if !nonGateIsY {
		binFactor, stride = cfg.BinX, cfg.EveryX
	}
	out, err = applyBinFactor1D(out, binFactor)
	if err != nil {
		return err
	}

	n := out.NBinX()
	xs := make([]float64, n)
	counts := make([]int64, n)
	for i := 0; i < n; i++ {
		xs[i] = out.GetX(i)
		counts[i] = out.Get(i)
	}
	return writeSeries1D(w, xs, counts, poissonFloor(counts), stride, cfg.ZeroSup)
}

// runCropOrNoGate optionally crops to the gateX/gateY channel ranges, then
// rebins, then emits the full grid.
func runCropOrNoGate(w io.Writer, h *histogram.Histogram2D, cfg Configuration) error {
	if cfg.hasGateX() && cfg.hasGateY() {
		cropped, err := h.Crop(
			int(cfg.GateXLo.Int64), int(cfg.GateXHi.Int64),
			int(cfg.GateYLo.Int64), int(cfg.GateYHi.Int64))
		if err != nil {
			return err
		}
		h = cropped
	}

	h, err := applyBinFactor2D(h, cfg.BinX, cfg.BinY)
	if err != nil {
		return err
	}
	return writeGrid2D(w, h, cfg.EveryX, cfg.EveryY, cfg.ZeroSup)
}

func loadPolygonFromConfig(cfg Configuration, load func(path string, id int, hasID bool) (*polygon.Polygon, error)) (*polygon.Polygon, error) {
	if !cfg.hasPolygon() {
		return nil, fmt.Errorf("%w: no polygon configured", ErrBadConfig)
	}
	return load(cfg.PolygonPath.String, int(cfg.PolygonID.Int64), cfg.PolygonID.Valid)
}
