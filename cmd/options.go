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

package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"

	"github.com/drr-tools/hisview/engine"
)

// optionFlagSet declares every command-line option hisview accepts.
func optionFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Int64("id", 0, "select histogram by `id`")
	flags.Bool("list", false, "list every histogram id and its dimensionality")
	flags.Bool("list-empty", false, "like --list, annotated with whether every bin is zero")
	flags.Bool("info", false, "emit the selected histogram's header fields and exit")
	flags.IntSlice("gate-x", nil, "channel-range gate on X, as `lo,hi`")
	flags.IntSlice("gate-y", nil, "channel-range gate on Y, as `lo,hi`")
	flags.IntSlice("bg-range", nil, "background gate(s) to subtract, as `lo,hi[,lo2,hi2]`")
	flags.Bool("sbg", false, "use a split background (entries 2 and 3 of --bg-range)")
	flags.String("polygon", "", "polygon-gate file, as `path[,id]`")
	flags.IntSlice("bin", []int{1, 1}, "integer rebin factors, as `bx,by`")
	flags.IntSlice("every", []int{1, 1}, "output stride per axis, as `sx,sy`")
	flags.Bool("zero-sup", false, "suppress zero-count rows")
	return flags
}

// getOptions turns a parsed flag set into an engine.Configuration, failing
// closed on any option given a disallowed shape (a channel-range flag with
// fewer than two values, --sbg without enough --bg-range entries, a
// --polygon id with no path).
func getOptions(flags *pflag.FlagSet) (engine.Configuration, error) {
	cfg := engine.Configuration{
		ID: getNullInt64(flags, "id"),
	}

	var err error
	if cfg.List, err = flags.GetBool("list"); err != nil {
		return cfg, err
	}
	if cfg.ListEmpty, err = flags.GetBool("list-empty"); err != nil {
		return cfg, err
	}
	if cfg.Info, err = flags.GetBool("info"); err != nil {
		return cfg, err
	}
	if cfg.ZeroSup, err = flags.GetBool("zero-sup"); err != nil {
		return cfg, err
	}

	if cfg.GateXLo, cfg.GateXHi, err = getChannelRange(flags, "gate-x"); err != nil {
		return cfg, err
	}
	if cfg.GateYLo, cfg.GateYHi, err = getChannelRange(flags, "gate-y"); err != nil {
		return cfg, err
	}

	bg, bgSet := getNullIntSlice(flags, "bg-range")
	if bgSet {
		if len(bg) < 2 {
			return cfg, errors.Errorf("--bg-range needs at least lo,hi, got %d values", len(bg))
		}
		cfg.BgLo, cfg.BgHi = null.IntFrom(int64(bg[0])), null.IntFrom(int64(bg[1]))
	}
	sbg, err := flags.GetBool("sbg")
	if err != nil {
		return cfg, err
	}
	if sbg {
		if len(bg) < 4 {
			return cfg, errors.New("--sbg requires --bg-range to supply lo,hi,lo2,hi2")
		}
		cfg.SBgLo, cfg.SBgHi = null.IntFrom(int64(bg[2])), null.IntFrom(int64(bg[3]))
	}

	polygon, err := flags.GetString("polygon")
	if err != nil {
		return cfg, err
	}
	if flags.Changed("polygon") {
		path, id, hasID, perr := parsePolygonOption(polygon)
		if perr != nil {
			return cfg, errors.Wrap(perr, "polygon")
		}
		cfg.PolygonPath = null.StringFrom(path)
		if hasID {
			cfg.PolygonID = null.IntFrom(int64(id))
		}
	}

	bin, err := flags.GetIntSlice("bin")
	if err != nil {
		return cfg, err
	}
	if len(bin) < 2 {
		return cfg, errors.Errorf("--bin needs bx,by, got %d values", len(bin))
	}
	cfg.BinX, cfg.BinY = bin[0], bin[1]

	every, err := flags.GetIntSlice("every")
	if err != nil {
		return cfg, err
	}
	if len(every) < 2 {
		return cfg, errors.Errorf("--every needs sx,sy, got %d values", len(every))
	}
	cfg.EveryX, cfg.EveryY = every[0], every[1]

	return cfg, nil
}

func getChannelRange(flags *pflag.FlagSet, key string) (lo, hi null.Int, err error) {
	vals, set := getNullIntSlice(flags, key)
	if !set {
		return lo, hi, nil
	}
	if len(vals) < 2 {
		return lo, hi, errors.Errorf("--%s needs lo,hi, got %d values", key, len(vals))
	}
	return null.IntFrom(int64(vals[0])), null.IntFrom(int64(vals[1])), nil
}

// parsePolygonOption splits "path[,id]" into its path and optional integer id.
func parsePolygonOption(s string) (path string, id int, hasID bool, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) == 1 {
		return parts[0], 0, false, nil
	}
	if parts[0] == "" {
		return "", 0, false, errors.Errorf("polygon id %q given without a path", parts[1])
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, false, errors.Wrapf(err, "bad polygon id %q", parts[1])
	}
	return parts[0], n, true, nil
}
