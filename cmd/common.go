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

// Package cmd implements hisview's command-line interface.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"
)

// Use these when interacting with fs and writing to terminal; lets tests
// substitute an in-memory filesystem and a buffer without touching the
// process's real stdout.
var defaultFs = afero.NewOsFs()
var defaultWriter io.Writer = os.Stdout

func getNullInt64(flags *pflag.FlagSet, key string) null.Int {
	v, err := flags.GetInt64(key)
	if err != nil {
		panic(err)
	}
	return null.NewInt(v, flags.Changed(key))
}

func getNullIntSlice(flags *pflag.FlagSet, key string) ([]int, bool) {
	v, err := flags.GetIntSlice(key)
	if err != nil {
		panic(err)
	}
	return v, flags.Changed(key)
}
