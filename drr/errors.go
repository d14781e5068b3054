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

package drr

import "errors"

// Sentinel error kinds a Reader can return, matched with errors.Is by callers
// (the cmd package attaches a hint and exit code to these before printing
// them).
var (
	// ErrUnknownID means the requested histogram id is not in the directory.
	ErrUnknownID = errors.New("unknown histogram id")
	// ErrBadHeader means a header failed its invariants, or the catalog
	// file's signature did not match.
	ErrBadHeader = errors.New("malformed directory header")
	// ErrShortRead means the data file ended before the bins a header
	// promised could be read in full.
	ErrShortRead = errors.New("data file truncated")
)
