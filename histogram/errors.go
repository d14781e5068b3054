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

import "errors"

var (
	// ErrShapeMismatch means an arithmetic operation was attempted between
	// histograms whose axis extents or bin counts differ.
	ErrShapeMismatch = errors.New("histogram shape mismatch")
	// ErrBadRebin means a requested new shape (axis extents or bin count) is
	// invalid, or the data supplied to SetDataRaw doesn't match bin count.
	ErrBadRebin = errors.New("invalid histogram shape")
)
