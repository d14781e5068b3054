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

package polygon

import "errors"

// ErrMalformed means a polygon has fewer than three vertices, an id was
// requested that the file doesn't contain, or the file could not be parsed.
var ErrMalformed = errors.New("malformed polygon")
