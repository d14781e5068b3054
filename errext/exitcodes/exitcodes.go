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

// Package exitcodes defines the process exit codes hisview can return.
package exitcodes

// ExitCode is a process exit code, attached to an error via errext.WithExitCodeIfNone.
type ExitCode uint8

// GenericError is the only non-zero exit code hisview produces: any reported
// failure exits 1, success exits 0. The external contract pins the exit
// status to exactly {0, 1}, so there is nothing further to differentiate.
const GenericError ExitCode = 1
