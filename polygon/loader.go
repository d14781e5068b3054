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

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// LoadFile reads a polygon file through fs: one or more polygons, each a
// block of whitespace-separated "x y" vertex lines, blocks separated by one
// or more blank lines. A line starting with '#' is a comment and ignored,
// except a comment of the exact form "# id <n>" tags the polygon that
// follows it with id n; a polygon without such a tag takes the previous
// polygon's id plus one (0 for the first), so a file with no tags numbers
// its polygons 0, 1, 2... in file order. hasID/id select one polygon out of a multi-polygon file;
// if hasID is false the file must contain exactly one polygon.
func LoadFile(fs afero.Fs, path string, id int, hasID bool) (*Polygon, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrMalformed, path, err)
	}
	defer f.Close()

	polys, err := parsePolygons(f)
	if err != nil {
		return nil, err
	}
	if !hasID {
		if len(polys) != 1 {
			return nil, fmt.Errorf("%w: %s has %d polygons, need an id to select one", ErrMalformed, path, len(polys))
		}
		return New(polys[0].verts)
	}
	for _, p := range polys {
		if p.id == id {
			return New(p.verts)
		}
	}
	return nil, fmt.Errorf("%w: %s has no polygon with id %d", ErrMalformed, path, id)
}

type taggedVerts struct {
	id    int
	verts []Point
}

func parsePolygons(r io.Reader) ([]taggedVerts, error) {
	scanner := bufio.NewScanner(r)

	var polys []taggedVerts
	var cur []Point
	nextID := 0
	haveTag := false
	tagID := 0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		id := nextID
		if haveTag {
			id = tagID
		}
		polys = append(polys, taggedVerts{id: id, verts: cur})
		cur = nil
		haveTag = false
		nextID = id + 1
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			fields := strings.Fields(strings.TrimPrefix(line, "#"))
			if len(fields) == 2 && fields[0] == "id" {
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: bad id tag %q", ErrMalformed, line)
				}
				tagID = n
				haveTag = true
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: expected \"x y\", got %q", ErrMalformed, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad x coordinate %q", ErrMalformed, fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad y coordinate %q", ErrMalformed, fields[1])
		}
		cur = append(cur, Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	flush()
	if len(polys) == 0 {
		return nil, fmt.Errorf("%w: no polygons found", ErrMalformed)
	}
	return polys, nil
}
