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

// Package polygon implements the 2D gate: an immutable vertex list, its
// bounding rectangle, and a point-in-polygon test.
package polygon

import "fmt"

// Point is a single (x, y) vertex.
type Point struct {
	X, Y float64
}

// Polygon is an immutable ordered sequence of vertices (closed implicitly:
// the last vertex connects back to the first), with a bounding rectangle
// computed once and cached.
type Polygon struct {
	vertices []Point

	haveRect bool
	xlow, ylow, xhigh, yhigh float64
}

// New validates and wraps a vertex list. At least three vertices are
// required.
func New(vertices []Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 vertices, got %d", ErrMalformed, len(vertices))
	}
	out := make([]Point, len(vertices))
	copy(out, vertices)
	return &Polygon{vertices: out}, nil
}

// Vertices returns a copy of the polygon's vertex list.
func (p *Polygon) Vertices() []Point {
	out := make([]Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// BoundingRect returns the axis-aligned bounding box, computing and caching
// it on first call.
func (p *Polygon) BoundingRect() (xlow, ylow, xhigh, yhigh float64) {
	if !p.haveRect {
		p.xlow, p.xhigh = p.vertices[0].X, p.vertices[0].X
		p.ylow, p.yhigh = p.vertices[0].Y, p.vertices[0].Y
		for _, v := range p.vertices[1:] {
			if v.X < p.xlow {
				p.xlow = v.X
			}
			if v.X > p.xhigh {
				p.xhigh = v.X
			}
			if v.Y < p.ylow {
				p.ylow = v.Y
			}
			if v.Y > p.yhigh {
				p.yhigh = v.Y
			}
		}
		p.haveRect = true
	}
	return p.xlow, p.ylow, p.xhigh, p.yhigh
}

// PointIn reports whether (x, y) lies inside the polygon, using the
// crossing-number rule with a half-open edge convention: a point exactly on
// a "north" (upper) edge counts inside, on a "south" (lower) edge counts
// outside. This makes tiling the plane with adjoining, non-overlapping
// polygons assign every point to exactly one of them. Stable under rotation
// of the vertex list.
func (p *Polygon) PointIn(x, y float64) bool {
	inside := false
	n := len(p.vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := p.vertices[i], p.vertices[j]
		if (vi.Y < y) != (vj.Y < y) {
			xIntersect := (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if x < xIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
