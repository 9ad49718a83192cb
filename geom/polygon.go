package geom

import (
	"fmt"
	"strings"
)

// Polygon is an ordered, cyclic sequence of at least three corners. The
// closing edge from the last corner back to the first is implicit; the first
// corner is never duplicated at the end.
//
// The type itself does not enforce its invariants; use Validate to check a
// polygon coming from untrusted input.
type Polygon struct {
	Corners []Vec2
}

// Edges returns the polygon's edges, including the implicit closing edge.
func (p Polygon) Edges() []Line {
	edges := make([]Line, 0, len(p.Corners))
	for i, c := range p.Corners {
		next := p.Corners[(i+1)%len(p.Corners)]
		edges = append(edges, Line{Start: c, End: next})
	}
	return edges
}

// SignedArea is the shoelace formula: positive for counterclockwise corner
// order, negative for clockwise.
func (p Polygon) SignedArea() Area {
	var sum float64
	for i, c := range p.Corners {
		next := p.Corners[(i+1)%len(p.Corners)]
		sum += c.Cross(next)
	}
	return Area(sum / 2)
}

// Area is the absolute area of the polygon.
func (p Polygon) Area() Area {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// Orientation is the winding direction of a polygon's corners.
type Orientation int

const (
	// PositiveOrientation means counterclockwise (non-negative signed area).
	PositiveOrientation Orientation = iota
	// NegativeOrientation means clockwise.
	NegativeOrientation
)

func (o Orientation) String() string {
	if o == PositiveOrientation {
		return "positive"
	}
	return "negative"
}

// PolygonOrientation returns the winding direction of the polygon. A polygon
// with zero signed area counts as positively oriented.
func PolygonOrientation(p Polygon) Orientation {
	if p.SignedArea() >= 0 {
		return PositiveOrientation
	}
	return NegativeOrientation
}

// Reverse returns the polygon with its corner order flipped, negating its
// orientation.
func (p Polygon) Reverse() Polygon {
	reversed := make([]Vec2, len(p.Corners))
	for i, c := range p.Corners {
		reversed[len(p.Corners)-1-i] = c
	}
	return Polygon{Corners: reversed}
}

// EqualUpToRotation reports whether the two polygons have the same corners in
// the same cyclic order, i.e. one corner list is a rotation of the other.
func (p Polygon) EqualUpToRotation(other Polygon) bool {
	if len(p.Corners) != len(other.Corners) {
		return false
	}
	n := len(p.Corners)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if p.Corners[i] != other.Corners[(i+shift)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (p Polygon) String() string {
	parts := make([]string, len(p.Corners))
	for i, c := range p.Corners {
		parts[i] = c.String()
	}
	return "Polygon[" + strings.Join(parts, " ") + "]"
}

// TooFewCornersError reports a polygon with fewer than three corners.
type TooFewCornersError int

func (e TooFewCornersError) Error() string {
	return fmt.Sprintf("polygon has %d corners, need at least 3", int(e))
}

// DuplicateCornersError reports the corner values that occur more than once.
type DuplicateCornersError []Vec2

func (e DuplicateCornersError) Error() string {
	parts := make([]string, len(e))
	for i, p := range e {
		parts[i] = p.String()
	}
	return "polygon has duplicate corners: " + strings.Join(parts, ", ")
}

// SelfIntersectionError reports the pairs of non-adjacent edges that cross.
type SelfIntersectionError [][2]Line

func (e SelfIntersectionError) Error() string {
	parts := make([]string, len(e))
	for i, pair := range e {
		parts[i] = fmt.Sprintf("%s crosses %s", pair[0], pair[1])
	}
	return "polygon self-intersects: " + strings.Join(parts, "; ")
}

// Validate checks the polygon invariants in order: at least three corners,
// no duplicate corners, no crossing between non-adjacent edges. Adjacent
// edges share an endpoint by construction and are exempt from the crossing
// check. The returned error is data for the caller to branch on, not an
// internal failure.
func (p Polygon) Validate() error {
	if len(p.Corners) < 3 {
		return TooFewCornersError(len(p.Corners))
	}

	seen := make(map[Vec2]int, len(p.Corners))
	var duplicates []Vec2
	for _, c := range p.Corners {
		seen[c]++
		if seen[c] == 2 {
			duplicates = append(duplicates, c)
		}
	}
	if len(duplicates) > 0 {
		return DuplicateCornersError(duplicates)
	}

	edges := p.Edges()
	var crossings [][2]Line
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			// Adjacent edges (cyclically) share an endpoint.
			if j == i+1 || (i == 0 && j == len(edges)-1) {
				continue
			}
			x, ok := IntersectLL(edges[i], edges[j])
			if ok && x.Kind == IntersectionReal {
				crossings = append(crossings, [2]Line{edges[i], edges[j]})
			}
		}
	}
	if len(crossings) > 0 {
		return SelfIntersectionError(crossings)
	}
	return nil
}

// CountEdgeTraversals casts a ray from a point outside the polygon's bounding
// extent to q and counts how many polygon edges it really crosses. The ray
// start is offset to (minX-1, q.Y-1) to make exactly grazing a corner
// unlikely.
func (p Polygon) CountEdgeTraversals(q Vec2) int {
	box := BoundingBoxOf(p.Corners...)
	ray := Line{Start: Vec2{X: box.Min.X - 1, Y: q.Y - 1}, End: q}
	count := 0
	for _, edge := range p.Edges() {
		x, ok := IntersectLL(ray, edge)
		if ok && x.Kind == IntersectionReal {
			count++
		}
	}
	return count
}

// ContainsPoint reports whether q lies inside the polygon, by the even-odd
// rule over CountEdgeTraversals.
func (p Polygon) ContainsPoint(q Vec2) bool {
	return p.CountEdgeTraversals(q)%2 == 1
}
