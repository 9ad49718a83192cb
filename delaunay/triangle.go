package delaunay

import (
	"github.com/inspired-consulting/planar/geom"
)

// Triangle is a triangle in canonical form: corners in counterclockwise
// order, rotated so the lexicographically smallest corner comes first. Two
// triangles over the same three points are therefore equal as values, which
// makes Triangle usable as a map key for the mesh.
//
// NewTriangle is the only way canonical form is established; nothing else in
// the package reorders corners.
type Triangle struct {
	A, B, C geom.Vec2
}

// NewTriangle builds the canonical triangle over the three given corners,
// regardless of their order.
func NewTriangle(a, b, c geom.Vec2) Triangle {
	if b.Sub(a).Cross(c.Sub(a)) < 0 {
		b, c = c, b
	}
	// Rotate the cycle so the smallest corner is first. Rotation preserves
	// counterclockwise order.
	for i := 0; i < 2; i++ {
		if a.Less(b) && a.Less(c) {
			break
		}
		a, b, c = b, c, a
	}
	return Triangle{A: a, B: b, C: c}
}

// Corners returns the corners in counterclockwise order.
func (t Triangle) Corners() [3]geom.Vec2 {
	return [3]geom.Vec2{t.A, t.B, t.C}
}

// Edges returns the directed edges in counterclockwise order.
func (t Triangle) Edges() [3]geom.Line {
	return [3]geom.Line{
		{Start: t.A, End: t.B},
		{Start: t.B, End: t.C},
		{Start: t.C, End: t.A},
	}
}

// Polygon returns the triangle as a three-corner polygon.
func (t Triangle) Polygon() geom.Polygon {
	return geom.Polygon{Corners: []geom.Vec2{t.A, t.B, t.C}}
}

// HasCorner reports whether p is one of the triangle's corners.
func (t Triangle) HasCorner(p geom.Vec2) bool {
	return t.A == p || t.B == p || t.C == p
}

// Circle is a circle with a center and a non-negative radius. Circles are
// not built directly; they arise as circumcircles of mesh triangles.
type Circle struct {
	Center geom.Vec2
	Radius geom.Distance
}

// Contains reports whether p lies in the circle, boundary inclusive. The
// inclusive comparison is the tie-break for exactly cocircular points: they
// count as inside, so the triangles around them are rebuilt deterministically.
func (c Circle) Contains(p geom.Vec2) bool {
	return p.Sub(c.Center).Norm() <= c.Radius
}

// Circumcircle computes the circle through all three corners of the triangle
// by intersecting the perpendicular bisectors of two edges. A triangle with
// no circumcircle (parallel bisectors, i.e. collinear or coinciding corners)
// cannot occur in a well-formed mesh, so that case is an internal error.
func Circumcircle(t Triangle) Circle {
	edges := t.Edges()
	x, ok := geom.IntersectLL(
		edges[0].PerpendicularBisector(),
		edges[1].PerpendicularBisector(),
	)
	if !ok {
		internalf("triangle %s has no circumcircle, its corners must be collinear", t)
	}
	return Circle{
		Center: x.Point,
		Radius: t.A.Sub(x.Point).Norm(),
	}
}
