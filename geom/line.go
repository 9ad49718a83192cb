package geom

import (
	"fmt"
	"iter"
	"math"
)

// Line is a directed segment from Start to End. Direction matters: reversing
// a line negates its vector and turns its angle by half a circle.
type Line struct {
	Start, End Vec2
}

// Vector returns End - Start.
func (l Line) Vector() Vec2 {
	return l.End.Sub(l.Start)
}

func (l Line) Angle() Angle {
	return l.Vector().Direction()
}

func (l Line) Length() Distance {
	return l.Vector().Norm()
}

func (l Line) Midpoint() Vec2 {
	return l.Start.Add(l.End).Mul(0.5)
}

func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

func (l Line) String() string {
	return fmt.Sprintf("%s--%s", l.Start, l.End)
}

// Resize rescales the line's length through f, anchored at Start.
func (l Line) Resize(f func(Distance) Distance) Line {
	return Line{
		Start: l.Start,
		End:   l.Start.Add(Polar(l.Angle(), f(l.Length()))),
	}
}

// ResizeSymmetric rescales the line's length through f, anchored at the
// midpoint so both ends move.
func (l Line) ResizeSymmetric(f func(Distance) Distance) Line {
	mid := l.Midpoint()
	half := f(l.Length()).Mul(0.5)
	offset := Polar(l.Angle(), half)
	return Line{Start: mid.Sub(offset), End: mid.Add(offset)}
}

// PerpendicularBisector returns the line of the same length as l, centered at
// l's midpoint and rotated 90° counterclockwise.
func (l Line) PerpendicularBisector() Line {
	rot := RotateAround(l.Midpoint(), Deg(90))
	return Line{Start: rot.Apply(l.Start), End: rot.Apply(l.End)}
}

// IntersectionKind classifies where the infinite-line intersection point lies
// relative to the two finite segments.
type IntersectionKind int

const (
	// IntersectionReal lies within both finite segments.
	IntersectionReal IntersectionKind = iota
	// IntersectionVirtualInsideLeft lies within the left segment but only on
	// the right line's infinite extension.
	IntersectionVirtualInsideLeft
	// IntersectionVirtualInsideRight lies within the right segment but only
	// on the left line's infinite extension.
	IntersectionVirtualInsideRight
	// IntersectionVirtual lies within neither finite segment.
	IntersectionVirtual
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectionReal:
		return "real"
	case IntersectionVirtualInsideLeft:
		return "virtual, inside left only"
	case IntersectionVirtualInsideRight:
		return "virtual, inside right only"
	default:
		return "virtual"
	}
}

// Intersection is the result of intersecting two lines.
type Intersection struct {
	Point Vec2
	Kind  IntersectionKind
}

// IntersectLL intersects the infinite extensions of two lines and classifies
// the result against both finite segments. Parallel and collinear lines
// report no intersection (ok = false); overlapping collinear segments are
// deliberately not detected as a special case.
func IntersectLL(left, right Line) (Intersection, bool) {
	lv := left.Vector()
	rv := right.Vector()
	det := lv.Cross(rv)
	if det == 0 {
		return Intersection{}, false
	}
	d := right.Start.Sub(left.Start)
	t := d.Cross(rv) / det
	u := d.Cross(lv) / det

	point := left.Start.Add(lv.Mul(t))
	insideLeft := 0 <= t && t <= 1
	insideRight := 0 <= u && u <= 1

	var kind IntersectionKind
	switch {
	case insideLeft && insideRight:
		kind = IntersectionReal
	case insideLeft:
		kind = IntersectionVirtualInsideLeft
	case insideRight:
		kind = IntersectionVirtualInsideRight
	default:
		kind = IntersectionVirtual
	}
	return Intersection{Point: point, Kind: kind}, true
}

// Reflect bounces a ray off a mirror line. The incidence point is the
// infinite-line intersection of ray and mirror; the outgoing ray is the
// incoming one mirrored across the normal of the mirror at that point, with
// its direction reversed so it travels away from the mirror. ok is false when
// the ray is parallel to the mirror.
func Reflect(ray, mirror Line) (reflected Line, incidence Vec2, ok bool) {
	x, ok := IntersectLL(ray, mirror)
	if !ok {
		return Line{}, Vec2{}, false
	}
	mv := mirror.Vector()
	normal := Line{
		Start: x.Point,
		End:   x.Point.Add(Vec2{X: -mv.Y, Y: mv.X}),
	}
	m := MirrorAlong(normal)
	reflected = Line{Start: m.Apply(ray.End), End: m.Apply(ray.Start)}
	return reflected, x.Point, true
}

// BillardProcess traces a ray bouncing between the given edges. It yields the
// successive collision points lazily; the sequence is infinite unless the ray
// escapes, in which case the ray's final endpoint is yielded last. The edge
// hit last is excluded from the next collision search so the ray cannot
// numerically re-capture itself on the edge it just left.
func BillardProcess(edges []Line, ray Line) iter.Seq[Vec2] {
	return func(yield func(Vec2) bool) {
		lastEdge := -1
		for {
			hitEdge := -1
			var hitPoint Vec2
			nearest := math.Inf(1)
			for i, edge := range edges {
				if i == lastEdge {
					continue
				}
				x, ok := IntersectLL(ray, edge)
				if !ok {
					continue
				}
				// The collision must lie on the edge segment and strictly
				// ahead of the ray.
				if x.Kind != IntersectionReal && x.Kind != IntersectionVirtualInsideRight {
					continue
				}
				if x.Point.Sub(ray.Start).Dot(ray.Vector()) <= 0 {
					continue
				}
				if dist := float64(x.Point.Sub(ray.Start).Norm()); dist < nearest {
					nearest = dist
					hitEdge = i
					hitPoint = x.Point
				}
			}
			if hitEdge < 0 {
				yield(ray.End)
				return
			}
			if !yield(hitPoint) {
				return
			}
			outgoing, _, ok := Reflect(Line{Start: ray.Start, End: hitPoint}, edges[hitEdge])
			if !ok {
				// Unreachable: a hit edge is never parallel to the ray.
				yield(ray.End)
				return
			}
			ray = outgoing
			lastEdge = hitEdge
		}
	}
}
