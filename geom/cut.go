package geom

// CutFragment is one piece of a polygon split by a cutting line, tagged with
// the side of the cut it lies on. Left is the side a counterclockwise 90°
// turn of the cut vector points into.
type CutFragment struct {
	Polygon   Polygon
	LeftOfCut bool
}

// CutPolygon splits a polygon by the infinite extension of the cutting line
// and returns the surviving fragments, one per side that is non-degenerate.
// Corners exactly on the cut line belong to both sides.
func CutPolygon(p Polygon, cut Line) []CutFragment {
	var fragments []CutFragment
	for _, left := range []bool{true, false} {
		clipped := clipHalfPlane(p, cut, left)
		if len(clipped.Corners) >= 3 && clipped.Area() > 0 {
			fragments = append(fragments, CutFragment{Polygon: clipped, LeftOfCut: left})
		}
	}
	return fragments
}

// clipHalfPlane keeps the part of the polygon on one side of the cut line
// (Sutherland-Hodgman against a single half-plane).
func clipHalfPlane(p Polygon, cut Line, keepLeft bool) Polygon {
	cv := cut.Vector()
	side := func(v Vec2) float64 {
		s := cv.Cross(v.Sub(cut.Start))
		if keepLeft {
			return s
		}
		return -s
	}

	var out []Vec2
	push := func(v Vec2) {
		if len(out) > 0 && out[len(out)-1] == v {
			return
		}
		out = append(out, v)
	}

	for i, cur := range p.Corners {
		next := p.Corners[(i+1)%len(p.Corners)]
		sCur, sNext := side(cur), side(next)
		if sCur >= 0 {
			push(cur)
		}
		if sCur*sNext < 0 {
			x, ok := IntersectLL(Line{Start: cur, End: next}, cut)
			if ok {
				push(x.Point)
			}
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return Polygon{Corners: out}
}
