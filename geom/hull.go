package geom

import (
	"sort"
)

// ConvexHull computes the convex hull of the given points with Andrew's
// monotone chain algorithm: sort the points lexicographically, build the
// lower and upper chains with a cross-product turn test, then stitch the two
// chains together. Collinear points on the hull boundary are dropped (the
// turn test pops on non-strict inequality). The result is positively
// oriented.
//
// Fewer than three points come back as-is in sorted order, and an
// all-collinear set collapses to its two extreme points. Either way the
// result is a degenerate polygon that fails Validate; callers that need a
// real polygon must check.
func ConvexHull(points []Vec2) Polygon {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	if len(pts) < 3 {
		return Polygon{Corners: pts}
	}

	buildChain := func(ordered []Vec2) []Vec2 {
		var chain []Vec2
		for _, p := range ordered {
			for len(chain) >= 2 {
				a, b := chain[len(chain)-2], chain[len(chain)-1]
				if b.Sub(a).Cross(p.Sub(b)) > 0 {
					break
				}
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}

	lower := buildChain(pts)

	reversed := make([]Vec2, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	upper := buildChain(reversed)

	// Each chain ends where the other starts; drop the duplicated endpoints.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	result := Polygon{Corners: hull}
	if PolygonOrientation(result) == NegativeOrientation {
		result = result.Reverse()
	}
	return result
}
