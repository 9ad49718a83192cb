package delaunay

import (
	"sort"

	"github.com/inspired-consulting/planar/geom"
)

// VoronoiCell is the bounded Voronoi region of one triangulation vertex,
// clipped to the triangulation's bounding box.
type VoronoiCell struct {
	Seed   geom.Vec2
	Region geom.Polygon
}

// VoronoiCells derives the dual Voronoi diagram of the triangulation. Every
// mesh vertex except the four bounding box corners gets a cell; the corners'
// regions are degenerate by construction and are omitted. The triangulation
// is only read, never modified, and the cells are plain values.
func (t Triangulation) VoronoiCells() []VoronoiCell {
	neighbors := make(map[geom.Vec2]map[geom.Vec2]struct{})
	link := func(a, b geom.Vec2) {
		set, ok := neighbors[a]
		if !ok {
			set = make(map[geom.Vec2]struct{})
			neighbors[a] = set
		}
		set[b] = struct{}{}
	}
	for tri := range t.triangles {
		corners := tri.Corners()
		for i, a := range corners {
			for j, b := range corners {
				if i != j {
					link(a, b)
				}
			}
		}
	}

	boxCorners := make(map[geom.Vec2]struct{}, 4)
	for _, c := range t.bounds.Corners() {
		boxCorners[c] = struct{}{}
	}

	seeds := make([]geom.Vec2, 0, len(neighbors))
	for vertex := range neighbors {
		if _, isCorner := boxCorners[vertex]; isCorner {
			continue
		}
		seeds = append(seeds, vertex)
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Less(seeds[j]) })

	cells := make([]VoronoiCell, 0, len(seeds))
	for _, seed := range seeds {
		cells = append(cells, t.voronoiCell(seed, neighbors[seed]))
	}
	return cells
}

func (t Triangulation) voronoiCell(seed geom.Vec2, neighborSet map[geom.Vec2]struct{}) VoronoiCell {
	rays := make([]geom.Line, 0, len(neighborSet))
	for neighbor := range neighborSet {
		rays = append(rays, geom.Line{Start: seed, End: neighbor})
	}
	sort.Slice(rays, func(i, j int) bool {
		return rays[i].Angle().Radians() < rays[j].Angle().Radians()
	})

	// One candidate cell vertex per cyclically consecutive ray pair: the
	// intersection of the two rays' perpendicular bisectors. Rays ending in
	// a bounding box corner are no different here - the corners are real
	// vertices of the seeded mesh, and their bisectors are exactly what
	// closes the cell boundary against the box instead of letting it run
	// off to infinity. Consecutive rays around a seed strictly inside the
	// box always span less than a half turn, so the bisectors cannot be
	// parallel; a seed exactly on the box boundary breaks that assumption
	// and is rejected as an internal error.
	raw := make([]geom.Vec2, 0, len(rays))
	for i := range rays {
		a, b := rays[i], rays[(i+1)%len(rays)]
		x, ok := geom.IntersectLL(a.PerpendicularBisector(), b.PerpendicularBisector())
		if !ok {
			internalf("voronoi vertex for seed %s: bisectors of %s and %s are parallel", seed, a, b)
		}
		raw = append(raw, x.Point)
	}

	// Clip the raw region with one half-plane cut per box edge. Exactly one
	// fragment of every cut still contains the seed; anything else means the
	// mesh fed to us was malformed.
	region := geom.Polygon{Corners: raw}
	for _, edge := range t.bounds.Polygon().Edges() {
		var kept []geom.Polygon
		for _, fragment := range geom.CutPolygon(region, edge) {
			if fragment.Polygon.ContainsPoint(seed) {
				kept = append(kept, fragment.Polygon)
			}
		}
		if len(kept) != 1 {
			internalf("clipping voronoi cell of %s against %s left %d fragments containing the seed, want 1", seed, edge, len(kept))
		}
		region = kept[0]
	}

	return VoronoiCell{Seed: seed, Region: region}
}
