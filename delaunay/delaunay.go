// Package delaunay builds Delaunay triangulations incrementally with the
// Bowyer-Watson algorithm over a bounded region, and derives the dual
// bounded Voronoi diagram from a finished triangulation.
//
// A Triangulation is an immutable value: InsertPoint returns a new
// Triangulation and never mutates the receiver, so snapshots can be read
// (exported, Voronoi-extracted) from parallel goroutines without
// coordination.
package delaunay

import (
	"sort"

	"github.com/inspired-consulting/planar/geom"
)

// Triangulation is a Delaunay mesh over a bounding box: the set of triangles
// with their precomputed circumcircles, the box that seeded the mesh, and the
// seed triangles still alive so exports can recognize initialization
// artifacts. An artifact stops being one the moment an insertion tears it
// down, even if a later cavity rebuild produces the same triangle again.
type Triangulation struct {
	triangles map[Triangle]Circle
	bounds    geom.BoundingBox
	artifacts map[Triangle]struct{}
}

// NewTriangulation seeds a mesh over the bounding box by splitting it along
// the Min-Max diagonal into two counterclockwise triangles.
func NewTriangulation(box geom.BoundingBox) Triangulation {
	corners := box.Corners()
	lower := NewTriangle(corners[0], corners[1], corners[2])
	upper := NewTriangle(corners[0], corners[2], corners[3])
	return Triangulation{
		triangles: map[Triangle]Circle{
			lower: Circumcircle(lower),
			upper: Circumcircle(upper),
		},
		bounds: box,
		artifacts: map[Triangle]struct{}{
			lower: {},
			upper: {},
		},
	}
}

// Bounds returns the bounding box the mesh was seeded with.
func (t Triangulation) Bounds() geom.BoundingBox {
	return t.bounds
}

// InsertPoint adds one point to the mesh and returns the resulting
// triangulation. The point must lie within the seeding bounding box; all
// Delaunay input has to be validated against the same region the mesh was
// seeded with, so an outside point is a caller bug and panics with a
// GeometryError (recoverable through HandleGeometryPanicRecover).
//
// Re-inserting a point that is already a mesh vertex leaves the mesh
// unchanged.
func (t Triangulation) InsertPoint(p geom.Vec2) Triangulation {
	if !t.bounds.Contains(p) {
		fatalf("point %s lies outside the triangulation bounds %s-%s", p, t.bounds.Min, t.bounds.Max)
	}

	// Split the mesh into triangles whose circumcircle contains the new
	// point (the cavity to rebuild) and triangles kept verbatim. Torn-down
	// seed triangles lose their artifact status for good.
	next := make(map[Triangle]Circle, len(t.triangles)+2)
	artifacts := make(map[Triangle]struct{}, len(t.artifacts))
	edges := make(edgeSet)
	for tri, circle := range t.triangles {
		if circle.Contains(p) {
			for _, e := range tri.Edges() {
				edges.insert(e)
			}
		} else {
			next[tri] = circle
			if _, ok := t.artifacts[tri]; ok {
				artifacts[tri] = struct{}{}
			}
		}
	}

	// The surviving directed edges form the cavity boundary. Walking it
	// gives a single simple polygon; every boundary edge spans a new
	// triangle with the inserted point. Edges incident to the point itself
	// would only produce degenerate slivers (they occur exactly when p is
	// already a vertex) and are skipped.
	for _, e := range edges.boundary() {
		if e.Start == p || e.End == p {
			continue
		}
		tri := NewTriangle(e.Start, e.End, p)
		next[tri] = Circumcircle(tri)
	}

	return Triangulation{triangles: next, bounds: t.bounds, artifacts: artifacts}
}

// Triangles returns all mesh triangles, including seeding artifacts, sorted
// for deterministic output.
func (t Triangulation) Triangles() []Triangle {
	all := make([]Triangle, 0, len(t.triangles))
	for tri := range t.triangles {
		all = append(all, tri)
	}
	sortTriangles(all)
	return all
}

// Circumcircles returns the triangle-circumcircle pairing of the mesh.
func (t Triangulation) Circumcircles() map[Triangle]Circle {
	pairs := make(map[Triangle]Circle, len(t.triangles))
	for tri, circle := range t.triangles {
		pairs[tri] = circle
	}
	return pairs
}

// Polygons exports every triangle as a three-corner polygon, excluding
// artifacts of initialization: the seed triangles that are still in the mesh
// untouched since seeding. Triangles produced by insertions are real members
// of the triangulation even when they touch the bounding box.
func (t Triangulation) Polygons() []geom.Polygon {
	polygons := make([]geom.Polygon, 0, len(t.triangles))
	for _, tri := range t.Triangles() {
		if _, isArtifact := t.artifacts[tri]; isArtifact {
			continue
		}
		polygons = append(polygons, tri.Polygon())
	}
	return polygons
}

func sortTriangles(ts []Triangle) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.A != b.A {
			return a.A.Less(b.A)
		}
		if a.B != b.B {
			return a.B.Less(b.B)
		}
		return a.C.Less(b.C)
	})
}

// edgeSet is a directed-edge adjacency map from tail vertex to head
// vertices. Inserting an edge whose opposite is already present cancels both
// occurrences: an edge shared by two cavity triangles appears once per
// triangle with opposite direction, so only the cavity boundary survives.
type edgeSet map[geom.Vec2]map[geom.Vec2]struct{}

func (s edgeSet) insert(e geom.Line) {
	if heads, ok := s[e.End]; ok {
		if _, ok := heads[e.Start]; ok {
			delete(heads, e.Start)
			if len(heads) == 0 {
				delete(s, e.End)
			}
			return
		}
	}
	heads, ok := s[e.Start]
	if !ok {
		heads = make(map[geom.Vec2]struct{})
		s[e.Start] = heads
	}
	heads[e.End] = struct{}{}
}

// boundary reconstructs the closed polygon formed by the surviving edges,
// starting from the minimum vertex and following each vertex's unique
// outgoing edge. A vertex with out-degree other than one means the cavity
// boundary branched, which only happens for degenerate (duplicate or broken)
// input configurations.
func (s edgeSet) boundary() []geom.Line {
	if len(s) == 0 {
		return nil
	}

	start := geom.Vec2{}
	first := true
	total := 0
	for tail, heads := range s {
		total += len(heads)
		if first || tail.Less(start) {
			start = tail
			first = false
		}
	}

	boundary := make([]geom.Line, 0, total)
	current := start
	for {
		heads := s[current]
		if len(heads) != 1 {
			internalf("cavity boundary branches at %s: out-degree %d, want 1", current, len(heads))
		}
		var next geom.Vec2
		for head := range heads {
			next = head
		}
		boundary = append(boundary, geom.Line{Start: current, End: next})
		current = next
		if current == start {
			break
		}
	}
	if len(boundary) != total {
		internalf("cavity boundary is disconnected: walked %d of %d edges", len(boundary), total)
	}
	return boundary
}
