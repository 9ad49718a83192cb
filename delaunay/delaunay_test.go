package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspired-consulting/planar/geom"
)

func box100() geom.BoundingBox {
	return geom.BoundingBox{Min: geom.V(0, 0), Max: geom.V(100, 100)}
}

func TestNewTriangle(t *testing.T) {
	a, b, c := geom.V(0, 0), geom.V(10, 0), geom.V(0, 10)
	canonical := NewTriangle(a, b, c)

	// All corner orderings collapse to the same value.
	for _, perm := range [][3]geom.Vec2{
		{a, b, c}, {b, c, a}, {c, a, b},
		{a, c, b}, {c, b, a}, {b, a, c},
	} {
		assert.Equal(t, canonical, NewTriangle(perm[0], perm[1], perm[2]))
	}

	// Canonical form is counterclockwise with the smallest corner first.
	assert.Equal(t, a, canonical.A)
	assert.True(t, canonical.B.Sub(canonical.A).Cross(canonical.C.Sub(canonical.A)) > 0)
	assert.True(t, canonical.HasCorner(b))
	assert.False(t, canonical.HasCorner(geom.V(5, 5)))
}

func TestCircumcircle(t *testing.T) {
	tri := NewTriangle(geom.V(0, 0), geom.V(4, 0), geom.V(0, 3))
	circle := Circumcircle(tri)

	assert.InDelta(t, 2, circle.Center.X, 1e-9)
	assert.InDelta(t, 1.5, circle.Center.Y, 1e-9)
	assert.InDelta(t, 2.5, float64(circle.Radius), 1e-9)

	// All three corners lie on the circle, and the boundary counts as inside.
	for _, corner := range tri.Corners() {
		assert.True(t, circle.Contains(corner))
	}
	assert.True(t, circle.Contains(circle.Center))
	assert.False(t, circle.Contains(geom.V(10, 10)))
}

func TestNewTriangulation(t *testing.T) {
	mesh := NewTriangulation(box100())

	assert.Equal(t, box100(), mesh.Bounds())
	require.Len(t, mesh.Triangles(), 2)

	// The two seed triangles are artifacts and do not export.
	assert.Empty(t, mesh.Polygons())

	var total geom.Area
	for _, tri := range mesh.Triangles() {
		total = total.Add(tri.Polygon().Area())
	}
	assert.InDelta(t, 10000, float64(total), 1e-9)
}

func TestInsertPointDoesNotMutate(t *testing.T) {
	mesh := NewTriangulation(box100())
	mesh.InsertPoint(geom.V(50, 50))

	assert.Len(t, mesh.Triangles(), 2)
	assert.Empty(t, mesh.Polygons())
}

func TestInsertCenterPoint(t *testing.T) {
	mesh := NewTriangulation(box100()).InsertPoint(geom.V(50, 50))

	// The center sits inside both seed circumcircles, so the whole mesh is
	// rebuilt into one fan around it.
	triangles := mesh.Triangles()
	require.Len(t, triangles, 4)

	polygons := mesh.Polygons()
	require.Len(t, polygons, 4, "rebuilt triangles are not artifacts")

	var total geom.Area
	for _, tri := range triangles {
		assert.True(t, tri.HasCorner(geom.V(50, 50)))
		total = total.Add(tri.Polygon().Area())
	}
	assert.InDelta(t, 10000, float64(total), 1e-9)
}

func TestInsertExistingVertexIsANoop(t *testing.T) {
	once := NewTriangulation(box100()).InsertPoint(geom.V(50, 50))
	twice := once.InsertPoint(geom.V(50, 50))

	assert.Equal(t, once.Triangles(), twice.Triangles())
	assert.Equal(t, once.Polygons(), twice.Polygons())
}

func TestInsertBoxCornersRemovesArtifactStatus(t *testing.T) {
	box := geom.BoundingBox{Min: geom.V(0, 0), Max: geom.V(10, 10)}
	mesh := NewTriangulation(box)
	for _, corner := range box.Corners() {
		mesh = mesh.InsertPoint(corner)
	}

	// The seed triangles were torn down and rebuilt from inserted points, so
	// the mesh exports them even though they still cover the bare box.
	polygons := mesh.Polygons()
	require.Len(t, polygons, 2)
	var total geom.Area
	for _, p := range polygons {
		assert.Equal(t, geom.Area(50), p.Area())
		total = total.Add(p.Area())
	}
	assert.Equal(t, geom.Area(100), total)
}

func TestInsertPointOutsideBoundsPanics(t *testing.T) {
	mesh := NewTriangulation(box100())
	assert.Panics(t, func() { mesh.InsertPoint(geom.V(150, 50)) })

	// The panic value converts to a regular error at the API boundary.
	err := func() (err error) {
		defer func() {
			err = HandleGeometryPanicRecover(recover())
		}()
		mesh.InsertPoint(geom.V(-1, -1))
		return nil
	}()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the triangulation bounds")
}

func meshPoints() []geom.Vec2 {
	return []geom.Vec2{
		geom.V(20, 30), geom.V(70, 20), geom.V(40, 80),
		geom.V(80, 70), geom.V(30, 60), geom.V(55, 45),
	}
}

func TestDelaunayProperty(t *testing.T) {
	mesh := NewTriangulation(box100())
	for _, p := range meshPoints() {
		mesh = mesh.InsertPoint(p)
	}

	// No mesh vertex lies strictly inside any circumcircle.
	vertices := make(map[geom.Vec2]struct{})
	for _, tri := range mesh.Triangles() {
		for _, corner := range tri.Corners() {
			vertices[corner] = struct{}{}
		}
	}
	for tri, circle := range mesh.Circumcircles() {
		for vertex := range vertices {
			if tri.HasCorner(vertex) {
				continue
			}
			dist := float64(vertex.Sub(circle.Center).Norm())
			assert.GreaterOrEqual(t, dist, float64(circle.Radius)-1e-6,
				"vertex %s lies inside the circumcircle of %s", vertex, tri)
		}
	}
}

func TestMeshConsistency(t *testing.T) {
	mesh := NewTriangulation(box100())
	for _, p := range meshPoints() {
		mesh = mesh.InsertPoint(p)
	}

	// The triangles tile the box: their areas sum to the box area, and every
	// undirected edge is shared by at most two triangles, exactly one on the
	// box outline.
	var total geom.Area
	edgeCount := make(map[[2]geom.Vec2]int)
	for _, tri := range mesh.Triangles() {
		total = total.Add(tri.Polygon().Area())
		for _, e := range tri.Edges() {
			key := [2]geom.Vec2{e.Start, e.End}
			if e.End.Less(e.Start) {
				key = [2]geom.Vec2{e.End, e.Start}
			}
			edgeCount[key]++
		}
	}
	assert.InDelta(t, 10000, float64(total), 1e-6)
	for edge, count := range edgeCount {
		assert.Contains(t, []int{1, 2}, count, "edge %s-%s", edge[0], edge[1])
	}

	// Every inserted point survived as a mesh vertex.
	for _, p := range meshPoints() {
		found := false
		for _, tri := range mesh.Triangles() {
			if tri.HasCorner(p) {
				found = true
				break
			}
		}
		assert.True(t, found, "point %s is missing from the mesh", p)
	}
}
