// A planar computational geometry kernel for Go.
//
// This package is the convenience surface over two subpackages: geom, the
// primitive vector/line/polygon algebra, and delaunay, an incremental
// Bowyer-Watson triangulation engine with bounded Voronoi extraction.
//
// The kernel is purely functional: every operation maps immutable inputs to
// new values, so independent triangulations and reads of a frozen
// triangulation can run in parallel without coordination.
package planar

import (
	"github.com/inspired-consulting/planar/delaunay"
	"github.com/inspired-consulting/planar/geom"
)

type Vec2 = geom.Vec2
type Line = geom.Line
type Polygon = geom.Polygon
type BoundingBox = geom.BoundingBox
type Triangulation = delaunay.Triangulation
type VoronoiCell = delaunay.VoronoiCell

// Triangulate seeds a triangulation over the bounding box and inserts the
// given points one at a time.
//
// Every point must lie within the bounding box. Violations, as well as
// internal invariant failures caused by degenerate input (duplicate or
// exactly cocircular points beyond the built-in tie-break), are returned as
// errors here rather than panicking into the caller.
func Triangulate(box BoundingBox, points ...Vec2) (result Triangulation, err error) {
	defer func() {
		recoveredErr := delaunay.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = Triangulation{}
			err = recoveredErr
		}
	}()
	result = delaunay.NewTriangulation(box)
	for _, p := range points {
		result = result.InsertPoint(p)
	}
	return result, nil
}

// VoronoiDiagram triangulates the points over the bounding box and derives
// the bounded Voronoi cells, one per point. The same error conversion as in
// Triangulate applies.
func VoronoiDiagram(box BoundingBox, points ...Vec2) (cells []VoronoiCell, err error) {
	defer func() {
		recoveredErr := delaunay.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			cells = nil
			err = recoveredErr
		}
	}()
	triangulation, err := Triangulate(box, points...)
	if err != nil {
		return nil, err
	}
	return triangulation.VoronoiCells(), nil
}
