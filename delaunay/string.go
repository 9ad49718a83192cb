package delaunay

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/inspired-consulting/planar/dbg"
)

// Debug string forms. Coordinates alone are hard to tell apart when staring
// at a broken mesh, so triangles additionally carry a memoized readable name.

func (t Triangle) String() string {
	name := aurora.Cyan(dbg.Name(t)).String()
	return fmt.Sprintf("Triangle %s %s %s %s", name, t.A, t.B, t.C)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle around %s with radius %g", c.Center, float64(c.Radius))
}

func (t Triangulation) String() string {
	artifacts := len(t.artifacts)
	return fmt.Sprintf("Triangulation of %s-%s with %d triangles (%d seeding artifacts)",
		t.bounds.Min, t.bounds.Max, len(t.triangles), aurora.Yellow(artifacts))
}

func (c VoronoiCell) String() string {
	return fmt.Sprintf("VoronoiCell of %s with %d corners", c.Seed, len(c.Region.Corners))
}
