package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	planar "github.com/inspired-consulting/planar"
	"github.com/inspired-consulting/planar/dbg"
	"github.com/inspired-consulting/planar/geom"
)

// Demo of the triangulation kernel. Input on stdin should be newline
// separated points in the form "x y". The points are triangulated over their
// padded bounding box and the resulting triangles (or Voronoi cells) are
// rendered to a PNG.

var (
	out   = kingpin.Flag("out", "PNG output path.").Default("/tmp/voronoi.png").String()
	cells = kingpin.Flag("cells", "Draw Voronoi cells instead of Delaunay triangles.").Bool()
	scale = kingpin.Flag("scale", "Pixels per input unit.").Default("1.0").Float64()
	show  = kingpin.Flag("show", "Also print the image to the terminal via imgcat.").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	if len(points) < 1 {
		log.Fatal("no points on stdin")
	}

	// Pad the box so no input point coincides with a seeding corner; corner
	// vertices get no Voronoi cell.
	box := geom.BoundingBoxOf(points...)
	grow := geom.ScaleAround(box.Center(), 1.2, 1.2)
	box = geom.BoundingBox{Min: grow.Apply(box.Min), Max: grow.Apply(box.Max)}

	triangulation, err := planar.Triangulate(box, points...)
	if err != nil {
		log.Fatalf("triangulating %d points: %v", len(points), err)
	}

	var polygons []geom.Polygon
	if *cells {
		for _, cell := range triangulation.VoronoiCells() {
			polygons = append(polygons, cell.Region)
		}
	} else {
		polygons = triangulation.Polygons()
	}
	fmt.Printf("Read %d points, drawing %d polygons\n", len(points), len(polygons))

	if err := dbg.DrawPolygons(*out, polygons, *scale, *show); err != nil {
		log.Fatal(err)
	}
}

func readPoints(in *os.File) []geom.Vec2 {
	var points []geom.Vec2
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) geom.Vec2 {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return geom.V(x, y)
}
