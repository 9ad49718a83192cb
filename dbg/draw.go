package dbg

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/inspired-consulting/planar/geom"
)

const drawPadding = 20

// DrawPolygons renders polygons to a PNG file, origin at the bottom left.
// With show set, the image is additionally written to stdout through imgcat
// for terminals that support it.
func DrawPolygons(path string, polygons []geom.Polygon, scale float64, show bool) error {
	box := geom.EmptyBoundingBox()
	for _, poly := range polygons {
		box = box.Union(geom.BoundingBoxOf(poly.Corners...))
	}
	if len(polygons) == 0 {
		return errors.New("nothing to draw")
	}

	width := int(scale*float64(box.Width())) + drawPadding*2
	height := int(scale*float64(box.Height())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then fit the
	// bounding box into the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-box.Min.X, -box.Min.Y)

	c.SetLineWidth(2)
	for _, poly := range polygons {
		if len(poly.Corners) == 0 {
			continue
		}
		c.MoveTo(poly.Corners[0].X, poly.Corners[0].Y)
		for _, p := range poly.Corners[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGBA(0, 0.5, 0, 0.4)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if show {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
