package geom

import (
	"math"
)

// BoundingBox is an axis-aligned rectangle given by its minimum and maximum
// corner. The zero value of interest is EmptyBoundingBox, the neutral element
// of Union, so boxes of empty point sets combine safely.
type BoundingBox struct {
	Min, Max Vec2
}

// EmptyBoundingBox returns the neutral element of Union: Min at +infinity,
// Max at -infinity. Union with any box returns the other box unchanged.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoundingBoxOf returns the smallest box containing all the given points.
func BoundingBoxOf(points ...Vec2) BoundingBox {
	box := EmptyBoundingBox()
	for _, p := range points {
		box = box.Union(BoundingBox{Min: p, Max: p})
	}
	return box
}

// Union returns the smallest box containing both boxes. It is commutative
// and associative with EmptyBoundingBox as neutral element.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Vec2{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: Vec2{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Contains reports whether the point lies in the box, boundary inclusive.
func (b BoundingBox) Contains(p Vec2) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

func (b BoundingBox) Width() Distance {
	return Distance(b.Max.X - b.Min.X)
}

func (b BoundingBox) Height() Distance {
	return Distance(b.Max.Y - b.Min.Y)
}

func (b BoundingBox) Area() Area {
	return Area(b.Width() * b.Height())
}

func (b BoundingBox) Center() Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the four corners in counterclockwise order starting at Min.
func (b BoundingBox) Corners() [4]Vec2 {
	return [4]Vec2{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
}

// Polygon returns the box outline as a counterclockwise polygon.
func (b BoundingBox) Polygon() Polygon {
	c := b.Corners()
	return Polygon{Corners: c[:]}
}

// AspectMode selects how FitBoundingBox maps one box onto another.
type AspectMode int

const (
	// KeepAspectRatio scales both axes uniformly by the smaller of the two
	// axis factors and centers the result in the target box.
	KeepAspectRatio AspectMode = iota
	// IgnoreAspectRatio stretches each axis independently.
	IgnoreAspectRatio
)

// FitBoundingBox returns the transformation mapping the source box onto the
// target box according to the aspect mode.
func FitBoundingBox(source, target BoundingBox, mode AspectMode) Transformation {
	scaleX := float64(target.Width()) / float64(source.Width())
	scaleY := float64(target.Height()) / float64(source.Height())
	if mode == KeepAspectRatio {
		s := math.Min(scaleX, scaleY)
		scaleX, scaleY = s, s
	}
	// Scale about the source center, then move the source center onto the
	// target center.
	recenter := Translate(target.Center().Sub(source.Center()))
	return recenter.Compose(ScaleAround(source.Center(), scaleX, scaleY))
}
