package geom

import (
	"github.com/pkg/errors"
)

// Transformation is an affine map of the plane, stored as the 2×3 matrix
//
//	⎛ A B C ⎞
//	⎝ D E F ⎠
//
// where (A B; D E) is the linear part and (C, F) the translation.
type Transformation struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{A: 1, E: 1}
}

// Translate returns the transformation moving every point by offset.
func Translate(offset Vec2) Transformation {
	return Transformation{A: 1, C: offset.X, E: 1, F: offset.Y}
}

// Rotate returns the counterclockwise rotation about the origin.
func Rotate(angle Angle) Transformation {
	sin, cos := angle.Sin(), angle.Cos()
	return Transformation{A: cos, B: -sin, D: sin, E: cos}
}

// ScaleXY returns the transformation scaling each axis independently about
// the origin.
func ScaleXY(sx, sy float64) Transformation {
	return Transformation{A: sx, E: sy}
}

// Scale returns the uniform scaling about the origin.
func Scale(s float64) Transformation {
	return ScaleXY(s, s)
}

// Compose combines two transformations in function-composition order:
// t.Compose(u).Apply(p) == t.Apply(u.Apply(p)).
func (t Transformation) Compose(u Transformation) Transformation {
	return Transformation{
		A: t.A*u.A + t.B*u.D,
		B: t.A*u.B + t.B*u.E,
		C: t.A*u.C + t.B*u.F + t.C,
		D: t.D*u.A + t.E*u.D,
		E: t.D*u.B + t.E*u.E,
		F: t.D*u.C + t.E*u.F + t.F,
	}
}

// Apply transforms a point.
func (t Transformation) Apply(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Inverse returns the inverse transformation. It fails when the linear part
// is singular (zero determinant), e.g. a zero scale.
func (t Transformation) Inverse() (Transformation, error) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return Transformation{}, errors.Errorf("transformation %+v is singular and cannot be inverted", t)
	}
	inv := Transformation{
		A: t.E / det,
		B: -t.B / det,
		D: -t.D / det,
		E: t.A / det,
	}
	inv.C = -(inv.A*t.C + inv.B*t.F)
	inv.F = -(inv.D*t.C + inv.E*t.F)
	return inv, nil
}

// RotateAround rotates counterclockwise about the pivot point.
func RotateAround(pivot Vec2, angle Angle) Transformation {
	return Translate(pivot).Compose(Rotate(angle)).Compose(Translate(pivot.Neg()))
}

// ScaleAround scales each axis about the pivot point.
func ScaleAround(pivot Vec2, sx, sy float64) Transformation {
	return Translate(pivot).Compose(ScaleXY(sx, sy)).Compose(Translate(pivot.Neg()))
}

// MirrorAlong reflects across the infinite line through the given axis.
func MirrorAlong(axis Line) Transformation {
	angle := axis.Angle()
	flipX := ScaleXY(1, -1)
	atOrigin := Rotate(angle).Compose(flipX).Compose(Rotate(angle.Neg()))
	return Translate(axis.Start).Compose(atOrigin).Compose(Translate(axis.Start.Neg()))
}
