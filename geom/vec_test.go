package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	assert.Equal(t, V(4, -2), a.Add(b))
	assert.Equal(t, V(-2, 6), a.Sub(b))
	assert.Equal(t, V(2, 4), a.Mul(2))
	assert.Equal(t, V(0.5, 1), a.Div(2))
	assert.Equal(t, V(-1, -2), a.Neg())

	// Vector space laws on a handful of values.
	assert.Equal(t, b.Add(a), a.Add(b), "addition commutes")
	assert.Equal(t, a, a.Add(Vec2{}), "zero is neutral")
	assert.Equal(t, Vec2{}, a.Add(a.Neg()), "negation inverts")
	assert.Equal(t, a.Mul(6), a.Mul(2).Mul(3), "scaling composes")
}

func TestVec2Products(t *testing.T) {
	assert.Equal(t, 11.0, V(1, 2).Dot(V(3, 4)))
	assert.Equal(t, 0.0, V(1, 0).Dot(V(0, 1)))

	// Positive cross means the second vector is counterclockwise of the first.
	assert.True(t, V(1, 0).Cross(V(0, 1)) > 0)
	assert.True(t, V(0, 1).Cross(V(1, 0)) < 0)
	assert.Equal(t, 0.0, V(2, 2).Cross(V(5, 5)))
}

func TestVec2Norm(t *testing.T) {
	assert.Equal(t, Distance(5), V(3, 4).Norm())
	assert.Equal(t, Distance(0), Vec2{}.Norm())
}

func TestVec2Direction(t *testing.T) {
	assert.InDelta(t, 0, V(1, 0).Direction().Radians(), epsilon)
	assert.InDelta(t, math.Pi/2, V(0, 1).Direction().Radians(), epsilon)
	assert.InDelta(t, math.Pi, V(-1, 0).Direction().Radians(), epsilon)
	assert.InDelta(t, 3*math.Pi/2, V(0, -1).Direction().Radians(), epsilon)
}

func TestPolar(t *testing.T) {
	p := Polar(Deg(90), 5)
	assert.InDelta(t, 0, p.X, epsilon)
	assert.InDelta(t, 5, p.Y, epsilon)

	p = Polar(Deg(180), 2)
	assert.InDelta(t, -2, p.X, epsilon)
	assert.InDelta(t, 0, p.Y, epsilon)
}

func TestAngleCanonicalization(t *testing.T) {
	assert.InDelta(t, 1, Rad(2*math.Pi+1).Radians(), epsilon)
	assert.InDelta(t, 2*math.Pi-1, Rad(-1).Radians(), epsilon)
	assert.InDelta(t, 10, Deg(370).Degrees(), epsilon)
	require.GreaterOrEqual(t, Rad(-0.0001).Radians(), 0.0)
	require.Less(t, Deg(360).Radians(), 2*math.Pi)
}

func TestAngleArithmetic(t *testing.T) {
	// Arithmetic wraps: the angle type is a vector space modulo full turns.
	assert.InDelta(t, 10, Deg(350).Add(Deg(20)).Degrees(), epsilon)
	assert.InDelta(t, 350, Deg(10).Sub(Deg(20)).Degrees(), epsilon)
	assert.InDelta(t, 270, Deg(90).Mul(3).Degrees(), epsilon)
	assert.InDelta(t, 270, Deg(90).Neg().Degrees(), epsilon)
}

func TestDistanceAndAreaNewtypes(t *testing.T) {
	assert.Equal(t, Distance(5), Distance(2).Add(Distance(3)))
	assert.Equal(t, Distance(-1), Distance(2).Sub(Distance(3)))
	assert.Equal(t, Distance(6), Distance(2).Mul(3))
	assert.Equal(t, Distance(-2), Distance(2).Neg())

	assert.Equal(t, Area(5), Area(2).Add(Area(3)))
	assert.Equal(t, Area(-4), Area(4).Neg())
}

func TestVec2Less(t *testing.T) {
	assert.True(t, V(1, 5).Less(V(2, 0)))
	assert.True(t, V(1, 1).Less(V(1, 2)))
	assert.False(t, V(1, 2).Less(V(1, 2)))
	assert.False(t, V(2, 0).Less(V(1, 9)))
}
