package sprout

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// objectTransform computes the affine matrix that draws an image of size
// (w, h) for o. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Scale -> Rotate(-rotation) -> Translate(Location)
//
// Rotation is in degrees, counter-clockwise on screen. With Y pointing down
// that is a negative angle in matrix terms.
func objectTransform(o *GameObject, w, h float64) [6]float64 {
	s := o.Scale
	sin, cos := math.Sincos(-o.rotation * math.Pi / 180)

	// After Scale * Translate(-pivot):
	//   a=s, b=0, c=0, d=s, tx=-w/2*s, ty=-h/2*s
	preTx := -w / 2 * s
	preTy := -h / 2 * s

	// After Rotate:
	ra := cos * s
	rb := sin * s
	rc := -sin * s
	rd := cos * s
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(X, Y):
	return [6]float64{ra, rb, rc, rd, rtx + o.Location.X, rty + o.Location.Y}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformedBounds returns the axis-aligned bounds of the (w, h) quad under m.
func transformedBounds(m [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(m, 0, 0)
	minX, minY, maxX, maxY := x0, y0, x0, y0
	for _, p := range [3][2]float64{{w, 0}, {0, h}, {w, h}} {
		x, y := transformPoint(m, p[0], p[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// geoM converts an affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// normalizeDegrees wraps r into [0, 360).
func normalizeDegrees(r float64) float64 {
	r = math.Mod(r, 360)
	if r < 0 {
		r += 360
	}
	// -tiny + 360 rounds to 360.
	if r >= 360 {
		r = 0
	}
	return r
}
