package graphics

import "math"

// Matrix4 is a row-major 4x4 transform acting on column vectors. The m34
// perspective term lives at M[3][2], so w grows with z.
//
// Transforms are applied about the layer's center, so a rotation about the
// x axis folds a card across its horizontal midline.
type Matrix4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m × n.
func (m Matrix4) Multiply(n Matrix4) Matrix4 {
	var out Matrix4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Rotate returns m with a rotation of angle radians about the axis (x, y, z)
// applied first. The axis is normalized; a zero axis leaves m unchanged.
func (m Matrix4) Rotate(angle, x, y, z float64) Matrix4 {
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return m
	}
	x, y, z = x/length, y/length, z/length
	s, c := math.Sincos(angle)
	t := 1 - c
	r := Matrix4{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
	return m.Multiply(r)
}

// WithPerspective returns a copy of m with the perspective term m34 set.
func (m Matrix4) WithPerspective(m34 float64) Matrix4 {
	m[3][2] = m34
	return m
}

// TransformPoint maps (x, y, 0) and returns the projected 2D point.
func (m Matrix4) TransformPoint(p Offset) Offset {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][3]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Offset{X: x, Y: y}
}

// Affine2D drops the z row and column, giving the orthographic projection of
// m onto the screen plane as [a b tx; c d ty].
func (m Matrix4) Affine2D() [6]float64 {
	return [6]float64{
		m[0][0], m[0][1], m[0][3],
		m[1][0], m[1][1], m[1][3],
	}
}

// ApproxEqual reports whether every entry differs by at most eps.
func (m Matrix4) ApproxEqual(n Matrix4, eps float64) bool {
	for i := range 4 {
		for j := range 4 {
			if math.Abs(m[i][j]-n[i][j]) > eps {
				return false
			}
		}
	}
	return true
}
