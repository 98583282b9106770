package figurine

import "math"

// Matrix is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// Identity is the identity affine matrix.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation matrix for r radians (clockwise on screen,
// since Y grows downward).
func Rotate(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// SkewX returns a horizontal shear by angle r radians.
func SkewX(r float64) Matrix {
	return Matrix{1, 0, math.Tan(r), 1, 0, 0}
}

// Multiply returns m * c, i.e. c is applied first.
func (m Matrix) Multiply(c Matrix) Matrix {
	return Matrix{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert returns the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply maps a point through m.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// About conjugates m so it acts around pivot instead of the origin:
// Translate(pivot) * m * Translate(-pivot).
func About(m Matrix, pivot Vec2) Matrix {
	return Translate(pivot.X, pivot.Y).Multiply(m).Multiply(Translate(-pivot.X, -pivot.Y))
}

// poseSkewDegrees is the shear angle used for the side poses.
const poseSkewDegrees = 10

// PoseMatrix returns the figure transform for pose, sheared about pivot.
// Front and unknown poses yield the identity.
func PoseMatrix(pose Pose, pivot Vec2) Matrix {
	switch pose {
	case PoseLeft:
		return About(SkewX(degToRad(poseSkewDegrees)), pivot)
	case PoseRight:
		return About(SkewX(degToRad(-poseSkewDegrees)), pivot)
	default:
		return Identity
	}
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
