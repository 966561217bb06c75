package math3d

import "math"

// Matrix is a row-major 4x4 matrix of 32-bit floats using the
// row-vector convention: v' = v · M. Affine translation lives in row
// 3 (m[3][0..2]).
type Matrix [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Zero returns the zero matrix.
func Zero() Matrix {
	return Matrix{}
}

// Add returns a + b, elementwise.
func (a Matrix) Add(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}
	return out
}

// Sub returns a - b, elementwise.
func (a Matrix) Sub(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j] - b[i][j]
		}
	}
	return out
}

// Scale returns a * s, elementwise.
func (a Matrix) Scale(s float32) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][j] * s
		}
	}
	return out
}

// Mul returns the matrix product a * b under the row-vector
// convention, so that (v · a) · b == v · (a · b).
func (a Matrix) Mul(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply computes v' = v · m.
func Apply(v Vector, m Matrix) Vector {
	x, y, z, w := v.X, v.Y, v.Z, v.W
	return Vector{
		x*m[0][0] + y*m[1][0] + z*m[2][0] + w*m[3][0],
		x*m[0][1] + y*m[1][1] + z*m[2][1] + w*m[3][1],
		x*m[0][2] + y*m[1][2] + z*m[2][2] + w*m[3][2],
		x*m[0][3] + y*m[1][3] + z*m[2][3] + w*m[3][3],
	}
}

// Transpose returns the transposed matrix.
func (a Matrix) Transpose() Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// SetTranslate builds a translation matrix.
func SetTranslate(x, y, z float32) Matrix {
	m := Identity()
	m[3][0], m[3][1], m[3][2] = x, y, z
	return m
}

// SetScale builds a scaling matrix.
func SetScale(x, y, z float32) Matrix {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

// SetRotate builds a pure rotation matrix (row 3 = identity) around
// axis by theta radians, using the quaternion identity qsin =
// sin(theta/2), qcos = cos(theta/2). axis is normalized first.
func SetRotate(axis Vector, theta float32) Matrix {
	a := axis.Normalize3()
	qsin := float32(math.Sin(float64(theta) * 0.5))
	qcos := float32(math.Cos(float64(theta) * 0.5))
	x := a.X * qsin
	y := a.Y * qsin
	z := a.Z * qsin
	w := qcos

	var m Matrix
	m[0][0] = 1 - 2*y*y - 2*z*z
	m[1][0] = 2*x*y - 2*w*z
	m[2][0] = 2*x*z + 2*w*y

	m[0][1] = 2*x*y + 2*w*z
	m[1][1] = 1 - 2*x*x - 2*z*z
	m[2][1] = 2*y*z - 2*w*x

	m[0][2] = 2*x*z - 2*w*y
	m[1][2] = 2*y*z + 2*w*x
	m[2][2] = 1 - 2*x*x - 2*y*y

	m[0][3], m[1][3], m[2][3] = 0, 0, 0
	m[3][0], m[3][1], m[3][2] = 0, 0, 0
	m[3][3] = 1
	return m
}

// SetLookAt builds a left-handed view matrix looking from eye toward
// at, with the given up vector.
func SetLookAt(eye, at, up Vector) Matrix {
	zaxis := at.Sub(eye).Normalize3()
	xaxis := up.Cross3(zaxis).Normalize3()
	yaxis := zaxis.Cross3(xaxis)

	var m Matrix
	m[0][0], m[1][0], m[2][0] = xaxis.X, xaxis.Y, xaxis.Z
	m[3][0] = -xaxis.Dot3(eye)

	m[0][1], m[1][1], m[2][1] = yaxis.X, yaxis.Y, yaxis.Z
	m[3][1] = -yaxis.Dot3(eye)

	m[0][2], m[1][2], m[2][2] = zaxis.X, zaxis.Y, zaxis.Z
	m[3][2] = -zaxis.Dot3(eye)

	m[0][3], m[1][3], m[2][3] = 0, 0, 0
	m[3][3] = 1
	return m
}

// SetPerspective builds a left-handed perspective projection matching
// D3DXMatrixPerspectiveFovLH. fovy is the vertical field of view in
// radians, aspect is width/height, zn/zf are the near/far planes.
// After Apply, w == input z, so rhw = 1/w recovers 1/z.
func SetPerspective(fovy, aspect, zn, zf float32) Matrix {
	fax := float32(1 / math.Tan(float64(fovy)*0.5))
	m := Zero()
	m[0][0] = fax / aspect
	m[1][1] = fax
	m[2][2] = zf / (zf - zn)
	m[3][2] = -zn * zf / (zf - zn)
	m[2][3] = 1
	return m
}

// Inverse computes the full 4x4 cofactor inverse. The determinant is
// assumed non-zero; callers must not invert singular matrices (the
// rasterizer only inverts vp, which is non-singular for any valid
// near/far pair).
func (a Matrix) Inverse() Matrix {
	var cof Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			cof[i][j] = a.cofactor(i, j)
		}
	}
	var det float32
	for j := 0; j < 4; j++ {
		det += a[0][j] * cof[0][j]
	}
	invDet := 1 / det

	var inv Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			// adjugate is the transpose of the cofactor matrix
			inv[j][i] = cof[i][j] * invDet
		}
	}
	return inv
}

func (a Matrix) cofactor(row, col int) float32 {
	sign := float32(1)
	if (row+col)%2 == 1 {
		sign = -1
	}
	return sign * a.minor(row, col)
}

// minor returns the determinant of the 3x3 submatrix formed by
// deleting row and col.
func (a Matrix) minor(row, col int) float32 {
	var sub [3][3]float32
	si := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		sj := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub[si][sj] = a[i][j]
			sj++
		}
		si++
	}
	return sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
}
