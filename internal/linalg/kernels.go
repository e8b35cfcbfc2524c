package linalg

import "math"

// Per-dtype elimination kernels. Each factors one n x n row-major matrix
// src into its lower-triangular Cholesky factor, written into dst (assumed
// zero-initialized, so entries above the diagonal stay exactly zero).
//
// The returned info code follows the LAPACK potrf convention extended with
// a sign: 0 on success, i+1 if the pivot at zero-based step i is not
// strictly positive (or, for complex input, carries imaginary residue
// beyond tolerance), and -(i+1) if a non-finite value appeared at step i.
//
// src is never written; dst and src must not overlap.

// Tolerated relative imaginary residue on complex diagonals. A Hermitian
// diagonal is real up to rounding of the running sum; residue above this
// means the input was not Hermitian.
const (
	hermitianTol64  = 1e-4  // complex64 input
	hermitianTol128 = 1e-10 // complex128 input
)

func cholFloat64(dst, src []float64, n int) int {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := 0.0
			for k := 0; k < j; k++ {
				sum += dst[i*n+k] * dst[j*n+k]
			}
			if j < i {
				dst[i*n+j] = (src[i*n+j] - sum) / dst[j*n+j]
				continue
			}
			d := src[i*n+i] - sum
			if !isFinite(d) {
				return -(i + 1)
			}
			if d <= 0 {
				return i + 1
			}
			dst[i*n+i] = math.Sqrt(d)
		}
	}
	return 0
}

// cholFloat32 accumulates inner products in float64 and rounds once at the
// store, so single-precision batches do not lose pivots to summation error.
func cholFloat32(dst, src []float32, n int) int {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := 0.0
			for k := 0; k < j; k++ {
				sum += float64(dst[i*n+k]) * float64(dst[j*n+k])
			}
			if j < i {
				dst[i*n+j] = float32((float64(src[i*n+j]) - sum) / float64(dst[j*n+j]))
				continue
			}
			d := float64(src[i*n+i]) - sum
			if !isFinite(d) {
				return -(i + 1)
			}
			if d <= 0 {
				return i + 1
			}
			dst[i*n+i] = float32(math.Sqrt(d))
		}
	}
	return 0
}

func cholComplex128(dst, src []complex128, n int) int {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := complex(0, 0)
			for k := 0; k < j; k++ {
				v := dst[j*n+k]
				sum += dst[i*n+k] * complex(real(v), -imag(v))
			}
			if j < i {
				dst[i*n+j] = (src[i*n+j] - sum) / dst[j*n+j]
				continue
			}
			d := src[i*n+i] - sum
			re, im := real(d), imag(d)
			if !isFinite(re) || !isFinite(im) {
				return -(i + 1)
			}
			// Hermitian diagonals are real; residue means bad input.
			if math.Abs(im) > hermitianTol128*math.Max(1, math.Abs(re)) {
				return i + 1
			}
			if re <= 0 {
				return i + 1
			}
			dst[i*n+i] = complex(math.Sqrt(re), 0)
		}
	}
	return 0
}

// cholComplex64 accumulates in complex128, mirroring cholFloat32.
func cholComplex64(dst, src []complex64, n int) int {
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := complex(0, 0)
			for k := 0; k < j; k++ {
				v := complex128(dst[j*n+k])
				sum += complex128(dst[i*n+k]) * complex(real(v), -imag(v))
			}
			if j < i {
				dst[i*n+j] = complex64((complex128(src[i*n+j]) - sum) / complex128(dst[j*n+j]))
				continue
			}
			d := complex128(src[i*n+i]) - sum
			re, im := real(d), imag(d)
			if !isFinite(re) || !isFinite(im) {
				return -(i + 1)
			}
			if math.Abs(im) > hermitianTol64*math.Max(1, math.Abs(re)) {
				return i + 1
			}
			if re <= 0 {
				return i + 1
			}
			dst[i*n+i] = complex64(complex(math.Sqrt(re), 0))
		}
	}
	return 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// In-place conjugate transposes turning a lower factor L into U = L^H.
// Only called for matrices whose kernel succeeded.

func transposeFloat32(m []float32, n int) {
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			m[j*n+i] = m[i*n+j]
			m[i*n+j] = 0
		}
	}
}

func transposeFloat64(m []float64, n int) {
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			m[j*n+i] = m[i*n+j]
			m[i*n+j] = 0
		}
	}
}

func transposeComplex64(m []complex64, n int) {
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v := m[i*n+j]
			m[j*n+i] = complex(real(v), -imag(v))
			m[i*n+j] = 0
		}
	}
}

func transposeComplex128(m []complex128, n int) {
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v := m[i*n+j]
			m[j*n+i] = complex(real(v), -imag(v))
			m[i*n+j] = 0
		}
	}
}
