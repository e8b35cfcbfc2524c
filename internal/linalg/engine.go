// Package linalg implements batched dense linear-algebra kernels.
//
// The central entry point is Engine.Decompose, which computes the Cholesky
// factorization A = L L^H for every matrix in a batch. Input tensors have
// shape (*, n, n): the trailing two dimensions hold the matrix and any
// leading dimensions are batch dimensions, flattened row-major exactly as
// the matrices are laid out in memory.
package linalg

import (
	"github.com/born-ml/linalg/internal/parallel"
	"github.com/born-ml/linalg/internal/tensor"
)

const opCholesky = "cholesky"

// Engine computes batched Cholesky factorizations.
//
// The engine is stateless between calls: inputs are never mutated and every
// call allocates (or is handed) its own output tensor, so a single Engine
// is safe for concurrent use.
type Engine struct {
	// Parallel controls how per-matrix factorizations are distributed
	// across worker goroutines. Matrices are independent and workers write
	// disjoint output regions, so no locking is involved.
	Parallel parallel.Config

	// Upper emits the upper-triangular factor U = L^H instead of L.
	Upper bool
}

// New creates an Engine with default parallelism.
func New() *Engine {
	return &Engine{Parallel: parallel.DefaultConfig()}
}

// Decompose computes the Cholesky factor of each matrix in a.
//
// a must hold Hermitian (symmetric, for real dtypes) positive-definite
// matrices. On success the returned tensor has the same shape and dtype as
// a, each matrix replaced by its lower-triangular factor L with zeros above
// the diagonal (or U = L^H when the engine's Upper flag is set).
//
// If some matrix is not positive-definite the whole call fails with a
// NotPositiveDefiniteError naming the lowest failing batch index; a
// NaN or Inf encountered during elimination yields a NonFiniteError
// instead. a is never modified.
func (e *Engine) Decompose(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	batch, n, err := validate(a)
	if err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(a.Shape(), a.DType(), a.Device())
	if err != nil {
		return nil, err
	}

	info := e.factor(out, a, batch, n)
	if err := firstFailure(info, batched(a)); err != nil {
		return nil, err
	}
	return out, nil
}

// DecomposeInto is Decompose writing into a caller-supplied tensor.
//
// out must match a in shape and dtype and must not share memory with it;
// violations are reported as ShapeError before any computation. On failure
// the contents of out are unspecified.
func (e *Engine) DecomposeInto(out, a *tensor.RawTensor) error {
	batch, n, err := validate(a)
	if err != nil {
		return err
	}
	if out == nil {
		return &ShapeError{Op: opCholesky, Reason: ErrNilTensor}
	}
	if !out.Shape().Equal(a.Shape()) {
		return &ShapeError{Op: opCholesky, Shape: out.Shape(), Reason: ErrShapeMismatch}
	}
	if out.DType() != a.DType() {
		return &ShapeError{Op: opCholesky, Shape: out.Shape(), Reason: ErrDTypeMismatch}
	}
	if out.Aliases(a) {
		return &ShapeError{Op: opCholesky, Shape: out.Shape(), Reason: ErrOutAliasesInput}
	}

	// Kernels only write the lower triangle; a reused buffer may hold
	// stale values above the diagonal.
	clear(out.Data())

	info := e.factor(out, a, batch, n)
	return firstFailure(info, batched(a))
}

// DecomposeEx computes Cholesky factors without failing on matrices that
// are not positive-definite.
//
// It returns the factor tensor together with one info code per matrix:
// 0 means success, i (one-based) means the pivot at elimination step i-1
// was not strictly positive, so the leading minor of that order is not
// positive-definite. Factor contents for failed matrices are unspecified.
// Geometry and dtype problems still fail the whole call.
func (e *Engine) DecomposeEx(a *tensor.RawTensor) (*tensor.RawTensor, []int, error) {
	batch, n, err := validate(a)
	if err != nil {
		return nil, nil, err
	}

	out, err := tensor.NewRaw(a.Shape(), a.DType(), a.Device())
	if err != nil {
		return nil, nil, err
	}

	info := e.factor(out, a, batch, n)
	for b, c := range info {
		// Non-finite codes carry a sign internally; the exported info
		// convention only distinguishes the failing pivot order.
		if c < 0 {
			info[b] = -c
		}
	}
	return out, info, nil
}

// factor runs the per-dtype kernel over every matrix in the batch and
// returns the raw signed info codes.
func (e *Engine) factor(out, a *tensor.RawTensor, batch, n int) []int {
	info := make([]int, batch)
	mat := n * n
	cost := n*n*n + 1

	switch a.DType() {
	case tensor.Float32:
		src, dst := a.AsFloat32(), out.AsFloat32()
		parallel.For(batch, cost, func(b int) {
			m := dst[b*mat : (b+1)*mat]
			info[b] = cholFloat32(m, src[b*mat:(b+1)*mat], n)
			if info[b] == 0 && e.Upper {
				transposeFloat32(m, n)
			}
		}, e.Parallel)
	case tensor.Float64:
		src, dst := a.AsFloat64(), out.AsFloat64()
		parallel.For(batch, cost, func(b int) {
			m := dst[b*mat : (b+1)*mat]
			info[b] = cholFloat64(m, src[b*mat:(b+1)*mat], n)
			if info[b] == 0 && e.Upper {
				transposeFloat64(m, n)
			}
		}, e.Parallel)
	case tensor.Complex64:
		src, dst := a.AsComplex64(), out.AsComplex64()
		parallel.For(batch, cost, func(b int) {
			m := dst[b*mat : (b+1)*mat]
			info[b] = cholComplex64(m, src[b*mat:(b+1)*mat], n)
			if info[b] == 0 && e.Upper {
				transposeComplex64(m, n)
			}
		}, e.Parallel)
	case tensor.Complex128:
		src, dst := a.AsComplex128(), out.AsComplex128()
		parallel.For(batch, cost, func(b int) {
			m := dst[b*mat : (b+1)*mat]
			info[b] = cholComplex128(m, src[b*mat:(b+1)*mat], n)
			if info[b] == 0 && e.Upper {
				transposeComplex128(m, n)
			}
		}, e.Parallel)
	}
	return info
}

// validate checks geometry and dtype, returning the flattened batch size
// and the matrix order n.
func validate(a *tensor.RawTensor) (batch, n int, err error) {
	if a == nil {
		return 0, 0, &ShapeError{Op: opCholesky, Reason: ErrNilTensor}
	}
	shape := a.Shape()
	if len(shape) < 2 {
		return 0, 0, &ShapeError{Op: opCholesky, Shape: shape, Reason: ErrTooFewDims}
	}
	n = shape[len(shape)-1]
	if shape[len(shape)-2] != n {
		return 0, 0, &ShapeError{Op: opCholesky, Shape: shape, Reason: ErrNotSquare}
	}
	switch a.DType() {
	case tensor.Float32, tensor.Float64, tensor.Complex64, tensor.Complex128:
	default:
		return 0, 0, &ShapeError{Op: opCholesky, Shape: shape, Reason: ErrUnsupportedDType}
	}

	batch = 1
	for _, d := range shape[:len(shape)-2] {
		batch *= d
	}
	return batch, n, nil
}

// firstFailure scans info codes in batch order after all workers have
// finished, so the lowest failing index is reported deterministically
// regardless of scheduling.
func firstFailure(info []int, batched bool) error {
	for b, c := range info {
		switch {
		case c > 0:
			return &NotPositiveDefiniteError{Batch: b, Pivot: c - 1, Batched: batched}
		case c < 0:
			return &NonFiniteError{Batch: b, Pivot: -c - 1, Batched: batched}
		}
	}
	return nil
}

// batched reports whether a carries leading batch dimensions. Unbatched
// 2-D calls omit the batch index from error messages.
func batched(a *tensor.RawTensor) bool {
	return len(a.Shape()) > 2
}
