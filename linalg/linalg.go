// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	internal "github.com/born-ml/linalg/internal/linalg"
	"github.com/born-ml/linalg/tensor"
)

// Type aliases for public API

// Engine computes batched Cholesky factorizations. A single Engine is
// stateless between calls and safe for concurrent use.
type Engine = internal.Engine

// ShapeError reports invalid input or output geometry.
type ShapeError = internal.ShapeError

// NotPositiveDefiniteError reports the lowest batch index whose matrix is
// not Hermitian positive-definite.
type NotPositiveDefiniteError = internal.NotPositiveDefiniteError

// NonFiniteError reports a NaN or Inf encountered during elimination.
type NonFiniteError = internal.NonFiniteError

// Sentinel causes carried by ShapeError; match with errors.Is.
var (
	ErrNilTensor        = internal.ErrNilTensor
	ErrTooFewDims       = internal.ErrTooFewDims
	ErrNotSquare        = internal.ErrNotSquare
	ErrUnsupportedDType = internal.ErrUnsupportedDType
	ErrShapeMismatch    = internal.ErrShapeMismatch
	ErrDTypeMismatch    = internal.ErrDTypeMismatch
	ErrOutAliasesInput  = internal.ErrOutAliasesInput
)

// New creates an Engine with default parallelism.
//
// Example:
//
//	eng := linalg.New()
//	eng.Upper = true // emit U = Lᴴ instead of L
//	u, err := eng.Decompose(a)
func New() *Engine {
	return internal.New()
}

// Cholesky computes the Cholesky decomposition of a Hermitian (symmetric
// for real dtypes) positive-definite matrix or batch of such matrices.
//
// a has shape (*, n, n) where * is zero or more batch dimensions. Each
// matrix is factored as A = L·Lᴴ and the batch of lower-triangular L
// matrices is returned, with zeros above the diagonal.
//
// If a matrix in the batch is not positive-definite, the call fails with a
// NotPositiveDefiniteError naming the batch index of the first such matrix.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{4, 2, 2, 3}, tensor.Shape{2, 2}, tensor.CPU)
//	l, err := linalg.Cholesky(a)
//	// l = [[2, 0], [1, √2]]
func Cholesky(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	return internal.New().Decompose(a)
}

// CholeskyInto is Cholesky writing its result into out instead of a fresh
// tensor. out must match a in shape and dtype and must not share memory
// with it. On failure the contents of out are unspecified.
func CholeskyInto(out, a *tensor.RawTensor) error {
	return internal.New().DecomposeInto(out, a)
}

// CholeskyEx computes Cholesky factors without failing on matrices that
// are not positive-definite. It returns one info code per matrix: 0 on
// success, or the one-based order of the leading minor that is not
// positive-definite. Factor contents for failed matrices are unspecified.
//
// Shape and dtype problems still fail the whole call with a ShapeError.
func CholeskyEx(a *tensor.RawTensor) (*tensor.RawTensor, []int, error) {
	return internal.New().DecomposeEx(a)
}
