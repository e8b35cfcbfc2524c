package linalg

import (
	"errors"
	"fmt"

	"github.com/born-ml/linalg/internal/tensor"
)

// Common errors.
var (
	ErrNilTensor        = errors.New("nil tensor")
	ErrTooFewDims       = errors.New("input must have at least 2 dimensions")
	ErrNotSquare        = errors.New("matrix dimensions are not square")
	ErrUnsupportedDType = errors.New("unsupported data type")
	ErrShapeMismatch    = errors.New("output shape does not match input")
	ErrDTypeMismatch    = errors.New("output dtype does not match input")
	ErrOutAliasesInput  = errors.New("output tensor shares memory with input")
)

// ShapeError reports invalid input or output geometry.
// No computation is attempted when it is returned.
type ShapeError struct {
	Op     string       // Operation name (e.g., "cholesky")
	Shape  tensor.Shape // Offending shape, nil if not applicable
	Reason error        // One of the sentinel errors above
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Shape != nil {
		return fmt.Sprintf("%s: shape %v: %v", e.Op, e.Shape, e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Reason)
}

// Unwrap returns the sentinel cause so callers can match with errors.Is.
func (e *ShapeError) Unwrap() error { return e.Reason }

// NotPositiveDefiniteError reports that elimination hit a zero or negative
// pivot, i.e. the matrix is not Hermitian positive-definite. For batched
// input it carries the lowest failing batch index; the index is reported
// deterministically regardless of how the batch was scheduled.
type NotPositiveDefiniteError struct {
	Batch   int  // Zero-based index of the first failing matrix
	Pivot   int  // Zero-based elimination step of the failing pivot
	Batched bool // Whether the call carried batch dimensions
}

// Error implements the error interface.
func (e *NotPositiveDefiniteError) Error() string {
	if e.Batched {
		return fmt.Sprintf("cholesky: matrix at batch index %d is not positive-definite (leading minor of order %d)", e.Batch, e.Pivot+1)
	}
	return fmt.Sprintf("cholesky: matrix is not positive-definite (leading minor of order %d)", e.Pivot+1)
}

// NonFiniteError reports a NaN or infinite pivot, typically caused by
// non-finite input entries or severely ill-conditioned matrices.
type NonFiniteError struct {
	Batch   int  // Zero-based index of the first failing matrix
	Pivot   int  // Zero-based elimination step where the value appeared
	Batched bool // Whether the call carried batch dimensions
}

// Error implements the error interface.
func (e *NonFiniteError) Error() string {
	if e.Batched {
		return fmt.Sprintf("cholesky: non-finite value at batch index %d (elimination step %d)", e.Batch, e.Pivot+1)
	}
	return fmt.Sprintf("cholesky: non-finite value during elimination (step %d)", e.Pivot+1)
}
