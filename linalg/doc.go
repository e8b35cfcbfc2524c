// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg exposes batched dense linear-algebra kernels.
//
// # Overview
//
// The package currently provides the Cholesky decomposition for Hermitian
// positive-definite matrices, batched over any number of leading
// dimensions:
//   - Cholesky: factor A = L·Lᴴ, fail on the first non-PD matrix
//   - CholeskyInto: same, writing into a caller-supplied tensor
//   - CholeskyEx: infallible variant returning per-matrix info codes
//
// Matrix norms and determinants are intentionally not implemented here;
// they live with the callers that need them and may use this kernel for
// the positive-definite case.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/linalg/linalg"
//	    "github.com/born-ml/linalg/tensor"
//	)
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{4, 2, 2, 3}, tensor.Shape{2, 2}, tensor.CPU)
//	    l, err := linalg.Cholesky(a)
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = l // [[2, 0], [1, √2]]
//	}
//
// # Batching
//
// Matrices in a batch are factored independently and, when the batch is
// large enough, in parallel across worker goroutines. Results always land
// at the batch position of their source matrix, and a failure always
// reports the lowest failing batch index no matter how the work was
// scheduled.
package linalg
