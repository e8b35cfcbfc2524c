// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor container types consumed by the
// linalg kernels.
//
// # Overview
//
// A RawTensor is a flat row-major buffer plus shape, stride and dtype
// metadata. Batched kernels interpret a shape (*, n, n) as zero or more
// batch dimensions followed by an n×n matrix; matrices within a batch are
// contiguous in memory.
//
// # Basic Usage
//
//	import "github.com/born-ml/linalg/tensor"
//
//	func main() {
//	    // A batch of three 2×2 float64 matrices.
//	    a, err := tensor.NewRaw(tensor.Shape{3, 2, 2}, tensor.Float64, tensor.CPU)
//	    if err != nil {
//	        panic(err)
//	    }
//	    data := a.AsFloat64() // typed view over the buffer
//	    _ = data
//	}
//
// # Supported Data Types
//
// Kernels operate on floating-point matrices only:
//   - float32, float64 (real)
//   - complex64, complex128 (complex)
package tensor
