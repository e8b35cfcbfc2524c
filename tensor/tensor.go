// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/linalg/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, complex64, complex128.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{8, 4, 4} represents a batch of eight 4×4 matrices.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a flat row-major
// buffer with shape, stride and dtype metadata.
type RawTensor = tensor.RawTensor

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
// Memory is zero-initialized.
//
// Example:
//
//	a, err := tensor.NewRaw(tensor.Shape{8, 4, 4}, tensor.Float64, tensor.CPU)
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a tensor from a Go slice, copying the data.
//
// Example:
//
//	a, err := tensor.FromSlice([]float64{4, 2, 2, 3}, tensor.Shape{2, 2}, tensor.CPU)
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSlice[T](data, shape, device)
}
