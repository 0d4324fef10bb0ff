package tess

import (
	"fmt"

	"github.com/gogpu/tess/gpucore"
)

// Dim is the number of scalar elements in a vertex component.
type Dim uint8

// Component dimensions.
const (
	Dim1 Dim = iota + 1
	Dim2
	Dim3
	Dim4
)

// Size returns the number of elements, 1 to 4.
func (d Dim) Size() int {
	return int(d)
}

// Type is the numeric category of a vertex component.
type Type uint8

// Component numeric categories.
const (
	// Floating is IEEE 754 floating-point data.
	Floating Type = iota
	// Integral is signed integer data.
	Integral
	// Unsigned is unsigned integer data.
	Unsigned
	// Boolean is byte-sized truth values, fetched as unsigned integers.
	Boolean
)

// String returns the string representation of Type.
func (t Type) String() string {
	switch t {
	case Floating:
		return "Floating"
	case Integral:
		return "Integral"
	case Unsigned:
		return "Unsigned"
	case Boolean:
		return "Boolean"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// VertexComponentFormat describes one component of a vertex: how many
// elements it has, their numeric category and their bit width.
type VertexComponentFormat struct {
	Dim  Dim
	Type Type
	// Size is the bit width of one element: 8, 16 or 32.
	Size int
}

// String returns a compact description such as "3×Floating32".
func (f VertexComponentFormat) String() string {
	return fmt.Sprintf("%d×%s%d", f.Dim.Size(), f.Type, f.Size)
}

// Vertex is implemented by host vertex types. VertexFormat is called on
// the zero value and must describe the in-memory layout of the type, one
// entry per component, in field order.
type Vertex interface {
	VertexFormat() []VertexComponentFormat
}

// Float describes a dim-element 32-bit floating-point component.
func Float(dim Dim) VertexComponentFormat {
	return VertexComponentFormat{Dim: dim, Type: Floating, Size: 32}
}

// Int describes a dim-element signed integer component of the given bit width.
func Int(dim Dim, bits int) VertexComponentFormat {
	return VertexComponentFormat{Dim: dim, Type: Integral, Size: bits}
}

// Uint describes a dim-element unsigned integer component of the given bit width.
func Uint(dim Dim, bits int) VertexComponentFormat {
	return VertexComponentFormat{Dim: dim, Type: Unsigned, Size: bits}
}

// Bool describes a dim-element component of byte-sized booleans.
func Bool(dim Dim) VertexComponentFormat {
	return VertexComponentFormat{Dim: dim, Type: Boolean, Size: 8}
}

// scalarType returns the device type for f and whether the pair is supported.
func scalarType(f VertexComponentFormat) (gpucore.ScalarType, bool) {
	switch {
	case f.Type == Integral && f.Size == 8:
		return gpucore.Byte, true
	case f.Type == Integral && f.Size == 16:
		return gpucore.Short, true
	case f.Type == Integral && f.Size == 32:
		return gpucore.Int, true
	case f.Type == Unsigned && f.Size == 8, f.Type == Boolean && f.Size == 8:
		return gpucore.UnsignedByte, true
	case f.Type == Unsigned && f.Size == 16:
		return gpucore.UnsignedShort, true
	case f.Type == Unsigned && f.Size == 32:
		return gpucore.UnsignedInt, true
	case f.Type == Floating && f.Size == 32:
		return gpucore.Float, true
	default:
		return 0, false
	}
}

// Supported reports whether f can be bound to a device attribute slot.
func (f VertexComponentFormat) Supported() bool {
	if f.Dim < Dim1 || f.Dim > Dim4 {
		return false
	}
	_, ok := scalarType(f)
	return ok
}

// mustScalarType is scalarType for validated descriptors. An unsupported
// descriptor is a programming error.
func mustScalarType(f VertexComponentFormat) gpucore.ScalarType {
	if f.Dim < Dim1 || f.Dim > Dim4 {
		panic(fmt.Sprintf("tess: unsupported vertex component dimension: %d", f.Dim))
	}
	t, ok := scalarType(f)
	if !ok {
		panic(fmt.Sprintf("tess: unsupported vertex component format: %s (%s, %d bits)", f, f.Type, f.Size))
	}
	return t
}
