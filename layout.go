package tess

import (
	"github.com/gogpu/tess/gpucore"
)

// ComponentWeight returns the size in bytes of one vertex component.
func ComponentWeight(f VertexComponentFormat) int {
	return f.Dim.Size() * f.Size / 8
}

// VertexWeight returns the size in bytes of a whole vertex, which is also
// the stride between consecutive vertices in a buffer.
func VertexWeight(formats []VertexComponentFormat) int {
	w := 0
	for _, f := range formats {
		w += ComponentWeight(f)
	}
	return w
}

// Attribute is the resolved device binding of one vertex component.
type Attribute struct {
	// Index is the attribute slot, equal to the component's position.
	Index uint32

	// Size is the number of elements, 1 to 4.
	Size int32

	// Type is the device scalar type.
	Type gpucore.ScalarType

	// Integer selects pure integer fetching instead of float conversion.
	Integer bool

	// Offset is the byte offset of the component within a vertex.
	Offset int

	// Stride is the byte size of the whole vertex.
	Stride int
}

// pointer converts a to the device attribute pointer description.
func (a Attribute) pointer() gpucore.AttribPointer {
	return gpucore.AttribPointer{
		Index:  a.Index,
		Size:   a.Size,
		Type:   a.Type,
		Stride: int32(a.Stride),
		Offset: uintptr(a.Offset),
	}
}

// ComputeLayout resolves offsets, stride and device types for formats.
//
// Every component is validated before any result is produced, so an
// unsupported descriptor panics before a caller can issue device calls
// for it.
func ComputeLayout(formats []VertexComponentFormat) []Attribute {
	types := make([]gpucore.ScalarType, len(formats))
	for i, f := range formats {
		types[i] = mustScalarType(f)
	}

	stride := VertexWeight(formats)
	attrs := make([]Attribute, len(formats))
	offset := 0
	for i, f := range formats {
		attrs[i] = Attribute{
			Index:   uint32(i),
			Size:    int32(f.Dim.Size()),
			Type:    types[i],
			Integer: f.Type != Floating,
			Offset:  offset,
			Stride:  stride,
		}
		offset += ComponentWeight(f)
	}
	return attrs
}

// bindLayout points every attribute slot at the buffer bound to
// gpucore.ArrayBuffer and enables it. A vertex-array-state must be bound.
func bindLayout(dev gpucore.Device, attrs []Attribute) {
	for _, a := range attrs {
		if a.Integer {
			dev.VertexAttribIPointer(a.pointer())
		} else {
			dev.VertexAttribPointer(a.pointer())
		}
		dev.EnableVertexAttribArray(a.Index)
	}
}
