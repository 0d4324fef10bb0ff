package gpucore

import "fmt"

// Resource IDs
//
// These opaque IDs represent device resources. Each Device implementation
// maintains the mapping between IDs and its own backend objects.
// IDs are uint64 to accommodate various backend handle sizes.

// VertexArrayID is an opaque handle to a vertex-array-state object.
type VertexArrayID uint64

// BufferID is an opaque handle to a device buffer.
type BufferID uint64

// InvalidID is the zero value, representing "no resource".
// Binding InvalidID unbinds the slot.
const InvalidID = 0

// BufferTarget is the binding point a buffer is attached to.
type BufferTarget uint8

const (
	// ArrayBuffer holds per-vertex attribute data.
	ArrayBuffer BufferTarget = iota

	// ElementArrayBuffer holds index data. The binding is recorded in the
	// currently bound vertex-array-state.
	ElementArrayBuffer
)

// String returns the string representation of BufferTarget.
func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	default:
		return fmt.Sprintf("BufferTarget(%d)", int(t))
	}
}

// BufferUsage is a bitmask specifying how a buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	// BufferUsageVertex indicates the buffer can be used as a vertex buffer.
	BufferUsageVertex BufferUsage = 1 << 0

	// BufferUsageIndex indicates the buffer can be used as an index buffer.
	BufferUsageIndex BufferUsage = 1 << 1

	// BufferUsageCopyDst indicates the buffer can be written from the host.
	BufferUsageCopyDst BufferUsage = 1 << 2
)

// BufferDesc describes a buffer allocation.
type BufferDesc struct {
	// Label is an optional debug label.
	Label string

	// Size is the buffer capacity in bytes.
	Size uint64

	// Usage is a bitmask of BufferUsage* flags.
	Usage BufferUsage
}

// Primitive is the topology used to assemble vertices.
type Primitive uint8

// Primitive topologies.
const (
	Points Primitive = iota
	Lines
	LineStrip
	Triangles
	TriangleFan
	TriangleStrip
)

// String returns the string representation of Primitive.
func (p Primitive) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleFan:
		return "TriangleFan"
	case TriangleStrip:
		return "TriangleStrip"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// ScalarType is the device-side numeric type of one attribute element.
type ScalarType uint8

// Scalar types.
const (
	Byte ScalarType = iota + 1
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
	Float
)

// Size returns the size of one element in bytes, or 0 for an unknown type.
func (t ScalarType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Int, UnsignedInt, Float:
		return 4
	default:
		return 0
	}
}

// String returns the string representation of ScalarType.
func (t ScalarType) String() string {
	switch t {
	case Byte:
		return "Byte"
	case UnsignedByte:
		return "UnsignedByte"
	case Short:
		return "Short"
	case UnsignedShort:
		return "UnsignedShort"
	case Int:
		return "Int"
	case UnsignedInt:
		return "UnsignedInt"
	case Float:
		return "Float"
	default:
		return fmt.Sprintf("ScalarType(%d)", int(t))
	}
}

// IndexType is the element type of an index buffer.
type IndexType uint8

const (
	// IndexUint32 uses 32-bit unsigned indices.
	IndexUint32 IndexType = iota + 1
)

// String returns the string representation of IndexType.
func (t IndexType) String() string {
	if t == IndexUint32 {
		return "Uint32"
	}
	return fmt.Sprintf("IndexType(%d)", int(t))
}

// AttribPointer describes where one vertex attribute lives inside the
// buffer currently bound to ArrayBuffer.
type AttribPointer struct {
	// Index is the attribute slot (shader location).
	Index uint32

	// Size is the number of components, 1 to 4.
	Size int32

	// Type is the scalar type of each component.
	Type ScalarType

	// Normalized maps integer data to [0,1] or [-1,1] on float fetches.
	// Ignored by integer fetches.
	Normalized bool

	// Stride is the byte distance between consecutive vertices.
	Stride int32

	// Offset is the byte offset of the attribute within a vertex.
	Offset uintptr
}
