package tess

import (
	"fmt"

	"github.com/gogpu/tess/gpucore"
)

// Mode is the primitive topology a Tessellation is rendered with.
type Mode uint8

// Render modes.
const (
	// Point renders each vertex as a point. Draw sizes apply.
	Point Mode = iota
	// Line renders each pair of vertices as a line. Draw sizes apply.
	Line
	// LineStrip renders connected lines. Draw sizes apply.
	LineStrip
	// Triangle renders each group of three vertices as a triangle.
	Triangle
	// TriangleFan renders triangles sharing the first vertex.
	TriangleFan
	// TriangleStrip renders connected triangles.
	TriangleStrip
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case Point:
		return "Point"
	case Line:
		return "Line"
	case LineStrip:
		return "LineStrip"
	case Triangle:
		return "Triangle"
	case TriangleFan:
		return "TriangleFan"
	case TriangleStrip:
		return "TriangleStrip"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Primitive returns the device topology for m.
func (m Mode) Primitive() gpucore.Primitive {
	switch m {
	case Point:
		return gpucore.Points
	case Line:
		return gpucore.Lines
	case LineStrip:
		return gpucore.LineStrip
	case Triangle:
		return gpucore.Triangles
	case TriangleFan:
		return gpucore.TriangleFan
	case TriangleStrip:
		return gpucore.TriangleStrip
	default:
		panic(fmt.Sprintf("tess: unknown mode %d", int(m)))
	}
}

// applySize sets the point size or line width for m. Other modes ignore
// size and issue no call.
func applySize(dev gpucore.Device, m Mode, size float32) {
	switch m {
	case Point:
		dev.PointSize(size)
	case Line, LineStrip:
		dev.LineWidth(size)
	}
}
