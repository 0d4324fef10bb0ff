// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl33

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/tess/gpucore"
)

// primitive returns the GL draw mode for p.
func primitive(p gpucore.Primitive) uint32 {
	switch p {
	case gpucore.Points:
		return gl.POINTS
	case gpucore.Lines:
		return gl.LINES
	case gpucore.LineStrip:
		return gl.LINE_STRIP
	case gpucore.Triangles:
		return gl.TRIANGLES
	case gpucore.TriangleFan:
		return gl.TRIANGLE_FAN
	case gpucore.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		panic(fmt.Sprintf("gl33: unknown primitive %v", p))
	}
}

// scalarType returns the GL component type for t.
func scalarType(t gpucore.ScalarType) uint32 {
	switch t {
	case gpucore.Byte:
		return gl.BYTE
	case gpucore.UnsignedByte:
		return gl.UNSIGNED_BYTE
	case gpucore.Short:
		return gl.SHORT
	case gpucore.UnsignedShort:
		return gl.UNSIGNED_SHORT
	case gpucore.Int:
		return gl.INT
	case gpucore.UnsignedInt:
		return gl.UNSIGNED_INT
	case gpucore.Float:
		return gl.FLOAT
	default:
		panic(fmt.Sprintf("gl33: unknown scalar type %v", t))
	}
}

// indexType returns the GL index type for t.
func indexType(t gpucore.IndexType) uint32 {
	switch t {
	case gpucore.IndexUint32:
		return gl.UNSIGNED_INT
	default:
		panic(fmt.Sprintf("gl33: unknown index type %v", t))
	}
}

// bufferTarget returns the GL binding point for t.
func bufferTarget(t gpucore.BufferTarget) uint32 {
	switch t {
	case gpucore.ArrayBuffer:
		return gl.ARRAY_BUFFER
	case gpucore.ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	default:
		panic(fmt.Sprintf("gl33: unknown buffer target %v", t))
	}
}

// usageHint returns the GL storage hint for u.
func usageHint(u gpucore.BufferUsage) uint32 {
	if u&(gpucore.BufferUsageVertex|gpucore.BufferUsageIndex) != 0 {
		return gl.STATIC_DRAW
	}
	return gl.DYNAMIC_DRAW
}
