// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/gpucore"
)

// Topology returns the WebGPU primitive topology for p.
// TriangleFan has no WebGPU equivalent and panics.
func Topology(p gpucore.Primitive) gputypes.PrimitiveTopology {
	switch p {
	case gpucore.Points:
		return gputypes.PrimitiveTopologyPointList
	case gpucore.Lines:
		return gputypes.PrimitiveTopologyLineList
	case gpucore.LineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	case gpucore.Triangles:
		return gputypes.PrimitiveTopologyTriangleList
	case gpucore.TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	case gpucore.TriangleFan:
		panic("wgpu: triangle fans are not supported")
	default:
		panic(fmt.Sprintf("wgpu: unknown primitive %v", p))
	}
}

// VertexFormat returns the WebGPU vertex format for an attribute pointer.
// integer selects integer fetch (VertexAttribIPointer); otherwise the
// attribute is read as float, normalized when p.Normalized is set.
// Shapes WebGPU cannot express panic.
func VertexFormat(p gpucore.AttribPointer, integer bool) gputypes.VertexFormat {
	if p.Size < 1 || p.Size > 4 {
		panic(fmt.Sprintf("wgpu: attribute %d has %d components", p.Index, p.Size))
	}
	f := lookupVertexFormat(p, integer)
	if f == gputypes.VertexFormatUndefined {
		panic(fmt.Sprintf("wgpu: no vertex format for %d×%v (integer=%t, normalized=%t)",
			p.Size, p.Type, integer, p.Normalized))
	}
	return f
}

// Supports reports whether every component of a vertex format can be
// expressed as a WebGPU vertex format. Call it before building a
// tessellation on this backend: 8- and 16-bit components with 1 or 3
// elements are valid for tess but have no WebGPU format.
func Supports(formats ...tess.VertexComponentFormat) bool {
	for _, f := range formats {
		if !f.Supported() {
			return false
		}
		a := tess.ComputeLayout([]tess.VertexComponentFormat{f})[0]
		p := gpucore.AttribPointer{Size: a.Size, Type: a.Type}
		if lookupVertexFormat(p, a.Integer) == gputypes.VertexFormatUndefined {
			return false
		}
	}
	return true
}

// lookupVertexFormat returns VertexFormatUndefined for shapes WebGPU
// cannot express. p.Size must be 1 to 4.
func lookupVertexFormat(p gpucore.AttribPointer, integer bool) gputypes.VertexFormat {
	var formats [5]gputypes.VertexFormat
	switch {
	case p.Type == gpucore.Float && !integer:
		formats = [5]gputypes.VertexFormat{1: gputypes.VertexFormatFloat32, 2: gputypes.VertexFormatFloat32x2,
			3: gputypes.VertexFormatFloat32x3, 4: gputypes.VertexFormatFloat32x4}
	case p.Type == gpucore.Int && integer:
		formats = [5]gputypes.VertexFormat{1: gputypes.VertexFormatSint32, 2: gputypes.VertexFormatSint32x2,
			3: gputypes.VertexFormatSint32x3, 4: gputypes.VertexFormatSint32x4}
	case p.Type == gpucore.UnsignedInt && integer:
		formats = [5]gputypes.VertexFormat{1: gputypes.VertexFormatUint32, 2: gputypes.VertexFormatUint32x2,
			3: gputypes.VertexFormatUint32x3, 4: gputypes.VertexFormatUint32x4}
	case p.Type == gpucore.Byte && integer:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatSint8x2, 4: gputypes.VertexFormatSint8x4}
	case p.Type == gpucore.UnsignedByte && integer:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatUint8x2, 4: gputypes.VertexFormatUint8x4}
	case p.Type == gpucore.Short && integer:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatSint16x2, 4: gputypes.VertexFormatSint16x4}
	case p.Type == gpucore.UnsignedShort && integer:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatUint16x2, 4: gputypes.VertexFormatUint16x4}
	case p.Type == gpucore.Byte && p.Normalized:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatSnorm8x2, 4: gputypes.VertexFormatSnorm8x4}
	case p.Type == gpucore.UnsignedByte && p.Normalized:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatUnorm8x2, 4: gputypes.VertexFormatUnorm8x4}
	case p.Type == gpucore.Short && p.Normalized:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatSnorm16x2, 4: gputypes.VertexFormatSnorm16x4}
	case p.Type == gpucore.UnsignedShort && p.Normalized:
		formats = [5]gputypes.VertexFormat{2: gputypes.VertexFormatUnorm16x2, 4: gputypes.VertexFormatUnorm16x4}
	}
	return formats[p.Size]
}
