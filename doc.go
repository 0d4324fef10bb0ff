// Package tess manages GPU-resident geometry and its draw calls.
//
// # Overview
//
// A [Tessellation] is the unit of geometry on the device: a
// vertex-array-state, the vertex and index buffers it owns, and the draw
// state needed to render it. tess uploads host vertex data, binds every
// vertex component to an attribute slot with the correct stride, offset,
// component count and scalar type, and picks the matching draw call each
// frame.
//
// # Quick Start
//
//	type Vertex struct {
//		Pos   [2]float32
//		Color [4]uint8
//	}
//
//	func (Vertex) VertexFormat() []tess.VertexComponentFormat {
//		return []tess.VertexComponentFormat{tess.Float(tess.Dim2), tess.Uint(tess.Dim4, 8)}
//	}
//
//	quad, err := tess.NewIndexed(dev, tess.Triangle, vertices, []uint32{0, 1, 2, 2, 3, 0})
//	if err != nil {
//		return err
//	}
//	defer quad.Destroy(dev)
//
//	quad.Draw(dev, 1)   // one indexed draw
//	quad.Draw(dev, 64)  // one instanced indexed draw
//
// # Devices
//
// Every operation takes a [gpucore.Device], the explicit handle to the
// graphics context. The device binding state is shared process-wide, so
// construction leaves no vertex-array-state bound and every draw rebinds
// its own. A Device is not safe for concurrent use.
//
// Backends live in sub-packages:
//   - backend/gl33: OpenGL 3.3 core via go-gl
//   - backend/wgpu: WebGPU via gogpu/wgpu HAL
//   - backend/trace: logging decorator around any Device
//
// # Attribute Layout
//
// A vertex type describes itself with [Vertex]. Component i is bound to
// attribute slot i at the byte offset of the components before it; the
// stride is the sum of all component sizes. Floating components use float
// fetches, Integral, Unsigned and Boolean components use pure integer
// fetches.
//
// # Errors
//
// Device failures while allocating or filling buffers are returned as
// errors. Programming errors panic: an unsupported vertex component
// format, a vertex format that does not match its Go type size, a draw
// with zero instances, and a draw after Destroy.
package tess
