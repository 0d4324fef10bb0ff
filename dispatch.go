package tess

import (
	"fmt"
	"math"

	"github.com/gogpu/tess/gpucore"
)

// Dispatch is the draw-time state of a Tessellation: which buffers it
// draws from and how many vertices or indices it covers. It is one of
// Indexed, NonIndexed or Attributeless.
type Dispatch interface {
	isDispatch()
}

// Indexed draws IndexCount 32-bit indices from IndexBuffer.
type Indexed struct {
	IndexCount   uint32
	IndexBuffer  gpucore.BufferID
	VertexBuffer gpucore.BufferID
}

// NonIndexed draws VertexCount vertices from VertexBuffer in order.
type NonIndexed struct {
	VertexCount  uint32
	VertexBuffer gpucore.BufferID
}

// Attributeless draws VertexCount vertices with no bound vertex data.
// The vertex shader synthesizes geometry from the vertex index.
type Attributeless struct {
	VertexCount uint32
}

func (Indexed) isDispatch()       {}
func (NonIndexed) isDispatch()    {}
func (Attributeless) isDispatch() {}

// DrawKind selects a device draw call.
type DrawKind uint8

// Draw call kinds.
const (
	DrawArrays DrawKind = iota
	DrawArraysInstanced
	DrawElements
	DrawElementsInstanced
)

// String returns the string representation of DrawKind.
func (k DrawKind) String() string {
	switch k {
	case DrawArrays:
		return "DrawArrays"
	case DrawArraysInstanced:
		return "DrawArraysInstanced"
	case DrawElements:
		return "DrawElements"
	case DrawElementsInstanced:
		return "DrawElementsInstanced"
	default:
		return fmt.Sprintf("DrawKind(%d)", int(k))
	}
}

// DrawCall is a resolved draw: the call to issue, the number of vertices
// or indices, and the instance count.
type DrawCall struct {
	Kind      DrawKind
	Count     uint32
	Instances uint32
}

// Select picks the draw call for d and the requested instance count.
// Zero instances, and counts the device cannot address (above
// math.MaxInt32), are programming errors and panic.
func Select(d Dispatch, instances uint32) DrawCall {
	checkDrawLimit("instance", instances)
	switch d := d.(type) {
	case Indexed:
		checkDrawLimit("index", d.IndexCount)
		switch {
		case instances == 1:
			return DrawCall{Kind: DrawElements, Count: d.IndexCount, Instances: 1}
		case instances > 1:
			return DrawCall{Kind: DrawElementsInstanced, Count: d.IndexCount, Instances: instances}
		default:
			panic("tess: cannot index-render 0 instances")
		}
	case NonIndexed:
		return selectArrays(d.VertexCount, instances)
	case Attributeless:
		return selectArrays(d.VertexCount, instances)
	default:
		panic(fmt.Sprintf("tess: unknown dispatch %T", d))
	}
}

func selectArrays(count, instances uint32) DrawCall {
	checkDrawLimit("vertex", count)
	switch {
	case instances == 1:
		return DrawCall{Kind: DrawArrays, Count: count, Instances: 1}
	case instances > 1:
		return DrawCall{Kind: DrawArraysInstanced, Count: count, Instances: instances}
	default:
		panic("tess: cannot render 0 instances")
	}
}

// checkDrawLimit panics when n does not fit the signed 32-bit counts
// device draw calls take.
func checkDrawLimit(what string, n uint32) {
	if n > math.MaxInt32 {
		panic(fmt.Sprintf("tess: %s count %d exceeds device limit %d", what, n, math.MaxInt32))
	}
}

// issue sends c to the device. Indices are read from offset 0 of the
// bound element buffer.
func (c DrawCall) issue(dev gpucore.Device, p gpucore.Primitive) {
	switch c.Kind {
	case DrawArrays:
		dev.DrawArrays(p, 0, int32(c.Count))
	case DrawArraysInstanced:
		dev.DrawArraysInstanced(p, 0, int32(c.Count), int32(c.Instances))
	case DrawElements:
		dev.DrawElements(p, int32(c.Count), gpucore.IndexUint32, 0)
	case DrawElementsInstanced:
		dev.DrawElementsInstanced(p, int32(c.Count), gpucore.IndexUint32, 0, int32(c.Instances))
	}
}
