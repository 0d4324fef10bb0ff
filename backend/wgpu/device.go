// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tess/backend"
	"github.com/gogpu/tess/gpucore"
)

// bufferAlign is the WebGPU alignment for buffer sizes and write offsets.
const bufferAlign = 4

// buffer is a HAL buffer and its padded size.
type buffer struct {
	raw   hal.Buffer
	size  uint64
	label string
}

// attribute is one recorded attribute slot of a vertex array.
type attribute struct {
	format  gputypes.VertexFormat
	offset  uint64
	stride  uint64
	buffer  gpucore.BufferID
	enabled bool
}

// vertexArray is the emulated vertex-array-state.
type vertexArray struct {
	attribs map[uint32]*attribute
	index   gpucore.BufferID
}

// vertexBuffer returns the buffer every enabled attribute reads from,
// or InvalidID when there are none.
func (va *vertexArray) vertexBuffer() gpucore.BufferID {
	for _, a := range va.attribs {
		if a.enabled {
			return a.buffer
		}
	}
	return gpucore.InvalidID
}

// Device is a gpucore.Device over a HAL device and queue.
//
// Device is not safe for concurrent use; like a GL context it belongs to
// one goroutine.
type Device struct {
	name   string
	device hal.Device
	queue  hal.Queue

	// Set by NewNoop; released by Close.
	instance hal.Instance
	owned    bool

	nextID       uint64
	vertexArrays map[gpucore.VertexArrayID]*vertexArray
	buffers      map[gpucore.BufferID]*buffer

	bound       gpucore.VertexArrayID
	arrayBuffer gpucore.BufferID
	pass        hal.RenderPassEncoder
}

var (
	_ gpucore.Device = (*Device)(nil)
	_ backend.Device = (*Device)(nil)
)

// New returns a Device that allocates on device and writes through
// queue. The caller keeps ownership of both.
func New(device hal.Device, queue hal.Queue) *Device {
	return newDevice("wgpu", device, queue)
}

func newDevice(name string, device hal.Device, queue hal.Queue) *Device {
	return &Device{
		name:         name,
		device:       device,
		queue:        queue,
		vertexArrays: make(map[gpucore.VertexArrayID]*vertexArray),
		buffers:      make(map[gpucore.BufferID]*buffer),
	}
}

// Name implements backend.Device.
func (d *Device) Name() string { return d.name }

// Close implements backend.Device. It destroys the HAL device and
// instance when the Device opened them itself (NewNoop).
func (d *Device) Close() {
	if !d.owned {
		return
	}
	d.owned = false
	for id, b := range d.buffers {
		d.device.DestroyBuffer(b.raw)
		delete(d.buffers, id)
	}
	d.device.Destroy()
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	slogger().Debug("wgpu: device closed", "name", d.name)
}

// SetRenderPass sets the render pass that draw calls are recorded into.
// Pass nil once the pass has ended.
func (d *Device) SetRenderPass(pass hal.RenderPassEncoder) {
	d.pass = pass
}

// VertexLayout returns the vertex buffer layout recorded for a vertex
// array, for use in render pipeline creation. Attributes are ordered by
// shader location. An attributeless vertex array has an empty layout.
func (d *Device) VertexLayout(id gpucore.VertexArrayID) (gputypes.VertexBufferLayout, bool) {
	va, ok := d.vertexArrays[id]
	if !ok {
		return gputypes.VertexBufferLayout{}, false
	}
	layout := gputypes.VertexBufferLayout{StepMode: gputypes.VertexStepModeVertex}
	locations := make([]uint32, 0, len(va.attribs))
	for loc, a := range va.attribs {
		if a.enabled {
			locations = append(locations, loc)
		}
	}
	slices.Sort(locations)
	for _, loc := range locations {
		a := va.attribs[loc]
		layout.ArrayStride = a.stride
		layout.Attributes = append(layout.Attributes, gputypes.VertexAttribute{
			Format:         a.format,
			Offset:         a.offset,
			ShaderLocation: loc,
		})
	}
	return layout, true
}

// CreateVertexArray implements gpucore.Device.
func (d *Device) CreateVertexArray() gpucore.VertexArrayID {
	d.nextID++
	id := gpucore.VertexArrayID(d.nextID)
	d.vertexArrays[id] = &vertexArray{attribs: make(map[uint32]*attribute)}
	return id
}

// BindVertexArray implements gpucore.Device.
func (d *Device) BindVertexArray(id gpucore.VertexArrayID) {
	if id != gpucore.InvalidID {
		if _, ok := d.vertexArrays[id]; !ok {
			panic(fmt.Sprintf("wgpu: bind of unknown vertex array %d", id))
		}
	}
	d.bound = id
}

// DestroyVertexArray implements gpucore.Device.
func (d *Device) DestroyVertexArray(id gpucore.VertexArrayID) {
	delete(d.vertexArrays, id)
	if d.bound == id {
		d.bound = gpucore.InvalidID
	}
}

// CreateBuffer implements gpucore.Device. The buffer is usable as both
// vertex and index data, and its size is rounded up to 4 bytes.
func (d *Device) CreateBuffer(desc *gpucore.BufferDesc) (gpucore.BufferID, error) {
	size := alignUp(max(desc.Size, bufferAlign))
	raw, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: desc.Label,
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("wgpu: create buffer %q (%d bytes): %w", desc.Label, size, err)
	}
	d.nextID++
	id := gpucore.BufferID(d.nextID)
	d.buffers[id] = &buffer{raw: raw, size: size, label: desc.Label}
	slogger().Debug("wgpu: buffer created", "buffer", id, "size", size, "label", desc.Label)
	return id, nil
}

// WriteBuffer implements gpucore.Device. Data whose length is not a
// multiple of 4 is zero-padded.
func (d *Device) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) error {
	b, ok := d.buffers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, id)
	}
	if offset%bufferAlign != 0 {
		return fmt.Errorf("%w: offset %d", ErrUnalignedOffset, offset)
	}
	if len(data) == 0 {
		return nil
	}
	if n := uint64(len(data)); n%bufferAlign != 0 {
		padded := make([]byte, alignUp(n))
		copy(padded, data)
		data = padded
	}
	if offset+uint64(len(data)) > b.size {
		return fmt.Errorf("%w: %d bytes at %d into %d", ErrOutOfRange, len(data), offset, b.size)
	}
	if err := d.queue.WriteBuffer(b.raw, offset, data); err != nil {
		return fmt.Errorf("wgpu: write buffer %d: %w", id, err)
	}
	return nil
}

// BindBuffer implements gpucore.Device. Binding an element buffer
// records it in the bound vertex array.
func (d *Device) BindBuffer(target gpucore.BufferTarget, id gpucore.BufferID) {
	switch target {
	case gpucore.ArrayBuffer:
		d.arrayBuffer = id
	case gpucore.ElementArrayBuffer:
		d.boundArray("element buffer binding").index = id
	default:
		panic(fmt.Sprintf("wgpu: unknown buffer target %v", target))
	}
}

// DestroyBuffers implements gpucore.Device.
func (d *Device) DestroyBuffers(ids ...gpucore.BufferID) {
	for _, id := range ids {
		b, ok := d.buffers[id]
		if !ok {
			continue
		}
		d.device.DestroyBuffer(b.raw)
		delete(d.buffers, id)
		if d.arrayBuffer == id {
			d.arrayBuffer = gpucore.InvalidID
		}
	}
}

// VertexAttribPointer implements gpucore.Device.
func (d *Device) VertexAttribPointer(p gpucore.AttribPointer) {
	d.attribPointer(p, false)
}

// VertexAttribIPointer implements gpucore.Device.
func (d *Device) VertexAttribIPointer(p gpucore.AttribPointer) {
	d.attribPointer(p, true)
}

func (d *Device) attribPointer(p gpucore.AttribPointer, integer bool) {
	va := d.boundArray("attribute pointer")
	if d.arrayBuffer == gpucore.InvalidID {
		panic(fmt.Sprintf("wgpu: attribute %d set with no array buffer bound", p.Index))
	}
	format := VertexFormat(p, integer)
	for loc, other := range va.attribs {
		if loc == p.Index || other.buffer == gpucore.InvalidID {
			continue
		}
		if other.buffer != d.arrayBuffer || other.stride != uint64(p.Stride) {
			panic("wgpu: vertex array attributes must share one interleaved buffer")
		}
	}
	a := va.attribs[p.Index]
	if a == nil {
		a = &attribute{}
		va.attribs[p.Index] = a
	}
	a.format = format
	a.offset = uint64(p.Offset)
	a.stride = uint64(p.Stride)
	a.buffer = d.arrayBuffer
}

// EnableVertexAttribArray implements gpucore.Device.
func (d *Device) EnableVertexAttribArray(index uint32) {
	va := d.boundArray("attribute enable")
	a := va.attribs[index]
	if a == nil {
		a = &attribute{}
		va.attribs[index] = a
	}
	a.enabled = true
}

// PointSize implements gpucore.Device. WebGPU points are always one
// pixel; other sizes are logged and ignored.
func (d *Device) PointSize(size float32) {
	if size != 1 {
		slogger().Debug("wgpu: point size ignored", "size", size)
	}
}

// LineWidth implements gpucore.Device. WebGPU lines are always one
// pixel wide; other widths are logged and ignored.
func (d *Device) LineWidth(width float32) {
	if width != 1 {
		slogger().Debug("wgpu: line width ignored", "width", width)
	}
}

// DrawArrays implements gpucore.Device.
func (d *Device) DrawArrays(mode gpucore.Primitive, first, count int32) {
	d.DrawArraysInstanced(mode, first, count, 1)
}

// DrawArraysInstanced implements gpucore.Device.
func (d *Device) DrawArraysInstanced(mode gpucore.Primitive, first, count, instances int32) {
	pass := d.prepare(mode)
	pass.Draw(uint32(count), uint32(instances), uint32(first), 0)
}

// DrawElements implements gpucore.Device.
func (d *Device) DrawElements(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr) {
	d.DrawElementsInstanced(mode, count, typ, offset, 1)
}

// DrawElementsInstanced implements gpucore.Device.
func (d *Device) DrawElementsInstanced(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr, instances int32) {
	if typ != gpucore.IndexUint32 {
		panic(fmt.Sprintf("wgpu: unknown index type %v", typ))
	}
	pass := d.prepare(mode)
	va := d.vertexArrays[d.bound]
	ib, ok := d.buffers[va.index]
	if !ok {
		panic("wgpu: indexed draw with no element buffer")
	}
	pass.SetIndexBuffer(ib.raw, gputypes.IndexFormatUint32, uint64(offset))
	pass.DrawIndexed(uint32(count), uint32(instances), 0, 0, 0)
}

// prepare validates draw state and binds the vertex buffer of the bound
// vertex array to slot 0.
func (d *Device) prepare(mode gpucore.Primitive) hal.RenderPassEncoder {
	Topology(mode)
	if d.pass == nil {
		panic("wgpu: draw with no render pass set")
	}
	va := d.boundArray("draw")
	if id := va.vertexBuffer(); id != gpucore.InvalidID {
		vb, ok := d.buffers[id]
		if !ok {
			panic(fmt.Sprintf("wgpu: draw reads destroyed buffer %d", id))
		}
		d.pass.SetVertexBuffer(0, vb.raw, 0)
	}
	return d.pass
}

func (d *Device) boundArray(op string) *vertexArray {
	va, ok := d.vertexArrays[d.bound]
	if !ok {
		panic(fmt.Sprintf("wgpu: %s with no vertex array bound", op))
	}
	return va
}

func alignUp(n uint64) uint64 {
	return (n + bufferAlign - 1) &^ (bufferAlign - 1)
}
