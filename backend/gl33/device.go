// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl33

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/tess/backend"
	"github.com/gogpu/tess/gpucore"
)

var initOnce = sync.OnceValue(gl.Init)

// Init loads GL function pointers for the current context. It must be
// called with a current context before any Device method. Subsequent
// calls return the first result.
func Init() error {
	if err := initOnce(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotInitialized, err)
	}
	l := slogger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("gl33: initialized",
			"version", gl.GoStr(gl.GetString(gl.VERSION)),
			"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	}
	return nil
}

// Device is a gpucore.Device over the current GL context.
//
// GL objects are referenced by their GL names widened to 64 bits. The
// zero value is ready to use once Init has succeeded.
type Device struct{}

var (
	_ gpucore.Device = (*Device)(nil)
	_ backend.Device = (*Device)(nil)
)

// New returns a Device for the current context.
func New() *Device {
	return &Device{}
}

// Name implements backend.Device.
func (d *Device) Name() string { return backend.BackendGL33 }

// Close implements backend.Device. The GL context belongs to the window
// system, so there is nothing to release.
func (d *Device) Close() {}

// CreateVertexArray implements gpucore.Device.
func (d *Device) CreateVertexArray() gpucore.VertexArrayID {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return gpucore.VertexArrayID(vao)
}

// BindVertexArray implements gpucore.Device.
func (d *Device) BindVertexArray(id gpucore.VertexArrayID) {
	gl.BindVertexArray(uint32(id))
}

// DestroyVertexArray implements gpucore.Device.
func (d *Device) DestroyVertexArray(id gpucore.VertexArrayID) {
	vao := uint32(id)
	gl.DeleteVertexArrays(1, &vao)
}

// CreateBuffer implements gpucore.Device. Storage is allocated
// uninitialized; the previous GL_ARRAY_BUFFER binding is restored.
func (d *Device) CreateBuffer(desc *gpucore.BufferDesc) (gpucore.BufferID, error) {
	var buf uint32
	gl.GenBuffers(1, &buf)

	prev := boundArrayBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, int(desc.Size), nil, usageHint(desc.Usage))
	err := checkError()
	gl.BindBuffer(gl.ARRAY_BUFFER, prev)

	if err != nil {
		gl.DeleteBuffers(1, &buf)
		return gpucore.InvalidID, fmt.Errorf("gl33: allocate %q (%d bytes): %w", desc.Label, desc.Size, err)
	}
	slogger().Debug("gl33: buffer created", "buffer", buf, "size", desc.Size, "label", desc.Label)
	return gpucore.BufferID(buf), nil
}

// WriteBuffer implements gpucore.Device.
func (d *Device) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	prev := boundArrayBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(id))
	gl.BufferSubData(gl.ARRAY_BUFFER, int(offset), len(data), unsafe.Pointer(&data[0]))
	err := checkError()
	gl.BindBuffer(gl.ARRAY_BUFFER, prev)

	if err != nil {
		return fmt.Errorf("gl33: write buffer %d: %w", id, err)
	}
	return nil
}

// BindBuffer implements gpucore.Device.
func (d *Device) BindBuffer(target gpucore.BufferTarget, id gpucore.BufferID) {
	gl.BindBuffer(bufferTarget(target), uint32(id))
}

// DestroyBuffers implements gpucore.Device with a single glDeleteBuffers.
func (d *Device) DestroyBuffers(ids ...gpucore.BufferID) {
	if len(ids) == 0 {
		return
	}
	names := make([]uint32, len(ids))
	for i, id := range ids {
		names[i] = uint32(id)
	}
	gl.DeleteBuffers(int32(len(names)), &names[0])
}

// VertexAttribPointer implements gpucore.Device.
func (d *Device) VertexAttribPointer(p gpucore.AttribPointer) {
	gl.VertexAttribPointerWithOffset(p.Index, p.Size, scalarType(p.Type), p.Normalized, p.Stride, p.Offset)
}

// VertexAttribIPointer implements gpucore.Device.
func (d *Device) VertexAttribIPointer(p gpucore.AttribPointer) {
	gl.VertexAttribIPointerWithOffset(p.Index, p.Size, scalarType(p.Type), p.Stride, p.Offset)
}

// EnableVertexAttribArray implements gpucore.Device.
func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// PointSize implements gpucore.Device.
func (d *Device) PointSize(size float32) {
	gl.PointSize(size)
}

// LineWidth implements gpucore.Device. Core profiles may reject widths
// other than 1.
func (d *Device) LineWidth(width float32) {
	gl.LineWidth(width)
}

// DrawArrays implements gpucore.Device.
func (d *Device) DrawArrays(mode gpucore.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

// DrawArraysInstanced implements gpucore.Device.
func (d *Device) DrawArraysInstanced(mode gpucore.Primitive, first, count, instances int32) {
	gl.DrawArraysInstanced(primitive(mode), first, count, instances)
}

// DrawElements implements gpucore.Device.
func (d *Device) DrawElements(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr) {
	gl.DrawElementsWithOffset(primitive(mode), count, indexType(typ), offset)
}

// DrawElementsInstanced implements gpucore.Device.
func (d *Device) DrawElementsInstanced(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr, instances int32) {
	gl.DrawElementsInstanced(primitive(mode), count, indexType(typ), gl.PtrOffset(int(offset)), instances)
}

func boundArrayBuffer() uint32 {
	var name int32
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &name)
	return uint32(name)
}
