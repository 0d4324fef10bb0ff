// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package trace provides a gpucore.Device decorator that logs every
// device call.
//
//	dev := trace.Wrap(gl33.New(), slog.Default())
//	t, err := tess.New(dev, tess.Triangle, vertices)
//
// Each call is logged at slog.LevelDebug with the operation in the "op"
// attribute, then forwarded unchanged. Failed allocations and writes are
// additionally logged at slog.LevelWarn.
package trace

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/tess/gpucore"
)

// Device forwards to a wrapped gpucore.Device and logs each call.
type Device struct {
	next   gpucore.Device
	logger *slog.Logger
	calls  atomic.Uint64
}

var _ gpucore.Device = (*Device)(nil)

// Wrap returns a tracing Device over next. A nil logger uses
// slog.Default().
func Wrap(next gpucore.Device, logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.Default()
	}
	return &Device{next: next, logger: logger}
}

// Unwrap returns the wrapped device.
func (d *Device) Unwrap() gpucore.Device { return d.next }

// Calls returns the number of device calls forwarded so far.
func (d *Device) Calls() uint64 { return d.calls.Load() }

func (d *Device) log(op string, args ...any) {
	d.calls.Add(1)
	if !d.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	d.logger.Debug("trace: "+op, append([]any{"op", op}, args...)...)
}

// CreateVertexArray implements gpucore.Device.
func (d *Device) CreateVertexArray() gpucore.VertexArrayID {
	id := d.next.CreateVertexArray()
	d.log("CreateVertexArray", "vao", id)
	return id
}

// BindVertexArray implements gpucore.Device.
func (d *Device) BindVertexArray(id gpucore.VertexArrayID) {
	d.log("BindVertexArray", "vao", id)
	d.next.BindVertexArray(id)
}

// DestroyVertexArray implements gpucore.Device.
func (d *Device) DestroyVertexArray(id gpucore.VertexArrayID) {
	d.log("DestroyVertexArray", "vao", id)
	d.next.DestroyVertexArray(id)
}

// CreateBuffer implements gpucore.Device.
func (d *Device) CreateBuffer(desc *gpucore.BufferDesc) (gpucore.BufferID, error) {
	id, err := d.next.CreateBuffer(desc)
	d.log("CreateBuffer", "buffer", id, "size", desc.Size, "label", desc.Label)
	if err != nil {
		d.logger.Warn("trace: CreateBuffer failed", "op", "CreateBuffer", "label", desc.Label, "err", err)
	}
	return id, err
}

// WriteBuffer implements gpucore.Device.
func (d *Device) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) error {
	err := d.next.WriteBuffer(id, offset, data)
	d.log("WriteBuffer", "buffer", id, "offset", offset, "bytes", len(data))
	if err != nil {
		d.logger.Warn("trace: WriteBuffer failed", "op", "WriteBuffer", "buffer", id, "err", err)
	}
	return err
}

// BindBuffer implements gpucore.Device.
func (d *Device) BindBuffer(target gpucore.BufferTarget, id gpucore.BufferID) {
	d.log("BindBuffer", "target", target, "buffer", id)
	d.next.BindBuffer(target, id)
}

// DestroyBuffers implements gpucore.Device.
func (d *Device) DestroyBuffers(ids ...gpucore.BufferID) {
	d.log("DestroyBuffers", "buffers", ids)
	d.next.DestroyBuffers(ids...)
}

// VertexAttribPointer implements gpucore.Device.
func (d *Device) VertexAttribPointer(p gpucore.AttribPointer) {
	d.log("VertexAttribPointer", attribArgs(p)...)
	d.next.VertexAttribPointer(p)
}

// VertexAttribIPointer implements gpucore.Device.
func (d *Device) VertexAttribIPointer(p gpucore.AttribPointer) {
	d.log("VertexAttribIPointer", attribArgs(p)...)
	d.next.VertexAttribIPointer(p)
}

func attribArgs(p gpucore.AttribPointer) []any {
	return []any{"index", p.Index, "size", p.Size, "type", p.Type, "stride", p.Stride, "offset", p.Offset}
}

// EnableVertexAttribArray implements gpucore.Device.
func (d *Device) EnableVertexAttribArray(index uint32) {
	d.log("EnableVertexAttribArray", "index", index)
	d.next.EnableVertexAttribArray(index)
}

// PointSize implements gpucore.Device.
func (d *Device) PointSize(size float32) {
	d.log("PointSize", "size", size)
	d.next.PointSize(size)
}

// LineWidth implements gpucore.Device.
func (d *Device) LineWidth(width float32) {
	d.log("LineWidth", "width", width)
	d.next.LineWidth(width)
}

// DrawArrays implements gpucore.Device.
func (d *Device) DrawArrays(mode gpucore.Primitive, first, count int32) {
	d.log("DrawArrays", "mode", mode, "first", first, "count", count)
	d.next.DrawArrays(mode, first, count)
}

// DrawArraysInstanced implements gpucore.Device.
func (d *Device) DrawArraysInstanced(mode gpucore.Primitive, first, count, instances int32) {
	d.log("DrawArraysInstanced", "mode", mode, "first", first, "count", count, "instances", instances)
	d.next.DrawArraysInstanced(mode, first, count, instances)
}

// DrawElements implements gpucore.Device.
func (d *Device) DrawElements(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr) {
	d.log("DrawElements", "mode", mode, "count", count, "index", typ, "offset", offset)
	d.next.DrawElements(mode, count, typ, offset)
}

// DrawElementsInstanced implements gpucore.Device.
func (d *Device) DrawElementsInstanced(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr, instances int32) {
	d.log("DrawElementsInstanced", "mode", mode, "count", count, "index", typ, "offset", offset, "instances", instances)
	d.next.DrawElementsInstanced(mode, count, typ, offset, instances)
}
