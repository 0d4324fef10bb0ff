// Package coretest provides an in-memory gpucore.Device for tests.
//
// Recorder keeps the binding model of a real context (bound
// vertex-array-state, bound array buffer, per-array attribute slots and
// element buffer) and records every call in order, so tests can assert
// both the sequence of device calls and the state they leave behind.
package coretest

import (
	"github.com/gogpu/tess/gpucore"
)

// Op names a recorded device call.
type Op string

// Recorded operations, one per gpucore.Device method.
const (
	OpCreateVertexArray       Op = "CreateVertexArray"
	OpBindVertexArray         Op = "BindVertexArray"
	OpDestroyVertexArray      Op = "DestroyVertexArray"
	OpCreateBuffer            Op = "CreateBuffer"
	OpWriteBuffer             Op = "WriteBuffer"
	OpBindBuffer              Op = "BindBuffer"
	OpDestroyBuffers          Op = "DestroyBuffers"
	OpVertexAttribPointer     Op = "VertexAttribPointer"
	OpVertexAttribIPointer    Op = "VertexAttribIPointer"
	OpEnableVertexAttribArray Op = "EnableVertexAttribArray"
	OpPointSize               Op = "PointSize"
	OpLineWidth               Op = "LineWidth"
	OpDrawArrays              Op = "DrawArrays"
	OpDrawArraysInstanced     Op = "DrawArraysInstanced"
	OpDrawElements            Op = "DrawElements"
	OpDrawElementsInstanced   Op = "DrawElementsInstanced"
)

// Call is one recorded device call. Only the fields relevant to Op are set.
type Call struct {
	Op Op

	// VertexArray is the argument of vertex-array calls, and for draw
	// calls the vertex-array-state bound when the draw was issued.
	VertexArray gpucore.VertexArrayID

	Buffer  gpucore.BufferID
	Buffers []gpucore.BufferID
	Target  gpucore.BufferTarget
	Desc    gpucore.BufferDesc
	Offset  uint64
	Data    []byte

	Attrib gpucore.AttribPointer
	Index  uint32
	Size   float32

	Primitive   gpucore.Primitive
	First       int32
	Count       int32
	Instances   int32
	IndexType   gpucore.IndexType
	IndexOffset uintptr
}

// Attrib is the recorded state of one attribute slot.
type Attrib struct {
	gpucore.AttribPointer

	// Integer is true when the slot was bound with VertexAttribIPointer.
	Integer bool

	// Buffer is the array buffer bound when the pointer was set.
	Buffer gpucore.BufferID

	// Enabled reports whether EnableVertexAttribArray was called.
	Enabled bool
}

// VertexArray is the recorded state of one vertex-array-state object.
type VertexArray struct {
	Attribs       map[uint32]*Attrib
	ElementBuffer gpucore.BufferID
}

// Recorder is a gpucore.Device that records calls and tracks state.
// The zero value is ready to use.
type Recorder struct {
	// Calls is every call in issue order.
	Calls []Call

	// OnCreateBuffer, if set, is consulted before each allocation.
	// A non-nil error fails the allocation.
	OnCreateBuffer func(desc *gpucore.BufferDesc) error

	// OnWriteBuffer, if set, is consulted before each write.
	// A non-nil error fails the write.
	OnWriteBuffer func(id gpucore.BufferID, data []byte) error

	// BoundVertexArray is the active vertex-array-state.
	BoundVertexArray gpucore.VertexArrayID

	// BoundArrayBuffer is the buffer bound to gpucore.ArrayBuffer.
	BoundArrayBuffer gpucore.BufferID

	nextID       uint64
	vertexArrays map[gpucore.VertexArrayID]*VertexArray
	buffers      map[gpucore.BufferID][]byte
}

var _ gpucore.Device = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) init() {
	if r.vertexArrays == nil {
		r.vertexArrays = make(map[gpucore.VertexArrayID]*VertexArray)
		r.buffers = make(map[gpucore.BufferID][]byte)
	}
}

func (r *Recorder) id() uint64 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// CallsOf returns the recorded calls with the given op.
func (r *Recorder) CallsOf(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps device state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// VertexArray returns the recorded state of a live vertex-array-state.
func (r *Recorder) VertexArray(id gpucore.VertexArrayID) (*VertexArray, bool) {
	r.init()
	va, ok := r.vertexArrays[id]
	return va, ok
}

// BufferData returns the contents of a live buffer.
func (r *Recorder) BufferData(id gpucore.BufferID) ([]byte, bool) {
	r.init()
	b, ok := r.buffers[id]
	return b, ok
}

// LiveVertexArrays returns the number of vertex-array-state objects not
// yet destroyed.
func (r *Recorder) LiveVertexArrays() int {
	return len(r.vertexArrays)
}

// LiveBuffers returns the number of buffers not yet destroyed.
func (r *Recorder) LiveBuffers() int {
	return len(r.buffers)
}

// CreateVertexArray implements gpucore.Device.
func (r *Recorder) CreateVertexArray() gpucore.VertexArrayID {
	r.init()
	id := gpucore.VertexArrayID(r.id())
	r.vertexArrays[id] = &VertexArray{Attribs: make(map[uint32]*Attrib)}
	r.record(Call{Op: OpCreateVertexArray, VertexArray: id})
	return id
}

// BindVertexArray implements gpucore.Device.
func (r *Recorder) BindVertexArray(id gpucore.VertexArrayID) {
	r.BoundVertexArray = id
	r.record(Call{Op: OpBindVertexArray, VertexArray: id})
}

// DestroyVertexArray implements gpucore.Device.
func (r *Recorder) DestroyVertexArray(id gpucore.VertexArrayID) {
	r.init()
	delete(r.vertexArrays, id)
	if r.BoundVertexArray == id {
		r.BoundVertexArray = gpucore.InvalidID
	}
	r.record(Call{Op: OpDestroyVertexArray, VertexArray: id})
}

// CreateBuffer implements gpucore.Device.
func (r *Recorder) CreateBuffer(desc *gpucore.BufferDesc) (gpucore.BufferID, error) {
	r.init()
	r.record(Call{Op: OpCreateBuffer, Desc: *desc})
	if r.OnCreateBuffer != nil {
		if err := r.OnCreateBuffer(desc); err != nil {
			return gpucore.InvalidID, err
		}
	}
	id := gpucore.BufferID(r.id())
	r.buffers[id] = make([]byte, desc.Size)
	r.Calls[len(r.Calls)-1].Buffer = id
	return id, nil
}

// WriteBuffer implements gpucore.Device.
func (r *Recorder) WriteBuffer(id gpucore.BufferID, offset uint64, data []byte) error {
	r.init()
	r.record(Call{Op: OpWriteBuffer, Buffer: id, Offset: offset, Data: append([]byte(nil), data...)})
	if r.OnWriteBuffer != nil {
		if err := r.OnWriteBuffer(id, data); err != nil {
			return err
		}
	}
	buf := r.buffers[id]
	copy(buf[min(offset, uint64(len(buf))):], data)
	return nil
}

// BindBuffer implements gpucore.Device.
func (r *Recorder) BindBuffer(target gpucore.BufferTarget, id gpucore.BufferID) {
	r.init()
	switch target {
	case gpucore.ArrayBuffer:
		r.BoundArrayBuffer = id
	case gpucore.ElementArrayBuffer:
		if va, ok := r.vertexArrays[r.BoundVertexArray]; ok {
			va.ElementBuffer = id
		}
	}
	r.record(Call{Op: OpBindBuffer, Target: target, Buffer: id, VertexArray: r.BoundVertexArray})
}

// DestroyBuffers implements gpucore.Device.
func (r *Recorder) DestroyBuffers(ids ...gpucore.BufferID) {
	r.init()
	for _, id := range ids {
		delete(r.buffers, id)
		if r.BoundArrayBuffer == id {
			r.BoundArrayBuffer = gpucore.InvalidID
		}
	}
	r.record(Call{Op: OpDestroyBuffers, Buffers: append([]gpucore.BufferID(nil), ids...)})
}

func (r *Recorder) attrib(p gpucore.AttribPointer, integer bool) {
	r.init()
	if va, ok := r.vertexArrays[r.BoundVertexArray]; ok {
		a := va.Attribs[p.Index]
		if a == nil {
			a = &Attrib{}
			va.Attribs[p.Index] = a
		}
		a.AttribPointer = p
		a.Integer = integer
		a.Buffer = r.BoundArrayBuffer
	}
}

// VertexAttribPointer implements gpucore.Device.
func (r *Recorder) VertexAttribPointer(p gpucore.AttribPointer) {
	r.attrib(p, false)
	r.record(Call{Op: OpVertexAttribPointer, Attrib: p, VertexArray: r.BoundVertexArray, Buffer: r.BoundArrayBuffer})
}

// VertexAttribIPointer implements gpucore.Device.
func (r *Recorder) VertexAttribIPointer(p gpucore.AttribPointer) {
	r.attrib(p, true)
	r.record(Call{Op: OpVertexAttribIPointer, Attrib: p, VertexArray: r.BoundVertexArray, Buffer: r.BoundArrayBuffer})
}

// EnableVertexAttribArray implements gpucore.Device.
func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.init()
	if va, ok := r.vertexArrays[r.BoundVertexArray]; ok {
		a := va.Attribs[index]
		if a == nil {
			a = &Attrib{}
			va.Attribs[index] = a
		}
		a.Enabled = true
	}
	r.record(Call{Op: OpEnableVertexAttribArray, Index: index, VertexArray: r.BoundVertexArray})
}

// PointSize implements gpucore.Device.
func (r *Recorder) PointSize(size float32) {
	r.record(Call{Op: OpPointSize, Size: size})
}

// LineWidth implements gpucore.Device.
func (r *Recorder) LineWidth(width float32) {
	r.record(Call{Op: OpLineWidth, Size: width})
}

// DrawArrays implements gpucore.Device.
func (r *Recorder) DrawArrays(mode gpucore.Primitive, first, count int32) {
	r.record(Call{Op: OpDrawArrays, Primitive: mode, First: first, Count: count, Instances: 1,
		VertexArray: r.BoundVertexArray})
}

// DrawArraysInstanced implements gpucore.Device.
func (r *Recorder) DrawArraysInstanced(mode gpucore.Primitive, first, count, instances int32) {
	r.record(Call{Op: OpDrawArraysInstanced, Primitive: mode, First: first, Count: count, Instances: instances,
		VertexArray: r.BoundVertexArray})
}

// DrawElements implements gpucore.Device.
func (r *Recorder) DrawElements(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr) {
	r.record(Call{Op: OpDrawElements, Primitive: mode, Count: count, Instances: 1, IndexType: typ,
		IndexOffset: offset, VertexArray: r.BoundVertexArray})
}

// DrawElementsInstanced implements gpucore.Device.
func (r *Recorder) DrawElementsInstanced(mode gpucore.Primitive, count int32, typ gpucore.IndexType, offset uintptr, instances int32) {
	r.record(Call{Op: OpDrawElementsInstanced, Primitive: mode, Count: count, Instances: instances, IndexType: typ,
		IndexOffset: offset, VertexArray: r.BoundVertexArray})
}
