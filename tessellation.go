package tess

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/gogpu/tess/gpucore"
	"github.com/gogpu/tess/internal/cache"
)

// layouts memoizes validated attribute layouts per vertex type.
var layouts = cache.New[reflect.Type, []Attribute](64)

// Tessellation is GPU-resident geometry: a vertex-array-state, the
// buffers it owns, and the draw state needed to render it.
//
// A Tessellation is immutable after construction. It owns its
// vertex-array-state and buffers exactly once; Destroy releases them.
// Tessellations carry no device reference: every operation takes the
// device explicitly, and all operations on one device must happen on a
// single goroutine (see gpucore.Device).
type Tessellation struct {
	vao      gpucore.VertexArrayID
	buffers  []gpucore.BufferID
	mode     Mode
	prim     gpucore.Primitive
	dispatch Dispatch
	label    string

	destroyed bool
}

// NewIndexed uploads vertices and 32-bit indices and configures the
// attribute layout of T. Draws read vertices through the index buffer.
//
// Device errors during allocation or upload are returned; everything
// created up to that point is released first. An unsupported vertex
// format, or a format that does not match the size of T, panics.
func NewIndexed[T Vertex](dev gpucore.Device, mode Mode, vertices []T, indices []uint32, opts ...Option) (*Tessellation, error) {
	return build(dev, mode, vertices, indices, true, opts)
}

// New uploads vertices and configures the attribute layout of T.
// Draws read vertices in order.
//
// Error and panic behavior matches NewIndexed.
func New[T Vertex](dev gpucore.Device, mode Mode, vertices []T, opts ...Option) (*Tessellation, error) {
	return build(dev, mode, vertices, nil, false, opts)
}

// NewAttributeless creates a Tessellation with no buffers and no
// attributes. Draws issue count vertices and rely on the vertex shader to
// synthesize geometry from the vertex index.
func NewAttributeless(dev gpucore.Device, mode Mode, count uint32, opts ...Option) *Tessellation {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	prim := mode.Primitive()
	checkDrawLimit("vertex", count)

	vao := dev.CreateVertexArray()
	dev.BindVertexArray(vao)
	dev.BindVertexArray(gpucore.InvalidID)

	t := &Tessellation{
		vao:      vao,
		mode:     mode,
		prim:     prim,
		dispatch: Attributeless{VertexCount: count},
		label:    o.label,
	}
	t.logCreated()
	return t
}

func build[T Vertex](dev gpucore.Device, mode Mode, vertices []T, indices []uint32, indexed bool, opts []Option) (*Tessellation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	prim := mode.Primitive()
	checkLength("vertex", len(vertices))
	checkLength("index", len(indices))
	attrs := vertexLayout[T]()

	vao := dev.CreateVertexArray()
	dev.BindVertexArray(vao)

	vbo, err := upload(dev, vertices, gpucore.BufferUsageVertex|gpucore.BufferUsageCopyDst, o.bufferLabel("vertices"))
	if err != nil {
		dev.BindVertexArray(gpucore.InvalidID)
		dev.DestroyVertexArray(vao)
		return nil, err
	}
	dev.BindBuffer(gpucore.ArrayBuffer, vbo)
	bindLayout(dev, attrs)

	t := &Tessellation{
		vao:   vao,
		mode:  mode,
		prim:  prim,
		label: o.label,
	}

	if !indexed {
		dev.BindVertexArray(gpucore.InvalidID)
		t.buffers = []gpucore.BufferID{vbo}
		t.dispatch = NonIndexed{VertexCount: uint32(len(vertices)), VertexBuffer: vbo}
		t.logCreated()
		return t, nil
	}

	ibo, err := upload(dev, indices, gpucore.BufferUsageIndex|gpucore.BufferUsageCopyDst, o.bufferLabel("indices"))
	if err != nil {
		dev.BindVertexArray(gpucore.InvalidID)
		dev.DestroyVertexArray(vao)
		dev.DestroyBuffers(vbo)
		return nil, err
	}
	dev.BindBuffer(gpucore.ElementArrayBuffer, ibo)
	dev.BindVertexArray(gpucore.InvalidID)

	t.buffers = []gpucore.BufferID{vbo, ibo}
	t.dispatch = Indexed{IndexCount: uint32(len(indices)), IndexBuffer: ibo, VertexBuffer: vbo}
	t.logCreated()
	return t, nil
}

// vertexLayout resolves the attribute layout of T and checks it against
// the in-memory size of T. The result is shared and must not be modified.
func vertexLayout[T Vertex]() []Attribute {
	typ := reflect.TypeFor[T]()
	return layouts.GetOrCreate(typ, func() []Attribute {
		if ref, ok := hostReference(typ); ok {
			panic(fmt.Sprintf("tess: vertex type %v holds a %v (%v) and cannot be uploaded", typ, ref.Kind(), ref))
		}
		var zero T
		formats := zero.VertexFormat()
		attrs := ComputeLayout(formats)
		if w, size := VertexWeight(formats), elemSize[T](); uintptr(w) != size {
			panic(fmt.Sprintf("tess: vertex type %T is %d bytes but its format describes %d", zero, size, w))
		}
		return attrs
	})
}

// hostReference returns the first type within t whose in-memory value is
// a reference into host memory rather than plain vertex data.
func hostReference(t reflect.Type) (reflect.Type, bool) {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.String,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return t, true
	case reflect.Array:
		return hostReference(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if ref, ok := hostReference(t.Field(i).Type); ok {
				return ref, true
			}
		}
	}
	return nil, false
}

// checkLength panics when a slice holds more elements than a draw can
// address.
func checkLength(what string, n int) {
	if int64(n) > math.MaxInt32 {
		panic(fmt.Sprintf("tess: %s count %d exceeds device limit %d", what, n, math.MaxInt32))
	}
}

// upload allocates a buffer for data, fills it and takes its handle.
func upload[T any](dev gpucore.Device, data []T, usage gpucore.BufferUsage, label string) (gpucore.BufferID, error) {
	b, err := NewBuffer[T](dev, len(data), WithBufferUsage(usage), WithBufferLabel(label))
	if err != nil {
		return gpucore.InvalidID, err
	}
	if err := b.Fill(dev, data); err != nil {
		b.Destroy(dev)
		return gpucore.InvalidID, err
	}
	return b.Take(), nil
}

// Mode returns the primitive topology.
func (t *Tessellation) Mode() Mode {
	return t.mode
}

// Dispatch returns the draw state: Indexed, NonIndexed or Attributeless.
func (t *Tessellation) Dispatch() Dispatch {
	return t.dispatch
}

// VertexArray returns the vertex-array-state handle.
func (t *Tessellation) VertexArray() gpucore.VertexArrayID {
	return t.vao
}

// Buffers returns the owned buffer handles: [vertex] or [vertex, index],
// empty for attributeless tessellations.
func (t *Tessellation) Buffers() []gpucore.BufferID {
	return slices.Clone(t.buffers)
}

// Label returns the debug label set with WithLabel.
func (t *Tessellation) Label() string {
	return t.label
}

// Destroyed reports whether Destroy has been called.
func (t *Tessellation) Destroyed() bool {
	return t.destroyed
}

// Draw renders the tessellation instances times.
//
// The vertex-array-state is rebound on every call since other code may
// have changed the device binding in between. Point and Line modes apply
// the size set with WithSize, 1 by default.
//
// Drawing zero instances, or drawing after Destroy, panics.
func (t *Tessellation) Draw(dev gpucore.Device, instances uint32, opts ...DrawOption) {
	if t.destroyed {
		panic("tess: draw on destroyed tessellation")
	}
	call := Select(t.dispatch, instances)

	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dev.BindVertexArray(t.vao)
	applySize(dev, t.mode, o.size)
	call.issue(dev, t.prim)
}

// Destroy releases the vertex-array-state and all owned buffers, the
// buffers in a single batched call. Destroying twice logs a warning and
// does nothing.
func (t *Tessellation) Destroy(dev gpucore.Device) {
	if t.destroyed {
		Logger().Warn("tess: tessellation destroyed twice", "vao", t.vao, "label", t.label)
		return
	}
	t.destroyed = true

	dev.DestroyVertexArray(t.vao)
	if len(t.buffers) > 0 {
		dev.DestroyBuffers(t.buffers...)
	}
	Logger().Debug("tess: tessellation destroyed", "vao", t.vao, "buffers", len(t.buffers), "label", t.label)
}

func (t *Tessellation) logCreated() {
	l := Logger()
	switch d := t.dispatch.(type) {
	case Indexed:
		l.Debug("tess: indexed tessellation created", "mode", t.mode, "vao", t.vao,
			"indices", d.IndexCount, "label", t.label)
	case NonIndexed:
		l.Debug("tess: tessellation created", "mode", t.mode, "vao", t.vao,
			"vertices", d.VertexCount, "label", t.label)
	case Attributeless:
		l.Debug("tess: attributeless tessellation created", "mode", t.mode, "vao", t.vao,
			"vertices", d.VertexCount, "label", t.label)
	}
}
