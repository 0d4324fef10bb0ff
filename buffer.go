package tess

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/tess/gpucore"
)

// Buffer errors.
var (
	// ErrBufferOverflow is returned when filling a buffer with more
	// elements than it was allocated for.
	ErrBufferOverflow = errors.New("tess: data exceeds buffer capacity")

	// ErrBufferTaken is returned when operating on a buffer whose handle
	// has been transferred with Take.
	ErrBufferTaken = errors.New("tess: buffer handle has been taken")
)

// BufferOption configures a buffer allocation.
type BufferOption func(*gpucore.BufferDesc)

// WithBufferLabel sets the debug label of the allocated buffer.
func WithBufferLabel(label string) BufferOption {
	return func(d *gpucore.BufferDesc) {
		d.Label = label
	}
}

// WithBufferUsage sets the usage flags of the allocated buffer.
func WithBufferUsage(usage gpucore.BufferUsage) BufferOption {
	return func(d *gpucore.BufferDesc) {
		d.Usage = usage
	}
}

// Buffer is a fixed-capacity device buffer holding elements of type T.
//
// A Buffer owns its device handle until Take transfers it. Take is the
// only way ownership leaves a Buffer; Destroy after Take is a no-op, so a
// handle can never be released twice through the same Buffer.
type Buffer[T any] struct {
	id  gpucore.BufferID
	len int
}

// NewBuffer allocates a device buffer with room for n elements of T.
func NewBuffer[T any](dev gpucore.Device, n int, opts ...BufferOption) (*Buffer[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("tess: negative buffer length %d", n)
	}
	desc := gpucore.BufferDesc{
		Size:  uint64(n) * uint64(elemSize[T]()),
		Usage: gpucore.BufferUsageVertex | gpucore.BufferUsageCopyDst,
	}
	for _, opt := range opts {
		opt(&desc)
	}
	id, err := dev.CreateBuffer(&desc)
	if err != nil {
		return nil, fmt.Errorf("tess: allocate %d-byte buffer: %w", desc.Size, err)
	}
	Logger().Debug("tess: buffer allocated", "id", id, "len", n, "bytes", desc.Size, "label", desc.Label)
	return &Buffer[T]{id: id, len: n}, nil
}

// Len returns the capacity of the buffer in elements.
func (b *Buffer[T]) Len() int {
	return b.len
}

// Handle returns the device handle without transferring ownership.
// It returns gpucore.InvalidID after Take.
func (b *Buffer[T]) Handle() gpucore.BufferID {
	return b.id
}

// Fill copies data into the buffer starting at element 0.
func (b *Buffer[T]) Fill(dev gpucore.Device, data []T) error {
	if b.id == gpucore.InvalidID {
		return ErrBufferTaken
	}
	if len(data) > b.len {
		return fmt.Errorf("%w: %d elements into capacity %d", ErrBufferOverflow, len(data), b.len)
	}
	if len(data) == 0 {
		return nil
	}
	if err := dev.WriteBuffer(b.id, 0, asBytes(data)); err != nil {
		return fmt.Errorf("tess: fill buffer %d: %w", b.id, err)
	}
	return nil
}

// Take transfers ownership of the device handle to the caller. The Buffer
// is empty afterwards.
func (b *Buffer[T]) Take() gpucore.BufferID {
	id := b.id
	b.id = gpucore.InvalidID
	return id
}

// Destroy releases the device buffer if the Buffer still owns it.
func (b *Buffer[T]) Destroy(dev gpucore.Device) {
	if b.id == gpucore.InvalidID {
		return
	}
	dev.DestroyBuffers(b.id)
	b.id = gpucore.InvalidID
}

// elemSize returns the in-memory size of T in bytes.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// asBytes reinterprets a slice as its raw bytes without copying.
func asBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*int(elemSize[T]()))
}
