package backend

import (
	"errors"

	"github.com/gogpu/tess/gpucore"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered, or no registered backend could be opened.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend names registered by the packages in this module.
const (
	// BackendGL33 is the OpenGL 3.3 core backend (backend/gl33).
	BackendGL33 = "gl33"

	// BackendNoop is the headless WebGPU backend over the noop HAL
	// (backend/wgpu).
	BackendNoop = "noop"
)

// Device is a gpucore.Device opened through the registry.
//
// Tessellations created on a Device must be destroyed before Close.
type Device interface {
	gpucore.Device

	// Name returns the backend identifier (e.g., "gl33", "noop").
	Name() string

	// Close releases resources owned by the backend itself, such as a
	// headless instance. It does not destroy tessellations.
	Close()
}

// Factory opens a new backend device.
type Factory func() (Device, error)
