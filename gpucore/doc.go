// Package gpucore provides the device abstraction shared by tess and its
// backends.
//
// This package defines the [Device] interface, an explicit handle to a
// graphics context, allowing the same tessellation code to work with:
//   - OpenGL 3.3 core (backend/gl33, via go-gl)
//   - gogpu/wgpu (Pure Go WebGPU via HAL, backend/wgpu)
//
// # Architecture
//
//	               +-----------------+
//	               |      tess       |
//	               | (Tessellation)  |
//	               +--------+--------+
//	                        | gpucore.Device
//	         +--------------+--------------+
//	         |                             |
//	+--------v--------+          +--------v--------+
//	|   gl33 device   |          |   wgpu device   |
//	|  (go-gl/gl)     |          |  (hal.Device)   |
//	+-----------------+          +-----------------+
//
// The interface is shaped after the OpenGL binding model: a bound
// vertex-array-state captures attribute pointers and the element buffer,
// and draw calls read whatever is bound. Backends without a native
// binding model emulate it.
//
// # Resource Management
//
// Device resources are referenced via opaque IDs ([VertexArrayID],
// [BufferID]). Devices track the mapping between IDs and backend objects.
// An ID has exactly one owner; ownership never moves after construction.
//
// # Threading
//
// A Device carries process-wide mutable binding state and performs no
// locking. All calls on one Device must come from a single goroutine or
// be serialized by the caller.
package gpucore
