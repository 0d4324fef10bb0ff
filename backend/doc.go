// Package backend provides a registry of gpucore.Device implementations.
//
// Backends register a Factory from an init() function and are selected
// at runtime by name:
//
//	import (
//		"github.com/gogpu/tess/backend"
//		_ "github.com/gogpu/tess/backend/gl33"
//		_ "github.com/gogpu/tess/backend/wgpu"
//	)
//
//	dev, err := backend.Get("gl33")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//
// # Backend Selection
//
// Default opens the first backend in priority order that opens without
// error, so a program with a current GL context gets "gl33" and a
// headless one falls back to "noop":
//
//	dev, err := backend.Default()
//
// Open combines both: an empty name means Default.
//
// # Available Backends
//
//   - "gl33": OpenGL 3.3 core via go-gl (needs a current context)
//   - "noop": headless WebGPU over the gogpu/wgpu noop HAL
package backend
