// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl33 implements gpucore.Device on OpenGL 3.3 core through
// github.com/go-gl/gl.
//
// The device drives whichever GL context is current on the calling
// thread. Create the context first (for example with GLFW), make it
// current, then call Init once before using a Device:
//
//	runtime.LockOSThread()
//	// ... create window, MakeContextCurrent ...
//	if err := gl33.Init(); err != nil {
//		log.Fatal(err)
//	}
//	dev := gl33.New()
//
// Importing the package registers the "gl33" backend with
// github.com/gogpu/tess/backend. Its factory calls Init, so it fails
// without a current context and backend.Default falls through to the
// next backend.
package gl33
