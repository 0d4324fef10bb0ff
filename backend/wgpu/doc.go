// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements gpucore.Device on the gogpu/wgpu HAL.
//
// WebGPU has no vertex-array-state object. Device emulates one: each
// vertex array records the attribute pointers set while it was bound,
// its vertex buffer and its element buffer. The recorded attributes
// become a gputypes.VertexBufferLayout (see VertexLayout) that callers
// pass to render pipeline creation, and draws replay the buffer
// bindings into the current render pass.
//
// # Architecture Overview
//
//	tess.Tessellation
//	        │ gpucore.Device calls
//	        ▼
//	wgpu.Device ── vertex arrays ──► gputypes.VertexBufferLayout
//	        │
//	        ├─ hal.Device.CreateBuffer / DestroyBuffer
//	        ├─ hal.Queue.WriteBuffer
//	        └─ hal.RenderPassEncoder (SetRenderPass)
//	               SetVertexBuffer, SetIndexBuffer, Draw, DrawIndexed
//
// # Constructors
//
//   - New wraps an existing hal.Device and hal.Queue.
//   - NewFromProvider takes a gpucontext.DeviceProvider, such as a
//     gogpu window, whose device exposes its HAL objects.
//   - NewNoop opens a headless device on the noop HAL. Importing the
//     package registers it as the "noop" backend.
//
// # Limits
//
// Buffer sizes and writes are padded to 4 bytes. Triangle fans have no
// WebGPU topology, and 8- and 16-bit attributes must have 2 or 4
// components; both panic. The attribute panic comes after the
// tessellation's buffers were created, so check a vertex type with
// Supports before constructing it:
//
//	if !wgpu.Supports(V{}.VertexFormat()...) {
//		// pick another layout or backend
//	}
//
// Point size and line width are fixed at 1.
package wgpu
