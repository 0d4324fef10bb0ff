// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Package errors for the WebGPU backend.
var (
	// ErrNoHAL is returned by NewFromProvider when the provider does not
	// expose a HAL device and queue.
	ErrNoHAL = errors.New("wgpu: provider does not expose HAL device and queue")

	// ErrNoAdapter is returned when the noop HAL reports no adapter.
	ErrNoAdapter = errors.New("wgpu: no adapter available")

	// ErrUnknownBuffer is returned when writing to a buffer this device
	// did not create or has destroyed.
	ErrUnknownBuffer = errors.New("wgpu: unknown buffer")

	// ErrUnalignedOffset is returned for writes at offsets that are not a
	// multiple of 4.
	ErrUnalignedOffset = errors.New("wgpu: write offset not 4-byte aligned")

	// ErrOutOfRange is returned for writes past the end of a buffer.
	ErrOutOfRange = errors.New("wgpu: write out of buffer range")
)
