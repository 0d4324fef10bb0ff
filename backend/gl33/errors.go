// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl33

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Package errors for the GL backend.
var (
	// ErrOutOfMemory is returned when GL reports GL_OUT_OF_MEMORY after
	// an allocation or write.
	ErrOutOfMemory = errors.New("gl33: out of memory")

	// ErrNotInitialized is returned by the registry factory when GL
	// function pointers cannot be loaded.
	ErrNotInitialized = errors.New("gl33: not initialized")
)

// ErrGL is a GL error code other than GL_OUT_OF_MEMORY.
type ErrGL struct {
	Code uint32
}

func (e ErrGL) Error() string {
	return fmt.Sprintf("gl33: %s (0x%04X)", errorName(e.Code), e.Code)
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return "unknown error"
	}
}

// codeError converts a GL error code to an error, nil for GL_NO_ERROR.
func codeError(code uint32) error {
	switch code {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	default:
		return ErrGL{Code: code}
	}
}

// maxDrain bounds the error-queue drain; a lost context can report
// errors indefinitely.
const maxDrain = 16

// checkError drains the GL error queue and returns the first error.
func checkError() error {
	first := gl.GetError()
	code := first
	for i := 0; code != gl.NO_ERROR && i < maxDrain; i++ {
		code = gl.GetError()
	}
	return codeError(first)
}
