// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/gpucore"
)

func TestTopology(t *testing.T) {
	tests := []struct {
		in   gpucore.Primitive
		want gputypes.PrimitiveTopology
	}{
		{gpucore.Points, gputypes.PrimitiveTopologyPointList},
		{gpucore.Lines, gputypes.PrimitiveTopologyLineList},
		{gpucore.LineStrip, gputypes.PrimitiveTopologyLineStrip},
		{gpucore.Triangles, gputypes.PrimitiveTopologyTriangleList},
		{gpucore.TriangleStrip, gputypes.PrimitiveTopologyTriangleStrip},
	}
	for _, tt := range tests {
		if got := Topology(tt.in); got != tt.want {
			t.Errorf("Topology(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTopologyTriangleFanPanics(t *testing.T) {
	mustPanic(t, "triangle fans are not supported", func() {
		Topology(gpucore.TriangleFan)
	})
}

func TestVertexFormat(t *testing.T) {
	tests := []struct {
		name    string
		p       gpucore.AttribPointer
		integer bool
		want    gputypes.VertexFormat
	}{
		{"float", gpucore.AttribPointer{Size: 1, Type: gpucore.Float}, false, gputypes.VertexFormatFloat32},
		{"vec2", gpucore.AttribPointer{Size: 2, Type: gpucore.Float}, false, gputypes.VertexFormatFloat32x2},
		{"vec3", gpucore.AttribPointer{Size: 3, Type: gpucore.Float}, false, gputypes.VertexFormatFloat32x3},
		{"vec4", gpucore.AttribPointer{Size: 4, Type: gpucore.Float}, false, gputypes.VertexFormatFloat32x4},
		{"int", gpucore.AttribPointer{Size: 1, Type: gpucore.Int}, true, gputypes.VertexFormatSint32},
		{"ivec3", gpucore.AttribPointer{Size: 3, Type: gpucore.Int}, true, gputypes.VertexFormatSint32x3},
		{"uint", gpucore.AttribPointer{Size: 1, Type: gpucore.UnsignedInt}, true, gputypes.VertexFormatUint32},
		{"uvec4", gpucore.AttribPointer{Size: 4, Type: gpucore.UnsignedInt}, true, gputypes.VertexFormatUint32x4},
		{"byte2", gpucore.AttribPointer{Size: 2, Type: gpucore.Byte}, true, gputypes.VertexFormatSint8x2},
		{"ubyte4", gpucore.AttribPointer{Size: 4, Type: gpucore.UnsignedByte}, true, gputypes.VertexFormatUint8x4},
		{"short4", gpucore.AttribPointer{Size: 4, Type: gpucore.Short}, true, gputypes.VertexFormatSint16x4},
		{"ushort2", gpucore.AttribPointer{Size: 2, Type: gpucore.UnsignedShort}, true, gputypes.VertexFormatUint16x2},
		{"unorm8x4", gpucore.AttribPointer{Size: 4, Type: gpucore.UnsignedByte, Normalized: true}, false, gputypes.VertexFormatUnorm8x4},
		{"snorm16x2", gpucore.AttribPointer{Size: 2, Type: gpucore.Short, Normalized: true}, false, gputypes.VertexFormatSnorm16x2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VertexFormat(tt.p, tt.integer); got != tt.want {
				t.Errorf("VertexFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVertexFormatUnsupported(t *testing.T) {
	tests := []struct {
		name    string
		p       gpucore.AttribPointer
		integer bool
	}{
		{"ubyte3", gpucore.AttribPointer{Size: 3, Type: gpucore.UnsignedByte}, true},
		{"short1", gpucore.AttribPointer{Size: 1, Type: gpucore.Short}, true},
		{"integer float", gpucore.AttribPointer{Size: 2, Type: gpucore.Float}, true},
		{"unnormalized float fetch of bytes", gpucore.AttribPointer{Size: 4, Type: gpucore.UnsignedByte}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, "no vertex format", func() {
				VertexFormat(tt.p, tt.integer)
			})
		})
	}

	mustPanic(t, "has 5 components", func() {
		VertexFormat(gpucore.AttribPointer{Size: 5, Type: gpucore.Float}, false)
	})
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name    string
		formats []tess.VertexComponentFormat
		want    bool
	}{
		{"floats", []tess.VertexComponentFormat{tess.Float(tess.Dim1), tess.Float(tess.Dim3)}, true},
		{"int32 any dim", []tess.VertexComponentFormat{tess.Int(tess.Dim1, 32), tess.Uint(tess.Dim3, 32)}, true},
		{"bytes x4", []tess.VertexComponentFormat{tess.Uint(tess.Dim4, 8), tess.Bool(tess.Dim4)}, true},
		{"shorts x2", []tess.VertexComponentFormat{tess.Int(tess.Dim2, 16)}, true},
		{"ubyte x3", []tess.VertexComponentFormat{tess.Float(tess.Dim2), tess.Uint(tess.Dim3, 8)}, false},
		{"short x1", []tess.VertexComponentFormat{tess.Int(tess.Dim1, 16)}, false},
		{"bool x1", []tess.VertexComponentFormat{tess.Bool(tess.Dim1)}, false},
		{"float64", []tess.VertexComponentFormat{{Dim: tess.Dim2, Type: tess.Floating, Size: 64}}, false},
		{"none", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.formats...); got != tt.want {
				t.Errorf("Supports(%v) = %t, want %t", tt.formats, got, tt.want)
			}
		})
	}
}
