package vertex_test

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/gpucore"
	"github.com/gogpu/tess/gpucore/coretest"
	"github.com/gogpu/tess/vertex"
)

func TestVertexSizesMatchFormats(t *testing.T) {
	tests := []struct {
		name   string
		v      tess.Vertex
		size   uintptr
		stride int
	}{
		{"P2", vertex.P2{}, unsafe.Sizeof(vertex.P2{}), 8},
		{"P3", vertex.P3{}, unsafe.Sizeof(vertex.P3{}), 12},
		{"P2RGBA", vertex.P2RGBA{}, unsafe.Sizeof(vertex.P2RGBA{}), 12},
		{"P3C4", vertex.P3C4{}, unsafe.Sizeof(vertex.P3C4{}), 28},
		{"P4C4", vertex.P4C4{}, unsafe.Sizeof(vertex.P4C4{}), 32},
		{"P3N3T2", vertex.P3N3T2{}, unsafe.Sizeof(vertex.P3N3T2{}), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tess.VertexWeight(tt.v.VertexFormat())
			if w != tt.stride {
				t.Errorf("VertexWeight() = %d, want %d", w, tt.stride)
			}
			if uintptr(w) != tt.size {
				t.Errorf("Go size %d != format weight %d", tt.size, w)
			}
		})
	}
}

func TestP2RGBAColorIsIntegerFetch(t *testing.T) {
	attrs := tess.ComputeLayout(vertex.P2RGBA{}.VertexFormat())
	if len(attrs) != 2 {
		t.Fatalf("attributes = %d, want 2", len(attrs))
	}
	if attrs[0].Integer || attrs[0].Type != gpucore.Float {
		t.Errorf("position attribute = %+v, want float", attrs[0])
	}
	if !attrs[1].Integer || attrs[1].Type != gpucore.UnsignedByte || attrs[1].Offset != 8 {
		t.Errorf("color attribute = %+v, want integer ubyte at 8", attrs[1])
	}
}

func TestQuadTessellation(t *testing.T) {
	dev := coretest.New()
	vs, is := vertex.Quad(0.5, 0.25)

	tr, err := tess.NewIndexed(dev, tess.Triangle, vs, is)
	if err != nil {
		t.Fatalf("NewIndexed() error = %v", err)
	}
	d := tr.Dispatch().(tess.Indexed)
	if d.IndexCount != 6 {
		t.Errorf("IndexCount = %d, want 6", d.IndexCount)
	}

	data, ok := dev.BufferData(d.VertexBuffer)
	if !ok || len(data) != 4*8 {
		t.Fatalf("vertex buffer = %d bytes, want 32", len(data))
	}
	got := unsafe.Slice((*vertex.P2)(unsafe.Pointer(&data[0])), 4)
	if !slices.Equal(got, vs) {
		t.Errorf("uploaded vertices = %v, want %v", got, vs)
	}
}

func TestStrip(t *testing.T) {
	s := vertex.Strip(4, 0.5)
	if len(s) != 10 {
		t.Fatalf("len = %d, want 10", len(s))
	}
	if s[0].Pos != [2]float32{-1, -0.25} || s[9].Pos != [2]float32{1, 0.25} {
		t.Errorf("endpoints = %v, %v", s[0].Pos, s[9].Pos)
	}
	if got := len(vertex.Strip(0, 1)); got != 4 {
		t.Errorf("Strip(0) len = %d, want clamped to 4", got)
	}
}
