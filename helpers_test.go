package tess

import (
	"fmt"
	"strings"
	"testing"
)

// posColor is a 16-byte vertex: 3 floats and 4 unsigned bytes.
type posColor struct {
	Pos   [3]float32
	Color [4]uint8
}

func (posColor) VertexFormat() []VertexComponentFormat {
	return []VertexComponentFormat{Float(Dim3), Uint(Dim4, 8)}
}

// mixed covers every integer fetch category.
type mixed struct {
	Pos   [2]float32
	ID    int32
	Flags [2]uint16
	Solid [4]bool
}

func (mixed) VertexFormat() []VertexComponentFormat {
	return []VertexComponentFormat{Float(Dim2), Int(Dim1, 32), Uint(Dim2, 16), Bool(Dim4)}
}

// doubles uses 64-bit floats, which no device attribute accepts.
type doubles struct {
	Pos [2]float64
}

func (doubles) VertexFormat() []VertexComponentFormat {
	return []VertexComponentFormat{{Dim: Dim2, Type: Floating, Size: 64}}
}

// lying declares fewer bytes than it occupies.
type lying struct {
	Pos [3]float32
}

func (lying) VertexFormat() []VertexComponentFormat {
	return []VertexComponentFormat{Float(Dim2)}
}

func triangle() []posColor {
	return []posColor{
		{Pos: [3]float32{-1, -1, 0}, Color: [4]uint8{255, 0, 0, 255}},
		{Pos: [3]float32{1, -1, 0}, Color: [4]uint8{0, 255, 0, 255}},
		{Pos: [3]float32{0, 1, 0}, Color: [4]uint8{0, 0, 255, 255}},
	}
}

// mustPanic runs fn and fails the test unless it panics with a message
// containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Fatalf("panic = %q, want it to contain %q", msg, want)
		}
	}()
	fn()
}
