package tess

import "testing"

func TestSelect(t *testing.T) {
	indexed := Indexed{IndexCount: 6, IndexBuffer: 2, VertexBuffer: 1}
	plain := NonIndexed{VertexCount: 4, VertexBuffer: 1}
	none := Attributeless{VertexCount: 10}

	tests := []struct {
		name      string
		dispatch  Dispatch
		instances uint32
		want      DrawCall
	}{
		{"indexed single", indexed, 1, DrawCall{Kind: DrawElements, Count: 6, Instances: 1}},
		{"indexed instanced", indexed, 3, DrawCall{Kind: DrawElementsInstanced, Count: 6, Instances: 3}},
		{"plain single", plain, 1, DrawCall{Kind: DrawArrays, Count: 4, Instances: 1}},
		{"plain instanced", plain, 2, DrawCall{Kind: DrawArraysInstanced, Count: 4, Instances: 2}},
		{"attributeless single", none, 1, DrawCall{Kind: DrawArrays, Count: 10, Instances: 1}},
		{"attributeless instanced", none, 1000, DrawCall{Kind: DrawArraysInstanced, Count: 10, Instances: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.dispatch, tt.instances); got != tt.want {
				t.Errorf("Select() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectZeroInstances(t *testing.T) {
	mustPanic(t, "cannot index-render 0 instances", func() {
		Select(Indexed{IndexCount: 3}, 0)
	})
	mustPanic(t, "cannot render 0 instances", func() {
		Select(NonIndexed{VertexCount: 3}, 0)
	})
	mustPanic(t, "cannot render 0 instances", func() {
		Select(Attributeless{VertexCount: 3}, 0)
	})
}

func TestSelectCountLimit(t *testing.T) {
	const over = 1 << 31
	tests := []struct {
		name      string
		dispatch  Dispatch
		instances uint32
		want      string
	}{
		{"index count", Indexed{IndexCount: over}, 1, "index count 2147483648 exceeds device limit"},
		{"vertex count", NonIndexed{VertexCount: over}, 1, "vertex count 2147483648 exceeds device limit"},
		{"attributeless count", Attributeless{VertexCount: over}, 1, "vertex count 2147483648 exceeds device limit"},
		{"indexed instances", Indexed{IndexCount: 3}, over, "instance count 2147483648 exceeds device limit"},
		{"arrays instances", NonIndexed{VertexCount: 3}, over, "instance count 2147483648 exceeds device limit"},
		{"max instances", Attributeless{VertexCount: 3}, ^uint32(0), "instance count 4294967295 exceeds device limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, tt.want, func() {
				Select(tt.dispatch, tt.instances)
			})
		})
	}

	// The largest addressable counts still select normally.
	got := Select(Attributeless{VertexCount: 1<<31 - 1}, 1<<31-1)
	want := DrawCall{Kind: DrawArraysInstanced, Count: 1<<31 - 1, Instances: 1<<31 - 1}
	if got != want {
		t.Errorf("Select() = %+v, want %+v", got, want)
	}
}

func TestSelectNilDispatch(t *testing.T) {
	mustPanic(t, "unknown dispatch", func() {
		Select(nil, 1)
	})
}

func TestDrawKindString(t *testing.T) {
	tests := []struct {
		kind DrawKind
		want string
	}{
		{DrawArrays, "DrawArrays"},
		{DrawArraysInstanced, "DrawArraysInstanced"},
		{DrawElements, "DrawElements"},
		{DrawElementsInstanced, "DrawElementsInstanced"},
		{DrawKind(9), "DrawKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DrawKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
