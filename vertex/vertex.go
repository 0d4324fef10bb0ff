// Package vertex provides ready-made vertex types for tess.
//
// Each type implements tess.Vertex and is laid out without padding, so
// its Go size matches the attribute layout tess derives from its format.
// Vectors are golang.org/x/image/math/f32 arrays; packed colors are
// image/color.RGBA, read in shaders as an unsigned integer vector.
package vertex

import (
	"image/color"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/tess"
)

// P2 is a 2D position. Location 0: vec2.
type P2 struct {
	Pos f32.Vec2
}

// VertexFormat implements tess.Vertex.
func (P2) VertexFormat() []tess.VertexComponentFormat {
	return []tess.VertexComponentFormat{tess.Float(tess.Dim2)}
}

// P3 is a 3D position. Location 0: vec3.
type P3 struct {
	Pos f32.Vec3
}

// VertexFormat implements tess.Vertex.
func (P3) VertexFormat() []tess.VertexComponentFormat {
	return []tess.VertexComponentFormat{tess.Float(tess.Dim3)}
}

// P2RGBA is a 2D position with a packed 8-bit color.
// Location 0: vec2, location 1: uvec4.
type P2RGBA struct {
	Pos   f32.Vec2
	Color color.RGBA
}

// VertexFormat implements tess.Vertex.
func (P2RGBA) VertexFormat() []tess.VertexComponentFormat {
	return []tess.VertexComponentFormat{tess.Float(tess.Dim2), tess.Uint(tess.Dim4, 8)}
}

// P3C4 is a 3D position with a float color.
// Location 0: vec3, location 1: vec4.
type P3C4 struct {
	Pos   f32.Vec3
	Color f32.Vec4
}

// VertexFormat implements tess.Vertex.
func (P3C4) VertexFormat() []tess.VertexComponentFormat {
	return []tess.VertexComponentFormat{tess.Float(tess.Dim3), tess.Float(tess.Dim4)}
}

// P4C4 is a homogeneous position with a float color.
// Location 0: vec4, location 1: vec4.
type P4C4 struct {
	Pos   f32.Vec4
	Color f32.Vec4
}

// VertexFormat implements tess.Vertex.
func (P4C4) VertexFormat() []tess.VertexComponentFormat {
	return []tess.VertexComponentFormat{tess.Float(tess.Dim4), tess.Float(tess.Dim4)}
}

// P3N3T2 is a mesh vertex: position, normal and texture coordinate.
// Locations 0, 1, 2: vec3, vec3, vec2.
type P3N3T2 struct {
	Pos    f32.Vec3
	Normal f32.Vec3
	UV     f32.Vec2
}

// VertexFormat implements tess.Vertex.
func (P3N3T2) VertexFormat() []tess.VertexComponentFormat {
	return []tess.VertexComponentFormat{tess.Float(tess.Dim3), tess.Float(tess.Dim3), tess.Float(tess.Dim2)}
}

// Quad returns an axis-aligned rectangle centered on the origin with
// the given half extents, as four corners and six indices for Triangle
// mode. Corners run counter-clockwise from the bottom left.
func Quad(hw, hh float32) ([]P2, []uint32) {
	return []P2{
			{Pos: f32.Vec2{-hw, -hh}},
			{Pos: f32.Vec2{hw, -hh}},
			{Pos: f32.Vec2{hw, hh}},
			{Pos: f32.Vec2{-hw, hh}},
		}, []uint32{
			0, 1, 2,
			2, 3, 0,
		}
}

// Strip returns n+1 pairs of vertices along the x axis from -1 to 1,
// height h, for TriangleStrip mode. n must be at least 1.
func Strip(n int, h float32) []P2 {
	n = max(n, 1)
	out := make([]P2, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		x := -1 + 2*float32(i)/float32(n)
		out = append(out, P2{Pos: f32.Vec2{x, -h / 2}}, P2{Pos: f32.Vec2{x, h / 2}})
	}
	return out
}
