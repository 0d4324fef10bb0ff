package main

import (
	"fmt"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/gpucore"
	"github.com/gogpu/tess/vertex"
)

// Shape kinds, passed to the shader so it can place each shape.
const (
	kindQuad     = 0
	kindStrip    = 1
	kindTriangle = 2
)

// scene is the demo geometry.
type scene struct {
	quad  *tess.Tessellation
	strip *tess.Tessellation
	tri   *tess.Tessellation
}

func newScene(dev gpucore.Device) (*scene, error) {
	vs, is := vertex.Quad(0.3, 0.3)
	quad, err := tess.NewIndexed(dev, tess.Triangle, vs, is, tess.WithLabel("quad"))
	if err != nil {
		return nil, fmt.Errorf("quad: %w", err)
	}
	strip, err := tess.New(dev, tess.TriangleStrip, vertex.Strip(16, 0.08), tess.WithLabel("strip"))
	if err != nil {
		quad.Destroy(dev)
		return nil, fmt.Errorf("strip: %w", err)
	}
	tri := tess.NewAttributeless(dev, tess.Triangle, 3, tess.WithLabel("triangle"))
	return &scene{quad: quad, strip: strip, tri: tri}, nil
}

// each calls fn for every shape with its kind.
func (s *scene) each(fn func(kind int32, t *tess.Tessellation)) {
	fn(kindQuad, s.quad)
	fn(kindStrip, s.strip)
	fn(kindTriangle, s.tri)
}

// draw renders all shapes. before runs ahead of each draw so the caller
// can select per-shape pipeline state.
func (s *scene) draw(dev gpucore.Device, instances uint32, before func(kind int32)) {
	s.each(func(kind int32, t *tess.Tessellation) {
		before(kind)
		n := uint32(1)
		if kind == kindStrip {
			n = instances
		}
		t.Draw(dev, n)
	})
}

func (s *scene) destroy(dev gpucore.Device) {
	s.each(func(_ int32, t *tess.Tessellation) {
		t.Destroy(dev)
	})
}
