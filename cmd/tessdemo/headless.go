package main

import (
	"fmt"

	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/backend/wgpu"
)

// runHeadless records the scene on the noop WebGPU device and prints
// the vertex layout each shape's pipeline would be built with.
func runHeadless(cfg config) error {
	d, err := wgpu.NewNoop()
	if err != nil {
		return err
	}
	defer d.Close()
	dev := cfg.wrap(d)

	s, err := newScene(dev)
	if err != nil {
		return err
	}
	defer s.destroy(dev)

	s.each(func(_ int32, t *tess.Tessellation) {
		layout, _ := d.VertexLayout(t.VertexArray())
		fmt.Printf("%-8s %-13v %T stride=%d\n", t.Label(), t.Mode(), t.Dispatch(), layout.ArrayStride)
		for _, a := range layout.Attributes {
			fmt.Printf("         @location(%d) %v +%d\n", a.ShaderLocation, a.Format, a.Offset)
		}
	})

	d.SetRenderPass(&noop.RenderPassEncoder{})
	defer d.SetRenderPass(nil)
	for range max(cfg.frames, 1) {
		s.draw(dev, cfg.instances, func(int32) {})
	}
	cfg.logger.Info("headless frames recorded", "frames", max(cfg.frames, 1))
	return nil
}
