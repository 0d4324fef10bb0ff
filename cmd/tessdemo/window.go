package main

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/tess/backend"
)

const vertexShader = `#version 330 core
layout(location = 0) in vec2 a_pos;

uniform int u_kind;

out vec3 v_color;

const vec2 tri[3] = vec2[3](vec2(-0.25, -0.2), vec2(0.25, -0.2), vec2(0.0, 0.25));

void main() {
	vec2 p;
	if (u_kind == 0) {
		p = a_pos + vec2(-0.5, 0.45);
		v_color = vec3(0.9, 0.4, 0.2);
	} else if (u_kind == 1) {
		p = a_pos * vec2(0.9, 1.0) + vec2(0.0, -0.75 + 0.2 * float(gl_InstanceID));
		v_color = vec3(0.2, 0.5 + 0.1 * float(gl_InstanceID), 0.9);
	} else {
		p = tri[gl_VertexID] + vec2(0.5, 0.45);
		v_color = vec3(0.3, 0.9, 0.4);
	}
	gl_Position = vec4(p, 0.0, 1.0);
}
` + "\x00"

const fragmentShader = `#version 330 core
in vec3 v_color;
out vec4 frag;

void main() {
	frag = vec4(v_color, 1.0);
}
` + "\x00"

// runWindow renders the scene in a GLFW window on the gl33 backend.
func runWindow(cfg config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.width, cfg.height, "tessdemo", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	bdev, err := backend.Get(backend.BackendGL33)
	if err != nil {
		return err
	}
	defer bdev.Close()
	dev := cfg.wrap(bdev)

	prog, err := createShaderProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	defer gl.DeleteProgram(prog)
	kindLoc := gl.GetUniformLocation(prog, gl.Str("u_kind\x00"))

	s, err := newScene(dev)
	if err != nil {
		return err
	}
	defer s.destroy(dev)

	for frame := 0; !window.ShouldClose(); frame++ {
		if cfg.frames > 0 && frame >= cfg.frames {
			break
		}
		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(prog)
		s.draw(dev, cfg.instances, func(kind int32) {
			gl.Uniform1i(kindLoc, kind)
		})

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
