// Command tessdemo draws an indexed quad, an instanced strip and an
// attributeless triangle with tess.
//
// By default it opens a GLFW window with an OpenGL 3.3 core context and
// renders on the "gl33" backend. With -backend=noop it runs headless on
// the noop WebGPU device and prints the vertex layouts a pipeline would
// be built from.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/backend"
	"github.com/gogpu/tess/backend/gl33"
	"github.com/gogpu/tess/backend/trace"
	"github.com/gogpu/tess/backend/wgpu"
	"github.com/gogpu/tess/gpucore"
)

func init() {
	// GL and GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		name      = flag.String("backend", backend.BackendGL33, "device backend: gl33 or noop")
		instances = flag.Uint("instances", 4, "strip instances")
		frames    = flag.Int("frames", 0, "stop after this many frames (0 = until the window closes)")
		traced    = flag.Bool("trace", false, "log every device call")
		verbose   = flag.Bool("v", false, "debug logging")
		width     = flag.Int("width", 800, "window width")
		height    = flag.Int("height", 600, "window height")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose || *traced {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	tess.SetLogger(logger)
	gl33.SetLogger(logger)
	wgpu.SetLogger(logger)

	if *instances == 0 {
		log.Fatal("-instances must be at least 1")
	}

	cfg := config{
		instances: uint32(*instances),
		frames:    *frames,
		width:     *width,
		height:    *height,
		logger:    logger,
		trace:     *traced,
	}

	var err error
	switch *name {
	case backend.BackendGL33:
		err = runWindow(cfg)
	case backend.BackendNoop:
		err = runHeadless(cfg)
	default:
		log.Fatalf("unknown backend %q (available: %v)", *name, backend.Available())
	}
	if err != nil {
		log.Fatal(err)
	}
}

type config struct {
	instances     uint32
	frames        int
	width, height int
	logger        *slog.Logger
	trace         bool
}

// wrap returns dev, traced when requested.
func (c config) wrap(dev gpucore.Device) gpucore.Device {
	if c.trace {
		return trace.Wrap(dev, c.logger)
	}
	return dev
}
