// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package trace

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/gpucore"
	"github.com/gogpu/tess/gpucore/coretest"
)

func newTraced(level slog.Level) (*Device, *coretest.Recorder, *bytes.Buffer) {
	var buf bytes.Buffer
	rec := coretest.New()
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return Wrap(rec, logger), rec, &buf
}

func TestForwardsEveryCall(t *testing.T) {
	dev, rec, buf := newTraced(slog.LevelDebug)

	tr := tess.NewAttributeless(dev, tess.Point, 4)
	tr.Draw(dev, 2, tess.WithSize(3))
	tr.Destroy(dev)

	want := []coretest.Op{
		coretest.OpCreateVertexArray,
		coretest.OpBindVertexArray,
		coretest.OpBindVertexArray,
		coretest.OpBindVertexArray,
		coretest.OpPointSize,
		coretest.OpDrawArraysInstanced,
		coretest.OpDestroyVertexArray,
	}
	if got := rec.Ops(); !slices.Equal(got, want) {
		t.Fatalf("forwarded ops = %v, want %v", got, want)
	}
	if got := dev.Calls(); got != uint64(len(want)) {
		t.Errorf("Calls() = %d, want %d", got, len(want))
	}

	out := buf.String()
	for _, op := range want {
		if !strings.Contains(out, "op="+string(op)) {
			t.Errorf("log missing op=%s:\n%s", op, out)
		}
	}
	if !strings.Contains(out, "instances=2") || !strings.Contains(out, "size=3") {
		t.Errorf("log missing call arguments:\n%s", out)
	}
}

func TestSilentAboveDebug(t *testing.T) {
	dev, _, buf := newTraced(slog.LevelInfo)
	tess.NewAttributeless(dev, tess.Triangle, 3).Draw(dev, 1)
	if buf.Len() != 0 {
		t.Errorf("unexpected output at info level:\n%s", buf.String())
	}
	if dev.Calls() == 0 {
		t.Error("Calls() not counted when logging is disabled")
	}
}

func TestFailuresLoggedAtWarn(t *testing.T) {
	dev, rec, buf := newTraced(slog.LevelWarn)
	errFull := errors.New("device full")
	rec.OnCreateBuffer = func(*gpucore.BufferDesc) error { return errFull }

	_, err := dev.CreateBuffer(&gpucore.BufferDesc{Label: "vbo", Size: 16})
	if !errors.Is(err, errFull) {
		t.Fatalf("CreateBuffer() error = %v, want %v", err, errFull)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "CreateBuffer failed") || !strings.Contains(out, "label=vbo") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

func TestUnwrapAndNilLogger(t *testing.T) {
	rec := coretest.New()
	dev := Wrap(rec, nil)
	if dev.Unwrap() != gpucore.Device(rec) {
		t.Error("Unwrap() did not return the wrapped device")
	}
	dev.PointSize(1)
	if rec.Count(coretest.OpPointSize) != 1 {
		t.Error("call not forwarded with default logger")
	}
}
