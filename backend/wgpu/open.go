// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/tess/backend"
)

// halDevice is implemented by *wgpu.Device, which exposes the HAL
// objects behind a shared device.
type halDevice interface {
	HalDevice() hal.Device
	HalQueue() hal.Queue
}

// NewFromProvider returns a Device sharing the GPU device of provider,
// such as a gogpu window. The provider keeps ownership of the device.
//
// The provider's device must either expose HalDevice/HalQueue or be a
// hal.Device itself with a hal.Queue as its queue.
func NewFromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	if provider == nil {
		return nil, ErrNoHAL
	}
	var (
		device hal.Device
		queue  hal.Queue
	)
	switch dev := provider.Device().(type) {
	case halDevice:
		device, queue = dev.HalDevice(), dev.HalQueue()
	case hal.Device:
		device = dev
		queue, _ = provider.Queue().(hal.Queue)
	}
	if device == nil || queue == nil {
		return nil, fmt.Errorf("%w: device %T, queue %T", ErrNoHAL, provider.Device(), provider.Queue())
	}

	d := New(device, queue)
	info := provider.AdapterInfo()
	slogger().Debug("wgpu: device from provider", "adapter", info.Name, "type", info.Type)
	return d, nil
}

// NewNoop opens a headless Device on the noop HAL. Buffers live in host
// memory and draws are discarded unless a render pass is set. Close
// releases the device.
func NewNoop() (*Device, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create noop instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open noop device: %w", err)
	}

	d := newDevice(backend.BackendNoop, openDev.Device, openDev.Queue)
	d.instance = instance
	d.owned = true
	slogger().Debug("wgpu: noop device opened", "adapter", adapters[0].Info.Name)
	return d, nil
}

// init registers the headless backend on package import.
//
//	import _ "github.com/gogpu/tess/backend/wgpu"
func init() {
	backend.Register(backend.BackendNoop, func() (backend.Device, error) {
		return NewNoop()
	})
}
