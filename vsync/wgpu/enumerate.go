// This file is part of Kwasny Owoc.
//
// Kwasny Owoc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kwasny Owoc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Kwasny Owoc.  If not, see <https://www.gnu.org/licenses/>.

// Package wgpu enumerates the physical graphics devices on the host and the
// present modes each one supports. The results are expressed as vsync.Record
// values ready to be handed to a vsync.Negotiator.
//
// Enumeration needs a window surface to interrogate capabilities against. A
// hidden one-pixel GLFW window is created for the duration of the call and
// destroyed before it returns. Because of GLFW, Enumerate() must be called
// from the main thread.
package wgpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tebowy/kwasny-owoc/curated"
	"github.com/tebowy/kwasny-owoc/logger"
	"github.com/tebowy/kwasny-owoc/vsync"
)

// sentinel errors for the Enumerate function.
const (
	NoDevices    = "wgpu: no suitable graphics devices found"
	SurfaceError = "wgpu: surface creation: %v"
)

// the adapter request variants tried during enumeration. requesting with
// different power preferences is the only way the webgpu API exposes more
// than one adapter; duplicates are weeded out by name afterwards.
var requestVariants = []wgpu.RequestAdapterOptions{
	{PowerPreference: wgpu.PowerPreferenceHighPerformance},
	{PowerPreference: wgpu.PowerPreferenceLowPower},
	{ForceFallbackAdapter: true},
}

// Enumerate returns a record for every distinct graphics adapter that can
// present to a window surface on this host.
//
// A host with no usable adapters results in the NoDevices error. The caller
// can treat that as an empty record list; a Negotiator over no records still
// behaves correctly.
func Enumerate() ([]vsync.Record, error) {
	if err := glfw.Init(); err != nil {
		return nil, curated.Errorf(SurfaceError, err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(1, 1, "probe", nil, nil)
	if err != nil {
		return nil, curated.Errorf(SurfaceError, err)
	}
	defer win.Destroy()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))
	defer surface.Release()

	records := make([]vsync.Record, 0, len(requestVariants))
	seen := make(map[string]bool)

	for _, opts := range requestVariants {
		opts.CompatibleSurface = surface

		adapter, err := instance.RequestAdapter(&opts)
		if err != nil || adapter == nil {
			continue
		}

		info := adapter.GetInfo()
		name := adapterName(info)
		if seen[name] {
			adapter.Release()
			continue
		}
		seen[name] = true

		caps := surface.GetCapabilities(adapter)
		modes := presentModes(caps.PresentModes)

		records = append(records, vsync.Record{
			Name:          name,
			Modes:         modes,
			BrokenCompute: brokenCompute(info),
		})

		logger.Logf(logger.Allow, "wgpu", "found adapter: %s (%d present modes)", name, len(modes))

		adapter.Release()
	}

	if len(records) == 0 {
		return nil, curated.Errorf(NoDevices)
	}

	return records, nil
}

// adapterName builds a display name from the adapter info. some drivers
// leave the device name empty.
func adapterName(info wgpu.AdapterInfo) string {
	if info.Device != "" {
		return info.Device
	}
	if info.Description != "" {
		return info.Description
	}
	return "Unknown Adapter"
}

// presentModes converts the capability list to vsync identifiers, dropping
// anything unrecognised. each mode appears at most once in the result, which
// vsync.Record requires.
func presentModes(caps []wgpu.PresentMode) []vsync.PresentMode {
	modes := make([]vsync.PresentMode, 0, len(caps))
	seen := make(map[vsync.PresentMode]bool)

	for _, c := range caps {
		var m vsync.PresentMode

		switch c {
		case wgpu.PresentModeImmediate:
			m = vsync.ModeImmediate
		case wgpu.PresentModeMailbox:
			m = vsync.ModeMailbox
		case wgpu.PresentModeFifo:
			m = vsync.ModeFIFO
		case wgpu.PresentModeFifoRelaxed:
			m = vsync.ModeFIFORelaxed
		default:
			continue
		}

		if seen[m] {
			continue
		}
		seen[m] = true
		modes = append(modes, m)
	}

	return modes
}

// brokenCompute decides whether the adapter's compute pipeline is known to
// be unreliable. software rasterisers are the only case detected for now.
func brokenCompute(info wgpu.AdapterInfo) bool {
	return info.AdapterType == wgpu.AdapterTypeCPU
}
