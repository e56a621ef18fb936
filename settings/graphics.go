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

package settings

import (
	"github.com/tebowy/kwasny-owoc/curated"
	"github.com/tebowy/kwasny-owoc/logger"
	"github.com/tebowy/kwasny-owoc/prefs"
	"github.com/tebowy/kwasny-owoc/resources"
)

// Graphics defines and collates the persisted renderer settings.
//
// Every configurable setting has its own key in the prefs file. The backend,
// shader backend and vsync mode are stored by name rather than by number so
// that reordering an enumeration does not silently change the meaning of a
// stored value.
type Graphics struct {
	dsk *prefs.Disk

	// enumerated values are held in plain fields and registered with the
	// prefs system through a Generic. access is through the typed accessors
	backend       Backend
	shaderBackend ShaderBackend
	vsyncMode     VSyncMode

	// index into the enumerated device list. only meaningful for the Vulkan
	// backend. the list itself is not persisted
	VulkanDevice prefs.Int

	// background colour behind the rendered image
	BGRed   prefs.Int
	BGGreen prefs.Int
	BGBlue  prefs.Int

	// post-processing sharpening level. range 0.0 to 1.0
	Sharpening prefs.Float

	// set when the Vulkan backend has previously failed to initialise. the
	// presentation host uses it to discourage reselection of the backend
	BrokenVulkan prefs.Bool

	// workaround for devices with a defective compute pipeline. the option
	// is only surfaced when such a device has been enumerated
	ComputeWorkaround prefs.Bool
}

func (g *Graphics) String() string {
	return g.dsk.String()
}

// NewGraphics is the preferred method of initialisation for the Graphics
// type. Values are loaded from the prefs file if it exists.
func NewGraphics() (*Graphics, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	return newGraphics(pth)
}

// newGraphics exists for the benefit of the package tests, which must not
// touch the real prefs file.
func newGraphics(pth string) (*Graphics, error) {
	g := &Graphics{}
	g.SetDefaults()

	var err error

	g.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = g.dsk.Add("graphics.backend", prefs.NewGeneric(
		func(s string) error {
			v, err := ParseBackend(s)
			if err != nil {
				return err
			}
			g.backend = v
			return nil
		},
		func() string {
			return g.backend.String()
		},
	))
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = g.dsk.Add("graphics.shader_backend", prefs.NewGeneric(
		func(s string) error {
			v, err := ParseShaderBackend(s)
			if err != nil {
				return err
			}
			g.shaderBackend = v
			return nil
		},
		func() string {
			return g.shaderBackend.String()
		},
	))
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = g.dsk.Add("graphics.vsyncmode", prefs.NewGeneric(
		func(s string) error {
			v, err := ParseVSyncMode(s)
			if err != nil {
				return err
			}
			g.vsyncMode = v
			return nil
		},
		func() string {
			return g.vsyncMode.String()
		},
	))
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = g.dsk.Add("graphics.vulkan_device", &g.VulkanDevice)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	err = g.dsk.Add("graphics.bg_red", &g.BGRed)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	err = g.dsk.Add("graphics.bg_green", &g.BGGreen)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	err = g.dsk.Add("graphics.bg_blue", &g.BGBlue)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	err = g.dsk.Add("graphics.sharpening", &g.Sharpening)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	err = g.dsk.Add("ui.broken_vulkan", &g.BrokenVulkan)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}
	err = g.dsk.Add("graphics.compute_workaround", &g.ComputeWorkaround)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	err = g.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return g, nil
}

// SetDefaults reverts all settings to default values.
func (g *Graphics) SetDefaults() {
	g.backend = BackendOpenGL
	g.shaderBackend = ShaderGLSL
	g.vsyncMode = VSyncFIFO

	for _, err := range []error{
		g.VulkanDevice.Set(0),
		g.BGRed.Set(0),
		g.BGGreen.Set(0),
		g.BGBlue.Set(0),
		g.Sharpening.Set(0.5),
		g.BrokenVulkan.Set(false),
		g.ComputeWorkaround.Set(false),
	} {
		if err != nil {
			logger.Logf(logger.Allow, "settings", "set defaults: %v", err)
		}
	}
}

// Backend returns the currently configured graphics backend.
func (g *Graphics) Backend() Backend {
	return g.backend
}

// SetBackend changes the configured graphics backend.
func (g *Graphics) SetBackend(b Backend) {
	g.backend = b
}

// ShaderBackend returns the currently configured shader backend.
func (g *Graphics) ShaderBackend() ShaderBackend {
	return g.shaderBackend
}

// SetShaderBackend changes the configured shader backend.
func (g *Graphics) SetShaderBackend(b ShaderBackend) {
	g.shaderBackend = b
}

// VSyncMode returns the currently configured vsync mode.
func (g *Graphics) VSyncMode() VSyncMode {
	return g.vsyncMode
}

// SetVSyncMode changes the configured vsync mode.
func (g *Graphics) SetVSyncMode(m VSyncMode) error {
	g.vsyncMode = m
	return nil
}

// Load graphics settings from disk.
func (g *Graphics) Load() error {
	return g.dsk.Load(false)
}

// Save current graphics settings to disk.
func (g *Graphics) Save() error {
	return g.dsk.Save()
}

// Reset all graphics settings to the default values.
func (g *Graphics) Reset() error {
	if err := g.dsk.Reset(); err != nil {
		return err
	}
	g.SetDefaults()
	return nil
}
