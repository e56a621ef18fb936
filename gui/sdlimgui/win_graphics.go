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

package sdlimgui

import (
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/tebowy/kwasny-owoc/logger"
	"github.com/tebowy/kwasny-owoc/settings"
	"github.com/tebowy/kwasny-owoc/vsync"
)

const (
	winGraphicsID = "Graphics Settings"

	// the backend combo entry that defers to the global setting. only
	// offered in the override scope
	useGlobalLabel = "Use global setting"
)

// winGraphics is the graphics settings surface. Nothing the user does in the
// window touches the settings store until the apply button is pressed; the
// window works on its own copies of the stored values.
type winGraphics struct {
	img  *SdlImgui
	open bool

	// the scope being configured. the sync mode combo is only shown for the
	// global scope, the override scope inherits the global sync mode
	scope settings.Scope

	// working copies of the stored settings
	backend           settings.Backend
	shaderBackend     settings.ShaderBackend
	deviceIndex       int
	bg                [3]float32
	sharpening        float32
	computeWorkaround bool

	// the override scope can defer the backend choice to the global
	// setting. never true in the global scope
	useGlobal bool

	// offerable sync modes for the current backend/device and the index of
	// the current selection in that list
	choices  []vsync.Choice
	selected int

	// revealed by the negotiator when a device with a defective compute
	// pipeline has been enumerated
	showComputeWorkaround bool
}

func newWinGraphics(img *SdlImgui, scope settings.Scope) *winGraphics {
	win := &winGraphics{
		img:   img,
		open:  true,
		scope: scope,
	}
	win.reload()
	return win
}

// reload the working copies from the settings store. the choice list is
// invalidated and must be rebuilt.
func (win *winGraphics) reload() {
	gfx := win.img.gfx

	win.backend = gfx.Backend()
	win.shaderBackend = gfx.ShaderBackend()
	win.deviceIndex = gfx.VulkanDevice.Get().(int)
	win.bg = [3]float32{
		float32(gfx.BGRed.Get().(int)) / 255.0,
		float32(gfx.BGGreen.Get().(int)) / 255.0,
		float32(gfx.BGBlue.Get().(int)) / 255.0,
	}
	win.sharpening = float32(gfx.Sharpening.Get().(float64))
	win.computeWorkaround = gfx.ComputeWorkaround.Get().(bool)

	// an override starts by inheriting the global backend
	win.useGlobal = win.scope == settings.ScopeOverride

	win.choices = nil
	win.selected = vsync.NoSelection
}

// rebuild the list of offerable sync modes. called whenever the backend or
// the device selection changes.
//
// the previous mode carried into the rebuild is the current on-screen
// selection if there is one, or the stored setting if there isn't. this is
// what keeps the user's choice stable across backend and device flips.
func (win *winGraphics) rebuild() {
	prev := vsync.SettingToMode(win.img.gfx.VSyncMode())
	if win.selected != vsync.NoSelection && win.selected < len(win.choices) {
		prev = win.choices[win.selected].Mode
	}

	win.choices, win.selected = win.img.neg.Rebuild(win.backend, win.deviceIndex, prev)
}

func (win *winGraphics) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 25, Y: 25}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winGraphicsID, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	win.drawBackend()

	switch win.backend {
	case settings.BackendVulkan:
		win.drawDevice()
	case settings.BackendOpenGL:
		win.drawShaderBackend()
	}

	if win.scope == settings.ScopeGlobal {
		win.drawSyncMode()
	}

	imgui.Separator()

	imgui.ColorEdit3("Background Colour", &win.bg)
	imgui.SliderFloat("Sharpening", &win.sharpening, 0.0, 1.0)

	if win.showComputeWorkaround {
		imgui.Checkbox("Broken Compute Pipeline Workaround", &win.computeWorkaround)
	}

	imgui.Separator()
	win.drawDiskButtons()

	imgui.End()

	if !win.open {
		win.img.end()
	}
}

func (win *winGraphics) drawBackend() {
	imgui.AlignTextToFramePadding()
	imgui.Text("API")
	imgui.SameLine()

	preview := win.backend.String()
	if win.useGlobal {
		preview = useGlobalLabel
	}

	// an override cannot change away from a backend that has previously
	// failed to initialise
	if backendLocked(win.scope, win.img.gfx.BrokenVulkan.Get().(bool)) {
		imgui.Text(preview)
		return
	}

	if imgui.BeginCombo("##backend", preview) {
		if win.scope == settings.ScopeOverride {
			if imgui.Selectable(useGlobalLabel) {
				win.useGlobal = true
				win.backend = win.img.gfx.Backend()
				win.rebuild()
			}
		}

		for _, b := range settings.BackendList() {
			// discourage reselection of a backend that has previously
			// failed to initialise
			if b == settings.BackendVulkan && win.backend != settings.BackendVulkan {
				if win.img.gfx.BrokenVulkan.Get().(bool) {
					continue
				}
			}

			if imgui.Selectable(b.String()) {
				win.backend = b
				win.useGlobal = false
				win.rebuild()
			}
		}
		imgui.EndCombo()
	}
}

func (win *winGraphics) drawDevice() {
	names := win.img.neg.DeviceNames()

	preview := ""
	if win.deviceIndex >= 0 && win.deviceIndex < len(names) {
		preview = names[win.deviceIndex]
	}

	imgui.AlignTextToFramePadding()
	imgui.Text("Device")
	imgui.SameLine()

	if imgui.BeginCombo("##device", preview) {
		for i, n := range names {
			if imgui.Selectable(n) {
				win.deviceIndex = i
				win.rebuild()
			}
		}
		imgui.EndCombo()
	}
}

func (win *winGraphics) drawShaderBackend() {
	imgui.AlignTextToFramePadding()
	imgui.Text("Shader Backend")
	imgui.SameLine()

	if imgui.BeginCombo("##shaderbackend", win.shaderBackend.String()) {
		for _, b := range settings.ShaderBackendList() {
			if imgui.Selectable(b.String()) {
				win.shaderBackend = b
			}
		}
		imgui.EndCombo()
	}
}

func (win *winGraphics) drawSyncMode() {
	// an out of range selection previews as the empty string. the user must
	// pick a mode deliberately, the window never picks one for them
	preview := ""
	if win.selected != vsync.NoSelection && win.selected < len(win.choices) {
		preview = win.choices[win.selected].Label
	}

	imgui.AlignTextToFramePadding()
	imgui.Text("VSync Mode")
	imgui.SameLine()

	if imgui.BeginCombo("##vsyncmode", preview) {
		for i, c := range win.choices {
			if imgui.Selectable(c.Label) {
				win.selected = i
			}
		}
		imgui.EndCombo()
	}
}

func (win *winGraphics) drawDiskButtons() {
	if imgui.Button("Apply") {
		win.commit()
	}

	imgui.SameLine()
	if imgui.Button("Restore Defaults") {
		err := win.img.gfx.Reset()
		if err != nil {
			logger.Logf(logger.Allow, "sdlimgui", "restore defaults: %v", err)
		}
		win.reload()
		win.rebuild()
	}
}

// commit writes the working copies back to the settings store and saves the
// store to disk. sync mode commits go through the negotiator so that scope
// rules are applied in one place.
func (win *winGraphics) commit() {
	gfx := win.img.gfx

	gfx.SetBackend(commitBackend(win.scope, win.useGlobal, win.backend, gfx.Backend()))
	gfx.SetShaderBackend(win.shaderBackend)

	for _, err := range []error{
		gfx.VulkanDevice.Set(win.deviceIndex),
		gfx.BGRed.Set(int(win.bg[0] * 255.0)),
		gfx.BGGreen.Set(int(win.bg[1] * 255.0)),
		gfx.BGBlue.Set(int(win.bg[2] * 255.0)),
		gfx.Sharpening.Set(float64(win.sharpening)),
		gfx.ComputeWorkaround.Set(win.computeWorkaround),
	} {
		if err != nil {
			logger.Logf(logger.Allow, "sdlimgui", "commit: %v", err)
		}
	}

	selected := vsync.ModeNone
	if win.selected != vsync.NoSelection && win.selected < len(win.choices) {
		selected = win.choices[win.selected].Mode
	}

	err := win.img.neg.Commit(win.scope, selected, gfx)
	if err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "commit: %v", err)
	}

	win.img.applySwapInterval(selected)

	err = gfx.Save()
	if err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "save: %v", err)
	}
}

// backendLocked says whether the backend selector accepts changes at all.
// a backend that has failed to initialise before cannot be changed in the
// override scope.
func backendLocked(scope settings.Scope, brokenVulkan bool) bool {
	return scope == settings.ScopeOverride && brokenVulkan
}

// commitBackend resolves the backend value written on apply. an override
// that defers to the global setting leaves the stored value untouched.
func commitBackend(scope settings.Scope, useGlobal bool, working settings.Backend, stored settings.Backend) settings.Backend {
	if scope == settings.ScopeOverride && useGlobal {
		return stored
	}
	return working
}
