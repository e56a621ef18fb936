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

// Package sdlimgui is the SDL based presentation host. It owns the window,
// the GL context and the dear imgui machinery, and it draws the graphics
// settings surface.
//
// All functions in this package must be called from the same thread that
// created the SdlImgui instance, which in turn must be the main thread.
package sdlimgui

import (
	"io"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/tebowy/kwasny-owoc/curated"
	"github.com/tebowy/kwasny-owoc/resources"
	"github.com/tebowy/kwasny-owoc/settings"
	"github.com/tebowy/kwasny-owoc/vsync"
)

// imguiIniFile is where imgui stores the coordinates of the imgui windows.
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based presentation host using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     renderer

	// the settings store and the negotiator over the enumerated devices
	gfx *settings.Graphics
	neg *vsync.Negotiator

	win *winGraphics

	// closed by the service loop when the user asks to leave. see Done()
	quitChan chan struct{}
	quit     bool
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// The scope argument decides whether the settings window edits the global
// settings or a per-game override.
//
// The negotiator is built here, rather than accepted as an argument, because
// the broken compute callback reveals an option in the settings window and
// the window does not exist before this function runs.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(gfx *settings.Graphics, records []vsync.Record, scope settings.Scope) (*SdlImgui, error) {
	img := &SdlImgui{
		context:  imgui.CreateContext(nil),
		io:       imgui.CurrentIO(),
		gfx:      gfx,
		quitChan: make(chan struct{}),
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd = newRenderer(img)
	err = img.rnd.start()
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.rnd.addFontTexture(img.io.Fonts())

	img.win = newWinGraphics(img, scope)
	img.neg = vsync.NewNegotiator(records, func() {
		img.win.showComputeWorkaround = true
	})
	img.win.rebuild()

	// honour the stored sync mode for the initial swap interval
	img.applySwapInterval(vsync.SettingToMode(gfx.VSyncMode()))

	img.plt.window.Show()

	return img, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.rnd.destroy()

	err := img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// Done returns a channel that is closed when the user has asked to leave the
// application. The service loop must still be driven until Destroy() is
// called.
func (img *SdlImgui) Done() <-chan struct{} {
	return img.quitChan
}

// end the application at the user's request.
func (img *SdlImgui) end() {
	if !img.quit {
		img.quit = true
		close(img.quitChan)
	}
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	img.win.draw()
}

// applySwapInterval translates a present mode into a GL swap interval. Only
// meaningful when the OpenGL backend is in use; the other backends manage
// presentation through their own swapchains.
func (img *SdlImgui) applySwapInterval(mode vsync.PresentMode) {
	if img.gfx.Backend() != settings.BackendOpenGL {
		return
	}

	switch mode {
	case vsync.ModeImmediate:
		img.plt.setSwapInterval(syncImmediateUpdate)
	case vsync.ModeFIFORelaxed:
		img.plt.setSwapInterval(syncAdaptive)
	default:
		img.plt.setSwapInterval(syncWithVerticalRetrace)
	}
}
