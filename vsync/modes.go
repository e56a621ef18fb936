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

// Package vsync decides which frame synchronisation modes can be offered to
// the user for a given combination of graphics backend and physical device,
// and translates between those modes and the persisted VSyncMode setting.
//
// The two identifier spaces are deliberately distinct. A PresentMode is what
// a backend/device pair actually supports. A settings.VSyncMode is what the
// user asked for, independent of any device. The Negotiator sits between the
// two: it assembles the list of offerable modes and keeps the user's
// previous choice selected across backend and device changes whenever the
// new context still supports it.
//
// Nothing in this package is safe for concurrent use. The expectation is
// that all calls are made from a single goroutine, typically the one
// servicing the GUI.
package vsync

import (
	"github.com/tebowy/kwasny-owoc/settings"
)

// PresentMode is a frame presentation strategy supported by a graphics
// backend or device.
type PresentMode int

// List of valid PresentMode values.
const (
	ModeImmediate PresentMode = iota
	ModeMailbox
	ModeFIFO
	ModeFIFORelaxed
)

// ModeNone indicates the absence of a present mode. Used as the previous
// mode on a first call to Rebuild() when nothing has been selected yet.
const ModeNone PresentMode = -1

// SettingToMode converts a persisted VSyncMode setting to the present mode
// it asks for. The conversion is total: an unrecognised setting converts to
// ModeFIFO, the mode every device must support.
func SettingToMode(s settings.VSyncMode) PresentMode {
	switch s {
	case settings.VSyncImmediate:
		return ModeImmediate
	case settings.VSyncMailbox:
		return ModeMailbox
	case settings.VSyncFIFO:
		return ModeFIFO
	case settings.VSyncFIFORelaxed:
		return ModeFIFORelaxed
	}
	return ModeFIFO
}

// ModeToSetting converts a present mode to the VSyncMode setting that
// describes it. The conversion is total: an unrecognised mode converts to
// settings.VSyncFIFO.
//
// SettingToMode() and ModeToSetting() are mutually inverse over the four
// defined VSyncMode values.
func ModeToSetting(m PresentMode) settings.VSyncMode {
	switch m {
	case ModeImmediate:
		return settings.VSyncImmediate
	case ModeMailbox:
		return settings.VSyncMailbox
	case ModeFIFO:
		return settings.VSyncFIFO
	case ModeFIFORelaxed:
		return settings.VSyncFIFORelaxed
	}
	return settings.VSyncFIFO
}

// NameFor returns the label under which a present mode is offered to the
// user, or the empty string if the mode cannot be offered under the
// specified backend at all.
//
// The same mode reads differently depending on the backend. OpenGL frames
// synchronisation as a simple on/off toggle; the Vulkan labels carry the
// native mode name. NameFor is a pure function: identical arguments always
// produce identical results.
func NameFor(mode PresentMode, backend settings.Backend) string {
	if backend == settings.BackendNull {
		return ""
	}

	switch mode {
	case ModeImmediate:
		if backend == settings.BackendOpenGL {
			return "Off"
		}
		return "Immediate (VSync Off)"
	case ModeMailbox:
		return "Mailbox (Recommended)"
	case ModeFIFO:
		if backend == settings.BackendOpenGL {
			return "On"
		}
		return "FIFO (VSync On)"
	case ModeFIFORelaxed:
		// relaxed FIFO has no OpenGL equivalent
		if backend == settings.BackendOpenGL {
			return ""
		}
		return "FIFO Relaxed"
	}

	return ""
}
