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

package vsync_test

import (
	"testing"

	"github.com/tebowy/kwasny-owoc/settings"
	"github.com/tebowy/kwasny-owoc/test"
	"github.com/tebowy/kwasny-owoc/vsync"
)

func TestSettingRoundTrip(t *testing.T) {
	for _, s := range []settings.VSyncMode{
		settings.VSyncImmediate,
		settings.VSyncMailbox,
		settings.VSyncFIFO,
		settings.VSyncFIFORelaxed,
	} {
		test.Equate(t, int(vsync.ModeToSetting(vsync.SettingToMode(s))), int(s))
	}
}

func TestForeignModeFoldsToFIFO(t *testing.T) {
	// present modes outside the defined set fold to the FIFO setting
	test.Equate(t, int(vsync.ModeToSetting(vsync.PresentMode(99))), int(settings.VSyncFIFO))
	test.Equate(t, int(vsync.ModeToSetting(vsync.ModeNone)), int(settings.VSyncFIFO))

	// and the reverse direction folds to the FIFO mode
	test.Equate(t, int(vsync.SettingToMode(settings.VSyncMode(99))), int(vsync.ModeFIFO))
}

func TestNameForDeterminism(t *testing.T) {
	modes := []vsync.PresentMode{
		vsync.ModeImmediate,
		vsync.ModeMailbox,
		vsync.ModeFIFO,
		vsync.ModeFIFORelaxed,
		vsync.PresentMode(99),
	}
	backends := []settings.Backend{
		settings.BackendOpenGL,
		settings.BackendVulkan,
		settings.BackendNull,
	}

	for _, m := range modes {
		for _, b := range backends {
			test.Equate(t, vsync.NameFor(m, b), vsync.NameFor(m, b))
		}
	}
}

func TestNameForBackendFraming(t *testing.T) {
	// OpenGL frames immediate/fifo as a toggle
	test.Equate(t, vsync.NameFor(vsync.ModeImmediate, settings.BackendOpenGL), "Off")
	test.Equate(t, vsync.NameFor(vsync.ModeFIFO, settings.BackendOpenGL), "On")

	// vulkan uses compound labels
	test.Equate(t, vsync.NameFor(vsync.ModeImmediate, settings.BackendVulkan), "Immediate (VSync Off)")
	test.Equate(t, vsync.NameFor(vsync.ModeFIFO, settings.BackendVulkan), "FIFO (VSync On)")

	// relaxed FIFO cannot be expressed under OpenGL
	test.Equate(t, vsync.NameFor(vsync.ModeFIFORelaxed, settings.BackendOpenGL), "")
	test.Equate(t, vsync.NameFor(vsync.ModeFIFORelaxed, settings.BackendVulkan), "FIFO Relaxed")

	// nothing is nameable under the null backend
	test.Equate(t, vsync.NameFor(vsync.ModeFIFO, settings.BackendNull), "")
}
