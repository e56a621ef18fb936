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
	"path/filepath"
	"testing"

	"github.com/tebowy/kwasny-owoc/test"
)

func TestParseRoundTrip(t *testing.T) {
	for _, b := range []Backend{BackendOpenGL, BackendVulkan, BackendNull} {
		v, err := ParseBackend(b.String())
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(v), int(b))
	}

	for _, b := range []ShaderBackend{ShaderGLSL, ShaderGLASM, ShaderSPIRV} {
		v, err := ParseShaderBackend(b.String())
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(v), int(b))
	}

	for _, m := range []VSyncMode{VSyncImmediate, VSyncMailbox, VSyncFIFO, VSyncFIFORelaxed} {
		v, err := ParseVSyncMode(m.String())
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(v), int(m))
	}
}

func TestEnumLists(t *testing.T) {
	// the lists carry enum values in value order. anything presenting them
	// converts to strings itself
	backends := BackendList()
	test.Equate(t, len(backends), 3)
	test.Equate(t, int(backends[0]), int(BackendOpenGL))
	test.Equate(t, int(backends[1]), int(BackendVulkan))
	test.Equate(t, int(backends[2]), int(BackendNull))

	shaders := ShaderBackendList()
	test.Equate(t, len(shaders), 3)
	test.Equate(t, int(shaders[0]), int(ShaderGLSL))
	test.Equate(t, int(shaders[1]), int(ShaderGLASM))
	test.Equate(t, int(shaders[2]), int(ShaderSPIRV))

	for _, b := range backends {
		v, err := ParseBackend(b.String())
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(v), int(b))
	}
	for _, s := range shaders {
		v, err := ParseShaderBackend(s.String())
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(v), int(s))
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := ParseBackend("DIRECT3D")
	test.ExpectedFailure(t, err)

	_, err = ParseShaderBackend("HLSL")
	test.ExpectedFailure(t, err)

	_, err = ParseVSyncMode("ADAPTIVE")
	test.ExpectedFailure(t, err)
}

func TestParseEmptyIsDefault(t *testing.T) {
	b, err := ParseBackend("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(b), int(BackendOpenGL))

	m, err := ParseVSyncMode("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(m), int(VSyncFIFO))
}

func TestGraphicsPersistence(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "settings_test")

	g, err := newGraphics(pth)
	if err != nil {
		t.Fatalf("error creating graphics settings: %v", err)
	}

	// defaults
	test.Equate(t, g.Backend().String(), "OPENGL")
	test.Equate(t, g.VSyncMode().String(), "FIFO")

	// change some values and save
	g.SetBackend(BackendVulkan)
	err = g.SetVSyncMode(VSyncMailbox)
	test.ExpectedSuccess(t, err)
	err = g.VulkanDevice.Set(1)
	test.ExpectedSuccess(t, err)

	err = g.Save()
	test.ExpectedSuccess(t, err)

	// a fresh instance picks the saved values up from disk
	h, err := newGraphics(pth)
	if err != nil {
		t.Fatalf("error creating graphics settings: %v", err)
	}

	test.Equate(t, h.Backend().String(), "VULKAN")
	test.Equate(t, h.VSyncMode().String(), "MAILBOX")
	test.Equate(t, h.VulkanDevice.Get().(int), 1)
}

func TestGraphicsReset(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "settings_test")

	g, err := newGraphics(pth)
	if err != nil {
		t.Fatalf("error creating graphics settings: %v", err)
	}

	g.SetBackend(BackendNull)
	err = g.Sharpening.Set(0.9)
	test.ExpectedSuccess(t, err)

	err = g.Reset()
	test.ExpectedSuccess(t, err)

	test.Equate(t, g.Backend().String(), "OPENGL")
	test.Equate(t, g.Sharpening.Get().(float64), 0.5)
	test.Equate(t, g.BGRed.Get().(int), 0)
	test.Equate(t, g.BrokenVulkan.Get().(bool), false)
	test.Equate(t, g.ComputeWorkaround.Get().(bool), false)
}
