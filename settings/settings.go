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

// Package settings collates the persisted renderer settings and the
// enumerations used to describe them.
//
// The enumerations are explicit tagged values. They are never derived from
// the position of a widget in a selector; translating between widget indices
// and these values is the business of whatever is presenting the settings to
// the user.
package settings

import (
	"github.com/tebowy/kwasny-owoc/curated"
)

// Backend is the graphics API strategy used by the renderer. The Null
// backend renders nothing and is useful for benchmarking and testing.
type Backend int

// List of valid Backend values.
const (
	BackendOpenGL Backend = iota
	BackendVulkan
	BackendNull
)

func (b Backend) String() string {
	switch b {
	case BackendOpenGL:
		return "OPENGL"
	case BackendVulkan:
		return "VULKAN"
	case BackendNull:
		return "NULL"
	}
	return "unknown"
}

// BackendList returns the valid Backend values, in value order.
func BackendList() []Backend {
	return []Backend{BackendOpenGL, BackendVulkan, BackendNull}
}

// ParseBackend converts a string to a Backend value. The comparison is
// case sensitive. The empty string parses to the default backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "":
		return BackendOpenGL, nil
	case "OPENGL":
		return BackendOpenGL, nil
	case "VULKAN":
		return BackendVulkan, nil
	case "NULL":
		return BackendNull, nil
	}
	return BackendOpenGL, curated.Errorf(UnknownEnumValue, "Backend", s)
}

// ShaderBackend is the shader compilation strategy used by the OpenGL
// backend. It has no meaning for other backends.
type ShaderBackend int

// List of valid ShaderBackend values.
const (
	ShaderGLSL ShaderBackend = iota
	ShaderGLASM
	ShaderSPIRV
)

func (b ShaderBackend) String() string {
	switch b {
	case ShaderGLSL:
		return "GLSL"
	case ShaderGLASM:
		return "GLASM"
	case ShaderSPIRV:
		return "SPIRV"
	}
	return "unknown"
}

// ShaderBackendList returns the valid ShaderBackend values, in value order.
func ShaderBackendList() []ShaderBackend {
	return []ShaderBackend{ShaderGLSL, ShaderGLASM, ShaderSPIRV}
}

// ParseShaderBackend converts a string to a ShaderBackend value. The empty
// string parses to the default shader backend.
func ParseShaderBackend(s string) (ShaderBackend, error) {
	switch s {
	case "":
		return ShaderGLSL, nil
	case "GLSL":
		return ShaderGLSL, nil
	case "GLASM":
		return ShaderGLASM, nil
	case "SPIRV":
		return ShaderSPIRV, nil
	}
	return ShaderGLSL, curated.Errorf(UnknownEnumValue, "ShaderBackend", s)
}

// VSyncMode is the persisted, backend-independent synchronisation
// preference. It is distinct from the present mode identifiers used when
// talking to a device; see the vsync package for the translation between
// the two.
type VSyncMode int

// List of valid VSyncMode values.
const (
	VSyncImmediate VSyncMode = iota
	VSyncMailbox
	VSyncFIFO
	VSyncFIFORelaxed
)

func (m VSyncMode) String() string {
	switch m {
	case VSyncImmediate:
		return "IMMEDIATE"
	case VSyncMailbox:
		return "MAILBOX"
	case VSyncFIFO:
		return "FIFO"
	case VSyncFIFORelaxed:
		return "FIFO_RELAXED"
	}
	return "unknown"
}

// ParseVSyncMode converts a string to a VSyncMode value. The empty string
// parses to the default mode.
func ParseVSyncMode(s string) (VSyncMode, error) {
	switch s {
	case "":
		return VSyncFIFO, nil
	case "IMMEDIATE":
		return VSyncImmediate, nil
	case "MAILBOX":
		return VSyncMailbox, nil
	case "FIFO":
		return VSyncFIFO, nil
	case "FIFO_RELAXED":
		return VSyncFIFORelaxed, nil
	}
	return VSyncFIFO, curated.Errorf(UnknownEnumValue, "VSyncMode", s)
}

// Scope says whether a configuration session is editing the global settings
// or a per-game override. It is threaded explicitly through any operation
// that commits values to the store.
type Scope int

// List of valid Scope values.
const (
	ScopeGlobal Scope = iota
	ScopeOverride
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeOverride:
		return "override"
	}
	return "unknown"
}

// UnknownEnumValue is a sentinel error returned by the Parse functions.
const UnknownEnumValue = "settings: unknown %s value (%s)"
