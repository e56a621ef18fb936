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

func testRecords() []vsync.Record {
	return []vsync.Record{
		{
			Name:  "Test Adapter A",
			Modes: []vsync.PresentMode{vsync.ModeImmediate, vsync.ModeMailbox, vsync.ModeFIFO},
		},
		{
			Name:          "Test Adapter B",
			Modes:         []vsync.PresentMode{vsync.ModeFIFO, vsync.ModeFIFORelaxed},
			BrokenCompute: true,
		},
	}
}

func TestNullBackend(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	// the null backend never offers anything, whatever the device list says
	offered, selected := n.Rebuild(settings.BackendNull, 0, vsync.ModeFIFO)
	test.Equate(t, len(offered), 0)
	test.Equate(t, selected, vsync.NoSelection)
}

func TestVulkanDeviceModes(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	offered, _ := n.Rebuild(settings.BackendVulkan, 0, vsync.ModeNone)

	// exactly the device's modes, in device order, each with a label
	test.Equate(t, len(offered), 3)
	test.Equate(t, int(offered[0].Mode), int(vsync.ModeImmediate))
	test.Equate(t, int(offered[1].Mode), int(vsync.ModeMailbox))
	test.Equate(t, int(offered[2].Mode), int(vsync.ModeFIFO))
	for _, c := range offered {
		test.ExpectedFailure(t, c.Label == "")
	}
}

func TestSelectionContinuity(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	// previous mode present in the offered list
	_, selected := n.Rebuild(settings.BackendVulkan, 0, vsync.ModeMailbox)
	test.Equate(t, selected, 1)

	// previous mode absent. the negotiator must not coerce to index 0
	_, selected = n.Rebuild(settings.BackendVulkan, 1, vsync.ModeMailbox)
	test.Equate(t, selected, vsync.NoSelection)

	// no previous mode at all
	_, selected = n.Rebuild(settings.BackendVulkan, 0, vsync.ModeNone)
	test.Equate(t, selected, vsync.NoSelection)
}

func TestOpenGLDefaultModes(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	// fixed default list, not the device list
	offered, selected := n.Rebuild(settings.BackendOpenGL, 0, vsync.ModeFIFO)
	test.Equate(t, len(offered), 2)
	test.Equate(t, int(offered[0].Mode), int(vsync.ModeImmediate))
	test.Equate(t, offered[0].Label, "Off")
	test.Equate(t, int(offered[1].Mode), int(vsync.ModeFIFO))
	test.Equate(t, offered[1].Label, "On")
	test.Equate(t, selected, 1)
}

func TestUnnameableModesExcluded(t *testing.T) {
	// a mode this program does not recognise has no label under any backend
	// and must be excluded from the offered list, not merely hidden
	foreign := vsync.PresentMode(99)

	records := []vsync.Record{
		{
			Name:  "Test Adapter",
			Modes: []vsync.PresentMode{foreign, vsync.ModeFIFORelaxed, vsync.ModeFIFO},
		},
	}
	n := vsync.NewNegotiator(records, nil)

	offered, _ := n.Rebuild(settings.BackendVulkan, 0, vsync.ModeNone)
	test.Equate(t, len(offered), 2)
	test.Equate(t, int(offered[0].Mode), int(vsync.ModeFIFORelaxed))
	test.Equate(t, int(offered[1].Mode), int(vsync.ModeFIFO))

	// selection index is computed against the filtered list, not the source
	// list. FIFO is third in the record but second in the offered list
	_, selected := n.Rebuild(settings.BackendVulkan, 0, vsync.ModeFIFO)
	test.Equate(t, selected, 1)
}

func TestOutOfRangeDevice(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	// out-of-range device indices yield an empty list. they are not clamped
	offered, selected := n.Rebuild(settings.BackendVulkan, 99, vsync.ModeFIFO)
	test.Equate(t, len(offered), 0)
	test.Equate(t, selected, vsync.NoSelection)

	offered, selected = n.Rebuild(settings.BackendVulkan, -1, vsync.ModeFIFO)
	test.Equate(t, len(offered), 0)
	test.Equate(t, selected, vsync.NoSelection)
}

func TestBackendRoundTripIdempotence(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	before, beforeSel := n.Rebuild(settings.BackendVulkan, 0, vsync.ModeMailbox)

	// switch away and back with unchanged inputs
	_, _ = n.Rebuild(settings.BackendOpenGL, 0, vsync.ModeMailbox)
	after, afterSel := n.Rebuild(settings.BackendVulkan, 0, vsync.ModeMailbox)

	test.Equate(t, len(after), len(before))
	for i := range after {
		test.Equate(t, int(after[i].Mode), int(before[i].Mode))
		test.Equate(t, after[i].Label, before[i].Label)
	}
	test.Equate(t, afterSel, beforeSel)
}

func TestBrokenComputeCallback(t *testing.T) {
	count := 0
	_ = vsync.NewNegotiator(testRecords(), func() {
		count++
	})

	// one record in testRecords() is flagged
	test.Equate(t, count, 1)

	// a nil callback is fine
	_ = vsync.NewNegotiator(testRecords(), nil)
}

type commitStore struct {
	mode    settings.VSyncMode
	written bool
}

func (s *commitStore) SetVSyncMode(m settings.VSyncMode) error {
	s.mode = m
	s.written = true
	return nil
}

func TestCommitScope(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	// global scope writes the converted mode
	s := &commitStore{}
	err := n.Commit(settings.ScopeGlobal, vsync.ModeMailbox, s)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, s.written)
	test.Equate(t, int(s.mode), int(settings.VSyncMailbox))

	// override scope skips the write entirely
	s = &commitStore{}
	err = n.Commit(settings.ScopeOverride, vsync.ModeMailbox, s)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, s.written)

	// nothing selected, nothing written
	s = &commitStore{}
	err = n.Commit(settings.ScopeGlobal, vsync.ModeNone, s)
	test.ExpectedSuccess(t, err)
	test.ExpectedFailure(t, s.written)
}

func TestDeviceNames(t *testing.T) {
	n := vsync.NewNegotiator(testRecords(), nil)

	test.Equate(t, n.NumDevices(), 2)

	names := n.DeviceNames()
	test.Equate(t, names[0], "Test Adapter A")
	test.Equate(t, names[1], "Test Adapter B")
}
