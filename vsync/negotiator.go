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

package vsync

import (
	"github.com/tebowy/kwasny-owoc/settings"
)

// Record describes one enumerated physical device: a display name, the
// present modes the device supports and whether the device is known to have
// a defective compute pipeline.
//
// Records are produced by a device enumerator (see the wgpu sub-package) and
// are immutable once handed to a Negotiator. The enumerator guarantees that
// the Modes field contains each present mode at most once; the Negotiator
// relies on that and does not deduplicate.
type Record struct {
	Name          string
	Modes         []PresentMode
	BrokenCompute bool
}

// Choice is one entry in the list of offerable synchronisation modes.
type Choice struct {
	Mode  PresentMode
	Label string
}

// NoSelection is the selection index returned by Rebuild() when the
// previous mode is not in the offered list. The caller decides what an
// absent selection means; the Negotiator never invents one.
const NoSelection = -1

// the modes offered by backends without per-device mode enumeration.
var defaultModes = []PresentMode{ModeImmediate, ModeFIFO}

// Negotiator owns the derivation of offerable synchronisation modes from a
// (backend, device) context.
//
// A Negotiator holds no per-rebuild state of its own and must only be used
// from one goroutine at a time.
type Negotiator struct {
	records []Record
}

// NewNegotiator is the preferred method of initialisation for the
// Negotiator type.
//
// The exposeCompute callback is called once for every record flagged with a
// broken compute pipeline. It lets the host reveal a workaround option
// elsewhere in its interface. The callback is not retained.
func NewNegotiator(records []Record, exposeCompute func()) *Negotiator {
	n := &Negotiator{
		records: make([]Record, len(records)),
	}
	copy(n.records, records)

	if exposeCompute != nil {
		for _, r := range n.records {
			if r.BrokenCompute {
				exposeCompute()
			}
		}
	}

	return n
}

// NumDevices returns the number of device records known to the negotiator.
func (n *Negotiator) NumDevices() int {
	return len(n.records)
}

// DeviceNames returns the display names of the device records, in record
// order.
func (n *Negotiator) DeviceNames() []string {
	names := make([]string, len(n.records))
	for i := range n.records {
		names[i] = n.records[i].Name
	}
	return names
}

// Rebuild derives the list of offerable synchronisation modes for the
// specified backend and device, and the index into that list of the
// previous mode.
//
// The deviceIndex argument is only meaningful for backends with explicit
// device selection (Vulkan). An out-of-range deviceIndex for such a backend
// yields an empty list; it is never clamped. For other backends the default
// mode list is used and deviceIndex is ignored. The Null backend always
// yields an empty list.
//
// Modes with no label under the backend (see NameFor()) are excluded from
// the list, not merely hidden.
//
// The returned selection index is NoSelection when previous does not appear
// in the offered list, including on every empty list. Use ModeNone as the
// previous mode when nothing has been selected yet.
//
// Rebuild is idempotent: identical arguments over identical records always
// produce identical results.
func (n *Negotiator) Rebuild(backend settings.Backend, deviceIndex int, previous PresentMode) ([]Choice, int) {
	if backend == settings.BackendNull {
		return nil, NoSelection
	}

	var source []PresentMode
	if backend == settings.BackendVulkan {
		if deviceIndex < 0 || deviceIndex >= len(n.records) {
			return nil, NoSelection
		}
		source = n.records[deviceIndex].Modes
	} else {
		source = defaultModes
	}

	offered := make([]Choice, 0, len(source))
	selected := NoSelection

	for _, m := range source {
		label := NameFor(m, backend)
		if label == "" {
			continue
		}
		if m == previous {
			selected = len(offered)
		}
		offered = append(offered, Choice{Mode: m, Label: label})
	}

	return offered, selected
}

// Store is the destination of a Commit(). The settings.Graphics type
// satisfies it.
type Store interface {
	SetVSyncMode(settings.VSyncMode) error
}

// Commit writes the setting equivalent of the selected present mode to the
// store.
//
// The write only happens when configuring the global scope. In the override
// scope the vsync mode is managed by the override mechanism and the commit
// is skipped entirely. A selection of ModeNone is also skipped; there is
// nothing to write.
func (n *Negotiator) Commit(scope settings.Scope, selected PresentMode, store Store) error {
	if scope != settings.ScopeGlobal {
		return nil
	}
	if selected == ModeNone {
		return nil
	}
	return store.SetVSyncMode(ModeToSetting(selected))
}
