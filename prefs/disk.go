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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tebowy/kwasny-owoc/curated"
	"github.com/tebowy/kwasny-owoc/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file,
// relative to the resources path.
const DefaultPrefsFile = "kwasny-owoc.prefs"

// WarningBoilerPlate is the first line of a saved prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is a sentinel error returned when the prefs file does not
// exist on disk.
const NoPrefsFile = "prefs: no prefs file (%v)"

// the string that separates the key from the value in a prefs file entry.
const entrySeparator = " :: "

// Disk represents preference values that are saved to disk. Each value is
// registered with the Add() function under a unique key.
//
// More than one Disk instance can use the same file. Saving one instance
// will not clobber the entries registered with another.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the fully qualified filename of the prefs file to use.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: no path for prefs file")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%v\n", k, entrySeparator, dsk.entries[k]))
	}
	return s.String()
}

// Add a preference value to the list of values registered with this Disk
// instance. The key must be unique to the instance and must not contain the
// key/value separator.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, strings.TrimSpace(entrySeparator)) {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already registered (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the prefs file, returning a map of all key/value pairs it contains.
// defunct keys are dropped.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, err)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	onDisk := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "***") {
			continue
		}
		kv := strings.SplitN(line, entrySeparator, 2)
		if len(kv) != 2 {
			continue
		}
		if isDefunct(kv[0]) {
			continue
		}
		onDisk[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return onDisk, nil
}

// Load prefs values from disk. Command line preferences take precedence over
// what is stored in the file.
//
// If andSave is true then the file is saved immediately after a successful
// load. This keeps the file complete when new keys have been registered
// since the file was last written.
//
// Returns the NoPrefsFile sentinel error if the file does not exist.
func (dsk *Disk) Load(andSave bool) error {
	onDisk, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
			continue
		}
		if v, ok := onDisk[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	logger.Logf(logger.Allow, "prefs", "loaded %d entries from %s", len(dsk.entries), dsk.path)

	if andSave {
		return dsk.Save()
	}

	return nil
}

// Save current prefs values to disk. Entries in the file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	// current file contents. a missing file is fine, we're about to create it
	onDisk, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		onDisk = make(map[string]string)
	}

	// registered entries take precedence over what is on disk
	for k, p := range dsk.entries {
		onDisk[k] = p.String()
	}

	keys := make([]string, 0, len(onDisk))
	for k := range onDisk {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, entrySeparator, onDisk[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d entries to %s", len(onDisk), dsk.path)

	return nil
}

// Reset all prefs registered with this Disk instance to their default
// values. The file on disk is not touched.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// DoesNotHaveEntry returns true if the prefs file does not contain an entry
// for the specified key. A missing prefs file means the key is absent.
func (dsk *Disk) DoesNotHaveEntry(key string) (bool, error) {
	onDisk, err := dsk.readFile()
	if err != nil {
		if curated.Is(err, NoPrefsFile) {
			return true, nil
		}
		return false, err
	}

	_, ok := onDisk[key]
	return !ok, nil
}
