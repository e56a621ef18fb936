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

// Package resources maps resource filenames to the correct location on the
// filesystem for the host OS.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the directory all resources live under, relative to the user config
// directory for the host OS.
const resourceDir = "kwasny-owoc"

// the presence of this directory in the working directory makes the program
// "portable". all resources are read from and written to it in preference to
// the user config directory.
const portablePath = ".kwasny-owoc"

func checkPortable() bool {
	info, err := os.Stat(portablePath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// JoinPath prepends the supplied path with an OS/build specific base path,
// if required.
//
// The function creates all folders necessary to reach the end of sub-path.
// It does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	// join supplied path
	p := filepath.Join(path...)

	var b string

	if checkPortable() {
		b = portablePath
	} else {
		var err error
		b, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
		b = filepath.Join(b, resourceDir)
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
