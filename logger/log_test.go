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

package logger_test

import (
	"strings"
	"testing"

	"github.com/tebowy/kwasny-owoc/logger"
	"github.com/tebowy/kwasny-owoc/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "sdl", "window created")
	logger.Logf(logger.Allow, "vsync", "offering %d modes", 3)

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "sdl: window created\nvsync: offering 3 modes\n")
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "wgpu", "adapter lost")
	logger.Log(logger.Allow, "wgpu", "adapter lost")
	logger.Log(logger.Allow, "wgpu", "adapter lost")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "wgpu: adapter lost (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "a", "1")
	logger.Log(logger.Allow, "b", "2")
	logger.Log(logger.Allow, "c", "3")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "b: 2\nc: 3\n")

	// tail longer than the log is capped
	s.Reset()
	logger.Tail(s, 100)
	test.Equate(t, s.String(), "a: 1\nb: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "a", "1")

	s := &strings.Builder{}
	logger.WriteRecent(s)
	test.Equate(t, s.String(), "a: 1\n")

	// entry has been seen so a second call writes nothing
	s.Reset()
	logger.WriteRecent(s)
	test.Equate(t, s.String(), "")

	logger.Log(logger.Allow, "b", "2")
	s.Reset()
	logger.WriteRecent(s)
	test.Equate(t, s.String(), "b: 2\n")
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()

	logger.Log(deny{}, "quiet", "should not appear")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "")
}
