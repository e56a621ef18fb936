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

package prefs_test

import (
	"testing"

	"github.com/tebowy/kwasny-owoc/prefs"
	"github.com/tebowy/kwasny-owoc/test"
)

func TestCommandLineStack(t *testing.T) {
	test.Equate(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("graphics.backend::VULKAN; graphics.vsyncmode::MAILBOX")
	test.Equate(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("graphics.backend")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v.(string), "VULKAN")

	// values are deleted as they are returned
	ok, _ = prefs.GetCommandLinePref("graphics.backend")
	test.ExpectedFailure(t, ok)

	// unused values are returned when the group is popped
	s := prefs.PopCommandLineStack()
	test.Equate(t, s, "graphics.vsyncmode::MAILBOX")
	test.Equate(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineStackGroups(t *testing.T) {
	prefs.PushCommandLineStack("a::1")
	prefs.PushCommandLineStack("b::2")

	// only the top of the stack is consulted
	ok, _ := prefs.GetCommandLinePref("a")
	test.ExpectedFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("b")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v.(string), "2")

	test.Equate(t, prefs.PopCommandLineStack(), "")
	test.Equate(t, prefs.PopCommandLineStack(), "a::1")
}
