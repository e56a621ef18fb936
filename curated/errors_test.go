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

package curated_test

import (
	"errors"
	"testing"

	"github.com/tebowy/kwasny-owoc/curated"
	"github.com/tebowy/kwasny-owoc/test"
)

func TestSentinels(t *testing.T) {
	const sentinel = "test error: %v"

	e := curated.Errorf(sentinel, 10)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, sentinel))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// uncurated errors are never matched
	f := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedFailure(t, curated.Is(f, sentinel))
	test.ExpectedFailure(t, curated.Has(f, sentinel))
}

func TestWrapping(t *testing.T) {
	const inner = "inner: %v"
	const outer = "outer: %v"

	e := curated.Errorf(inner, "foo")
	f := curated.Errorf(outer, e)

	// outermost pattern matches with Is(); the inner pattern requires Has()
	test.ExpectedSuccess(t, curated.Is(f, outer))
	test.ExpectedFailure(t, curated.Is(f, inner))
	test.ExpectedSuccess(t, curated.Has(f, inner))
	test.ExpectedSuccess(t, curated.Has(f, outer))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "foo"))
	test.Equate(t, e.Error(), "error: foo")

	// differing adjacent parts are not touched
	f := curated.Errorf("negotiator: %v", curated.Errorf("prefs: %v", "bar"))
	test.Equate(t, f.Error(), "negotiator: prefs: bar")
}
