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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), and returns
// an error. The pattern is remembered and can be tested for:
//
//	e := curated.Errorf("negotiator: %v", err)
//
//	if curated.Is(e, "negotiator: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than only at the outermost level. The IsAny()
// function answers whether the error was created by curated.Errorf() at all.
//
// The Error() function implementation normalises the message chain, removing
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors: wrapping with the same pattern at several levels of a call
// stack does not produce a stuttering message.
//
// For the purposes of this package, chains are composed of parts separated by
// the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that creates them. See the prefs package for an
// example.
package curated
