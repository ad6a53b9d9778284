// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// so that the caller can decide whether to continue. The Demand*() functions
// call t.Fatalf() instead.
//
// Every function accepts an optional list of tags. The tags are prepended to
// any failure message and help identify which of many similar tests has
// failed. If the first tag is a string containing a formatting verb then the
// remaining tags are used as arguments for that string.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle nil
// because it is not obvious. The nil type is considered a success. This is
// because of how errors usually work (nil to indicate no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
