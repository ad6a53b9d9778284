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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error. Packages declare their patterns as exported string constants so that
// callers can test for them:
//
//	const ErrNoBus = "cpu: no memory bus"
//
//	err := curated.Errorf(ErrNoBus)
//	if curated.Is(err, ErrNoBus) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. Curated errors that wrap another error with the %w verb
// also work with errors.Is() and errors.As() from the standard library.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as 'expected' and 'unexpected' errors.
//
// The Error() function normalises the error chain so that it does not
// contain duplicate adjacent parts. For example, if a function wraps an
// error with "cpu: %v" and the wrapped error also begins with "cpu: " then
// the prefix will appear once.
package curated
