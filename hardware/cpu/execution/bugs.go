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

package execution

// Bug names a known hardware bug that can be triggered during execution.
type Bug string

// List of CPU bugs that are recorded in the Result.
const (
	NoBug Bug = ""

	// JMP (ind) with a pointer at the end of a page reads the high byte of
	// the target from the start of the same page
	JmpIndirectAddressingBug Bug = "indirect addressing bug"
)
