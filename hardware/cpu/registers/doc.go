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

// Package registers implements the three types of registers found in the 6502
// family of CPUs: the 8bit Register (used for A, X and Y), the StackPointer,
// the 16bit ProgramCounter and the StatusRegister.
//
// The 8bit registers provide helpers for the logical operations. Flags in the
// status register are not affected by any register operation. Setting of
// flags is done by the CPU. For example:
//
//	a.Load(10)
//	a.EOR(10)
//	sr.Zero = a.IsZero()
//
// The decimal mode helpers, AddDecimal() and SubtractDecimal(), are only used
// when the CPU variant honours the decimal flag. The 2A03 found in the NES
// does not.
package registers
