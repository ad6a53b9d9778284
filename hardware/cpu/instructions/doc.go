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

// Package instructions defines the table of instruction definitions for the
// 6502. The table covers all 256 opcodes. Undocumented opcodes either alias a
// documented operation (the NOP variants and SBC at 0xeb) or use the XXX
// operator, which consumes cycles and has no other effect. Every opcode has
// the addressing mode of the real hardware so that instruction length is
// always correct.
//
// The table is generated from generator/instructions.csv with go generate.
// Do not edit table.go by hand.
package instructions
