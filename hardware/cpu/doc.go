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

// Package cpu emulates the MOS 6502 and the Ricoh 2A03. The two variants
// differ only in whether the decimal flag affects ADC and SBC. The variant is
// selected with the cpu.variant preference (see the hardware/preferences
// package).
//
// Emulation is at instruction-cycle granularity. On the first clock tick of
// an instruction the opcode is fetched and the entire instruction is
// executed. The remaining cycles of the instruction are then counted down by
// subsequent calls to Clock(). The Complete() function indicates that the
// CPU is ready to begin a new instruction.
//
// The CPU accesses memory through the cpubus.Memory interface. Errors
// returned by the bus are returned by Clock() and the other functions that
// touch the bus.
//
// Illegal opcodes are not errors. Opcodes with no defined operation consume
// the cycles of the equivalent hardware instruction and have no other
// effect. Some undocumented opcodes are aliases for documented operations
// (for example, 0xeb is SBC immediate) and the undocumented NOPs read and
// discard their operand.
//
// A CPU is not safe for concurrent use. Separate CPU instances attached to
// separate memory can be run on different goroutines.
package cpu
