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

// Package script allows a System to be controlled by a Lua script. The
// following functions are available to the script:
//
//	peek(address)            returns the value at address
//	poke(address, value)     writes value to address
//	step([n])                executes n instructions (default 1)
//	clock([n])               advances the CPU by n cycles (default 1)
//	run(cycles)              runs for a number of cycles. returns the stop reason
//	reset()                  resets the CPU
//	irq()                    raises an interrupt request
//	nmi()                    raises a non-maskable interrupt
//	reg(name)                returns the value of register PC, A, X, Y, SP or SR
//	setreg(name, value)      loads a value into a register
//	cycles()                 returns the number of cycles since creation
//	complete()               returns true if no instruction is in progress
//	disasm(address)          returns the disassembly of the instruction at address
//	state()                  returns a string describing the CPU registers
//	load(filename, origin)   loads a file into memory
//	print(...)               writes to the script output
//
// Bus errors and bad arguments are raised as Lua errors.
package script
