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

// Package cpubus defines the interface the CPU uses to access memory and any
// devices mapped into the address space. The CPU never owns memory. Resolving
// which device responds to an address is the responsibility of the
// implementation.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Read() may have side effects, for example when reading from a mapped
// I/O register.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Peeker is implemented by memory that can be read without side effects. Used
// by the disassembler so that producing a listing never changes the state of
// the system.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Addresses of the interrupt vectors. Each vector is a little-endian word.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// StackPage is the page of memory used by the stack.
const StackPage = uint16(0x0100)
