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

package registers

import (
	"fmt"
)

// ProgramCounter represents the PC register in the 6502 CPU.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("PC=%04x", pc.value)
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "PC"
}

// Address returns the current value of the PC as a 16bit value.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Value is an alias for Address().
func (pc ProgramCounter) Value() uint16 {
	return pc.value
}

// Hi returns the high byte of the PC.
func (pc ProgramCounter) Hi() uint8 {
	return uint8(pc.value >> 8)
}

// Lo returns the low byte of the PC.
func (pc ProgramCounter) Lo() uint8 {
	return uint8(pc.value)
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Increment the PC by one, returning the value before the increment. The PC
// wraps at the end of the address space.
func (pc *ProgramCounter) Increment() uint16 {
	v := pc.value
	pc.value++
	return v
}

// Add a value to the PC. Returns true if the high byte of the PC has changed
// as a result of the addition.
func (pc *ProgramCounter) Add(val uint16) (pageChange bool) {
	v := pc.value
	pc.value += val
	return v&0xff00 != pc.value&0xff00
}
