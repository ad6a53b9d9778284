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

	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// StackPointer is an 8bit index into the stack page. The stack grows
// downwards.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the stack
// pointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%02x", sp.value)
}

// Label returns the name of the register.
func (sp StackPointer) Label() string {
	return "SP"
}

// Value returns the 8bit index.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in the stack page the stack pointer is
// currently pointing to.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write to and then moves the stack pointer
// downwards. The stack pointer wraps within the stack page.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer upwards and then returns the address to read
// from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
