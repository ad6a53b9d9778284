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

package disassembly

import (
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// Error patterns.
const (
	ErrNoMemory = "disassembly: no memory"
	ErrRange    = "disassembly: start address (%04x) is after stop address (%04x)"
	ErrPeek     = "disassembly: %04x: %w"
)

// Disassembly is the result of disassembling a range of memory.
type Disassembly struct {
	entries map[uint16]*Entry

	// addresses of the entries in ascending order
	order []uint16
}

// Disassemble the memory between start and stop (inclusive). The final
// instruction may extend beyond the stop address. Addresses wrap around at
// the end of the address space.
func Disassemble(mem cpubus.Peeker, start, stop uint16) (*Disassembly, error) {
	if mem == nil {
		return nil, curated.Errorf(ErrNoMemory)
	}
	if start > stop {
		return nil, curated.Errorf(ErrRange, start, stop)
	}

	dsm := &Disassembly{
		entries: make(map[uint16]*Entry),
	}

	// the loop counter is wider than an address so that a stop address of
	// 0xffff does not cause an infinite loop
	for a := uint32(start); a <= uint32(stop); {
		address := uint16(a)

		opcode, err := mem.Peek(address)
		if err != nil {
			return nil, curated.Errorf(ErrPeek, address, err)
		}

		defn := instructions.Lookup(opcode)
		bytes := []uint8{opcode}
		for i := 1; i < defn.Bytes; i++ {
			v, err := mem.Peek(address + uint16(i))
			if err != nil {
				return nil, curated.Errorf(ErrPeek, address+uint16(i), err)
			}
			bytes = append(bytes, v)
		}

		dsm.entries[address] = newEntry(address, defn, bytes)
		dsm.order = append(dsm.order, address)

		a += uint32(defn.Bytes)
	}

	return dsm, nil
}

// Get returns the entry for the address. Returns false if no instruction
// starts at that address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.entries[address]
	return e, ok
}

// Addresses returns the address of every entry in ascending order.
func (dsm *Disassembly) Addresses() []uint16 {
	a := make([]uint16, len(dsm.order))
	copy(a, dsm.order)
	return a
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.order)
}
