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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// Size of the address space addressable by the CPU.
const Size = 0x10000

// Error patterns.
const (
	ErrLoadOverflow = "memory: data of %d bytes at origin %#04x overflows address space"
)

// RAM is a flat 64KiB memory. Every address is readable and writable. It
// implements the cpubus.Memory and cpubus.Peeker interfaces.
type RAM struct {
	memory [Size]uint8

	// the number of bus reads and writes since the RAM was created or
	// cleared. peeks and pokes are not counted
	Reads  int
	Writes int
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Check interfaces are satisfied.
var _ cpubus.Memory = (*RAM)(nil)
var _ cpubus.Peeker = (*RAM)(nil)

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	ram.Reads++
	return ram.memory[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.Writes++
	ram.memory[address] = data
	return nil
}

// Peek implements the cpubus.Peeker interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Poke writes to memory without counting as a bus access.
func (ram *RAM) Poke(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}

// Load copies data into memory starting at origin. It is an error for the
// data to extend beyond the end of the address space.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(ErrLoadOverflow, len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// SetVector writes a little-endian address to one of the vector locations
// defined in the cpubus package.
func (ram *RAM) SetVector(vector uint16, address uint16) {
	ram.memory[vector] = uint8(address)
	ram.memory[vector+1] = uint8(address >> 8)
}

// Clear sets every address to zero and resets the access counters.
func (ram *RAM) Clear() {
	ram.memory = [Size]uint8{}
	ram.Reads = 0
	ram.Writes = 0
}

// Dump returns a hex dump of 16 byte rows between the two addresses
// (inclusive). The addresses are rounded to the enclosing rows.
func (ram *RAM) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for row := uint32(from & 0xfff0); row <= uint32(to); row += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", row))
		for x := uint32(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[row+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Snapshot creates a copy of the RAM, including the access counters.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	return &n
}

// Plumb copies the contents of a snapshot into the RAM.
func (ram *RAM) Plumb(snapshot *RAM) {
	*ram = *snapshot
}
