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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// Error patterns.
const (
	ErrMemory = "digest: memory: %04x: %w"
	ErrRange  = "digest: memory: start address (%04x) is after end address (%04x)"
)

// Memory returns the hash of the memory between the two addresses
// (inclusive). Memory is accessed with Peek() so there are no side-effects.
func Memory(mem cpubus.Peeker, from uint16, to uint16) (string, error) {
	if from > to {
		return "", curated.Errorf(ErrRange, from, to)
	}

	data := make([]uint8, 0, int(to)-int(from)+1)
	for a := uint32(from); a <= uint32(to); a++ {
		v, err := mem.Peek(uint16(a))
		if err != nil {
			return "", curated.Errorf(ErrMemory, a, err)
		}
		data = append(data, v)
	}

	return fmt.Sprintf("%x", sha1.Sum(data)), nil
}
