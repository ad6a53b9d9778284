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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/cpu"
)

// the number of states to buffer before the digest is updated
const traceStates = 256

// the number of bytes required to store a single state
const traceStateSize = 15

// the start of the buffer is reserved for the previous digest value
const traceBufferStart = sha1.Size

const traceBufferLength = traceBufferStart + traceStates*traceStateSize

// Trace is a chained digest of CPU states.
type Trace struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	count    int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	dig := &Trace{
		buffer:   make([]uint8, traceBufferLength),
		bufferCt: traceBufferStart,
	}
	return dig
}

func (dig *Trace) String() string {
	return fmt.Sprintf("%s (%d states)", dig.Hash(), dig.count)
}

// Hash implements the Digest interface. States that have not yet been
// flushed are included in the hash.
func (dig *Trace) Hash() string {
	if dig.bufferCt == traceBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	copy(dig.buffer, dig.digest[:])
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = traceBufferStart
	dig.count = 0
}

// Count returns the number of states added to the digest since the last
// reset.
func (dig *Trace) Count() int {
	return dig.count
}

// AddState adds the CPU state to the digest.
func (dig *Trace) AddState(s cpu.State) {
	b := dig.buffer[dig.bufferCt : dig.bufferCt+traceStateSize : dig.bufferCt+traceStateSize]
	binary.LittleEndian.PutUint16(b[0:], s.PC)
	b[2] = s.A
	b[3] = s.X
	b[4] = s.Y
	b[5] = s.SP
	b[6] = s.Status
	binary.LittleEndian.PutUint64(b[7:], s.ClockCount)

	dig.bufferCt += traceStateSize
	dig.count++

	if dig.bufferCt >= traceBufferLength {
		dig.flush()
	}
}

// chain the digest by copying the current value to the head of the buffer
func (dig *Trace) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.bufferCt = traceBufferStart
}
