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

package execution

import (
	"github.com/jetsetilly/mos6502/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	// is PageFault valid given content of Defn
	if r.PageFault && !r.Defn.PageSensitive() && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic())
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: unexpected branch success for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic())
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// number of cycles is not checked if a bug has been triggered
	if r.CPUBug != NoBug {
		return nil
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
		}
		if r.PageFault {
			expected++
		}
	} else if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
	}

	return nil
}
