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
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction at Address
	Defn instructions.Definition

	// the number of bytes read during instruction decode. should be the same
	// as Defn.Bytes once the result is final
	ByteCount int

	// the operand of the instruction. for relative addressing this is the
	// branch offset byte
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of a page boundary being
	// crossed
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether the instruction has finished executing. the other fields should
	// not be relied upon unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return "not final"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic()))

	switch r.Defn.Bytes {
	case 2:
		s.WriteString(fmt.Sprintf(" $%02x", r.InstructionData))
	case 3:
		s.WriteString(fmt.Sprintf(" $%04x", r.InstructionData))
	}

	s.WriteString(fmt.Sprintf(" (%d cycles)", r.Cycles))

	if r.PageFault {
		s.WriteString(" [page fault]")
	}
	if r.Defn.IsBranch() && r.BranchSuccess {
		s.WriteString(" [branched]")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" [%s]", r.CPUBug))
	}

	return s.String()
}
