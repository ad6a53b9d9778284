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
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// the bytes of the instruction, including the opcode. an instruction at
	// the end of the address space wraps around to read its operand from
	// the start
	Bytes []uint8

	// string representations of the instruction
	Operator string
	Operand  string
}

func newEntry(address uint16, defn instructions.Definition, bytes []uint8) *Entry {
	e := &Entry{
		Address:  address,
		Defn:     defn,
		Bytes:    bytes,
		Operator: defn.Mnemonic(),
	}
	e.Operand = e.formatOperand()
	return e
}

// operand value of the instruction, assembled from the bytes following the
// opcode.
func (e *Entry) operand() uint16 {
	var v uint16
	for i, b := range e.Bytes[1:] {
		v |= uint16(b) << (8 * i)
	}
	return v
}

func (e *Entry) formatOperand() string {
	v := e.operand()

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", v)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", v)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", v)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", v)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", v)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", v)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", v)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", v)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", v)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", v)
	case instructions.Relative:
		return fmt.Sprintf("$%02x [$%04x]", v, e.BranchTarget())
	}

	return ""
}

// BranchTarget returns the address a branch instruction jumps to if the
// branch is taken. The value is meaningless for other instructions.
func (e *Entry) BranchTarget() uint16 {
	offset := e.operand()
	if offset&0x80 == 0x80 {
		offset |= 0xff00
	}
	return e.Address + 2 + offset
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e *Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("$%04x: %s {%s}", e.Address, e.Operator, e.Defn.AddressingMode)
	}
	return fmt.Sprintf("$%04x: %s %s {%s}", e.Address, e.Operator, e.Operand, e.Defn.AddressingMode)
}
