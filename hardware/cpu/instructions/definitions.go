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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory

	// whether the opcode is not part of the documented instruction set
	Undocumented bool
}

// Mnemonic returns the three letter name of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// PageSensitive returns true if the instruction can take an extra cycle when
// the effective address crosses a page boundary.
func (defn Definition) PageSensitive() bool {
	switch defn.AddressingMode {
	case AbsoluteIndexedX, AbsoluteIndexedY, IndirectIndexed:
	default:
		return false
	}

	switch defn.Operator {
	case ADC, AND, CMP, EOR, LDA, LDX, LDY, ORA, SBC, NOP:
		return true
	}
	return false
}

// Lookup returns the definition for the opcode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

// Definitions returns a copy of the complete table of definitions, indexed by
// opcode.
func Definitions() [256]Definition {
	return definitions
}
