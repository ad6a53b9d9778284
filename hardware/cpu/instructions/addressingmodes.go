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

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes. Accumulator addressing (eg. ASL A) is
// represented by Implied.
const (
	Implied AddressingMode = iota
	Immediate
	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
	Relative         // relative addressing is used for branch instructions
	Absolute         // abs
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y
	Indirect         // ind (JMP only)
	IndexedIndirect  // (ind,X)
	IndirectIndexed  // (ind),Y

	NumAddressingModes
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "IMP"
	case Immediate:
		return "IMM"
	case ZeroPage:
		return "ZP0"
	case ZeroPageIndexedX:
		return "ZPX"
	case ZeroPageIndexedY:
		return "ZPY"
	case Relative:
		return "REL"
	case Absolute:
		return "ABS"
	case AbsoluteIndexedX:
		return "ABX"
	case AbsoluteIndexedY:
		return "ABY"
	case Indirect:
		return "IND"
	case IndexedIndirect:
		return "IZX"
	case IndirectIndexed:
		return "IZY"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes an instruction using the addressing mode
// occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 3
	}
	return 2
}
