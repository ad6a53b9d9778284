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

// Package disassembly produces a listing of 6502 instructions from memory.
//
// Memory is read through the cpubus.Peeker interface so that disassembling
// never changes the state of the system. Every byte in the range is treated
// as the start of an instruction if it follows the end of the previous
// instruction. Entries are keyed by address because instructions vary in
// length.
//
// The listing for an address range can be created with Disassemble().
//
//	dsm, err := disassembly.Disassemble(mem, 0x0200, 0x02ff)
//	if err != nil {
//		return err
//	}
//	dsm.Write(os.Stdout, disassembly.WriteAttr{})
//
// Each line of the listing has the form
//
//	$0200: LDA #$01 {IMM}
//
// Relative operands show the branch offset and the target address.
//
//	$0204: BNE $fa [$0200] {REL}
package disassembly
