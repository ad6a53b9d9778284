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

package cpu

import (
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

// entry in the lookup table. the addressing and operate functions are
// selected by the AddressingMode and Operator of the definition.
type entry struct {
	defn       instructions.Definition
	addressing func(*CPU) bool
	operate    func(*CPU) bool
}

var addressingModes = [instructions.NumAddressingModes]func(*CPU) bool{
	instructions.Implied:          (*CPU).imp,
	instructions.Immediate:        (*CPU).imm,
	instructions.ZeroPage:         (*CPU).zp0,
	instructions.ZeroPageIndexedX: (*CPU).zpx,
	instructions.ZeroPageIndexedY: (*CPU).zpy,
	instructions.Relative:         (*CPU).rel,
	instructions.Absolute:         (*CPU).abs,
	instructions.AbsoluteIndexedX: (*CPU).abx,
	instructions.AbsoluteIndexedY: (*CPU).aby,
	instructions.Indirect:         (*CPU).ind,
	instructions.IndexedIndirect:  (*CPU).izx,
	instructions.IndirectIndexed:  (*CPU).izy,
}

var operators = [instructions.NumOperators]func(*CPU) bool{
	instructions.ADC: (*CPU).adc,
	instructions.AND: (*CPU).and,
	instructions.ASL: (*CPU).asl,
	instructions.BCC: (*CPU).bcc,
	instructions.BCS: (*CPU).bcs,
	instructions.BEQ: (*CPU).beq,
	instructions.BIT: (*CPU).bit,
	instructions.BMI: (*CPU).bmi,
	instructions.BNE: (*CPU).bne,
	instructions.BPL: (*CPU).bpl,
	instructions.BRK: (*CPU).brk,
	instructions.BVC: (*CPU).bvc,
	instructions.BVS: (*CPU).bvs,
	instructions.CLC: (*CPU).clc,
	instructions.CLD: (*CPU).cld,
	instructions.CLI: (*CPU).cli,
	instructions.CLV: (*CPU).clv,
	instructions.CMP: (*CPU).cmp,
	instructions.CPX: (*CPU).cpx,
	instructions.CPY: (*CPU).cpy,
	instructions.DEC: (*CPU).dec,
	instructions.DEX: (*CPU).dex,
	instructions.DEY: (*CPU).dey,
	instructions.EOR: (*CPU).eor,
	instructions.INC: (*CPU).inc,
	instructions.INX: (*CPU).inx,
	instructions.INY: (*CPU).iny,
	instructions.JMP: (*CPU).jmp,
	instructions.JSR: (*CPU).jsr,
	instructions.LDA: (*CPU).lda,
	instructions.LDX: (*CPU).ldx,
	instructions.LDY: (*CPU).ldy,
	instructions.LSR: (*CPU).lsr,
	instructions.NOP: (*CPU).nop,
	instructions.ORA: (*CPU).ora,
	instructions.PHA: (*CPU).pha,
	instructions.PHP: (*CPU).php,
	instructions.PLA: (*CPU).pla,
	instructions.PLP: (*CPU).plp,
	instructions.ROL: (*CPU).rol,
	instructions.ROR: (*CPU).ror,
	instructions.RTI: (*CPU).rti,
	instructions.RTS: (*CPU).rts,
	instructions.SBC: (*CPU).sbc,
	instructions.SEC: (*CPU).sec,
	instructions.SED: (*CPU).sed,
	instructions.SEI: (*CPU).sei,
	instructions.STA: (*CPU).sta,
	instructions.STX: (*CPU).stx,
	instructions.STY: (*CPU).sty,
	instructions.TAX: (*CPU).tax,
	instructions.TAY: (*CPU).tay,
	instructions.TSX: (*CPU).tsx,
	instructions.TXA: (*CPU).txa,
	instructions.TXS: (*CPU).txs,
	instructions.TYA: (*CPU).tya,
	instructions.XXX: (*CPU).xxx,
}

// lookup is indexed by opcode.
var lookup [256]entry

func init() {
	for i, defn := range instructions.Definitions() {
		lookup[i] = entry{
			defn:       defn,
			addressing: addressingModes[defn.AddressingMode],
			operate:    operators[defn.Operator],
		}
		if lookup[i].addressing == nil || lookup[i].operate == nil {
			panic("cpu: incomplete lookup table for opcode " + defn.String())
		}
	}
}
