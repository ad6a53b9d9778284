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
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
)

// The operation functions implement the instructions of the 6502. The return
// value indicates whether the operation takes an extra cycle if the
// addressing mode crossed a page boundary.

// fetch the operand. for implied addressing the operand has already been
// taken from the accumulator.
func (mc *CPU) fetch() uint8 {
	if mc.defn.AddressingMode != instructions.Implied {
		mc.fetched = mc.read(mc.addrAbs)
		if mc.defn.AddressingMode == instructions.Immediate {
			mc.result.InstructionData = uint16(mc.fetched)
		}
	}
	return mc.fetched
}

// store the result of a shift or rotate operation. implied addressing means
// the accumulator is the target.
func (mc *CPU) store(v uint8) {
	if mc.defn.AddressingMode == instructions.Implied {
		mc.A.Load(v)
	} else {
		mc.write(mc.addrAbs, v)
	}
}

func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0x00
	mc.Status.Sign = v&0x80 == 0x80
}

// binary addition. used by ADC and SBC.
func (mc *CPU) addWithCarry(m uint8) {
	a := uint16(mc.A.Value())
	mc.temp = a + uint16(m)
	if mc.Status.Carry {
		mc.temp++
	}

	mc.Status.Carry = mc.temp > 0xff
	mc.Status.Zero = mc.temp&0x00ff == 0
	mc.Status.Overflow = ^(a^uint16(m))&(a^mc.temp)&0x0080 != 0
	mc.Status.Sign = mc.temp&0x0080 == 0x0080

	mc.A.Load(uint8(mc.temp))
}

func (mc *CPU) compare(reg registers.Register) {
	m := mc.fetch()
	mc.temp = reg.Address() - uint16(m)
	mc.Status.Carry = reg.Value() >= m
	mc.setZN(uint8(mc.temp))
}

// branch if condition is true. a taken branch costs one cycle and another
// if the branch target is on a different page.
func (mc *CPU) branch(condition bool) {
	if !condition {
		return
	}

	mc.cycles++
	mc.result.BranchSuccess = true

	if mc.PC.Add(mc.addrRel) {
		mc.cycles++
		mc.result.PageFault = true
	}
	mc.addrAbs = mc.PC.Address()
}

func (mc *CPU) adc() bool {
	m := mc.fetch()
	if mc.decimal() {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(m, mc.Status.Carry)
		mc.temp = mc.A.Address()
		return true
	}
	mc.addWithCarry(m)
	return true
}

// subtraction is addition with the operand inverted. the carry flag is an
// inverted borrow.
func (mc *CPU) sbc() bool {
	m := mc.fetch()
	if mc.decimal() {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(m, mc.Status.Carry)
		mc.temp = mc.A.Address()
		return true
	}
	mc.addWithCarry(^m)
	return true
}

func (mc *CPU) and() bool {
	mc.A.AND(mc.fetch())
	mc.setZN(mc.A.Value())
	return true
}

func (mc *CPU) eor() bool {
	mc.A.EOR(mc.fetch())
	mc.setZN(mc.A.Value())
	return true
}

func (mc *CPU) ora() bool {
	mc.A.ORA(mc.fetch())
	mc.setZN(mc.A.Value())
	return true
}

func (mc *CPU) asl() bool {
	mc.temp = uint16(mc.fetch()) << 1
	mc.Status.Carry = mc.temp&0xff00 != 0
	mc.setZN(uint8(mc.temp))
	mc.store(uint8(mc.temp))
	return false
}

func (mc *CPU) lsr() bool {
	m := mc.fetch()
	mc.Status.Carry = m&0x01 == 0x01
	mc.temp = uint16(m) >> 1
	mc.setZN(uint8(mc.temp))
	mc.store(uint8(mc.temp))
	return false
}

func (mc *CPU) rol() bool {
	mc.temp = uint16(mc.fetch()) << 1
	if mc.Status.Carry {
		mc.temp |= 0x01
	}
	mc.Status.Carry = mc.temp&0xff00 != 0
	mc.setZN(uint8(mc.temp))
	mc.store(uint8(mc.temp))
	return false
}

func (mc *CPU) ror() bool {
	m := mc.fetch()
	mc.temp = uint16(m) >> 1
	if mc.Status.Carry {
		mc.temp |= 0x80
	}
	mc.Status.Carry = m&0x01 == 0x01
	mc.setZN(uint8(mc.temp))
	mc.store(uint8(mc.temp))
	return false
}

func (mc *CPU) bcc() bool {
	mc.branch(!mc.Status.Carry)
	return false
}

func (mc *CPU) bcs() bool {
	mc.branch(mc.Status.Carry)
	return false
}

func (mc *CPU) beq() bool {
	mc.branch(mc.Status.Zero)
	return false
}

func (mc *CPU) bne() bool {
	mc.branch(!mc.Status.Zero)
	return false
}

func (mc *CPU) bmi() bool {
	mc.branch(mc.Status.Sign)
	return false
}

func (mc *CPU) bpl() bool {
	mc.branch(!mc.Status.Sign)
	return false
}

func (mc *CPU) bvc() bool {
	mc.branch(!mc.Status.Overflow)
	return false
}

func (mc *CPU) bvs() bool {
	mc.branch(mc.Status.Overflow)
	return false
}

func (mc *CPU) bit() bool {
	m := mc.fetch()
	mc.temp = uint16(mc.A.Value() & m)
	mc.Status.Zero = mc.temp&0x00ff == 0
	mc.Status.Sign = m&0x80 == 0x80
	mc.Status.Overflow = m&0x40 == 0x40
	return false
}

// the byte following BRK is skipped. the pushed status has the Break flag
// set but the live Break flag is not changed.
func (mc *CPU) brk() bool {
	mc.PC.Increment()

	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())
	mc.push(mc.Status.Value() | uint8(registers.Break))

	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16(cpubus.IRQ))
	return false
}

func (mc *CPU) clc() bool {
	mc.Status.Carry = false
	return false
}

func (mc *CPU) cld() bool {
	mc.Status.DecimalMode = false
	return false
}

func (mc *CPU) cli() bool {
	mc.Status.InterruptDisable = false
	return false
}

func (mc *CPU) clv() bool {
	mc.Status.Overflow = false
	return false
}

func (mc *CPU) sec() bool {
	mc.Status.Carry = true
	return false
}

func (mc *CPU) sed() bool {
	mc.Status.DecimalMode = true
	return false
}

func (mc *CPU) sei() bool {
	mc.Status.InterruptDisable = true
	return false
}

func (mc *CPU) cmp() bool {
	mc.compare(mc.A)
	return true
}

func (mc *CPU) cpx() bool {
	mc.compare(mc.X)
	return false
}

func (mc *CPU) cpy() bool {
	mc.compare(mc.Y)
	return false
}

func (mc *CPU) dec() bool {
	mc.temp = uint16(mc.fetch()) - 1
	mc.write(mc.addrAbs, uint8(mc.temp))
	mc.setZN(uint8(mc.temp))
	return false
}

func (mc *CPU) inc() bool {
	mc.temp = uint16(mc.fetch()) + 1
	mc.write(mc.addrAbs, uint8(mc.temp))
	mc.setZN(uint8(mc.temp))
	return false
}

func (mc *CPU) dex() bool {
	mc.X.Load(mc.X.Value() - 1)
	mc.setZN(mc.X.Value())
	return false
}

func (mc *CPU) dey() bool {
	mc.Y.Load(mc.Y.Value() - 1)
	mc.setZN(mc.Y.Value())
	return false
}

func (mc *CPU) inx() bool {
	mc.X.Load(mc.X.Value() + 1)
	mc.setZN(mc.X.Value())
	return false
}

func (mc *CPU) iny() bool {
	mc.Y.Load(mc.Y.Value() + 1)
	mc.setZN(mc.Y.Value())
	return false
}

func (mc *CPU) jmp() bool {
	mc.PC.Load(mc.addrAbs)
	return false
}

// the address pushed by JSR is the address of the last byte of the JSR
// instruction. RTS adds one to the pulled address.
func (mc *CPU) jsr() bool {
	ret := mc.PC.Address() - 1
	mc.push(uint8(ret >> 8))
	mc.push(uint8(ret))
	mc.PC.Load(mc.addrAbs)
	return false
}

func (mc *CPU) rts() bool {
	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	mc.PC.Increment()
	return false
}

func (mc *CPU) rti() bool {
	mc.Status.Load(mc.pull())
	mc.Status.Break = false
	mc.Status.Unused = true

	lo := mc.pull()
	hi := mc.pull()
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	return false
}

func (mc *CPU) lda() bool {
	mc.A.Load(mc.fetch())
	mc.setZN(mc.A.Value())
	return true
}

func (mc *CPU) ldx() bool {
	mc.X.Load(mc.fetch())
	mc.setZN(mc.X.Value())
	return true
}

func (mc *CPU) ldy() bool {
	mc.Y.Load(mc.fetch())
	mc.setZN(mc.Y.Value())
	return true
}

// the documented NOP uses implied addressing. the undocumented NOPs read and
// discard their operand and take the page crossing cycle.
func (mc *CPU) nop() bool {
	mc.fetch()
	return true
}

func (mc *CPU) pha() bool {
	mc.push(mc.A.Value())
	return false
}

// the pushed status has the Break and Unused flags set. the live flags are
// not changed.
func (mc *CPU) php() bool {
	mc.push(mc.Status.Value() | uint8(registers.Break) | uint8(registers.Unused))
	return false
}

func (mc *CPU) pla() bool {
	mc.A.Load(mc.pull())
	mc.setZN(mc.A.Value())
	return false
}

func (mc *CPU) plp() bool {
	mc.Status.Load(mc.pull())
	mc.Status.Unused = true
	return false
}

func (mc *CPU) sta() bool {
	mc.write(mc.addrAbs, mc.A.Value())
	return false
}

func (mc *CPU) stx() bool {
	mc.write(mc.addrAbs, mc.X.Value())
	return false
}

func (mc *CPU) sty() bool {
	mc.write(mc.addrAbs, mc.Y.Value())
	return false
}

func (mc *CPU) tax() bool {
	mc.X.Load(mc.A.Value())
	mc.setZN(mc.X.Value())
	return false
}

func (mc *CPU) tay() bool {
	mc.Y.Load(mc.A.Value())
	mc.setZN(mc.Y.Value())
	return false
}

func (mc *CPU) tsx() bool {
	mc.X.Load(mc.SP.Value())
	mc.setZN(mc.X.Value())
	return false
}

func (mc *CPU) txa() bool {
	mc.A.Load(mc.X.Value())
	mc.setZN(mc.A.Value())
	return false
}

// TXS is the only transfer that does not affect the status flags.
func (mc *CPU) txs() bool {
	mc.SP.Load(mc.X.Value())
	return false
}

func (mc *CPU) tya() bool {
	mc.A.Load(mc.Y.Value())
	mc.setZN(mc.A.Value())
	return false
}

// placeholder for opcodes with no defined operation.
func (mc *CPU) xxx() bool {
	return false
}
