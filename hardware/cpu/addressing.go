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
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
)

// The addressing mode functions resolve the operand of the instruction. On
// return the PC points to the next instruction and addrAbs holds the
// effective address (or addrRel the branch offset).
//
// The return value indicates whether the effective address crossed a page
// boundary. Whether that costs an extra cycle depends on the operation.

// implied addressing has no operand. the accumulator is used as the operand
// for those instructions that need one.
func (mc *CPU) imp() bool {
	mc.fetched = mc.A.Value()
	return false
}

// the operand is the byte following the opcode.
func (mc *CPU) imm() bool {
	mc.addrAbs = mc.PC.Increment()
	mc.result.ByteCount++
	return false
}

func (mc *CPU) zp0() bool {
	mc.addrAbs = uint16(mc.readPC())
	return false
}

// zero page indexing wraps around within page zero.
func (mc *CPU) zpx() bool {
	mc.addrAbs = uint16(mc.readPC() + mc.X.Value())
	return false
}

func (mc *CPU) zpy() bool {
	mc.addrAbs = uint16(mc.readPC() + mc.Y.Value())
	return false
}

// the operand is a signed offset. extended to 16 bits so that it can be
// added to the PC.
func (mc *CPU) rel() bool {
	mc.addrRel = uint16(mc.readPC())
	if mc.addrRel&0x80 == 0x80 {
		mc.addrRel |= 0xff00
	}
	return false
}

func (mc *CPU) abs() bool {
	lo := mc.readPC()
	hi := mc.readPC()
	mc.addrAbs = uint16(hi)<<8 | uint16(lo)
	return false
}

func (mc *CPU) abx() bool {
	mc.abs()
	base := mc.addrAbs
	mc.addrAbs += mc.X.Address()
	return base&0xff00 != mc.addrAbs&0xff00
}

func (mc *CPU) aby() bool {
	mc.abs()
	base := mc.addrAbs
	mc.addrAbs += mc.Y.Address()
	return base&0xff00 != mc.addrAbs&0xff00
}

// indirect addressing is only used by JMP. the high byte of the target is
// read without carrying into the high byte of the pointer. a pointer of
// 0x10ff reads the target from 0x10ff and 0x1000.
func (mc *CPU) ind() bool {
	mc.abs()
	ptr := mc.addrAbs

	lo := mc.read(ptr)
	var hi uint8
	if ptr&0x00ff == 0x00ff {
		hi = mc.read(ptr & 0xff00)
		mc.result.CPUBug = execution.JmpIndirectAddressingBug
	} else {
		hi = mc.read(ptr + 1)
	}

	mc.addrAbs = uint16(hi)<<8 | uint16(lo)
	return false
}

// (zp,X). the pointer and both bytes of the address it points to are in page
// zero.
func (mc *CPU) izx() bool {
	ptr := mc.readPC() + mc.X.Value()
	lo := mc.read(uint16(ptr))
	hi := mc.read(uint16(ptr + 1))
	mc.addrAbs = uint16(hi)<<8 | uint16(lo)
	return false
}

// (zp),Y. the base address is read from page zero and Y is added to it.
func (mc *CPU) izy() bool {
	ptr := mc.readPC()
	lo := mc.read(uint16(ptr))
	hi := mc.read(uint16(ptr + 1))
	base := uint16(hi)<<8 | uint16(lo)
	mc.addrAbs = base + mc.Y.Address()
	return base&0xff00 != mc.addrAbs&0xff00
}
