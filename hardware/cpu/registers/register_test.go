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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.String(), "test=00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	_, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectEquality(t, r8.Value(), 1)

	// adding zero without carry never produces a carry
	r8.Load(255)
	carry, _ = r8.Add(0, false)
	test.ExpectFailure(t, carry)

	// subtraction. the carry flag is an inverted borrow
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)

	r8.Load(1)
	carry, _ = r8.Subtract(1, true)
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectSuccess(t, carry)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// bit V
	r8.Load(0x40)
	test.ExpectSuccess(t, r8.IsBitV())
	test.ExpectFailure(t, r8.IsNegative())
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)

	test.ExpectEquality(t, sp.Push(), 0x01fd)
	test.ExpectEquality(t, sp.Value(), 0xfc)
	test.ExpectEquality(t, sp.Pull(), 0x01fd)
	test.ExpectEquality(t, sp.Value(), 0xfd)

	// the stack pointer wraps within the stack page
	sp.Load(0x00)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Pull(), 0x0100)
	test.ExpectEquality(t, sp.String(), "SP=00")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	test.ExpectEquality(t, pc.Increment(), 0)
	test.ExpectEquality(t, pc.Address(), 1)

	pc.Load(0x10f0)
	test.ExpectFailure(t, pc.Add(0x0f))
	test.ExpectEquality(t, pc.Address(), 0x10ff)
	test.ExpectSuccess(t, pc.Add(0x01))
	test.ExpectEquality(t, pc.Address(), 0x1100)

	// negative offsets are added as two's complement values
	test.ExpectSuccess(t, pc.Add(0xffff))
	test.ExpectEquality(t, pc.Address(), 0x10ff)

	// wrap at end of address space
	pc.Load(0xffff)
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), 0x0000)

	pc.Load(0xabcd)
	test.ExpectEquality(t, pc.Hi(), 0xab)
	test.ExpectEquality(t, pc.Lo(), 0xcd)
	test.ExpectEquality(t, pc.String(), "PC=abcd")
}
