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

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.Carry = true
	sr.Zero = true
	test.ExpectEquality(t, sr.Value(), 0x23)
	test.ExpectEquality(t, sr.String(), "sv-bdiZC")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x20)

	// unused bit is stored like any other flag
	sr.Load(0x00)
	test.ExpectFailure(t, sr.Unused)
	test.ExpectEquality(t, sr.Value(), 0x00)
}

func TestStatusFlags(t *testing.T) {
	flags := []registers.Flag{
		registers.Carry,
		registers.Zero,
		registers.InterruptDisable,
		registers.DecimalMode,
		registers.Break,
		registers.Unused,
		registers.Overflow,
		registers.Sign,
	}

	// each flag can be set and cleared independently of every other flag
	for _, f := range flags {
		var sr registers.StatusRegister
		sr.Set(f, true)
		test.ExpectEquality(t, sr.Value(), uint8(f), f)
		for _, g := range flags {
			test.ExpectEquality(t, sr.Get(g), f == g, f, g)
		}
		sr.Set(f, false)
		test.ExpectEquality(t, sr.Value(), 0, f)
	}

	var sr registers.StatusRegister
	sr.Set(registers.Sign, true)
	test.ExpectSuccess(t, sr.Sign)
	sr.Set(registers.Overflow, true)
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectEquality(t, sr.Value(), 0xc0)

	test.ExpectEquality(t, registers.Sign.String(), "N")
	test.ExpectEquality(t, registers.Unused.String(), "U")
}
