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

package registers

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds a packed BCD value to the register. Returns the new state
// of the carry, zero, overflow and sign flags.
//
// The flags are those of the NMOS 6502: zero is computed from the binary
// addition and the sign and overflow flags are computed after the low nibble
// has been adjusted but before the high nibble is adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var binary uint8 = r.value + val
	if carry {
		binary++
	}
	zero = binary == 0

	runits, ucarry := addDecimal(r.value&0x0f, val&0x0f, carry)
	if ucarry {
		runits -= 10
	}

	rtens, tcarry := addDecimal(r.value>>4, val>>4, ucarry)

	// tens has not been shifted into the upper nibble yet
	sign = rtens&0x08 == 0x08
	overflow = ((r.value^val)&0x80) == 0 && ((r.value^(rtens<<4))&0x80) != 0

	if tcarry {
		rtens -= 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return tcarry, zero, overflow, sign
}

func subtractDecimal(a, b uint8, borrow bool) (r uint8, rborrow bool) {
	r = a - b
	if borrow {
		r--
	}
	return r, b > a || borrow && b == a
}

// SubtractDecimal subtracts a packed BCD value from the register. The carry
// flag is an inverted borrow. Returns the new state of the carry, zero,
// overflow and sign flags.
//
// On the NMOS 6502 all flags are the result of the binary subtraction so
// only the value of the register differs from the binary case.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	binary := NewRegister(r.value, "")
	rcarry, overflow = binary.Subtract(val, carry)
	zero = binary.IsZero()
	sign = binary.IsNegative()

	runits, ucarry := subtractDecimal(r.value&0x0f, val&0x0f, !carry)
	if ucarry {
		runits += 10
	}

	rtens, tcarry := subtractDecimal(r.value>>4, val>>4, ucarry)
	if tcarry {
		rtens += 10
	}

	r.value = ((rtens & 0x0f) << 4) | (runits & 0x0f)

	return rcarry, zero, overflow, sign
}
