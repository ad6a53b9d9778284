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

import (
	"fmt"
	"strings"
)

// Flag identifies a single bit in the status register. The value of the Flag
// is the bit's mask in the packed status byte.
type Flag uint8

// List of valid Flag values.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Sign             Flag = 0x80
)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "C"
	case Zero:
		return "Z"
	case InterruptDisable:
		return "I"
	case DecimalMode:
		return "D"
	case Break:
		return "B"
	case Unused:
		return "U"
	case Overflow:
		return "V"
	case Sign:
		return "N"
	}
	return fmt.Sprintf("flag(%#02x)", uint8(f))
}

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// The Unused flag should always be set. The CPU forces it on every
// instruction fetch but it is stored like any other flag so that the
// register can be loaded with arbitrary values by test harnesses.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. Only the Unused flag is set.
func NewStatusRegister() StatusRegister {
	return StatusRegister{Unused: true}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the current state of the status register. Upper case
// letters indicate that the flag is set. The Unused flag is always shown as
// a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset clears every flag except the Unused flag.
func (sr *StatusRegister) Reset() {
	sr.Load(uint8(Unused))
}

// Get returns the state of a single flag.
func (sr StatusRegister) Get(f Flag) bool {
	return sr.Value()&uint8(f) == uint8(f)
}

// Set changes the state of a single flag.
func (sr *StatusRegister) Set(f Flag, set bool) {
	v := sr.Value()
	if set {
		v |= uint8(f)
	} else {
		v &^= uint8(f)
	}
	sr.Load(v)
}

// Value converts the StatusRegister to an 8bit value.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= uint8(Sign)
	}
	if sr.Overflow {
		v |= uint8(Overflow)
	}
	if sr.Unused {
		v |= uint8(Unused)
	}
	if sr.Break {
		v |= uint8(Break)
	}
	if sr.DecimalMode {
		v |= uint8(DecimalMode)
	}
	if sr.InterruptDisable {
		v |= uint8(InterruptDisable)
	}
	if sr.Zero {
		v |= uint8(Zero)
	}
	if sr.Carry {
		v |= uint8(Carry)
	}

	return v
}

// Load sets the status register flags from an 8bit value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&uint8(Sign) == uint8(Sign)
	sr.Overflow = v&uint8(Overflow) == uint8(Overflow)
	sr.Unused = v&uint8(Unused) == uint8(Unused)
	sr.Break = v&uint8(Break) == uint8(Break)
	sr.DecimalMode = v&uint8(DecimalMode) == uint8(DecimalMode)
	sr.InterruptDisable = v&uint8(InterruptDisable) == uint8(InterruptDisable)
	sr.Zero = v&uint8(Zero) == uint8(Zero)
	sr.Carry = v&uint8(Carry) == uint8(Carry)
}
