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
	"fmt"

	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
)

// State is a snapshot of the CPU registers.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8

	// cycles remaining before the current instruction, or the reset or
	// interrupt sequence, is complete
	Cycles int

	// number of cycles since the CPU was created
	ClockCount uint64
}

// State returns a snapshot of the current register values.
func (mc *CPU) State() State {
	return State{
		PC:         mc.PC.Address(),
		A:          mc.A.Value(),
		X:          mc.X.Value(),
		Y:          mc.Y.Value(),
		SP:         mc.SP.Value(),
		Status:     mc.Status.Value(),
		Cycles:     mc.cycles,
		ClockCount: mc.clockCount,
	}
}

// SetState loads the registers and the remaining cycle count from a
// snapshot. The clock count is not changed.
func (mc *CPU) SetState(s State) {
	mc.PC.Load(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status.Load(s.Status)
	mc.cycles = s.Cycles
	mc.clearTransient()
}

func (s State) String() string {
	var sr registers.StatusRegister
	sr.Load(s.Status)
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", s.PC, s.A, s.X, s.Y, s.SP, sr)
}

// Diff returns the names of the registers that differ between the two
// states. The clock count is not compared.
func (s State) Diff(other State) []string {
	var d []string
	if s.PC != other.PC {
		d = append(d, "PC")
	}
	if s.A != other.A {
		d = append(d, "A")
	}
	if s.X != other.X {
		d = append(d, "X")
	}
	if s.Y != other.Y {
		d = append(d, "Y")
	}
	if s.SP != other.SP {
		d = append(d, "SP")
	}
	if s.Status != other.Status {
		d = append(d, "SR")
	}
	return d
}
