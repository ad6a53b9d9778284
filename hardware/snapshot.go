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

package hardware

import (
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory"
)

// State stores the CPU registers and memory. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
type State struct {
	CPU cpu.State
	Mem *memory.RAM
}

// Snapshot the state of the system.
func (sys *System) Snapshot() *State {
	return &State{
		CPU: sys.CPU.State(),
		Mem: sys.Mem.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the system. An instruction that
// was in progress when the snapshot was taken resumes where it left off.
func (sys *System) Plumb(state *State) {
	sys.CPU.SetState(state.CPU)
	sys.Mem.Plumb(state.Mem)
}
