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

// Rewind keeps a history of snapshots so that execution can be stepped
// backwards.
type Rewind struct {
	sys   *System
	steps []*State
	max   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The max argument is the number of snapshots to keep before the earliest
// snapshots are forgotten.
func NewRewind(sys *System, max int) *Rewind {
	return &Rewind{
		sys:   sys,
		steps: make([]*State, 0, max),
		max:   max,
	}
}

// Record a snapshot of the system.
func (r *Rewind) Record() {
	if r.max <= 0 {
		return
	}
	if len(r.steps) >= r.max {
		r.steps = r.steps[1:]
	}
	r.steps = append(r.steps, r.sys.Snapshot())
}

// Back plumbs in the most recently recorded snapshot and forgets it. Returns
// false if there are no snapshots.
func (r *Rewind) Back() bool {
	if len(r.steps) == 0 {
		return false
	}
	s := r.steps[len(r.steps)-1]
	r.steps = r.steps[:len(r.steps)-1]
	r.sys.Plumb(s)
	return true
}

// Len returns the number of snapshots available.
func (r *Rewind) Len() int {
	return len(r.steps)
}

// Reset forgets every snapshot.
func (r *Rewind) Reset() {
	r.steps = r.steps[:0]
}
