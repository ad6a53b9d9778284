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
	"context"
)

// RunState is returned by the continueCheck function given to Run().
type RunState int

// List of valid RunState values.
const (
	Running RunState = iota
	Ending
)

// StopReason describes why Run() or RunForCycles() returned.
type StopReason string

// List of valid StopReason values.
const (
	StopEnded      StopReason = "ended"
	StopCycleLimit StopReason = "cycle limit"
	StopTrapped    StopReason = "trapped"
	StopCancelled  StopReason = "cancelled"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full check every time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return hardware.Ending, nil
//		}
//	}
//	return hardware.Running, nil
const PerformanceBrake = 100

// Run the system as quickly as possible until continueCheck returns Ending
// or the context is cancelled. A nil continueCheck runs until the context is
// cancelled.
func (sys *System) Run(ctx context.Context, continueCheck func() (RunState, error)) (StopReason, error) {
	if continueCheck == nil {
		continueCheck = func() (RunState, error) { return Running, nil }
	}

	var brake int

	for {
		if err := sys.CPU.ExecuteInstruction(); err != nil {
			return StopEnded, err
		}

		state, err := continueCheck()
		if err != nil {
			return StopEnded, err
		}
		if state == Ending {
			return StopEnded, nil
		}

		// checking the context is relatively expensive
		brake++
		if brake >= PerformanceBrake {
			brake = 0
			if ctx.Err() != nil {
				return StopCancelled, nil
			}
		}
	}
}

// RunForCycles runs the system until at least the specified number of cycles
// have passed. The run ends early if the program is trapped, ie. if an
// instruction leaves the PC unchanged (JMP to itself or a branch to itself).
// A cycles value of zero means there is no cycle limit.
func (sys *System) RunForCycles(ctx context.Context, cycles uint64) (StopReason, error) {
	target := sys.CPU.ClockCount() + cycles
	reason := StopCycleLimit

	stop, err := sys.Run(ctx, func() (RunState, error) {
		r := sys.CPU.LastResult()
		if r.Address == sys.CPU.PC.Address() {
			reason = StopTrapped
			return Ending, nil
		}
		if cycles > 0 && sys.CPU.ClockCount() >= target {
			return Ending, nil
		}
		return Running, nil
	})

	if stop == StopEnded {
		stop = reason
	}

	return stop, err
}
