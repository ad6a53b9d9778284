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

package comparison

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/digest"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/preferences"
)

// Error patterns.
const (
	ErrComparison = "comparison: %w"
	ErrEmulation  = "comparison: emulation %d: %w"
	ErrCount      = "comparison: at least two emulations are required (%d requested)"
)

// Program describes the image to be loaded into each emulation.
type Program struct {
	Image  []uint8
	Origin uint16

	// set the reset vector to ResetVector before resetting the CPU. if false
	// the reset vector must be included in the image
	SetResetVector bool
	ResetVector    uint16
}

// Result of a single emulation.
type Result struct {
	State  cpu.State
	Stop   hardware.StopReason
	Trace  string
	Memory string
}

func (r Result) String() string {
	return fmt.Sprintf("%s [%s] trace=%s memory=%s", r.State, r.Stop, r.Trace, r.Memory)
}

// Report is returned by Run().
type Report struct {
	Results []Result

	// indexes of the results that do not match the first result
	Mismatches []int
}

// Match returns true if every result matches the first result.
func (rep Report) Match() bool {
	return len(rep.Mismatches) == 0
}

func (rep Report) String() string {
	s := strings.Builder{}
	for i, r := range rep.Results {
		s.WriteString(fmt.Sprintf("%2d: %s\n", i, r))
	}
	if rep.Match() {
		s.WriteString(fmt.Sprintf("all %d emulations match", len(rep.Results)))
	} else {
		s.WriteString(fmt.Sprintf("%d of %d emulations differ", len(rep.Mismatches), len(rep.Results)))
	}
	return s.String()
}

// Comparison runs a number of emulations of the same program.
type Comparison struct {
	systems []*hardware.System
	traces  []*digest.Trace
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The prefs argument is shared between all emulations and can be nil.
func NewComparison(prefs *preferences.Preferences, count int, prg Program) (*Comparison, error) {
	if count < 2 {
		return nil, curated.Errorf(ErrCount, count)
	}

	var err error
	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(ErrComparison, err)
		}
	}

	cmp := &Comparison{
		systems: make([]*hardware.System, count),
		traces:  make([]*digest.Trace, count),
	}

	for i := range cmp.systems {
		sys, err := hardware.NewSystem(prefs, nil)
		if err != nil {
			return nil, curated.Errorf(ErrEmulation, i, err)
		}
		if err := sys.Load(prg.Image, prg.Origin); err != nil {
			return nil, curated.Errorf(ErrEmulation, i, err)
		}
		if prg.SetResetVector {
			sys.SetResetVector(prg.ResetVector)
		}
		if err := sys.Reset(); err != nil {
			return nil, curated.Errorf(ErrEmulation, i, err)
		}
		cmp.systems[i] = sys
		cmp.traces[i] = digest.NewTrace()
	}

	return cmp, nil
}

// Len returns the number of emulations.
func (cmp *Comparison) Len() int {
	return len(cmp.systems)
}

// System returns the emulation at index i. The system should not be altered
// while Run() is in progress.
func (cmp *Comparison) System(i int) *hardware.System {
	return cmp.systems[i]
}

// Run every emulation concurrently for the specified number of cycles. An
// emulation stops early if the program traps.
func (cmp *Comparison) Run(ctx context.Context, cycles uint64) (Report, error) {
	results := make([]Result, len(cmp.systems))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range cmp.systems {
		g.Go(func() error {
			r, err := run(ctx, cmp.systems[i], cmp.traces[i], cycles)
			if err != nil {
				return curated.Errorf(ErrEmulation, i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Results: results}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			rep.Mismatches = append(rep.Mismatches, i)
		}
	}

	return rep, nil
}

func run(ctx context.Context, sys *hardware.System, trace *digest.Trace, cycles uint64) (Result, error) {
	target := sys.CPU.ClockCount() + cycles
	stop := hardware.StopCycleLimit

	reason, err := sys.Run(ctx, func() (hardware.RunState, error) {
		s := sys.CPU.State()
		trace.AddState(s)
		if sys.CPU.LastResult().Address == s.PC {
			stop = hardware.StopTrapped
			return hardware.Ending, nil
		}
		if s.ClockCount >= target {
			return hardware.Ending, nil
		}
		return hardware.Running, nil
	})
	if err != nil {
		return Result{}, err
	}
	if reason == hardware.StopCancelled {
		return Result{}, ctx.Err()
	}

	mem, err := digest.Memory(sys.Mem, 0x0000, 0xffff)
	if err != nil {
		return Result{}, err
	}

	return Result{
		State:  sys.CPU.State(),
		Stop:   stop,
		Trace:  trace.Hash(),
		Memory: mem,
	}, nil
}
