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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware"
)

// ErrCheck is the error pattern for failures of the Check() function.
const ErrCheck = "performance: %w"

// NTSCClock is the clock rate of the 2A03 in an NTSC console, in Hz.
const NTSCClock = 1789773

// CalcRate takes the number of cycles and duration (in seconds) and returns
// the clock rate in MHz and the accuracy of that value as a percentage of
// NTSCClock.
func CalcRate(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	hz := float64(cycles) / duration
	return hz / 1000000, 100 * hz / NTSCClock
}

// Check the performance of the emulator by running the system for the
// specified duration. The system should be reset before calling Check().
//
// The emulation is not throttled, so the effective clock rate is likely to
// be very much faster than a real CPU.
func Check(ctx context.Context, output io.Writer, profile Profile, sys *hardware.System, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ErrCheck, err)
	}

	startCycles := sys.CPU.ClockCount()
	var elapsed time.Duration

	runner := func() error {
		ctx, cancel := context.WithTimeout(ctx, dur)
		defer cancel()

		startTime := time.Now()
		_, err := sys.Run(ctx, nil)
		elapsed = time.Since(startTime)

		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(ErrCheck, err)
	}

	cycles := sys.CPU.ClockCount() - startCycles
	mhz, accuracy := CalcRate(cycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)

	return nil
}
