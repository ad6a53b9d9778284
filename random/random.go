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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is used to key the random numbers returned by Rewindable(). The CPU
// type satisfies this interface.
type Clock interface {
	ClockCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// sequence used by NoRewind(). created on first use so that a change to
	// ZeroSeed before first use is honoured
	seq *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

// Rewindable returns a number in the range [0,n). The number depends only on
// the seed and the current clock count.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + int64(rnd.clock.ClockCount()))).Intn(n)
}

// NoRewind returns the next number in the range [0,n) from a sequence that
// ignores the clock count.
func (rnd *Random) NoRewind(n int) int {
	if rnd.seq == nil {
		rnd.seq = rand.New(rand.NewSource(rnd.seed()))
	}
	return rnd.seq.Intn(n)
}
