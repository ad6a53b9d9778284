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

package random_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/test"
)

type clock struct {
	count uint64
}

func (c *clock) ClockCount() uint64 {
	return c.count
}

func TestRewindable(t *testing.T) {
	c := &clock{count: 100}
	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}

	// the same clock count always produces the same number
	v := a.Rewindable(1 << 30)
	test.ExpectEquality(t, a.Rewindable(1<<30), v)
}

func TestNoRewind(t *testing.T) {
	c := &clock{}
	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		va := a.NoRewind(256)
		test.ExpectEquality(t, va, b.NoRewind(256))
		test.ExpectSuccess(t, va >= 0 && va < 256)
	}
}
