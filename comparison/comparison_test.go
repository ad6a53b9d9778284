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

package comparison_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/comparison"
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/test"
)

// stores an incrementing value through zero page and then traps
var trapProgram = comparison.Program{
	Image: []uint8{
		0xa2, 0x00,       // LDX #$00
		0x8a,             // TXA
		0x95, 0x10,       // STA $10,X
		0xe8,             // INX
		0xe0, 0x20,       // CPX #$20
		0xd0, 0xf8,       // BNE $0202
		0x4c, 0x0a, 0x02, // JMP $020a
	},
	Origin:         0x0200,
	SetResetVector: true,
	ResetVector:    0x0200,
}

// never traps
var loopProgram = comparison.Program{
	Image: []uint8{
		0xe8,             // INX
		0x4c, 0x00, 0x02, // JMP $0200
	},
	Origin:         0x0200,
	SetResetVector: true,
	ResetVector:    0x0200,
}

func TestCount(t *testing.T) {
	_, err := comparison.NewComparison(nil, 1, trapProgram)
	test.ExpectSuccess(t, curated.Is(err, comparison.ErrCount))

	cmp, err := comparison.NewComparison(nil, 2, trapProgram)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp.Len(), 2)
}

func TestMatch(t *testing.T) {
	cmp, err := comparison.NewComparison(nil, 4, trapProgram)
	test.DemandSuccess(t, err)

	rep, err := cmp.Run(context.Background(), 100000)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rep.Match())
	test.DemandEquality(t, len(rep.Results), 4)

	r := rep.Results[0]
	test.ExpectEquality(t, r.Stop, hardware.StopTrapped)
	test.ExpectEquality(t, r.State.PC, 0x020a)
	test.ExpectEquality(t, r.State.X, 0x20)

	v, err := cmp.System(3).Mem.Peek(0x2f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1f)

	test.ExpectSuccess(t, strings.HasSuffix(rep.String(), "all 4 emulations match"))
}

func TestCycleLimit(t *testing.T) {
	cmp, err := comparison.NewComparison(nil, 3, loopProgram)
	test.DemandSuccess(t, err)

	rep, err := cmp.Run(context.Background(), 1000)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rep.Match())
	test.ExpectEquality(t, rep.Results[0].Stop, hardware.StopCycleLimit)
	test.ExpectSuccess(t, rep.Results[0].State.ClockCount >= 1000)
}

func TestMismatch(t *testing.T) {
	cmp, err := comparison.NewComparison(nil, 3, trapProgram)
	test.DemandSuccess(t, err)

	// alter memory in one emulation only. the trace digest will match but
	// the memory digest will not
	test.DemandSuccess(t, cmp.System(2).Mem.Poke(0x8000, 0xff))

	rep, err := cmp.Run(context.Background(), 100000)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, rep.Match())
	test.DemandEquality(t, len(rep.Mismatches), 1)
	test.ExpectEquality(t, rep.Mismatches[0], 2)
	test.ExpectEquality(t, rep.Results[2].Trace, rep.Results[0].Trace)
	test.ExpectInequality(t, rep.Results[2].Memory, rep.Results[0].Memory)
	test.ExpectSuccess(t, strings.HasSuffix(rep.String(), "1 of 3 emulations differ"))
}

func TestCancel(t *testing.T) {
	cmp, err := comparison.NewComparison(nil, 2, loopProgram)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cmp.Run(ctx, 1<<40)
	test.ExpectFailure(t, err)
}
