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

package hardware_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502/digest"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/test"
)

// counts X up to five and then jumps to itself
var countProgram = []uint8{
	0xa2, 0x00,       // LDX #$00
	0xe8,             // INX
	0xe0, 0x05,       // CPX #$05
	0xd0, 0xfb,       // BNE $0202
	0x4c, 0x07, 0x02, // JMP $0207
}

const origin = 0x0200

func newSystem(t *testing.T) *hardware.System {
	t.Helper()
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.Load(countProgram, origin))
	sys.SetResetVector(origin)
	test.DemandSuccess(t, sys.Reset())
	return sys
}

func TestLoad(t *testing.T) {
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, sys.Load([]uint8{0x01, 0x02}, 0xfffe))
	test.ExpectFailure(t, sys.Load([]uint8{0x01, 0x02}, 0xffff))

	v, err := sys.Mem.Peek(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x02)

	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, countProgram, 0o600))
	test.ExpectSuccess(t, sys.LoadFile(fn, 0x1000))
	v, err = sys.Mem.Peek(0x1009)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x02)

	test.ExpectFailure(t, sys.LoadFile(filepath.Join(t.TempDir(), "missing.bin"), 0x1000))
}

func TestReset(t *testing.T) {
	sys := newSystem(t)
	test.ExpectEquality(t, sys.CPU.PC.Address(), origin)
	test.ExpectEquality(t, sys.CPU.SP.Value(), 0xfd)
}

func TestStep(t *testing.T) {
	sys := newSystem(t)

	// the first step includes the reset sequence
	r, err := sys.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Address, origin)
	test.ExpectEquality(t, r.Defn.Mnemonic(), "LDX")
	test.ExpectEquality(t, sys.CPU.ClockCount(), 10)

	r, err = sys.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Defn.Mnemonic(), "INX")
	test.ExpectEquality(t, sys.CPU.X.Value(), 1)
}

func TestRunForCycles(t *testing.T) {
	sys := newSystem(t)

	reason, err := sys.RunForCycles(context.Background(), 10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, hardware.StopCycleLimit)
	test.ExpectEquality(t, sys.CPU.ClockCount(), 10)
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0202)

	reason, err = sys.RunForCycles(context.Background(), 1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, hardware.StopTrapped)
	test.ExpectEquality(t, sys.CPU.X.Value(), 5)
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0207)
	test.ExpectEquality(t, sys.CPU.ClockCount(), 47)

	// no cycle limit
	sys = newSystem(t)
	reason, err = sys.RunForCycles(context.Background(), 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, hardware.StopTrapped)
	test.ExpectEquality(t, sys.CPU.ClockCount(), 47)
}

func TestRun(t *testing.T) {
	sys := newSystem(t)

	var count int
	reason, err := sys.Run(context.Background(), func() (hardware.RunState, error) {
		count++
		if count == 3 {
			return hardware.Ending, nil
		}
		return hardware.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, hardware.StopEnded)
	test.ExpectEquality(t, sys.CPU.LastResult().Defn.Mnemonic(), "CPX")

	// the program is trapped so the run only ends because of the context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reason, err = sys.Run(ctx, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, hardware.StopCancelled)
}

func TestSnapshot(t *testing.T) {
	sys := newSystem(t)
	_, err := sys.Step()
	test.DemandSuccess(t, err)

	s := sys.Snapshot()

	_, err = sys.RunForCycles(context.Background(), 1000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.Mem.Poke(0x0000, 0xff))
	test.ExpectEquality(t, sys.CPU.X.Value(), 5)

	sys.Plumb(s)
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0202)
	test.ExpectEquality(t, sys.CPU.X.Value(), 0)
	test.ExpectEquality(t, sys.CPU.State().Status, s.CPU.Status)

	v, err := sys.Mem.Peek(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)
}

func TestRewind(t *testing.T) {
	sys := newSystem(t)
	rw := hardware.NewRewind(sys, 2)

	test.ExpectFailure(t, rw.Back())

	for range 3 {
		rw.Record()
		_, err := sys.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, rw.Len(), 2)
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0205)

	test.ExpectSuccess(t, rw.Back())
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0203)
	test.ExpectSuccess(t, rw.Back())
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0202)

	// the earliest snapshot was forgotten
	test.ExpectFailure(t, rw.Back())
	test.ExpectEquality(t, rw.Len(), 0)

	rw.Record()
	rw.Reset()
	test.ExpectEquality(t, rw.Len(), 0)
}

func TestRandomiseMemory(t *testing.T) {
	a, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	b, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)

	empty, err := digest.Memory(a.Mem, 0x0000, 0xffff)
	test.DemandSuccess(t, err)

	rndA := random.NewRandom(a.CPU)
	rndA.ZeroSeed = true
	a.RandomiseMemory(rndA)

	rndB := random.NewRandom(b.CPU)
	rndB.ZeroSeed = true
	b.RandomiseMemory(rndB)

	ha, err := digest.Memory(a.Mem, 0x0000, 0xffff)
	test.DemandSuccess(t, err)
	hb, err := digest.Memory(b.Mem, 0x0000, 0xffff)
	test.DemandSuccess(t, err)

	test.ExpectInequality(t, ha, empty)
	test.ExpectEquality(t, ha, hb)
}
