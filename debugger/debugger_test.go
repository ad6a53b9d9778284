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

package debugger_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/debugger"
	"github.com/jetsetilly/mos6502/debugger/easyterm"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/test"
)

// mockTerm implements the debugger.Terminal interface. keys are returned by
// ReadKey() in order until there are no more, at which point io.EOF is
// returned.
type mockTerm struct {
	keys   []byte
	output test.Writer
	cbreak bool
	err    error
}

func (trm *mockTerm) CBreakMode() {
	trm.cbreak = true
}

func (trm *mockTerm) CanonicalMode() {
	trm.cbreak = false
}

func (trm *mockTerm) ReadKey() (byte, error) {
	if len(trm.keys) == 0 {
		if trm.err != nil {
			return 0, trm.err
		}
		return 0, io.EOF
	}
	k := trm.keys[0]
	trm.keys = trm.keys[1:]
	return k, nil
}

func (trm *mockTerm) Output() io.Writer {
	return &trm.output
}

func setup(t *testing.T, keys string) (*debugger.Debugger, *mockTerm, *cpu.CPU, *memory.RAM) {
	t.Helper()

	ram := memory.NewRAM()
	ram.SetVector(cpubus.Reset, 0x0200)
	ram.SetVector(cpubus.IRQ, 0x0400)
	ram.SetVector(cpubus.NMI, 0x0500)

	// LDA #$01; LDX #$02; NOP
	test.DemandSuccess(t, ram.Load(0x0200, []uint8{0xa9, 0x01, 0xa2, 0x02, 0xea}))

	mc, err := cpu.NewCPU(ram)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.Reset())

	trm := &mockTerm{keys: []byte(keys)}
	dbg, err := debugger.NewDebugger(trm, mc, ram, logger.NewLogger(10))
	test.DemandSuccess(t, err)

	return dbg, trm, mc, ram
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, nil, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, debugger.ErrNoTerminal))

	_, err = debugger.NewDebugger(&mockTerm{}, nil, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, debugger.ErrNoCPU))
}

func TestStep(t *testing.T) {
	dbg, trm, mc, _ := setup(t, "  q ")
	test.DemandSuccess(t, dbg.Start())

	// the final space is after the quit key and is never read
	test.ExpectEquality(t, len(trm.keys), 1)
	test.ExpectFailure(t, trm.cbreak)

	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.X.Value(), 0x02)
	test.ExpectEquality(t, mc.PC.Address(), 0x0204)

	out := trm.output.String()
	test.ExpectSuccess(t, strings.Contains(out, "next: $0200: LDA #$01 {IMM}"))
	test.ExpectSuccess(t, strings.Contains(out, "next: $0204: NOP {IMP}"))
}

func TestCycle(t *testing.T) {
	// the reset sequence takes eight cycles. the ninth cycle is the first of
	// the LDA instruction
	dbg, trm, mc, _ := setup(t, "ccccccccc")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, mc.ClockCount(), 9)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectFailure(t, mc.Complete())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "cycle 9"))
}

func TestInterrupts(t *testing.T) {
	dbg, trm, mc, _ := setup(t, " i")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// IRQ is ignored because the interrupt flag has been set by the previous
	// IRQ. NMI is not ignored
	trm.keys = []byte("in")
	trm.output.Clear()
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "irq: ignored"))
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)

	// interrupt can not be raised part way through an instruction
	trm.keys = []byte("rcn")
	trm.output.Clear()
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "nmi: instruction in progress"))
}

func TestReset(t *testing.T) {
	dbg, _, mc, _ := setup(t, "  r")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
}

func TestDump(t *testing.T) {
	dbg, trm, _, ram := setup(t, "z")
	test.DemandSuccess(t, ram.Poke(0x0010, 0xab))
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "ab"))
}

func TestLog(t *testing.T) {
	ram := memory.NewRAM()
	mc, err := cpu.NewCPU(ram)
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	log.Log(logger.Allow, "test", "log entry")

	trm := &mockTerm{keys: []byte("l")}
	dbg, err := debugger.NewDebugger(trm, mc, ram, log)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "test: log entry"))

	// debugger without a log
	trm = &mockTerm{keys: []byte("l")}
	dbg, err = debugger.NewDebugger(trm, mc, ram, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "no log"))
}

func TestInputError(t *testing.T) {
	dbg, trm, _, _ := setup(t, "")
	errInput := errors.New("input error")
	trm.err = errInput
	err := dbg.Start()
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, trm.cbreak)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []byte{'q', easyterm.KeyEsc, easyterm.KeyInterrupt} {
		dbg, trm, mc, _ := setup(t, string([]byte{k, ' '}))
		test.DemandSuccess(t, dbg.Start())
		test.ExpectEquality(t, len(trm.keys), 1)
		test.ExpectEquality(t, mc.ClockCount(), 0)
	}
}

func TestRewind(t *testing.T) {
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.Load([]uint8{0xa9, 0x01, 0xa2, 0x02, 0xea}, 0x0200))
	sys.SetResetVector(0x0200)
	test.DemandSuccess(t, sys.Reset())

	trm := &mockTerm{keys: []byte("  b")}
	dbg, err := debugger.NewDebugger(trm, sys.CPU, sys.Mem, nil)
	test.DemandSuccess(t, err)
	dbg.SetRewinder(hardware.NewRewind(sys, 10))

	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0202)
	test.ExpectEquality(t, sys.CPU.A.Value(), 0x01)
	test.ExpectEquality(t, sys.CPU.X.Value(), 0x00)

	trm.keys = []byte("bb")
	trm.output.Clear()
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0200)
	test.ExpectEquality(t, sys.CPU.A.Value(), 0x00)
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "no history"))

	// debugger without a rewinder
	dbg, trm, _, _ = setup(t, "b")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "no history"))
}

func TestRewindCycle(t *testing.T) {
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.Load([]uint8{0xa9, 0x01, 0xea}, 0x0200))
	sys.SetResetVector(0x0200)
	test.DemandSuccess(t, sys.Reset())

	// eight cycles of reset and both cycles of LDA #$01. stepping back
	// returns to the middle of the LDA instruction
	trm := &mockTerm{keys: []byte("ccccccccccb")}
	dbg, err := debugger.NewDebugger(trm, sys.CPU, sys.Mem, nil)
	test.DemandSuccess(t, err)
	dbg.SetRewinder(hardware.NewRewind(sys, 10))

	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, sys.CPU.A.Value(), 0x01)
	test.ExpectFailure(t, sys.CPU.Complete())

	trm.keys = []byte("c")
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, sys.CPU.Complete())
	test.ExpectEquality(t, sys.CPU.PC.Address(), 0x0202)
}
