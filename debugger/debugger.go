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

package debugger

import (
	"errors"
	"io"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/debugger/easyterm"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/logger"
)

// Error patterns.
const (
	ErrNoTerminal = "debugger: no terminal"
	ErrNoCPU      = "debugger: no cpu"
)

// Terminal defines the operations required by the debugger for user input
// and output. The easyterm.Terminal type satisfies this interface.
type Terminal interface {
	CBreakMode()
	CanonicalMode()
	ReadKey() (byte, error)
	Output() io.Writer
}

// Dumper is implemented by memory that can produce a hex dump of an address
// range. Optional.
type Dumper interface {
	Dump(from uint16, to uint16) string
}

// Rewinder is implemented by types that can record the state of the
// emulation and return to it. Optional.
type Rewinder interface {
	Record()
	Back() bool
}

// Debugger is the single-step monitor.
type Debugger struct {
	term Terminal
	mc   *cpu.CPU
	mem  cpubus.Peeker
	log  *logger.Logger
	rw   Rewinder

	// the state of the CPU before the most recent step. used to highlight
	// changed registers
	prev cpu.State

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The log argument can be nil.
func NewDebugger(term Terminal, mc *cpu.CPU, mem cpubus.Peeker, log *logger.Logger) (*Debugger, error) {
	if term == nil {
		return nil, curated.Errorf(ErrNoTerminal)
	}
	if mc == nil {
		return nil, curated.Errorf(ErrNoCPU)
	}

	dbg := &Debugger{
		term: term,
		mc:   mc,
		mem:  mem,
		log:  log,
		prev: mc.State(),
	}

	return dbg, nil
}

// SetRewinder attaches a Rewinder to the debugger. The state is recorded
// before every change made by the debugger and can be returned to with the
// back key.
func (dbg *Debugger) SetRewinder(rw Rewinder) {
	dbg.rw = rw
}

func (dbg *Debugger) record() {
	dbg.prev = dbg.mc.State()
	if dbg.rw != nil {
		dbg.rw.Record()
	}
}

// Start the monitor. Returns when the user quits or when the terminal input
// has been exhausted.
func (dbg *Debugger) Start() error {
	dbg.term.CBreakMode()
	defer dbg.term.CanonicalMode()

	dbg.printHelp()
	dbg.printState()

	dbg.running = true
	for dbg.running {
		k, err := dbg.term.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.handleKey(k); err != nil {
			return err
		}
	}

	return nil
}

func (dbg *Debugger) handleKey(k byte) error {
	switch k {
	case easyterm.KeySpace, easyterm.KeyCarriageReturn, 's':
		dbg.record()
		if err := dbg.mc.ExecuteInstruction(); err != nil {
			dbg.printError(err)
			return nil
		}
		dbg.printResult()
		dbg.printState()

	case 'c':
		dbg.record()
		if err := dbg.mc.Clock(); err != nil {
			dbg.printError(err)
			return nil
		}
		dbg.printCycle()
		if dbg.mc.Complete() {
			dbg.printState()
		}

	case 'r':
		dbg.record()
		if err := dbg.mc.Reset(); err != nil {
			dbg.printError(err)
			return nil
		}
		dbg.printLine(styleFeedback, "reset")
		dbg.printState()

	case 'b':
		if dbg.rw == nil || !dbg.rw.Back() {
			dbg.printLine(styleFeedback, "no history")
			return nil
		}
		dbg.prev = dbg.mc.State()
		dbg.printLine(styleFeedback, "back")
		dbg.printState()

	case 'i':
		dbg.interrupt("irq", dbg.mc.IRQ)

	case 'n':
		dbg.interrupt("nmi", dbg.mc.NMI)

	case 'm':
		dbg.dump(dbg.mc.PC.Address()&0xff00, dbg.mc.PC.Address()|0x00ff)

	case 'z':
		dbg.dump(0x0000, 0x00ff)

	case 'k':
		dbg.dump(0x0100, 0x01ff)

	case 'l':
		if dbg.log == nil {
			dbg.printLine(styleFeedback, "no log")
			return nil
		}
		dbg.log.Tail(dbg.term.Output(), 10)

	case 'h', '?':
		dbg.printHelp()

	case easyterm.KeySuspend:
		dbg.term.CanonicalMode()
		if err := easyterm.SuspendProcess(); err != nil {
			dbg.printError(err)
		}
		dbg.term.CBreakMode()

	case 'q', easyterm.KeyEsc, easyterm.KeyInterrupt:
		dbg.running = false
	}

	return nil
}

// interrupts can only be raised between instructions.
func (dbg *Debugger) interrupt(name string, raise func() error) {
	if !dbg.mc.Complete() {
		dbg.printLine(styleError, "%s: instruction in progress", name)
		return
	}

	dbg.record()
	pc := dbg.mc.PC.Address()
	if err := raise(); err != nil {
		dbg.printError(err)
		return
	}

	if dbg.mc.PC.Address() == pc {
		dbg.printLine(styleFeedback, "%s: ignored", name)
		return
	}

	dbg.printLine(styleFeedback, "%s", name)
	dbg.printState()
}

func (dbg *Debugger) dump(from uint16, to uint16) {
	d, ok := dbg.mem.(Dumper)
	if !ok {
		dbg.printLine(styleError, "memory cannot be dumped")
		return
	}
	dbg.printLine(styleNormal, "%s", d.Dump(from, to))
}
