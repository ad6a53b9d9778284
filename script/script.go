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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/disassembly"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/logger"
)

// Error patterns.
const (
	ErrScript = "script: %w"
	ErrNoSys  = "script: no system"
)

// Script is a Lua interpreter bound to a System.
type Script struct {
	L   *lua.LState
	sys *hardware.System
	out io.Writer
	log *logger.Logger
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() function is written to out. The log argument can
// be nil.
func NewScript(sys *hardware.System, out io.Writer, log *logger.Logger) (*Script, error) {
	if sys == nil {
		return nil, curated.Errorf(ErrNoSys)
	}
	if out == nil {
		out = io.Discard
	}

	scr := &Script{
		L:   lua.NewState(),
		sys: sys,
		out: out,
		log: log,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":     scr.peek,
		"poke":     scr.poke,
		"step":     scr.step,
		"clock":    scr.clock,
		"run":      scr.run,
		"reset":    scr.reset,
		"irq":      scr.irq,
		"nmi":      scr.nmi,
		"reg":      scr.reg,
		"setreg":   scr.setreg,
		"cycles":   scr.cycles,
		"complete": scr.complete,
		"disasm":   scr.disasm,
		"state":    scr.state,
		"load":     scr.load,
		"print":    scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr, nil
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString executes the Lua source. The context can be used to interrupt a
// long running script.
func (scr *Script) RunString(ctx context.Context, source string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ErrScript, err)
	}
	return nil
}

// RunFile executes the named Lua file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.log.Logf(logger.Allow, "script", "running %s", filename)
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ErrScript, err)
	}
	return nil
}

func (scr *Script) checkAddress(n int) uint16 {
	a := scr.L.CheckInt(n)
	if a < 0 || a > 0xffff {
		scr.L.ArgError(n, fmt.Sprintf("address out of range (%d)", a))
	}
	return uint16(a)
}

func (scr *Script) checkByte(n int) uint8 {
	v := scr.L.CheckInt(n)
	if v < 0 || v > 0xff {
		scr.L.ArgError(n, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

func (scr *Script) checkCount(n int) int {
	c := scr.L.OptInt(n, 1)
	if c < 0 {
		scr.L.ArgError(n, fmt.Sprintf("count must not be negative (%d)", c))
	}
	return c
}

func (scr *Script) raise(err error) {
	if err != nil {
		scr.L.RaiseError("%v", err)
	}
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.sys.Mem.Peek(scr.checkAddress(1))
	scr.raise(err)
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	a := scr.checkAddress(1)
	scr.raise(scr.sys.Mem.Poke(a, scr.checkByte(2)))
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := scr.checkCount(1)
	for range n {
		_, err := scr.sys.Step()
		scr.raise(err)
	}
	L.Push(lua.LNumber(scr.sys.CPU.LastResult().Cycles))
	return 1
}

func (scr *Script) clock(L *lua.LState) int {
	n := scr.checkCount(1)
	for range n {
		scr.raise(scr.sys.CPU.Clock())
	}
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	c := L.CheckInt(1)
	if c < 0 {
		L.ArgError(1, fmt.Sprintf("cycles must not be negative (%d)", c))
	}
	reason, err := scr.sys.RunForCycles(L.Context(), uint64(c))
	scr.raise(err)
	L.Push(lua.LString(reason))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.raise(scr.sys.Reset())
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	scr.raise(scr.sys.CPU.IRQ())
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.raise(scr.sys.CPU.NMI())
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.sys.CPU
	switch strings.ToUpper(L.CheckString(1)) {
	case "PC":
		L.Push(lua.LNumber(mc.PC.Address()))
	case "A":
		L.Push(lua.LNumber(mc.A.Value()))
	case "X":
		L.Push(lua.LNumber(mc.X.Value()))
	case "Y":
		L.Push(lua.LNumber(mc.Y.Value()))
	case "SP":
		L.Push(lua.LNumber(mc.SP.Value()))
	case "SR":
		L.Push(lua.LNumber(mc.Status.Value()))
	default:
		L.ArgError(1, "unknown register")
	}
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	mc := scr.sys.CPU
	switch strings.ToUpper(L.CheckString(1)) {
	case "PC":
		mc.PC.Load(scr.checkAddress(2))
	case "A":
		mc.A.Load(scr.checkByte(2))
	case "X":
		mc.X.Load(scr.checkByte(2))
	case "Y":
		mc.Y.Load(scr.checkByte(2))
	case "SP":
		mc.SP.Load(scr.checkByte(2))
	case "SR":
		mc.Status.Load(scr.checkByte(2))
	default:
		L.ArgError(1, "unknown register")
	}
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.sys.CPU.ClockCount()))
	return 1
}

func (scr *Script) complete(L *lua.LState) int {
	L.Push(lua.LBool(scr.sys.CPU.Complete()))
	return 1
}

func (scr *Script) disasm(L *lua.LState) int {
	a := scr.checkAddress(1)
	dsm, err := disassembly.Disassemble(scr.sys.Mem, a, a)
	scr.raise(err)
	e, _ := dsm.Get(a)
	L.Push(lua.LString(e.String()))
	return 1
}

func (scr *Script) state(L *lua.LState) int {
	L.Push(lua.LString(scr.sys.CPU.State().String()))
	return 1
}

func (scr *Script) load(L *lua.LState) int {
	fn := L.CheckString(1)
	scr.raise(scr.sys.LoadFile(fn, scr.checkAddress(2)))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}
