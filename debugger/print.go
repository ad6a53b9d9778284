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
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/debugger/easyterm/ansi"
	"github.com/jetsetilly/mos6502/disassembly"
)

type style int

const (
	styleNormal style = iota
	styleFeedback
	styleResult
	styleError
	styleHelp
)

func (sty style) pen() string {
	switch sty {
	case styleFeedback:
		return ansi.DimPens["white"]
	case styleResult:
		return ansi.Pens["yellow"]
	case styleError:
		return ansi.Pens["red"]
	case styleHelp:
		return ansi.DimPens["cyan"]
	}
	return ""
}

func (dbg *Debugger) printLine(sty style, s string, a ...any) {
	s = strings.TrimRight(fmt.Sprintf(s, a...), "\n")
	if len(s) == 0 {
		return
	}

	out := dbg.term.Output()
	if p := sty.pen(); p != "" {
		fmt.Fprintf(out, "%s%s%s\n", p, s, ansi.NormalPen)
	} else {
		fmt.Fprintln(out, s)
	}
}

func (dbg *Debugger) printError(err error) {
	dbg.printLine(styleError, "* %v", err)
}

func (dbg *Debugger) printHelp() {
	dbg.printLine(styleHelp, "space/s: step  c: cycle  b: back  r: reset  i: irq  n: nmi")
	dbg.printLine(styleHelp, "m: dump PC page  z: dump zero page  k: dump stack  l: log  q: quit")
}

// printState prints the registers and the instruction at the PC. registers
// that have changed since the previous step are highlighted.
func (dbg *Debugger) printState() {
	s := dbg.mc.State()
	changed := make(map[string]bool)
	for _, r := range dbg.prev.Diff(s) {
		changed[r] = true
	}

	reg := func(label string, v string) string {
		if changed[label] {
			return fmt.Sprintf("%s%s=%s%s", ansi.PenStyles["bold"], label, v, ansi.NormalPen)
		}
		return fmt.Sprintf("%s=%s", label, v)
	}

	st := fmt.Sprintf("%s %s %s %s %s %s  cycles=%d",
		reg("PC", fmt.Sprintf("%04x", s.PC)),
		reg("A", fmt.Sprintf("%02x", s.A)),
		reg("X", fmt.Sprintf("%02x", s.X)),
		reg("Y", fmt.Sprintf("%02x", s.Y)),
		reg("SP", fmt.Sprintf("%02x", s.SP)),
		reg("SR", dbg.mc.Status.String()),
		s.ClockCount)
	dbg.printLine(styleNormal, "%s", st)

	if dbg.mem == nil {
		return
	}

	dsm, err := disassembly.Disassemble(dbg.mem, s.PC, s.PC)
	if err != nil {
		dbg.printError(err)
		return
	}
	if e, ok := dsm.Get(s.PC); ok {
		dbg.printLine(styleFeedback, "next: %s", e)
	}
}

func (dbg *Debugger) printResult() {
	dbg.printLine(styleResult, "%s", dbg.mc.LastResult().String())
}

func (dbg *Debugger) printCycle() {
	if dbg.mc.Complete() {
		dbg.printLine(styleResult, "cycle %d: %s", dbg.mc.ClockCount(), dbg.mc.LastResult().String())
	} else {
		dbg.printLine(styleResult, "cycle %d", dbg.mc.ClockCount())
	}
}
