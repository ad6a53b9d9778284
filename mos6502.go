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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/mos6502/comparison"
	"github.com/jetsetilly/mos6502/debugger"
	"github.com/jetsetilly/mos6502/debugger/easyterm"
	"github.com/jetsetilly/mos6502/disassembly"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/modalflag"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/random"
	"github.com/jetsetilly/mos6502/script"
	"github.com/jetsetilly/mos6502/statsview"
	"github.com/jetsetilly/mos6502/version"
)

// the number of entries kept by the log
const maxLogEntries = 1000

// the number of snapshots kept for the back key in STEP mode
const maxRewind = 100

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch is separate from main() so that it can be tested. returns the value
// to be used with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	echo := md.AddBool("log", false, "echo log to stdout")
	cmdlinePrefs := md.AddString("prefs", "", `preferences for this run. eg. "cpu.variant::6502; cpu.trace::true"`)
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AddSubModes("RUN", "DISASM", "STEP", "SCRIPT", "CHECK", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	log := logger.NewLogger(maxLogEntries)
	if *echo {
		if f, ok := output.(*os.File); ok && easyterm.IsTerminal(f) {
			log.SetEcho(logger.NewColorizer(output))
		} else {
			log.SetEcho(output)
		}
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
	}

	if *stats {
		if err := statsview.Launch(output); err != nil {
			fmt.Fprintf(output, "! %v\n", err)
		}
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, log)

	case "DISASM":
		err = disasm(md)

	case "STEP":
		err = step(md, log)

	case "SCRIPT":
		err = runScript(ctx, md, log)

	case "CHECK":
		err = check(ctx, md)

	case "PERFORMANCE":
		err = perform(ctx, md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// imageFlags are the flags common to every mode that loads a program image.
type imageFlags struct {
	origin *uint16
	reset  *uint16

	// not all modes support randomised memory. nil if not supported
	randomise *bool
}

func addImageFlags(md *modalflag.Modes) imageFlags {
	return imageFlags{
		origin: md.AddAddress("origin", 0x0000, "load address of the program image"),
		reset:  md.AddAddress("reset", 0x0000, "reset vector (default: origin if the image does not include the vectors)"),
	}
}

// resetVector decides the value of the reset vector. returns false if the
// reset vector should be taken from the image.
func (f imageFlags) resetVector(md *modalflag.Modes, imageLen int) (uint16, bool) {
	var set bool
	md.Visit(func(flg string) {
		if flg == "reset" {
			set = true
		}
	})
	if set {
		return *f.reset, true
	}
	if int(*f.origin)+imageLen <= int(0xfffc) {
		return *f.origin, true
	}
	return 0, false
}

// newSystem creates a system and loads the program image from the named
// file. the system is reset and ready to run.
func newSystem(md *modalflag.Modes, f imageFlags, filename string, log *logger.Logger) (*hardware.System, error) {
	image, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	sys, err := hardware.NewSystem(nil, log)
	if err != nil {
		return nil, err
	}

	if f.randomise != nil && *f.randomise {
		sys.RandomiseMemory(random.NewRandom(sys.CPU))
	}

	err = sys.Load(image, *f.origin)
	if err != nil {
		return nil, err
	}

	if v, ok := f.resetVector(md, len(image)); ok {
		sys.SetResetVector(v)
	}

	err = sys.Reset()
	if err != nil {
		return nil, err
	}

	return sys, nil
}

// finalState is the structure visualised by the memviz flag.
type finalState struct {
	CPU        cpu.State
	LastResult execution.Result
	Reads      int
	Writes     int
}

func run(ctx context.Context, md *modalflag.Modes, log *logger.Logger) error {
	md.NewMode()

	f := addImageFlags(md)
	f.randomise = md.AddBool("randomise", false, "randomise memory before loading the program image")
	cycles := md.AddInt("cycles", 0, "number of cycles to run for (0 is unlimited)")
	trap := md.AddBool("trap", true, "stop when the program jumps or branches to itself")
	viz := md.AddString("memviz", "", "write a graphviz (dot) file of the final state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
		if *cycles < 0 {
			return fmt.Errorf("cycles must not be negative")
		}

		sys, err := newSystem(md, f, md.GetArg(0), log)
		if err != nil {
			return err
		}

		var reason hardware.StopReason
		if *trap {
			reason, err = sys.RunForCycles(ctx, uint64(*cycles))
		} else {
			target := sys.CPU.ClockCount() + uint64(*cycles)
			reason, err = sys.Run(ctx, func() (hardware.RunState, error) {
				if *cycles > 0 && sys.CPU.ClockCount() >= target {
					return hardware.Ending, nil
				}
				return hardware.Running, nil
			})
		}
		if err != nil {
			return err
		}

		r := sys.CPU.LastResult()
		fmt.Fprintf(md.Output, "%s after %d cycles\n", reason, sys.CPU.ClockCount())
		fmt.Fprintf(md.Output, "last: %s\n", r)
		fmt.Fprintf(md.Output, "%s\n", sys.CPU.State())

		if *viz != "" {
			vf, err := os.Create(*viz)
			if err != nil {
				return err
			}
			defer vf.Close()

			memviz.Map(vf, &finalState{
				CPU:        sys.CPU.State(),
				LastResult: r,
				Reads:      sys.Mem.Reads,
				Writes:     sys.Mem.Writes,
			})
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x0000, "load address of the program image")
	start := md.AddAddress("start", 0x0000, "first address to disassemble (default: origin)")
	stop := md.AddAddress("stop", 0x0000, "last address to disassemble (default: end of image)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	grep := md.AddString("grep", "", "only output entries that match the search term")
	scope := md.AddString("scope", "ALL", "scope of grep: ALL, OPERATOR, OPERAND")
	caseSensitive := md.AddBool("case", false, "case sensitive grep")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
		image, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		if len(image) == 0 {
			return fmt.Errorf("program image is empty")
		}

		ram := memory.NewRAM()
		err = ram.Load(*origin, image)
		if err != nil {
			return err
		}

		from := *origin
		to := uint16(int(*origin) + len(image) - 1)
		md.Visit(func(flg string) {
			switch flg {
			case "start":
				from = *start
			case "stop":
				to = *stop
			}
		})

		dsm, err := disassembly.Disassemble(ram, from, to)
		if err != nil {
			return err
		}

		if *grep == "" {
			return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
		}

		var s disassembly.GrepScope
		switch strings.ToUpper(*scope) {
		case "ALL":
			s = disassembly.GrepAll
		case "OPERATOR":
			s = disassembly.GrepOperator
		case "OPERAND":
			s = disassembly.GrepOperand
		default:
			return fmt.Errorf("unknown grep scope (%s)", *scope)
		}

		return dsm.Grep(md.Output, s, *grep, *caseSensitive)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func step(md *modalflag.Modes, log *logger.Logger) error {
	md.NewMode()

	f := addImageFlags(md)
	f.randomise = md.AddBool("randomise", false, "randomise memory before loading the program image")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
		sys, err := newSystem(md, f, md.GetArg(0), log)
		if err != nil {
			return err
		}

		term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer term.CleanUp()

		// the log is shown on request with the log key
		log.SetEcho(nil)

		dbg, err := debugger.NewDebugger(term, sys.CPU, sys.Mem, log)
		if err != nil {
			return err
		}
		dbg.SetRewinder(hardware.NewRewind(sys, maxRewind))

		return dbg.Start()

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func runScript(ctx context.Context, md *modalflag.Modes, log *logger.Logger) error {
	md.NewMode()

	f := addImageFlags(md)

	md.AdditionalHelp(
		`The first argument is the Lua script to run. The optional second argument is a
program image to load before the script is started.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var sys *hardware.System

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
		sys, err = hardware.NewSystem(nil, log)
	case 2:
		sys, err = newSystem(md, f, md.GetArg(1), log)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if err != nil {
		return err
	}

	scr, err := script.NewScript(sys, md.Output, log)
	if err != nil {
		return err
	}
	defer scr.Close()

	return scr.RunFile(ctx, md.GetArg(0))
}

func check(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addImageFlags(md)
	count := md.AddInt("count", 4, "number of emulations to run")
	cycles := md.AddInt("cycles", 1000000, "number of cycles to run each emulation for")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
		if *cycles <= 0 {
			return fmt.Errorf("cycles must be greater than zero")
		}

		image, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}

		prg := comparison.Program{
			Image:  image,
			Origin: *f.origin,
		}
		prg.ResetVector, prg.SetResetVector = f.resetVector(md, len(image))

		cmp, err := comparison.NewComparison(nil, *count, prg)
		if err != nil {
			return err
		}

		rep, err := cmp.Run(ctx, uint64(*cycles))
		if err != nil {
			return err
		}

		fmt.Fprintln(md.Output, rep)
		if !rep.Match() {
			return errors.New("emulations are not deterministic")
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addImageFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "produce profiling reports: CPU, MEM (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode", md)
	case 1:
		prf, err := performance.ParseProfile(*profile)
		if err != nil {
			return err
		}

		sys, err := newSystem(md, f, md.GetArg(0), nil)
		if err != nil {
			return err
		}

		return performance.Check(ctx, md.Output, prf, sys, *duration)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
