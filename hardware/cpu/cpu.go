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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/logger"
)

// Error patterns.
const (
	ErrNoBus = "cpu: no memory bus attached"
	ErrBus   = "cpu: %w"
)

// Number of cycles taken by the reset and interrupt sequences.
const (
	resetCycles = 8
	irqCycles   = 7
	nmiCycles   = 8
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem   cpubus.Memory
	prefs *preferences.Preferences
	log   *logger.Logger

	// transient values used during the execution of a single instruction.
	// they are cleared at the start of every instruction
	fetched uint8
	addrAbs uint16
	addrRel uint16
	opcode  uint8
	temp    uint16
	defn    instructions.Definition

	// the number of cycles remaining for the current instruction
	cycles int

	// the total number of clock ticks since the CPU was created
	clockCount uint64

	// details about the most recent instruction
	result execution.Result

	// the first error returned by the bus during the current operation
	busErr error
}

// Option is used to configure the CPU when it is created with NewCPU().
type Option func(mc *CPU)

// WithLogger sets the logger to be used by the CPU.
func WithLogger(log *logger.Logger) Option {
	return func(mc *CPU) {
		mc.log = log
	}
}

// WithPreferences sets the preferences used by the CPU. If this option is not
// used then a new set of preferences is created by NewCPU().
func WithPreferences(prefs *preferences.Preferences) Option {
	return func(mc *CPU) {
		mc.prefs = prefs
	}
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is not reset. Call Reset() to load the PC from the reset vector.
func NewCPU(mem cpubus.Memory, opts ...Option) (*CPU, error) {
	if mem == nil {
		return nil, curated.Errorf(ErrNoBus)
	}

	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
	}

	for _, o := range opts {
		o(mc)
	}

	if mc.prefs == nil {
		var err error
		mc.prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("cpu: %w", err)
		}
	}

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status.Label(), mc.Status)
}

// Preferences returns the preferences being used by the CPU. May be nil if
// the CPU was not created with NewCPU().
func (mc *CPU) Preferences() *preferences.Preferences {
	return mc.prefs
}

// Reset the CPU. The PC is loaded from the reset vector, the A, X and Y
// registers are cleared, the stack pointer is set to 0xfd and all status
// flags except Unused are cleared. The reset sequence takes eight cycles.
func (mc *CPU) Reset() error {
	if mc.mem == nil {
		return curated.Errorf(ErrNoBus)
	}
	mc.busErr = nil

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()

	mc.clearTransient()
	mc.result.Reset()

	mc.PC.Load(mc.read16(cpubus.Reset))
	mc.cycles = resetCycles

	return mc.takeBusErr()
}

// IRQ raises an interrupt request. Ignored if the InterruptDisable flag is
// set. The interrupt sequence is applied immediately, so IRQ() should be
// called only when Complete() returns true.
func (mc *CPU) IRQ() error {
	if mc.mem == nil {
		return curated.Errorf(ErrNoBus)
	}
	if mc.Status.InterruptDisable {
		return nil
	}
	return mc.interrupt(cpubus.IRQ, irqCycles)
}

// NMI raises a non-maskable interrupt. Cannot be ignored. Like IRQ(), NMI()
// should be called only when Complete() returns true.
func (mc *CPU) NMI() error {
	if mc.mem == nil {
		return curated.Errorf(ErrNoBus)
	}
	return mc.interrupt(cpubus.NMI, nmiCycles)
}

// interrupt pushes the PC and status register to the stack and loads the PC
// from the vector. The live Break flag is cleared before the push.
func (mc *CPU) interrupt(vector uint16, cycles int) error {
	mc.busErr = nil

	mc.push(mc.PC.Hi())
	mc.push(mc.PC.Lo())

	mc.Status.Break = false
	mc.Status.Unused = true
	mc.Status.InterruptDisable = true
	mc.push(mc.Status.Value())

	mc.PC.Load(mc.read16(vector))
	mc.cycles = cycles

	return mc.takeBusErr()
}

// Clock advances the CPU by one cycle. If the previous instruction has
// completed then the next instruction is fetched and executed in full.
//
// If the bus returns an error the error is returned and the cycle is not
// counted. The CPU state in that case is undefined.
func (mc *CPU) Clock() error {
	if mc.mem == nil {
		return curated.Errorf(ErrNoBus)
	}

	if mc.cycles == 0 {
		if err := mc.execute(); err != nil {
			return err
		}
	}

	mc.cycles--
	mc.clockCount++

	return nil
}

// Complete returns true when the current instruction (or reset/interrupt
// sequence) has used all of its cycles.
func (mc *CPU) Complete() bool {
	return mc.cycles == 0
}

// ExecuteInstruction clocks the CPU until the next instruction has been
// completed. Any instruction already in progress is completed first.
func (mc *CPU) ExecuteInstruction() error {
	for !mc.Complete() {
		if err := mc.Clock(); err != nil {
			return err
		}
	}

	if err := mc.Clock(); err != nil {
		return err
	}

	for !mc.Complete() {
		if err := mc.Clock(); err != nil {
			return err
		}
	}

	return nil
}

// ClockCount returns the number of cycles that have passed since the CPU was
// created.
func (mc *CPU) ClockCount() uint64 {
	return mc.clockCount
}

// LastResult returns the details of the most recent instruction.
func (mc *CPU) LastResult() execution.Result {
	return mc.result
}

func (mc *CPU) clearTransient() {
	mc.fetched = 0
	mc.addrAbs = 0
	mc.addrRel = 0
	mc.opcode = 0
	mc.temp = 0
	mc.defn = instructions.Definition{}
}

// execute a single instruction in full. sets the cycle countdown.
func (mc *CPU) execute() error {
	mc.busErr = nil
	mc.clearTransient()

	mc.result.Reset()
	mc.result.Address = mc.PC.Address()

	mc.Status.Unused = true

	mc.opcode = mc.readPC()
	e := lookup[mc.opcode]
	mc.defn = e.defn
	mc.result.Defn = e.defn

	mc.cycles = e.defn.Cycles

	addrExtra := e.addressing(mc)
	opExtra := e.operate(mc)
	if addrExtra && opExtra {
		mc.cycles++
		mc.result.PageFault = true
	}

	mc.Status.Unused = true

	mc.result.Cycles = mc.cycles
	mc.result.Final = true

	if err := mc.takeBusErr(); err != nil {
		return err
	}

	if mc.log != nil && mc.prefs != nil && mc.prefs.Trace.AllowLogging() {
		mc.log.Logf(&mc.prefs.Trace, "cpu", "%10d %-24s %s", mc.clockCount, mc.result.String(), mc.String())
	}

	return nil
}

// read a value from the bus. errors are stored and returned by takeBusErr()
// at the end of the operation.
func (mc *CPU) read(address uint16) uint8 {
	v, err := mc.mem.Read(address)
	if err != nil && mc.busErr == nil {
		mc.busErr = err
	}
	return v
}

// read a little-endian word from the bus.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.read(address)
	hi := mc.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write(address uint16, data uint8) {
	if err := mc.mem.Write(address, data); err != nil && mc.busErr == nil {
		mc.busErr = err
	}
}

// readPC reads the byte pointed to by the PC and increments the PC. Operand
// bytes are recorded in the execution result.
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Increment())
	if mc.result.ByteCount > 0 {
		mc.result.InstructionData |= uint16(v) << (8 * (mc.result.ByteCount - 1))
	}
	mc.result.ByteCount++
	return v
}

func (mc *CPU) push(data uint8) {
	mc.write(mc.SP.Push(), data)
}

func (mc *CPU) pull() uint8 {
	return mc.read(mc.SP.Pull())
}

func (mc *CPU) takeBusErr() error {
	err := mc.busErr
	mc.busErr = nil
	if err != nil {
		return curated.Errorf(ErrBus, err)
	}
	return nil
}

// decimal returns true if ADC and SBC should use decimal arithmetic.
func (mc *CPU) decimal() bool {
	return mc.Status.DecimalMode && mc.prefs != nil && mc.prefs.DecimalMode()
}

// Registers returns a multi-line summary of the registers. Used by the step
// monitor.
func (mc *CPU) Registers() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC: %04x  A: %02x  X: %02x  Y: %02x  SP: %02x\n",
		mc.PC.Address(), mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.SP.Value()))
	s.WriteString(fmt.Sprintf("SR: %s (%02x)  cycles: %d\n", mc.Status, mc.Status.Value(), mc.clockCount))
	return s.String()
}
