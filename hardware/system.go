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

package hardware

import (
	"os"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/random"
)

// Error patterns.
const (
	ErrSystem = "system: %w"
	ErrLoad   = "system: loading %s: %w"
)

// System is a CPU attached to RAM.
type System struct {
	CPU   *cpu.CPU
	Mem   *memory.RAM
	Prefs *preferences.Preferences

	log *logger.Logger
}

// NewSystem creates a new System. If prefs is nil then a new set of
// preferences is created. The log argument can be nil.
func NewSystem(prefs *preferences.Preferences, log *logger.Logger) (*System, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf(ErrSystem, err)
		}
	}

	sys := &System{
		Mem:   memory.NewRAM(),
		Prefs: prefs,
		log:   log,
	}

	sys.CPU, err = cpu.NewCPU(sys.Mem, cpu.WithPreferences(prefs), cpu.WithLogger(log))
	if err != nil {
		return nil, curated.Errorf(ErrSystem, err)
	}

	return sys, nil
}

// Load a program image into memory at the origin address.
func (sys *System) Load(image []uint8, origin uint16) error {
	if err := sys.Mem.Load(origin, image); err != nil {
		return curated.Errorf(ErrSystem, err)
	}
	sys.log.Logf(logger.Allow, "system", "loaded %d bytes at %04x", len(image), origin)
	return nil
}

// LoadFile loads the named file into memory at the origin address.
func (sys *System) LoadFile(filename string, origin uint16) error {
	image, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ErrLoad, filename, err)
	}
	return sys.Load(image, origin)
}

// SetResetVector points the reset vector at address. Used when a program
// image does not include the vectors.
func (sys *System) SetResetVector(address uint16) {
	sys.Mem.SetVector(cpubus.Reset, address)
}

// RandomiseMemory fills the whole of memory with random values, as memory
// would be on power-up. Should be called before Load().
func (sys *System) RandomiseMemory(rnd *random.Random) {
	for a := uint32(0); a < memory.Size; a++ {
		_ = sys.Mem.Poke(uint16(a), uint8(rnd.NoRewind(256)))
	}
	sys.log.Log(logger.Allow, "system", "memory randomised")
}

// Reset the CPU. Memory is not changed.
func (sys *System) Reset() error {
	if err := sys.CPU.Reset(); err != nil {
		return err
	}
	sys.log.Logf(logger.Allow, "system", "reset: PC=%04x", sys.CPU.PC.Address())
	return nil
}

// Step the system one CPU instruction.
func (sys *System) Step() (execution.Result, error) {
	if err := sys.CPU.ExecuteInstruction(); err != nil {
		return execution.Result{}, err
	}
	return sys.CPU.LastResult(), nil
}
