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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/memory/cpubus"
	"github.com/jetsetilly/mos6502/test"
)

func readData(t *testing.T, mem cpubus.Memory, address uint16, expectedData uint8) {
	t.Helper()
	d, err := mem.Read(address)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, expectedData, "address %04x", address)
}

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM()

	readData(t, ram, 0x0000, 0x00)
	test.ExpectSuccess(t, ram.Write(0x0000, 0x11))
	test.ExpectSuccess(t, ram.Write(0xffff, 0x22))
	readData(t, ram, 0x0000, 0x11)
	readData(t, ram, 0xffff, 0x22)

	test.ExpectEquality(t, ram.Reads, 3)
	test.ExpectEquality(t, ram.Writes, 2)

	// peek and poke are not counted as bus accesses
	test.ExpectSuccess(t, ram.Poke(0x8000, 0x33))
	d, err := ram.Peek(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0x33)
	test.ExpectEquality(t, ram.Reads, 3)
	test.ExpectEquality(t, ram.Writes, 2)

	ram.Clear()
	readData(t, ram, 0xffff, 0x00)
	test.ExpectEquality(t, ram.Reads, 1)
}

func TestLoad(t *testing.T) {
	ram := memory.NewRAM()

	test.ExpectSuccess(t, ram.Load(0x8000, []uint8{0xa9, 0x01, 0x00}))
	readData(t, ram, 0x8000, 0xa9)
	readData(t, ram, 0x8001, 0x01)

	// loading right up to the end of memory is fine
	test.ExpectSuccess(t, ram.Load(0xfffe, []uint8{0x01, 0x02}))
	readData(t, ram, 0xffff, 0x02)

	// one byte too many is not
	err := ram.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ErrLoadOverflow))
}

func TestVector(t *testing.T) {
	ram := memory.NewRAM()
	ram.SetVector(cpubus.Reset, 0x8000)
	readData(t, ram, 0xfffc, 0x00)
	readData(t, ram, 0xfffd, 0x80)
}

func TestDump(t *testing.T) {
	ram := memory.NewRAM()
	test.ExpectSuccess(t, ram.Poke(0x0201, 0xab))

	d := strings.Split(ram.Dump(0x0205, 0x0210), "\n")
	test.ExpectEquality(t, len(d), 4)
	test.ExpectSuccess(t, strings.HasPrefix(d[2], "0200 |  00 ab 00"))
	test.ExpectSuccess(t, strings.HasPrefix(d[3], "0210 | "))
}

func TestSnapshot(t *testing.T) {
	ram := memory.NewRAM()
	test.DemandSuccess(t, ram.Poke(0x1000, 0x42))

	s := ram.Snapshot()
	test.DemandSuccess(t, ram.Poke(0x1000, 0x24))

	v, _ := s.Peek(0x1000)
	test.ExpectEquality(t, v, 0x42)

	ram.Plumb(s)
	v, _ = ram.Peek(0x1000)
	test.ExpectEquality(t, v, 0x42)

	// snapshot is not affected by changes to the plumbed RAM
	test.DemandSuccess(t, ram.Poke(0x1000, 0x99))
	v, _ = s.Peek(0x1000)
	test.ExpectEquality(t, v, 0x42)
}
