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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/test"
	"github.com/jetsetilly/mos6502/version"
)

// counts X up to five and then jumps to itself
var countProgram = []uint8{
	0xa2, 0x00,       // LDX #$00
	0xe8,             // INX
	0xe0, 0x05,       // CPX #$05
	0xd0, 0xfb,       // BNE $0202
	0x4c, 0x07, 0x02, // JMP $0207
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestRunMode(t *testing.T) {
	fn := writeFile(t, "count.bin", countProgram)
	viz := filepath.Join(t.TempDir(), "final.dot")

	out := &strings.Builder{}
	v := launch(context.Background(), []string{"RUN", "-origin", "$0200", "-memviz", viz, fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "trapped after 47 cycles"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0207 A=00 X=05"))

	_, err := os.Stat(viz)
	test.ExpectSuccess(t, err)

	// randomised memory does not affect the program
	out.Reset()
	v = launch(context.Background(), []string{"RUN", "-origin", "0200", "-randomise", fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "trapped after 47 cycles"))

	// cycle limit without trap detection
	out.Reset()
	v = launch(context.Background(), []string{"RUN", "-origin", "0x200", "-trap=false", "-cycles", "100", fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "ended after 10"))
}

func TestDisasmMode(t *testing.T) {
	fn := writeFile(t, "count.bin", countProgram)

	out := &strings.Builder{}
	v := launch(context.Background(), []string{"DISASM", "-origin", "0200", fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, out.String(), `$0200: LDX #$00 {IMM}
$0202: INX {IMP}
$0203: CPX #$05 {IMM}
$0205: BNE $fb [$0202] {REL}
$0207: JMP $0207 {ABS}
`)

	out.Reset()
	v = launch(context.Background(), []string{"DISASM", "-origin", "0200", "-grep", "inx", "-scope", "operator", fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, out.String(), "$0202: INX {IMP}\n")

	out.Reset()
	v = launch(context.Background(), []string{"DISASM", "-origin", "0200", "-start", "0205", "-stop", "0205", fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, out.String(), "$0205: BNE $fb [$0202] {REL}\n")

	out.Reset()
	v = launch(context.Background(), []string{"DISASM", "-grep", "inx", "-scope", "everywhere", fn}, out)
	test.ExpectEquality(t, v, 20)
}

func TestScriptMode(t *testing.T) {
	fn := writeFile(t, "count.bin", countProgram)
	lua := writeFile(t, "test.lua", []byte(`print(reg("pc"))
print(run(0))
print(reg("x"))`))

	out := &strings.Builder{}
	v := launch(context.Background(), []string{"SCRIPT", "-origin", "0200", lua, fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, out.String(), "512\ntrapped\n5\n")
}

func TestCheckMode(t *testing.T) {
	fn := writeFile(t, "count.bin", countProgram)

	out := &strings.Builder{}
	v := launch(context.Background(), []string{"CHECK", "-origin", "0200", "-count", "3", fn}, out)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "all 3 emulations match"))
}

func TestArguments(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, out), 10)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN"}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "program image required"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "a.bin", "b.bin"}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "too many arguments"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", filepath.Join(t.TempDir(), "missing.bin")}, out), 20)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "-cycles"))
}

func TestVersionMode(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"VERSION"}, out), 0)
	test.ExpectEquality(t, out.String(), version.String()+"\n")
}

func BenchmarkRun(b *testing.B) {
	sys, err := hardware.NewSystem(nil, nil)
	if err != nil {
		b.Fatal(err)
	}

	// INX; JMP $0200
	err = sys.Load([]uint8{0xe8, 0x4c, 0x00, 0x02}, 0x0200)
	if err != nil {
		b.Fatal(err)
	}
	sys.SetResetVector(0x0200)
	err = sys.Reset()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for range b.N {
		err = sys.CPU.ExecuteInstruction()
		if err != nil {
			b.Fatal(err)
		}
	}
}
