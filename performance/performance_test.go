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

package performance_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	_, err = performance.ParseProfile("cpu,trace")
	test.ExpectSuccess(t, curated.Is(err, performance.ErrUnknownProfile))
}

func TestCalcRate(t *testing.T) {
	mhz, accuracy := performance.CalcRate(performance.NTSCClock*2, 2.0)
	test.ExpectEquality(t, mhz, 1.789773)
	test.ExpectEquality(t, accuracy, 100.0)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
}

func TestCheck(t *testing.T) {
	sys, err := hardware.NewSystem(nil, nil)
	test.DemandSuccess(t, err)

	// INX; JMP $0200
	test.DemandSuccess(t, sys.Load([]uint8{0xe8, 0x4c, 0x00, 0x02}, 0x0200))
	sys.SetResetVector(0x0200)
	test.DemandSuccess(t, sys.Reset())

	out := &strings.Builder{}
	err = performance.Check(context.Background(), out, performance.ProfileNone, sys, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "MHz"))
	test.ExpectSuccess(t, sys.CPU.ClockCount() > 0)

	err = performance.Check(context.Background(), out, performance.ProfileNone, sys, "soon")
	test.ExpectFailure(t, err)
}
