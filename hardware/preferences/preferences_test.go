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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Variant.String(), preferences.Variant2A03)
	test.ExpectFailure(t, p.DecimalMode())
	test.ExpectFailure(t, p.Trace.AllowLogging())
	test.ExpectEquality(t, p.String(), "cpu.variant::2A03; cpu.trace::false")
}

func TestVariant(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Variant.Set(preferences.Variant6502))
	test.ExpectSuccess(t, p.DecimalMode())

	err = p.Variant.Set("65C02")
	test.ExpectSuccess(t, curated.Is(err, preferences.ErrUnsupportedVariant))
	test.ExpectEquality(t, p.Variant.String(), preferences.Variant6502)
	test.ExpectSuccess(t, p.DecimalMode())

	p.SetDefaults()
	test.ExpectFailure(t, p.DecimalMode())
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.variant::6502; cpu.trace::true; other::value")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.DecimalMode())
	test.ExpectSuccess(t, p.Trace.AllowLogging())

	// unused prefs remain on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")
	prefs.PushCommandLineStack("")
}

func TestCommandLineBadVariant(t *testing.T) {
	prefs.PushCommandLineStack("cpu.variant::z80")
	defer prefs.PopCommandLineStack()

	_, err := preferences.NewPreferences()
	test.ExpectSuccess(t, curated.Is(err, preferences.ErrUnsupportedVariant))
}
