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

package preferences

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/prefs"
)

// List of supported CPU variants.
const (
	// the NES/Famicom CPU. the decimal flag can be set and cleared but has
	// no effect on ADC and SBC
	Variant2A03 = "2A03"

	// the original NMOS 6502. ADC and SBC use decimal arithmetic when the
	// decimal flag is set
	Variant6502 = "6502"
)

// Error patterns.
const (
	ErrUnsupportedVariant = "preferences: unsupported cpu variant (%s)"
)

// Preferences defines and collates all the preference values used by the
// CPU.
type Preferences struct {
	// the CPU variant being emulated. one of the Variant* values
	Variant prefs.String

	// per-instruction trace logging. the Trace field can be used as a
	// logger.Permission
	Trace prefs.Bool

	// live value updated whenever Variant changes. quicker to access than
	// the Variant string on every ADC/SBC
	decimal atomic.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("cpu.variant::%s; cpu.trace::%s", p.Variant.String(), p.Trace.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Default values are set and then any matching values
// from the current command line group are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Variant.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case Variant2A03, Variant6502:
			return nil
		}
		return curated.Errorf(ErrUnsupportedVariant, v)
	})
	p.Variant.SetHookPost(func(v prefs.Value) error {
		p.decimal.Store(v.(string) == Variant6502)
		return nil
	})

	p.SetDefaults()

	if ok, v := prefs.GetCommandLinePref("cpu.variant"); ok {
		if err := p.Variant.Set(strings.ToUpper(v)); err != nil {
			return nil, err
		}
	}
	if ok, v := prefs.GetCommandLinePref("cpu.trace"); ok {
		if err := p.Trace.Set(v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Variant.Set(Variant2A03)
	_ = p.Trace.Set(false)
}

// DecimalMode returns true if the decimal flag affects arithmetic for the
// selected variant.
func (p *Preferences) DecimalMode() bool {
	return p.decimal.Load()
}
