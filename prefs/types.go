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

// Package prefs provides the value types used by the preference groups of
// the emulator. Each type stores its value atomically and can call hook
// functions before and after a new value is set. A pre hook returning an
// error stops the new value from being stored.
//
// Preferences can be given on the command line as a string of key/value
// pairs. See PushCommandLineStack() for the format.
package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// Hook functions are called with the new value of a preference.
type Hook func(value Value) error

// hooked is the part of every preference type that stores a value and calls
// the hook functions.
type hooked[T any] struct {
	value    atomic.Value
	hookPre  Hook
	hookPost Hook
}

func (h *hooked[T]) load(def T) T {
	if v := h.value.Load(); v != nil {
		return v.(T)
	}
	return def
}

func (h *hooked[T]) store(nv T) error {
	if h.hookPre != nil {
		if err := h.hookPre(nv); err != nil {
			return err
		}
	}

	h.value.Store(nv)

	if h.hookPost != nil {
		if err := h.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. The callback is called even if the value has not
// changed.
func (h *hooked[T]) SetHookPre(f Hook) {
	h.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value has not
// changed.
func (h *hooked[T]) SetHookPost(f Hook) {
	h.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooked[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load(false))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load(false)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// AllowLogging implements the logger.Permission interface. Logging is
// allowed when the value is true.
func (p *Bool) AllowLogging() bool {
	return p.load(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooked[string]
	maxLen int
}

func (p *String) String() string {
	return p.load("")
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. The existing value is not
// cropped.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
}

// Set new value to String type. Any value is converted to a string.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load("")
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooked[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load(0))
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load(0)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
