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

// Package logger is the logging package used by the CPU and the command line
// tools. There is no global log. A Logger is created with NewLogger() and
// passed to whatever needs it.
//
// Every call to Log() or Logf() requires a Permission. Logging only occurs if
// the permission allows it. Preferences can implement the Permission
// interface so that logging can be turned on and off through configuration.
// The Allow and Deny values are provided for callers that always or never
// want to log.
//
// A nil *Logger is valid. Calls to Log() and Logf() on a nil Logger do
// nothing.
package logger
