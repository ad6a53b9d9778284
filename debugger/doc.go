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

// Package debugger implements the single-step monitor. The monitor runs a
// CPU one instruction (or one cycle) at a time in response to single key
// presses.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(term, mc, mem, log)
//
// The term argument satisfies the Terminal interface. The easyterm package
// provides a suitable implementation for posix terminals.
//
// Once initialised, the monitor is started with the Start() function, which
// returns when the user quits or the input is exhausted.
package debugger
