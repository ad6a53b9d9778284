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

// Package modalflag wraps the flag package in the standard library. It adds
// program modes (and sub-modes), with a different set of flags for each mode.
//
// Arguments are given with NewArgs() and parsed with Parse(), which takes no
// arguments. For example:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "STEP")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default mode. It is selected if the first
// non-flag argument is not one of the sub-modes. Sub-mode comparisons are
// case insensitive and the selected mode is returned by Mode() in upper case.
//
// Once a mode has been chosen, NewMode() starts a new set of flags for that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		start := md.AddAddress("start", 0x0000, "first address to disassemble")
//		p, err := md.Parse()
//		...
//		disasm(md.GetArg(0), *start)
//	}
//
// Path() returns every mode found so far, separated by a slash.
package modalflag
