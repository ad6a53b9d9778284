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

// Package hardware ties the CPU to a flat 64KiB memory to form a complete
// system. The System type is used by every mode of the command line tool.
//
//	sys, _ := hardware.NewSystem(nil, nil)
//	_ = sys.LoadFile("prog.bin", 0x0200)
//	_ = sys.Reset()
//	_ = sys.Run(ctx, nil)
//
// Snapshots of the system can be taken with Snapshot() and restored with
// Plumb(). The Rewind type uses snapshots to step backwards through
// execution.
package hardware
