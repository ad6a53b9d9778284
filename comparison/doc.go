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

// Package comparison runs several identical emulations concurrently and
// checks that they produce identical results. Each emulation is given the
// same program image and is run for the same number of cycles. The final CPU
// state, a trace digest of every instruction and a digest of memory are then
// compared.
//
// Emulations that disagree indicate that the emulation is not deterministic.
// For example, because of shared state between CPU instances.
package comparison
