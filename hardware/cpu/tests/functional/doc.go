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

// Package functional runs the 6502 functional test written by Klaus Dormann.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test binary is not included in the repository. Assemble
// 6502_functional_test.a65 with the default options, or take the prebuilt
// bin_files/6502_functional_test.bin, and copy it to this directory. The
// test is skipped if the file does not exist.
//
// The binary is a complete 64k image. Execution starts at $0400 and the test
// has passed when the program counter reaches the success address. Any other
// instruction that jumps to itself marks a failed test.
package functional
