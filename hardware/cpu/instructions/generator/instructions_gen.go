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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"var definitions = [256]Definition{"

const trailingBoilerPlate = "}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"IMMEDIATE":           instructions.Immediate,
	"ZERO_PAGE":           instructions.ZeroPage,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
}

// the Go identifier for each addressing mode as it appears in the generated
// file. the String() function of the AddressingMode type returns the short
// disassembly form
var addressingModeIdents = map[instructions.AddressingMode]string{
	instructions.Implied:          "Implied",
	instructions.Immediate:        "Immediate",
	instructions.ZeroPage:         "ZeroPage",
	instructions.ZeroPageIndexedX: "ZeroPageIndexedX",
	instructions.ZeroPageIndexedY: "ZeroPageIndexedY",
	instructions.Relative:         "Relative",
	instructions.Absolute:         "Absolute",
	instructions.AbsoluteIndexedX: "AbsoluteIndexedX",
	instructions.AbsoluteIndexedY: "AbsoluteIndexedY",
	instructions.Indirect:         "Indirect",
	instructions.IndexedIndirect:  "IndexedIndirect",
	instructions.IndirectIndexed:  "IndirectIndexed",
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

func parseOperator(s string) (instructions.Operator, bool) {
	if s == "XXX" {
		return instructions.XXX, true
	}
	for op := instructions.Operator(0); op < instructions.NumOperators; op++ {
		if op.String() == s {
			return op, true
		}
	}
	return 0, false
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the undocumented field is optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		// trim trailing comment from record
		rec[len(rec)-1] = strings.Split(rec[len(rec)-1], "#")[0]
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if _, ok := deftable[defn.OpCode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: operator
		var ok bool
		defn.Operator, ok = parseOperator(strings.ToUpper(rec[1]))
		if !ok {
			return "", fmt.Errorf("invalid operator for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		defn.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		// field: effect category
		defn.Effect, ok = effects[strings.ToUpper(rec[4])]
		if !ok {
			return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: undocumented
		if len(rec) == 6 {
			if strings.ToUpper(rec[5]) != "UNDOCUMENTED" {
				return "", fmt.Errorf("unknown flag for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
			defn.Undocumented = true
		}

		deftable[defn.OpCode] = defn
	}

	// every opcode must be defined
	if len(deftable) != 256 {
		return "", fmt.Errorf("%d opcodes missing from instruction definitions", 256-len(deftable))
	}

	s := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		defn := deftable[uint8(opcode)]
		operator := defn.Operator.String()
		if defn.Operator == instructions.XXX {
			operator = "XXX"
		}
		s.WriteString(fmt.Sprintf("\n{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, Effect: %s, Undocumented: %v},",
			defn.OpCode, operator, defn.Bytes, defn.Cycles, addressingModeIdents[defn.AddressingMode], defn.Effect, defn.Undocumented))
	}

	return s.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
