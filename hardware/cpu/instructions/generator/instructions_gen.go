// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// instructions_gen creates the table.go file in the parent directory from the
// instructions.csv file. It should be run from the instructions directory,
// most conveniently with "go generate".
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

const definitionsCSVFile = "instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// table of instruction definitions indexed by opcode. unmapped opcodes are nil.\n" +
	"var definitions = [256]*Definition{\n"

const trailingBoilerPlate = "}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

// the operator field is copied to the generated file verbatim. the Go
// compiler checks that it names an Operator constant
type entry struct {
	opcode        uint8
	operator      string
	bytes         int
	cycles        int
	mode          instructions.AddressingMode
	pageSensitive bool
	effect        instructions.EffectCategory
	undocumented  bool
}

func (e entry) String() string {
	return fmt.Sprintf("0x%02x: {OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s, Undocumented: %t},",
		e.opcode, e.opcode, e.operator, e.bytes, e.cycles, e.mode, e.pageSensitive, e.effect, e.undocumented)
}

func parseCSV() (map[uint8]entry, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the undocumented field is optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]entry)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)

		if !(len(rec) == 6 || len(rec) == 7) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		var e entry

		// field: opcode
		n, err := strconv.ParseUint(rec[0], 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		e.opcode = uint8(n)

		if _, ok := deftable[e.opcode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", e.opcode, line)
		}

		// field: operator
		e.operator = rec[1]

		// field: cycle count
		e.cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", e.opcode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		var ok bool
		e.mode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", e.opcode, rec[3], line)
		}
		e.bytes = e.mode.Bytes()

		// BRK is followed by a padding byte
		if e.operator == "Brk" {
			e.bytes++
		}

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			e.pageSensitive = true
		case "FALSE":
			e.pageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", e.opcode, rec[4], line)
		}

		// field: effect category
		e.effect, ok = effects[strings.ToUpper(rec[5])]
		if !ok {
			return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", e.opcode, rec[5], line)
		}

		// field: undocumented (optional)
		if len(rec) == 7 {
			if strings.ToUpper(rec[6]) != "UNDOCUMENTED" {
				return nil, fmt.Errorf("unknown flag for %#02x (%s) [line %d]", e.opcode, rec[6], line)
			}
			e.undocumented = true
		}

		deftable[e.opcode] = e
	}

	return deftable, nil
}

func printSummary(deftable map[uint8]entry) {
	missing := make([]int, 0, 256)
	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			missing = append(missing, i)
		}
	}

	if len(missing) == 0 {
		return
	}

	fmt.Println("6502 unused opcodes")
	fmt.Println("-------------------")

	// print and columnise missing instructions
	c := 0
	for i := range missing {
		fmt.Printf("%#02x\t", missing[i])
		c++
		if c > 4 {
			c = 0
			fmt.Printf("\n")
		}
	}
	if c != 0 {
		fmt.Printf("\n")
	}

	fmt.Printf("%d missing, %.0f%% defined\n", len(missing), float32(100*(256-len(missing)))/256)
}

func generate() error {
	deftable, err := parseCSV()
	if err != nil {
		return err
	}

	printSummary(deftable)

	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for opcode := 0; opcode <= 255; opcode++ {
		if e, ok := deftable[uint8(opcode)]; ok {
			s.WriteString(e.String())
			s.WriteString("\n")
		}
	}
	s.WriteString(trailingBoilerPlate)

	output, err := format.Source([]byte(s.String()))
	if err != nil {
		return err
	}

	return os.WriteFile(generatedGoFile, output, 0o644)
}

func main() {
	if err := generate(); err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
