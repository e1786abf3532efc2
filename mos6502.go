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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/jetsetilly/mos6502/cartridgeloader"
	"github.com/jetsetilly/mos6502/disassembly"
	"github.com/jetsetilly/mos6502/hardware/cpu"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/modalflag"
	"github.com/jetsetilly/mos6502/performance"
	"github.com/jetsetilly/mos6502/prefs"
	"github.com/jetsetilly/mos6502/resources"
	"github.com/jetsetilly/mos6502/statsview"
	"github.com/jetsetilly/mos6502/version"
)

// default load address of a program
const defaultOrigin = 0x0600

// range of memory written by the -dump flag. zero page and the stack
const (
	dumpFrom = 0x0000
	dumpTo   = 0x01ff
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "show version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, os.Stdout, false)

	case "TRACE":
		err = run(md, os.Stdout, true)

	case "DISASM":
		err = disasm(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes, output io.Writer, trace bool) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the program is loaded")
	skip := md.AddInt("skip", 0, "number of bytes to skip at the start of the program file")
	ines := md.AddBool("ines", false, "program file is an iNES image")
	prefsOverride := md.AddString("prefs", "", "preferences to override (eg. cpu.initialSP::0xff)")
	prefsFile := md.AddString("prefsfile", "", "preferences file to use. empty for the default file")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	stats := md.AddBool("statsview", false, "launch statsview server")
	viz := md.AddBool("memviz", false, "write graphviz representation of the CPU on exit")
	dump := md.AddBool("dump", false, "dump zero page and stack on exit")
	single := md.AddBool("step", false, "single step instructions on keypress (TRACE mode only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
		defer logger.SetEcho(nil, false)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unrecognised preferences: %s", unused)
			}
		}()
	}

	if *single && !trace {
		return fmt.Errorf("-step is only available in TRACE mode")
	}

	cl, err := loadProgram(md, *origin, *skip, *ines)
	if err != nil {
		return err
	}

	prf, err := preferences.NewPreferences(*prefsFile)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU(prf)
	mc.LoadProgram(*origin, cl.Data)

	if *stats {
		statsview.Launch(output)
	}

	if trace {
		err = runTrace(mc, output, *single)
	} else {
		err = mc.Run()
	}

	fmt.Fprintf(output, "%s [%d cycles]\n", mc, mc.Cycles())

	if *dump {
		if derr := mc.Mem.Dump(output, dumpFrom, dumpTo); derr != nil && err == nil {
			err = derr
		}
	}

	if *viz {
		if verr := visualise(mc, output, cl.ShortName()); verr != nil && err == nil {
			err = verr
		}
	}

	return err
}

// runTrace resets the CPU and steps through the program, writing a trace line
// for every instruction. An interrupt signal stops the trace at the next
// instruction boundary.
func runTrace(mc *cpu.CPU, output io.Writer, single bool) error {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	stdout := int(os.Stdout.Fd())
	stdin := int(os.Stdin.Fd())
	colour := output == io.Writer(os.Stdout) && term.IsTerminal(stdout)

	if single {
		if !term.IsTerminal(stdin) {
			return fmt.Errorf("-step requires a terminal")
		}
		oldState, err := term.MakeRaw(stdin)
		if err != nil {
			return err
		}
		defer term.Restore(stdin, oldState)
	}

	if colour {
		mc.Trace = newColourTrace(output, single)
	} else {
		mc.Trace = output
	}
	defer func() {
		mc.Trace = nil
	}()

	mc.Reset()
	for {
		select {
		case <-intChan:
			fmt.Fprintln(output, "* interrupted")
			return nil
		default:
		}

		if single && mc.State() == cpu.StateFetching {
			cont, err := waitForKey(os.Stdin)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}

		ok, err := mc.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// waitForKey blocks until a byte is available from input. Returns false if the
// key indicates that the trace should end.
func waitForKey(input io.Reader) (bool, error) {
	b := make([]byte, 1)
	_, err := input.Read(b)
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}

	switch b[0] {
	case 'q', 'Q':
		return false, nil
	case 0x03, 0x04:
		// ctrl-c and ctrl-d are not signals when the terminal is in raw mode
		return false, nil
	}

	return true, nil
}

// visualise writes the memviz output for the CPU to a uniquely named file.
func visualise(mc *cpu.CPU, output io.Writer, programName string) error {
	fn := fmt.Sprintf("%s.dot", resources.UniqueFilename("memviz", programName))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	mc.Visualise(f)
	fmt.Fprintf(output, "memviz written to %s\n", fn)

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the program is loaded")
	skip := md.AddInt("skip", 0, "number of bytes to skip at the start of the program file")
	ines := md.AddBool("ines", false, "program file is an iNES image")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	grep := md.AddString("grep", "", "only show instructions that match the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := loadProgram(md, *origin, *skip, *ines)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU(nil)
	mc.LoadProgram(*origin, cl.Data)

	dsm, err := disassembly.FromMemory(mc, *origin, len(cl.Data))
	if err != nil {
		return err
	}

	if *grep != "" {
		_, err = dsm.Grep(output, disassembly.GrepAll, *grep, false)
		return err
	}

	style := execution.StyleFlagAddress
	if *bytecode {
		style |= execution.StyleFlagByteCode | execution.StyleFlagColumns
	}

	return dsm.Write(output, style)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the program is loaded")
	skip := md.AddInt("skip", 0, "number of bytes to skip at the start of the program file")
	ines := md.AddBool("ines", false, "program file is an iNES image")
	prefsFile := md.AddString("prefsfile", "", "preferences file to use. empty for the default file")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cl, err := loadProgram(md, *origin, *skip, *ines)
	if err != nil {
		return err
	}

	cpuPrefs, err := preferences.NewPreferences(*prefsFile)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU(cpuPrefs)
	mc.LoadProgram(*origin, cl.Data)

	return performance.Check(output, prf, resources.UniqueFilename("performance", cl.ShortName()), mc, *duration)
}

// loadProgram loads the program file named by the only remaining argument
// and checks that it fits in memory at origin.
func loadProgram(md *modalflag.Modes, origin uint16, skip int, ines bool) (cartridgeloader.Loader, error) {
	var cl cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return cl, fmt.Errorf("program file required for %s mode", md)
	case 1:
		cl = cartridgeloader.NewLoader(md.GetArg(0), skip, ines)
	default:
		return cl, fmt.Errorf("too many arguments for %s mode", md)
	}

	err := cl.Load()
	if err != nil {
		return cl, err
	}

	if int(origin)+len(cl.Data) > 0x10000 {
		return cl, fmt.Errorf("program (%d bytes) does not fit in memory at origin %#04x", len(cl.Data), origin)
	}

	return cl, nil
}
