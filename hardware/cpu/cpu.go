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

package cpu

import (
	"fmt"
	"io"

	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/hardware/cpu/execution"
	"github.com/jetsetilly/mos6502/hardware/cpu/instructions"
	"github.com/jetsetilly/mos6502/hardware/cpu/registers"
	"github.com/jetsetilly/mos6502/hardware/memory"
	"github.com/jetsetilly/mos6502/hardware/preferences"
	"github.com/jetsetilly/mos6502/logger"
	"github.com/jetsetilly/mos6502/random"
)

// Error patterns returned by the CPU. Test for them with curated.Is().
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	UnknownAddressingMode    = "cpu: unknown addressing mode (%s)"
	StackUnderflow           = "cpu: stack underflow at (%#04x)"
	StackOverflow            = "cpu: stack overflow at (%#04x)"
)

// HaltAddress is the address at which the CPU stops fetching instructions.
const HaltAddress = 0xffff

// State of the CPU between calls to Step().
type State int

// List of valid State values.
const (
	// the PC has not been loaded from the reset vector
	StateReset State = iota

	// the next call to Step() will fetch an instruction
	StateFetching

	// the CPU is waiting for the current instruction to complete
	StateDelaying

	// the CPU has stopped. either the PC has reached HaltAddress or an
	// instruction could not be executed
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateFetching:
		return "fetching"
	case StateDelaying:
		return "delaying"
	case StateHalted:
		return "halted"
	}
	return "unknown state"
}

// CPU implements the MOS 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	Mem *memory.Memory

	// last result. the result is complete when the LastResult.Final field is
	// true
	LastResult execution.Result

	// if Trace is not nil then a line is written for every instruction
	// executed. the format of the line is not fixed
	Trace io.Writer

	prefs        *preferences.Preferences
	rnd          *random.Random
	instructions []*instructions.Definition

	state State

	// number of calls to Step() required before the next instruction is
	// fetched
	pending int

	// number of cycles consumed by executed instructions since power on
	cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// prefs argument can be nil, in which case the default preferences are used.
// Memory is zeroed and the registers are in the power-on state.
func NewCPU(prefs *preferences.Preferences) *CPU {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	mc := &CPU{
		Mem:          memory.NewMemory(),
		prefs:        prefs,
		instructions: instructions.GetDefinitions(),
	}
	mc.rnd = random.NewRandom(mc)
	mc.PowerOn()

	return mc
}

// Snapshot creates a copy of the CPU in its current state. Memory is copied
// too.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.Mem = mc.Mem.Snapshot()
	n.rnd = random.NewRandom(&n)
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Cycles returns the number of cycles consumed by executed instructions since
// power on. The full cost of an instruction is counted when it is executed.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// PowerOn reinitialises all registers. Does not load the PC from the reset
// vector and does not touch memory. The next call to Step() will call Reset().
func (mc *CPU) PowerOn() {
	mc.LastResult.Reset()
	mc.state = StateReset
	mc.pending = 0
	mc.cycles = 0

	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(uint8(mc.prefs.InitialSP.Get().(int)))
	mc.Status = registers.NewStatusRegister()
	mc.Status.Break = mc.prefs.BreakFlagOnReset.Get().(bool)

	if mc.prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.rnd.NoRewind(0x100)))
		mc.X.Load(uint8(mc.rnd.NoRewind(0x100)))
		mc.Y.Load(uint8(mc.rnd.NoRewind(0x100)))
		mc.SP.Load(uint8(mc.rnd.NoRewind(0x100)))
		mc.Status.FromValue(uint8(mc.rnd.NoRewind(0x100)))
	}
}

// LoadProgram writes the program to memory starting at origin. The reset
// vector is set to origin and the IRQ/BRK vector is set to HaltAddress.
func (mc *CPU) LoadProgram(origin uint16, program []uint8) {
	mc.Mem.Write(origin, program...)
	mc.Mem.Write16(memory.Reset, origin)
	mc.Mem.Write16(memory.IRQ, HaltAddress)
}

// Reset loads the PC from the reset vector. No other register is affected.
func (mc *CPU) Reset() {
	mc.PC.Load(mc.Mem.Read16(memory.Reset))
	mc.LastResult.Reset()
	mc.state = StateFetching
	mc.pending = 0
	logger.Logf(logger.Allow, "CPU", "reset: PC=%s", mc.PC)
}

// Step advances the CPU by one cycle. Returns false if there is no further
// instruction to execute. An error is returned if the instruction could not be
// executed, in which case the CPU is halted.
//
// If the CPU has not been reset then Reset() is called before the first
// instruction is fetched.
func (mc *CPU) Step() (bool, error) {
	switch mc.state {
	case StateReset:
		mc.Reset()
	case StateHalted:
		return false, nil
	case StateDelaying:
		mc.pending--
		if mc.pending <= 0 {
			mc.state = StateFetching
		}
		return true, nil
	}

	if mc.PC.Address() == HaltAddress {
		mc.state = StateHalted
		logger.Logf(logger.Allow, "CPU", "halted after %d cycles", mc.cycles)
		return false, nil
	}

	err := mc.ExecuteInstruction()
	if err != nil {
		mc.state = StateHalted
		return false, err
	}

	mc.pending = mc.LastResult.Cycles - 1
	if mc.pending > 0 {
		mc.state = StateDelaying
	}

	return true, nil
}

// Run calls Reset() and then Step() until there are no more instructions to
// execute or until an error occurs.
func (mc *CPU) Run() error {
	mc.Reset()
	for {
		ok, err := mc.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// ExecuteInstruction executes the instruction at the PC in its entirety,
// regardless of the state of the CPU. Most callers should use Step() or Run()
// instead.
func (mc *CPU) ExecuteInstruction() error {
	eff, err := mc.fetchAndDecode()
	if err != nil {
		return err
	}

	err = mc.apply(eff)
	if err != nil {
		return err
	}

	mc.LastResult.Final = true
	mc.cycles += uint64(eff.Cycles)

	if mc.Trace != nil {
		mc.trace()
	}

	return nil
}

// Decode the instruction at address without executing it. The returned result
// describes the instruction as it would execute with the current register
// values. The state of the CPU is unchanged.
func (mc *CPU) Decode(address uint16) (execution.Result, error) {
	pc := mc.PC
	last := mc.LastResult
	defer func() {
		mc.PC = pc
		mc.LastResult = last
	}()

	mc.PC.Load(address)

	_, err := mc.fetchAndDecode()
	if err != nil {
		return mc.LastResult, err
	}

	// operand bytes not consumed by the addressing mode (the BRK padding byte)
	for mc.LastResult.ByteCount < mc.LastResult.Defn.Bytes {
		mc.read8BitPC()
	}

	mc.LastResult.Final = true

	return mc.LastResult, nil
}

// fetch the opcode at the PC and resolve the addressing mode. LastResult is
// filled in with everything except the Final field.
func (mc *CPU) fetchAndDecode() (Effect, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC()
	defn := mc.instructions[opcode]
	if defn == nil {
		return Effect{}, curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	ar, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return Effect{}, err
	}

	eff := mc.decode(defn, ar)

	mc.LastResult.Cycles = eff.Cycles
	mc.LastResult.PageFault = eff.PageFault
	mc.LastResult.BranchSuccess = eff.Branch
	mc.LastResult.CPUBug = ar.Bug

	return eff, nil
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData for operand bytes
func (mc *CPU) read8BitPC() uint8 {
	v := mc.Mem.Read(mc.PC.Address())
	mc.PC.Add(1)

	switch mc.LastResult.ByteCount {
	case 1:
		mc.LastResult.InstructionData = uint16(v)
	case 2:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}
	mc.LastResult.ByteCount++

	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. Same
// side-effects as read8BitPC.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return uint16(hi)<<8 | uint16(lo)
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment.
func (mc *CPU) PredictRTS() uint16 {
	sp := mc.SP
	sp.Pop()
	lo := mc.Mem.Read(sp.Address())
	sp.Pop()
	hi := mc.Mem.Read(sp.Address())
	return (uint16(hi)<<8 | uint16(lo)) + 1
}
