package cpu6502

import (
	"io"
	"log"

	"github.com/pkg/errors"
)

const stackBase = 0x0100

// There is no reset/IRQ/NMI vector table here: BRK is treated as a halt
// sentinel rather than a real interrupt. PC after Reset is simply zero;
// callers set it explicitly before Step/Run, the way the debugger's `pc`
// command does.

// CPU is the full architectural state of a MOS 6502: three 8-bit general
// registers, the stack pointer, the program counter, the packed status
// byte, and the memory it executes against.
type CPU struct {
	A, X, Y, SP Register8
	PC          Register16
	SR          StatusRegister

	Mem *Memory

	// CycleCount accumulates the emulated cycle cost of every instruction
	// executed, including branch-taken and page-crossing penalties.
	CycleCount uint64

	// Halted is set by BRK and checked by Run between steps. It is
	// distinct from SR's B flag: B is architectural state visible to
	// PHP/PLP/RTI, Halted is this emulator's own run/stop sentinel.
	Halted bool

	Logger *log.Logger
}

// NewCPU returns a CPU wired to mem with its registers in their power-up
// state. The contents of mem are left as they are.
func NewCPU(mem *Memory) *CPU {
	c := &CPU{
		Mem:    mem,
		Logger: log.New(io.Discard, "", 0),
	}
	c.resetRegisters()
	return c
}

// Reset restores power-up state: A/X/Y to zero, SP to 0xFF, SR to the
// all-zero-but-bit-5 value, PC to zero, and memory zeroed.
func (c *CPU) Reset() {
	c.resetRegisters()
	c.Mem.Zero()
}

// resetRegisters restores the register, cycle-count and halt state that
// Reset restores, without touching memory.
func (c *CPU) resetRegisters() {
	c.A.Set(0)
	c.X.Set(0)
	c.Y.Set(0)
	c.SP.Set(0xFF)
	c.PC.Set(0)
	c.SR = NewStatusRegister()
	c.CycleCount = 0
	c.Halted = false
}

// push writes v to the stack page at the current SP and decrements SP,
// wrapping within page 1 (0x0100-0x01FF) as real 6502 hardware does — it
// never grows into zero page.
func (c *CPU) push(v uint8) {
	c.Mem.WriteByte(uint16(stackBase+int(c.SP.Value())), v)
	c.SP.Set(int(c.SP.Value()) - 1)
}

// pop increments SP and reads the byte now under it.
func (c *CPU) pop() uint8 {
	c.SP.Set(int(c.SP.Value()) + 1)
	return c.Mem.ReadByte(uint16(stackBase + int(c.SP.Value())))
}

// Step fetches, decodes and executes a single instruction at PC, advancing
// PC past it and returning the number of cycles it took. It
// returns ErrIllegalOpcode for any of the 105 undefined opcodes; no
// undocumented-opcode behavior is modeled.
func (c *CPU) Step() (int, error) {
	opcodeAddr := c.PC.Value()
	opcode := c.Mem.ReadByte(opcodeAddr)
	desc := opcodeTable[opcode]

	if !desc.Legal {
		return 0, errors.Wrapf(ErrIllegalOpcode, "opcode %#02x at %#04x", opcode, opcodeAddr)
	}

	operandLen := desc.Mode.OperandBytes()
	operand, err := c.Mem.ReadRange(int(opcodeAddr)+1, operandLen)
	if err != nil {
		return 0, errors.Wrapf(err, "reading operand for %s at %#04x", desc.Mnemonic, opcodeAddr)
	}

	c.PC.Set(int(opcodeAddr) + 1 + operandLen)

	resolved, err := Resolve(desc.Mode, operand, c)
	if err != nil {
		return 0, errors.Wrapf(err, "resolving operand for %s at %#04x", desc.Mnemonic, opcodeAddr)
	}

	extra := desc.Exec(c, resolved)

	cycles := int(desc.BaseCycles) + extra
	if resolved.PageCrossed && desc.PageCrossPenalty {
		cycles++
	}
	c.CycleCount += uint64(cycles)

	c.Logger.Printf("%#04x: %s (%d cycles)", opcodeAddr, desc.Mnemonic, cycles)

	return cycles, nil
}

// Run steps the CPU until Halted is set or Step returns an error.
func (c *CPU) Run() error {
	for !c.Halted {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
