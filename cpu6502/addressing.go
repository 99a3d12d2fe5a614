package cpu6502

import "github.com/pkg/errors"

// Mode identifies one of the 13 addressing modes the 6502 uses to locate
// an instruction's operand.
type Mode uint8

const (
	Accumulator Mode = iota
	Absolute
	AbsoluteX
	AbsoluteY
	Immediate
	Implied
	Indirect
	IndexedXIndirect
	IndirectYIndexed
	Relative
	Zeropage
	ZeropageX
	ZeropageY
)

// OperandBytes returns the number of operand bytes a mode expects,
// following the instruction opcode byte.
func (m Mode) OperandBytes() int {
	switch m {
	case Accumulator, Implied:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}

// ResolvedKind distinguishes the four shapes an addressing mode can
// resolve to (design note: a sum type over operand/effective-address).
type ResolvedKind uint8

const (
	KindAccumulator ResolvedKind = iota
	KindImplied
	KindImmediate
	KindMemory
)

// Resolved is what an addressing mode computes from (mode, operand bytes,
// cpu, memory): either no operand (Implied), the accumulator, an
// immediate value, or a memory operand with its effective address.
type Resolved struct {
	Kind        ResolvedKind
	Value       uint8  // operand byte, valid for Accumulator/Immediate/Memory
	Address     uint16 // effective address, valid for Memory
	PageCrossed bool   // whether indexing crossed a page boundary
}

// HasAddress reports whether this resolution carries an effective memory
// address (false for Accumulator, Implied and Immediate).
func (r Resolved) HasAddress() bool {
	return r.Kind == KindMemory
}

// Resolve computes the operand and effective address for mode, given the
// instruction's raw operand bytes and the current CPU/memory state. PC is
// read, never written: callers must have already advanced it past the
// whole instruction, since RELATIVE addressing and the disassembler both
// compute their target off of the post-fetch PC.
func Resolve(mode Mode, operandBytes []byte, cpu *CPU) (Resolved, error) {
	if len(operandBytes) != mode.OperandBytes() {
		return Resolved{}, errors.Wrapf(ErrDecodeLength,
			"mode %d expects %d operand bytes, got %d", mode, mode.OperandBytes(), len(operandBytes))
	}

	mem := cpu.Mem

	switch mode {
	case Accumulator:
		return Resolved{Kind: KindAccumulator, Value: cpu.A.Value()}, nil

	case Implied:
		return Resolved{Kind: KindImplied}, nil

	case Immediate:
		return Resolved{Kind: KindImmediate, Value: operandBytes[0]}, nil

	case Absolute:
		addr := uint16(operandBytes[1])<<8 | uint16(operandBytes[0])
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil

	case AbsoluteX:
		base := uint16(operandBytes[1])<<8 | uint16(operandBytes[0])
		addr := base + uint16(cpu.X.Value())
		return Resolved{
			Kind:        KindMemory,
			Address:     addr,
			Value:       mem.ReadByte(addr),
			PageCrossed: addr&0xFF00 != base&0xFF00,
		}, nil

	case AbsoluteY:
		base := uint16(operandBytes[1])<<8 | uint16(operandBytes[0])
		addr := base + uint16(cpu.Y.Value())
		return Resolved{
			Kind:        KindMemory,
			Address:     addr,
			Value:       mem.ReadByte(addr),
			PageCrossed: addr&0xFF00 != base&0xFF00,
		}, nil

	case Indirect:
		ptr := uint16(operandBytes[1])<<8 | uint16(operandBytes[0])
		addr := mem.ReadWord(ptr)
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil

	case IndexedXIndirect:
		p := uint16(operandBytes[0]+cpu.X.Value()) & 0x00FF
		lo := mem.ReadByte(p)
		hi := mem.ReadByte((p + 1) & 0x00FF)
		addr := uint16(hi)<<8 | uint16(lo)
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil

	case IndirectYIndexed:
		p := uint16(operandBytes[0]) & 0x00FF
		lo := mem.ReadByte(p)
		hi := mem.ReadByte((p + 1) & 0x00FF)
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(cpu.Y.Value())
		return Resolved{
			Kind:        KindMemory,
			Address:     addr,
			Value:       mem.ReadByte(addr),
			PageCrossed: addr&0xFF00 != base&0xFF00,
		}, nil

	case Relative:
		offset := ToSigned(operandBytes[0])
		addr := uint16(int32(cpu.PC.Value()) + int32(offset))
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil

	case Zeropage:
		addr := uint16(operandBytes[0])
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil

	case ZeropageX:
		addr := uint16(operandBytes[0]+cpu.X.Value()) & 0x00FF
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil

	case ZeropageY:
		addr := uint16(operandBytes[0]+cpu.Y.Value()) & 0x00FF
		return Resolved{Kind: KindMemory, Address: addr, Value: mem.ReadByte(addr)}, nil
	}

	return Resolved{}, errors.Wrapf(ErrDecodeLength, "unknown address mode %d", mode)
}
