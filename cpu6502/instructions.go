package cpu6502

// exec is the signature every mnemonic's semantics implements: given the
// already-resolved operand/address, mutate the CPU/memory and return any
// extra cycles incurred (e.g. a taken branch, a crossed page boundary).
type exec func(c *CPU, r Resolved) int

// setNZ sets the Zero and Negative flags from a result byte, the shared
// tail of nearly every mnemonic.
func (c *CPU) setNZ(v uint8) {
	c.SR.Set(FlagZ, v == 0)
	c.SR.Set(FlagN, v&0x80 != 0)
}

// writeBack stores a computed byte back to wherever it was read from:
// the accumulator for ACCUMULATOR mode, memory otherwise. Used by the
// read-modify-write shift/rotate/inc/dec instructions.
func (c *CPU) writeBack(r Resolved, v uint8) {
	if r.Kind == KindAccumulator {
		c.A.Set(int(v))
	} else {
		c.Mem.WriteByte(r.Address, v)
	}
}

////////////////////////////////////////////////////////////////
// Arithmetic

func execADC(c *CPU, r Resolved) int {
	m := r.Value
	sum := uint16(c.A.Value()) + uint16(m) + uint16(c.SR.Get(FlagC))
	result := uint8(sum)

	c.SR.Set(FlagC, sum > 0xFF)
	c.SR.Set(FlagZ, result == 0)
	c.SR.Set(FlagN, result&0x80 != 0)

	a := c.A.Value() & 0x80
	mm := m & 0x80
	rr := result & 0x80
	c.SR.Set(FlagV, (a == mm) && (a != rr))

	c.A.Set(int(result))
	return 0
}

func execSBC(c *CPU, r Resolved) int {
	m := r.Value
	notM := m ^ 0xFF
	sum := uint16(c.A.Value()) + uint16(notM) + uint16(c.SR.Get(FlagC))
	result := uint8(sum)

	c.SR.Set(FlagC, sum > 0xFF)
	c.SR.Set(FlagZ, result == 0)
	c.SR.Set(FlagN, result&0x80 != 0)

	a := c.A.Value() & 0x80
	mm := m & 0x80
	rr := result & 0x80
	c.SR.Set(FlagV, (a != mm) && (mm == rr))

	c.A.Set(int(result))
	return 0
}

////////////////////////////////////////////////////////////////
// Logical

func execAND(c *CPU, r Resolved) int {
	c.A.Set(int(c.A.Value() & r.Value))
	c.setNZ(c.A.Value())
	return 0
}

func execORA(c *CPU, r Resolved) int {
	c.A.Set(int(c.A.Value() | r.Value))
	c.setNZ(c.A.Value())
	return 0
}

func execEOR(c *CPU, r Resolved) int {
	c.A.Set(int(c.A.Value() ^ r.Value))
	c.setNZ(c.A.Value())
	return 0
}

func execBIT(c *CPU, r Resolved) int {
	result := c.A.Value() & r.Value
	c.SR.Set(FlagZ, result == 0)
	c.SR.Set(FlagN, r.Value&0x80 != 0)
	c.SR.Set(FlagV, r.Value&0x40 != 0)
	return 0
}

////////////////////////////////////////////////////////////////
// Shifts and rotates

func execASL(c *CPU, r Resolved) int {
	c.SR.Set(FlagC, r.Value&0x80 != 0)
	result := r.Value << 1
	c.writeBack(r, result)
	c.setNZ(result)
	return 0
}

func execLSR(c *CPU, r Resolved) int {
	c.SR.Set(FlagC, r.Value&0x01 != 0)
	result := r.Value >> 1
	c.writeBack(r, result)
	c.SR.Set(FlagZ, result == 0)
	c.SR.Set(FlagN, false)
	return 0
}

func execROL(c *CPU, r Resolved) int {
	carryIn := c.SR.Get(FlagC)
	c.SR.Set(FlagC, r.Value&0x80 != 0)
	result := (r.Value << 1) | carryIn
	c.writeBack(r, result)
	c.setNZ(result)
	return 0
}

func execROR(c *CPU, r Resolved) int {
	carryIn := c.SR.Get(FlagC)
	c.SR.Set(FlagC, r.Value&0x01 != 0)
	result := (r.Value >> 1) | (carryIn << 7)
	c.writeBack(r, result)
	c.setNZ(result)
	return 0
}

////////////////////////////////////////////////////////////////
// Compares

func execCMP(c *CPU, r Resolved) int {
	result := c.A.Value() - r.Value
	c.SR.Set(FlagN, result&0x80 != 0)
	c.SR.Set(FlagZ, c.A.Value() == r.Value)
	c.SR.Set(FlagC, c.A.Value() >= r.Value)
	return 0
}

func execCPX(c *CPU, r Resolved) int {
	result := c.X.Value() - r.Value
	c.SR.Set(FlagN, result&0x80 != 0)
	c.SR.Set(FlagZ, c.X.Value() == r.Value)
	c.SR.Set(FlagC, c.X.Value() >= r.Value)
	return 0
}

func execCPY(c *CPU, r Resolved) int {
	result := c.Y.Value() - r.Value
	c.SR.Set(FlagN, result&0x80 != 0)
	c.SR.Set(FlagZ, c.Y.Value() == r.Value)
	c.SR.Set(FlagC, c.Y.Value() >= r.Value)
	return 0
}

////////////////////////////////////////////////////////////////
// Increments / decrements

func execINC(c *CPU, r Resolved) int {
	result := r.Value + 1
	c.writeBack(r, result)
	c.setNZ(result)
	return 0
}

func execDEC(c *CPU, r Resolved) int {
	result := r.Value - 1
	c.writeBack(r, result)
	c.setNZ(result)
	return 0
}

func execINX(c *CPU, r Resolved) int {
	c.X.Set(int(c.X.Value() + 1))
	c.setNZ(c.X.Value())
	return 0
}

func execINY(c *CPU, r Resolved) int {
	c.Y.Set(int(c.Y.Value() + 1))
	c.setNZ(c.Y.Value())
	return 0
}

func execDEX(c *CPU, r Resolved) int {
	c.X.Set(int(c.X.Value() - 1))
	c.setNZ(c.X.Value())
	return 0
}

func execDEY(c *CPU, r Resolved) int {
	c.Y.Set(int(c.Y.Value() - 1))
	c.setNZ(c.Y.Value())
	return 0
}

////////////////////////////////////////////////////////////////
// Branches — all RELATIVE. Taken branches cost one extra cycle, two if
// the branch target crosses a page boundary.

func branch(c *CPU, r Resolved, taken bool) int {
	if !taken {
		return 0
	}
	base := c.PC.Value()
	c.PC.Set(int(r.Address))
	if base&0xFF00 != r.Address&0xFF00 {
		return 2
	}
	return 1
}

func execBCC(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagC) == 0) }
func execBCS(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagC) == 1) }
func execBEQ(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagZ) == 1) }
func execBNE(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagZ) == 0) }
func execBMI(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagN) == 1) }
func execBPL(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagN) == 0) }
func execBVC(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagV) == 0) }
func execBVS(c *CPU, r Resolved) int { return branch(c, r, c.SR.Get(FlagV) == 1) }

////////////////////////////////////////////////////////////////
// Jumps / subroutines

func execJMP(c *CPU, r Resolved) int {
	c.PC.Set(int(r.Address))
	return 0
}

func execJSR(c *CPU, r Resolved) int {
	retAddr := c.PC.Value() - 1
	c.push(byte(retAddr >> 8))
	c.push(byte(retAddr))
	c.PC.Set(int(r.Address))
	return 0
}

func execRTS(c *CPU, r Resolved) int {
	lo := c.pop()
	hi := c.pop()
	c.PC.Set(int(uint16(hi)<<8|uint16(lo)) + 1)
	return 0
}

////////////////////////////////////////////////////////////////
// Stack

func execPHA(c *CPU, r Resolved) int {
	c.push(c.A.Value())
	return 0
}

func execPHP(c *CPU, r Resolved) int {
	c.push(c.SR.Packed())
	return 0
}

func execPLA(c *CPU, r Resolved) int {
	c.A.Set(int(c.pop()))
	c.setNZ(c.A.Value())
	return 0
}

func execPLP(c *CPU, r Resolved) int {
	c.SR.SetPacked(c.pop())
	return 0
}

////////////////////////////////////////////////////////////////
// Transfers

func execTAX(c *CPU, r Resolved) int {
	c.X.Set(int(c.A.Value()))
	c.setNZ(c.X.Value())
	return 0
}

func execTAY(c *CPU, r Resolved) int {
	c.Y.Set(int(c.A.Value()))
	c.setNZ(c.Y.Value())
	return 0
}

func execTSX(c *CPU, r Resolved) int {
	c.X.Set(int(c.SP.Value()))
	c.setNZ(c.X.Value())
	return 0
}

func execTXA(c *CPU, r Resolved) int {
	c.A.Set(int(c.X.Value()))
	c.setNZ(c.A.Value())
	return 0
}

func execTXS(c *CPU, r Resolved) int {
	c.SP.Set(int(c.X.Value()))
	return 0
}

func execTYA(c *CPU, r Resolved) int {
	c.A.Set(int(c.Y.Value()))
	c.setNZ(c.A.Value())
	return 0
}

////////////////////////////////////////////////////////////////
// Load / store

func execLDA(c *CPU, r Resolved) int {
	c.A.Set(int(r.Value))
	c.setNZ(c.A.Value())
	return 0
}

func execLDX(c *CPU, r Resolved) int {
	c.X.Set(int(r.Value))
	c.setNZ(c.X.Value())
	return 0
}

func execLDY(c *CPU, r Resolved) int {
	c.Y.Set(int(r.Value))
	c.setNZ(c.Y.Value())
	return 0
}

func execSTA(c *CPU, r Resolved) int {
	c.Mem.WriteByte(r.Address, c.A.Value())
	return 0
}

func execSTX(c *CPU, r Resolved) int {
	c.Mem.WriteByte(r.Address, c.X.Value())
	return 0
}

func execSTY(c *CPU, r Resolved) int {
	c.Mem.WriteByte(r.Address, c.Y.Value())
	return 0
}

////////////////////////////////////////////////////////////////
// Flag ops

func execCLC(c *CPU, r Resolved) int { c.SR.Set(FlagC, false); return 0 }
func execSEC(c *CPU, r Resolved) int { c.SR.Set(FlagC, true); return 0 }
func execCLI(c *CPU, r Resolved) int { c.SR.Set(FlagI, false); return 0 }
func execSEI(c *CPU, r Resolved) int { c.SR.Set(FlagI, true); return 0 }
func execCLD(c *CPU, r Resolved) int { c.SR.Set(FlagD, false); return 0 }
func execSED(c *CPU, r Resolved) int { c.SR.Set(FlagD, true); return 0 }
func execCLV(c *CPU, r Resolved) int { c.SR.Set(FlagV, false); return 0 }

////////////////////////////////////////////////////////////////
// Control

// execBRK sets the halt sentinel. This emulator reduces BRK to "set B and
// halt" rather than pushing PC/SR and jumping through the IRQ vector —
// hardware interrupts are a non-goal.
func execBRK(c *CPU, r Resolved) int {
	c.SR.Set(FlagB, true)
	c.Halted = true
	return 0
}

// execRTI pulls SR then PC, strictly, without forcing B=1. It does not
// clear Halted — returning from a break is a different
// concern than the run/stop sentinel BRK set.
func execRTI(c *CPU, r Resolved) int {
	c.SR.SetPacked(c.pop())
	lo := c.pop()
	hi := c.pop()
	c.PC.Set(int(uint16(hi)<<8 | uint16(lo)))
	return 0
}

func execNOP(c *CPU, r Resolved) int { return 0 }
