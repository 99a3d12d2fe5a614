package cpu6502

import (
	"fmt"
	"strings"
	"testing"
)

func TestDisassembleOneImmediate(t *testing.T) {
	c := newTestCPU()
	c.Mem.Load(0x0000, []byte{0xA9, 0x42})
	text, length := disassembleOne(c, 0x0000)
	if length != 2 {
		t.Errorf("length = %d, want 2", length)
	}
	if !strings.HasPrefix(text, fmt.Sprintf("%#04x:", 0x0000)) {
		t.Errorf("text = %q, missing address prefix", text)
	}
	if !strings.Contains(text, "LDA #$42") {
		t.Errorf("text = %q, want it to contain %q", text, "LDA #$42")
	}
}

func TestDisassembleOneIndirectModes(t *testing.T) {
	c := newTestCPU()
	c.Mem.Load(0x0000, []byte{0x6C, 0x34, 0x12}) // JMP ($1234)
	c.Mem.Load(0x0003, []byte{0xA1, 0x10})       // LDA ($10,X)
	c.Mem.Load(0x0005, []byte{0xB1, 0x20})       // LDA ($20),Y

	text1, l1 := disassembleOne(c, 0x0000)
	if l1 != 3 || !strings.Contains(text1, "JMP ($1234)") {
		t.Errorf("got %q len %d", text1, l1)
	}

	text2, l2 := disassembleOne(c, 0x0003)
	if l2 != 2 || !strings.Contains(text2, "LDA ($10,X)") {
		t.Errorf("got %q len %d", text2, l2)
	}

	text3, l3 := disassembleOne(c, 0x0005)
	if l3 != 2 || !strings.Contains(text3, "LDA ($20),Y") {
		t.Errorf("got %q len %d", text3, l3)
	}
}

func TestDisassembleOneBranchResolvesTarget(t *testing.T) {
	c := newTestCPU()
	c.Mem.Load(0x0100, []byte{0xF0, 0x05}) // BEQ +5, target = 0x0100 + 2 + 5
	text, _ := disassembleOne(c, 0x0100)
	if !strings.Contains(text, "BEQ $0107") {
		t.Errorf("text = %q, want it to contain %q", text, "BEQ $0107")
	}
}

func TestDisassembleOneIllegalOpcode(t *testing.T) {
	c := newTestCPU()
	c.Mem.WriteByte(0x0000, 0x02)
	text, length := disassembleOne(c, 0x0000)
	if length != 1 {
		t.Errorf("length = %d, want 1", length)
	}
	if !strings.Contains(text, "???") {
		t.Errorf("text = %q, want it to mark the opcode as illegal", text)
	}
}

func TestDisassembleRange(t *testing.T) {
	c := newTestCPU()
	c.Mem.Load(0x0000, []byte{0xA9, 0x01, 0xA9, 0x02, 0x00})
	out := Disassemble(c, 0x0000, 0x0004)
	if len(out) != 3 {
		t.Errorf("len(out) = %d, want 3", len(out))
	}
	if _, ok := out[0x0000]; !ok {
		t.Error("missing entry at 0x0000")
	}
	if _, ok := out[0x0002]; !ok {
		t.Error("missing entry at 0x0002")
	}
	if _, ok := out[0x0004]; !ok {
		t.Error("missing entry at 0x0004")
	}
}
