package disassemble

import (
	"strings"
	"testing"

	"github.com/jdisanti/hassel-emu/memory"
)

func TestStepFormatsImmediateLoad(t *testing.T) {
	m, err := memory.NewBuilder().RAM(0x0000, 0xFFFF).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	m.WriteByte(0x0200, 0xA9) // LDA #$7F
	m.WriteByte(0x0201, 0x7F)

	line, n := Step(0x0200, m)
	if n != 2 {
		t.Errorf("byte count = %d, want 2", n)
	}
	if !strings.Contains(line, "LDA") || !strings.Contains(line, "#$7F") {
		t.Errorf("line = %q, want it to mention LDA #$7F", line)
	}
}

func TestStepFormatsInvalidOpcode(t *testing.T) {
	m, err := memory.NewBuilder().RAM(0x0000, 0xFFFF).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	m.WriteByte(0x0200, 0x02) // never defined in the opcode table

	line, n := Step(0x0200, m)
	if n != 1 {
		t.Errorf("byte count = %d, want 1", n)
	}
	if !strings.Contains(line, "???") {
		t.Errorf("line = %q, want it to flag the unknown opcode", line)
	}
}
