package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jdisanti/hassel-emu/memory"
)

func mustBuild(t *testing.T, b *memory.Builder) *memory.Map {
	t.Helper()
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() gave unexpected error: %v", err)
	}
	return m
}

func TestResetVector(t *testing.T) {
	rom := []uint8{0x00, 0x80, 0x00, 0x00}
	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, 0xFFFB).ROM(0xFFFC, 0xFFFF, rom))

	c := New(m)

	if got, want := c.Reg.PC, uint16(0x8000); got != want {
		t.Errorf("PC after reset = 0x%04X, want 0x%04X", got, want)
	}
	if !c.Reg.Status.InterruptInhibit() {
		t.Error("interrupt-inhibit flag not set after reset")
	}
}

func TestSimpleProgram(t *testing.T) {
	// LDA #3; STA $00; JMP $FFF6
	rom := []uint8{0xA9, 0x03, 0x85, 0x00, 0x4C, 0xF6, 0xFF, 0x00, 0xF6, 0xFF, 0xF2, 0xFF, 0xF6, 0xFF}
	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, 0xFFF1).ROM(0xFFF2, 0xFFFF, rom))

	c := New(m)
	if got, want := c.Reg.PC, uint16(0xFFF2); got != want {
		t.Fatalf("PC after reset = 0x%04X, want 0x%04X", got, want)
	}

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() (LDA) error: %v", err)
	}
	if got, want := c.Reg.PC, uint16(0xFFF4); got != want {
		t.Errorf("PC after LDA = 0x%04X, want 0x%04X", got, want)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() (STA) error: %v", err)
	}

	if got, want := c.Reg.A, uint8(3); got != want {
		t.Errorf("A = %d, want %d\n%s", got, want, spew.Sdump(c.Reg))
	}
	if got, want := c.mem.DebugReadByte(0x0000), uint8(3); got != want {
		t.Errorf("mem[0x0000] = %d, want %d", got, want)
	}
}

// TestIndirectJMPPageBug builds a ROM where the indirect pointer's low
// byte sits at the end of a page (0x92FF) so the real 6502 fetches the
// pointer's high byte from 0x9200 rather than 0x9300.
func TestIndirectJMPPageBug(t *testing.T) {
	start := uint16(0x9000)
	rom := make([]uint8, 0x10000-int(start))
	set := func(addr uint16, val uint8) { rom[addr-start] = val }

	set(0x9000, 0x4C) // JMP $9010
	set(0x9001, 0x10)
	set(0x9002, 0x90)
	set(0x9010, 0x6C) // JMP ($92FF)
	set(0x9011, 0xFF)
	set(0x9012, 0x92)
	set(0x92FF, 0x34) // pointer low byte
	set(0x9200, 0x12) // pointer high byte, read without carry per the bug
	set(0xFFFC, 0x00)
	set(0xFFFD, 0x90)

	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, start-1).ROM(start, 0xFFFF, rom))
	c := New(m)

	if _, err := c.Step(); err != nil { // JMP absolute -> 0x9010
		t.Fatalf("Step() error: %v", err)
	}
	if _, err := c.Step(); err != nil { // JMP (Indirect) $92FF
		t.Fatalf("Step() error: %v", err)
	}

	if got, want := c.Reg.PC, uint16(0x1234); got != want {
		t.Errorf("PC after indirect JMP = 0x%04X, want 0x%04X (page bug not reproduced)", got, want)
	}
}

func TestZeroPageWrap(t *testing.T) {
	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, 0xFFFF))
	m.WriteByte(0x0000, 101)
	m.WriteByte(0x0100, 213)

	c := New(m)
	c.Reg.X = 0xFF
	c.Reg.PC = 0x0200
	m.WriteByte(0x0200, 0xB5) // LDA $01,X
	m.WriteByte(0x0201, 0x01)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if got, want := c.Reg.A, uint8(101); got != want {
		t.Errorf("A = %d, want %d (zero-page wrap not honored)", got, want)
	}
}

func TestADCOverflow(t *testing.T) {
	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, 0xFFFF))
	c := New(m)
	c.Reg.PC = 0x0200
	c.Reg.A = 0x01
	c.Reg.Status.SetCarry(false)
	m.WriteByte(0x0200, 0x69) // ADC #$7F
	m.WriteByte(0x0201, 0x7F)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() error: %v", err)
	}

	if diff := deep.Equal(c.Reg.A, uint8(0x80)); diff != nil {
		t.Errorf("A mismatch: %v", diff)
	}
	if c.Reg.Status.Carry() {
		t.Error("carry set, want clear")
	}
	if !c.Reg.Status.Negative() {
		t.Error("negative not set")
	}
	if !c.Reg.Status.Overflow() {
		t.Error("overflow not set")
	}
	if c.Reg.Status.Zero() {
		t.Error("zero set, want clear")
	}
}

func TestBRKSequence(t *testing.T) {
	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, 0xFFFF))
	c := New(m)
	c.Reg.PC = 0x1000
	c.Reg.SP = 0xFF
	c.Reg.Status.SetValue(0x00)
	m.WriteByte(0x1000, 0x00) // BRK
	m.WriteByte(0xFFFE, 0x00)
	m.WriteByte(0xFFFF, 0x90)

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() error: %v", err)
	}

	if got, want := c.Reg.PC, uint16(0x9000); got != want {
		t.Errorf("PC after BRK = 0x%04X, want 0x%04X", got, want)
	}
	if got, want := c.Reg.SP, uint8(0xFC); got != want {
		t.Errorf("SP after BRK = 0x%02X, want 0x%02X", got, want)
	}
	if !c.Reg.Status.Break() {
		t.Error("break flag not set after BRK")
	}

	pch := m.DebugReadByte(0x01FF)
	pcl := m.DebugReadByte(0x01FE)
	pushedStatus := m.DebugReadByte(0x01FD)
	if got, want := (uint16(pch)<<8)|uint16(pcl), uint16(0x1002); got != want {
		t.Errorf("pushed return address = 0x%04X, want 0x%04X (low byte must not be masked to 0x0F)", got, want)
	}
	if got, want := pushedStatus, uint8(0x30); got != want {
		t.Errorf("pushed status = 0x%02X, want 0x%02X", got, want)
	}
}

func TestStatusBit5AlwaysSet(t *testing.T) {
	m := mustBuild(t, memory.NewBuilder().RAM(0x0000, 0xFFFF))
	c := New(m)
	c.Reg.Status.SetValue(0x00)
	if c.Reg.Status.Value()&0x20 == 0 {
		t.Error("bit 5 not forced on by SetValue")
	}
}
