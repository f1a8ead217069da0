package memory

import "testing"

func TestRAMReadAfterWrite(t *testing.T) {
	m, err := NewBuilder().RAM(0x0000, 0xFFFF).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	m.WriteByte(0x1234, 0x42)
	if got := m.ReadByte(0x1234); got != 0x42 {
		t.Errorf("ReadByte(0x1234) = 0x%02X, want 0x42", got)
	}
	if got := m.DebugReadByte(0x1234); got != 0x42 {
		t.Errorf("DebugReadByte(0x1234) = 0x%02X, want 0x42", got)
	}
}

func TestROMWriteIsNoOp(t *testing.T) {
	rom := []uint8{0xDE, 0xAD}
	m, err := NewBuilder().RAM(0x0000, 0xFFFD).ROM(0xFFFE, 0xFFFF, rom).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	m.WriteByte(0xFFFE, 0xFF)
	if got := m.ReadByte(0xFFFE); got != 0xDE {
		t.Errorf("ReadByte(0xFFFE) after write = 0x%02X, want unchanged 0xDE", got)
	}
}

// probe is a Device whose reads and writes are all observable, so
// tests can tell a debug read apart from a normal one.
type probe struct {
	debugReads int
	mutReads   int
	writes     int
	val        uint8
}

func (p *probe) ReadByte(uint16) uint8 {
	p.debugReads++
	return p.val
}
func (p *probe) ReadByteMut(uint16) uint8 {
	p.mutReads++
	p.val++
	return p.val
}
func (p *probe) WriteByte(uint16, uint8)    { p.writes++ }
func (p *probe) RequiresStep() bool         { return false }
func (p *probe) Step(*Map) (Interrupt, bool) { return Interrupt{}, false }

func TestDebugReadDoesNotPerturbDevice(t *testing.T) {
	p := &probe{}
	m, err := NewBuilder().RAM(0x0000, 0xDFFF).Peripheral(0xE000, 0xE000, p).ROM(0xE001, 0xFFFF, make([]uint8, 0x1FFF)).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	for i := 0; i < 5; i++ {
		m.DebugReadByte(0xE000)
	}
	if p.mutReads != 0 {
		t.Errorf("DebugReadByte drove %d mutating reads, want 0", p.mutReads)
	}
	if p.debugReads != 5 {
		t.Errorf("debugReads = %d, want 5", p.debugReads)
	}

	m.ReadByte(0xE000)
	if p.mutReads != 1 {
		t.Errorf("ReadByte did not drive exactly one mutating read: got %d", p.mutReads)
	}
}

func TestDMASliceUsesNormalReads(t *testing.T) {
	m, err := NewBuilder().RAM(0x0000, 0xFFFF).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for i := uint16(0); i < 4; i++ {
		m.WriteByte(0x2000+i, uint8(i)+1)
	}

	got := m.DMASlice(0x2000, 4)
	want := []uint8{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DMASlice[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
