package instruction

import (
	"testing"

	"github.com/jdisanti/hassel-emu/opcode"
	"github.com/jdisanti/hassel-emu/register"
)

// adcImmediate runs ADC with an immediate operand against a register
// file carrying the given accumulator and carry-in, returning the
// post-instruction registers.
func adcImmediate(t *testing.T, a, operand uint8, carryIn bool) register.File {
	t.Helper()
	reg := register.New()
	reg.A = a
	reg.Status.SetCarry(carryIn)
	result := ADC(opcode.Immediate, opcode.Param{Byte: operand}, nil, Result{Reg: reg})
	return result.Reg
}

func sbcImmediate(t *testing.T, a, operand uint8, carryIn bool) register.File {
	t.Helper()
	reg := register.New()
	reg.A = a
	reg.Status.SetCarry(carryIn)
	result := SBC(opcode.Immediate, opcode.Param{Byte: operand}, nil, Result{Reg: reg})
	return result.Reg
}

func TestADCOverflow(t *testing.T) {
	tests := []struct {
		name         string
		a, operand   uint8
		carryIn      bool
		wantA        uint8
		wantCarry    bool
		wantOverflow bool
	}{
		{"positive + positive overflows into negative", 0x7F, 0x01, false, 0x80, false, true},
		{"negative + negative overflows into positive", 0x80, 0x80, false, 0x00, true, true},
		{"positive + negative never overflows", 0x50, 0xD0, false, 0x20, true, false},
		{"carry-in propagates into the sum", 0x01, 0x01, true, 0x03, false, false},
		{"unsigned wraparound sets carry without signed overflow", 0xFF, 0x01, false, 0x00, true, false},
	}

	for _, tt := range tests {
		got := adcImmediate(t, tt.a, tt.operand, tt.carryIn)
		if got.A != tt.wantA {
			t.Errorf("%s: A = 0x%02X, want 0x%02X", tt.name, got.A, tt.wantA)
		}
		if got.Status.Carry() != tt.wantCarry {
			t.Errorf("%s: Carry = %v, want %v", tt.name, got.Status.Carry(), tt.wantCarry)
		}
		if got.Status.Overflow() != tt.wantOverflow {
			t.Errorf("%s: Overflow = %v, want %v", tt.name, got.Status.Overflow(), tt.wantOverflow)
		}
	}
}

// TestSBCCorrespondsToADC exercises the standard identity that on real
// 6502 hardware SBC(a, operand) with carry-in c behaves like
// ADC(a, ^operand) with the same carry-in, since SBC is implemented as
// an addition of the operand's ones' complement.
func TestSBCCorrespondsToADC(t *testing.T) {
	tests := []struct {
		a, operand uint8
		carryIn    bool
	}{
		{0x50, 0xF0, true},
		{0x50, 0xB0, true},
		{0xD0, 0x70, true},
		{0x00, 0x01, true},
		{0x80, 0x01, false},
	}

	for _, tt := range tests {
		sub := sbcImmediate(t, tt.a, tt.operand, tt.carryIn)
		add := adcImmediate(t, tt.a, ^tt.operand, tt.carryIn)

		if sub.A != add.A {
			t.Errorf("SBC(0x%02X,0x%02X,carry=%v).A = 0x%02X, want 0x%02X (ADC with inverted operand)",
				tt.a, tt.operand, tt.carryIn, sub.A, add.A)
		}
		if sub.Status.Carry() != add.Status.Carry() {
			t.Errorf("SBC(0x%02X,0x%02X,carry=%v).Carry = %v, want %v",
				tt.a, tt.operand, tt.carryIn, sub.Status.Carry(), add.Status.Carry())
		}
		if sub.Status.Overflow() != add.Status.Overflow() {
			t.Errorf("SBC(0x%02X,0x%02X,carry=%v).Overflow = %v, want %v",
				tt.a, tt.operand, tt.carryIn, sub.Status.Overflow(), add.Status.Overflow())
		}
	}
}

func TestSBCBorrow(t *testing.T) {
	got := sbcImmediate(t, 0x00, 0x01, true) // no borrow in, 0 - 1
	if got.A != 0xFF {
		t.Errorf("A = 0x%02X, want 0xFF", got.A)
	}
	if got.Status.Carry() {
		t.Error("Carry = true, want false (borrow occurred)")
	}
}
