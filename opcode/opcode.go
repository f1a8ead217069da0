// Package opcode holds the static decode table mapping a 6502 opcode
// byte to its mnemonic, instruction class, addressing mode, length,
// and base cycle cost.
package opcode

import "fmt"

// Mode enumerates the 6502 addressing modes.
type Mode int

const (
	kMODE_UNIMPLEMENTED Mode = iota // Start of valid mode enumerations.
	Implied
	Immediate
	ZeroPage
	ZeroPageOffsetX
	ZeroPageOffsetY
	Absolute
	AbsoluteOffsetX
	AbsoluteOffsetY
	Indirect
	PreIndirectX
	PostIndirectY
	PCOffset
	kMODE_MAX // End of mode enumerations.
)

// Class enumerates the instruction classes; the executor dispatches on
// this to find the handler function.
type Class int

const (
	kCLASS_UNIMPLEMENTED Class = iota // Start of valid class enumerations.
	Nop
	Dop
	Top
	Brk
	Clc
	Cld
	Cli
	Clv
	Sec
	Sed
	Sei
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Pha
	Php
	Pla
	Plp
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
	Bit
	Cmp
	Cpx
	Cpy
	Bcc
	Bcs
	Beq
	Bmi
	Bne
	Bpl
	Bvc
	Bvs
	Jmp
	Jsr
	Rts
	Rti
	And
	Asl
	Lsr
	Eor
	Ora
	Rol
	Ror
	Adc
	Sbc
	Dec
	Dex
	Dey
	Inc
	Inx
	Iny
	kCLASS_MAX // End of class enumerations.
)

// Param is a decoded instruction operand: none, a single byte, or a
// little-endian word. Exactly one of the three is meaningful,
// determined by the owning Code's Len.
type Param struct {
	Byte uint8
	Word uint16
}

// AsU16 returns the operand widened to 16 bits, regardless of whether
// it was encoded as a byte or a word.
func (p Param) AsU16() uint16 {
	if p.Word != 0 {
		return p.Word
	}
	return uint16(p.Byte)
}

// Code is a single row of the opcode table.
type Code struct {
	Value      uint8
	Name       string
	Class      Class
	Mode       Mode
	Len        uint8
	BaseCycles uint8
}

// Op is a fully decoded instruction: its table entry plus the operand
// bytes read from memory at PC.
type Op struct {
	Code  Code
	Param Param
}

// table is indexed by opcode byte. A zero-value entry (Name == "")
// means that byte has no defined instruction and decoding it is a
// fatal error, matching real 6502 behavior for the "jam" opcodes and
// deliberately excluding the NMOS combination opcodes this emulator
// does not implement.
var table [256]Code

func def(value uint8, name string, class Class, mode Mode, length, cycles uint8) {
	table[value] = Code{Value: value, Name: name, Class: class, Mode: mode, Len: length, BaseCycles: cycles}
}

func init() {
	// Load/store.
	def(0xA9, "LDA", Lda, Immediate, 2, 2)
	def(0xA5, "LDA", Lda, ZeroPage, 2, 3)
	def(0xB5, "LDA", Lda, ZeroPageOffsetX, 2, 4)
	def(0xAD, "LDA", Lda, Absolute, 3, 4)
	def(0xBD, "LDA", Lda, AbsoluteOffsetX, 3, 4)
	def(0xB9, "LDA", Lda, AbsoluteOffsetY, 3, 4)
	def(0xA1, "LDA", Lda, PreIndirectX, 2, 6)
	def(0xB1, "LDA", Lda, PostIndirectY, 2, 5)

	def(0xA2, "LDX", Ldx, Immediate, 2, 2)
	def(0xA6, "LDX", Ldx, ZeroPage, 2, 3)
	def(0xB6, "LDX", Ldx, ZeroPageOffsetY, 2, 4)
	def(0xAE, "LDX", Ldx, Absolute, 3, 4)
	def(0xBE, "LDX", Ldx, AbsoluteOffsetY, 3, 4)

	def(0xA0, "LDY", Ldy, Immediate, 2, 2)
	def(0xA4, "LDY", Ldy, ZeroPage, 2, 3)
	def(0xB4, "LDY", Ldy, ZeroPageOffsetX, 2, 4)
	def(0xAC, "LDY", Ldy, Absolute, 3, 4)
	def(0xBC, "LDY", Ldy, AbsoluteOffsetX, 3, 4)

	def(0x85, "STA", Sta, ZeroPage, 2, 3)
	def(0x95, "STA", Sta, ZeroPageOffsetX, 2, 4)
	def(0x8D, "STA", Sta, Absolute, 3, 4)
	def(0x9D, "STA", Sta, AbsoluteOffsetX, 3, 5)
	def(0x99, "STA", Sta, AbsoluteOffsetY, 3, 5)
	def(0x81, "STA", Sta, PreIndirectX, 2, 6)
	def(0x91, "STA", Sta, PostIndirectY, 2, 6)

	def(0x86, "STX", Stx, ZeroPage, 2, 3)
	def(0x96, "STX", Stx, ZeroPageOffsetY, 2, 4)
	def(0x8E, "STX", Stx, Absolute, 3, 4)

	def(0x84, "STY", Sty, ZeroPage, 2, 3)
	def(0x94, "STY", Sty, ZeroPageOffsetX, 2, 4)
	def(0x8C, "STY", Sty, Absolute, 3, 4)

	// Transfer.
	def(0xAA, "TAX", Tax, Implied, 1, 2)
	def(0xA8, "TAY", Tay, Implied, 1, 2)
	def(0xBA, "TSX", Tsx, Implied, 1, 2)
	def(0x8A, "TXA", Txa, Implied, 1, 2)
	def(0x9A, "TXS", Txs, Implied, 1, 2)
	def(0x98, "TYA", Tya, Implied, 1, 2)

	// Stack.
	def(0x48, "PHA", Pha, Implied, 1, 3)
	def(0x08, "PHP", Php, Implied, 1, 3)
	def(0x68, "PLA", Pla, Implied, 1, 4)
	def(0x28, "PLP", Plp, Implied, 1, 4)

	// Flags.
	def(0x18, "CLC", Clc, Implied, 1, 2)
	def(0xD8, "CLD", Cld, Implied, 1, 2)
	def(0x58, "CLI", Cli, Implied, 1, 2)
	def(0xB8, "CLV", Clv, Implied, 1, 2)
	def(0x38, "SEC", Sec, Implied, 1, 2)
	def(0xF8, "SED", Sed, Implied, 1, 2)
	def(0x78, "SEI", Sei, Implied, 1, 2)

	// Arithmetic.
	def(0x69, "ADC", Adc, Immediate, 2, 2)
	def(0x65, "ADC", Adc, ZeroPage, 2, 3)
	def(0x75, "ADC", Adc, ZeroPageOffsetX, 2, 4)
	def(0x6D, "ADC", Adc, Absolute, 3, 4)
	def(0x7D, "ADC", Adc, AbsoluteOffsetX, 3, 4)
	def(0x79, "ADC", Adc, AbsoluteOffsetY, 3, 4)
	def(0x61, "ADC", Adc, PreIndirectX, 2, 6)
	def(0x71, "ADC", Adc, PostIndirectY, 2, 5)

	def(0xE9, "SBC", Sbc, Immediate, 2, 2)
	def(0xE5, "SBC", Sbc, ZeroPage, 2, 3)
	def(0xF5, "SBC", Sbc, ZeroPageOffsetX, 2, 4)
	def(0xED, "SBC", Sbc, Absolute, 3, 4)
	def(0xFD, "SBC", Sbc, AbsoluteOffsetX, 3, 4)
	def(0xF9, "SBC", Sbc, AbsoluteOffsetY, 3, 4)
	def(0xE1, "SBC", Sbc, PreIndirectX, 2, 6)
	def(0xF1, "SBC", Sbc, PostIndirectY, 2, 5)

	def(0xE6, "INC", Inc, ZeroPage, 2, 5)
	def(0xF6, "INC", Inc, ZeroPageOffsetX, 2, 6)
	def(0xEE, "INC", Inc, Absolute, 3, 6)
	def(0xFE, "INC", Inc, AbsoluteOffsetX, 3, 7)
	def(0xE8, "INX", Inx, Implied, 1, 2)
	def(0xC8, "INY", Iny, Implied, 1, 2)

	def(0xC6, "DEC", Dec, ZeroPage, 2, 5)
	def(0xD6, "DEC", Dec, ZeroPageOffsetX, 2, 6)
	def(0xCE, "DEC", Dec, Absolute, 3, 6)
	def(0xDE, "DEC", Dec, AbsoluteOffsetX, 3, 7)
	def(0xCA, "DEX", Dex, Implied, 1, 2)
	def(0x88, "DEY", Dey, Implied, 1, 2)

	// Bitwise.
	def(0x29, "AND", And, Immediate, 2, 2)
	def(0x25, "AND", And, ZeroPage, 2, 3)
	def(0x35, "AND", And, ZeroPageOffsetX, 2, 4)
	def(0x2D, "AND", And, Absolute, 3, 4)
	def(0x3D, "AND", And, AbsoluteOffsetX, 3, 4)
	def(0x39, "AND", And, AbsoluteOffsetY, 3, 4)
	def(0x21, "AND", And, PreIndirectX, 2, 6)
	def(0x31, "AND", And, PostIndirectY, 2, 5)

	def(0x49, "EOR", Eor, Immediate, 2, 2)
	def(0x45, "EOR", Eor, ZeroPage, 2, 3)
	def(0x55, "EOR", Eor, ZeroPageOffsetX, 2, 4)
	def(0x4D, "EOR", Eor, Absolute, 3, 4)
	def(0x5D, "EOR", Eor, AbsoluteOffsetX, 3, 4)
	def(0x59, "EOR", Eor, AbsoluteOffsetY, 3, 4)
	def(0x41, "EOR", Eor, PreIndirectX, 2, 6)
	def(0x51, "EOR", Eor, PostIndirectY, 2, 5)

	def(0x09, "ORA", Ora, Immediate, 2, 2)
	def(0x05, "ORA", Ora, ZeroPage, 2, 3)
	def(0x15, "ORA", Ora, ZeroPageOffsetX, 2, 4)
	def(0x0D, "ORA", Ora, Absolute, 3, 4)
	def(0x1D, "ORA", Ora, AbsoluteOffsetX, 3, 4)
	def(0x19, "ORA", Ora, AbsoluteOffsetY, 3, 4)
	def(0x01, "ORA", Ora, PreIndirectX, 2, 6)
	def(0x11, "ORA", Ora, PostIndirectY, 2, 5)

	def(0x0A, "ASL", Asl, Implied, 1, 2)
	def(0x06, "ASL", Asl, ZeroPage, 2, 5)
	def(0x16, "ASL", Asl, ZeroPageOffsetX, 2, 6)
	def(0x0E, "ASL", Asl, Absolute, 3, 6)
	def(0x1E, "ASL", Asl, AbsoluteOffsetX, 3, 7)

	def(0x4A, "LSR", Lsr, Implied, 1, 2)
	def(0x46, "LSR", Lsr, ZeroPage, 2, 5)
	def(0x56, "LSR", Lsr, ZeroPageOffsetX, 2, 6)
	def(0x4E, "LSR", Lsr, Absolute, 3, 6)
	def(0x5E, "LSR", Lsr, AbsoluteOffsetX, 3, 7)

	def(0x2A, "ROL", Rol, Implied, 1, 2)
	def(0x26, "ROL", Rol, ZeroPage, 2, 5)
	def(0x36, "ROL", Rol, ZeroPageOffsetX, 2, 6)
	def(0x2E, "ROL", Rol, Absolute, 3, 6)
	def(0x3E, "ROL", Rol, AbsoluteOffsetX, 3, 7)

	def(0x6A, "ROR", Ror, Implied, 1, 2)
	def(0x66, "ROR", Ror, ZeroPage, 2, 5)
	def(0x76, "ROR", Ror, ZeroPageOffsetX, 2, 6)
	def(0x6E, "ROR", Ror, Absolute, 3, 6)
	def(0x7E, "ROR", Ror, AbsoluteOffsetX, 3, 7)

	def(0x24, "BIT", Bit, ZeroPage, 2, 3)
	def(0x2C, "BIT", Bit, Absolute, 3, 4)

	def(0xC9, "CMP", Cmp, Immediate, 2, 2)
	def(0xC5, "CMP", Cmp, ZeroPage, 2, 3)
	def(0xD5, "CMP", Cmp, ZeroPageOffsetX, 2, 4)
	def(0xCD, "CMP", Cmp, Absolute, 3, 4)
	def(0xDD, "CMP", Cmp, AbsoluteOffsetX, 3, 4)
	def(0xD9, "CMP", Cmp, AbsoluteOffsetY, 3, 4)
	def(0xC1, "CMP", Cmp, PreIndirectX, 2, 6)
	def(0xD1, "CMP", Cmp, PostIndirectY, 2, 5)

	def(0xE0, "CPX", Cpx, Immediate, 2, 2)
	def(0xE4, "CPX", Cpx, ZeroPage, 2, 3)
	def(0xEC, "CPX", Cpx, Absolute, 3, 4)

	def(0xC0, "CPY", Cpy, Immediate, 2, 2)
	def(0xC4, "CPY", Cpy, ZeroPage, 2, 3)
	def(0xCC, "CPY", Cpy, Absolute, 3, 4)

	// Branches.
	def(0x90, "BCC", Bcc, PCOffset, 2, 2)
	def(0xB0, "BCS", Bcs, PCOffset, 2, 2)
	def(0xF0, "BEQ", Beq, PCOffset, 2, 2)
	def(0x30, "BMI", Bmi, PCOffset, 2, 2)
	def(0xD0, "BNE", Bne, PCOffset, 2, 2)
	def(0x10, "BPL", Bpl, PCOffset, 2, 2)
	def(0x50, "BVC", Bvc, PCOffset, 2, 2)
	def(0x70, "BVS", Bvs, PCOffset, 2, 2)

	// Jumps/subroutines/interrupts.
	def(0x4C, "JMP", Jmp, Absolute, 3, 3)
	def(0x6C, "JMP", Jmp, Indirect, 3, 5)
	def(0x20, "JSR", Jsr, Absolute, 3, 6)
	def(0x60, "RTS", Rts, Implied, 1, 6)
	def(0x40, "RTI", Rti, Implied, 1, 6)
	def(0x00, "BRK", Brk, Implied, 1, 7)

	// Documented no-ops plus the harmless undocumented NOP-shaped opcodes.
	def(0xEA, "NOP", Nop, Implied, 1, 2)
	def(0x1A, "NOP", Nop, Implied, 1, 2)
	def(0x3A, "NOP", Nop, Implied, 1, 2)
	def(0x5A, "NOP", Nop, Implied, 1, 2)
	def(0x7A, "NOP", Nop, Implied, 1, 2)
	def(0xDA, "NOP", Nop, Implied, 1, 2)
	def(0xFA, "NOP", Nop, Implied, 1, 2)

	def(0x04, "DOP", Dop, ZeroPage, 2, 3)
	def(0x44, "DOP", Dop, ZeroPage, 2, 3)
	def(0x64, "DOP", Dop, ZeroPage, 2, 3)
	def(0x14, "DOP", Dop, ZeroPageOffsetX, 2, 4)
	def(0x34, "DOP", Dop, ZeroPageOffsetX, 2, 4)
	def(0x54, "DOP", Dop, ZeroPageOffsetX, 2, 4)
	def(0x74, "DOP", Dop, ZeroPageOffsetX, 2, 4)
	def(0xD4, "DOP", Dop, ZeroPageOffsetX, 2, 4)
	def(0xF4, "DOP", Dop, ZeroPageOffsetX, 2, 4)
	def(0x80, "DOP", Dop, Immediate, 2, 2)
	def(0x82, "DOP", Dop, Immediate, 2, 2)
	def(0x89, "DOP", Dop, Immediate, 2, 2)
	def(0xC2, "DOP", Dop, Immediate, 2, 2)
	def(0xE2, "DOP", Dop, Immediate, 2, 2)

	def(0x0C, "TOP", Top, Absolute, 3, 4)
	def(0x1C, "TOP", Top, AbsoluteOffsetX, 3, 4)
	def(0x3C, "TOP", Top, AbsoluteOffsetX, 3, 4)
	def(0x5C, "TOP", Top, AbsoluteOffsetX, 3, 4)
	def(0x7C, "TOP", Top, AbsoluteOffsetX, 3, 4)
	def(0xDC, "TOP", Top, AbsoluteOffsetX, 3, 4)
	def(0xFC, "TOP", Top, AbsoluteOffsetX, 3, 4)
}

// Lookup returns the table entry for value, or an error if that byte
// has no defined instruction.
func Lookup(value uint8) (Code, error) {
	c := table[value]
	if c.Name == "" {
		return Code{}, fmt.Errorf("invalid opcode 0x%02X", value)
	}
	return c, nil
}
