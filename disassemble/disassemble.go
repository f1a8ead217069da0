// Package disassemble renders one decoded instruction as a
// human-readable trace line, for -debug logging in cmd/hasseldorf. It
// always uses debug (side-effect-free) reads, never normal reads, so
// tracing a program never perturbs the peripherals it's tracing.
package disassemble

import (
	"fmt"

	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// Step disassembles the instruction at pc and returns its text plus
// the byte count to advance pc by to reach the next instruction. An
// opcode byte with no table entry renders as "???" and advances by 1,
// so tracing can continue past it for diagnostic purposes even though
// actually executing it is fatal.
func Step(pc uint16, m *memory.Map) (string, int) {
	value := m.DebugReadByte(pc)
	code, err := opcode.Lookup(value)
	if err != nil {
		return fmt.Sprintf("%04X  %02X         ???", pc, value), 1
	}

	var raw, operand string
	switch code.Len {
	case 1:
		raw = fmt.Sprintf("%02X", value)
	case 2:
		b := m.DebugReadByte(pc + 1)
		raw = fmt.Sprintf("%02X %02X", value, b)
		operand = operandText(code, b, 0, pc)
	case 3:
		lo := m.DebugReadByte(pc + 1)
		hi := m.DebugReadByte(pc + 2)
		raw = fmt.Sprintf("%02X %02X %02X", value, lo, hi)
		operand = operandText(code, lo, hi, pc)
	}

	return fmt.Sprintf("%04X  %-8s  %s %s", pc, raw, code.Name, operand), int(code.Len)
}

func operandText(code opcode.Code, lo, hi uint8, pc uint16) string {
	word := uint16(lo) | uint16(hi)<<8
	switch code.Mode {
	case opcode.Immediate:
		return fmt.Sprintf("#$%02X", lo)
	case opcode.ZeroPage:
		return fmt.Sprintf("$%02X", lo)
	case opcode.ZeroPageOffsetX:
		return fmt.Sprintf("$%02X,X", lo)
	case opcode.ZeroPageOffsetY:
		return fmt.Sprintf("$%02X,Y", lo)
	case opcode.Absolute:
		return fmt.Sprintf("$%04X", word)
	case opcode.AbsoluteOffsetX:
		return fmt.Sprintf("$%04X,X", word)
	case opcode.AbsoluteOffsetY:
		return fmt.Sprintf("$%04X,Y", word)
	case opcode.Indirect:
		return fmt.Sprintf("($%04X)", word)
	case opcode.PreIndirectX:
		return fmt.Sprintf("($%02X,X)", lo)
	case opcode.PostIndirectY:
		return fmt.Sprintf("($%02X),Y", lo)
	case opcode.PCOffset:
		target := uint16(int32(pc) + 2 + int32(int8(lo)))
		return fmt.Sprintf("$%02X ($%04X)", lo, target)
	default:
		return ""
	}
}
