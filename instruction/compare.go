package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// BIT tests A & memory without altering A: N and V come from the
// memory operand's own bits 7 and 6, Z comes from the AND.
func BIT(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	result.Reg.Status.SetNegative(val&0x80 != 0)
	result.Reg.Status.SetOverflow(val&0x40 != 0)
	result.Reg.Status.SetZero(result.Reg.A&val == 0)
	return result
}

// CMP compares A against the operand and pays a page-cross penalty.
func CMP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, crossed := readOperand(mode, param, mem, &result)
	result = compare(result, result.Reg.A, val)
	if crossed {
		result.Cycles++
	}
	return result
}

// CPX compares X against the operand.
func CPX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	return compare(result, result.Reg.X, val)
}

// CPY compares Y against the operand.
func CPY(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	return compare(result, result.Reg.Y, val)
}
