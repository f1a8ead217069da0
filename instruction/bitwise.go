package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// AND performs A &= operand.
func AND(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	operand, crossed := readOperand(mode, param, mem, &result)
	result.Reg.SetA(result.Reg.A & operand)
	if crossed {
		result.Cycles++
	}
	return result
}

// EOR performs A ^= operand.
func EOR(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	operand, crossed := readOperand(mode, param, mem, &result)
	result.Reg.SetA(result.Reg.A ^ operand)
	if crossed {
		result.Cycles++
	}
	return result
}

// ORA performs A |= operand.
func ORA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	operand, crossed := readOperand(mode, param, mem, &result)
	result.Reg.SetA(result.Reg.A | operand)
	if crossed {
		result.Cycles++
	}
	return result
}

// storeShifted writes val back to A (Implied mode) or to the
// effective address in memory, whichever the operand came from.
func storeShifted(mode opcode.Mode, param opcode.Param, mem *memory.Map, result *Result, val uint8) {
	if mode == opcode.Implied {
		result.Reg.SetA(val)
		return
	}
	addr := effectiveAddress(mode, param, mem, result)
	result.Reg.Status.SetNZFrom(val)
	result.write(addr, val)
}

// ASL shifts left through carry.
func ASL(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	result.Reg.Status.SetCarry(val&0x80 != 0)
	storeShifted(mode, param, mem, &result, val<<1)
	return result
}

// LSR shifts right through carry; the result's top bit is always 0,
// so N is always cleared.
func LSR(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	result.Reg.Status.SetCarry(val&0x01 != 0)
	storeShifted(mode, param, mem, &result, val>>1)
	result.Reg.Status.SetNegative(false)
	return result
}

// ROL rotates left, shifting the old carry into bit 0.
func ROL(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	var carryIn uint8
	if result.Reg.Status.Carry() {
		carryIn = 1
	}
	result.Reg.Status.SetCarry(val&0x80 != 0)
	storeShifted(mode, param, mem, &result, (val<<1)|carryIn)
	return result
}

// ROR rotates right, shifting the old carry into bit 7.
func ROR(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, _ := readOperand(mode, param, mem, &result)
	var carryIn uint8
	if result.Reg.Status.Carry() {
		carryIn = 0x80
	}
	result.Reg.Status.SetCarry(val&0x01 != 0)
	storeShifted(mode, param, mem, &result, (val>>1)|carryIn)
	return result
}
