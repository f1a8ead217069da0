package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// ADC adds the operand and the carry flag to the accumulator in
// binary, regardless of the decimal flag's setting.
func ADC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	operand, crossed := readOperand(mode, param, mem, &result)
	a := result.Reg.A
	var carryIn uint16
	if result.Reg.Status.Carry() {
		carryIn = 1
	}
	sum := uint16(a) + uint16(operand) + carryIn

	result.Reg.Status.SetCarry(sum > 0xFF)
	overflow := (uint16(a)^sum)&(uint16(operand)^sum)&0x80 != 0
	result.Reg.Status.SetOverflow(overflow)
	result.Reg.SetA(uint8(sum))

	if crossed {
		result.Cycles++
	}
	return result
}

// SBC subtracts the operand and the borrow (inverted carry) from the
// accumulator in binary.
func SBC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	operand, crossed := readOperand(mode, param, mem, &result)
	a := result.Reg.A
	var borrowIn uint16
	if !result.Reg.Status.Carry() {
		borrowIn = 1
	}
	diff := uint16(a) - uint16(operand) - borrowIn

	result.Reg.Status.SetCarry(diff <= 0xFF)
	overflow := (uint16(a)^diff)&((^uint16(operand))^diff)&0x80 != 0
	result.Reg.Status.SetOverflow(overflow)
	result.Reg.SetA(uint8(diff))

	if crossed {
		result.Cycles++
	}
	return result
}

// INC increments a memory location.
func INC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	addr := effectiveAddress(mode, param, mem, &result)
	val := mem.ReadByte(addr) + 1
	result.Reg.Status.SetNZFrom(val)
	result.write(addr, val)
	return result
}

// INX increments X.
func INX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetX(result.Reg.X + 1)
	return result
}

// INY increments Y.
func INY(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetY(result.Reg.Y + 1)
	return result
}

// DEC decrements a memory location.
func DEC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	addr := effectiveAddress(mode, param, mem, &result)
	val := mem.ReadByte(addr) - 1
	result.Reg.Status.SetNZFrom(val)
	result.write(addr, val)
	return result
}

// DEX decrements X.
func DEX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetX(result.Reg.X - 1)
	return result
}

// DEY decrements Y.
func DEY(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetY(result.Reg.Y - 1)
	return result
}
