package instruction

import (
	"github.com/jdisanti/hassel-emu/addrmode"
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// branch adds one cycle if taken, plus one more if the branch lands
// on a different page than the instruction following it.
func branch(mode opcode.Mode, param opcode.Param, result Result, taken bool) Result {
	if !taken {
		return result
	}
	target, crossed := addrmode.BranchTarget(result.Reg.PC, param)
	result.Reg.PC = target
	result.Cycles++
	if crossed {
		result.Cycles++
	}
	return result
}

func BCC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, !result.Reg.Status.Carry())
}

func BCS(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, result.Reg.Status.Carry())
}

func BEQ(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, result.Reg.Status.Zero())
}

func BMI(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, result.Reg.Status.Negative())
}

func BNE(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, !result.Reg.Status.Zero())
}

func BPL(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, !result.Reg.Status.Negative())
}

func BVC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, !result.Reg.Status.Overflow())
}

func BVS(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return branch(mode, param, result, result.Reg.Status.Overflow())
}

// JMP sets PC to the resolved address. For Indirect mode this
// reproduces the page-wrap bug in addrmode.Address.
func JMP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.PC = effectiveAddress(mode, param, mem, &result)
	return result
}

// JSR pushes the return address (the address of the last byte of the
// JSR instruction, not the one after it) and jumps to the target.
func JSR(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	returnAddr := result.Reg.PC - 1
	result.push(uint8(returnAddr >> 8))
	result.push(uint8(returnAddr))
	result.Reg.PC = param.AsU16()
	return result
}

// RTS pulls the return address and resumes just after the original
// JSR.
func RTS(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	lo := pop(mem, &result)
	hi := pop(mem, &result)
	result.Reg.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return result
}

// RTI pulls status (forcing Break off, bit 5 on) then the return
// address, with no adjustment to PC.
func RTI(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	status := pop(mem, &result)
	lo := pop(mem, &result)
	hi := pop(mem, &result)
	result.Reg.Status.SetBreak(false)
	result.Reg.Status.SetValue(status)
	result.Reg.PC = uint16(hi)<<8 | uint16(lo)
	return result
}
