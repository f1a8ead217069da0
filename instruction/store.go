package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// STA stores the accumulator to the effective address.
func STA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.write(effectiveAddress(mode, param, mem, &result), result.Reg.A)
	return result
}

// STX stores X to the effective address.
func STX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.write(effectiveAddress(mode, param, mem, &result), result.Reg.X)
	return result
}

// STY stores Y to the effective address.
func STY(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.write(effectiveAddress(mode, param, mem, &result), result.Reg.Y)
	return result
}
