package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// NOP does nothing; covers both the documented 1-byte NOP and the
// undocumented single-byte NOP variants.
func NOP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	return result
}

// DOP ("double NOP") reads and discards a one-byte operand. Reading it
// matters for devices with read side effects, so the read still
// happens even though nothing is stored.
func DOP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	readOperand(mode, param, mem, &result)
	return result
}

// TOP ("triple NOP") reads and discards a two-byte operand, charging
// the page-cross penalty for the AbsoluteOffsetX variants same as any
// other load.
func TOP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	_, crossed := readOperand(mode, param, mem, &result)
	if crossed {
		result.Cycles++
	}
	return result
}
