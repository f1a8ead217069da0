package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// LDA loads the accumulator, updating N/Z and charging a page-cross
// penalty where applicable.
func LDA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, crossed := readOperand(mode, param, mem, &result)
	result.Reg.SetA(val)
	if crossed {
		result.Cycles++
	}
	return result
}

// LDX loads the X register.
func LDX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, crossed := readOperand(mode, param, mem, &result)
	result.Reg.SetX(val)
	if crossed {
		result.Cycles++
	}
	return result
}

// LDY loads the Y register.
func LDY(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	val, crossed := readOperand(mode, param, mem, &result)
	result.Reg.SetY(val)
	if crossed {
		result.Cycles++
	}
	return result
}
