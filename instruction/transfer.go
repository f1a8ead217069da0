package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// TAX copies A to X, updating N/Z.
func TAX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetX(result.Reg.A)
	return result
}

// TAY copies A to Y, updating N/Z.
func TAY(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetY(result.Reg.A)
	return result
}

// TSX copies SP to X, updating N/Z.
func TSX(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetX(result.Reg.SP)
	return result
}

// TXA copies X to A, updating N/Z.
func TXA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetA(result.Reg.X)
	return result
}

// TXS copies X to SP without touching any flag.
func TXS(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SP = result.Reg.X
	return result
}

// TYA copies Y to A, updating N/Z.
func TYA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetA(result.Reg.Y)
	return result
}
