package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
	"github.com/jdisanti/hassel-emu/register"
)

// PHA pushes the accumulator.
func PHA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.push(result.Reg.A)
	return result
}

// PHP pushes the status word with the Break bit forced on, the same
// way BRK does for the copy it pushes.
func PHP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.push(result.Reg.Status.Value() | register.Break)
	return result
}

// PLA pulls a byte into the accumulator, updating N/Z.
func PLA(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.SetA(pop(mem, &result))
	return result
}

// PLP pulls a byte into the status word. SetValue forces bit 5 on and
// leaves Break untouched, since Break is never restored by a raw load
// of P.
func PLP(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetValue(pop(mem, &result))
	return result
}
