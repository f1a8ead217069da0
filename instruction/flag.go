package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
)

// CLC clears the carry flag.
func CLC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetCarry(false)
	return result
}

// CLD clears the decimal flag. Decimal mode itself is not implemented;
// this flag is observable but has no effect on ADC/SBC.
func CLD(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetDecimal(false)
	return result
}

// CLI clears the interrupt-inhibit flag.
func CLI(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetInterruptInhibit(false)
	return result
}

// CLV clears the overflow flag.
func CLV(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetOverflow(false)
	return result
}

// SEC sets the carry flag.
func SEC(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetCarry(true)
	return result
}

// SED sets the decimal flag.
func SED(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetDecimal(true)
	return result
}

// SEI sets the interrupt-inhibit flag.
func SEI(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	result.Reg.Status.SetInterruptInhibit(true)
	return result
}
