package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
	"github.com/jdisanti/hassel-emu/register"
)

// BrkVector is the fixed address holding the BRK/IRQ handler entry
// point, shared with maskable hardware interrupts.
const BrkVector = 0xFFFE

// BRK pushes the return address and status, sets the Break flag, and
// jumps through BrkVector. The low byte of the pushed PC is pushed in
// full (PC & 0xFF); an earlier revision of this routine masked it with
// 0x0F, which corrupted the saved return address on real hardware
// whenever PC's low byte had any of its upper nibble bits set.
func BRK(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result {
	returnAddr := result.Reg.PC + 1
	result.push(uint8(returnAddr >> 8))
	result.push(uint8(returnAddr & 0xFF))
	result.push(result.Reg.Status.Value() | register.Break)
	result.Reg.Status.SetBreak(true)
	result.Reg.PC = mem.ReadWord(BrkVector)
	return result
}
