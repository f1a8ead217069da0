// Package instruction implements the one-handler-per-class execution
// core: pure functions that take the pre-instruction registers and
// produce a Result, which the executor commits atomically.
package instruction

import (
	"github.com/jdisanti/hassel-emu/addrmode"
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
	"github.com/jdisanti/hassel-emu/register"
)

// stackBase is the fixed base address of the 6502 stack page.
const stackBase = 0x0100

// Write is a single deferred byte write produced by a handler. Writes
// are applied in order by the executor once the handler returns.
type Write struct {
	Address uint16
	Value   uint8
}

// Result is the per-instruction accumulator threaded through a
// handler: the post-instruction registers, the ordered list of
// pending writes, and the total cycle count (base cycles plus
// whatever penalty the handler adds for a page crossing or taken
// branch).
type Result struct {
	Reg    register.File
	Writes []Write
	Cycles int
}

func (r *Result) write(addr uint16, val uint8) {
	r.Writes = append(r.Writes, Write{Address: addr, Value: val})
}

func (r *Result) push(val uint8) {
	r.write(stackBase+uint16(r.Reg.SP), val)
	r.Reg.SP--
}

// pop reads the top of the stack directly from memory: nothing a
// handler pushes earlier in the same instruction is visible to a pop
// later in that instruction, since pushes are buffered in Writes and
// only committed after the handler returns. No handler in this table
// both pushes and pops within a single call, so this is never
// observed.
func pop(mem *memory.Map, r *Result) uint8 {
	r.Reg.SP++
	return mem.ReadByte(stackBase + uint16(r.Reg.SP))
}

// Func is the uniform handler signature every instruction class
// implements.
type Func func(mode opcode.Mode, param opcode.Param, mem *memory.Map, result Result) Result

// readOperand resolves the operand for mode/param against the
// in-progress result's registers and returns its value plus whether
// resolving it crossed a page.
func readOperand(mode opcode.Mode, param opcode.Param, mem *memory.Map, result *Result) (uint8, bool) {
	return addrmode.ReadByte(mode, param, &result.Reg, mem)
}

// effectiveAddress resolves the operand for mode/param to a memory
// address against the in-progress result's registers.
func effectiveAddress(mode opcode.Mode, param opcode.Param, mem *memory.Map, result *Result) uint16 {
	addr, _ := addrmode.Address(mode, param, &result.Reg, mem)
	return addr
}

func compare(result Result, register, operand uint8) Result {
	diff := register - operand
	result.Reg.Status.SetNZFrom(diff)
	result.Reg.Status.SetCarry(register >= operand)
	return result
}
