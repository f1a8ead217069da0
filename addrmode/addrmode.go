// Package addrmode resolves a decoded operand into an effective
// address (or implied value) according to the 6502's addressing
// modes, including the two hardware quirks this emulator must
// reproduce: zero-page wraparound and the indirect-JMP page bug.
package addrmode

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
	"github.com/jdisanti/hassel-emu/register"
)

const pageMask = 0xFF00

func samePage(a, b uint16) bool {
	return a&pageMask == b&pageMask
}

// offset adds a uint8 offset to a base address with wraparound and
// reports whether the result landed on a different page.
func offset(base uint16, by uint8) (addr uint16, crossed bool) {
	result := base + uint16(by)
	return result, !samePage(base, result)
}

// indirectWord reads the word pointed to by addr the way real 6502
// hardware does for JMP (addr): if the low byte of addr is 0xFF, the
// high byte is fetched from the start of the same page rather than
// the start of the next one, because the 6502 never carries into the
// pointer's high byte during this fetch.
func indirectWord(m *memory.Map, addr uint16) uint16 {
	lo := m.ReadByte(addr)
	hiAddr := (addr & pageMask) | ((addr + 1) & 0x00FF)
	hi := m.ReadByte(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

// Address resolves param under mode to an effective address (ignored
// for Implied/Immediate, which callers handle specially) and reports
// whether resolving it crossed a page boundary. PCOffset is resolved
// by BranchTarget instead; passing it here panics.
func Address(mode opcode.Mode, param opcode.Param, reg *register.File, m *memory.Map) (addr uint16, crossed bool) {
	switch mode {
	case opcode.Implied:
		return 0, false
	case opcode.Immediate:
		return param.AsU16(), false
	case opcode.Absolute:
		return param.AsU16(), false
	case opcode.AbsoluteOffsetX:
		return offset(param.AsU16(), reg.X)
	case opcode.AbsoluteOffsetY:
		return offset(param.AsU16(), reg.Y)
	case opcode.ZeroPage:
		return uint16(param.Byte), false
	case opcode.ZeroPageOffsetX:
		return uint16(param.Byte + reg.X), false
	case opcode.ZeroPageOffsetY:
		return uint16(param.Byte + reg.Y), false
	case opcode.Indirect:
		return indirectWord(m, param.AsU16()), false
	case opcode.PreIndirectX:
		return m.ReadWordZeroPage(param.Byte + reg.X), false
	case opcode.PostIndirectY:
		base := m.ReadWordZeroPage(param.Byte)
		return offset(base, reg.Y)
	default:
		panic("addrmode: Address called with a mode that has no memory address")
	}
}

// ReadByte resolves param under mode and reads the operand byte,
// reporting a page-cross only for the modes that actually pay the
// extra cycle for it on real hardware: AbsoluteOffsetX/Y and
// PostIndirectY.
func ReadByte(mode opcode.Mode, param opcode.Param, reg *register.File, m *memory.Map) (val uint8, crossed bool) {
	switch mode {
	case opcode.Implied:
		return reg.A, false
	case opcode.Immediate:
		return param.Byte, false
	case opcode.AbsoluteOffsetX, opcode.AbsoluteOffsetY, opcode.PostIndirectY:
		addr, crossed := Address(mode, param, reg, m)
		return m.ReadByte(addr), crossed
	default:
		addr, _ := Address(mode, param, reg, m)
		return m.ReadByte(addr), false
	}
}

// BranchTarget resolves a PCOffset operand against the already
// post-increment PC, reporting whether the branch destination is on a
// different page than the instruction following the branch.
func BranchTarget(pc uint16, param opcode.Param) (addr uint16, crossed bool) {
	displacement := int8(param.Byte)
	target := uint16(int32(pc) + int32(displacement))
	return target, !samePage(pc, target)
}
