// Package cpu drives the fetch-execute-step loop: it owns a register
// file and a memory map, and advances both one instruction at a time.
package cpu

import (
	"fmt"

	"github.com/jdisanti/hassel-emu/instruction"
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/register"
)

// Fixed vector addresses and the stack's base page.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
	stackBase   = uint16(0x0100)
)

// DecodeError reports a byte with no defined instruction at the
// program counter; decoding it is always fatal.
type DecodeError struct {
	PC     uint16
	Reason string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode error at PC=0x%04X: %s", e.PC, e.Reason)
}

// CPU is a 6502 core bound to a single memory map.
type CPU struct {
	Reg register.File
	mem *memory.Map
}

// New constructs a CPU over mem and resets it.
func New(mem *memory.Map) *CPU {
	c := &CPU{mem: mem}
	c.Reset()
	return c
}

// Memory returns the CPU's memory map, for embedders that need to
// load data or peek at state between steps.
func (c *CPU) Memory() *memory.Map {
	return c.mem
}

// Reset reads the reset vector into PC and inhibits maskable
// interrupts, matching power-on behavior.
func (c *CPU) Reset() {
	c.Reg = register.New()
	c.Reg.PC = c.mem.ReadWord(ResetVector)
	c.Reg.Status.SetInterruptInhibit(true)
}

// RequestInterrupt raises a maskable interrupt. It is a no-op if the
// interrupt-inhibit flag is currently set, and reports whether the
// interrupt was actually taken.
func (c *CPU) RequestInterrupt() bool {
	if c.Reg.Status.InterruptInhibit() {
		return false
	}
	c.enterInterrupt(IRQVector)
	return true
}

// RequestNonMaskableInterrupt always delivers, regardless of the
// interrupt-inhibit flag.
func (c *CPU) RequestNonMaskableInterrupt() {
	c.enterInterrupt(NMIVector)
}

func (c *CPU) enterInterrupt(vector uint16) {
	c.push(uint8(c.Reg.PC >> 8))
	c.push(uint8(c.Reg.PC & 0xFF))
	c.push(c.Reg.Status.Value())
	c.Reg.Status.SetInterruptInhibit(true)
	c.Reg.PC = c.mem.ReadWord(vector)
}

func (c *CPU) push(val uint8) {
	c.mem.WriteByte(stackBase+uint16(c.Reg.SP), val)
	c.Reg.SP--
}

// Step executes exactly one instruction, then steps every
// step-requiring device once. It returns the number of cycles the
// instruction took (not including interrupt-delivery overhead).
func (c *CPU) Step() (int, error) {
	_, result, err := instruction.Execute(c.Reg, c.mem)
	if err != nil {
		return 0, DecodeError{PC: c.Reg.PC, Reason: err.Error()}
	}

	c.Reg = result.Reg
	for _, w := range result.Writes {
		c.mem.WriteByte(w.Address, w.Value)
	}

	if interrupt, raised := c.mem.Step(); raised {
		switch interrupt.Kind {
		case memory.NonMaskable:
			c.RequestNonMaskableInterrupt()
		case memory.Maskable:
			c.RequestInterrupt()
		}
	}

	return result.Cycles, nil
}
