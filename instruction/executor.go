package instruction

import (
	"github.com/jdisanti/hassel-emu/memory"
	"github.com/jdisanti/hassel-emu/opcode"
	"github.com/jdisanti/hassel-emu/register"
)

// dispatch maps an instruction class to the handler that implements
// it. Built once; opcode.Lookup has already validated the class is
// one this table knows about for every reachable opcode byte.
var dispatch = map[opcode.Class]Func{
	opcode.Nop: NOP,
	opcode.Dop: DOP,
	opcode.Top: TOP,
	opcode.Brk: BRK,

	opcode.Clc: CLC,
	opcode.Cld: CLD,
	opcode.Cli: CLI,
	opcode.Clv: CLV,
	opcode.Sec: SEC,
	opcode.Sed: SED,
	opcode.Sei: SEI,

	opcode.Lda: LDA,
	opcode.Ldx: LDX,
	opcode.Ldy: LDY,
	opcode.Sta: STA,
	opcode.Stx: STX,
	opcode.Sty: STY,

	opcode.Pha: PHA,
	opcode.Php: PHP,
	opcode.Pla: PLA,
	opcode.Plp: PLP,

	opcode.Tax: TAX,
	opcode.Tay: TAY,
	opcode.Tsx: TSX,
	opcode.Txa: TXA,
	opcode.Txs: TXS,
	opcode.Tya: TYA,

	opcode.Bit: BIT,
	opcode.Cmp: CMP,
	opcode.Cpx: CPX,
	opcode.Cpy: CPY,

	opcode.Bcc: BCC,
	opcode.Bcs: BCS,
	opcode.Beq: BEQ,
	opcode.Bmi: BMI,
	opcode.Bne: BNE,
	opcode.Bpl: BPL,
	opcode.Bvc: BVC,
	opcode.Bvs: BVS,
	opcode.Jmp: JMP,
	opcode.Jsr: JSR,
	opcode.Rts: RTS,
	opcode.Rti: RTI,

	opcode.And: AND,
	opcode.Asl: ASL,
	opcode.Lsr: LSR,
	opcode.Eor: EOR,
	opcode.Ora: ORA,
	opcode.Rol: ROL,
	opcode.Ror: ROR,

	opcode.Adc: ADC,
	opcode.Sbc: SBC,
	opcode.Dec: DEC,
	opcode.Dex: DEX,
	opcode.Dey: DEY,
	opcode.Inc: INC,
	opcode.Inx: INX,
	opcode.Iny: INY,
}

// DecodeOp reads the opcode byte at pc and its operand bytes (using
// normal, side-effecting reads, matching how a real CPU fetches
// instructions) and returns the fully decoded instruction.
func DecodeOp(mem *memory.Map, pc uint16) (opcode.Op, error) {
	value := mem.ReadByte(pc)
	code, err := opcode.Lookup(value)
	if err != nil {
		return opcode.Op{}, err
	}

	var param opcode.Param
	switch code.Len {
	case 1:
	case 2:
		param.Byte = mem.ReadByte(pc + 1)
	case 3:
		lo := mem.ReadByte(pc + 1)
		hi := mem.ReadByte(pc + 2)
		param.Word = uint16(lo) | uint16(hi)<<8
	}
	return opcode.Op{Code: code, Param: param}, nil
}

// Execute decodes the instruction at reg.PC, dispatches it to its
// handler, and returns the resulting Result. The caller is
// responsible for committing it: replacing its registers with
// result.Reg and applying result.Writes in order.
func Execute(reg register.File, mem *memory.Map) (opcode.Op, Result, error) {
	op, err := DecodeOp(mem, reg.PC)
	if err != nil {
		return opcode.Op{}, Result{}, err
	}

	result := Result{
		Reg:    reg,
		Cycles: int(op.Code.BaseCycles),
	}
	result.Reg.PC += uint16(op.Code.Len)

	handler := dispatch[op.Code.Class]
	result = handler(op.Code.Mode, op.Param, mem, result)
	return op, result, nil
}
