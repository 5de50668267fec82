package nes

// instruction is one entry of the decode table.
type instruction struct {
	name    string
	operate func(*CPU) uint8
	mode    addrMode
	cycles  uint8
	illegal bool // not part of the documented instruction set
}

// resolvers maps every addressing mode to the code computing its operand.
var resolvers = [...]func(*CPU) uint8{
	addrModeIMP: (*CPU).imp,
	addrModeIMM: (*CPU).imm,
	addrModeZP0: (*CPU).zp0,
	addrModeZPX: (*CPU).zpx,
	addrModeZPY: (*CPU).zpy,
	addrModeREL: (*CPU).rel,
	addrModeABS: (*CPU).abs,
	addrModeABX: (*CPU).abx,
	addrModeABY: (*CPU).aby,
	addrModeIND: (*CPU).ind,
	addrModeIZX: (*CPU).izx,
	addrModeIZY: (*CPU).izy,
}

func (i *instruction) resolve(c *CPU) uint8 {
	return resolvers[i.mode](c)
}

// Instruction describes an opcode for disassemblers and inspectors.
type Instruction struct {
	Opcode  uint8
	Name    string
	Mode    string
	Cycles  uint8
	Bytes   uint16 // opcode included
	Illegal bool
}

// Lookup returns the decode table entry of opcode.
func Lookup(opcode uint8) Instruction {
	instr := &instructions[opcode]
	return Instruction{
		Opcode:  opcode,
		Name:    instr.name,
		Mode:    instr.mode.String(),
		Cycles:  instr.cycles,
		Bytes:   1 + instr.mode.operandBytes(),
		Illegal: instr.illegal,
	}
}

// instructions is indexed by opcode. Every byte has an entry,
// the undocumented ones are marked illegal.
var instructions = [0x100]instruction{
	0x00: {name: "BRK", operate: (*CPU).brk, mode: addrModeIMP, cycles: 7},
	0x01: {name: "ORA", operate: (*CPU).ora, mode: addrModeIZX, cycles: 6},
	0x02: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x03: {name: "SLO", operate: (*CPU).slo, mode: addrModeIZX, cycles: 8, illegal: true},
	0x04: {name: "NOP", operate: (*CPU).nop, mode: addrModeZP0, cycles: 3, illegal: true},
	0x05: {name: "ORA", operate: (*CPU).ora, mode: addrModeZP0, cycles: 3},
	0x06: {name: "ASL", operate: (*CPU).asl, mode: addrModeZP0, cycles: 5},
	0x07: {name: "SLO", operate: (*CPU).slo, mode: addrModeZP0, cycles: 5, illegal: true},
	0x08: {name: "PHP", operate: (*CPU).php, mode: addrModeIMP, cycles: 3},
	0x09: {name: "ORA", operate: (*CPU).ora, mode: addrModeIMM, cycles: 2},
	0x0A: {name: "ASL", operate: (*CPU).asl, mode: addrModeIMP, cycles: 2},
	0x0B: {name: "ANC", operate: (*CPU).anc, mode: addrModeIMM, cycles: 2, illegal: true},
	0x0C: {name: "NOP", operate: (*CPU).nop, mode: addrModeABS, cycles: 4, illegal: true},
	0x0D: {name: "ORA", operate: (*CPU).ora, mode: addrModeABS, cycles: 4},
	0x0E: {name: "ASL", operate: (*CPU).asl, mode: addrModeABS, cycles: 6},
	0x0F: {name: "SLO", operate: (*CPU).slo, mode: addrModeABS, cycles: 6, illegal: true},

	0x10: {name: "BPL", operate: (*CPU).bpl, mode: addrModeREL, cycles: 2},
	0x11: {name: "ORA", operate: (*CPU).ora, mode: addrModeIZY, cycles: 5},
	0x12: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x13: {name: "SLO", operate: (*CPU).slo, mode: addrModeIZY, cycles: 8, illegal: true},
	0x14: {name: "NOP", operate: (*CPU).nop, mode: addrModeZPX, cycles: 4, illegal: true},
	0x15: {name: "ORA", operate: (*CPU).ora, mode: addrModeZPX, cycles: 4},
	0x16: {name: "ASL", operate: (*CPU).asl, mode: addrModeZPX, cycles: 6},
	0x17: {name: "SLO", operate: (*CPU).slo, mode: addrModeZPX, cycles: 6, illegal: true},
	0x18: {name: "CLC", operate: (*CPU).clc, mode: addrModeIMP, cycles: 2},
	0x19: {name: "ORA", operate: (*CPU).ora, mode: addrModeABY, cycles: 4},
	0x1A: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2, illegal: true},
	0x1B: {name: "SLO", operate: (*CPU).slo, mode: addrModeABY, cycles: 7, illegal: true},
	0x1C: {name: "NOP", operate: (*CPU).nop, mode: addrModeABX, cycles: 4, illegal: true},
	0x1D: {name: "ORA", operate: (*CPU).ora, mode: addrModeABX, cycles: 4},
	0x1E: {name: "ASL", operate: (*CPU).asl, mode: addrModeABX, cycles: 7},
	0x1F: {name: "SLO", operate: (*CPU).slo, mode: addrModeABX, cycles: 7, illegal: true},

	0x20: {name: "JSR", operate: (*CPU).jsr, mode: addrModeABS, cycles: 6},
	0x21: {name: "AND", operate: (*CPU).and, mode: addrModeIZX, cycles: 6},
	0x22: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x23: {name: "RLA", operate: (*CPU).rla, mode: addrModeIZX, cycles: 8, illegal: true},
	0x24: {name: "BIT", operate: (*CPU).bit, mode: addrModeZP0, cycles: 3},
	0x25: {name: "AND", operate: (*CPU).and, mode: addrModeZP0, cycles: 3},
	0x26: {name: "ROL", operate: (*CPU).rol, mode: addrModeZP0, cycles: 5},
	0x27: {name: "RLA", operate: (*CPU).rla, mode: addrModeZP0, cycles: 5, illegal: true},
	0x28: {name: "PLP", operate: (*CPU).plp, mode: addrModeIMP, cycles: 4},
	0x29: {name: "AND", operate: (*CPU).and, mode: addrModeIMM, cycles: 2},
	0x2A: {name: "ROL", operate: (*CPU).rol, mode: addrModeIMP, cycles: 2},
	0x2B: {name: "ANC", operate: (*CPU).anc, mode: addrModeIMM, cycles: 2, illegal: true},
	0x2C: {name: "BIT", operate: (*CPU).bit, mode: addrModeABS, cycles: 4},
	0x2D: {name: "AND", operate: (*CPU).and, mode: addrModeABS, cycles: 4},
	0x2E: {name: "ROL", operate: (*CPU).rol, mode: addrModeABS, cycles: 6},
	0x2F: {name: "RLA", operate: (*CPU).rla, mode: addrModeABS, cycles: 6, illegal: true},

	0x30: {name: "BMI", operate: (*CPU).bmi, mode: addrModeREL, cycles: 2},
	0x31: {name: "AND", operate: (*CPU).and, mode: addrModeIZY, cycles: 5},
	0x32: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x33: {name: "RLA", operate: (*CPU).rla, mode: addrModeIZY, cycles: 8, illegal: true},
	0x34: {name: "NOP", operate: (*CPU).nop, mode: addrModeZPX, cycles: 4, illegal: true},
	0x35: {name: "AND", operate: (*CPU).and, mode: addrModeZPX, cycles: 4},
	0x36: {name: "ROL", operate: (*CPU).rol, mode: addrModeZPX, cycles: 6},
	0x37: {name: "RLA", operate: (*CPU).rla, mode: addrModeZPX, cycles: 6, illegal: true},
	0x38: {name: "SEC", operate: (*CPU).sec, mode: addrModeIMP, cycles: 2},
	0x39: {name: "AND", operate: (*CPU).and, mode: addrModeABY, cycles: 4},
	0x3A: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2, illegal: true},
	0x3B: {name: "RLA", operate: (*CPU).rla, mode: addrModeABY, cycles: 7, illegal: true},
	0x3C: {name: "NOP", operate: (*CPU).nop, mode: addrModeABX, cycles: 4, illegal: true},
	0x3D: {name: "AND", operate: (*CPU).and, mode: addrModeABX, cycles: 4},
	0x3E: {name: "ROL", operate: (*CPU).rol, mode: addrModeABX, cycles: 7},
	0x3F: {name: "RLA", operate: (*CPU).rla, mode: addrModeABX, cycles: 7, illegal: true},

	0x40: {name: "RTI", operate: (*CPU).rti, mode: addrModeIMP, cycles: 6},
	0x41: {name: "EOR", operate: (*CPU).eor, mode: addrModeIZX, cycles: 6},
	0x42: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x43: {name: "SRE", operate: (*CPU).sre, mode: addrModeIZX, cycles: 8, illegal: true},
	0x44: {name: "NOP", operate: (*CPU).nop, mode: addrModeZP0, cycles: 3, illegal: true},
	0x45: {name: "EOR", operate: (*CPU).eor, mode: addrModeZP0, cycles: 3},
	0x46: {name: "LSR", operate: (*CPU).lsr, mode: addrModeZP0, cycles: 5},
	0x47: {name: "SRE", operate: (*CPU).sre, mode: addrModeZP0, cycles: 5, illegal: true},
	0x48: {name: "PHA", operate: (*CPU).pha, mode: addrModeIMP, cycles: 3},
	0x49: {name: "EOR", operate: (*CPU).eor, mode: addrModeIMM, cycles: 2},
	0x4A: {name: "LSR", operate: (*CPU).lsr, mode: addrModeIMP, cycles: 2},
	0x4B: {name: "ALR", operate: (*CPU).alr, mode: addrModeIMM, cycles: 2, illegal: true},
	0x4C: {name: "JMP", operate: (*CPU).jmp, mode: addrModeABS, cycles: 3},
	0x4D: {name: "EOR", operate: (*CPU).eor, mode: addrModeABS, cycles: 4},
	0x4E: {name: "LSR", operate: (*CPU).lsr, mode: addrModeABS, cycles: 6},
	0x4F: {name: "SRE", operate: (*CPU).sre, mode: addrModeABS, cycles: 6, illegal: true},

	0x50: {name: "BVC", operate: (*CPU).bvc, mode: addrModeREL, cycles: 2},
	0x51: {name: "EOR", operate: (*CPU).eor, mode: addrModeIZY, cycles: 5},
	0x52: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x53: {name: "SRE", operate: (*CPU).sre, mode: addrModeIZY, cycles: 8, illegal: true},
	0x54: {name: "NOP", operate: (*CPU).nop, mode: addrModeZPX, cycles: 4, illegal: true},
	0x55: {name: "EOR", operate: (*CPU).eor, mode: addrModeZPX, cycles: 4},
	0x56: {name: "LSR", operate: (*CPU).lsr, mode: addrModeZPX, cycles: 6},
	0x57: {name: "SRE", operate: (*CPU).sre, mode: addrModeZPX, cycles: 6, illegal: true},
	0x58: {name: "CLI", operate: (*CPU).cli, mode: addrModeIMP, cycles: 2},
	0x59: {name: "EOR", operate: (*CPU).eor, mode: addrModeABY, cycles: 4},
	0x5A: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2, illegal: true},
	0x5B: {name: "SRE", operate: (*CPU).sre, mode: addrModeABY, cycles: 7, illegal: true},
	0x5C: {name: "NOP", operate: (*CPU).nop, mode: addrModeABX, cycles: 4, illegal: true},
	0x5D: {name: "EOR", operate: (*CPU).eor, mode: addrModeABX, cycles: 4},
	0x5E: {name: "LSR", operate: (*CPU).lsr, mode: addrModeABX, cycles: 7},
	0x5F: {name: "SRE", operate: (*CPU).sre, mode: addrModeABX, cycles: 7, illegal: true},

	0x60: {name: "RTS", operate: (*CPU).rts, mode: addrModeIMP, cycles: 6},
	0x61: {name: "ADC", operate: (*CPU).adc, mode: addrModeIZX, cycles: 6},
	0x62: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x63: {name: "RRA", operate: (*CPU).rra, mode: addrModeIZX, cycles: 8, illegal: true},
	0x64: {name: "NOP", operate: (*CPU).nop, mode: addrModeZP0, cycles: 3, illegal: true},
	0x65: {name: "ADC", operate: (*CPU).adc, mode: addrModeZP0, cycles: 3},
	0x66: {name: "ROR", operate: (*CPU).ror, mode: addrModeZP0, cycles: 5},
	0x67: {name: "RRA", operate: (*CPU).rra, mode: addrModeZP0, cycles: 5, illegal: true},
	0x68: {name: "PLA", operate: (*CPU).pla, mode: addrModeIMP, cycles: 4},
	0x69: {name: "ADC", operate: (*CPU).adc, mode: addrModeIMM, cycles: 2},
	0x6A: {name: "ROR", operate: (*CPU).ror, mode: addrModeIMP, cycles: 2},
	0x6B: {name: "ARR", operate: (*CPU).arr, mode: addrModeIMM, cycles: 2, illegal: true},
	0x6C: {name: "JMP", operate: (*CPU).jmp, mode: addrModeIND, cycles: 5},
	0x6D: {name: "ADC", operate: (*CPU).adc, mode: addrModeABS, cycles: 4},
	0x6E: {name: "ROR", operate: (*CPU).ror, mode: addrModeABS, cycles: 6},
	0x6F: {name: "RRA", operate: (*CPU).rra, mode: addrModeABS, cycles: 6, illegal: true},

	0x70: {name: "BVS", operate: (*CPU).bvs, mode: addrModeREL, cycles: 2},
	0x71: {name: "ADC", operate: (*CPU).adc, mode: addrModeIZY, cycles: 5},
	0x72: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x73: {name: "RRA", operate: (*CPU).rra, mode: addrModeIZY, cycles: 8, illegal: true},
	0x74: {name: "NOP", operate: (*CPU).nop, mode: addrModeZPX, cycles: 4, illegal: true},
	0x75: {name: "ADC", operate: (*CPU).adc, mode: addrModeZPX, cycles: 4},
	0x76: {name: "ROR", operate: (*CPU).ror, mode: addrModeZPX, cycles: 6},
	0x77: {name: "RRA", operate: (*CPU).rra, mode: addrModeZPX, cycles: 6, illegal: true},
	0x78: {name: "SEI", operate: (*CPU).sei, mode: addrModeIMP, cycles: 2},
	0x79: {name: "ADC", operate: (*CPU).adc, mode: addrModeABY, cycles: 4},
	0x7A: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2, illegal: true},
	0x7B: {name: "RRA", operate: (*CPU).rra, mode: addrModeABY, cycles: 7, illegal: true},
	0x7C: {name: "NOP", operate: (*CPU).nop, mode: addrModeABX, cycles: 4, illegal: true},
	0x7D: {name: "ADC", operate: (*CPU).adc, mode: addrModeABX, cycles: 4},
	0x7E: {name: "ROR", operate: (*CPU).ror, mode: addrModeABX, cycles: 7},
	0x7F: {name: "RRA", operate: (*CPU).rra, mode: addrModeABX, cycles: 7, illegal: true},

	0x80: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMM, cycles: 2, illegal: true},
	0x81: {name: "STA", operate: (*CPU).sta, mode: addrModeIZX, cycles: 6},
	0x82: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMM, cycles: 2, illegal: true},
	0x83: {name: "SAX", operate: (*CPU).sax, mode: addrModeIZX, cycles: 6, illegal: true},
	0x84: {name: "STY", operate: (*CPU).sty, mode: addrModeZP0, cycles: 3},
	0x85: {name: "STA", operate: (*CPU).sta, mode: addrModeZP0, cycles: 3},
	0x86: {name: "STX", operate: (*CPU).stx, mode: addrModeZP0, cycles: 3},
	0x87: {name: "SAX", operate: (*CPU).sax, mode: addrModeZP0, cycles: 3, illegal: true},
	0x88: {name: "DEY", operate: (*CPU).dey, mode: addrModeIMP, cycles: 2},
	0x89: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMM, cycles: 2, illegal: true},
	0x8A: {name: "TXA", operate: (*CPU).txa, mode: addrModeIMP, cycles: 2},
	0x8B: {name: "XAA", operate: (*CPU).unstable, mode: addrModeIMM, cycles: 2, illegal: true},
	0x8C: {name: "STY", operate: (*CPU).sty, mode: addrModeABS, cycles: 4},
	0x8D: {name: "STA", operate: (*CPU).sta, mode: addrModeABS, cycles: 4},
	0x8E: {name: "STX", operate: (*CPU).stx, mode: addrModeABS, cycles: 4},
	0x8F: {name: "SAX", operate: (*CPU).sax, mode: addrModeABS, cycles: 4, illegal: true},

	0x90: {name: "BCC", operate: (*CPU).bcc, mode: addrModeREL, cycles: 2},
	0x91: {name: "STA", operate: (*CPU).sta, mode: addrModeIZY, cycles: 6},
	0x92: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0x93: {name: "AHX", operate: (*CPU).unstable, mode: addrModeIZY, cycles: 6, illegal: true},
	0x94: {name: "STY", operate: (*CPU).sty, mode: addrModeZPX, cycles: 4},
	0x95: {name: "STA", operate: (*CPU).sta, mode: addrModeZPX, cycles: 4},
	0x96: {name: "STX", operate: (*CPU).stx, mode: addrModeZPY, cycles: 4},
	0x97: {name: "SAX", operate: (*CPU).sax, mode: addrModeZPY, cycles: 4, illegal: true},
	0x98: {name: "TYA", operate: (*CPU).tya, mode: addrModeIMP, cycles: 2},
	0x99: {name: "STA", operate: (*CPU).sta, mode: addrModeABY, cycles: 5},
	0x9A: {name: "TXS", operate: (*CPU).txs, mode: addrModeIMP, cycles: 2},
	0x9B: {name: "TAS", operate: (*CPU).unstable, mode: addrModeABY, cycles: 5, illegal: true},
	0x9C: {name: "SHY", operate: (*CPU).unstable, mode: addrModeABX, cycles: 5, illegal: true},
	0x9D: {name: "STA", operate: (*CPU).sta, mode: addrModeABX, cycles: 5},
	0x9E: {name: "SHX", operate: (*CPU).unstable, mode: addrModeABY, cycles: 5, illegal: true},
	0x9F: {name: "AHX", operate: (*CPU).unstable, mode: addrModeABY, cycles: 5, illegal: true},

	0xA0: {name: "LDY", operate: (*CPU).ldy, mode: addrModeIMM, cycles: 2},
	0xA1: {name: "LDA", operate: (*CPU).lda, mode: addrModeIZX, cycles: 6},
	0xA2: {name: "LDX", operate: (*CPU).ldx, mode: addrModeIMM, cycles: 2},
	0xA3: {name: "LAX", operate: (*CPU).lax, mode: addrModeIZX, cycles: 6, illegal: true},
	0xA4: {name: "LDY", operate: (*CPU).ldy, mode: addrModeZP0, cycles: 3},
	0xA5: {name: "LDA", operate: (*CPU).lda, mode: addrModeZP0, cycles: 3},
	0xA6: {name: "LDX", operate: (*CPU).ldx, mode: addrModeZP0, cycles: 3},
	0xA7: {name: "LAX", operate: (*CPU).lax, mode: addrModeZP0, cycles: 3, illegal: true},
	0xA8: {name: "TAY", operate: (*CPU).tay, mode: addrModeIMP, cycles: 2},
	0xA9: {name: "LDA", operate: (*CPU).lda, mode: addrModeIMM, cycles: 2},
	0xAA: {name: "TAX", operate: (*CPU).tax, mode: addrModeIMP, cycles: 2},
	0xAB: {name: "LXA", operate: (*CPU).unstable, mode: addrModeIMM, cycles: 2, illegal: true},
	0xAC: {name: "LDY", operate: (*CPU).ldy, mode: addrModeABS, cycles: 4},
	0xAD: {name: "LDA", operate: (*CPU).lda, mode: addrModeABS, cycles: 4},
	0xAE: {name: "LDX", operate: (*CPU).ldx, mode: addrModeABS, cycles: 4},
	0xAF: {name: "LAX", operate: (*CPU).lax, mode: addrModeABS, cycles: 4, illegal: true},

	0xB0: {name: "BCS", operate: (*CPU).bcs, mode: addrModeREL, cycles: 2},
	0xB1: {name: "LDA", operate: (*CPU).lda, mode: addrModeIZY, cycles: 5},
	0xB2: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0xB3: {name: "LAX", operate: (*CPU).lax, mode: addrModeIZY, cycles: 5, illegal: true},
	0xB4: {name: "LDY", operate: (*CPU).ldy, mode: addrModeZPX, cycles: 4},
	0xB5: {name: "LDA", operate: (*CPU).lda, mode: addrModeZPX, cycles: 4},
	0xB6: {name: "LDX", operate: (*CPU).ldx, mode: addrModeZPY, cycles: 4},
	0xB7: {name: "LAX", operate: (*CPU).lax, mode: addrModeZPY, cycles: 4, illegal: true},
	0xB8: {name: "CLV", operate: (*CPU).clv, mode: addrModeIMP, cycles: 2},
	0xB9: {name: "LDA", operate: (*CPU).lda, mode: addrModeABY, cycles: 4},
	0xBA: {name: "TSX", operate: (*CPU).tsx, mode: addrModeIMP, cycles: 2},
	0xBB: {name: "LAS", operate: (*CPU).las, mode: addrModeABY, cycles: 4, illegal: true},
	0xBC: {name: "LDY", operate: (*CPU).ldy, mode: addrModeABX, cycles: 4},
	0xBD: {name: "LDA", operate: (*CPU).lda, mode: addrModeABX, cycles: 4},
	0xBE: {name: "LDX", operate: (*CPU).ldx, mode: addrModeABY, cycles: 4},
	0xBF: {name: "LAX", operate: (*CPU).lax, mode: addrModeABY, cycles: 4, illegal: true},

	0xC0: {name: "CPY", operate: (*CPU).cpy, mode: addrModeIMM, cycles: 2},
	0xC1: {name: "CMP", operate: (*CPU).cmp, mode: addrModeIZX, cycles: 6},
	0xC2: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMM, cycles: 2, illegal: true},
	0xC3: {name: "DCP", operate: (*CPU).dcp, mode: addrModeIZX, cycles: 8, illegal: true},
	0xC4: {name: "CPY", operate: (*CPU).cpy, mode: addrModeZP0, cycles: 3},
	0xC5: {name: "CMP", operate: (*CPU).cmp, mode: addrModeZP0, cycles: 3},
	0xC6: {name: "DEC", operate: (*CPU).dec, mode: addrModeZP0, cycles: 5},
	0xC7: {name: "DCP", operate: (*CPU).dcp, mode: addrModeZP0, cycles: 5, illegal: true},
	0xC8: {name: "INY", operate: (*CPU).iny, mode: addrModeIMP, cycles: 2},
	0xC9: {name: "CMP", operate: (*CPU).cmp, mode: addrModeIMM, cycles: 2},
	0xCA: {name: "DEX", operate: (*CPU).dex, mode: addrModeIMP, cycles: 2},
	0xCB: {name: "AXS", operate: (*CPU).axs, mode: addrModeIMM, cycles: 2, illegal: true},
	0xCC: {name: "CPY", operate: (*CPU).cpy, mode: addrModeABS, cycles: 4},
	0xCD: {name: "CMP", operate: (*CPU).cmp, mode: addrModeABS, cycles: 4},
	0xCE: {name: "DEC", operate: (*CPU).dec, mode: addrModeABS, cycles: 6},
	0xCF: {name: "DCP", operate: (*CPU).dcp, mode: addrModeABS, cycles: 6, illegal: true},

	0xD0: {name: "BNE", operate: (*CPU).bne, mode: addrModeREL, cycles: 2},
	0xD1: {name: "CMP", operate: (*CPU).cmp, mode: addrModeIZY, cycles: 5},
	0xD2: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0xD3: {name: "DCP", operate: (*CPU).dcp, mode: addrModeIZY, cycles: 8, illegal: true},
	0xD4: {name: "NOP", operate: (*CPU).nop, mode: addrModeZPX, cycles: 4, illegal: true},
	0xD5: {name: "CMP", operate: (*CPU).cmp, mode: addrModeZPX, cycles: 4},
	0xD6: {name: "DEC", operate: (*CPU).dec, mode: addrModeZPX, cycles: 6},
	0xD7: {name: "DCP", operate: (*CPU).dcp, mode: addrModeZPX, cycles: 6, illegal: true},
	0xD8: {name: "CLD", operate: (*CPU).cld, mode: addrModeIMP, cycles: 2},
	0xD9: {name: "CMP", operate: (*CPU).cmp, mode: addrModeABY, cycles: 4},
	0xDA: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2, illegal: true},
	0xDB: {name: "DCP", operate: (*CPU).dcp, mode: addrModeABY, cycles: 7, illegal: true},
	0xDC: {name: "NOP", operate: (*CPU).nop, mode: addrModeABX, cycles: 4, illegal: true},
	0xDD: {name: "CMP", operate: (*CPU).cmp, mode: addrModeABX, cycles: 4},
	0xDE: {name: "DEC", operate: (*CPU).dec, mode: addrModeABX, cycles: 7},
	0xDF: {name: "DCP", operate: (*CPU).dcp, mode: addrModeABX, cycles: 7, illegal: true},

	0xE0: {name: "CPX", operate: (*CPU).cpx, mode: addrModeIMM, cycles: 2},
	0xE1: {name: "SBC", operate: (*CPU).sbc, mode: addrModeIZX, cycles: 6},
	0xE2: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMM, cycles: 2, illegal: true},
	0xE3: {name: "ISB", operate: (*CPU).isb, mode: addrModeIZX, cycles: 8, illegal: true},
	0xE4: {name: "CPX", operate: (*CPU).cpx, mode: addrModeZP0, cycles: 3},
	0xE5: {name: "SBC", operate: (*CPU).sbc, mode: addrModeZP0, cycles: 3},
	0xE6: {name: "INC", operate: (*CPU).inc, mode: addrModeZP0, cycles: 5},
	0xE7: {name: "ISB", operate: (*CPU).isb, mode: addrModeZP0, cycles: 5, illegal: true},
	0xE8: {name: "INX", operate: (*CPU).inx, mode: addrModeIMP, cycles: 2},
	0xE9: {name: "SBC", operate: (*CPU).sbc, mode: addrModeIMM, cycles: 2},
	0xEA: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2},
	0xEB: {name: "SBC", operate: (*CPU).sbc, mode: addrModeIMM, cycles: 2, illegal: true},
	0xEC: {name: "CPX", operate: (*CPU).cpx, mode: addrModeABS, cycles: 4},
	0xED: {name: "SBC", operate: (*CPU).sbc, mode: addrModeABS, cycles: 4},
	0xEE: {name: "INC", operate: (*CPU).inc, mode: addrModeABS, cycles: 6},
	0xEF: {name: "ISB", operate: (*CPU).isb, mode: addrModeABS, cycles: 6, illegal: true},

	0xF0: {name: "BEQ", operate: (*CPU).beq, mode: addrModeREL, cycles: 2},
	0xF1: {name: "SBC", operate: (*CPU).sbc, mode: addrModeIZY, cycles: 5},
	0xF2: {name: "JAM", operate: (*CPU).jam, mode: addrModeIMP, cycles: 2, illegal: true},
	0xF3: {name: "ISB", operate: (*CPU).isb, mode: addrModeIZY, cycles: 8, illegal: true},
	0xF4: {name: "NOP", operate: (*CPU).nop, mode: addrModeZPX, cycles: 4, illegal: true},
	0xF5: {name: "SBC", operate: (*CPU).sbc, mode: addrModeZPX, cycles: 4},
	0xF6: {name: "INC", operate: (*CPU).inc, mode: addrModeZPX, cycles: 6},
	0xF7: {name: "ISB", operate: (*CPU).isb, mode: addrModeZPX, cycles: 6, illegal: true},
	0xF8: {name: "SED", operate: (*CPU).sed, mode: addrModeIMP, cycles: 2},
	0xF9: {name: "SBC", operate: (*CPU).sbc, mode: addrModeABY, cycles: 4},
	0xFA: {name: "NOP", operate: (*CPU).nop, mode: addrModeIMP, cycles: 2, illegal: true},
	0xFB: {name: "ISB", operate: (*CPU).isb, mode: addrModeABY, cycles: 7, illegal: true},
	0xFC: {name: "NOP", operate: (*CPU).nop, mode: addrModeABX, cycles: 4, illegal: true},
	0xFD: {name: "SBC", operate: (*CPU).sbc, mode: addrModeABX, cycles: 4},
	0xFE: {name: "INC", operate: (*CPU).inc, mode: addrModeABX, cycles: 7},
	0xFF: {name: "ISB", operate: (*CPU).isb, mode: addrModeABX, cycles: 7, illegal: true},
}
