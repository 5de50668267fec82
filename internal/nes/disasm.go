package nes

import "fmt"

// Disassemble returns a map of addresses and their corresponding instructions
// for [from, to]. Memory is read through Peek8 so nothing changes state.
func Disassemble(mem Peeker, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string, int(to-from)+1)

	addr := uint32(from)
	for addr <= uint32(to) {
		pc := uint16(addr)
		line, size := disassembleAt(mem, pc)
		disasm[pc] = line
		addr += uint32(size)
	}

	return disasm
}

// disassembleAt formats the instruction at pc and returns its size in bytes.
func disassembleAt(mem Peeker, pc uint16) (string, uint16) {
	opcode := mem.Peek8(pc)
	instr := &instructions[opcode]

	name := instr.name
	if instr.illegal {
		name = "*" + name
	}

	operandAddr := pc + 1
	var operand string
	switch instr.mode {
	case addrModeIMP:
		operand = ""
	case addrModeIMM:
		operand = fmt.Sprintf(" #$%02X", mem.Peek8(operandAddr))
	case addrModeZP0:
		operand = fmt.Sprintf(" $%02X", mem.Peek8(operandAddr))
	case addrModeZPX:
		operand = fmt.Sprintf(" $%02X,X", mem.Peek8(operandAddr))
	case addrModeZPY:
		operand = fmt.Sprintf(" $%02X,Y", mem.Peek8(operandAddr))
	case addrModeREL:
		offset := uint16(mem.Peek8(operandAddr))
		if offset&0x80 > 0 {
			offset |= 0xff00 // add leading 1 s to save the sign
		}
		operand = fmt.Sprintf(" $%04X", pc+2+offset)
	case addrModeABS:
		operand = fmt.Sprintf(" $%04X", peek16(mem, operandAddr))
	case addrModeABX:
		operand = fmt.Sprintf(" $%04X,X", peek16(mem, operandAddr))
	case addrModeABY:
		operand = fmt.Sprintf(" $%04X,Y", peek16(mem, operandAddr))
	case addrModeIND:
		operand = fmt.Sprintf(" ($%04X)", peek16(mem, operandAddr))
	case addrModeIZX:
		operand = fmt.Sprintf(" ($%02X,X)", mem.Peek8(operandAddr))
	case addrModeIZY:
		operand = fmt.Sprintf(" ($%02X),Y", mem.Peek8(operandAddr))
	}

	line := fmt.Sprintf("$%04X: %s%s {%s}", pc, name, operand, instr.mode)
	return line, 1 + instr.mode.operandBytes()
}
