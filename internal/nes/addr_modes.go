package nes

type addrMode uint8

const (
	// Implied
	// Operand is implicit or the accumulator.
	// Example: CLC, LSR A
	addrModeIMP addrMode = iota + 1

	// Immediate
	// Operand is a constant value.
	// Example: LDA #$10 (Load Accumulator with 10)
	addrModeIMM

	// Zero Page
	// Operand is located in the first 256 bytes of memory.
	// Example: LDA $10 (Load Accumulator from address $0010)
	addrModeZP0

	// Zero Page, X
	// Operand address is in zero page plus the X register, wrapping inside the page.
	// Example: LDA $10,X (Load Accumulator from address $0010 + X)
	addrModeZPX

	// Zero Page, Y
	// Operand address is in zero page plus the Y register, wrapping inside the page.
	// Example: LDX $10,Y (Load X Register from address $0010 + Y)
	addrModeZPY

	// Relative
	// Used for branching instructions.
	// The operand is a signed 8-bit offset from the address of the next instruction.
	// Example: BNE $10 (Branch if Not Equal, with an offset of $10)
	addrModeREL

	// Absolute
	// Full 16-bit address.
	// Example: LDA $1234 (Load Accumulator from address $1234)
	addrModeABS

	// Absolute, X
	// Full 16-bit address plus the X register.
	// Example: LDA $1234,X (Load Accumulator from address $1234 + X)
	addrModeABX

	// Absolute, Y
	// Full 16-bit address plus the Y register.
	// Example: LDA $1234,Y (Load Accumulator from address $1234 + Y)
	addrModeABY

	// Indirect
	// Address is fetched from a pointer.
	// Example: JMP ($1234) (Jump to address stored at $1234)
	addrModeIND

	// Indexed Indirect (X)
	// Zero page pointer indexed by X.
	// Example: LDA ($10,X) (Load Accumulator from address stored at $0010 + X)
	addrModeIZX

	// Indirect Indexed (Y)
	// Address is fetched from zero page pointer plus Y.
	// Example: LDA ($10),Y (Load Accumulator from address stored at $0010 + Y)
	addrModeIZY
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMP:
		return "IMP"
	case addrModeIMM:
		return "IMM"
	case addrModeZP0:
		return "ZP0"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeREL:
		return "REL"
	case addrModeABS:
		return "ABS"
	case addrModeABX:
		return "ABX"
	case addrModeABY:
		return "ABY"
	case addrModeIND:
		return "IND"
	case addrModeIZX:
		return "IZX"
	case addrModeIZY:
		return "IZY"
	}
	return "???"
}

// operandBytes is the number of bytes following the opcode.
func (mode addrMode) operandBytes() uint16 {
	switch mode {
	case addrModeIMP:
		return 0
	case addrModeABS, addrModeABX, addrModeABY, addrModeIND:
		return 2
	}
	return 1
}

// Each resolver leaves the operand address in addrAbs (or addrRel for
// branches) and returns 1 if the access may cost an extra cycle.

func (c *CPU) imp() uint8 {
	c.fetched = c.a
	return 0
}

func (c *CPU) imm() uint8 {
	c.addrAbs = c.pc
	c.pc++
	return 0
}

func (c *CPU) zp0() uint8 {
	c.addrAbs = uint16(c.read8(c.pc))
	c.pc++
	return 0
}

func (c *CPU) zpx() uint8 {
	c.addrAbs = uint16(c.read8(c.pc) + c.x)
	c.pc++
	return 0
}

func (c *CPU) zpy() uint8 {
	c.addrAbs = uint16(c.read8(c.pc) + c.y)
	c.pc++
	return 0
}

func (c *CPU) rel() uint8 {
	c.addrRel = uint16(c.read8(c.pc))
	c.pc++
	if c.addrRel&0x80 > 0 {
		c.addrRel |= 0xff00 // add leading 1 s to save the sign
	}
	return 0
}

func (c *CPU) abs() uint8 {
	c.addrAbs = c.read16(c.pc)
	c.pc += 2
	return 0
}

func (c *CPU) abx() uint8 {
	base := c.read16(c.pc)
	c.pc += 2
	c.addrAbs = base + uint16(c.x)
	if isDiffPage(base, c.addrAbs) {
		return 1
	}
	return 0
}

func (c *CPU) aby() uint8 {
	base := c.read16(c.pc)
	c.pc += 2
	c.addrAbs = base + uint16(c.y)
	if isDiffPage(base, c.addrAbs) {
		return 1
	}
	return 0
}

// ind reproduces the 6502 bug: a pointer at $xxFF takes its high byte
// from $xx00 instead of the next page.
func (c *CPU) ind() uint8 {
	ptr := c.read16(c.pc)
	c.pc += 2

	hiAddr := ptr + 1
	if ptr&0x00ff == 0x00ff {
		hiAddr = ptr & 0xff00
	}
	c.addrAbs = uint16(c.read8(ptr)) | uint16(c.read8(hiAddr))<<8
	return 0
}

func (c *CPU) izx() uint8 {
	ptr := c.read8(c.pc) + c.x
	c.pc++

	lo := uint16(c.read8(uint16(ptr)))
	hi := uint16(c.read8(uint16(ptr + 1)))
	c.addrAbs = lo | hi<<8
	return 0
}

func (c *CPU) izy() uint8 {
	ptr := c.read8(c.pc)
	c.pc++

	lo := uint16(c.read8(uint16(ptr)))
	hi := uint16(c.read8(uint16(ptr + 1)))
	base := lo | hi<<8
	c.addrAbs = base + uint16(c.y)
	if isDiffPage(base, c.addrAbs) {
		return 1
	}
	return 0
}
