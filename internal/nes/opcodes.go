package nes

// Operation handlers return 1 when the instruction pays the extra cycle
// for a page crossing reported by its addressing mode.

// fetch reads the operand. Implied mode already holds the accumulator
// in fetched, everything else reads from the resolved address.
func (c *CPU) fetch() uint8 {
	if c.addrMode != addrModeIMP {
		c.fetched = c.read8(c.addrAbs)
	}
	return c.fetched
}

// writeBack stores the result of a read-modify-write instruction
// into the accumulator or memory, depending on the addressing mode.
func (c *CPU) writeBack(data uint8) {
	if c.addrMode == addrModeIMP {
		c.a = data
		return
	}
	c.write8(c.addrAbs, data)
}

func (c *CPU) addWithCarry(value uint8) {
	sum := uint16(c.a) + uint16(value)
	if c.getFlag(flagC) {
		sum++
	}
	result := uint8(sum)
	c.setFlag(flagC, sum > 0xff)
	// overflow when both inputs have the same sign and the result has another
	c.setFlag(flagV, (^(c.a^value)&(c.a^result))&0x80 != 0)
	c.a = result
	c.setFlagsZN(c.a)
}

func (c *CPU) compare(reg uint8) {
	value := c.fetch()
	c.setFlag(flagC, reg >= value)
	c.setFlagsZN(reg - value)
}

// branchIf takes one more cycle when the branch is taken
// and another one when it lands on a different page.
func (c *CPU) branchIf(condition bool) uint8 {
	if !condition {
		return 0
	}
	c.cycles++
	c.addrAbs = c.pc + c.addrRel
	if isDiffPage(c.pc, c.addrAbs) {
		c.cycles++
	}
	c.pc = c.addrAbs
	return 0
}

// Add with Carry
func (c *CPU) adc() uint8 {
	c.addWithCarry(c.fetch())
	return 1
}

// Logical AND
func (c *CPU) and() uint8 {
	c.a &= c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Arithmetic Shift Left
func (c *CPU) asl() uint8 {
	value := c.fetch()
	c.setFlag(flagC, value&0x80 > 0)
	result := value << 1
	c.setFlagsZN(result)
	c.writeBack(result)
	return 0
}

// Branch if Carry Clear
func (c *CPU) bcc() uint8 { return c.branchIf(!c.getFlag(flagC)) }

// Branch if Carry Set
func (c *CPU) bcs() uint8 { return c.branchIf(c.getFlag(flagC)) }

// Branch if Equal
func (c *CPU) beq() uint8 { return c.branchIf(c.getFlag(flagZ)) }

// Branch if Minus
func (c *CPU) bmi() uint8 { return c.branchIf(c.getFlag(flagN)) }

// Branch if Not Equal
func (c *CPU) bne() uint8 { return c.branchIf(!c.getFlag(flagZ)) }

// Branch if Positive
func (c *CPU) bpl() uint8 { return c.branchIf(!c.getFlag(flagN)) }

// Branch if Overflow Clear
func (c *CPU) bvc() uint8 { return c.branchIf(!c.getFlag(flagV)) }

// Branch if Overflow Set
func (c *CPU) bvs() uint8 { return c.branchIf(c.getFlag(flagV)) }

// Bit Test
func (c *CPU) bit() uint8 {
	value := c.fetch()
	c.setFlag(flagZ, c.a&value == 0)
	c.setFlag(flagN, value&flagN > 0)
	c.setFlag(flagV, value&flagV > 0)
	return 0
}

// Force Interrupt
func (c *CPU) brk() uint8 {
	// the byte after BRK is padding
	c.pc++
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagB | flagU)
	c.setFlag(flagI, true)
	c.pc = c.read16(vectorIRQ)
	return 0
}

// Clear Carry Flag
func (c *CPU) clc() uint8 { c.setFlag(flagC, false); return 0 }

// Clear Decimal Mode
func (c *CPU) cld() uint8 { c.setFlag(flagD, false); return 0 }

// Clear Interrupt Disable
func (c *CPU) cli() uint8 { c.setFlag(flagI, false); return 0 }

// Clear Overflow Flag
func (c *CPU) clv() uint8 { c.setFlag(flagV, false); return 0 }

// Compare
func (c *CPU) cmp() uint8 {
	c.compare(c.a)
	return 1
}

// Compare X Register
func (c *CPU) cpx() uint8 {
	c.compare(c.x)
	return 0
}

// Compare Y Register
func (c *CPU) cpy() uint8 {
	c.compare(c.y)
	return 0
}

// Decrement Memory
func (c *CPU) dec() uint8 {
	result := c.fetch() - 1
	c.setFlagsZN(result)
	c.write8(c.addrAbs, result)
	return 0
}

// Decrement X Register
func (c *CPU) dex() uint8 {
	c.x--
	c.setFlagsZN(c.x)
	return 0
}

// Decrement Y Register
func (c *CPU) dey() uint8 {
	c.y--
	c.setFlagsZN(c.y)
	return 0
}

// Exclusive OR
func (c *CPU) eor() uint8 {
	c.a ^= c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Increment Memory
func (c *CPU) inc() uint8 {
	result := c.fetch() + 1
	c.setFlagsZN(result)
	c.write8(c.addrAbs, result)
	return 0
}

// Increment X Register
func (c *CPU) inx() uint8 {
	c.x++
	c.setFlagsZN(c.x)
	return 0
}

// Increment Y Register
func (c *CPU) iny() uint8 {
	c.y++
	c.setFlagsZN(c.y)
	return 0
}

// Jump
func (c *CPU) jmp() uint8 {
	c.pc = c.addrAbs
	return 0
}

// Jump to Subroutine
func (c *CPU) jsr() uint8 {
	// the pushed address is the last byte of the JSR instruction
	c.pc--
	c.stackPush16(c.pc)
	c.pc = c.addrAbs
	return 0
}

// Load Accumulator
func (c *CPU) lda() uint8 {
	c.a = c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Load X Register
func (c *CPU) ldx() uint8 {
	c.x = c.fetch()
	c.setFlagsZN(c.x)
	return 1
}

// Load Y Register
func (c *CPU) ldy() uint8 {
	c.y = c.fetch()
	c.setFlagsZN(c.y)
	return 1
}

// Logical Shift Right
func (c *CPU) lsr() uint8 {
	value := c.fetch()
	c.setFlag(flagC, value&0x01 > 0)
	result := value >> 1
	c.setFlagsZN(result)
	c.writeBack(result)
	return 0
}

// No Operation. The unofficial variants with a memory operand
// skip its bytes and pay for page crossings, but never touch the bus.
func (c *CPU) nop() uint8 {
	return 1
}

// Logical Inclusive OR
func (c *CPU) ora() uint8 {
	c.a |= c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Push Accumulator
func (c *CPU) pha() uint8 {
	c.stackPush8(c.a)
	return 0
}

// Push Processor Status
func (c *CPU) php() uint8 {
	c.stackPush8(c.p | flagB | flagU)
	return 0
}

// Pull Accumulator
func (c *CPU) pla() uint8 {
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
	return 0
}

// Pull Processor Status
func (c *CPU) plp() uint8 {
	c.p = (c.stackPop8() | flagU) & ^flagB
	return 0
}

// Rotate Left
func (c *CPU) rol() uint8 {
	value := c.fetch()
	result := value << 1
	if c.getFlag(flagC) {
		result |= 0x01
	}
	c.setFlag(flagC, value&0x80 > 0)
	c.setFlagsZN(result)
	c.writeBack(result)
	return 0
}

// Rotate Right
func (c *CPU) ror() uint8 {
	value := c.fetch()
	result := value >> 1
	if c.getFlag(flagC) {
		result |= 0x80
	}
	c.setFlag(flagC, value&0x01 > 0)
	c.setFlagsZN(result)
	c.writeBack(result)
	return 0
}

// Return from Interrupt
func (c *CPU) rti() uint8 {
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
	return 0
}

// Return from Subroutine
func (c *CPU) rts() uint8 {
	c.pc = c.stackPop16()
	c.pc++
	return 0
}

// Subtract with Carry
func (c *CPU) sbc() uint8 {
	c.addWithCarry(^c.fetch())
	return 1
}

// Set Carry Flag
func (c *CPU) sec() uint8 { c.setFlag(flagC, true); return 0 }

// Set Decimal Flag
func (c *CPU) sed() uint8 { c.setFlag(flagD, true); return 0 }

// Set Interrupt Disable
func (c *CPU) sei() uint8 { c.setFlag(flagI, true); return 0 }

// Store Accumulator
func (c *CPU) sta() uint8 {
	c.write8(c.addrAbs, c.a)
	return 0
}

// Store X Register
func (c *CPU) stx() uint8 {
	c.write8(c.addrAbs, c.x)
	return 0
}

// Store Y Register
func (c *CPU) sty() uint8 {
	c.write8(c.addrAbs, c.y)
	return 0
}

// Transfer Accumulator to X
func (c *CPU) tax() uint8 {
	c.x = c.a
	c.setFlagsZN(c.x)
	return 0
}

// Transfer Accumulator to Y
func (c *CPU) tay() uint8 {
	c.y = c.a
	c.setFlagsZN(c.y)
	return 0
}

// Transfer Stack Pointer to X
func (c *CPU) tsx() uint8 {
	c.x = c.sp
	c.setFlagsZN(c.x)
	return 0
}

// Transfer X to Accumulator
func (c *CPU) txa() uint8 {
	c.a = c.x
	c.setFlagsZN(c.a)
	return 0
}

// Transfer X to Stack Pointer
func (c *CPU) txs() uint8 {
	c.sp = c.x
	return 0
}

// Transfer Y to Accumulator
func (c *CPU) tya() uint8 {
	c.a = c.y
	c.setFlagsZN(c.a)
	return 0
}

//
// unofficial opcodes
//

// LDA + LDX
func (c *CPU) lax() uint8 {
	c.a = c.fetch()
	c.x = c.a
	c.setFlagsZN(c.a)
	return 1
}

// store A & X
func (c *CPU) sax() uint8 {
	c.write8(c.addrAbs, c.a&c.x)
	return 0
}

// DEC + CMP
func (c *CPU) dcp() uint8 {
	value := c.fetch() - 1
	c.write8(c.addrAbs, value)
	c.setFlag(flagC, c.a >= value)
	c.setFlagsZN(c.a - value)
	return 0
}

// INC + SBC
func (c *CPU) isb() uint8 {
	value := c.fetch() + 1
	c.write8(c.addrAbs, value)
	c.addWithCarry(^value)
	return 0
}

// ASL + ORA
func (c *CPU) slo() uint8 {
	value := c.fetch()
	c.setFlag(flagC, value&0x80 > 0)
	value <<= 1
	c.write8(c.addrAbs, value)
	c.a |= value
	c.setFlagsZN(c.a)
	return 0
}

// ROL + AND
func (c *CPU) rla() uint8 {
	value := c.fetch()
	result := value << 1
	if c.getFlag(flagC) {
		result |= 0x01
	}
	c.setFlag(flagC, value&0x80 > 0)
	c.write8(c.addrAbs, result)
	c.a &= result
	c.setFlagsZN(c.a)
	return 0
}

// LSR + EOR
func (c *CPU) sre() uint8 {
	value := c.fetch()
	c.setFlag(flagC, value&0x01 > 0)
	value >>= 1
	c.write8(c.addrAbs, value)
	c.a ^= value
	c.setFlagsZN(c.a)
	return 0
}

// ROR + ADC
func (c *CPU) rra() uint8 {
	value := c.fetch()
	result := value >> 1
	if c.getFlag(flagC) {
		result |= 0x80
	}
	c.setFlag(flagC, value&0x01 > 0)
	c.write8(c.addrAbs, result)
	c.addWithCarry(result)
	return 0
}

// AND, then N is copied into C
func (c *CPU) anc() uint8 {
	c.a &= c.fetch()
	c.setFlagsZN(c.a)
	c.setFlag(flagC, c.getFlag(flagN))
	return 0
}

// AND + LSR A
func (c *CPU) alr() uint8 {
	c.a &= c.fetch()
	c.setFlag(flagC, c.a&0x01 > 0)
	c.a >>= 1
	c.setFlagsZN(c.a)
	return 0
}

// AND + ROR A with C and V taken from bits 6 and 5 of the result
func (c *CPU) arr() uint8 {
	c.a &= c.fetch()
	c.a >>= 1
	if c.getFlag(flagC) {
		c.a |= 0x80
	}
	c.setFlagsZN(c.a)
	bit6 := c.a&0x40 > 0
	bit5 := c.a&0x20 > 0
	c.setFlag(flagC, bit6)
	c.setFlag(flagV, bit6 != bit5)
	return 0
}

// X = (A & X) - operand, without borrow
func (c *CPU) axs() uint8 {
	value := c.fetch()
	ax := c.a & c.x
	c.setFlag(flagC, ax >= value)
	c.x = ax - value
	c.setFlagsZN(c.x)
	return 0
}

// A, X, SP = operand & SP
func (c *CPU) las() uint8 {
	value := c.fetch() & c.sp
	c.a = value
	c.x = value
	c.sp = value
	c.setFlagsZN(value)
	return 1
}

// unstable skips the opcodes whose result depends on the chip
// (XAA, LXA, AHX, TAS, SHX, SHY). Only the operand bytes are consumed.
func (c *CPU) unstable() uint8 {
	return 0
}

// jam freezes the CPU until the next reset.
func (c *CPU) jam() uint8 {
	c.jammed = true
	return 0
}
