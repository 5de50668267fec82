package nes

const (
	stackStartAddr = uint16(0x100)

	vectorNMI   = uint16(0xFFFA)
	vectorReset = uint16(0xFFFC)
	vectorIRQ   = uint16(0xFFFE)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused
	flagV                    // Overflow
	flagN                    // Negative
)

type CPU struct {
	a  uint8  // accumulator
	x  uint8  // index register X
	y  uint8  // index register Y
	p  uint8  // status, flagX bits
	sp uint8  // offset into $0100-$01FF
	pc uint16 // program counter

	// borrowed for the duration of one Tic or interrupt sequence
	bus Memory

	opcode   uint8
	addrMode addrMode
	fetched  uint8  // operand for the ALU
	addrAbs  uint16 // resolved operand address
	addrRel  uint16 // sign extended branch offset

	cycles      uint8 // cycles left for the current instruction
	totalCycles uint64
	jammed      bool
}

func NewCPU() *CPU {
	return &CPU{p: flagU}
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.bus.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return read16(c.bus, addr)
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.bus.Write8(addr, data)
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	c.stackPush8(uint8(data >> 8))
	c.stackPush8(uint8(data & 0xff))
}

// Reset puts the CPU into its power-on state and loads PC
// from the reset vector.
func (c *CPU) Reset(bus Memory) {
	c.bus = bus
	defer func() { c.bus = nil }()

	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0xfd
	c.p = flagU
	c.pc = c.read16(vectorReset)

	c.addrAbs = 0
	c.addrRel = 0
	c.fetched = 0
	c.jammed = false

	c.cycles = 8
	c.totalCycles += 8
}

// IRQ is the interrupt request signal. It is ignored while
// the interrupt disable flag is set.
func (c *CPU) IRQ(bus Memory) {
	if c.getFlag(flagI) {
		return
	}
	c.interrupt(bus, vectorIRQ, 7)
}

// NMI is the non-maskable interrupt signal.
func (c *CPU) NMI(bus Memory) {
	c.interrupt(bus, vectorNMI, 8)
}

func (c *CPU) interrupt(bus Memory, vector uint16, cycles uint8) {
	c.bus = bus
	defer func() { c.bus = nil }()

	c.stackPush16(c.pc)
	c.setFlag(flagB, false)
	c.setFlag(flagU, true)
	c.stackPush8(c.p)
	c.setFlag(flagI, true)
	c.pc = c.read16(vector)

	c.cycles = cycles
	c.totalCycles += uint64(cycles)
}

// Tic executes one CPU cycle and
// returns the number of cycles left for the current operation.
// A new instruction is fetched only when the previous one has used up
// all of its cycles.
func (c *CPU) Tic(bus Memory) uint8 {
	if c.jammed {
		return 0
	}

	if c.cycles == 0 {
		c.bus = bus
		c.opcode = c.read8(c.pc)
		c.pc++

		instr := &instructions[c.opcode]
		c.addrMode = instr.mode
		c.cycles = instr.cycles

		extraMode := instr.resolve(c)
		extraOp := instr.operate(c)
		c.cycles += extraMode & extraOp
		c.totalCycles += uint64(c.cycles)
		c.bus = nil

		if c.jammed {
			c.cycles = 0
			return 0
		}
	}

	c.cycles--
	return c.cycles
}

// Idle reports whether the CPU is between two instructions.
func (c *CPU) Idle() bool {
	return c.cycles == 0
}

func (c *CPU) Jammed() bool {
	return c.jammed
}

// CPUState is a snapshot of the registers for inspectors.
type CPUState struct {
	A, X, Y     uint8
	P           uint8
	SP          uint8
	PC          uint16
	Opcode      uint8
	Cycles      uint8
	TotalCycles uint64
	Jammed      bool
}

func (c *CPU) State() CPUState {
	return CPUState{
		A:           c.a,
		X:           c.x,
		Y:           c.y,
		P:           c.p,
		SP:          c.sp,
		PC:          c.pc,
		Opcode:      c.opcode,
		Cycles:      c.cycles,
		TotalCycles: c.totalCycles,
		Jammed:      c.jammed,
	}
}

// StatusString renders P as NV-BDIZC, lower case for cleared flags.
func (s CPUState) StatusString() string {
	const names = "CZIDBUVN"
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ch := names[i]
		if s.P&(1<<i) == 0 {
			ch += 'a' - 'A'
		}
		out[7-i] = ch
	}
	return string(out)
}
