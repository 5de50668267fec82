package nes

// Memory is what the CPU sees: the 16-bit address space.
type Memory interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Peeker reads memory without side effects. Inspectors and the
// disassembler use it so they never disturb register state.
type Peeker interface {
	Peek8(addr uint16) uint8
}

func read16(m Memory, addr uint16) uint16 {
	return uint16(m.Read8(addr)) | uint16(m.Read8(addr+1))<<8
}

func peek16(m Peeker, addr uint16) uint16 {
	return uint16(m.Peek8(addr)) | uint16(m.Peek8(addr+1))<<8
}
