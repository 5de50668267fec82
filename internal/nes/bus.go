package nes

import (
	"log"
)

// Bus decodes the CPU address space. It owns RAM, the cartridge and the PPU;
// every PPU register access goes through here.
//
// $0000-$07FF: 2 KB of internal RAM
// $0800-$1FFF: Mirrors of $0000-$07FF
// $2000-$2007: PPU (Picture Processing Unit) registers
// $2008-$3FFF: Mirrors of $2000-$2007 (every 8 bytes)
// $4000-$4017: APU (Audio Processing Unit) and I/O registers
// $4018-$401F: APU and I/O functionality that is normally disabled
// $4020-$7FFF: Cartridge expansion and PRG-RAM, not mapped by NROM
// $8000-$FFFF: PRG-ROM
type Bus struct {
	ram  *RAM
	ppu  *PPU
	cart *Cart

	log   *log.Logger
	fault error
}

func NewBus(cart *Cart, logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.Default()
	}
	return &Bus{
		ram:  NewRAM(),
		ppu:  NewPPU(cart, cart.Mirroring()),
		cart: cart,
		log:  logger,
	}
}

func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	// read from ram
	case addr < 0x2000:
		return b.ram.Read8(addr & 0x07FF)
	// read from ppu
	case addr < 0x4000:
		data, err := b.ppu.readRegister(addr & 0x7)
		if err != nil {
			b.setFault("read", addr, err)
		}
		return data
	// read from cartridge
	case addr >= 0x8000:
		return b.cart.ReadPRG(addr)
	}

	b.log.Printf("bus: unmapped read at $%04X\n", addr)
	return 0
}

func (b *Bus) Write8(addr uint16, data uint8) {
	switch {
	// write to ram
	case addr < 0x2000:
		b.ram.Write8(addr&0x07FF, data)
		return
	// write to ppu
	case addr < 0x4000:
		if err := b.ppu.writeRegister(addr&0x7, data); err != nil {
			b.setFault("write", addr, err)
		}
		return
	// write to cartridge
	case addr >= 0x8000:
		b.setFault("write", addr, ErrROMWrite)
		return
	}

	b.log.Printf("bus: unmapped write $%02X at $%04X\n", data, addr)
}

// Peek8 is Read8 without side effects and diagnostics.
func (b *Bus) Peek8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read8(addr & 0x07FF)
	case addr < 0x4000:
		return b.ppu.peekRegister(addr & 0x7)
	case addr >= 0x8000:
		return b.cart.ReadPRG(addr)
	}
	return 0
}

// Err returns the first protocol fault since the previous call and clears it.
func (b *Bus) Err() error {
	err := b.fault
	b.fault = nil
	return err
}

func (b *Bus) setFault(op string, addr uint16, err error) {
	if b.fault != nil {
		return
	}
	b.fault = &Fault{Op: op, Addr: addr, Err: err}
}
