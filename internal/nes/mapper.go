package nes

import "fmt"

// Mapper translates CPU and PPU addresses into offsets of the cartridge
// memory. ok is false when the address is not backed by the cartridge.
type Mapper interface {
	MapPRG(addr uint16) (offset int, ok bool)
	MapCHR(addr uint16) (offset int, ok bool)
}

func NewMapper(cart *Cart) (Mapper, error) {
	switch cart.header.MapperID {
	case 0:
		return &Mapper0{prgBanks: cart.header.PrgBanks}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, cart.header.MapperID)
}

// Mapper0 (NROM) has no bank switching.
// A single 16KB PRG bank is mirrored into $C000-$FFFF.
type Mapper0 struct {
	prgBanks uint8
}

func (m Mapper0) MapPRG(addr uint16) (int, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if m.prgBanks > 1 {
		return int(addr & 0x7FFF), true
	}
	return int(addr & 0x3FFF), true
}

func (m Mapper0) MapCHR(addr uint16) (int, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	return int(addr), true
}
