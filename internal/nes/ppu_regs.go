package nes

import "fmt"

// PPU registers as seen from the CPU, $2000-$2007 mirrored every 8 bytes.
const (
	regCtrl    = 0x0 // $2000 PPUCTRL, write
	regMask    = 0x1 // $2001 PPUMASK, write
	regStatus  = 0x2 // $2002 PPUSTATUS, read
	regOAMAddr = 0x3 // $2003 OAMADDR, write
	regOAMData = 0x4 // $2004 OAMDATA, read/write
	regScroll  = 0x5 // $2005 PPUSCROLL, write x2
	regAddr    = 0x6 // $2006 PPUADDR, write x2
	regData    = 0x7 // $2007 PPUDATA, read/write
)

func (p *PPU) readRegister(reg uint16) (uint8, error) {
	switch reg {
	case regStatus:
		return p.readStatus(), nil
	case regOAMData:
		return p.oam[p.oamAddr], nil
	case regData:
		return p.readData(), nil
	}
	return 0, ErrWriteOnly
}

func (p *PPU) writeRegister(reg uint16, data uint8) error {
	switch reg {
	case regCtrl:
		p.ctrl = data
	case regMask:
		p.mask = data
	case regStatus:
		return ErrReadOnly
	case regOAMAddr:
		p.oamAddr = data
	case regOAMData:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case regScroll:
		p.writeScroll(data)
	case regAddr:
		p.writeAddr(data)
	case regData:
		return p.writeData(data)
	}
	return nil
}

// peekRegister returns what the register holds without the side effects
// of a real read. Write-only registers show their last written value.
func (p *PPU) peekRegister(reg uint16) uint8 {
	switch reg {
	case regCtrl:
		return p.ctrl
	case regMask:
		return p.mask
	case regStatus:
		return (p.status & 0xE0) | (p.buffer & 0x1F)
	case regOAMAddr:
		return p.oamAddr
	case regOAMData:
		return p.oam[p.oamAddr]
	case regScroll:
		return p.scrollX
	case regAddr:
		return uint8(p.vramAddr)
	}
	return p.buffer
}

// readStatus returns the status bits with the stale buffer as noise
// in the low 5 bits. Reading clears vblank and the address latch.
func (p *PPU) readStatus() uint8 {
	status := (p.status & 0xE0) | (p.buffer & 0x1F)
	p.status &^= statusVBlank
	p.addrLatch = false
	return status
}

func (p *PPU) writeScroll(data uint8) {
	if !p.addrLatch {
		p.scrollX = data
	} else {
		p.scrollY = data
	}
	p.addrLatch = !p.addrLatch
}

// writeAddr takes the high byte first, then the low byte.
func (p *PPU) writeAddr(data uint8) {
	if !p.addrLatch {
		p.vramAddr = uint16(data)<<8 | p.vramAddr&0x00FF
	} else {
		p.vramAddr = p.vramAddr&0xFF00 | uint16(data)
	}
	p.vramAddr &= 0x3FFF
	p.addrLatch = !p.addrLatch
}

func (p *PPU) incrementAddr() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
	p.vramAddr &= 0x3FFF
}

// readData returns the value buffered by the previous read, except for
// palette reads which are not delayed. The buffer then gets the nametable
// byte underneath the palette.
func (p *PPU) readData() uint8 {
	addr := p.vramAddr
	p.incrementAddr()

	if addr >= 0x3F00 {
		p.buffer = p.read8(addr - 0x1000)
		return p.read8(addr)
	}
	data := p.buffer
	p.buffer = p.read8(addr)
	return data
}

func (p *PPU) writeData(data uint8) error {
	addr := p.vramAddr
	p.incrementAddr()
	return p.write8(addr, data)
}

// $0000-$0FFF: Pattern table 0
// $1000-$1FFF: Pattern table 1
// $2000-$23FF: Nametable 0
// $2400-$27FF: Nametable 1
// $2800-$2BFF: Nametable 2
// $2C00-$2FFF: Nametable 3
// $3000-$3EFF: Mirrors of $2000-$2EFF
// $3F00-$3F1F: Palette RAM indexes
// $3F20-$3FFF: Mirrors of $3F00-$3F1F
func (p *PPU) read8(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.chr.ReadCHR(addr)
	case addr < 0x3F00:
		return p.vram[p.nametableIndex(addr)]
	}
	return p.palette[paletteIndex(addr)]
}

func (p *PPU) write8(addr uint16, data uint8) error {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return fmt.Errorf("%w: CHR $%04X", ErrROMWrite, addr)
	case addr < 0x3F00:
		p.vram[p.nametableIndex(addr)] = data
	default:
		p.palette[paletteIndex(addr)] = data
	}
	return nil
}

// nametableIndex folds the four logical nametables onto the two
// physical ones.
//
//	horizontal: NT0 NT1 -> bank 0, NT2 NT3 -> bank 1
//	vertical:   NT0 NT2 -> bank 0, NT1 NT3 -> bank 1
//
// Four-screen carts carry extra VRAM that is not modelled, they fold as vertical.
func (p *PPU) nametableIndex(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0FFF
	table := addr / 0x400
	offset := addr & 0x3FF

	var bank uint16
	switch p.mirroring {
	case MirrorHorizontal:
		bank = table / 2
	default:
		bank = table % 2
	}
	return bank*0x400 + offset
}

// paletteIndex handles the $3F20-$3FFF mirrors and the sprite palette
// entries $3F10/$3F14/$3F18/$3F1C which alias the background ones.
func paletteIndex(addr uint16) uint16 {
	i := addr & 0x1F
	if i >= 0x10 && i&0x03 == 0 {
		i -= 0x10
	}
	return i
}
