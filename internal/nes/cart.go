package nes

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e // "NES\x1a" read as little endian
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	trainerSizeBytes = 512
)

type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	}
	return "???"
}

// Header is the decoded 16-byte iNES header.
type Header struct {
	PrgBanks   uint8 // 16KB units
	ChrBanks   uint8 // 8KB units
	MapperID   uint8
	Mirroring  Mirroring
	Trainer    bool
	Battery    bool
	PrgRAMSize uint8
	TVSystem   [2]uint8
}

// Cart is an immutable cartridge image.
// Nothing outside of the loader writes into prgMem or chrMem.
type Cart struct {
	header Header

	prgMem []uint8
	chrMem []uint8

	mapper Mapper
}

// NewCartFromFile reads a .nes file and returns a Cart struct.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	return NewCart(file)
}

// NewCart parses an iNES image from r.
func NewCart(r io.Reader) (*Cart, error) {
	var raw struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("%w: couldn't read the header: %s", ErrInvalidFormat, err)
	}
	if raw.Magic != inesMagic {
		return nil, fmt.Errorf("%w: bad magic %08X", ErrInvalidFormat, raw.Magic)
	}
	if raw.PrgRomSize == 0 {
		return nil, fmt.Errorf("%w: no PRG ROM banks", ErrInvalidFormat)
	}

	header := Header{
		PrgBanks: raw.PrgRomSize,
		ChrBanks: raw.ChrRomSize,
		// flag6 and flag7 contain part of the mapper ID in 4 high bits
		// flag6: lower 4 bits of mapper ID
		// flag7: upper 4 bits of mapper ID
		MapperID:   (raw.Flags7 & 0xf0) | (raw.Flags6 >> 4),
		Trainer:    raw.Flags6&0x04 != 0,
		Battery:    raw.Flags6&0x02 != 0,
		PrgRAMSize: raw.Flags8,
		TVSystem:   [2]uint8{raw.Flags9, raw.Flags10},
	}
	switch {
	case raw.Flags6&0x08 != 0:
		header.Mirroring = MirrorFourScreen
	case raw.Flags6&0x01 != 0:
		header.Mirroring = MirrorVertical
	default:
		header.Mirroring = MirrorHorizontal
	}

	if header.Trainer {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, fmt.Errorf("%w: couldn't skip the trainer: %s", ErrInvalidFormat, err)
		}
	}

	cart := &Cart{
		header: header,
		prgMem: make([]uint8, int(header.PrgBanks)*prgBankSizeBytes),
		chrMem: make([]uint8, int(header.ChrBanks)*chrBankSizeBytes),
	}

	if _, err := io.ReadFull(r, cart.prgMem); err != nil {
		return nil, fmt.Errorf("%w: couldn't read PRG ROM (%d bytes): %s", ErrInvalidFormat, len(cart.prgMem), err)
	}
	if _, err := io.ReadFull(r, cart.chrMem); err != nil {
		return nil, fmt.Errorf("%w: couldn't read CHR ROM (%d bytes): %s", ErrInvalidFormat, len(cart.chrMem), err)
	}

	mapper, err := NewMapper(cart)
	if err != nil {
		return nil, err
	}
	cart.mapper = mapper

	return cart, nil
}

func (c *Cart) Header() Header         { return c.header }
func (c *Cart) MapperID() uint8        { return c.header.MapperID }
func (c *Cart) Mirroring() Mirroring   { return c.header.Mirroring }
func (c *Cart) PRGLen() int            { return len(c.prgMem) }
func (c *Cart) CHRLen() int            { return len(c.chrMem) }
func (c *Cart) PRGAt(offset int) uint8 { return c.prgMem[offset] }
func (c *Cart) CHRAt(offset int) uint8 { return c.chrMem[offset] }

// ReadPRG reads program ROM through the mapper. addr is a CPU address.
func (c *Cart) ReadPRG(addr uint16) uint8 {
	offset, ok := c.mapper.MapPRG(addr)
	if !ok {
		return 0
	}
	return c.prgMem[offset]
}

// ReadCHR reads pattern data through the mapper. addr is a PPU address.
func (c *Cart) ReadCHR(addr uint16) uint8 {
	offset, ok := c.mapper.MapCHR(addr)
	if !ok || offset >= len(c.chrMem) {
		return 0
	}
	return c.chrMem[offset]
}
