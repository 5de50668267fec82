package nes

import (
	"image"
	"image/color"
)

// systemPalette is the 2C02 NTSC palette.
var systemPalette = [0x40]color.RGBA{
	{84, 84, 84, 255}, {0, 30, 116, 255}, {8, 16, 144, 255}, {48, 0, 136, 255},
	{68, 0, 100, 255}, {92, 0, 48, 255}, {84, 4, 0, 255}, {60, 24, 0, 255},
	{32, 42, 0, 255}, {8, 58, 0, 255}, {0, 64, 0, 255}, {0, 60, 0, 255},
	{0, 50, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{152, 150, 152, 255}, {8, 76, 196, 255}, {48, 50, 236, 255}, {92, 30, 228, 255},
	{136, 20, 176, 255}, {160, 20, 100, 255}, {152, 34, 32, 255}, {120, 60, 0, 255},
	{84, 90, 0, 255}, {40, 114, 0, 255}, {8, 124, 0, 255}, {0, 118, 40, 255},
	{0, 102, 120, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{236, 238, 236, 255}, {76, 154, 236, 255}, {120, 124, 236, 255}, {176, 98, 236, 255},
	{228, 84, 236, 255}, {236, 88, 180, 255}, {236, 106, 100, 255}, {212, 136, 32, 255},
	{160, 170, 0, 255}, {116, 196, 0, 255}, {76, 208, 32, 255}, {56, 204, 108, 255},
	{56, 180, 204, 255}, {60, 60, 60, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},

	{236, 238, 236, 255}, {168, 204, 236, 255}, {188, 188, 236, 255}, {212, 178, 236, 255},
	{236, 174, 236, 255}, {236, 174, 212, 255}, {236, 180, 176, 255}, {228, 196, 144, 255},
	{204, 210, 120, 255}, {180, 222, 120, 255}, {168, 226, 144, 255}, {152, 226, 180, 255},
	{160, 214, 228, 255}, {160, 162, 160, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

// ColorFromPalette returns the screen color of pixel (0-3) in palette (0-7)
// as currently stored in palette RAM.
func (c *Console) ColorFromPalette(palette, pixel uint8) color.RGBA {
	addr := 0x3F00 + uint16(palette&0x07)<<2 + uint16(pixel&0x03)
	return systemPalette[c.bus.ppu.read8(addr)&0x3F]
}

// PatternTable draws one of the two 128x128 CHR pattern tables
// using palette for the colors.
func (c *Console) PatternTable(palette, table uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	base := uint16(table&0x01) * 0x1000

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := base + uint16(tileY*256+tileX*16)
			for row := 0; row < 8; row++ {
				lo := c.bus.ppu.read8(offset + uint16(row))
				hi := c.bus.ppu.read8(offset + uint16(row) + 8)
				for col := 0; col < 8; col++ {
					pixel := (lo>>(7-col))&0x01 | ((hi>>(7-col))&0x01)<<1
					img.SetRGBA(tileX*8+col, tileY*8+row, c.ColorFromPalette(palette, pixel))
				}
			}
		}
	}

	return img
}

// PeekPPU reads the PPU address space without touching the registers.
func (c *Console) PeekPPU(addr uint16) uint8 {
	return c.bus.ppu.read8(addr)
}
