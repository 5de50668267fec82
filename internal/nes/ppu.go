package nes

const (
	ppuCyclesPerLine = 341
	ppuLinesPerFrame = 262

	ppuVisibleLines = 240
	ppuVBlankLine   = 241
)

// PPUCTRL bits
const (
	ctrlNametableX    = uint8(1 << iota) // base nametable, low bit
	ctrlNametableY                       // base nametable, high bit
	ctrlIncrement32                      // VRAM address increment: 0 = +1, 1 = +32
	ctrlSpritePattern                    // sprite pattern table for 8x8 sprites
	ctrlBgPattern                        // background pattern table
	ctrlSpriteSize                       // 0 = 8x8, 1 = 8x16
	ctrlMasterSlave                      // unused on the NES
	ctrlNMIEnable                        // generate NMI at the start of vblank
)

// PPUSTATUS bits. The low 5 bits are not driven.
const (
	statusSpriteOverflow = uint8(1 << 5)
	statusSpriteZeroHit  = uint8(1 << 6)
	statusVBlank         = uint8(1 << 7)
)

// RenderHooks receives the timing events a renderer would work on.
// The PPU itself does not produce pixels.
type RenderHooks interface {
	// Background is called for cycles 1-256 of the visible scanlines.
	Background(scanline, cycle int)
	// SpriteEval is called at cycle 257 of the visible scanlines.
	SpriteEval(scanline int)
	// Prefetch is called for cycles 321-336 of the visible scanlines.
	Prefetch(scanline, cycle int)
}

type PPU struct {
	// Registers
	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8
	scrollX uint8
	scrollY uint8

	vramAddr  uint16
	addrLatch bool // false: next $2006/$2005 write is the first one
	buffer    uint8

	vram    [0x800]uint8 // two physical nametables
	oam     [0x100]uint8
	palette [0x20]uint8

	chr       chrReader
	mirroring Mirroring

	hooks RenderHooks

	cycle      uint16
	scanLine   uint16
	frame      uint64
	nmiPending bool
}

type chrReader interface {
	ReadCHR(addr uint16) uint8
}

func NewPPU(chr chrReader, mirroring Mirroring) *PPU {
	return &PPU{
		chr:       chr,
		mirroring: mirroring,
	}
}

// SetHooks installs the receiver of the per-scanline timing events.
// nil disables them.
func (p *PPU) SetHooks(h RenderHooks) {
	p.hooks = h
}

// Tic advances the PPU by one cycle.
func (p *PPU) Tic() {
	line, cycle := int(p.scanLine), int(p.cycle)

	switch {
	case line < ppuVisibleLines:
		if p.hooks != nil {
			switch {
			case cycle >= 1 && cycle <= 256:
				p.hooks.Background(line, cycle)
			case cycle == 257:
				p.hooks.SpriteEval(line)
			case cycle >= 321 && cycle <= 336:
				p.hooks.Prefetch(line, cycle)
			}
		}
	case line == ppuVBlankLine && cycle == 1:
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiPending = true
		}
	}

	p.cycle++
	if p.cycle < ppuCyclesPerLine {
		return
	}
	p.cycle = 0
	p.scanLine++
	if p.scanLine < ppuLinesPerFrame {
		return
	}
	p.scanLine = 0
	p.status &^= statusVBlank | statusSpriteZeroHit | statusSpriteOverflow
	p.frame++
}

// takeNMI reports and clears the NMI request.
func (p *PPU) takeNMI() bool {
	nmi := p.nmiPending
	p.nmiPending = false
	return nmi
}

// PPUState is a snapshot of the PPU for inspectors.
type PPUState struct {
	Ctrl       uint8
	Mask       uint8
	Status     uint8
	OAMAddr    uint8
	ScrollX    uint8
	ScrollY    uint8
	VRAMAddr   uint16
	AddrLatch  bool
	Buffer     uint8
	Scanline   int
	Cycle      int
	Frame      uint64
	NMIPending bool
}

func (p *PPU) State() PPUState {
	return PPUState{
		Ctrl:       p.ctrl,
		Mask:       p.mask,
		Status:     p.status,
		OAMAddr:    p.oamAddr,
		ScrollX:    p.scrollX,
		ScrollY:    p.scrollY,
		VRAMAddr:   p.vramAddr,
		AddrLatch:  p.addrLatch,
		Buffer:     p.buffer,
		Scanline:   int(p.scanLine),
		Cycle:      int(p.cycle),
		Frame:      p.frame,
		NMIPending: p.nmiPending,
	}
}

// VBlank reports whether the vblank status bit is set.
func (s PPUState) VBlank() bool {
	return s.Status&statusVBlank != 0
}

// Increment is the VRAM address step selected by PPUCTRL.
func (s PPUState) Increment() uint16 {
	if s.Ctrl&ctrlIncrement32 != 0 {
		return 32
	}
	return 1
}

// NametableBase is the base nametable address selected by PPUCTRL.
func (s PPUState) NametableBase() uint16 {
	return 0x2000 + uint16(s.Ctrl&(ctrlNametableX|ctrlNametableY))*0x400
}

// BackgroundTable and SpriteTable are the pattern tables selected by PPUCTRL.
func (s PPUState) BackgroundTable() uint16 {
	if s.Ctrl&ctrlBgPattern != 0 {
		return 0x1000
	}
	return 0
}

func (s PPUState) SpriteTable() uint16 {
	if s.Ctrl&ctrlSpritePattern != 0 {
		return 0x1000
	}
	return 0
}

// SpriteHeight is 8 or 16 depending on PPUCTRL.
func (s PPUState) SpriteHeight() int {
	if s.Ctrl&ctrlSpriteSize != 0 {
		return 16
	}
	return 8
}
