package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/nescore/internal/nes"
)

// P - pause
// R - one instruction and stop
// F - one frame and stop
// C - next palette
// PageUp/PageDown - RAM page
// Backspace - reset

type UI struct {
	console *nes.Console
	disasm  map[uint16]string

	palette uint8
	ramPage uint8
	paused  bool
	err     error
}

func New(console *nes.Console) *UI {
	return &UI{
		console: console,
		disasm:  console.Disassemble(0x8000, 0xFFFF),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.palette = (ui.palette + 1) % 8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		ui.ramPage = (ui.ramPage + 1) % 8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ui.ramPage = (ui.ramPage + 7) % 8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ui.run(ui.console.Reset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ui.paused = true
		ui.run(ui.console.StepInstruction)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ui.paused = true
		ui.run(ui.console.StepFrame)
	case !ui.paused:
		ui.run(ui.console.StepFrame)
	}
	return nil
}

// run executes step and pauses on faults so they can be inspected.
func (ui *UI) run(step func() error) {
	err := step()
	if err == nil {
		return
	}
	ui.paused = true
	ui.err = err

	var fault *nes.Fault
	if errors.As(err, &fault) {
		log.Printf("ui: paused on bus fault: %s\n", fault)
		return
	}
	log.Printf("ui: paused: %s\n", err)
}

func (ui *UI) Draw(screen *ebiten.Image) {
	cpu := ui.console.CPU()
	ppu := ui.console.PPU()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " PALETTE: %d  PAUSED: %t\n", ui.palette, ui.paused)
	fmt.Fprintf(&infoStr, " STATUS: %s\n", cpu.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X  CYC: %d\n", cpu.PC, cpu.TotalCycles)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", cpu.A, cpu.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", cpu.X, cpu.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", cpu.Y, cpu.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", cpu.SP)
	fmt.Fprintf(&infoStr, " PPU: %03d,%03d F:%d VBL:%t NMI:%t\n", ppu.Scanline, ppu.Cycle, ppu.Frame, ppu.VBlank(), ppu.NMIPending)
	fmt.Fprintf(&infoStr, " CTRL:$%02X MASK:$%02X ADDR:$%04X\n", ppu.Ctrl, ppu.Mask, ppu.VRAMAddr)
	if ui.err != nil {
		fmt.Fprintf(&infoStr, " ERR: %s\n", ui.err)
	}

	for i := max(0x8000, int(cpu.PC)-7); i < int(cpu.PC); i++ {
		if line, ok := ui.disasm[uint16(i)]; ok {
			infoStr.WriteString(" " + line + "\n")
		}
	}
	infoStr.WriteString("*" + ui.disasm[cpu.PC] + "\n")
	for i := int(cpu.PC) + 1; i < min(0xFFFF, int(cpu.PC)+7); i++ {
		if line, ok := ui.disasm[uint16(i)]; ok {
			infoStr.WriteString(" " + line + "\n")
		}
	}

	debugScreenOffsetX := float32(ramViewWidth)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)

	for i := 0; i < 8; i++ {
		paletteImg := ebiten.NewImage(4, 1)
		for pixel := 0; pixel < 4; pixel++ {
			paletteImg.Set(pixel, 0, ui.console.ColorFromPalette(uint8(i), uint8(pixel)))
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(4, 4)
		op.GeoM.Translate(float64(debugScreenOffsetX)+10+float64(i*35), debugScreenHeight-128-20)
		screen.DrawImage(paletteImg, op)
	}

	for i := 0; i < 2; i++ {
		tilesImg := ebiten.NewImageFromImage(ui.console.PatternTable(ui.palette, uint8(i)))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(debugScreenOffsetX)+10+(float64(i)*(128+5)), debugScreenHeight-128-10)
		screen.DrawImage(tilesImg, op)
	}

	ebitenutil.DebugPrintAt(screen, ui.ramDump(), 0, 0)
}

// ramDump renders one 256 byte page of work RAM.
func (ui *UI) ramDump() string {
	ram := ui.console.RAM()
	base := int(ui.ramPage) * 0x100

	var b strings.Builder
	fmt.Fprintf(&b, " RAM PAGE $%02X\n", ui.ramPage)
	for row := 0; row < 16; row++ {
		fmt.Fprintf(&b, " $%04X:", base+row*16)
		for col := 0; col < 16; col++ {
			fmt.Fprintf(&b, " %02X", ram[base+row*16+col])
		}
		b.WriteString("\n")
	}
	return b.String()
}

const (
	ramViewWidth  = 420
	ramViewHeight = 480

	debugScreenWidth  = 300
	debugScreenHeight = ramViewHeight
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return ramViewWidth + debugScreenWidth, ramViewHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize((ramViewWidth+debugScreenWidth)*2, ramViewHeight*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
