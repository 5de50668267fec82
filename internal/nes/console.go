package nes

import (
	"log"
)

// ppuTicsPerCPUTic is the NTSC clock ratio between the PPU and the CPU.
const ppuTicsPerCPUTic = 3

// Console is the whole machine. It owns the bus and the CPU and is the only
// thing that pulses them.
type Console struct {
	cpu *CPU
	bus *Bus

	ticCounter uint64
}

type Option func(*consoleOptions)

type consoleOptions struct {
	logger *log.Logger
	hooks  RenderHooks
}

// WithLogger sets where bus diagnostics go. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *consoleOptions) { o.logger = l }
}

// WithRenderHooks forwards the PPU timing events to h.
func WithRenderHooks(h RenderHooks) Option {
	return func(o *consoleOptions) { o.hooks = h }
}

// NewConsole builds the machine around cart and resets it.
func NewConsole(cart *Cart, opts ...Option) *Console {
	var o consoleOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Console{
		cpu: NewCPU(),
		bus: NewBus(cart, o.logger),
	}
	c.bus.ppu.SetHooks(o.hooks)
	c.cpu.Reset(c.bus)
	return c
}

// Reset pulls the reset line of the CPU.
func (c *Console) Reset() error {
	c.cpu.Reset(c.bus)
	c.ticCounter = 0
	return c.bus.Err()
}

// StepCPU advances the machine by one CPU cycle: one CPU pulse and three PPU pulses.
// A pending NMI is taken when the CPU is between two instructions.
func (c *Console) StepCPU() error {
	if c.cpu.Jammed() {
		return ErrJammed
	}

	if c.cpu.Idle() && c.bus.ppu.takeNMI() {
		c.cpu.NMI(c.bus)
	}
	c.cpu.Tic(c.bus)

	for i := 0; i < ppuTicsPerCPUTic; i++ {
		c.bus.ppu.Tic()
	}
	c.ticCounter++

	if err := c.bus.Err(); err != nil {
		return err
	}
	if c.cpu.Jammed() {
		return ErrJammed
	}
	return nil
}

// StepInstruction runs until the current instruction has used all of its cycles.
func (c *Console) StepInstruction() error {
	for {
		if err := c.StepCPU(); err != nil {
			return err
		}
		if c.cpu.Idle() {
			return nil
		}
	}
}

// StepFrame runs until the PPU starts a new frame.
func (c *Console) StepFrame() error {
	frame := c.bus.ppu.frame
	for c.bus.ppu.frame == frame {
		if err := c.StepCPU(); err != nil {
			return err
		}
	}
	return nil
}

// Write8 writes through the bus like the CPU would.
// It is the only way for a front-end to change machine state.
func (c *Console) Write8(addr uint16, data uint8) error {
	c.bus.Write8(addr, data)
	return c.bus.Err()
}

func (c *Console) Peek8(addr uint16) uint8 {
	return c.bus.Peek8(addr)
}

func (c *Console) CPU() CPUState {
	return c.cpu.State()
}

func (c *Console) PPU() PPUState {
	return c.bus.ppu.State()
}

func (c *Console) RAM() [ramSizeBytes]uint8 {
	return c.bus.ram.ram
}

func (c *Console) Cart() *Cart {
	return c.bus.cart
}

// Tics returns the number of CPU cycles since the last reset.
func (c *Console) Tics() uint64 {
	return c.ticCounter
}

func (c *Console) Disassemble(from, to uint16) map[uint16]string {
	return Disassemble(c.bus, from, to)
}
