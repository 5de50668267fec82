package nes

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// flatMem is 64KB of plain RAM, no mirrors and no registers.
type flatMem struct {
	data [0x10000]uint8
}

func (m *flatMem) Read8(addr uint16) uint8        { return m.data[addr] }
func (m *flatMem) Write8(addr uint16, data uint8) { m.data[addr] = data }
func (m *flatMem) Peek8(addr uint16) uint8        { return m.data[addr] }

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

// inesImage builds an iNES file. prg is copied to the start of the PRG area.
func inesImage(prgBanks, chrBanks, flags6, flags7 uint8, prg []uint8) []uint8 {
	img := []uint8{'N', 'E', 'S', 0x1a, prgBanks, chrBanks, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 != 0 {
		img = append(img, make([]uint8, trainerSizeBytes)...)
	}
	prgMem := make([]uint8, int(prgBanks)*prgBankSizeBytes)
	copy(prgMem, prg)
	img = append(img, prgMem...)
	chrMem := make([]uint8, int(chrBanks)*chrBankSizeBytes)
	for i := range chrMem {
		chrMem[i] = uint8(i)
	}
	return append(img, chrMem...)
}

// newTestCart builds a one bank NROM cart whose reset vector points at $8000.
// prg is placed at $8000.
func newTestCart(t *testing.T, prg []uint8) *Cart {
	t.Helper()

	bank := make([]uint8, prgBankSizeBytes)
	copy(bank, prg)
	bank[0x3FFC] = 0x00
	bank[0x3FFD] = 0x80

	cart, err := NewCart(bytes.NewReader(inesImage(1, 1, 0, 0, bank)))
	require.NoError(t, err)
	return cart
}

func newTestBus(t *testing.T) (*Bus, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	return NewBus(newTestCart(t, nil), log.New(&logs, "", 0)), &logs
}

// newTestCPU loads program at $8000 of a flat memory and resets the CPU
// with the reset cycles already spent.
func newTestCPU(program ...uint8) (*CPU, *flatMem) {
	mem := &flatMem{}
	copy(mem.data[0x8000:], program)
	mem.data[0xFFFC] = 0x00
	mem.data[0xFFFD] = 0x80

	c := NewCPU()
	c.Reset(mem)
	c.cycles = 0
	return c, mem
}

// step runs one full instruction and returns how many pulses it took.
func step(c *CPU, mem Memory) int {
	n := 1
	for c.Tic(mem) > 0 {
		n++
	}
	return n
}
