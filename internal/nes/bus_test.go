package nes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Bus_RAM(t *testing.T) {
	bus, _ := newTestBus(t)

	bus.Write8(0x0001, 0x11)
	assert.Equal(t, uint8(0x11), bus.Read8(0x0001))
	assert.Equal(t, uint8(0x11), bus.Read8(0x0801))
	assert.Equal(t, uint8(0x11), bus.Read8(0x1001))
	assert.Equal(t, uint8(0x11), bus.Read8(0x1801))

	bus.Write8(0x1fff, 0x22)
	assert.Equal(t, uint8(0x22), bus.Read8(0x07ff))
	assert.NoError(t, bus.Err())
}

func Test_Bus_PPURegisters(t *testing.T) {
	t.Run("registers mirror every 8 bytes", func(t *testing.T) {
		bus, _ := newTestBus(t)

		bus.Write8(0x2008, ctrlNMIEnable)
		assert.Equal(t, ctrlNMIEnable, bus.ppu.ctrl)

		bus.Write8(0x3ffe, 0x21)
		bus.Write8(0x2006, 0x08)
		assert.Equal(t, uint16(0x2108), bus.ppu.vramAddr)
		assert.NoError(t, bus.Err())
	})

	t.Run("VRAM through PPUADDR and PPUDATA", func(t *testing.T) {
		bus, _ := newTestBus(t)

		bus.Write8(0x2006, 0x20)
		bus.Write8(0x2006, 0x00)
		bus.Write8(0x2007, 0x5a)

		bus.Write8(0x2006, 0x20)
		bus.Write8(0x2006, 0x00)
		bus.Read8(0x2007)
		assert.Equal(t, uint8(0x5a), bus.Read8(0x2007))
		assert.NoError(t, bus.Err())
	})

	t.Run("peek has no side effects", func(t *testing.T) {
		bus, _ := newTestBus(t)
		bus.ppu.status = statusVBlank
		bus.ppu.addrLatch = true

		assert.Equal(t, statusVBlank, bus.Peek8(0x2002)&statusVBlank)
		assert.Equal(t, statusVBlank, bus.ppu.status)
		assert.True(t, bus.ppu.addrLatch)

		assert.Equal(t, statusVBlank, bus.Read8(0x2002)&statusVBlank)
		assert.Zero(t, bus.ppu.status)
		assert.False(t, bus.ppu.addrLatch)
	})
}

func Test_Bus_PRG(t *testing.T) {
	bus, _ := newTestBus(t)

	assert.Equal(t, uint8(0x80), bus.Read8(0xfffd))
	assert.Equal(t, uint8(0x80), bus.Read8(0xbffd), "16KB bank is mirrored")
	assert.Equal(t, uint16(0x8000), read16(bus, vectorReset))
	assert.Equal(t, uint8(0x80), bus.Peek8(0xfffd))
}

func Test_Bus_Faults(t *testing.T) {
	tests := []struct {
		name     string
		access   func(b *Bus)
		op       string
		addr     uint16
		expected error
	}{
		{"ROM write", func(b *Bus) { b.Write8(0x8000, 0x01) }, "write", 0x8000, ErrROMWrite},
		{"write-only register read", func(b *Bus) { b.Read8(0x2000) }, "read", 0x2000, ErrWriteOnly},
		{"mirrored write-only register read", func(b *Bus) { b.Read8(0x2fe5) }, "read", 0x2fe5, ErrWriteOnly},
		{"read-only register write", func(b *Bus) { b.Write8(0x2002, 0x00) }, "write", 0x2002, ErrReadOnly},
		{"CHR write through PPUDATA", func(b *Bus) {
			b.Write8(0x2006, 0x00)
			b.Write8(0x2006, 0x00)
			b.Write8(0x2007, 0x01)
		}, "write", 0x2007, ErrROMWrite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bus, _ := newTestBus(t)

			tc.access(bus)

			err := bus.Err()
			require.ErrorIs(t, err, tc.expected)
			var fault *Fault
			require.True(t, errors.As(err, &fault))
			assert.Equal(t, tc.op, fault.Op)
			assert.Equal(t, tc.addr, fault.Addr)

			assert.NoError(t, bus.Err(), "Err clears the fault")
		})
	}

	t.Run("first fault wins", func(t *testing.T) {
		bus, _ := newTestBus(t)

		bus.Read8(0x2000)
		bus.Write8(0x8000, 0x00)

		err := bus.Err()
		assert.ErrorIs(t, err, ErrWriteOnly)
		assert.NotErrorIs(t, err, ErrROMWrite)
	})

	t.Run("fault message", func(t *testing.T) {
		bus, _ := newTestBus(t)

		bus.Write8(0xc123, 0x00)
		assert.EqualError(t, bus.Err(), "write $C123: write to ROM")
	})
}

func Test_Bus_Unmapped(t *testing.T) {
	bus, logs := newTestBus(t)

	assert.Equal(t, uint8(0), bus.Read8(0x4016))
	bus.Write8(0x6000, 0x12)
	assert.Equal(t, uint8(0), bus.Read8(0x6000))

	assert.NoError(t, bus.Err(), "unmapped access is not a fault")
	assert.Contains(t, logs.String(), "bus: unmapped read at $4016")
	assert.Contains(t, logs.String(), "bus: unmapped write $12 at $6000")

	logs.Reset()
	assert.Equal(t, uint8(0), bus.Peek8(0x4016))
	assert.Empty(t, logs.String(), "peek is silent")
}
