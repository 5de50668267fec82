package nes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewCart(t *testing.T) {
	t.Run("valid image without trainer", func(t *testing.T) {
		cart, err := NewCart(bytes.NewReader(inesImage(1, 1, 0, 0, nil)))
		require.NoError(t, err)

		assert.Equal(t, 16384, cart.PRGLen())
		assert.Equal(t, 8192, cart.CHRLen())
		assert.Equal(t, uint8(0), cart.MapperID())
		assert.Equal(t, MirrorHorizontal, cart.Mirroring())
		assert.False(t, cart.Header().Trainer)
	})

	t.Run("bad magic", func(t *testing.T) {
		img := inesImage(1, 1, 0, 0, nil)
		img[3] = 0x1b

		_, err := NewCart(bytes.NewReader(img))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("trainer is skipped", func(t *testing.T) {
		img := inesImage(1, 1, 0x04, 0, []uint8{0xAA, 0xBB})
		// fill the trainer with garbage that must not end up in PRG
		for i := 16; i < 16+trainerSizeBytes; i++ {
			img[i] = 0xEE
		}

		cart, err := NewCart(bytes.NewReader(img))
		require.NoError(t, err)
		assert.True(t, cart.Header().Trainer)
		assert.Equal(t, uint8(0xAA), cart.PRGAt(0))
		assert.Equal(t, uint8(0xBB), cart.PRGAt(1))
		assert.Equal(t, 16384, cart.PRGLen())
	})

	t.Run("mapper id from both flag bytes", func(t *testing.T) {
		_, err := NewCart(bytes.NewReader(inesImage(1, 1, 0x30, 0x40, nil)))
		require.ErrorIs(t, err, ErrUnsupportedMapper)
		assert.Contains(t, err.Error(), "67") // 0x40 | 0x03
	})

	t.Run("vertical mirroring", func(t *testing.T) {
		cart, err := NewCart(bytes.NewReader(inesImage(1, 1, 0x01, 0, nil)))
		require.NoError(t, err)
		assert.Equal(t, MirrorVertical, cart.Mirroring())
	})

	t.Run("four screen wins over vertical", func(t *testing.T) {
		cart, err := NewCart(bytes.NewReader(inesImage(1, 1, 0x09, 0, nil)))
		require.NoError(t, err)
		assert.Equal(t, MirrorFourScreen, cart.Mirroring())
	})

	t.Run("truncated PRG", func(t *testing.T) {
		img := inesImage(2, 1, 0, 0, nil)
		_, err := NewCart(bytes.NewReader(img[:16+prgBankSizeBytes]))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := NewCart(bytes.NewReader([]uint8{'N', 'E', 'S'}))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("no PRG banks", func(t *testing.T) {
		_, err := NewCart(bytes.NewReader(inesImage(0, 1, 0, 0, nil)))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func Test_NewCartFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nes")
	require.NoError(t, os.WriteFile(path, inesImage(2, 0, 0, 0, []uint8{0x4C}), 0o644))

	cart, err := NewCartFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 32768, cart.PRGLen())
	assert.Equal(t, 0, cart.CHRLen())
	assert.Equal(t, uint8(0), cart.ReadCHR(0x0000), "no CHR banks")

	_, err = NewCartFromFile(filepath.Join(t.TempDir(), "missing.nes"))
	assert.Error(t, err)
}

func Test_Mapper0(t *testing.T) {
	t.Run("16KB PRG is mirrored", func(t *testing.T) {
		prg := make([]uint8, prgBankSizeBytes)
		for i := range prg {
			prg[i] = uint8(i * 7)
		}
		cart, err := NewCart(bytes.NewReader(inesImage(1, 1, 0, 0, prg)))
		require.NoError(t, err)

		for offset := uint16(0); offset < prgBankSizeBytes; offset++ {
			if !assert.Equal(t, cart.ReadPRG(0x8000+offset), cart.ReadPRG(0xC000+offset), "offset %04X", offset) {
				return
			}
		}
	})

	t.Run("32KB PRG is mapped directly", func(t *testing.T) {
		prg := make([]uint8, 2*prgBankSizeBytes)
		prg[0] = 0x11
		prg[prgBankSizeBytes] = 0x22
		cart, err := NewCart(bytes.NewReader(inesImage(2, 1, 0, 0, prg)))
		require.NoError(t, err)

		assert.Equal(t, uint8(0x11), cart.ReadPRG(0x8000))
		assert.Equal(t, uint8(0x22), cart.ReadPRG(0xC000))
	})

	t.Run("CHR", func(t *testing.T) {
		cart, err := NewCart(bytes.NewReader(inesImage(1, 1, 0, 0, nil)))
		require.NoError(t, err)

		assert.Equal(t, uint8(0x34), cart.ReadCHR(0x1234))
		assert.Equal(t, uint8(0), cart.ReadCHR(0x2000), "outside of the pattern tables")
	})

	t.Run("below $8000 is not mapped", func(t *testing.T) {
		_, ok := Mapper0{prgBanks: 1}.MapPRG(0x6000)
		assert.False(t, ok)
	})
}
