package cartridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func header(prgBlocks, chrBlocks, flags6, flags7 byte) []byte {
	h := make([]byte, headerSize)
	copy(h, magic[:])
	h[4] = prgBlocks
	h[5] = chrBlocks
	h[6] = flags6
	h[7] = flags7
	return h
}

func image(h []byte, trainer, prg, chr []byte) []byte {
	out := append([]byte{}, h...)
	out = append(out, trainer...)
	out = append(out, prg...)
	out = append(out, chr...)
	return out
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := header(1, 1, 0, 0)
	data[0] = 'X'

	_, err := Load(data)
	require.ErrorIs(t, err, ErrNotINES)
}

func TestLoadRejectsShortImage(t *testing.T) {
	_, err := Load([]byte{0x4E, 0x45, 0x53})
	require.ErrorIs(t, err, ErrTruncatedImage)
}

func TestLoadRejectsNES2(t *testing.T) {
	h := header(1, 1, 0, 0x08) // bit 3 of flags7 set -> NES 2.0
	data := image(h, nil, make([]byte, prgBlockSize), make([]byte, chrBlockSize))

	_, err := Load(data)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoadRejectsTruncatedPayload(t *testing.T) {
	h := header(2, 1, 0, 0)
	data := image(h, nil, make([]byte, prgBlockSize), make([]byte, chrBlockSize)) // missing a PRG block

	_, err := Load(data)
	require.ErrorIs(t, err, ErrTruncatedImage)
}

func TestLoadNROM(t *testing.T) {
	prg := make([]byte, prgBlockSize)
	prg[0] = 0xAA
	chr := make([]byte, chrBlockSize)
	chr[0] = 0xBB

	h := header(1, 1, 0, 0)
	data := image(h, nil, prg, chr)

	c, err := Load(data)
	require.NoError(t, err)
	require.Len(t, c.PrgROM, prgBlockSize)
	require.Len(t, c.ChrROM, chrBlockSize)
	require.Equal(t, byte(0xAA), c.PrgROM[0])
	require.Equal(t, byte(0xBB), c.ChrROM[0])
	require.Equal(t, uint8(0), c.Mapper)
	require.Equal(t, Horizontal, c.Mirroring)
	require.True(t, c.SinglePRGBank())
}

func TestLoadSkipsTrainer(t *testing.T) {
	prg := make([]byte, prgBlockSize)
	prg[0] = 0x42
	trainer := make([]byte, trainerSize)
	trainer[0] = 0xFF // would corrupt prg[0] if the trainer were not skipped

	h := header(1, 0, flag6Trainer, 0)
	data := image(h, trainer, prg, nil)

	c, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, byte(0x42), c.PrgROM[0])
}

func TestMapperNibbleAssembly(t *testing.T) {
	// mapper = (flags7 & 0xF0) | (flags6 >> 4) = 0xA0 | 0x01 = 0xA1
	h := header(1, 1, 0x10, 0xA0)
	data := image(h, nil, make([]byte, prgBlockSize), make([]byte, chrBlockSize))

	c, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, uint8(0xA1), c.Mapper)
}

func TestMirroringModes(t *testing.T) {
	cases := []struct {
		name   string
		flags6 byte
		want   Mirroring
	}{
		{"horizontal", 0x00, Horizontal},
		{"vertical", flag6Mirroring, Vertical},
		{"four-screen overrides mirroring bit", flag6FourScreen | flag6Mirroring, FourScreen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := header(1, 1, tc.flags6, 0)
			data := image(h, nil, make([]byte, prgBlockSize), make([]byte, chrBlockSize))

			c, err := Load(data)
			require.NoError(t, err)
			require.Equal(t, tc.want, c.Mirroring)
		})
	}
}
