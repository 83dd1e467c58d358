// Package bus implements the CPU-visible address space: 2 KiB of work
// RAM mirrored across $0000-$1FFF, the PPU register window, and a
// mapper-0 read-only view of cartridge PRG-ROM.
package bus

import (
	"log"

	"github.com/bdwalton/nes6502core/cartridge"
)

const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF
	ppuWindowEnd = 0x3FFF
	prgStart     = 0x8000
	prgBankSize  = 0x4000
)

// Bus is the CPU's address space. It owns work RAM directly and holds
// a cartridge for the PRG-ROM window; there is no mapper registry,
// since mapper 0 is the only one in scope.
type Bus struct {
	ram  [ramSize]byte
	cart *cartridge.Cartridge
}

// New returns a Bus backed by the given cartridge.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{cart: cart}
}

// ReadByte implements cpu.Memory.
func (b *Bus) ReadByte(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&0x07FF]
	case addr <= ppuWindowEnd:
		panic(UnimplementedRegion{Addr: addr})
	case addr < prgStart:
		log.Printf("bus: ignored read at 0x%04X", addr)
		return 0
	default:
		return b.readPRG(addr)
	}
}

// WriteByte implements cpu.Memory.
func (b *Bus) WriteByte(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&0x07FF] = val
	case addr <= ppuWindowEnd:
		panic(UnimplementedRegion{Addr: addr})
	case addr < prgStart:
		log.Printf("bus: ignored write at 0x%04X (value 0x%02X)", addr, val)
	default:
		panic(RomWriteAttempt{Addr: addr})
	}
}

func (b *Bus) readPRG(addr uint16) uint8 {
	off := addr - prgStart
	if b.cart.SinglePRGBank() {
		off &= prgBankSize - 1
	}
	if int(off) >= len(b.cart.PrgROM) {
		log.Printf("bus: read past end of PRG-ROM at 0x%04X", addr)
		return 0
	}
	return b.cart.PrgROM[off]
}
