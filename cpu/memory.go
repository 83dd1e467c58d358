package cpu

// Memory is the capability the CPU needs from whatever it is wired to.
// A bus.Bus satisfies this directly; tests wire smaller fakes.
type Memory interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
}

// ReadWord and WriteWord are defaulted on top of the two required
// methods: little-endian, and available to any Memory implementation
// for free.

func ReadWord(m Memory, addr uint16) uint16 {
	lo := uint16(m.ReadByte(addr))
	hi := uint16(m.ReadByte(addr + 1))
	return hi<<8 | lo
}

func WriteWord(m Memory, addr uint16, val uint16) {
	m.WriteByte(addr, uint8(val))
	m.WriteByte(addr+1, uint8(val>>8))
}

// readWordZeroPage reads a little-endian word from the zero page,
// wrapping the high-byte fetch within the page ($FF -> $00) rather
// than crossing into page one. (IND,X) and (IND),Y both rely on this.
func readWordZeroPage(m Memory, zp uint8) uint16 {
	lo := uint16(m.ReadByte(uint16(zp)))
	hi := uint16(m.ReadByte(uint16(zp + 1)))
	return hi<<8 | lo
}
