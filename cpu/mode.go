package cpu

// AddressingMode identifies one of the 13 operand-addressing schemes
// the decode table assigns to an opcode.
type AddressingMode uint8

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

var modeNames = [...]string{
	Implicit:    "implicit",
	Accumulator: "accumulator",
	Immediate:   "immediate",
	ZeroPage:    "zero-page",
	ZeroPageX:   "zero-page,X",
	ZeroPageY:   "zero-page,Y",
	Relative:    "relative",
	Absolute:    "absolute",
	AbsoluteX:   "absolute,X",
	AbsoluteY:   "absolute,Y",
	Indirect:    "indirect",
	IndirectX:   "(indirect,X)",
	IndirectY:   "(indirect),Y",
}

func (m AddressingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// effectiveAddress computes the operand address for mode, per the
// addressing-mode table. c.PC must point at the first operand byte
// (the opcode byte itself has already been consumed). Implicit and
// Accumulator modes have no meaningful address and return 0; their
// handlers ignore it.
func (c *CPU) effectiveAddress(mode AddressingMode) uint16 {
	switch mode {
	case Implicit, Accumulator:
		return 0
	case Immediate:
		return c.PC
	case ZeroPage:
		return uint16(c.readByte(c.PC))
	case ZeroPageX:
		return uint16(c.readByte(c.PC) + c.X)
	case ZeroPageY:
		return uint16(c.readByte(c.PC) + c.Y)
	case Relative:
		offset := int8(c.readByte(c.PC))
		return c.PC + 1 + uint16(offset)
	case Absolute:
		return c.readWord(c.PC)
	case AbsoluteX:
		return c.readWord(c.PC) + uint16(c.X)
	case AbsoluteY:
		return c.readWord(c.PC) + uint16(c.Y)
	case Indirect:
		ptr := c.readWord(c.PC)
		// Hardware bug: if the pointer's low byte is $FF, the high
		// byte is fetched from the start of the same page instead of
		// crossing into the next one. Preserved deliberately.
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		lo := uint16(c.readByte(ptr))
		hi := uint16(c.readByte(hiAddr))
		return hi<<8 | lo
	case IndirectX:
		zp := c.readByte(c.PC) + c.X
		return readWordZeroPage(c.mem, zp)
	case IndirectY:
		zp := c.readByte(c.PC)
		base := readWordZeroPage(c.mem, zp)
		return base + uint16(c.Y)
	default:
		panic(IllegalModeForMnemonic{Mode: mode})
	}
}
