package cpu

// This file holds the instruction bodies for 53 of the 56 documented
// mnemonics; JSR, RTS and RTI have no body (see opcodes.go). Each handler
// has the signature func(c *CPU, mode AddressingMode, addr uint16);
// addr is the effective address the decode step already computed (0
// and ignored for Implicit/Accumulator instructions).

func (c *CPU) requireImplicit(mode AddressingMode, m Mnemonic) {
	if mode != Implicit {
		panic(IllegalModeForMnemonic{Mnemonic: m, Mode: mode})
	}
}

// addWithCarry implements ADC directly and SBC via one's-complement of
// the operand (A + ^M + C == A - M - (1-C) in two's complement), the
// standard trick that makes both share one carry/overflow computation.
func (c *CPU) addWithCarry(m uint8) {
	var carryIn uint16
	if c.flagSet(FlagCarry) {
		carryIn = 1
	}
	a := c.A
	sum := uint16(a) + uint16(m) + carryIn
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (a^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(result)
}

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(reg - m)
}

func (c *CPU) branch(addr uint16, taken bool) {
	if taken {
		c.PC = addr
	}
}

// --- load/store ---

func hLDA(c *CPU, mode AddressingMode, addr uint16) { c.A = c.readByte(addr); c.setZN(c.A) }
func hLDX(c *CPU, mode AddressingMode, addr uint16) { c.X = c.readByte(addr); c.setZN(c.X) }
func hLDY(c *CPU, mode AddressingMode, addr uint16) { c.Y = c.readByte(addr); c.setZN(c.Y) }

func hSTA(c *CPU, mode AddressingMode, addr uint16) { c.writeByte(addr, c.A) }
func hSTX(c *CPU, mode AddressingMode, addr uint16) { c.writeByte(addr, c.X) }
func hSTY(c *CPU, mode AddressingMode, addr uint16) { c.writeByte(addr, c.Y) }

func hTAX(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, TAX)
	c.X = c.A
	c.setZN(c.X)
}

func hTAY(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, TAY)
	c.Y = c.A
	c.setZN(c.Y)
}

func hTXA(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, TXA)
	c.A = c.X
	c.setZN(c.A)
}

func hTYA(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, TYA)
	c.A = c.Y
	c.setZN(c.A)
}

func hTSX(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, TSX)
	c.X = c.S
	c.setZN(c.X)
}

func hTXS(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, TXS)
	c.S = c.X
}

// --- stack ---

func hPHA(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, PHA)
	c.push(c.A)
}

func hPHP(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, PHP)
	c.push(uint8(c.P))
}

func hPLA(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, PLA)
	c.A = c.pull()
	c.setZN(c.A)
}

func hPLP(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, PLP)
	c.P = Flag(c.pull())
}

// --- ALU ---

func hADC(c *CPU, mode AddressingMode, addr uint16) { c.addWithCarry(c.readByte(addr)) }
func hSBC(c *CPU, mode AddressingMode, addr uint16) { c.addWithCarry(^c.readByte(addr)) }

func hAND(c *CPU, mode AddressingMode, addr uint16) { c.A &= c.readByte(addr); c.setZN(c.A) }
func hORA(c *CPU, mode AddressingMode, addr uint16) { c.A |= c.readByte(addr); c.setZN(c.A) }
func hEOR(c *CPU, mode AddressingMode, addr uint16) { c.A ^= c.readByte(addr); c.setZN(c.A) }

func hBIT(c *CPU, mode AddressingMode, addr uint16) {
	m := c.readByte(addr)
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
}

func hCMP(c *CPU, mode AddressingMode, addr uint16) { c.compare(c.A, c.readByte(addr)) }
func hCPX(c *CPU, mode AddressingMode, addr uint16) { c.compare(c.X, c.readByte(addr)) }
func hCPY(c *CPU, mode AddressingMode, addr uint16) { c.compare(c.Y, c.readByte(addr)) }

// --- increment/decrement ---

func hINC(c *CPU, mode AddressingMode, addr uint16) {
	v := c.readByte(addr) + 1
	c.writeByte(addr, v)
	c.setZN(v)
}

func hDEC(c *CPU, mode AddressingMode, addr uint16) {
	v := c.readByte(addr) - 1
	c.writeByte(addr, v)
	c.setZN(v)
}

func hINX(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, INX)
	c.X++
	c.setZN(c.X)
}

func hINY(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, INY)
	c.Y++
	c.setZN(c.Y)
}

func hDEX(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, DEX)
	c.X--
	c.setZN(c.X)
}

func hDEY(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, DEY)
	c.Y--
	c.setZN(c.Y)
}

// --- shifts/rotates: Accumulator mode reads/writes A, any other mode
// reads/writes the effective address. ---

func (c *CPU) operand(mode AddressingMode, addr uint16) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.readByte(addr)
}

func (c *CPU) storeOperand(mode AddressingMode, addr uint16, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.writeByte(addr, v)
}

func hASL(c *CPU, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	c.storeOperand(mode, addr, v)
}

func hLSR(c *CPU, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	c.storeOperand(mode, addr, v)
}

func hROL(c *CPU, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	var cin uint8
	if c.flagSet(FlagCarry) {
		cin = 1
	}
	c.setFlag(FlagCarry, v&0x80 != 0)
	v = (v << 1) | cin
	c.setZN(v)
	c.storeOperand(mode, addr, v)
}

func hROR(c *CPU, mode AddressingMode, addr uint16) {
	v := c.operand(mode, addr)
	var cin uint8
	if c.flagSet(FlagCarry) {
		cin = 0x80
	}
	c.setFlag(FlagCarry, v&0x01 != 0)
	v = (v >> 1) | cin
	c.setZN(v)
	c.storeOperand(mode, addr, v)
}

// --- branches ---

func hBCC(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, !c.flagSet(FlagCarry)) }
func hBCS(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, c.flagSet(FlagCarry)) }
func hBEQ(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, c.flagSet(FlagZero)) }
func hBNE(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, !c.flagSet(FlagZero)) }
func hBMI(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, c.flagSet(FlagNegative)) }
func hBPL(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, !c.flagSet(FlagNegative)) }
func hBVC(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, !c.flagSet(FlagOverflow)) }
func hBVS(c *CPU, mode AddressingMode, addr uint16) { c.branch(addr, c.flagSet(FlagOverflow)) }

// --- jumps ---

func hJMP(c *CPU, mode AddressingMode, addr uint16) { c.PC = addr }

// --- flags ---

func hCLC(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, CLC)
	c.setFlag(FlagCarry, false)
}

func hSEC(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, SEC)
	c.setFlag(FlagCarry, true)
}

func hCLD(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, CLD)
	c.setFlag(FlagDecimal, false)
}

func hSED(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, SED)
	c.setFlag(FlagDecimal, true)
}

func hCLI(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, CLI)
	c.setFlag(FlagInterruptDisable, false)
}

func hSEI(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, SEI)
	c.setFlag(FlagInterruptDisable, true)
}

func hCLV(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, CLV)
	c.setFlag(FlagOverflow, false)
}

// --- misc ---

func hNOP(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, NOP)
}

// hBRK does nothing; step() recognizes opcode 0x00 and halts Run
// after this handler returns. There is no interrupt/stack protocol.
func hBRK(c *CPU, mode AddressingMode, addr uint16) {
	c.requireImplicit(mode, BRK)
}
