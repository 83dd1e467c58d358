package cpu

// instruction is one row of the static decode table: everything the
// run loop needs to know about an opcode byte before it dispatches.
// cycles is carried as data only; nothing in this package consumes it
// (cycle-accurate timing is out of scope).
type instruction struct {
	mnemonic Mnemonic
	mode     AddressingMode
	length   uint8
	cycles   uint8
	exec     func(c *CPU, mode AddressingMode, addr uint16)
}

// decodeTable is a dense array, not a map: every one of the 256
// possible opcode bytes is a direct index, and entries left nil are
// illegal opcodes.
var decodeTable [256]*instruction

func def(opcode uint8, m Mnemonic, mode AddressingMode, length, cycles uint8, exec func(c *CPU, mode AddressingMode, addr uint16)) {
	if decodeTable[opcode] != nil {
		panic("cpu: duplicate opcode registration")
	}
	decodeTable[opcode] = &instruction{mnemonic: m, mode: mode, length: length, cycles: cycles, exec: exec}
}

func init() {
	def(0x69, ADC, Immediate, 2, 2, hADC)
	def(0x65, ADC, ZeroPage, 2, 3, hADC)
	def(0x75, ADC, ZeroPageX, 2, 4, hADC)
	def(0x6D, ADC, Absolute, 3, 4, hADC)
	def(0x7D, ADC, AbsoluteX, 3, 4, hADC)
	def(0x79, ADC, AbsoluteY, 3, 4, hADC)
	def(0x61, ADC, IndirectX, 2, 6, hADC)
	def(0x71, ADC, IndirectY, 2, 5, hADC)

	def(0x29, AND, Immediate, 2, 2, hAND)
	def(0x25, AND, ZeroPage, 2, 3, hAND)
	def(0x35, AND, ZeroPageX, 2, 4, hAND)
	def(0x2D, AND, Absolute, 3, 4, hAND)
	def(0x3D, AND, AbsoluteX, 3, 4, hAND)
	def(0x39, AND, AbsoluteY, 3, 4, hAND)
	def(0x21, AND, IndirectX, 2, 6, hAND)
	def(0x31, AND, IndirectY, 2, 5, hAND)

	def(0x0A, ASL, Accumulator, 1, 2, hASL)
	def(0x06, ASL, ZeroPage, 2, 5, hASL)
	def(0x16, ASL, ZeroPageX, 2, 6, hASL)
	def(0x0E, ASL, Absolute, 3, 6, hASL)
	def(0x1E, ASL, AbsoluteX, 3, 7, hASL)

	def(0x90, BCC, Relative, 2, 2, hBCC)
	def(0xB0, BCS, Relative, 2, 2, hBCS)
	def(0xF0, BEQ, Relative, 2, 2, hBEQ)
	def(0x30, BMI, Relative, 2, 2, hBMI)
	def(0xD0, BNE, Relative, 2, 2, hBNE)
	def(0x10, BPL, Relative, 2, 2, hBPL)
	def(0x50, BVC, Relative, 2, 2, hBVC)
	def(0x70, BVS, Relative, 2, 2, hBVS)

	def(0x24, BIT, ZeroPage, 2, 3, hBIT)
	def(0x2C, BIT, Absolute, 3, 4, hBIT)

	def(0x00, BRK, Implicit, 1, 7, hBRK)

	def(0x18, CLC, Implicit, 1, 2, hCLC)
	def(0xD8, CLD, Implicit, 1, 2, hCLD)
	def(0x58, CLI, Implicit, 1, 2, hCLI)
	def(0xB8, CLV, Implicit, 1, 2, hCLV)
	def(0x38, SEC, Implicit, 1, 2, hSEC)
	def(0xF8, SED, Implicit, 1, 2, hSED)
	def(0x78, SEI, Implicit, 1, 2, hSEI)

	def(0xC9, CMP, Immediate, 2, 2, hCMP)
	def(0xC5, CMP, ZeroPage, 2, 3, hCMP)
	def(0xD5, CMP, ZeroPageX, 2, 4, hCMP)
	def(0xCD, CMP, Absolute, 3, 4, hCMP)
	def(0xDD, CMP, AbsoluteX, 3, 4, hCMP)
	def(0xD9, CMP, AbsoluteY, 3, 4, hCMP)
	def(0xC1, CMP, IndirectX, 2, 6, hCMP)
	def(0xD1, CMP, IndirectY, 2, 5, hCMP)

	def(0xE0, CPX, Immediate, 2, 2, hCPX)
	def(0xE4, CPX, ZeroPage, 2, 3, hCPX)
	def(0xEC, CPX, Absolute, 3, 4, hCPX)

	def(0xC0, CPY, Immediate, 2, 2, hCPY)
	def(0xC4, CPY, ZeroPage, 2, 3, hCPY)
	def(0xCC, CPY, Absolute, 3, 4, hCPY)

	def(0xC6, DEC, ZeroPage, 2, 5, hDEC)
	def(0xD6, DEC, ZeroPageX, 2, 6, hDEC)
	def(0xCE, DEC, Absolute, 3, 6, hDEC)
	def(0xDE, DEC, AbsoluteX, 3, 7, hDEC)
	def(0xCA, DEX, Implicit, 1, 2, hDEX)
	def(0x88, DEY, Implicit, 1, 2, hDEY)

	def(0x49, EOR, Immediate, 2, 2, hEOR)
	def(0x45, EOR, ZeroPage, 2, 3, hEOR)
	def(0x55, EOR, ZeroPageX, 2, 4, hEOR)
	def(0x4D, EOR, Absolute, 3, 4, hEOR)
	def(0x5D, EOR, AbsoluteX, 3, 4, hEOR)
	def(0x59, EOR, AbsoluteY, 3, 4, hEOR)
	def(0x41, EOR, IndirectX, 2, 6, hEOR)
	def(0x51, EOR, IndirectY, 2, 5, hEOR)

	def(0xE6, INC, ZeroPage, 2, 5, hINC)
	def(0xF6, INC, ZeroPageX, 2, 6, hINC)
	def(0xEE, INC, Absolute, 3, 6, hINC)
	def(0xFE, INC, AbsoluteX, 3, 7, hINC)
	def(0xE8, INX, Implicit, 1, 2, hINX)
	def(0xC8, INY, Implicit, 1, 2, hINY)

	def(0x4C, JMP, Absolute, 3, 3, hJMP)
	def(0x6C, JMP, Indirect, 3, 5, hJMP)

	// JSR/RTS/RTI decode (so their length/mnemonic are known and a
	// fetch doesn't look like an illegal opcode) but have no executing
	// handler: the call/return/interrupt stack protocol is out of
	// scope for this interpreter.
	def(0x20, JSR, Absolute, 3, 6, nil)
	def(0x60, RTS, Implicit, 1, 6, nil)
	def(0x40, RTI, Implicit, 1, 6, nil)

	def(0xA9, LDA, Immediate, 2, 2, hLDA)
	def(0xA5, LDA, ZeroPage, 2, 3, hLDA)
	def(0xB5, LDA, ZeroPageX, 2, 4, hLDA)
	def(0xAD, LDA, Absolute, 3, 4, hLDA)
	def(0xBD, LDA, AbsoluteX, 3, 4, hLDA)
	def(0xB9, LDA, AbsoluteY, 3, 4, hLDA)
	def(0xA1, LDA, IndirectX, 2, 6, hLDA)
	def(0xB1, LDA, IndirectY, 2, 5, hLDA)

	def(0xA2, LDX, Immediate, 2, 2, hLDX)
	def(0xA6, LDX, ZeroPage, 2, 3, hLDX)
	def(0xB6, LDX, ZeroPageY, 2, 4, hLDX)
	def(0xAE, LDX, Absolute, 3, 4, hLDX)
	def(0xBE, LDX, AbsoluteY, 3, 4, hLDX)

	def(0xA0, LDY, Immediate, 2, 2, hLDY)
	def(0xA4, LDY, ZeroPage, 2, 3, hLDY)
	def(0xB4, LDY, ZeroPageX, 2, 4, hLDY)
	def(0xAC, LDY, Absolute, 3, 4, hLDY)
	def(0xBC, LDY, AbsoluteX, 3, 4, hLDY)

	def(0x4A, LSR, Accumulator, 1, 2, hLSR)
	def(0x46, LSR, ZeroPage, 2, 5, hLSR)
	def(0x56, LSR, ZeroPageX, 2, 6, hLSR)
	def(0x4E, LSR, Absolute, 3, 6, hLSR)
	def(0x5E, LSR, AbsoluteX, 3, 7, hLSR)

	def(0xEA, NOP, Implicit, 1, 2, hNOP)

	def(0x09, ORA, Immediate, 2, 2, hORA)
	def(0x05, ORA, ZeroPage, 2, 3, hORA)
	def(0x15, ORA, ZeroPageX, 2, 4, hORA)
	def(0x0D, ORA, Absolute, 3, 4, hORA)
	def(0x1D, ORA, AbsoluteX, 3, 4, hORA)
	def(0x19, ORA, AbsoluteY, 3, 4, hORA)
	def(0x01, ORA, IndirectX, 2, 6, hORA)
	def(0x11, ORA, IndirectY, 2, 5, hORA)

	def(0x48, PHA, Implicit, 1, 3, hPHA)
	def(0x08, PHP, Implicit, 1, 3, hPHP)
	def(0x68, PLA, Implicit, 1, 4, hPLA)
	def(0x28, PLP, Implicit, 1, 4, hPLP)

	def(0x2A, ROL, Accumulator, 1, 2, hROL)
	def(0x26, ROL, ZeroPage, 2, 5, hROL)
	def(0x36, ROL, ZeroPageX, 2, 6, hROL)
	def(0x2E, ROL, Absolute, 3, 6, hROL)
	def(0x3E, ROL, AbsoluteX, 3, 7, hROL)

	def(0x6A, ROR, Accumulator, 1, 2, hROR)
	def(0x66, ROR, ZeroPage, 2, 5, hROR)
	def(0x76, ROR, ZeroPageX, 2, 6, hROR)
	def(0x6E, ROR, Absolute, 3, 6, hROR)
	def(0x7E, ROR, AbsoluteX, 3, 7, hROR)

	def(0xE9, SBC, Immediate, 2, 2, hSBC)
	def(0xE5, SBC, ZeroPage, 2, 3, hSBC)
	def(0xF5, SBC, ZeroPageX, 2, 4, hSBC)
	def(0xED, SBC, Absolute, 3, 4, hSBC)
	def(0xFD, SBC, AbsoluteX, 3, 4, hSBC)
	def(0xF9, SBC, AbsoluteY, 3, 4, hSBC)
	def(0xE1, SBC, IndirectX, 2, 6, hSBC)
	def(0xF1, SBC, IndirectY, 2, 5, hSBC)

	def(0x85, STA, ZeroPage, 2, 3, hSTA)
	def(0x95, STA, ZeroPageX, 2, 4, hSTA)
	def(0x8D, STA, Absolute, 3, 4, hSTA)
	def(0x9D, STA, AbsoluteX, 3, 5, hSTA)
	def(0x99, STA, AbsoluteY, 3, 5, hSTA)
	def(0x81, STA, IndirectX, 2, 6, hSTA)
	def(0x91, STA, IndirectY, 2, 6, hSTA)

	def(0x86, STX, ZeroPage, 2, 3, hSTX)
	def(0x96, STX, ZeroPageY, 2, 4, hSTX)
	def(0x8E, STX, Absolute, 3, 4, hSTX)

	def(0x84, STY, ZeroPage, 2, 3, hSTY)
	def(0x94, STY, ZeroPageX, 2, 4, hSTY)
	def(0x8C, STY, Absolute, 3, 4, hSTY)

	def(0xAA, TAX, Implicit, 1, 2, hTAX)
	def(0xA8, TAY, Implicit, 1, 2, hTAY)
	def(0xBA, TSX, Implicit, 1, 2, hTSX)
	def(0x8A, TXA, Implicit, 1, 2, hTXA)
	def(0x9A, TXS, Implicit, 1, 2, hTXS)
	def(0x98, TYA, Implicit, 1, 2, hTYA)
}
