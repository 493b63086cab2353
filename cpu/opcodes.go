package cpu

// opcodeEntry pairs an opcode byte's addressing mode and base cycle count
// with the handler that implements its semantics. A flat 256-entry table
// (an array, not a map — http://www.6502.org/tutorials/6502opcodes.html lists
// every slot) keeps the decoder data-driven: an opcode with no entry
// (exec == nil) is a single well-defined trap, not a dispatch fallthrough.
type opcodeEntry struct {
	name             string
	mode             AddressingMode
	cycles           byte
	pageCrossPenalty bool // true only for read instructions indexed by X/Y/indirect-Y
	exec             func(c *CPU, op operand) int
}

var opcodeTable [256]opcodeEntry

func def(opcode byte, name string, mode AddressingMode, cycles byte, pageCrossPenalty bool, exec func(*CPU, operand) int) {
	opcodeTable[opcode] = opcodeEntry{name: name, mode: mode, cycles: cycles, pageCrossPenalty: pageCrossPenalty, exec: exec}
}

func init() {
	// ADC
	def(0x69, "ADC", Immediate, 2, false, (*CPU).adc)
	def(0x65, "ADC", ZeroPage, 3, false, (*CPU).adc)
	def(0x75, "ADC", ZeroPageX, 4, false, (*CPU).adc)
	def(0x6D, "ADC", Absolute, 4, false, (*CPU).adc)
	def(0x7D, "ADC", AbsoluteX, 4, true, (*CPU).adc)
	def(0x79, "ADC", AbsoluteY, 4, true, (*CPU).adc)
	def(0x61, "ADC", IndirectX, 6, false, (*CPU).adc)
	def(0x71, "ADC", IndirectY, 5, true, (*CPU).adc)

	// AND
	def(0x29, "AND", Immediate, 2, false, (*CPU).and)
	def(0x25, "AND", ZeroPage, 3, false, (*CPU).and)
	def(0x35, "AND", ZeroPageX, 4, false, (*CPU).and)
	def(0x2D, "AND", Absolute, 4, false, (*CPU).and)
	def(0x3D, "AND", AbsoluteX, 4, true, (*CPU).and)
	def(0x39, "AND", AbsoluteY, 4, true, (*CPU).and)
	def(0x21, "AND", IndirectX, 6, false, (*CPU).and)
	def(0x31, "AND", IndirectY, 5, true, (*CPU).and)

	// ASL
	def(0x0A, "ASL", Accumulator, 2, false, (*CPU).asl)
	def(0x06, "ASL", ZeroPage, 5, false, (*CPU).asl)
	def(0x16, "ASL", ZeroPageX, 6, false, (*CPU).asl)
	def(0x0E, "ASL", Absolute, 6, false, (*CPU).asl)
	def(0x1E, "ASL", AbsoluteX, 7, false, (*CPU).asl)

	// branches
	def(0x90, "BCC", Relative, 2, false, branch(func(c *CPU) bool { return !c.Carry() }))
	def(0xB0, "BCS", Relative, 2, false, branch(func(c *CPU) bool { return c.Carry() }))
	def(0xF0, "BEQ", Relative, 2, false, branch(func(c *CPU) bool { return c.Zero() }))
	def(0x30, "BMI", Relative, 2, false, branch(func(c *CPU) bool { return c.Negative() }))
	def(0xD0, "BNE", Relative, 2, false, branch(func(c *CPU) bool { return !c.Zero() }))
	def(0x10, "BPL", Relative, 2, false, branch(func(c *CPU) bool { return !c.Negative() }))
	def(0x50, "BVC", Relative, 2, false, branch(func(c *CPU) bool { return !c.Overflow() }))
	def(0x70, "BVS", Relative, 2, false, branch(func(c *CPU) bool { return c.Overflow() }))

	def(0x24, "BIT", ZeroPage, 3, false, (*CPU).bit)
	def(0x2C, "BIT", Absolute, 4, false, (*CPU).bit)

	def(0x00, "BRK", Implied, 7, false, (*CPU).brk)

	def(0x18, "CLC", Implied, 2, false, flagClear(flagC))
	def(0xD8, "CLD", Implied, 2, false, flagClear(flagD))
	def(0x58, "CLI", Implied, 2, false, flagClear(flagI))
	def(0xB8, "CLV", Implied, 2, false, flagClear(flagV))
	def(0x38, "SEC", Implied, 2, false, flagSet(flagC))
	def(0xF8, "SED", Implied, 2, false, flagSet(flagD))
	def(0x78, "SEI", Implied, 2, false, flagSet(flagI))

	// CMP
	def(0xC9, "CMP", Immediate, 2, false, compareWith(func(c *CPU) byte { return c.A }))
	def(0xC5, "CMP", ZeroPage, 3, false, compareWith(func(c *CPU) byte { return c.A }))
	def(0xD5, "CMP", ZeroPageX, 4, false, compareWith(func(c *CPU) byte { return c.A }))
	def(0xCD, "CMP", Absolute, 4, false, compareWith(func(c *CPU) byte { return c.A }))
	def(0xDD, "CMP", AbsoluteX, 4, true, compareWith(func(c *CPU) byte { return c.A }))
	def(0xD9, "CMP", AbsoluteY, 4, true, compareWith(func(c *CPU) byte { return c.A }))
	def(0xC1, "CMP", IndirectX, 6, false, compareWith(func(c *CPU) byte { return c.A }))
	def(0xD1, "CMP", IndirectY, 5, true, compareWith(func(c *CPU) byte { return c.A }))

	def(0xE0, "CPX", Immediate, 2, false, compareWith(func(c *CPU) byte { return c.X }))
	def(0xE4, "CPX", ZeroPage, 3, false, compareWith(func(c *CPU) byte { return c.X }))
	def(0xEC, "CPX", Absolute, 4, false, compareWith(func(c *CPU) byte { return c.X }))

	def(0xC0, "CPY", Immediate, 2, false, compareWith(func(c *CPU) byte { return c.Y }))
	def(0xC4, "CPY", ZeroPage, 3, false, compareWith(func(c *CPU) byte { return c.Y }))
	def(0xCC, "CPY", Absolute, 4, false, compareWith(func(c *CPU) byte { return c.Y }))

	// DEC/INC (memory)
	def(0xC6, "DEC", ZeroPage, 5, false, (*CPU).dec)
	def(0xD6, "DEC", ZeroPageX, 6, false, (*CPU).dec)
	def(0xCE, "DEC", Absolute, 6, false, (*CPU).dec)
	def(0xDE, "DEC", AbsoluteX, 7, false, (*CPU).dec)

	def(0xE6, "INC", ZeroPage, 5, false, (*CPU).inc)
	def(0xF6, "INC", ZeroPageX, 6, false, (*CPU).inc)
	def(0xEE, "INC", Absolute, 6, false, (*CPU).inc)
	def(0xFE, "INC", AbsoluteX, 7, false, (*CPU).inc)

	def(0xCA, "DEX", Implied, 2, false, (*CPU).dex)
	def(0x88, "DEY", Implied, 2, false, (*CPU).dey)
	def(0xE8, "INX", Implied, 2, false, (*CPU).inx)
	def(0xC8, "INY", Implied, 2, false, (*CPU).iny)

	// EOR
	def(0x49, "EOR", Immediate, 2, false, (*CPU).eor)
	def(0x45, "EOR", ZeroPage, 3, false, (*CPU).eor)
	def(0x55, "EOR", ZeroPageX, 4, false, (*CPU).eor)
	def(0x4D, "EOR", Absolute, 4, false, (*CPU).eor)
	def(0x5D, "EOR", AbsoluteX, 4, true, (*CPU).eor)
	def(0x59, "EOR", AbsoluteY, 4, true, (*CPU).eor)
	def(0x41, "EOR", IndirectX, 6, false, (*CPU).eor)
	def(0x51, "EOR", IndirectY, 5, true, (*CPU).eor)

	def(0x4C, "JMP", Absolute, 3, false, (*CPU).jmp)
	def(0x6C, "JMP", Indirect, 5, false, (*CPU).jmp)
	def(0x20, "JSR", Absolute, 6, false, (*CPU).jsr)

	// LDA/LDX/LDY
	def(0xA9, "LDA", Immediate, 2, false, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xA5, "LDA", ZeroPage, 3, false, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xB5, "LDA", ZeroPageX, 4, false, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xAD, "LDA", Absolute, 4, false, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xBD, "LDA", AbsoluteX, 4, true, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xB9, "LDA", AbsoluteY, 4, true, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xA1, "LDA", IndirectX, 6, false, loadInto(func(c *CPU) *byte { return &c.A }))
	def(0xB1, "LDA", IndirectY, 5, true, loadInto(func(c *CPU) *byte { return &c.A }))

	def(0xA2, "LDX", Immediate, 2, false, loadInto(func(c *CPU) *byte { return &c.X }))
	def(0xA6, "LDX", ZeroPage, 3, false, loadInto(func(c *CPU) *byte { return &c.X }))
	def(0xB6, "LDX", ZeroPageY, 4, false, loadInto(func(c *CPU) *byte { return &c.X }))
	def(0xAE, "LDX", Absolute, 4, false, loadInto(func(c *CPU) *byte { return &c.X }))
	def(0xBE, "LDX", AbsoluteY, 4, true, loadInto(func(c *CPU) *byte { return &c.X }))

	def(0xA0, "LDY", Immediate, 2, false, loadInto(func(c *CPU) *byte { return &c.Y }))
	def(0xA4, "LDY", ZeroPage, 3, false, loadInto(func(c *CPU) *byte { return &c.Y }))
	def(0xB4, "LDY", ZeroPageX, 4, false, loadInto(func(c *CPU) *byte { return &c.Y }))
	def(0xAC, "LDY", Absolute, 4, false, loadInto(func(c *CPU) *byte { return &c.Y }))
	def(0xBC, "LDY", AbsoluteX, 4, true, loadInto(func(c *CPU) *byte { return &c.Y }))

	// LSR
	def(0x4A, "LSR", Accumulator, 2, false, (*CPU).lsr)
	def(0x46, "LSR", ZeroPage, 5, false, (*CPU).lsr)
	def(0x56, "LSR", ZeroPageX, 6, false, (*CPU).lsr)
	def(0x4E, "LSR", Absolute, 6, false, (*CPU).lsr)
	def(0x5E, "LSR", AbsoluteX, 7, false, (*CPU).lsr)

	def(0xEA, "NOP", Implied, 2, false, (*CPU).nop)

	// ORA
	def(0x09, "ORA", Immediate, 2, false, (*CPU).ora)
	def(0x05, "ORA", ZeroPage, 3, false, (*CPU).ora)
	def(0x15, "ORA", ZeroPageX, 4, false, (*CPU).ora)
	def(0x0D, "ORA", Absolute, 4, false, (*CPU).ora)
	def(0x1D, "ORA", AbsoluteX, 4, true, (*CPU).ora)
	def(0x19, "ORA", AbsoluteY, 4, true, (*CPU).ora)
	def(0x01, "ORA", IndirectX, 6, false, (*CPU).ora)
	def(0x11, "ORA", IndirectY, 5, true, (*CPU).ora)

	def(0x48, "PHA", Implied, 3, false, (*CPU).pha)
	def(0x08, "PHP", Implied, 3, false, (*CPU).php)
	def(0x68, "PLA", Implied, 4, false, (*CPU).pla)
	def(0x28, "PLP", Implied, 4, false, (*CPU).plp)

	// ROL/ROR
	def(0x2A, "ROL", Accumulator, 2, false, (*CPU).rol)
	def(0x26, "ROL", ZeroPage, 5, false, (*CPU).rol)
	def(0x36, "ROL", ZeroPageX, 6, false, (*CPU).rol)
	def(0x2E, "ROL", Absolute, 6, false, (*CPU).rol)
	def(0x3E, "ROL", AbsoluteX, 7, false, (*CPU).rol)

	def(0x6A, "ROR", Accumulator, 2, false, (*CPU).ror)
	def(0x66, "ROR", ZeroPage, 5, false, (*CPU).ror)
	def(0x76, "ROR", ZeroPageX, 6, false, (*CPU).ror)
	def(0x6E, "ROR", Absolute, 6, false, (*CPU).ror)
	def(0x7E, "ROR", AbsoluteX, 7, false, (*CPU).ror)

	def(0x40, "RTI", Implied, 6, false, (*CPU).rti)
	def(0x60, "RTS", Implied, 6, false, (*CPU).rts)

	// SBC
	def(0xE9, "SBC", Immediate, 2, false, (*CPU).sbc)
	def(0xE5, "SBC", ZeroPage, 3, false, (*CPU).sbc)
	def(0xF5, "SBC", ZeroPageX, 4, false, (*CPU).sbc)
	def(0xED, "SBC", Absolute, 4, false, (*CPU).sbc)
	def(0xFD, "SBC", AbsoluteX, 4, true, (*CPU).sbc)
	def(0xF9, "SBC", AbsoluteY, 4, true, (*CPU).sbc)
	def(0xE1, "SBC", IndirectX, 6, false, (*CPU).sbc)
	def(0xF1, "SBC", IndirectY, 5, true, (*CPU).sbc)
	def(0xEB, "SBC", Immediate, 2, false, (*CPU).sbc) // unofficial duplicate (USBC)

	// STA/STX/STY
	def(0x85, "STA", ZeroPage, 3, false, storeFrom(func(c *CPU) byte { return c.A }))
	def(0x95, "STA", ZeroPageX, 4, false, storeFrom(func(c *CPU) byte { return c.A }))
	def(0x8D, "STA", Absolute, 4, false, storeFrom(func(c *CPU) byte { return c.A }))
	def(0x9D, "STA", AbsoluteX, 5, false, storeFrom(func(c *CPU) byte { return c.A }))
	def(0x99, "STA", AbsoluteY, 5, false, storeFrom(func(c *CPU) byte { return c.A }))
	def(0x81, "STA", IndirectX, 6, false, storeFrom(func(c *CPU) byte { return c.A }))
	def(0x91, "STA", IndirectY, 6, false, storeFrom(func(c *CPU) byte { return c.A }))

	def(0x86, "STX", ZeroPage, 3, false, storeFrom(func(c *CPU) byte { return c.X }))
	def(0x96, "STX", ZeroPageY, 4, false, storeFrom(func(c *CPU) byte { return c.X }))
	def(0x8E, "STX", Absolute, 4, false, storeFrom(func(c *CPU) byte { return c.X }))

	def(0x84, "STY", ZeroPage, 3, false, storeFrom(func(c *CPU) byte { return c.Y }))
	def(0x94, "STY", ZeroPageX, 4, false, storeFrom(func(c *CPU) byte { return c.Y }))
	def(0x8C, "STY", Absolute, 4, false, storeFrom(func(c *CPU) byte { return c.Y }))

	// transfers
	def(0xAA, "TAX", Implied, 2, false, transfer(func(c *CPU) byte { return c.A }, func(c *CPU) *byte { return &c.X }, true))
	def(0xA8, "TAY", Implied, 2, false, transfer(func(c *CPU) byte { return c.A }, func(c *CPU) *byte { return &c.Y }, true))
	def(0xBA, "TSX", Implied, 2, false, transfer(func(c *CPU) byte { return c.S }, func(c *CPU) *byte { return &c.X }, true))
	def(0x8A, "TXA", Implied, 2, false, transfer(func(c *CPU) byte { return c.X }, func(c *CPU) *byte { return &c.A }, true))
	def(0x9A, "TXS", Implied, 2, false, transfer(func(c *CPU) byte { return c.X }, func(c *CPU) *byte { return &c.S }, false))
	def(0x98, "TYA", Implied, 2, false, transfer(func(c *CPU) byte { return c.Y }, func(c *CPU) *byte { return &c.A }, true))

	initUnofficial()
}
