package cpu

// Undocumented opcodes the 2A03 decodes as predictable composites of two
// official instructions sharing one memory read-modify-write. Timings and
// opcode assignments follow http://www.oxyron.de/html/opcodes02.html; every
// other unassigned slot in opcodeTable is left a trap (cpu.go's Step sets
// Halted and returns *TrapError).

func (c *CPU) slo(op operand) int {
	v := c.operandValue(op)
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.writeOperandValue(op, v)
	c.A |= v
	c.setZN(c.A)
	return 0
}

func (c *CPU) rla(op operand) int {
	v := c.operandValue(op)
	carryIn := byte(0)
	if c.flag(flagC) {
		carryIn = 1
	}
	c.setFlag(flagC, v&0x80 != 0)
	v = v<<1 | carryIn
	c.writeOperandValue(op, v)
	c.A &= v
	c.setZN(c.A)
	return 0
}

func (c *CPU) sre(op operand) int {
	v := c.operandValue(op)
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.writeOperandValue(op, v)
	c.A ^= v
	c.setZN(c.A)
	return 0
}

func (c *CPU) rra(op operand) int {
	v := c.operandValue(op)
	carryIn := byte(0)
	if c.flag(flagC) {
		carryIn = 0x80
	}
	c.setFlag(flagC, v&0x01 != 0)
	v = v>>1 | carryIn
	c.writeOperandValue(op, v)
	c.addToA(v)
	return 0
}

func (c *CPU) sax(op operand) int {
	c.Write(op.addr, c.A&c.X)
	return 0
}

func (c *CPU) lax(op operand) int {
	v := c.operandValue(op)
	c.A = v
	c.X = v
	c.setZN(v)
	return 0
}

func (c *CPU) dcp(op operand) int {
	v := c.operandValue(op) - 1
	c.writeOperandValue(op, v)
	c.setFlag(flagC, c.A >= v)
	c.setZN(c.A - v)
	return 0
}

func (c *CPU) isc(op operand) int {
	v := c.operandValue(op) + 1
	c.writeOperandValue(op, v)
	c.addToA(^v)
	return 0
}

// dop/top are "double/triple NOP": they decode and consume an operand with
// no other side effect. The opcode table's addressing mode does the actual
// byte consumption; these exist only so the slot isn't a trap.
func (c *CPU) dop(operand) int { return 0 }
func (c *CPU) top(operand) int { return 0 }

// hlt stops the processor the way original_source's 0x02 handler does: no
// register or memory effect beyond setting Halted, so the runner's loop
// exits cleanly instead of Step returning a TrapError. Other KIL/JAM opcode
// slots (0x12, 0x22, ...) are left unassigned and trap.
func (c *CPU) hlt(operand) int {
	c.Halted = true
	return 0
}

func initUnofficial() {
	def(0x07, "SLO", ZeroPage, 5, false, (*CPU).slo)
	def(0x17, "SLO", ZeroPageX, 6, false, (*CPU).slo)
	def(0x0F, "SLO", Absolute, 6, false, (*CPU).slo)
	def(0x1F, "SLO", AbsoluteX, 7, false, (*CPU).slo)
	def(0x1B, "SLO", AbsoluteY, 7, false, (*CPU).slo)
	def(0x03, "SLO", IndirectX, 8, false, (*CPU).slo)
	def(0x13, "SLO", IndirectY, 8, false, (*CPU).slo)

	def(0x27, "RLA", ZeroPage, 5, false, (*CPU).rla)
	def(0x37, "RLA", ZeroPageX, 6, false, (*CPU).rla)
	def(0x2F, "RLA", Absolute, 6, false, (*CPU).rla)
	def(0x3F, "RLA", AbsoluteX, 7, false, (*CPU).rla)
	def(0x3B, "RLA", AbsoluteY, 7, false, (*CPU).rla)
	def(0x23, "RLA", IndirectX, 8, false, (*CPU).rla)
	def(0x33, "RLA", IndirectY, 8, false, (*CPU).rla)

	def(0x47, "SRE", ZeroPage, 5, false, (*CPU).sre)
	def(0x57, "SRE", ZeroPageX, 6, false, (*CPU).sre)
	def(0x4F, "SRE", Absolute, 6, false, (*CPU).sre)
	def(0x5F, "SRE", AbsoluteX, 7, false, (*CPU).sre)
	def(0x5B, "SRE", AbsoluteY, 7, false, (*CPU).sre)
	def(0x43, "SRE", IndirectX, 8, false, (*CPU).sre)
	def(0x53, "SRE", IndirectY, 8, false, (*CPU).sre)

	def(0x67, "RRA", ZeroPage, 5, false, (*CPU).rra)
	def(0x77, "RRA", ZeroPageX, 6, false, (*CPU).rra)
	def(0x6F, "RRA", Absolute, 6, false, (*CPU).rra)
	def(0x7F, "RRA", AbsoluteX, 7, false, (*CPU).rra)
	def(0x7B, "RRA", AbsoluteY, 7, false, (*CPU).rra)
	def(0x63, "RRA", IndirectX, 8, false, (*CPU).rra)
	def(0x73, "RRA", IndirectY, 8, false, (*CPU).rra)

	def(0x87, "SAX", ZeroPage, 3, false, (*CPU).sax)
	def(0x97, "SAX", ZeroPageY, 4, false, (*CPU).sax)
	def(0x8F, "SAX", Absolute, 4, false, (*CPU).sax)
	def(0x83, "SAX", IndirectX, 6, false, (*CPU).sax)

	def(0xA7, "LAX", ZeroPage, 3, false, (*CPU).lax)
	def(0xB7, "LAX", ZeroPageY, 4, false, (*CPU).lax)
	def(0xAF, "LAX", Absolute, 4, false, (*CPU).lax)
	def(0xBF, "LAX", AbsoluteY, 4, true, (*CPU).lax)
	def(0xA3, "LAX", IndirectX, 6, false, (*CPU).lax)
	def(0xB3, "LAX", IndirectY, 5, true, (*CPU).lax)

	def(0xC7, "DCP", ZeroPage, 5, false, (*CPU).dcp)
	def(0xD7, "DCP", ZeroPageX, 6, false, (*CPU).dcp)
	def(0xCF, "DCP", Absolute, 6, false, (*CPU).dcp)
	def(0xDF, "DCP", AbsoluteX, 7, false, (*CPU).dcp)
	def(0xDB, "DCP", AbsoluteY, 7, false, (*CPU).dcp)
	def(0xC3, "DCP", IndirectX, 8, false, (*CPU).dcp)
	def(0xD3, "DCP", IndirectY, 8, false, (*CPU).dcp)

	def(0xE7, "ISC", ZeroPage, 5, false, (*CPU).isc)
	def(0xF7, "ISC", ZeroPageX, 6, false, (*CPU).isc)
	def(0xEF, "ISC", Absolute, 6, false, (*CPU).isc)
	def(0xFF, "ISC", AbsoluteX, 7, false, (*CPU).isc)
	def(0xFB, "ISC", AbsoluteY, 7, false, (*CPU).isc)
	def(0xE3, "ISC", IndirectX, 8, false, (*CPU).isc)
	def(0xF3, "ISC", IndirectY, 8, false, (*CPU).isc)

	// DOP ("double NOP"): reads and discards a zero-page or immediate byte.
	def(0x04, "DOP", ZeroPage, 3, false, (*CPU).dop)
	def(0x44, "DOP", ZeroPage, 3, false, (*CPU).dop)
	def(0x64, "DOP", ZeroPage, 3, false, (*CPU).dop)
	def(0x14, "DOP", ZeroPageX, 4, false, (*CPU).dop)
	def(0x34, "DOP", ZeroPageX, 4, false, (*CPU).dop)
	def(0x54, "DOP", ZeroPageX, 4, false, (*CPU).dop)
	def(0x74, "DOP", ZeroPageX, 4, false, (*CPU).dop)
	def(0xD4, "DOP", ZeroPageX, 4, false, (*CPU).dop)
	def(0xF4, "DOP", ZeroPageX, 4, false, (*CPU).dop)
	def(0x80, "DOP", Immediate, 2, false, (*CPU).dop)
	def(0x82, "DOP", Immediate, 2, false, (*CPU).dop)
	def(0x89, "DOP", Immediate, 2, false, (*CPU).dop)
	def(0xC2, "DOP", Immediate, 2, false, (*CPU).dop)
	def(0xE2, "DOP", Immediate, 2, false, (*CPU).dop)

	// TOP ("triple NOP"): reads and discards an absolute or absolute,X byte.
	def(0x0C, "TOP", Absolute, 4, false, (*CPU).top)
	def(0x1C, "TOP", AbsoluteX, 4, true, (*CPU).top)
	def(0x3C, "TOP", AbsoluteX, 4, true, (*CPU).top)
	def(0x5C, "TOP", AbsoluteX, 4, true, (*CPU).top)
	def(0x7C, "TOP", AbsoluteX, 4, true, (*CPU).top)
	def(0xDC, "TOP", AbsoluteX, 4, true, (*CPU).top)
	def(0xFC, "TOP", AbsoluteX, 4, true, (*CPU).top)

	def(0x02, "HLT", Implied, 2, false, (*CPU).hlt)

	// single-byte unofficial NOPs
	def(0x1A, "NOP", Implied, 2, false, (*CPU).nop)
	def(0x3A, "NOP", Implied, 2, false, (*CPU).nop)
	def(0x5A, "NOP", Implied, 2, false, (*CPU).nop)
	def(0x7A, "NOP", Implied, 2, false, (*CPU).nop)
	def(0xDA, "NOP", Implied, 2, false, (*CPU).nop)
	def(0xFA, "NOP", Implied, 2, false, (*CPU).nop)
}
