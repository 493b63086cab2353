package cpu

// The status register P packs eight flags into one byte:
//
//	7654 3210
//	NV1B DIZC
//
// Bit 5 (unused) reads back as 1 always. Bit 4 (B) is never a real stored
// bit in P; it only exists as a value written onto the stack by PHP/BRK and
// is ignored when pulled back by PLP/RTI (spec.md §3 invariants).
type flagBit byte

const (
	flagC flagBit = 1 << 0
	flagZ flagBit = 1 << 1
	flagI flagBit = 1 << 2
	flagD flagBit = 1 << 3
	flagB flagBit = 1 << 4
	flagU flagBit = 1 << 5
	flagV flagBit = 1 << 6
	flagN flagBit = 1 << 7
)

func (c *CPU) flag(bit flagBit) bool { return c.P&byte(bit) != 0 }

func (c *CPU) setFlag(bit flagBit, v bool) {
	if v {
		c.P |= byte(bit)
	} else {
		c.P &^= byte(bit)
	}
}

func (c *CPU) Carry() bool    { return c.flag(flagC) }
func (c *CPU) Zero() bool     { return c.flag(flagZ) }
func (c *CPU) Interrupt() bool { return c.flag(flagI) }
func (c *CPU) Decimal() bool  { return c.flag(flagD) }
func (c *CPU) Overflow() bool { return c.flag(flagV) }
func (c *CPU) Negative() bool { return c.flag(flagN) }

// setZN sets the Zero and Negative flags from the given result byte, the
// update every load/transfer/logical/increment instruction performs.
func (c *CPU) setZN(v byte) {
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, v&0x80 != 0)
}

// statusByte returns P as it should be pushed to the stack: bit 5 forced to
// 1, bit 4 set to the caller's break-flag value (true for PHP/BRK, false
// for NMI/IRQ).
func (c *CPU) statusByte(brk bool) byte {
	b := c.P | byte(flagU)
	if brk {
		b |= byte(flagB)
	} else {
		b &^= byte(flagB)
	}
	return b
}

// restoreStatusByte loads P from a byte pulled off the stack (PLP/RTI),
// forcing bit 5 to 1 and discarding whatever bit 4 said — B is never a
// real stored bit.
func (c *CPU) restoreStatusByte(b byte) {
	c.P = (b | byte(flagU)) &^ byte(flagB)
}
