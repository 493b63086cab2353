package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPageXWrapsWithinPageZero(t *testing.T) {
	c, _ := newCPU()
	c.PC = 0x0000
	c.X = 0xff
	c.Bus.(*testBus).mem[0x0000] = 0x80
	op := c.resolve(ZeroPageX)
	assert.Equal(t, uint16(0x7f), op.addr) // (0x80+0xff) & 0xff, never 0x017f
}

func TestAbsoluteXPageCrossDetection(t *testing.T) {
	c, b := newCPU()
	c.PC = 0x0000
	c.X = 0x01
	b.load(0x0000, 0xff, 0x20) // base 0x20ff
	op := c.resolve(AbsoluteX)
	assert.Equal(t, uint16(0x2100), op.addr)
	assert.True(t, op.crossed)
}

func TestAbsoluteXNoPageCross(t *testing.T) {
	c, b := newCPU()
	c.PC = 0x0000
	c.X = 0x01
	b.load(0x0000, 0x00, 0x20) // base 0x2000
	op := c.resolve(AbsoluteX)
	assert.Equal(t, uint16(0x2001), op.addr)
	assert.False(t, op.crossed)
}

func TestIndirectXIgnoresCarryOutOfZeroPage(t *testing.T) {
	c, b := newCPU()
	c.PC = 0x0000
	c.X = 0x05
	b.load(0x0000, 0xfe) // zp pointer base 0xfe, +X wraps to 0x03/0x04
	b.mem[0x03] = 0x37
	b.mem[0x04] = 0x13
	op := c.resolve(IndirectX)
	assert.Equal(t, uint16(0x1337), op.addr)
}

func TestIndirectYAddsAfterDereference(t *testing.T) {
	c, b := newCPU()
	c.PC = 0x0000
	c.Y = 0x10
	b.load(0x0000, 0x10) // zp pointer at 0x10
	b.mem[0x10] = 0x00
	b.mem[0x11] = 0x30
	op := c.resolve(IndirectY)
	assert.Equal(t, uint16(0x3010), op.addr)
	assert.False(t, op.crossed)
}

func TestRelativeNegativeOffset(t *testing.T) {
	c, b := newCPU()
	c.PC = 0x8050
	b.mem[0x8050] = 0x80 // -128
	op := c.resolve(Relative)
	assert.Equal(t, uint16(0x8051-128), op.addr)
}

func TestOperandValueAndWriteAccumulator(t *testing.T) {
	c, _ := newCPU()
	c.A = 0x55
	op := operand{accumulator: true}
	assert.Equal(t, byte(0x55), c.operandValue(op))
	c.writeOperandValue(op, 0x99)
	assert.Equal(t, byte(0x99), c.A)
}
