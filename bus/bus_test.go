package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAMMirror(t *testing.T) {
	b := New()
	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0800))
	assert.Equal(t, byte(0x42), b.Read(0x1000))
	assert.Equal(t, byte(0x42), b.Read(0x1800))

	b.Write(0x1805, 0x99)
	assert.Equal(t, byte(0x99), b.Read(0x0005))
}

func TestPPUAPUStubsDefaultToZeroAndAbsorb(t *testing.T) {
	b := New()
	assert.Equal(t, byte(0), b.Read(0x2000))
	assert.Equal(t, byte(0), b.Read(0x4015))
	b.Write(0x2000, 0xff) // must not panic, must not be observable anywhere
	b.Write(0x4015, 0xff)
	assert.Equal(t, byte(0), b.Read(0x2000))
}

func TestPPUHookIsUsedInsteadOfStub(t *testing.T) {
	b := New()
	var written byte
	b.AttachPPU(
		func(addr uint16) byte { return 0x55 },
		func(addr uint16, v byte) { written = v },
	)
	assert.Equal(t, byte(0x55), b.Read(0x2002))
	b.Write(0x2000, 0x80)
	assert.Equal(t, byte(0x80), written)
}

type fakeCart struct {
	mem [0x10000]byte
}

func (f *fakeCart) ReadPRG(addr uint16) byte        { return f.mem[addr] }
func (f *fakeCart) WritePRG(addr uint16, v byte)    { /* PRG-ROM: writes discarded */ }

func TestCartridgeWindow(t *testing.T) {
	b := New()
	c := &fakeCart{}
	c.mem[0x8000] = 0xa9
	b.AttachCartridge(c)
	assert.Equal(t, byte(0xa9), b.Read(0x8000))
	b.Write(0x8000, 0xff) // no panic; mapper decides whether it sticks
}

func TestReadWordLittleEndian(t *testing.T) {
	b := New()
	b.Write(0x0000, 0x34)
	b.Write(0x0001, 0x12)
	assert.Equal(t, uint16(0x1234), b.ReadWord(0x0000))
}
