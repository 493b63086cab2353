// Package bus implements the CPU-visible 16-bit address space of the NES:
// internal RAM (with its mirrors), the PPU/APU register windows, and the
// cartridge PRG window. The Cpu never touches memory directly; it only ever
// calls Bus.Read/Bus.Write.
package bus

// https://www.nesdev.org/wiki/CPU_memory_map

const (
	ramSize   = 0x0800 // 2 KiB internal RAM
	ramMirror = 0x1fff // 0x0000-0x1fff mirrors the 2 KiB RAM four times
	ramMask   = ramSize - 1

	ppuStart = 0x2000
	ppuEnd   = 0x3fff

	apuStart = 0x4000
	apuEnd   = 0x401f

	cartStart = 0x4020
)

// Cartridge is the minimal surface the Bus needs from a loaded cartridge.
// cartridge.Cartridge satisfies this; it is expressed as an interface here
// so bus does not import cartridge (cartridge does not import bus either,
// and the Bus must not care which mapper produced the bytes).
type Cartridge interface {
	ReadPRG(addr uint16) byte
	WritePRG(addr uint16, value byte)
}

// Bus is the central object that routes every CPU memory access by address
// range. Each instance owns an independent 2 KiB RAM; a Bus has no global
// state.
type Bus struct {
	ram [ramSize]byte

	cart Cartridge

	onPPURead  func(addr uint16) byte
	onPPUWrite func(addr uint16, value byte)
	onAPURead  func(addr uint16) byte
	onAPUWrite func(addr uint16, value byte)
}

// New creates a Bus with zeroed RAM and no cartridge attached.
func New() *Bus {
	return &Bus{}
}

// AttachCartridge wires a cartridge's PRG window into the bus. Until this is
// called, reads from cartridge space return 0 and writes are absorbed, the
// same stub behavior as the PPU/APU windows.
func (b *Bus) AttachCartridge(c Cartridge) {
	b.cart = c
}

// AttachPPU registers the callbacks that service the 0x2000-0x3fff window.
// The Cpu never calls these directly; only the Bus does, on the PPU's
// behalf, so a future PPU component can be wired in without the Cpu
// changing at all.
func (b *Bus) AttachPPU(onRead func(addr uint16) byte, onWrite func(addr uint16, value byte)) {
	b.onPPURead = onRead
	b.onPPUWrite = onWrite
}

// AttachAPU registers the callbacks that service the 0x4000-0x401f window.
func (b *Bus) AttachAPU(onRead func(addr uint16) byte, onWrite func(addr uint16, value byte)) {
	b.onAPURead = onRead
	b.onAPUWrite = onWrite
}

// Read returns the byte at addr, decoded by address range. A 16-bit fetch is
// always two 1-byte reads performed by the caller (low byte, then high
// byte); the Bus has no notion of word-sized access.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= ramMirror:
		return b.ram[addr&ramMask]
	case addr >= ppuStart && addr <= ppuEnd:
		if b.onPPURead != nil {
			return b.onPPURead(addr)
		}
		return 0
	case addr >= apuStart && addr <= apuEnd:
		if b.onAPURead != nil {
			return b.onAPURead(addr)
		}
		return 0
	case addr >= cartStart:
		if b.cart != nil {
			return b.cart.ReadPRG(addr)
		}
		return 0
	default:
		return 0
	}
}

// Write stores data at addr, decoded by address range. Writes to
// cartridge PRG-ROM are discarded by the cartridge itself (mapper 0 has no
// writable PRG); the Bus does not special-case that here.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr <= ramMirror:
		b.ram[addr&ramMask] = data
	case addr >= ppuStart && addr <= ppuEnd:
		if b.onPPUWrite != nil {
			b.onPPUWrite(addr, data)
		}
	case addr >= apuStart && addr <= apuEnd:
		if b.onAPUWrite != nil {
			b.onAPUWrite(addr, data)
		}
	case addr >= cartStart:
		if b.cart != nil {
			b.cart.WritePRG(addr, data)
		}
	}
}

// ReadWord reads a little-endian 16-bit value from addr and addr+1.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
