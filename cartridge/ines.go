// Package cartridge parses the iNES container format and exposes a loaded
// ROM's PRG window to the bus. Only mapper 0 (NROM) is implemented, as
// required by spec; every other mapper id is a fatal UnsupportedMapper load
// error.
//
// https://www.nesdev.org/wiki/INES
package cartridge

import (
	"fmt"
	"io"

	"github.com/hejops/nesgo/mask"
)

const (
	headerSize   = 16
	trainerSize  = 512
	prgBankSize  = 16 * 1024
	chrBankSize  = 8 * 1024
	prgRAMDefault = 8 * 1024
)

var magic = [4]byte{'N', 'E', 'S', 0x1a}

// Mirroring is the cartridge's nametable mirroring mode, as declared by the
// header. The CPU-only core does not act on this; it is captured for a
// future PPU.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

// Region is the TV system the header declares the cartridge was built for.
type Region int

const (
	RegionNTSC Region = iota
	RegionPAL
)

// Header holds the parsed iNES header fields, byte 4 through byte 9 bit 0.
type Header struct {
	PRGBanks   byte // ×16 KiB
	CHRBanks   byte // ×8 KiB; 0 means CHR-RAM
	Mapper     byte
	Mirroring  Mirroring
	Battery    bool
	Trainer    bool
	FourScreen bool
	Region     Region
}

// Cartridge is a loaded iNES image: its header metadata, its PRG window
// mapped the way mapper 0 (NROM) maps it, and its CHR bytes (ROM or
// synthesized RAM) for a future PPU. It satisfies bus.Cartridge.
type Cartridge struct {
	Header Header

	// prg is always exactly 32 KiB: the CPU-visible 0x8000-0xffff window.
	// A single 16 KiB bank is mirrored into both halves per spec.md §4.2
	// step 4.
	prg [2 * prgBankSize]byte

	CHR    []byte
	CHRRAM bool

	PRGRAM []byte // present only if the header's battery-backed-RAM bit is set
}

// Load parses an iNES image from r and returns a Cartridge whose PRG window
// is ready to be attached to a Bus. Only mapper 0 is supported; any other
// mapper id is a fatal UnsupportedMapper error.
func Load(r io.Reader) (*Cartridge, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, &LoadError{Kind: TruncatedROM, Err: err}
	}

	if header[0] != magic[0] || header[1] != magic[1] || header[2] != magic[2] || header[3] != magic[3] {
		return nil, &LoadError{Kind: BadMagic}
	}

	flags6 := header[6]
	flags7 := header[7]
	// mapper id is the high nibble of flags7 over the high nibble of flags6
	// (https://www.nesdev.org/wiki/INES#Flags_6); mask.First(b, I4) reads a
	// byte's top 4 bits right-aligned, exactly the nibble each flag byte
	// contributes.
	mapper := mask.First(flags7, mask.I4)<<4 | mask.First(flags6, mask.I4)
	if mapper != 0 {
		return nil, &LoadError{Kind: UnsupportedMapper, Mapper: mapper}
	}

	h := Header{
		PRGBanks:   header[4],
		CHRBanks:   header[5],
		Mapper:     mapper,
		Battery:    mask.IsSet(flags6, mask.I7),
		Trainer:    mask.IsSet(flags6, mask.I6),
		FourScreen: mask.IsSet(flags6, mask.I5),
	}
	switch {
	case h.FourScreen:
		h.Mirroring = MirrorFourScreen
	case mask.IsSet(flags6, mask.I8):
		h.Mirroring = MirrorVertical
	default:
		h.Mirroring = MirrorHorizontal
	}
	if mask.IsSet(header[9], mask.I8) {
		h.Region = RegionPAL
	}

	cart := &Cartridge{Header: h}

	if h.Trainer {
		trainer := make([]byte, trainerSize)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, &LoadError{Kind: TruncatedROM, Err: err}
		}
	}

	if h.PRGBanks == 0 {
		return nil, &LoadError{Kind: TruncatedROM, Err: fmt.Errorf("header declares 0 PRG-ROM banks")}
	}
	prg := make([]byte, int(h.PRGBanks)*prgBankSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, &LoadError{Kind: TruncatedROM, Err: err}
	}
	if h.PRGBanks == 1 {
		copy(cart.prg[:prgBankSize], prg)
		copy(cart.prg[prgBankSize:], prg) // mirror the single bank at 0xC000
	} else {
		copy(cart.prg[:], prg[:2*prgBankSize])
	}

	if h.CHRBanks > 0 {
		chr := make([]byte, int(h.CHRBanks)*chrBankSize)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, &LoadError{Kind: TruncatedROM, Err: err}
		}
		cart.CHR = chr
	} else {
		cart.CHR = make([]byte, chrBankSize)
		cart.CHRRAM = true
	}

	if h.Battery {
		cart.PRGRAM = make([]byte, prgRAMDefault)
	}

	return cart, nil
}

// ReadPRG reads a byte from the CPU-visible PRG window (0x4020-0xffff on the
// bus; only 0x8000-0xffff is backed by ROM for mapper 0).
func (c *Cartridge) ReadPRG(addr uint16) byte {
	if addr < 0x8000 {
		return 0
	}
	return c.prg[addr-0x8000]
}

// WritePRG discards writes to PRG-ROM: mapper 0 has no bank-switching
// registers and no writable PRG.
func (c *Cartridge) WritePRG(addr uint16, value byte) {}

// ResetVector reads the little-endian reset vector at 0xFFFC/D directly out
// of the PRG window, for callers priming a Cpu before any Bus exists.
func (c *Cartridge) ResetVector() uint16 {
	lo := c.ReadPRG(0xfffc)
	hi := c.ReadPRG(0xfffd)
	return uint16(hi)<<8 | uint16(lo)
}
