package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// nesROM builds a minimal single-bank iNES image whose PRG starts with prg
// and whose reset vector points at 0x8000.
func nesROM(prg ...byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	bank := make([]byte, 16*1024)
	copy(bank, prg)
	bank[0x3ffc] = 0x00 // reset vector low -> 0x8000
	bank[0x3ffd] = 0x80 // reset vector high
	return append(header, bank...)
}

func writeROM(t *testing.T, prg ...byte) string {
	t.Helper()
	path := t.TempDir() + "/rom.nes"
	assert.NoError(t, os.WriteFile(path, nesROM(prg...), 0o644))
	return path
}

func TestRunMissingArgIsLoadError(t *testing.T) {
	var errBuf bytes.Buffer
	code := run(nil, &errBuf)
	assert.Equal(t, exitLoadError, code)
	assert.Contains(t, errBuf.String(), "usage:")
}

func TestRunNoSuchFileIsLoadError(t *testing.T) {
	var errBuf bytes.Buffer
	code := run([]string{"/no/such/rom.nes"}, &errBuf)
	assert.Equal(t, exitLoadError, code)
}

func TestRunBadMagicIsLoadError(t *testing.T) {
	path := t.TempDir() + "/bad.nes"
	assert.NoError(t, os.WriteFile(path, []byte("not an iNES rom image"), 0o644))

	var errBuf bytes.Buffer
	code := run([]string{path}, &errBuf)
	assert.Equal(t, exitLoadError, code)
	assert.Contains(t, errBuf.String(), "failed to load")
}

func TestRunHaltsCleanlyOnHLT(t *testing.T) {
	path := writeROM(t, 0xea, 0x02) // NOP; HLT
	var errBuf bytes.Buffer
	code := run([]string{"-trace=false", path}, &errBuf)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errBuf.String(), "halted after 2 instructions")
}

func TestRunStopsAtMaxInstructions(t *testing.T) {
	path := writeROM(t, 0xea, 0xea, 0xea, 0xea)
	var errBuf bytes.Buffer
	code := run([]string{"-trace=false", "-max-instructions=2", path}, &errBuf)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, errBuf.String())
}

func TestRunTrapIsRuntimeError(t *testing.T) {
	path := writeROM(t, 0x12) // unassigned opcode
	var errBuf bytes.Buffer
	code := run([]string{"-trace=false", path}, &errBuf)
	assert.Equal(t, exitRuntimeError, code)
}
