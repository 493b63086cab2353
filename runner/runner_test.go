package runner

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejops/nesgo/cpu"
)

type flatBus struct{ mem [1 << 16]byte }

func (b *flatBus) Read(addr uint16) byte        { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, data byte) { b.mem[addr] = data }

func newReset(program []byte) (*cpu.CPU, *flatBus) {
	b := &flatBus{}
	copy(b.mem[0x8000:], program)
	b.mem[0xfffc] = 0x00
	b.mem[0xfffd] = 0x80
	c := cpu.New(b)
	c.Reset()
	return c, b
}

func TestRunStopsAtMaxInstructions(t *testing.T) {
	c, _ := newReset([]byte{0xea, 0xea, 0xea, 0xea}) // NOP x4
	res, err := Run(c, Config{MaxInstructions: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Instructions)
	assert.False(t, res.Halted)
}

func TestRunStopsOnHLT(t *testing.T) {
	c, _ := newReset([]byte{0xea, 0x02, 0xea}) // NOP; HLT; NOP
	res, err := Run(c, Config{})
	require.Error(t, err)
	var halted *HaltedError
	require.True(t, errors.As(err, &halted))
	assert.Nil(t, halted.Err)
	assert.Equal(t, 2, res.Instructions)
	assert.True(t, res.Halted)
}

func TestRunReportsTrapError(t *testing.T) {
	c, _ := newReset([]byte{0x12}) // unassigned opcode
	_, err := Run(c, Config{})
	require.Error(t, err)
	var halted *HaltedError
	require.True(t, errors.As(err, &halted))
	var trap *cpu.TrapError
	require.True(t, errors.As(halted.Err, &trap))
	assert.Equal(t, byte(0x12), trap.Opcode)
}

func TestRunRealTimeThrottlesToNTSCSpeed(t *testing.T) {
	// 200 NOPs is 400 cycles, ~224us of emulated time at NTSC speed; with
	// pacing on, Run must not return before that much wall-clock passes.
	program := make([]byte, 200)
	for i := range program {
		program[i] = 0xea // NOP
	}
	c, _ := newReset(program)
	start := time.Now()
	_, err := Run(c, Config{MaxInstructions: 200, RealTime: true})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Microsecond)
}

func TestRunWritesTraceLines(t *testing.T) {
	c, _ := newReset([]byte{0xea, 0xea})
	var buf bytes.Buffer
	_, err := Run(c, Config{MaxInstructions: 2, Trace: &buf})
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
