// Package runner drives a cpu.CPU to completion: the step loop a command
// line entry point needs, plus the typed errors and optional trace output
// the loop can report upward. The shape is the same as original_source's
// NESEmulator.run() (a print-then-tick loop with no completion condition);
// this version adds a documented exit condition and surfaces the Cpu's own
// errors instead of looping forever.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/hejops/nesgo/cpu"
)

// nsPerCycle is one NTSC CPU cycle (1.789773 MHz) in nanoseconds.
const nsPerCycle = float64(time.Second) / 1_789_773

// Config controls how Run paces and bounds a run.
type Config struct {
	// MaxInstructions caps the number of Step calls. Zero means unbounded
	// (stop only on Halted or error).
	MaxInstructions int

	// Trace, if non-nil, receives one cpu.Trace() line per instruction,
	// written before that instruction executes.
	Trace io.Writer

	// RealTime, if true, throttles the loop to NTSC CPU speed by comparing
	// elapsed wall-clock time against the cycle count reached so far. Test
	// ROMs want this off (run as fast as possible); an interactive session
	// wants it on so traces print at roughly the rate real hardware would
	// have produced them.
	RealTime bool
}

// Result summarizes a finished run for the caller to turn into an exit code.
type Result struct {
	Instructions int
	Cycles       int64
	Halted       bool
}

// HaltedError is returned by Run when the Cpu halts (HLT opcode or a
// TrapError) before MaxInstructions is reached. It wraps the underlying
// *cpu.TrapError when the halt was caused by an unknown opcode, so callers
// can errors.As through it.
type HaltedError struct {
	Result Result
	Err    error // nil if the halt was a clean HLT, not a trap
}

func (e *HaltedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("runner: halted after %d instructions", e.Result.Instructions)
	}
	return fmt.Sprintf("runner: halted after %d instructions: %v", e.Result.Instructions, e.Err)
}

func (e *HaltedError) Unwrap() error { return e.Err }

// Run steps c until it halts, an instruction traps, or MaxInstructions is
// reached (if nonzero). The Cpu must already have been Reset by the caller.
func Run(c *cpu.CPU, cfg Config) (Result, error) {
	var res Result
	start := time.Now()
	for {
		if cfg.MaxInstructions > 0 && res.Instructions >= cfg.MaxInstructions {
			return res, nil
		}
		if c.Halted {
			return res, &HaltedError{Result: res}
		}

		if cfg.Trace != nil {
			fmt.Fprintln(cfg.Trace, c.Trace())
		}

		cycles, err := c.Step()
		res.Instructions++
		res.Cycles += int64(cycles)

		if cfg.RealTime {
			pace(start, res.Cycles)
		}

		if err != nil {
			res.Halted = true
			return res, &HaltedError{Result: res, Err: err}
		}
		if c.Halted {
			res.Halted = true
			return res, &HaltedError{Result: res}
		}
	}
}

// pace sleeps just long enough that wall-clock time since start catches up
// to where cycles-at-NTSC-speed says it should be. A monotonic accumulator
// rather than a fixed per-instruction sleep, so instructions with different
// cycle counts still converge on the same effective clock rate instead of
// drifting further behind every time a multi-cycle instruction runs.
func pace(start time.Time, cycles int64) {
	target := time.Duration(float64(cycles) * nsPerCycle)
	if behind := target - time.Since(start); behind > 0 {
		time.Sleep(behind)
	}
}
