// Command nesgo loads an iNES ROM and runs its CPU core to completion (or to
// an instruction cap), optionally tracing each instruction or dropping into
// the interactive single-step inspector.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hejops/nesgo/bus"
	"github.com/hejops/nesgo/cartridge"
	"github.com/hejops/nesgo/cpu"
	"github.com/hejops/nesgo/internal/debugger"
	"github.com/hejops/nesgo/runner"
)

const (
	exitOK = iota
	exitLoadError
	exitRuntimeError
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args and drives a single emulation, writing diagnostics to
// errW. Taking the writer as a parameter (rather than reaching for os.Stderr
// directly) is what lets a test assert on the exact message for each exit
// code without touching the real stderr.
func run(args []string, errW io.Writer) int {
	logger := log.New(errW, "nesgo: ", 0)

	fs := flag.NewFlagSet("nesgo", flag.ContinueOnError)
	fs.SetOutput(errW)
	trace := fs.Bool("trace", true, "emit a per-instruction trace line to stdout")
	maxInstructions := fs.Int("max-instructions", 0, "stop after N instructions (0 = unbounded)")
	debug := fs.Bool("debug", false, "launch the interactive single-step inspector instead of free-running")
	realtime := fs.Bool("realtime", false, "throttle execution to NTSC CPU speed instead of running as fast as possible")
	if err := fs.Parse(args); err != nil {
		return exitLoadError
	}

	if fs.NArg() != 1 {
		logger.Print("usage: nesgo [-trace] [-max-instructions N] [-debug] <rom.nes>")
		return exitLoadError
	}
	romPath := fs.Arg(0)

	f, err := os.Open(romPath)
	if err != nil {
		logger.Print(err)
		return exitLoadError
	}
	defer f.Close()

	cart, err := cartridge.Load(f)
	if err != nil {
		var loadErr *cartridge.LoadError
		if errors.As(err, &loadErr) {
			logger.Printf("failed to load %s: %s", romPath, loadErr)
		} else {
			logger.Printf("failed to load %s: %v", romPath, err)
		}
		return exitLoadError
	}

	b := bus.New()
	b.AttachCartridge(cart)
	c := cpu.New(b)
	c.Reset()

	if *debug {
		if _, err := debugger.New(c).Run(); err != nil {
			logger.Printf("debugger: %v", err)
			return exitRuntimeError
		}
		return exitOK
	}

	cfg := runner.Config{MaxInstructions: *maxInstructions, RealTime: *realtime}
	if *trace {
		cfg.Trace = os.Stdout
	}

	res, err := runner.Run(c, cfg)
	if err != nil {
		var halted *runner.HaltedError
		if errors.As(err, &halted) && halted.Err == nil {
			// HLT: a clean, documented stop, not a failure.
			logger.Printf("halted after %d instructions (%d cycles)", res.Instructions, res.Cycles)
			return exitOK
		}
		logger.Print(err)
		return exitRuntimeError
	}
	return exitOK
}
