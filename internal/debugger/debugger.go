// Package debugger is an interactive bubbletea TUI for single-stepping a
// cpu.CPU: it shows five 16-byte rows of bus memory starting at the row that
// held PC when the inspector was created (the view does not follow PC), the
// register file, and the instruction about to execute, advancing one step
// per keypress.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/hejops/nesgo/cpu"
)

type model struct {
	cpu *cpu.CPU

	offset uint16 // base address the page table scrolls from
	prevPC uint16
	err    error
	steps  int
}

// New returns a bubbletea program that single-steps c starting from its
// current PC. Call c.Reset before constructing this if the Cpu hasn't been
// primed yet.
func New(c *cpu.CPU) *tea.Program {
	return tea.NewProgram(model{cpu: c, offset: c.PC})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if _, err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.steps++
		}
	}
	return m, nil
}

// renderPage renders 16 consecutive bytes of the bus as one line, bracketing
// the byte at PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	base := m.offset &^ 0x0f
	for p := 0; p < 5; p++ {
		lines = append(lines, m.renderPage(base+uint16(p*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	flagLabels := "N V U B D I Z C"
	flagBits := []bool{
		m.cpu.Negative(), m.cpu.Overflow(), true, false,
		m.cpu.Decimal(), m.cpu.Interrupt(), m.cpu.Zero(), m.cpu.Carry(),
	}
	var bits string
	for _, set := range flagBits {
		if set {
			bits += "/ "
		} else {
			bits += "  "
		}
	}
	return fmt.Sprintf(`
PC: %#04x (was %#04x)
steps: %d
 A: %#02x
 X: %#02x
 Y: %#02x
 S: %#02x
%s
%s
`,
		m.cpu.PC, m.prevPC, m.steps,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S,
		flagLabels, bits)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		m.cpu.Trace(),
		spew.Sprintf("%#v", m.err),
	)
}
