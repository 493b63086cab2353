package cpu

import "fmt"

// Trace renders the CPU's state immediately before the instruction at PC
// executes, in the nestest-style line format spec.md §6 specifies:
//
//	C000  A9 00     LDA #$00                        A:00 X:00 Y:00 P:24 SP:FD
//
// Operand bytes are rendered for documentation only; Trace does not advance
// PC or otherwise mutate the CPU.
func (c *CPU) Trace() string {
	opcode := c.Read(c.PC)
	entry := opcodeTable[opcode]

	name := entry.name
	if name == "" {
		name = "???"
	}

	width := operandWidth(entry.mode)
	bytesCol := fmt.Sprintf("%02X", opcode)
	for i := 1; i < width; i++ {
		bytesCol += fmt.Sprintf(" %02X", c.Read(c.PC+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-9s %-4s%-27s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		c.PC, bytesCol, name, disassembleOperand(c, entry.mode, width),
		c.A, c.X, c.Y, c.P, c.S)
}

// operandWidth is how many bytes, including the opcode itself, the
// addressing mode consumes from the instruction stream.
func operandWidth(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		return 1
	}
}

// disassembleOperand renders an opcode's operand bytes in assembler syntax
// for the trace line, without resolving indexed/indirect addresses (no Bus
// side effects beyond the raw reads Trace already performed for bytesCol).
func disassembleOperand(c *CPU, mode AddressingMode, width int) string {
	switch mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", c.Read(c.PC+1))
	case ZeroPage:
		return fmt.Sprintf("$%02X", c.Read(c.PC+1))
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", c.Read(c.PC+1))
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", c.Read(c.PC+1))
	case Relative:
		offset := int8(c.Read(c.PC + 1))
		target := uint16(int32(c.PC) + int32(width) + int32(offset))
		return fmt.Sprintf("$%04X", target)
	case Absolute:
		return fmt.Sprintf("$%04X", c.readWord(c.PC+1))
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", c.readWord(c.PC+1))
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", c.readWord(c.PC+1))
	case Indirect:
		return fmt.Sprintf("($%04X)", c.readWord(c.PC+1))
	case IndirectX:
		return fmt.Sprintf("($%02X,X)", c.Read(c.PC+1))
	case IndirectY:
		return fmt.Sprintf("($%02X),Y", c.Read(c.PC+1))
	default:
		return ""
	}
}
