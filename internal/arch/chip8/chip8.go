package chip8

import (
	"fmt"
)

// formatParams formats the operand part of a recognized instruction.
// Returns an empty string for instructions without operands.
func formatParams(o Opcode) string {
	switch o & 0xF000 {
	case 0x0000:
		return formatSystemInstruction(o)
	case 0x1000, 0x2000:
		return fmt.Sprintf("$%03X", o.NNN())
	case 0x3000, 0x4000, 0x6000, 0x7000, 0xC000:
		return fmt.Sprintf("V%X, $%02X", o.X(), o.NN())
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", o.X(), o.Y())
	case 0x8000:
		return formatALUInstruction(o)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", o.NNN())
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", o.NNN())
	case 0xD000:
		return fmt.Sprintf("V%X, V%X, $%X", o.X(), o.Y(), o.N())
	case 0xE000:
		return fmt.Sprintf("V%X", o.X())
	case 0xF000:
		return formatMiscInstruction(o)
	}
	return ""
}

// formatSystemInstruction formats CLS, RET and SYS addr.
func formatSystemInstruction(o Opcode) string {
	switch o {
	case 0x00E0, 0x00EE:
		return ""
	}
	return fmt.Sprintf("$%03X", o.NNN())
}

// formatALUInstruction formats register to register operations.
// Shifts only show the target register.
func formatALUInstruction(o Opcode) string {
	switch o.N() {
	case 0x6, 0xE:
		return fmt.Sprintf("V%X", o.X())
	}
	return fmt.Sprintf("V%X, V%X", o.X(), o.Y())
}

// formatMiscInstruction formats the timer, keyboard, BCD and memory block instructions.
func formatMiscInstruction(o Opcode) string {
	x := o.X()
	switch o.NN() {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}
