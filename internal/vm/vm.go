// Package vm contains the CHIP-8 machine model that a ROM is loaded into.
// It provides the memory and register state only, instructions are not executed.
package vm

import (
	"fmt"

	"github.com/retroenv/chip8disasm/internal/rom"
)

const (
	registerCount = 16
	stackSize     = 16
)

// VM is the state of a CHIP-8 machine.
type VM struct {
	Memory [rom.MemorySize]byte
	V      [registerCount]byte // general purpose registers V0 to VF
	Stack  [stackSize]uint16   // return addresses of subroutine calls

	I  uint16 // address register
	PC uint16 // program counter
	SP uint8  // stack pointer
}

// New returns a machine with cleared memory and registers.
func New() *VM {
	return &VM{}
}

// LoadROM copies the ROM into the program memory and points the program
// counter to its start.
func (m *VM) LoadROM(data []byte) error {
	if len(data) > rom.MaxSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", rom.ErrROMTooLarge, len(data), rom.MaxSize)
	}

	copy(m.Memory[rom.BaseAddress:], data)
	m.PC = rom.BaseAddress
	return nil
}

// ProgramMemory returns the used part of the program memory.
func (m *VM) ProgramMemory(size int) []byte {
	end := min(rom.BaseAddress+size, rom.MemorySize)
	return m.Memory[rom.BaseAddress:end]
}
