package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Opcode is a 16 bit big-endian CHIP-8 instruction word.
// All operand fields are derived from the word on access.
type Opcode uint16

// Base returns the first nibble that selects the instruction group.
func (o Opcode) Base() uint8 {
	return uint8((o & 0xF000) >> 12)
}

// X returns the register index in bits 8-11.
func (o Opcode) X() uint8 {
	return uint8((o & 0x0F00) >> 8)
}

// Y returns the register index in bits 4-7.
func (o Opcode) Y() uint8 {
	return uint8((o & 0x00F0) >> 4)
}

// N returns the lowest nibble.
func (o Opcode) N() uint8 {
	return uint8(o & 0x000F)
}

// NN returns the low byte.
func (o Opcode) NN() uint8 {
	return uint8(o & 0x00FF)
}

// NNN returns the 12 bit address field.
func (o Opcode) NNN() uint16 {
	return uint16(o & 0x0FFF)
}

// OpcodeFromBytes builds the opcode from the two instruction bytes.
func OpcodeFromBytes(data []byte) (Opcode, bool) {
	if len(data) < OpcodeSize {
		return 0, false
	}
	return Opcode(uint16(data[0])<<8 | uint16(data[1])), true
}

// Sys is the legacy machine code routine call 0nnn. It is not part of the
// instruction descriptors of the cpu package as interpreters ignore it.
var Sys = &chip8cpu.Instruction{Name: "sys"}

// fallbacks are used for words of a group that match no opcode pattern of the
// cpu package. Register compares ignore the lowest nibble, as interpreters do
// not check it.
var fallbacks = [16]*chip8cpu.Instruction{
	0x0: Sys,
	0x5: chip8cpu.SeInst,
	0x9: chip8cpu.SneInst,
}

// lookup returns the instruction descriptor matching the opcode or nil.
func lookup(o Opcode) *chip8cpu.Instruction {
	w := uint16(o)
	for _, op := range chip8cpu.Opcodes[o.Base()] {
		if op.Info.Mask&w == op.Info.Value {
			return op.Instruction
		}
	}
	return fallbacks[o.Base()]
}
