package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Flow classifies how an instruction transfers control.
type Flow int

const (
	// Fallthrough continues with the next instruction.
	Fallthrough Flow = iota
	// Return returns from a subroutine.
	Return
	// Jump transfers control unconditionally to the target address.
	Jump
	// Call calls the subroutine at the target address.
	Call
	// Skip conditionally skips the next instruction.
	Skip
)

var flowNames = map[Flow]string{
	Fallthrough: "fallthrough",
	Return:      "return",
	Jump:        "jump",
	Call:        "call",
	Skip:        "skip",
}

func (f Flow) String() string {
	if name, ok := flowNames[f]; ok {
		return name
	}
	return fmt.Sprintf("flow(%d)", int(f))
}

// Instruction is a decoded CHIP-8 instruction.
type Instruction struct {
	Address  uint16 // logical memory address of the instruction
	Opcode   Opcode
	Mnemonic string
	Flow     Flow
	Target   uint16 // logical target address for Jump and Call flows

	// Unrecognized is set for words that do not match any known opcode pattern.
	Unrecognized bool

	ins *chip8cpu.Instruction
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.Flow == Call
}

// IsJump returns true if the instruction is a direct jump instruction.
func (i Instruction) IsJump() bool {
	return i.Flow == Jump
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.Flow == Return
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	return i.Flow == Skip
}

// IsIndirectJump returns true for JP V0, addr whose target depends on a register.
func (i Instruction) IsIndirectJump() bool {
	return i.ins == chip8cpu.JpInst && i.Opcode&0xF000 == 0xB000
}

// IsDataReference returns true if the instruction references data (LD I, addr).
func (i Instruction) IsDataReference() bool {
	return i.ins == chip8cpu.LdInst && i.Opcode&0xF000 == 0xA000
}

// Classify returns the control flow class of the opcode and the target
// address for jumps and calls. It only looks at the bit pattern.
func Classify(o Opcode) (Flow, uint16) {
	if o == 0x00EE {
		return Return, 0
	}

	switch o & 0xF000 {
	case 0x1000:
		return Jump, o.NNN()
	case 0x2000:
		return Call, o.NNN()
	case 0x3000, 0x4000, 0x5000, 0x9000:
		return Skip, 0
	}

	switch o & 0xF0FF {
	case 0xE09E, 0xE0A1:
		return Skip, 0
	}
	return Fallthrough, 0
}

// Decode decodes the opcode located at the given logical address.
func Decode(address uint16, o Opcode) Instruction {
	flow, target := Classify(o)
	instruction := Instruction{
		Address: address,
		Opcode:  o,
		Flow:    flow,
		Target:  target,
		ins:     lookup(o),
	}

	if instruction.ins == nil {
		instruction.Unrecognized = true
		instruction.Mnemonic = fmt.Sprintf("unrecognized $%04X", uint16(o))
		return instruction
	}

	instruction.Mnemonic = instruction.ins.Name
	if params := formatParams(o); params != "" {
		instruction.Mnemonic = fmt.Sprintf("%s %s", instruction.ins.Name, params)
	}
	return instruction
}

// DecodeBytes decodes the instruction bytes located at the given logical address.
func DecodeBytes(address uint16, data []byte) (Instruction, error) {
	o, ok := OpcodeFromBytes(data)
	if !ok {
		return Instruction{}, fmt.Errorf("decoding instruction at $%03X: %d bytes available", address, len(data))
	}
	return Decode(address, o), nil
}
