package program

import (
	"fmt"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
)

const labelNaming = "loc_%03X"

// Label returns the label name for a logical address.
func Label(address uint16) string {
	return fmt.Sprintf(labelNaming, address)
}

// CodeGroup is a straight-line run of instructions starting at a labeled
// entry address and ending at a control transfer instruction or the ROM end.
type CodeGroup struct {
	Label   string
	Address uint16 // logical entry address
	Type    GroupType

	Instructions []chip8.Instruction

	// Next is the label of the already processed code that this group
	// falls through to, empty if the group ends in a control transfer.
	Next string
}

// NewCodeGroup returns an empty code group for the logical entry address.
func NewCodeGroup(address uint16, typ GroupType) *CodeGroup {
	return &CodeGroup{
		Label:   Label(address),
		Address: address,
		Type:    typ,
	}
}

// Add appends an instruction to the group.
func (g *CodeGroup) Add(instruction chip8.Instruction) {
	g.Instructions = append(g.Instructions, instruction)
}

// Empty returns whether the group does not contain any instruction.
func (g *CodeGroup) Empty() bool {
	return len(g.Instructions) == 0
}

// EndAddress returns the logical address following the last instruction.
func (g *CodeGroup) EndAddress() uint16 {
	return g.Address + uint16(len(g.Instructions)*chip8.OpcodeSize)
}
