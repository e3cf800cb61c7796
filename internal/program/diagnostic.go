package program

import "fmt"

// DiagnosticKind classifies an anomaly found while following the control flow.
type DiagnosticKind uint8

// diagnostic kinds.
const (
	UnresolvedReturn       DiagnosticKind = iota + 1 // RET with an empty call stack
	TargetOutOfBounds                                // jump, call or skip landing outside of the ROM
	InstructionOutOfBounds                           // instruction fetch past the end of the ROM
	OverlappingInstruction                           // instruction overlaps an already decoded one
	IndirectJump                                     // JP V0, addr with a register dependent target
	UnrecognizedOpcode                               // word does not match any known instruction
)

var diagnosticKindNames = map[DiagnosticKind]string{
	UnresolvedReturn:       "unresolved return",
	TargetOutOfBounds:      "target out of bounds",
	InstructionOutOfBounds: "instruction out of bounds",
	OverlappingInstruction: "overlapping instruction",
	IndirectJump:           "indirect jump",
	UnrecognizedOpcode:     "unrecognized opcode",
}

func (k DiagnosticKind) String() string {
	if name, ok := diagnosticKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("diagnostic(%d)", uint8(k))
}

// Diagnostic is a non fatal finding at a logical address.
type Diagnostic struct {
	Address uint16
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	if d.Message == "" {
		return fmt.Sprintf("$%03X: %s", d.Address, d.Kind)
	}
	return fmt.Sprintf("$%03X: %s: %s", d.Address, d.Kind, d.Message)
}
