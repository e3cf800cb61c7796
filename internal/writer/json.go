package writer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/retroenv/chip8disasm/internal/program"
)

// Report is the machine readable representation of a disassembled program.
type Report struct {
	ROMSize     int          `json:"romSize" jsonschema:"title=ROM Size,description=Size of the ROM in bytes"`
	BaseAddress uint16       `json:"baseAddress" jsonschema:"title=Base Address,description=Memory address of the first ROM byte"`
	CRC32       string       `json:"crc32" jsonschema:"title=CRC32,description=CRC32 checksum of the ROM as hex string"`
	CodeGroups  []CodeGroup  `json:"codeGroups" jsonschema:"title=Code Groups,description=Code groups in discovery order"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" jsonschema:"title=Diagnostics,description=Anomalies found while following the execution flow"`

	DataReferences []DataReference `json:"dataReferences,omitempty" jsonschema:"title=Data References,description=Addresses loaded into the I register"`
}

// DataReference is a referenced data address in the report.
type DataReference struct {
	Address uint16   `json:"address" jsonschema:"title=Address"`
	Name    string   `json:"name" jsonschema:"title=Name"`
	UsedAt  []uint16 `json:"usedAt" jsonschema:"title=Used At,description=Addresses of the referencing instructions"`
}

// CodeGroup is a labeled run of instructions in the report.
type CodeGroup struct {
	Label        string        `json:"label" jsonschema:"title=Label"`
	Address      uint16        `json:"address" jsonschema:"title=Address,description=Logical entry address"`
	Types        []string      `json:"types,omitempty" jsonschema:"title=Types,description=How the entry of the group was reached"`
	Next         string        `json:"next,omitempty" jsonschema:"title=Next,description=Label of the code that the group falls through to"`
	Instructions []Instruction `json:"instructions" jsonschema:"title=Instructions"`
}

// Instruction is a decoded instruction in the report.
type Instruction struct {
	Address      uint16  `json:"address" jsonschema:"title=Address,description=Logical address"`
	Opcode       string  `json:"opcode" jsonschema:"title=Opcode,description=Raw opcode as 4 hex digits"`
	Mnemonic     string  `json:"mnemonic" jsonschema:"title=Mnemonic"`
	Flow         string  `json:"flow" jsonschema:"title=Flow,enum=fallthrough,enum=return,enum=jump,enum=call,enum=skip"`
	Target       *uint16 `json:"target,omitempty" jsonschema:"title=Target,description=Logical target address of jumps and calls"`
	Unrecognized bool    `json:"unrecognized,omitempty" jsonschema:"title=Unrecognized"`
}

// Diagnostic is a non fatal finding in the report.
type Diagnostic struct {
	Address uint16 `json:"address" jsonschema:"title=Address"`
	Kind    string `json:"kind" jsonschema:"title=Kind"`
	Message string `json:"message,omitempty" jsonschema:"title=Message"`
}

// JSONWriter writes the program as indented JSON report.
type JSONWriter struct {
	Writer
}

// Write writes the report to the output.
func (w *JSONWriter) Write() error {
	encoder := json.NewEncoder(w.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewReport(w.app)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// NewReport converts a program to its report representation.
func NewReport(app *program.Program) Report {
	report := Report{
		ROMSize:     app.ROMSize,
		BaseAddress: app.BaseAddress,
		CRC32:       fmt.Sprintf("%08x", app.Checksums.ROM),
		CodeGroups:  make([]CodeGroup, 0, len(app.Groups)),
	}

	for _, group := range app.Groups {
		report.CodeGroups = append(report.CodeGroups, newCodeGroup(group))
	}
	for _, diagnostic := range app.Diagnostics {
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			Address: diagnostic.Address,
			Kind:    diagnostic.Kind.String(),
			Message: diagnostic.Message,
		})
	}
	for _, ref := range app.DataReferences {
		report.DataReferences = append(report.DataReferences, DataReference{
			Address: ref.Address,
			Name:    ref.Name,
			UsedAt:  ref.UsageAt,
		})
	}
	return report
}

func newCodeGroup(group *program.CodeGroup) CodeGroup {
	cg := CodeGroup{
		Label:        group.Label,
		Address:      group.Address,
		Next:         group.Next,
		Instructions: make([]Instruction, 0, len(group.Instructions)),
	}
	if group.Type != program.UnknownGroup {
		cg.Types = strings.Split(group.Type.String(), ",")
	}

	for _, ins := range group.Instructions {
		instruction := Instruction{
			Address:      ins.Address,
			Opcode:       fmt.Sprintf("%04X", uint16(ins.Opcode)),
			Mnemonic:     ins.Mnemonic,
			Flow:         ins.Flow.String(),
			Unrecognized: ins.Unrecognized,
		}
		if ins.IsJump() || ins.IsCall() {
			target := ins.Target
			instruction.Target = &target
		}
		cg.Instructions = append(cg.Instructions, instruction)
	}
	return cg
}

// Schema returns the indented JSON schema of the report.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	b, err := json.MarshalIndent(reflector.Reflect(&Report{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return b, nil
}
