// Package program represents a disassembled CHIP-8 program.
package program

// Checksums contains the CRC32 checksum to identify the disassembled ROM.
type Checksums struct {
	ROM uint32
}

// Program is the result of a disassembly run. Code groups are stored in
// the order that they were discovered in, not in address order.
type Program struct {
	ROMSize     int
	BaseAddress uint16
	Checksums   Checksums
	Data        []byte // ROM content, used to output bytes that are not covered by code

	Groups         []*CodeGroup
	Diagnostics    []Diagnostic
	DataReferences []DataReference // sorted by address
}

// New creates a new empty program for a ROM of the given size.
func New(romSize int, baseAddress uint16) *Program {
	return &Program{
		ROMSize:     romSize,
		BaseAddress: baseAddress,
	}
}

// AddGroup appends a committed code group.
func (p *Program) AddGroup(group *CodeGroup) {
	p.Groups = append(p.Groups, group)
}

// AddDiagnostic appends a diagnostic that was found during disassembly.
func (p *Program) AddDiagnostic(diagnostic Diagnostic) {
	p.Diagnostics = append(p.Diagnostics, diagnostic)
}

// InstructionCount returns the number of instructions of all code groups.
func (p *Program) InstructionCount() int {
	var count int
	for _, group := range p.Groups {
		count += len(group.Instructions)
	}
	return count
}

// Group returns the code group that starts at the given logical address.
func (p *Program) Group(address uint16) (*CodeGroup, bool) {
	for _, group := range p.Groups {
		if group.Address == address {
			return group, true
		}
	}
	return nil, false
}
