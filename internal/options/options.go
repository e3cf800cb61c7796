// Package options contains the program options.
package options

import "strings"

// Output formats of the report.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatAsm  = "asm"
)

// Program options of the disassembler.
type Program struct {
	Input  string // ROM file to disassemble
	Output string // report file, printed on console if empty
	Format string // report format, text, json or asm, detected from the output file if empty
	Batch  string // file mask of ROM files to process, for example *.ch8

	Schema     bool // print the JSON schema of the report instead of disassembling
	Verify     bool // verify the disassembly result against the ROM
	Machine    bool // load the ROM into the machine model and log its state
	GroupTypes bool // output how each code group was reached
	Debug      bool
	Quiet      bool
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	// DiscardPartialGroups drops an uncommitted code group when its next
	// address was already visited, instead of committing it.
	DiscardPartialGroups bool

	// StrictReturns logs returns without a matching call site as warnings.
	StrictReturns bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{}
}

// NormalizeFormat returns the lower case format name, defaulting to text.
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return FormatText
	}
	return format
}
