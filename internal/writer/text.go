package writer

import (
	"fmt"
	"strings"

	"github.com/retroenv/chip8disasm/internal/program"
)

// TextWriter writes the human readable listing of all code groups in
// discovery order.
type TextWriter struct {
	Writer
}

// Write writes the listing to the output.
func (w *TextWriter) Write() error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	for _, group := range w.app.Groups {
		if err := w.writeGroup(group); err != nil {
			return fmt.Errorf("writing code group %s: %w", group.Label, err)
		}
	}

	if err := w.writeDataReferences(); err != nil {
		return err
	}
	return w.writeDiagnostics()
}

func (w *TextWriter) writeHeader() error {
	size := w.app.ROMSize
	if err := w.writeLine("Rom Size %X (%d)", size, size); err != nil {
		return err
	}
	if err := w.writeLine("; CRC32 checksum: %08x", w.app.Checksums.ROM); err != nil {
		return err
	}
	return w.writeLine("Code Groups: %d\n", len(w.app.Groups))
}

func (w *TextWriter) writeGroup(group *program.CodeGroup) error {
	var err error
	if w.options.GroupTypes {
		err = w.writeLine("%-32s ; %s", group.Label+":", group.Type)
	} else {
		err = w.writeLine("%s:", group.Label)
	}
	if err != nil {
		return err
	}

	for _, instruction := range group.Instructions {
		if err := w.writeLine("0x%03X | %04X | %s", instruction.Address, uint16(instruction.Opcode),
			instruction.Mnemonic); err != nil {
			return err
		}
	}

	if group.Next != "" {
		if err := w.writeLine("; continues at %s", group.Next); err != nil {
			return err
		}
	}
	return w.writeLine("")
}

func (w *TextWriter) writeDataReferences() error {
	if len(w.app.DataReferences) == 0 {
		return nil
	}

	if err := w.writeLine("Data References: %d", len(w.app.DataReferences)); err != nil {
		return err
	}
	for _, ref := range w.app.DataReferences {
		usages := make([]string, 0, len(ref.UsageAt))
		for _, address := range ref.UsageAt {
			usages = append(usages, fmt.Sprintf("$%03X", address))
		}
		if err := w.writeLine("%s | used at %s", ref.Name, strings.Join(usages, ", ")); err != nil {
			return err
		}
	}
	return w.writeLine("")
}

func (w *TextWriter) writeDiagnostics() error {
	if len(w.app.Diagnostics) == 0 {
		return nil
	}

	if err := w.writeLine("Diagnostics: %d", len(w.app.Diagnostics)); err != nil {
		return err
	}
	for _, diagnostic := range w.app.Diagnostics {
		if err := w.writeLine("%s", diagnostic); err != nil {
			return err
		}
	}
	return nil
}
