package writer

import (
	"fmt"
	"strings"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
)

const dataBytesPerLine = 16

// AsmWriter writes an assembly listing in address order. Bytes that are not
// part of any discovered instruction are output as data.
type AsmWriter struct {
	Writer

	instructions map[int]chip8.Instruction // by internal address
	labels       map[int]string            // by internal address
}

// Write writes the assembly listing to the output.
func (w *AsmWriter) Write() error {
	w.indexProgram()

	if err := w.writeCommentHeader(); err != nil {
		return err
	}

	for i := 0; i < len(w.app.Data); {
		if err := w.writeLabel(i); err != nil {
			return err
		}

		if instruction, ok := w.instructions[i]; ok {
			if err := w.writeInstruction(instruction); err != nil {
				return err
			}
			i += chip8.OpcodeSize
			continue
		}

		count, err := w.writeData(i)
		if err != nil {
			return err
		}
		i += count
	}
	return nil
}

func (w *AsmWriter) indexProgram() {
	w.instructions = map[int]chip8.Instruction{}
	w.labels = map[int]string{}

	for _, group := range w.app.Groups {
		w.labels[w.internal(group.Address)] = group.Label
		for _, instruction := range group.Instructions {
			w.instructions[w.internal(instruction.Address)] = instruction
		}
	}

	// data labels can not be placed inside of instructions or outside of the rom
	for _, ref := range w.app.DataReferences {
		index := w.internal(ref.Address)
		if index < 0 || index >= len(w.app.Data) {
			continue
		}
		if _, ok := w.labels[index]; ok {
			continue
		}
		if _, ok := w.instructions[index-1]; ok {
			continue
		}
		w.labels[index] = ref.Name
	}
}

func (w *AsmWriter) internal(address uint16) int {
	return int(address) - int(w.app.BaseAddress)
}

// writeCommentHeader writes the CRC32 checksum and code base address as comments to the output.
func (w *AsmWriter) writeCommentHeader() error {
	if err := w.writeLine("; CHIP-8 ROM Disassembly"); err != nil {
		return err
	}
	if err := w.writeLine("; CRC32 checksum: %08x", w.app.Checksums.ROM); err != nil {
		return err
	}
	if err := w.writeLine("; Program starts at $%03X in CHIP-8 memory space\n", w.app.BaseAddress); err != nil {
		return err
	}
	return w.writeLine(".org $%03X", w.app.BaseAddress)
}

func (w *AsmWriter) writeLabel(index int) error {
	label, ok := w.labels[index]
	if !ok {
		return nil
	}

	if err := w.writeLine(""); err != nil {
		return err
	}
	if w.options.GroupTypes {
		if group, ok := w.app.Group(uint16(index + int(w.app.BaseAddress))); ok {
			return w.writeLine("%-32s ; %s", label+":", group.Type)
		}
	}
	return w.writeLine("%s:", label)
}

func (w *AsmWriter) writeInstruction(instruction chip8.Instruction) error {
	code := "    " + instruction.Mnemonic
	if instruction.Unrecognized {
		code = fmt.Sprintf("    .word $%04X", uint16(instruction.Opcode))
	}
	return w.writeLine("%-32s ; $%03X %04X", code, instruction.Address, uint16(instruction.Opcode))
}

// writeData bundles the data bytes starting at the index up to the next
// instruction or label and writes up to dataBytesPerLine bytes per line.
// It returns the number of bytes written.
func (w *AsmWriter) writeData(start int) (int, error) {
	end := start + 1
	for end < len(w.app.Data) {
		if _, ok := w.instructions[end]; ok {
			break
		}
		if _, ok := w.labels[end]; ok {
			break
		}
		end++
	}

	data := w.app.Data[start:end]
	for i := 0; i < len(data); i += dataBytesPerLine {
		toWrite := min(len(data)-i, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString("    .byte ")
		for j := range toWrite {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "$%02X", data[i+j])
		}

		address := int(w.app.BaseAddress) + start + i
		if err := w.writeLine("%-32s ; $%03X", buf.String(), address); err != nil {
			return 0, fmt.Errorf("writing data: %w", err)
		}
	}
	return len(data), nil
}
