// Package verification verifies that a disassembled program matches the ROM it was created from.
package verification

import (
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/chip8disasm/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

var errMismatch = errors.New("program does not match rom")

// VerifyOutput verifies that every instruction of the program decodes from
// the ROM bytes at its address, that no instructions overlap and that the
// checksum matches.
func VerifyOutput(logger *log.Logger, r *rom.ROM, app *program.Program) error {
	if app.ROMSize != r.Len() {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", errMismatch, app.ROMSize, r.Len())
	}
	if checksum := crc32.ChecksumIEEE(r.Bytes()); checksum != app.Checksums.ROM {
		return fmt.Errorf("%w: crc32 checksum %08x != %08x", errMismatch, app.Checksums.ROM, checksum)
	}

	var diffs uint64
	report := func(address uint16, msg string) {
		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error(msg, log.Hex("address", int(address)))
		}
	}

	data := r.Bytes()
	owners := map[uint16]string{}
	for _, group := range app.Groups {
		checkGroup(data, group, owners, report)
	}

	for address := range owners {
		if _, ok := owners[address+1]; ok {
			report(address, "Overlapping instructions")
		}
	}

	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d mismatches", errMismatch, diffs)
}

func checkGroup(data []byte, group *program.CodeGroup, owners map[uint16]string,
	report func(address uint16, msg string)) {

	if group.Empty() {
		report(group.Address, "Empty code group")
		return
	}

	expected := group.Address
	for _, instruction := range group.Instructions {
		if instruction.Address != expected {
			report(instruction.Address, "Non contiguous instruction")
		}
		expected = instruction.Address + chip8.OpcodeSize

		if owner, ok := owners[instruction.Address]; ok {
			report(instruction.Address, fmt.Sprintf("Instruction also in code group %s", owner))
		}
		owners[instruction.Address] = group.Label

		index := rom.Internal(instruction.Address)
		if index < 0 || index >= len(data) {
			report(instruction.Address, "Instruction outside of rom")
			continue
		}
		decoded, err := chip8.DecodeBytes(instruction.Address, data[index:])
		if err != nil {
			report(instruction.Address, "Instruction outside of rom")
			continue
		}
		if decoded.Opcode != instruction.Opcode || decoded.Mnemonic != instruction.Mnemonic {
			report(instruction.Address, "Instruction mismatch")
		}
	}
}
