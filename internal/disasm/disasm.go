// Package disasm implements the control flow following CHIP-8 disassembler.
package disasm

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/chip8disasm/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler that recovers code groups by following
// jumps, calls, returns and conditional skips from the program start.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	rom     *rom.ROM
}

// New creates a new disassembler for the passed ROM.
func New(logger *log.Logger, r *rom.ROM, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		rom:     r,
	}
}

// Process follows the execution flow of the ROM and returns the discovered
// code groups in discovery order. The run is deterministic for a given ROM.
func (dis *Disasm) Process(ctx context.Context) (*program.Program, error) {
	t := newTraversal()
	t.push(path{address: 0, typ: program.EntryPoint})

	if err := dis.followExecutionFlow(ctx, t); err != nil {
		return nil, err
	}
	dis.processBranchDestinations(t)

	app := program.New(dis.rom.Len(), rom.BaseAddress)
	app.Groups = t.groups
	app.Diagnostics = t.diagnostics
	app.DataReferences = dis.processDataReferences(t)
	app.Data = dis.rom.Bytes()
	app.Checksums.ROM = crc32.ChecksumIEEE(app.Data)

	dis.logger.Debug("Execution flow processed",
		log.Int("code_groups", len(app.Groups)),
		log.Int("instructions", len(t.visited)),
		log.Int("diagnostics", len(app.Diagnostics)),
		log.Int("data_references", len(app.DataReferences)))
	return app, nil
}

// followExecutionFlow processes pending paths until the work-list is empty.
// Every address is decoded at most once, which bounds the number of paths.
func (dis *Disasm) followExecutionFlow(ctx context.Context, t *traversal) error {
	for p, ok := t.pop(); ok; p, ok = t.pop() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("following execution flow: %w", err)
		}
		dis.explore(t, p)
	}
	return nil
}
