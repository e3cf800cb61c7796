// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/chip8disasm/internal/detector"
	"github.com/retroenv/chip8disasm/internal/disasm"
	"github.com/retroenv/chip8disasm/internal/loader"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/chip8disasm/internal/rom"
	"github.com/retroenv/chip8disasm/internal/verification"
	"github.com/retroenv/chip8disasm/internal/vm"
	"github.com/retroenv/chip8disasm/internal/writer"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	output io.Writer) (*program.Program, error) {

	if system := p.detector.System(opts.Input); system != arch.CHIP8System {
		p.logger.Warn("File extension indicates a different system, processing as CHIP-8 ROM",
			log.Stringer("system", system),
			log.String("file", opts.Input))
	}

	r, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, r, opts, disasmOpts, output)
}

// ExecuteWithROM runs the disassembly pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
// Nothing is written to the output if any stage fails.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, r *rom.ROM, opts options.Program,
	disasmOpts options.Disassembler, output io.Writer) (*program.Program, error) {

	format := p.detector.Format(opts)
	if err := writer.CheckFormat(format); err != nil {
		return nil, fmt.Errorf("checking report format: %w", err)
	}

	p.printInfo(opts, r, format)

	if opts.Machine {
		if err := p.loadMachine(r); err != nil {
			return nil, fmt.Errorf("loading machine: %w", err)
		}
	}

	dis := disasm.New(p.logger, r, disasmOpts)
	app, err := dis.Process(ctx)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}
	p.logDiagnostics(app)

	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, r, app); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	if err := p.writeReport(format, app, opts, output); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return app, nil
}

func (p *Pipeline) writeReport(format string, app *program.Program, opts options.Program, output io.Writer) error {
	writerOpts := writer.Options{
		GroupTypes: opts.GroupTypes,
	}
	w, err := writer.New(format, app, output, writerOpts)
	if err != nil {
		return fmt.Errorf("initializing writer: %w", err)
	}
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	return nil
}

// loadMachine loads the ROM into the machine model and logs its initial state.
func (p *Pipeline) loadMachine(r *rom.ROM) error {
	machine := vm.New()
	if err := machine.LoadROM(r.Bytes()); err != nil {
		return fmt.Errorf("loading rom into machine: %w", err)
	}

	p.logger.Info("Loaded ROM into machine",
		log.Hex("pc", int(machine.PC)),
		log.Int("program_bytes", len(machine.ProgramMemory(r.Len()))))
	return nil
}

func (p *Pipeline) logDiagnostics(app *program.Program) {
	for _, diagnostic := range app.Diagnostics {
		p.logger.Debug("Diagnostic",
			log.Stringer("kind", diagnostic.Kind),
			log.Hex("address", int(diagnostic.Address)),
			log.String("message", diagnostic.Message))
	}
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, r *rom.ROM, format string) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", r.Len()),
		log.String("format", format),
	)
}
