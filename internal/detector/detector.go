// Package detector handles report format and input system detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Format determines the report format from options or the output filename.
// It first checks if a format is explicitly specified in options, otherwise
// attempts to detect the format from the output filename extension.
func (d *Detector) Format(opts options.Program) string {
	if opts.Format != "" {
		return options.NormalizeFormat(opts.Format)
	}

	var format string
	switch strings.ToLower(filepath.Ext(opts.Output)) {
	case ".json":
		format = options.FormatJSON
	case ".asm":
		format = options.FormatAsm
	default:
		format = options.FormatText
	}
	d.logger.Debug("Auto-detected report format",
		log.String("format", format),
		log.String("file", opts.Output))
	return format
}

// System determines the system that the input file was made for, based on
// the file extension. Unknown extensions are assumed to be CHIP-8 ROMs.
func (d *Detector) System(input string) arch.System {
	ext := strings.ToLower(filepath.Ext(input))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		return arch.CHIP8System
	}
}
