// Package writer implements the report output of a disassembled program.
package writer

import (
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/program"
)

// ErrUnsupportedFormat is returned for unknown report formats.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ReportWriter defines a shared interface used by the different report formats.
type ReportWriter interface {
	Write() error
}

// Options of the writer.
type Options struct {
	GroupTypes bool // output how each code group was reached as label comment
}

// Writer implements common report writing functionality.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// New creates a new report writer for the given output format.
func New(format string, app *program.Program, writer io.Writer, opts Options) (ReportWriter, error) {
	w := Writer{
		app:     app,
		options: opts,
		writer:  writer,
	}

	switch options.NormalizeFormat(format) {
	case options.FormatText:
		return &TextWriter{Writer: w}, nil
	case options.FormatJSON:
		return &JSONWriter{Writer: w}, nil
	case options.FormatAsm:
		return &AsmWriter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedFormat, format)
	}
}

// CheckFormat returns an error if the report format is not supported.
func CheckFormat(format string) error {
	switch options.NormalizeFormat(format) {
	case options.FormatText, options.FormatJSON, options.FormatAsm:
		return nil
	default:
		return fmt.Errorf("%w '%s'", ErrUnsupportedFormat, format)
	}
}

func (w Writer) writeLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format+"\n", args...); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
