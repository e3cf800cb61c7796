// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/pipeline"
	"github.com/retroenv/chip8disasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow. The report is
// only written to the output once all stages succeeded.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	var buf bytes.Buffer
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, disasmOptions, &buf); err != nil {
		return fmt.Errorf("processing file %s: %w", opts.Input, err)
	}

	return writeOutput(opts.Output, buf.Bytes())
}

// WriteSchema writes the JSON schema of the report to the output.
func WriteSchema(opts options.Program) error {
	schema, err := writer.Schema()
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return writeOutput(opts.Output, append(schema, '\n'))
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
// and report format.
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	var suffix string
	switch options.NormalizeFormat(format) {
	case options.FormatJSON:
		suffix = ".json"
	case options.FormatAsm:
		suffix = ".asm"
	default:
		suffix = ".txt"
	}
	return inputFile[:len(inputFile)-len(ext)] + suffix
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8disasm", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}

func writeOutput(output string, data []byte) error {
	w, err := createWriter(output)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := w.(io.Closer); ok && w != os.Stdout {
			_ = closer.Close()
		}
	}()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func createWriter(output string) (io.Writer, error) {
	if output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", output, err)
	}
	return file, nil
}
