// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/writer"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	disasmOptions := options.NewDisassembler()
	readDisasmOptionFlags(flags, &disasmOptions)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && !opts.Schema) {
		return opts, disasmOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, disasmOptions, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, disasmOptions, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8disasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	} else if e.msg != "" {
		fmt.Println(e.msg)
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Format == "" {
		return nil
	}

	opts.Format = options.NormalizeFormat(opts.Format)
	if err := writer.CheckFormat(opts.Format); err != nil {
		return fmt.Errorf("%w. Valid options: %s, %s, %s", err, options.FormatText, options.FormatJSON, options.FormatAsm)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output report file, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", "", "format of the report (text/json/asm) - if not detected from the output file extension")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically report file naming, for example *.ch8")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the disassembled instructions against the ROM content")
	flags.BoolVar(&opts.Schema, "schema", false, "output the JSON schema of the report and exit")
	flags.BoolVar(&opts.Machine, "vm", false, "load the ROM into the machine model and log its state")
	flags.BoolVar(&opts.GroupTypes, "types", false, "output how each code group was reached as label comment")
}

func readDisasmOptionFlags(flags *flag.FlagSet, opts *options.Disassembler) {
	flags.BoolVar(&opts.DiscardPartialGroups, "discard", false, "discard code groups that run into already processed code instead of keeping them")
	flags.BoolVar(&opts.StrictReturns, "strict", false, "warn about returns that have no matching call")
}
