// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8disasm/internal/rom"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw ROM file without any header. Files that do not fit
// into the program memory are rejected before they are fully read.
func (l *Loader) Load(input string) (*rom.ROM, error) {
	file, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", input, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than allowed to detect oversized files
	data, err := io.ReadAll(io.LimitReader(file, rom.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", input, err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes creates a ROM from a buffer that is already in memory.
func (l *Loader) LoadFromBytes(data []byte) (*rom.ROM, error) {
	r, err := rom.New(data)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}
	return r, nil
}
