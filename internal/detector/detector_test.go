package detector

import (
	"testing"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestFormat(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		formatOpt  string
		outputFile string
		wantFormat string
	}{
		{
			name:       "explicit text format option",
			formatOpt:  "text",
			outputFile: "game.json",
			wantFormat: options.FormatText,
		},
		{
			name:       "explicit json format option",
			formatOpt:  " JSON ",
			outputFile: "game.txt",
			wantFormat: options.FormatJSON,
		},
		{
			name:       "detect from .json extension",
			outputFile: "game.JSON",
			wantFormat: options.FormatJSON,
		},
		{
			name:       "detect from .asm extension",
			outputFile: "game.asm",
			wantFormat: options.FormatAsm,
		},
		{
			name:       "console output defaults to text",
			outputFile: "",
			wantFormat: options.FormatText,
		},
		{
			name:       "unknown extension defaults to text",
			outputFile: "game.lst",
			wantFormat: options.FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Format: tt.formatOpt,
				Output: tt.outputFile,
			}
			assert.Equal(t, tt.wantFormat, d.Format(opts))
		})
	}
}

func TestSystem(t *testing.T) {
	d := New(log.NewTestLogger(t))

	tests := []struct {
		inputFile  string
		wantSystem arch.System
	}{
		{inputFile: "game.ch8", wantSystem: arch.CHIP8System},
		{inputFile: "game.rom", wantSystem: arch.CHIP8System},
		{inputFile: "game", wantSystem: arch.CHIP8System},
		{inputFile: "game.NES", wantSystem: arch.NES},
	}

	for _, tt := range tests {
		t.Run(tt.inputFile, func(t *testing.T) {
			assert.Equal(t, tt.wantSystem, d.System(tt.inputFile))
		})
	}
}
