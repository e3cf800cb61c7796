package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var callReturnROM = []byte{0x22, 0x04, 0x00, 0xE0, 0x00, 0xEE}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

//nolint:funlen // test functions can be long
func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		fileName    string
		opts        options.Program
		disasmOpts  options.Disassembler
		wantErr     bool
		errContains string
		wantGroups  int
		wantOutput  []string
	}{
		{
			name:       "text report",
			data:       callReturnROM,
			fileName:   "test.ch8",
			wantGroups: 3,
			wantOutput: []string{"Rom Size 6 (6)", "Code Groups: 3", "0x200 | 2204 | call $204"},
		},
		{
			name:       "json report",
			data:       callReturnROM,
			fileName:   "test.ch8",
			opts:       options.Program{Format: "json"},
			wantGroups: 3,
			wantOutput: []string{`"codeGroups"`, `"mnemonic": "call $204"`},
		},
		{
			name:       "discard partial groups",
			data:       callReturnROM,
			fileName:   "test.ch8",
			disasmOpts: options.Disassembler{DiscardPartialGroups: true},
			wantGroups: 2,
		},
		{
			name:       "verify and load machine",
			data:       callReturnROM,
			fileName:   "test.rom",
			opts:       options.Program{Verify: true, Machine: true, GroupTypes: true},
			wantGroups: 3,
			wantOutput: []string{"; call"},
		},
		{
			name:       "file of different system",
			data:       []byte{0x12, 0x00},
			fileName:   "test.nes",
			wantGroups: 1,
		},
		{
			name:       "empty rom",
			data:       []byte{},
			fileName:   "empty.ch8",
			wantGroups: 0,
			wantOutput: []string{"Code Groups: 0"},
		},
		{
			name:        "oversized rom",
			data:        make([]byte, rom.MaxSize+1),
			fileName:    "large.ch8",
			wantErr:     true,
			errContains: "rom exceeds program memory",
		},
		{
			name:        "unsupported format",
			data:        callReturnROM,
			fileName:    "test.ch8",
			opts:        options.Program{Format: "xml"},
			wantErr:     true,
			errContains: "unsupported output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(log.NewTestLogger(t))

			opts := tt.opts
			opts.Input = createTempFile(t, tt.fileName, tt.data)

			var buf bytes.Buffer
			app, err := p.Execute(t.Context(), opts, tt.disasmOpts, &buf)
			if tt.wantErr {
				assert.ErrorContains(t, err, tt.errContains)
				assert.Equal(t, 0, buf.Len())
				return
			}

			assert.NoError(t, err)
			assert.Len(t, app.Groups, tt.wantGroups)
			for _, s := range tt.wantOutput {
				assert.True(t, strings.Contains(buf.String(), s), "output is missing %q", s)
			}
			if opts.Format == options.FormatJSON {
				assert.True(t, json.Valid(buf.Bytes()))
			}
		})
	}
}

func TestExecute_MissingFile(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{Input: "/nonexistent/file.ch8"}

	var buf bytes.Buffer
	_, err := p.Execute(t.Context(), opts, options.NewDisassembler(), &buf)
	assert.ErrorContains(t, err, "loading rom")
	assert.Equal(t, 0, buf.Len())
}

func TestExecuteWithROM_Canceled(t *testing.T) {
	p := New(log.NewTestLogger(t))
	r, err := rom.New(callReturnROM)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err = p.ExecuteWithROM(ctx, r, options.Program{}, options.NewDisassembler(), &buf)
	assert.ErrorContains(t, err, "context canceled")
	assert.Equal(t, 0, buf.Len())
}

func TestPrintInfo(t *testing.T) {
	r, err := rom.New(callReturnROM)
	assert.NoError(t, err)

	for _, quiet := range []bool{false, true} {
		p := New(log.NewTestLogger(t))
		// should not panic
		p.printInfo(options.Program{Input: "test.ch8", Quiet: quiet}, r, options.FormatText)
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
