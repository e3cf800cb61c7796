package verification

import (
	"hash/crc32"
	"testing"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/chip8disasm/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testData = []byte{0x22, 0x04, 0x00, 0xE0, 0x00, 0xEE}

func testProgram(t *testing.T) (*rom.ROM, *program.Program) {
	t.Helper()

	r, err := rom.New(testData)
	assert.NoError(t, err)

	app := program.New(r.Len(), rom.BaseAddress)
	app.Checksums.ROM = crc32.ChecksumIEEE(testData)

	call := program.NewCodeGroup(0x200, program.EntryPoint)
	call.Add(chip8.Decode(0x200, 0x2204))
	app.AddGroup(call)

	ret := program.NewCodeGroup(0x204, program.CallDestination)
	ret.Add(chip8.Decode(0x204, 0x00EE))
	app.AddGroup(ret)
	return r, app
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		name        string
		modify      func(app *program.Program)
		errContains string
	}{
		{
			name:   "valid program",
			modify: func(*program.Program) {},
		},
		{
			name:        "size mismatch",
			modify:      func(app *program.Program) { app.ROMSize = 8 },
			errContains: "mismatched lengths",
		},
		{
			name:        "checksum mismatch",
			modify:      func(app *program.Program) { app.Checksums.ROM++ },
			errContains: "crc32 checksum",
		},
		{
			name: "wrong opcode",
			modify: func(app *program.Program) {
				app.Groups[1].Instructions[0] = chip8.Decode(0x204, 0x00E0)
			},
			errContains: "1 mismatches",
		},
		{
			name: "duplicate instruction",
			modify: func(app *program.Program) {
				group := program.NewCodeGroup(0x204, program.JumpDestination)
				group.Add(chip8.Decode(0x204, 0x00EE))
				app.AddGroup(group)
			},
			errContains: "1 mismatches",
		},
		{
			name: "overlapping instruction",
			modify: func(app *program.Program) {
				group := program.NewCodeGroup(0x201, program.JumpDestination)
				group.Add(chip8.Decode(0x201, 0x0400))
				app.AddGroup(group)
			},
			errContains: "1 mismatches",
		},
		{
			name: "instruction outside of rom",
			modify: func(app *program.Program) {
				group := program.NewCodeGroup(0x206, program.JumpDestination)
				group.Add(chip8.Decode(0x206, 0x00E0))
				app.AddGroup(group)
			},
			errContains: "1 mismatches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, app := testProgram(t)
			tt.modify(app)

			err := VerifyOutput(logger, r, app)
			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errContains)
			}
		})
	}
}

func TestVerifyOutput_TruncatedInstruction(t *testing.T) {
	data := []byte{0x12, 0x00, 0x00}
	r, err := rom.New(data)
	assert.NoError(t, err)

	app := program.New(r.Len(), rom.BaseAddress)
	app.Checksums.ROM = crc32.ChecksumIEEE(data)

	loop := program.NewCodeGroup(0x200, program.EntryPoint)
	loop.Add(chip8.Decode(0x200, 0x1200))
	app.AddGroup(loop)

	truncated := program.NewCodeGroup(0x202, program.JumpDestination)
	truncated.Add(chip8.Decode(0x202, 0x0000))
	app.AddGroup(truncated)

	err = VerifyOutput(log.NewTestLogger(t), r, app)
	assert.ErrorContains(t, err, "1 mismatches")
}
