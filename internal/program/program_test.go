package program

import (
	"testing"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestCodeGroup(t *testing.T) {
	group := NewCodeGroup(0x204, CallDestination)
	assert.Equal(t, "loc_204", group.Label)
	assert.True(t, group.Empty())
	assert.Equal(t, uint16(0x204), group.EndAddress())

	group.Add(chip8.Decode(0x204, 0x00E0))
	group.Add(chip8.Decode(0x206, 0x00EE))
	assert.False(t, group.Empty())
	assert.Equal(t, uint16(0x208), group.EndAddress())

	assert.True(t, group.Instructions[1].IsReturn())
}

func TestCodeGroup_Type(t *testing.T) {
	group := NewCodeGroup(0x200, EntryPoint)
	assert.True(t, group.IsType(EntryPoint))
	assert.False(t, group.IsType(JumpDestination))

	group.SetType(JumpDestination)
	assert.True(t, group.IsType(EntryPoint))
	assert.True(t, group.IsType(JumpDestination))
	assert.Equal(t, "entry,jump", group.Type.String())

	assert.Equal(t, "unknown", UnknownGroup.String())
}

func TestProgram(t *testing.T) {
	app := New(6, 0x200)
	assert.Equal(t, 0, app.InstructionCount())

	first := NewCodeGroup(0x200, EntryPoint)
	first.Add(chip8.Decode(0x200, 0x2204))
	second := NewCodeGroup(0x204, CallDestination)
	second.Add(chip8.Decode(0x204, 0x00EE))

	app.AddGroup(first)
	app.AddGroup(second)
	assert.Len(t, app.Groups, 2)
	assert.Equal(t, 2, app.InstructionCount())

	group, ok := app.Group(0x204)
	assert.True(t, ok)
	assert.Equal(t, second, group)

	_, ok = app.Group(0x202)
	assert.False(t, ok)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name       string
		diagnostic Diagnostic
		expected   string
	}{
		{
			name:       "without message",
			diagnostic: Diagnostic{Address: 0x204, Kind: UnresolvedReturn},
			expected:   "$204: unresolved return",
		},
		{
			name:       "with message",
			diagnostic: Diagnostic{Address: 0x200, Kind: TargetOutOfBounds, Message: "jump to $100"},
			expected:   "$200: target out of bounds: jump to $100",
		},
		{
			name:       "unknown kind",
			diagnostic: Diagnostic{Address: 0x200, Kind: DiagnosticKind(99)},
			expected:   "$200: diagnostic(99)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diagnostic.String())
		})
	}
}

func TestDataReference(t *testing.T) {
	assert.Equal(t, "dat_05A", DataName(0x05A))

	app := New(8, 0x200)
	ref := NewDataReference(0x206)
	ref.UsageAt = []uint16{0x200, 0x204}
	app.DataReferences = append(app.DataReferences, ref)

	found, ok := app.DataReference(0x206)
	assert.True(t, ok)
	assert.Equal(t, "dat_206", found.Name)
	assert.Len(t, found.UsageAt, 2)

	_, ok = app.DataReference(0x208)
	assert.False(t, ok)
}
