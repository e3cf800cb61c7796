package rom

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	data := []byte{0x12, 0x00}
	r, err := New(data)
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	// the rom keeps its own copy
	data[0] = 0xFF
	assert.Equal(t, byte(0x12), r.Bytes()[0])
}

func TestNew_SizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"exact limit", MaxSize, false},
		{"one byte over limit", MaxSize + 1, true},
		{"full memory", MemorySize, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(make([]byte, tt.size))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrROMTooLarge))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestROM_Word(t *testing.T) {
	r, err := New([]byte{0x22, 0x04, 0x00, 0xEE, 0x00})
	assert.NoError(t, err)

	tests := []struct {
		name    string
		address int
		want    uint16
		wantErr bool
	}{
		{"first word", 0, 0x2204, false},
		{"unaligned word", 1, 0x0400, false},
		{"second word", 2, 0x00EE, false},
		{"only high byte left", 4, 0, true},
		{"past end", 5, 0, true},
		{"negative", -2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, err := r.Word(tt.address)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfBounds))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, word)
		})
	}
}

func TestROM_Bytes(t *testing.T) {
	r, err := New([]byte{0x00, 0xE0})
	assert.NoError(t, err)

	b := r.Bytes()
	b[1] = 0xEE

	word, err := r.Word(0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x00E0), word)
}

func TestAddressConversion(t *testing.T) {
	assert.Equal(t, uint16(0x200), Logical(0))
	assert.Equal(t, uint16(0x2FE), Logical(0xFE))
	assert.Equal(t, 0, Internal(0x200))
	assert.Equal(t, 0x34, Internal(0x234))
	assert.Equal(t, -0x100, Internal(0x100))
}
