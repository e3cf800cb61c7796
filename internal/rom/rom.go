// Package rom provides the immutable byte buffer of a loaded CHIP-8 program.
package rom

import (
	"errors"
	"fmt"
)

const (
	// BaseAddress is the memory address that the first ROM byte is mapped to.
	BaseAddress = 0x200

	// MemorySize is the size of the CHIP-8 address space.
	MemorySize = 0x1000

	// MaxSize is the largest ROM that fits into the program area of memory.
	MaxSize = MemorySize - BaseAddress
)

var (
	// ErrROMTooLarge is returned when the ROM does not fit into the program area.
	ErrROMTooLarge = errors.New("rom exceeds program memory")
	// ErrOutOfBounds is returned for reads outside of the ROM buffer.
	ErrOutOfBounds = errors.New("address out of rom bounds")
)

// ROM is a loaded program. Internal addresses are 0 based offsets into the
// buffer, logical addresses are internal addresses plus BaseAddress.
type ROM struct {
	data []byte
}

// New creates a ROM from a copy of the passed bytes.
func New(data []byte) (*ROM, error) {
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrROMTooLarge, len(data), MaxSize)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return &ROM{data: buf}, nil
}

// Len returns the ROM size in bytes.
func (r *ROM) Len() int {
	return len(r.data)
}

// Bytes returns a copy of the ROM content.
func (r *ROM) Bytes() []byte {
	buf := make([]byte, len(r.data))
	copy(buf, r.data)
	return buf
}

// Contains returns whether the internal address is inside the buffer.
func (r *ROM) Contains(address int) bool {
	return address >= 0 && address < len(r.data)
}

// Word returns the big-endian 16 bit word starting at the given internal address.
// Both bytes have to be inside the buffer.
func (r *ROM) Word(address int) (uint16, error) {
	if !r.Contains(address) || !r.Contains(address+1) {
		return 0, fmt.Errorf("%w: word at offset %d, rom size %d", ErrOutOfBounds, address, len(r.data))
	}
	return uint16(r.data[address])<<8 | uint16(r.data[address+1]), nil
}

// Logical converts an internal address to a logical memory address.
func Logical(address int) uint16 {
	return uint16(address + BaseAddress)
}

// Internal converts a logical memory address to an internal address.
// The result is negative for addresses below BaseAddress.
func Internal(address uint16) int {
	return int(address) - BaseAddress
}
