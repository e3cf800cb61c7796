// Package chip8 provides the CHIP-8 instruction decoder of the disassembler.
//
// # Instruction Set
//
// All instructions are 2 bytes, stored big-endian. The first nibble selects
// the instruction group; groups 0x0, 0x8, 0xE and 0xF dispatch further on
// the low bits:
//   - 0x0: CLS (00E0), RET (00EE), SYS addr for any other word
//   - 0x8: LD, OR, AND, XOR, ADD, SUB, SHR, SUBN, SHL selected by the low nibble
//   - 0xE: SKP (Ex9E), SKNP (ExA1)
//   - 0xF: timer, keyboard, font, BCD and memory block transfers
//
// Patterns are looked up in the opcode table of the retrogolib cpu package.
// Groups 0x0, 0x5 and 0x9 have fallbacks for words the table does not match:
// SYS addr, and SE/SNE Vx, Vy with a non zero lowest nibble.
// Words that match no pattern decode with the Unrecognized flag set.
//
// # Control Flow
//
// Classify derives the control flow class from the bit pattern alone:
//   - Return: 00EE
//   - Jump: 1nnn
//   - Call: 2nnn
//   - Skip: 3xnn, 4xnn, 5xy_, 9xy_, Ex9E, ExA1
//   - Fallthrough: everything else, including the indirect JP V0, addr
//
// The mnemonic text is for display only and never influences the flow class.
//
// # Usage Example
//
//	ins := chip8.Decode(0x200, chip8.Opcode(0x2204))
//	fmt.Println(ins.Mnemonic, ins.Flow, ins.Target) // call $204 call 516
package chip8
