// Package asm implements the assembler for a small MIPS-like instruction
// subset.
//
// A source file starts with an optional initial state block (REGISTERS and
// MEMORY) that is echoed verbatim, followed by a CODE section with one
// instruction or label per line. Each recognized instruction is encoded as
// a 32 character binary word. Supported mnemonics are LW, SW, ADDI, BEQ,
// BNE, ADD, SUB and SLT.
//
// Branch offsets are measured in source lines, which is only valid because
// every line of the CODE section holds exactly one instruction or label.
package asm
