// Package cpu implements the processor state and instruction set of the
// minimal data processing unit (MDPU).
//
// The processor consists of a fixed bank of signed 32-bit registers and a
// flat memory of signed 32-bit words. The top of memory doubles as a
// downward-growing stack, tracked by a stack pointer that starts at the last
// memory word.
//
// Every primitive operation validates each register index and memory address
// it touches before writing any result, and reports violations as fault
// errors (see err.go) rather than clamping or wrapping the index.
//
// Arithmetic is 32-bit two's complement and wraps on overflow; this includes
// the absolute value and negation of the most negative integer, and division
// of the most negative integer by -1.
package cpu
