// Package cpu implements the btern processor: the fixed-width instruction
// codec, the fetch-decode-execute engine, and the encoder back end that
// turns resolved instruction sequences into Word streams.
//
// The processor has 27 general-purpose registers (R0 is hardwired to zero),
// a Word-addressed memory, a bounded call stack for CALL/RET, and a program
// counter. Every instruction occupies exactly one 27-trit Word, partitioned
// into five trit fields: immediate, two source registers, a destination
// register, and the opcode.
package cpu
