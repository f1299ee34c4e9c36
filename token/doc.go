// Package token reads stack machine execution traces.
//
// A trace is a line oriented log.  Lines starting with the opcode [Marker]
// describe one executed opcode; every other line is ignored by [Reader.Next],
// but remains visible to [Reader.PeekLine] so that annotations following a
// PUSH can be inspected with [ParseAnnotation].
package token
