// Package ldpc implements the FT8 (174,91) LDPC decoder: parity checking,
// probability- and LLR-domain belief propagation, the CRC-14 used to
// validate the decoded payload, and a binary Gauss-Jordan inverter used by
// ordered-statistics recovery at a higher layer.
//
// Nothing here touches I/O, spawns goroutines, or keeps state across calls;
// callers own all scratch space implicitly through normal Go value passing.
package ldpc
