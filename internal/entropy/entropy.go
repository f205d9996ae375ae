// Package entropy supplies non-deterministic seed material from the
// operating system CSPRNG.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
)

// Seed returns a fresh 32-bit seed drawn from crypto/rand. The value differs
// between calls and between runs. crypto/rand.Read never fails as of Go 1.24;
// it crashes the program instead of returning degraded randomness.
func Seed() uint32 {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}
