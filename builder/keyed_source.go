// SPDX-License-Identifier: MIT
// Package: mnl/builder
//
// keyed_source.go - a math/rand.Source64 backed by a keyed blake2b XOF.
//
// The stream is a pure function of the key, independent of math/rand's
// internal generator, so fixtures built WithKey are stable across Go
// releases. Not safe for concurrent use (neither is *rand.Rand).

package builder

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// keyedSource reads 8 bytes of XOF output per Uint64.
type keyedSource struct {
	xof blake2b.XOF
	buf [8]byte
}

// newKeyedSource keys a blake2b XOF of unknown output length.
// A nil key is treated as the empty key.
func newKeyedSource(key []byte) (*keyedSource, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}

	return &keyedSource{xof: xof}, nil
}

// Uint64 returns the next 64 bits of the stream.
func (s *keyedSource) Uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		// Only reachable after 256 GiB of output.
		panic(fmt.Sprintf("builder: keyed source exhausted: %v", err))
	}

	return binary.LittleEndian.Uint64(s.buf[:])
}

// Int63 returns a non-negative 63-bit value.
func (s *keyedSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed rewinds the stream to its start; the key, not the seed, selects it.
func (s *keyedSource) Seed(int64) {
	s.xof.Reset()
}
