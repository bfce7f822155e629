// Package transcript implements an append-only Fiat-Shamir transcript over
// Keccak-256.
package transcript

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

const stateSize = 32

// Keccak absorbs messages into a 32-byte hash state. Every append and every
// challenge advances a round counter that is mixed into the next hash, so the
// challenge stream depends on the exact order of appends.
type Keccak struct {
	state  [stateSize]byte
	rounds uint32
}

func New(label []byte) *Keccak {
	t := &Keccak{}
	h := sha3.NewLegacyKeccak256()
	h.Write(label)
	copy(t.state[:], h.Sum(nil))
	return t
}

func (t *Keccak) AppendBytes(b []byte) {
	h := t.hasher()
	h.Write(b)
	t.update(h.Sum(nil))
}

func (t *Keccak) AppendMessage(msg string) {
	t.AppendBytes([]byte(msg))
}

func (t *Keccak) AppendUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	t.AppendBytes(b[:])
}

// ChallengeBytes derives the next 32-byte challenge.
func (t *Keccak) ChallengeBytes() []byte {
	t.update(t.hasher().Sum(nil))
	out := make([]byte, stateSize)
	copy(out, t.state[:])
	return out
}

// State returns a copy of the current hash state.
func (t *Keccak) State() [stateSize]byte {
	return t.state
}

func (t *Keccak) hasher() hash.Hash {
	// round counter, big-endian in the low bytes of a 32-byte word
	var round [stateSize]byte
	binary.BigEndian.PutUint32(round[stateSize-4:], t.rounds)

	h := sha3.NewLegacyKeccak256()
	h.Write(t.state[:])
	h.Write(round[:])
	return h
}

func (t *Keccak) update(sum []byte) {
	copy(t.state[:], sum)
	t.rounds++
}
