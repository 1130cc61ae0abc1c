// Package hash computes stable xxHash64 fingerprints over IR token lists,
// used by schemareg to key its derived-artifact cache without re-hashing a
// schema's XML source on every lookup.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/sbeio/gosbe/ir"
)

// Fingerprint computes a stable xxHash64 digest over the attributes of
// tokens that affect wire layout: signal, primitive type, byte order,
// presence, offset, encoded length, field id, token version, and name.
// Two token lists compiled from the same schema produce the same
// fingerprint regardless of which process compiled them, since nothing
// process-local (pointers, map iteration order) feeds the digest.
func Fingerprint(tokens []ir.Token) uint64 {
	d := xxhash.New()

	var scratch [8]byte
	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(scratch[:], v)
		d.Write(scratch[:])
	}

	for _, tok := range tokens {
		writeUint(uint64(tok.Signal))
		writeUint(uint64(tok.PrimitiveType))
		writeUint(uint64(tok.ByteOrder))
		writeUint(uint64(tok.Presence))
		writeUint(uint64(int64(tok.Offset)))
		writeUint(uint64(int64(tok.EncodedLength)))
		writeUint(uint64(int64(tok.FieldID)))
		writeUint(uint64(tok.TokenVersion))
		d.Write([]byte(tok.Name))
	}

	return d.Sum64()
}
