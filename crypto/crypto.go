// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package crypto holds the digest primitives the tree is built on. The
// tree itself is hash-agnostic: it only ever combines two digests into
// one, or folds a sequence of 32-bit words into one digest.
package crypto

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Digest is the unit of commitment. It has value equality and an
// all-zero sentinel, which stands in for the hash of an empty leaf.
type Digest = common.Hash

// ZeroDigest is the all-zero sentinel.
var ZeroDigest Digest

// Hasher is the capability the tree consumes. Both operations must be
// deterministic; HashPair is order-sensitive.
//
// Hashing zero words is reserved to represent "empty" and is never
// requested by the tree.
type Hasher interface {
	// HashPair hashes two digests into one.
	HashPair(a, b Digest) Digest

	// HashWords hashes a sequence of 32-bit words into one digest.
	HashWords(words []uint32) Digest
}

// SHA256 is the default Hasher. Words are serialized little-endian
// before hashing; this byte order is part of the wire contract and is
// pinned by test vectors.
type SHA256 struct{}

func (SHA256) HashPair(a, b Digest) Digest {
	digest := sha256.New()
	digest.Write(a[:])
	digest.Write(b[:])
	return common.BytesToHash(digest.Sum(nil))
}

func (SHA256) HashWords(words []uint32) Digest {
	digest := sha256.New()
	var buf [4]byte
	for _, w := range words {
		binary.LittleEndian.PutUint32(buf[:], w)
		digest.Write(buf[:])
	}
	return common.BytesToHash(digest.Sum(nil))
}
