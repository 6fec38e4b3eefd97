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

package smt

import (
	"sync"

	"github.com/ethereum/go-smt/crypto"
)

type (
	Digest = crypto.Digest
	Hasher = crypto.Hasher
)

var zeroDigest = crypto.ZeroDigest

// DefaultHasher returns the hasher used by New: SHA-256 over digest
// pairs and over the little-endian serialization of word sequences.
func DefaultHasher() Hasher {
	return crypto.SHA256{}
}

var (
	defaultRootsOnce sync.Once
	defaultRoots     *emptySubtreeRoots
)

// defaultEmptyRoots returns the process-wide empty-subtree table for
// the default hasher. Computing the table walks 64 levels of pair
// hashing, so it is done once and shared by every tree.
func defaultEmptyRoots() *emptySubtreeRoots {
	defaultRootsOnce.Do(func() {
		defaultRoots = newEmptySubtreeRoots(DefaultHasher())
	})
	return defaultRoots
}
