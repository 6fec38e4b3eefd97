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

import "encoding/binary"

// KeyWords is the number of 32-bit words in a key or value.
const KeyWords = 8

// KeyBytes is the length of the canonical byte serialization of a key
// or value: each word little-endian, word 0 first.
const KeyBytes = 4 * KeyWords

// Key is a 256-bit key, as eight 32-bit words. Word 0 is the most
// significant for ordering purposes.
type Key [KeyWords]uint32

// Value is a 256-bit value, same representation as Key.
type Value [KeyWords]uint32

// EmptyValue is the value every key maps to until it is explicitly
// inserted. Inserting it is indistinguishable from removal.
var EmptyValue Value

// Cmp compares two keys lexicographically by word, word 0 most
// significant. It returns -1, 0 or +1.
func (k Key) Cmp(other Key) int {
	for i := 0; i < KeyWords; i++ {
		switch {
		case k[i] < other[i]:
			return -1
		case k[i] > other[i]:
			return 1
		}
	}
	return 0
}

// Bytes returns the canonical serialization of the key.
func (k Key) Bytes() []byte {
	return wordsToBytes(k)
}

// KeyFromBytes parses the canonical serialization of a key. It panics
// if the input is not exactly KeyBytes long.
func KeyFromBytes(serialized []byte) Key {
	return Key(wordsFromBytes(serialized))
}

// IsEmpty reports whether the value is the all-zero default.
func (v Value) IsEmpty() bool {
	return v == EmptyValue
}

// Bytes returns the canonical serialization of the value.
func (v Value) Bytes() []byte {
	return wordsToBytes(v)
}

// ValueFromBytes parses the canonical serialization of a value. It
// panics if the input is not exactly KeyBytes long.
func ValueFromBytes(serialized []byte) Value {
	return Value(wordsFromBytes(serialized))
}

func wordsToBytes(words [KeyWords]uint32) []byte {
	out := make([]byte, KeyBytes)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}

func wordsFromBytes(serialized []byte) [KeyWords]uint32 {
	if len(serialized) != KeyBytes {
		panic("smt: serialized word array must be exactly 32 bytes")
	}
	var words [KeyWords]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(serialized[4*i:])
	}
	return words
}
