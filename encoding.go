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
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ErrInvalidLeafEncoding  = errors.New("invalid leaf encoding")
	ErrInvalidProofEncoding = errors.New("invalid proof encoding")
)

// Wire shapes. Keys and values travel in their canonical 32-byte
// serialization, path digests as 32-byte strings.
type (
	leafEncoding struct {
		Index  uint64
		Keys   [][]byte
		Values [][]byte
	}

	proofEncoding struct {
		Leaf leafEncoding
		Path []Digest
	}
)

func (l *Leaf) encode() leafEncoding {
	enc := leafEncoding{Index: uint64(l.index)}
	for _, entry := range l.entries {
		enc.Keys = append(enc.Keys, entry.key.Bytes())
		enc.Values = append(enc.Values, entry.value.Bytes())
	}
	return enc
}

func (enc *leafEncoding) decode() (*Leaf, error) {
	if len(enc.Keys) != len(enc.Values) {
		return nil, fmt.Errorf("%w: %d keys for %d values", ErrInvalidLeafEncoding, len(enc.Keys), len(enc.Values))
	}
	leaf := newLeaf(LeafIndex(enc.Index))
	var prev Key
	for i := range enc.Keys {
		if len(enc.Keys[i]) != KeyBytes {
			return nil, fmt.Errorf("%w: key %d has %d bytes", ErrInvalidLeafEncoding, i, len(enc.Keys[i]))
		}
		if len(enc.Values[i]) != KeyBytes {
			return nil, fmt.Errorf("%w: value %d has %d bytes", ErrInvalidLeafEncoding, i, len(enc.Values[i]))
		}
		key := KeyFromBytes(enc.Keys[i])
		if keyToLeafIndex(key) != leaf.index {
			return nil, fmt.Errorf("%w: key %x does not map to leaf index %d", ErrInvalidLeafEncoding, key.Bytes(), leaf.index)
		}
		if i > 0 && key.Cmp(prev) <= 0 {
			return nil, fmt.Errorf("%w: keys not in ascending order", ErrInvalidLeafEncoding)
		}
		leaf.entries = append(leaf.entries, leafEntry{key: key, value: ValueFromBytes(enc.Values[i])})
		prev = key
	}
	return leaf, nil
}

// Serialize encodes the bucket as RLP.
func (l *Leaf) Serialize() ([]byte, error) {
	enc := l.encode()
	return rlp.EncodeToBytes(&enc)
}

// ParseLeaf decodes an RLP-encoded bucket, rejecting any bucket whose
// keys are unsorted or map to a different index.
func ParseLeaf(serialized []byte) (*Leaf, error) {
	var enc leafEncoding
	if err := rlp.DecodeBytes(serialized, &enc); err != nil {
		return nil, err
	}
	return enc.decode()
}

// Serialize encodes the proof as RLP: the leaf bucket followed by the
// 64 path digests, leaf-adjacent first.
func (p *Proof) Serialize() ([]byte, error) {
	enc := proofEncoding{Leaf: p.leaf.encode(), Path: p.path}
	return rlp.EncodeToBytes(&enc)
}

// DeserializeProof decodes an RLP-encoded proof, to be verified with
// the default hasher.
func DeserializeProof(serialized []byte) (*Proof, error) {
	return DeserializeProofWithHasher(DefaultHasher(), serialized)
}

// DeserializeProofWithHasher decodes an RLP-encoded proof, to be
// verified with the given hasher.
func DeserializeProofWithHasher(hasher Hasher, serialized []byte) (*Proof, error) {
	var enc proofEncoding
	if err := rlp.DecodeBytes(serialized, &enc); err != nil {
		return nil, err
	}
	if len(enc.Path) != LeafDepth {
		return nil, fmt.Errorf("%w: path has %d digests, want %d", ErrInvalidProofEncoding, len(enc.Path), LeafDepth)
	}
	leaf, err := enc.Leaf.decode()
	if err != nil {
		return nil, err
	}
	return &Proof{path: enc.Path, leaf: leaf, hasher: hasher}, nil
}
