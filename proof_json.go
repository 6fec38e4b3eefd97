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
	"encoding/hex"
	"encoding/json"
	"fmt"
)

type proofEntryMarshaller struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type proofMarshaller struct {
	LeafIndex uint64                 `json:"leafIndex,string"`
	Entries   []proofEntryMarshaller `json:"entries"`
	Path      []string               `json:"path"`
}

func (p *Proof) MarshalJSON() ([]byte, error) {
	aux := proofMarshaller{
		LeafIndex: uint64(p.leaf.Index()),
		Entries:   make([]proofEntryMarshaller, 0, len(p.leaf.entries)),
		Path:      make([]string, 0, len(p.path)),
	}
	for _, entry := range p.leaf.entries {
		aux.Entries = append(aux.Entries, proofEntryMarshaller{
			Key:   hex.EncodeToString(entry.key.Bytes()),
			Value: hex.EncodeToString(entry.value.Bytes()),
		})
	}
	for _, sibling := range p.path {
		aux.Path = append(aux.Path, hex.EncodeToString(sibling[:]))
	}
	return json.Marshal(&aux)
}

func (p *Proof) UnmarshalJSON(data []byte) error {
	var aux proofMarshaller
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Path) != LeafDepth {
		return fmt.Errorf("%w: path has %d digests, want %d", ErrInvalidProofEncoding, len(aux.Path), LeafDepth)
	}
	path := make(MerklePath, len(aux.Path))
	for i, s := range aux.Path {
		sibling, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("error decoding hex string for path digest %d: %w", i, err)
		}
		if len(sibling) != len(path[i]) {
			return fmt.Errorf("%w: path digest %d has %d bytes", ErrInvalidProofEncoding, i, len(sibling))
		}
		copy(path[i][:], sibling)
	}

	enc := leafEncoding{Index: aux.LeafIndex}
	for i, entry := range aux.Entries {
		key, err := hex.DecodeString(entry.Key)
		if err != nil {
			return fmt.Errorf("error decoding hex string for key %d: %w", i, err)
		}
		value, err := hex.DecodeString(entry.Value)
		if err != nil {
			return fmt.Errorf("error decoding hex string for value %d: %w", i, err)
		}
		enc.Keys = append(enc.Keys, key)
		enc.Values = append(enc.Values, value)
	}
	leaf, err := enc.decode()
	if err != nil {
		return err
	}

	p.path = path
	p.leaf = leaf
	if p.hasher == nil {
		p.hasher = DefaultHasher()
	}
	return nil
}
