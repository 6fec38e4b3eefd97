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
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// KV is one key-value pair for bulk construction.
type KV struct {
	Key   Key
	Value Value
}

// FromEntries builds a tree containing the given pairs, using the
// default hasher. Pairs apply in order, so a later duplicate key
// wins, and an EmptyValue pair is a removal. The resulting root is
// bit-for-bit the root sequential insertion would produce; bucket
// hashing is fanned out across CPUs.
func FromEntries(entries []KV) *Smt {
	return fromEntries(New(), entries)
}

// FromEntriesWithHasher is FromEntries committing with the given
// hasher.
func FromEntriesWithHasher(hasher Hasher, entries []KV) *Smt {
	return fromEntries(NewWithHasher(hasher), entries)
}

func fromEntries(s *Smt, entries []KV) *Smt {
	for _, entry := range entries {
		leafIndex := keyToLeafIndex(entry.Key)
		if entry.Value == EmptyValue {
			if leaf, ok := s.leaves[leafIndex]; ok {
				leaf.Remove(entry.Key)
			}
			continue
		}
		leaf, ok := s.leaves[leafIndex]
		if !ok {
			leaf = newLeaf(leafIndex)
			s.leaves[leafIndex] = leaf
		}
		leaf.Insert(entry.Key, entry.Value)
	}

	order := make([]LeafIndex, 0, len(s.leaves))
	for index, leaf := range s.leaves {
		if leaf.IsEmpty() {
			delete(s.leaves, index)
			continue
		}
		order = append(order, index)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	hashes := make([]Digest, len(order))
	group := new(errgroup.Group)
	group.SetLimit(runtime.NumCPU())
	for i, index := range order {
		i, leaf := i, s.leaves[index]
		group.Go(func() error {
			hashes[i], _ = leaf.Hash(s.hasher)
			return nil
		})
	}
	_ = group.Wait()

	// Each leaf's path recomputation reads its siblings from the
	// inner-node map, so one pass over every populated leaf settles
	// the whole tree: the last write through any node sees final
	// digests on both sides.
	for i, index := range order {
		s.recomputeNodesFromLeafToRoot(index, hashes[i])
	}
	return s
}

// ProvenEntry pairs a claimed key-value binding with its proof.
type ProvenEntry struct {
	Key   Key
	Value Value
	Proof *Proof
}

var errProofRejected = errors.New("proof rejected")

// VerifyProofs checks every entry's proof against root, fanning the
// verifications out across CPUs. It reports true only when all of
// them hold.
func VerifyProofs(entries []ProvenEntry, root Digest) bool {
	group := new(errgroup.Group)
	group.SetLimit(runtime.NumCPU())
	for _, entry := range entries {
		entry := entry
		group.Go(func() error {
			if !entry.Proof.Verify(entry.Key, entry.Value, root) {
				return errProofRejected
			}
			return nil
		})
	}
	return group.Wait() == nil
}
