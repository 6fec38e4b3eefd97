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

// MerklePath is the ordered sequence of sibling digests from a leaf
// up to the root: entry 0 is adjacent to the leaf, the last entry
// adjacent to the root. A full path holds exactly LeafDepth digests.
type MerklePath []Digest

// ComputeRoot folds the sibling digests against a running digest
// seeded with seed, combining left and right at each level according
// to the side the (index, depth) pair occupies. This mirrors exactly
// the combination order the tree uses when recomputing a path.
func (p MerklePath) ComputeRoot(hasher Hasher, index uint64, seed Digest) Digest {
	node := nodeIndex{depth: len(p), value: index}
	current := seed
	for _, sibling := range p {
		childSide := node.side()
		node.moveUp()
		if childSide == sideLeft {
			current = hasher.HashPair(current, sibling)
		} else {
			current = hasher.HashPair(sibling, current)
		}
	}
	return current
}

// Proof ties a key's whole collision bucket to the root via a Merkle
// path. The full bucket is needed because the committed leaf digest
// depends on every key in it, so proving any single key's value
// requires the rest of the bucket's content.
type Proof struct {
	path   MerklePath
	leaf   *Leaf
	hasher Hasher
}

// NewProof assembles a proof from its transmitted parts, verified
// with the default hasher.
func NewProof(path MerklePath, leaf *Leaf) *Proof {
	return NewProofWithHasher(DefaultHasher(), path, leaf)
}

// NewProofWithHasher assembles a proof verified with the given
// hasher.
func NewProofWithHasher(hasher Hasher, path MerklePath, leaf *Leaf) *Proof {
	return &Proof{path: path, leaf: leaf, hasher: hasher}
}

// Path returns the proof's sibling digests, leaf first.
func (p *Proof) Path() MerklePath {
	return p.path
}

// Leaf returns the proof's collision bucket.
func (p *Proof) Leaf() *Leaf {
	return p.leaf
}

// ComputeRoot reconstructs the root digest committed to by the proof,
// seeding the fold with the bucket's hash, or the zero sentinel when
// the bucket is empty.
func (p *Proof) ComputeRoot() Digest {
	seed, ok := p.leaf.Hash(p.hasher)
	if !ok {
		seed = zeroDigest
	}
	return p.path.ComputeRoot(p.hasher, uint64(p.leaf.Index()), seed)
}

// Verify reports whether the proof shows key mapping to value under
// root. It is a pure predicate: a structurally invalid proof (key
// belonging to a different bucket), a value mismatch (including the
// implicit EmptyValue for keys absent from the bucket) or a root
// mismatch all answer false, never an error.
func (p *Proof) Verify(key Key, value Value, root Digest) bool {
	leafValue, ok := p.leaf.Get(key)
	if !ok {
		return false
	}
	if leafValue != value {
		return false
	}
	return p.ComputeRoot() == root
}
