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

// Package smt implements an authenticated key-value store backed by a
// sparse Merkle tree of fixed depth 64. Keys and values are both
// 256-bit. Only populated leaves and inner nodes are materialized;
// every absent position resolves to a canonical empty-subtree digest,
// so the tree commits to the full 2^256 key space while storing only
// what was inserted. Every lookup comes with a compact proof that can
// be verified against the root digest alone.
package smt

// Smt is the tree engine. It is a purely sequential, single-owner
// structure: readers may share it only while no mutation is in
// flight, and Insert/Remove must be serialized by the caller.
type Smt struct {
	hasher Hasher
	roots  *emptySubtreeRoots
	root   Digest
	leaves map[LeafIndex]*Leaf
	inner  map[nodeIndex]innerNode
}

// New creates an empty tree using the default hasher.
func New() *Smt {
	return newSmt(DefaultHasher(), defaultEmptyRoots())
}

// NewWithHasher creates an empty tree committing with the given
// hasher.
func NewWithHasher(hasher Hasher) *Smt {
	return newSmt(hasher, newEmptySubtreeRoots(hasher))
}

func newSmt(hasher Hasher, roots *emptySubtreeRoots) *Smt {
	return &Smt{
		hasher: hasher,
		roots:  roots,
		root:   hasher.HashPair(roots.entry(1), roots.entry(1)),
		leaves: make(map[LeafIndex]*Leaf),
		inner:  make(map[nodeIndex]innerNode),
	}
}

// Root returns the current root digest.
func (s *Smt) Root() Digest {
	return s.root
}

// Get returns the value associated with key, along with a proof that
// the lookup is correct against the current root. Keys that were
// never inserted resolve to EmptyValue. Get does not mutate the tree,
// and the returned proof is a snapshot: it does not observe later
// mutations.
func (s *Smt) Get(key Key) (Value, *Proof) {
	leafIndex := keyToLeafIndex(key)
	leaf, ok := s.leaves[leafIndex]
	if ok {
		leaf = leaf.Copy()
	} else {
		leaf = newLeaf(leafIndex)
	}
	value, ok := leaf.getDirect(key)
	if !ok {
		value = EmptyValue
	}

	// Collect the sibling digest at every level, leaf first.
	index := leafIndex.nodeIndex()
	path := make(MerklePath, 0, LeafDepth)
	for index.depth > 0 {
		childSide := index.side()
		index.moveUp()
		node := s.innerNode(index)
		if childSide == sideLeft {
			path = append(path, node.right)
		} else {
			path = append(path, node.left)
		}
	}

	return value, &Proof{path: path, leaf: leaf, hasher: s.hasher}
}

// Insert associates value with key and returns the value it replaces,
// EmptyValue if the key was absent. Inserting EmptyValue is defined
// as removal, since the two states are indistinguishable.
func (s *Smt) Insert(key Key, value Value) Value {
	if value == EmptyValue {
		return s.Remove(key)
	}

	leafIndex := keyToLeafIndex(key)
	leaf, ok := s.leaves[leafIndex]
	if !ok {
		leaf = newLeaf(leafIndex)
		s.leaves[leafIndex] = leaf
	}
	old := leaf.Insert(key, value)
	if old == value {
		// Same value, same leaf hash, same root.
		return old
	}

	leafHash, _ := leaf.Hash(s.hasher)
	s.recomputeNodesFromLeafToRoot(leafIndex, leafHash)
	return old
}

// Remove deletes key from the tree and returns the value it held,
// EmptyValue if it held none. Removing an absent key leaves the tree
// untouched.
func (s *Smt) Remove(key Key) Value {
	leafIndex := keyToLeafIndex(key)
	leaf, ok := s.leaves[leafIndex]
	if !ok {
		return EmptyValue
	}
	old, ok := leaf.Remove(key)
	if !ok {
		return EmptyValue
	}

	leafHash, ok := leaf.Hash(s.hasher)
	if !ok {
		// Empty bucket hashes like an absent one; drop it.
		delete(s.leaves, leafIndex)
		leafHash = zeroDigest
	}
	s.recomputeNodesFromLeafToRoot(leafIndex, leafHash)
	return old
}

// recomputeNodesFromLeafToRoot rebuilds the authenticated path above a
// mutated leaf. At each of the 64 levels the fresh digest replaces the
// child on the side it came from, the pair is rehashed, and the parent
// entry is either stored or pruned: once a node equals the canonical
// empty digest for its depth the sparse map must not retain it.
func (s *Smt) recomputeNodesFromLeafToRoot(leafIndex LeafIndex, nodeHash Digest) {
	index := leafIndex.nodeIndex()
	for index.depth > 0 {
		childSide := index.side()
		index.moveUp()
		node := s.innerNode(index)
		if childSide == sideLeft {
			node.left = nodeHash
		} else {
			node.right = nodeHash
		}
		nodeHash = s.hasher.HashPair(node.left, node.right)

		if nodeHash == s.roots.entry(index.depth) {
			delete(s.inner, index)
		} else {
			s.inner[index] = node
		}
	}
	s.root = nodeHash
}

// innerNode returns the stored node at index, or a synthetic one whose
// children are both the empty-subtree digest one level down. An absent
// entry means exactly that both child subtrees are empty.
func (s *Smt) innerNode(index nodeIndex) innerNode {
	if node, ok := s.inner[index]; ok {
		return node
	}
	child := s.roots.entry(index.depth + 1)
	return innerNode{left: child, right: child}
}

// Leaves returns the number of populated leaf buckets.
func (s *Smt) Leaves() int {
	return len(s.leaves)
}

// Copy returns a deep copy sharing no mutable state with the
// original.
func (s *Smt) Copy() *Smt {
	leaves := make(map[LeafIndex]*Leaf, len(s.leaves))
	for index, leaf := range s.leaves {
		leaves[index] = leaf.Copy()
	}
	inner := make(map[nodeIndex]innerNode, len(s.inner))
	for index, node := range s.inner {
		inner[index] = node
	}
	return &Smt{
		hasher: s.hasher,
		roots:  s.roots,
		root:   s.root,
		leaves: leaves,
		inner:  inner,
	}
}
