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

import "sort"

// LeafDepth is the depth all leaves sit at. The root is at depth 0.
const LeafDepth = 64

// LeafIndex selects which leaf bucket a key belongs to.
type LeafIndex uint64

// keyToLeafIndex derives the leaf index from the last two words of the
// key: words 6 and 7 are serialized little-endian, concatenated with
// word 6 first, and the result read as a little-endian uint64. The
// ordering is a wire contract pinned by test vectors; changing it
// silently breaks every external proof consumer.
func keyToLeafIndex(key Key) LeafIndex {
	return LeafIndex(uint64(key[6]) | uint64(key[7])<<32)
}

func (i LeafIndex) nodeIndex() nodeIndex {
	return nodeIndex{depth: LeafDepth, value: uint64(i)}
}

type leafEntry struct {
	key   Key
	value Value
}

// Leaf is the collision bucket for one leaf index: every key hashing
// to that index, with its value, in ascending key order. An empty
// bucket is indistinguishable from an absent one, including in its
// hash.
type Leaf struct {
	index   LeafIndex
	entries []leafEntry
}

func newLeaf(index LeafIndex) *Leaf {
	return &Leaf{index: index}
}

// NewLeafSingle builds a one-entry bucket at the key's own index.
func NewLeafSingle(key Key, value Value) *Leaf {
	return &Leaf{
		index:   keyToLeafIndex(key),
		entries: []leafEntry{{key: key, value: value}},
	}
}

// Index returns the leaf index of this bucket.
func (l *Leaf) Index() LeafIndex {
	return l.index
}

// IsEmpty reports whether the bucket holds no entries.
func (l *Leaf) IsEmpty() bool {
	return len(l.entries) == 0
}

// Len returns the number of entries in the bucket.
func (l *Leaf) Len() int {
	return len(l.entries)
}

// search returns the position of key in the sorted entries, and
// whether it is present.
func (l *Leaf) search(key Key) (int, bool) {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].key.Cmp(key) >= 0
	})
	return i, i < len(l.entries) && l.entries[i].key == key
}

// Get returns the value for key. The second return is false only when
// the key's computed index does not match this bucket, which signals a
// caller error or a stale bucket; a key that merely is not stored
// resolves to EmptyValue.
func (l *Leaf) Get(key Key) (Value, bool) {
	if keyToLeafIndex(key) != l.index {
		return Value{}, false
	}
	if value, ok := l.getDirect(key); ok {
		return value, true
	}
	return EmptyValue, true
}

// getDirect looks the key up without recomputing its index. Callers
// must already have established that the key maps to this bucket.
func (l *Leaf) getDirect(key Key) (Value, bool) {
	i, ok := l.search(key)
	if !ok {
		return Value{}, false
	}
	return l.entries[i].value, true
}

// Insert stores value under key and returns the previous value, or
// EmptyValue if the key was absent. All keys in one bucket share the
// bucket's index; inserting a key that maps elsewhere is a programmer
// error.
func (l *Leaf) Insert(key Key, value Value) Value {
	if keyToLeafIndex(key) != l.index {
		panic("smt: inserting key into leaf with a different index")
	}
	i, ok := l.search(key)
	if ok {
		old := l.entries[i].value
		l.entries[i].value = value
		return old
	}
	l.entries = append(l.entries, leafEntry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = leafEntry{key: key, value: value}
	return EmptyValue
}

// Remove deletes key from the bucket, returning its prior value. The
// second return is false when the key was not stored.
func (l *Leaf) Remove(key Key) (Value, bool) {
	i, ok := l.search(key)
	if !ok {
		return Value{}, false
	}
	old := l.entries[i].value
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return old, true
}

// Hash commits to the whole bucket: for each entry in ascending key
// order, the key words followed by the value words, fed to the
// word-sequence hash. The second return is false for an empty bucket,
// which hashes identically to an absent one.
func (l *Leaf) Hash(hasher Hasher) (Digest, bool) {
	if len(l.entries) == 0 {
		return zeroDigest, false
	}
	words := make([]uint32, 0, 2*KeyWords*len(l.entries))
	for _, entry := range l.entries {
		words = append(words, entry.key[:]...)
		words = append(words, entry.value[:]...)
	}
	return hasher.HashWords(words), true
}

// Copy returns a deep copy of the bucket.
func (l *Leaf) Copy() *Leaf {
	entries := make([]leafEntry, len(l.entries))
	copy(entries, l.entries)
	return &Leaf{index: l.index, entries: entries}
}
