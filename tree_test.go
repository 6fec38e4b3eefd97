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
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	zeroKeyTest = Key{}
	oneKeyTest  = Key{1, 0, 0, 0, 0, 0, 0, 0}

	testValue = Value{1, 2, 3, 4, 5, 6, 7, 8}
)

func valueFromDigest(d Digest) Value {
	return ValueFromBytes(d[:])
}

// insertAndCheckProof inserts the pair, reads it back and verifies
// the accompanying proof against the fresh root, returning the old
// value.
func insertAndCheckProof(t *testing.T, tree *Smt, key Key, value Value) Value {
	t.Helper()

	old := tree.Insert(key, value)

	got, proof := tree.Get(key)
	if got != value {
		t.Fatalf("inserted value not returned by get %x != %x", got, value)
	}
	if !proof.Verify(key, value, tree.Root()) {
		t.Fatalf("proof for key %x does not verify against root %x", key, tree.Root())
	}
	return old
}

func TestCreateEmptyTree(t *testing.T) {
	t.Parallel()

	tree := New()
	if tree.Root() != defaultEmptyRoots().entry(0) {
		t.Fatalf("empty tree root %x does not match the empty-subtree table", tree.Root())
	}

	value, proof := tree.Get(zeroKeyTest)
	if value != EmptyValue {
		t.Fatalf("fresh tree returned non-default value %x", value)
	}
	if !proof.Verify(zeroKeyTest, EmptyValue, tree.Root()) {
		t.Fatal("default-value proof does not verify")
	}
}

func TestEmptyTreeRootVector(t *testing.T) {
	t.Parallel()

	want := common.HexToHash("c885c236140249c9e1640e5e99fb972d81fbb31ea5e29fbdde063627f0d6bdc8")
	if root := New().Root(); root != want {
		t.Fatalf("empty tree root drifted from pinned vector %x != %x", root, want)
	}
}

func TestInsertRemoveRestoresRoots(t *testing.T) {
	t.Parallel()

	tree := New()
	emptyRoot := tree.Root()

	hasher := DefaultHasher()
	key1 := Key{1, 0, 0, 0, 0, 0, 0, 0}
	value1 := valueFromDigest(hasher.HashWords(nil))
	key2 := Key{0, 0, 0, 0, 0, 0, 0, 1}
	value2 := valueFromDigest(hasher.HashWords([]uint32{7}))

	if old := insertAndCheckProof(t, tree, key1, value1); old != EmptyValue {
		t.Fatalf("first insert displaced a value %x", old)
	}
	singleInsertRoot := tree.Root()
	if singleInsertRoot == emptyRoot {
		t.Fatal("root did not change after insert")
	}

	if old := insertAndCheckProof(t, tree, key2, value2); old != EmptyValue {
		t.Fatalf("second insert displaced a value %x", old)
	}
	if tree.Root() == singleInsertRoot {
		t.Fatal("root did not change after second insert")
	}

	if removed := tree.Remove(key2); removed != value2 {
		t.Fatalf("remove returned %x, want %x", removed, value2)
	}
	if tree.Root() != singleInsertRoot {
		t.Fatalf("root not restored after removing second key %x != %x", tree.Root(), singleInsertRoot)
	}

	if removed := tree.Remove(key1); removed != value1 {
		t.Fatalf("remove returned %x, want %x", removed, value1)
	}
	if tree.Root() != emptyRoot {
		t.Fatalf("root not restored to empty %x != %x", tree.Root(), emptyRoot)
	}
}

// denseKeys enumerates every key whose words are all in [0, max].
func denseKeys(max uint32) []Key {
	keys := []Key{{}}
	var state Key
	for {
		i := 0
		state[i]++
		for i < KeyWords-1 && state[i] > max {
			state[i] = 0
			i++
			state[i]++
		}
		if state[KeyWords-1] > max {
			return keys
		}
		keys = append(keys, state)
	}
}

func TestInsertDenseSmallKeys(t *testing.T) {
	t.Parallel()

	tree := New()
	for _, key := range denseKeys(2) {
		insertAndCheckProof(t, tree, key, Value(key))
	}
}

func TestIdempotentInsert(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(oneKeyTest, testValue)
	root := tree.Root()

	if old := tree.Insert(oneKeyTest, testValue); old != testValue {
		t.Fatalf("second insert returned %x as old value, want %x", old, testValue)
	}
	if tree.Root() != root {
		t.Fatalf("reinserting the same pair moved the root %x != %x", tree.Root(), root)
	}
}

func TestInsertEmptyValueEqualsRemove(t *testing.T) {
	t.Parallel()

	populate := func() *Smt {
		tree := New()
		tree.Insert(oneKeyTest, testValue)
		tree.Insert(Key{0, 0, 0, 0, 0, 0, 0, 1}, Value{9})
		// Collides with oneKeyTest on the leaf index.
		tree.Insert(Key{2, 0, 0, 0, 0, 0, 0, 0}, Value{3})
		return tree
	}

	removed := populate()
	inserted := populate()

	removedValue := removed.Remove(oneKeyTest)
	insertedValue := inserted.Insert(oneKeyTest, EmptyValue)
	if removedValue != insertedValue {
		t.Fatalf("remove and insert-empty disagree on the old value %x != %x", removedValue, insertedValue)
	}
	if removed.Root() != inserted.Root() {
		t.Fatalf("remove and insert-empty disagree on the root %x != %x", removed.Root(), inserted.Root())
	}

	// Same equivalence for a key that was never inserted.
	missing := Key{5, 5, 5, 5, 5, 5, 5, 5}
	removedValue = removed.Remove(missing)
	insertedValue = inserted.Insert(missing, EmptyValue)
	if removedValue != EmptyValue || insertedValue != EmptyValue {
		t.Fatalf("missing key reported old values %x / %x", removedValue, insertedValue)
	}
	if removed.Root() != inserted.Root() {
		t.Fatalf("no-op mutations disagree on the root %x != %x", removed.Root(), inserted.Root())
	}
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(oneKeyTest, testValue)
	root := tree.Root()

	// No leaf at all at this index.
	if old := tree.Remove(Key{0, 0, 0, 0, 0, 0, 7, 7}); old != EmptyValue {
		t.Fatalf("removing from an absent leaf returned %x", old)
	}
	// Leaf exists but lacks the key.
	if old := tree.Remove(Key{3, 0, 0, 0, 0, 0, 0, 0}); old != EmptyValue {
		t.Fatalf("removing an absent key returned %x", old)
	}
	if tree.Root() != root {
		t.Fatalf("no-op removals moved the root %x != %x", tree.Root(), root)
	}
}

// checkSparsity fails the test if the maps retain anything the
// pruning policy should have deleted.
func checkSparsity(t *testing.T, tree *Smt) {
	t.Helper()

	for index, node := range tree.inner {
		if tree.hasher.HashPair(node.left, node.right) == tree.roots.entry(index.depth) {
			t.Fatalf("inner node at depth %d value %d equals the empty default for its depth", index.depth, index.value)
		}
	}
	for index, leaf := range tree.leaves {
		if leaf.IsEmpty() {
			t.Fatalf("empty leaf bucket retained at index %d", index)
		}
	}
}

func TestSparsityInvariant(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(42))
	tree := New()
	var keys []Key

	for i := 0; i < 500; i++ {
		var key Key
		// Confine the last two words so leaf collisions happen.
		for j := 0; j < 6; j++ {
			key[j] = rnd.Uint32()
		}
		key[6] = rnd.Uint32() % 4
		key[7] = rnd.Uint32() % 2

		tree.Insert(key, Value{rnd.Uint32()})
		keys = append(keys, key)

		if i%3 == 0 && len(keys) > 1 {
			victim := keys[rnd.Intn(len(keys))]
			tree.Remove(victim)
		}
		checkSparsity(t, tree)
	}

	for _, key := range keys {
		tree.Remove(key)
		checkSparsity(t, tree)
	}
	if tree.Root() != New().Root() {
		t.Fatalf("root not restored to empty after removing everything %x", tree.Root())
	}
	if len(tree.inner) != 0 || tree.Leaves() != 0 {
		t.Fatalf("empty tree retains %d inner nodes, %d leaves", len(tree.inner), tree.Leaves())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	tree := New()
	tree.Insert(oneKeyTest, testValue)
	root := tree.Root()

	copied := tree.Copy()
	if copied.Root() != root {
		t.Fatalf("copy root differs %x != %x", copied.Root(), root)
	}

	copied.Insert(Key{0, 0, 0, 0, 0, 0, 0, 3}, Value{8})
	copied.Remove(oneKeyTest)
	if tree.Root() != root {
		t.Fatalf("mutating the copy moved the original root %x != %x", tree.Root(), root)
	}
	if value, _ := tree.Get(oneKeyTest); value != testValue {
		t.Fatalf("original lost its value after copy mutation %x", value)
	}
}

func FuzzInsertRemoveVsModel(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 1, 0, 1, 0, 1, 0, 1, 7, 1, 1, 0, 0, 0, 0, 0, 1, 0})
	f.Fuzz(func(t *testing.T, input []byte) {
		tree := New()
		model := make(map[Key]Value)

		// 9 bytes per operation: 8 key words confined to {0,1} so
		// buckets collide, then one value word; a zero value word is
		// a removal.
		for i := 0; i+9 <= len(input); i += 9 {
			var key Key
			for j := 0; j < KeyWords; j++ {
				key[j] = uint32(input[i+j]) % 2
			}
			value := Value{uint32(input[i+8])}

			old := tree.Insert(key, value)
			if old != model[key] {
				t.Fatalf("insert returned old value %x, model says %x", old, model[key])
			}
			if value == EmptyValue {
				delete(model, key)
			} else {
				model[key] = value
			}
		}

		entries := make([]KV, 0, len(model))
		for key, value := range model {
			got, proof := tree.Get(key)
			if got != value {
				t.Fatalf("get returned %x, model says %x", got, value)
			}
			if !proof.Verify(key, value, tree.Root()) {
				t.Fatalf("proof for key %x does not verify", key)
			}
			entries = append(entries, KV{Key: key, Value: value})
		}

		if batched := FromEntries(entries); batched.Root() != tree.Root() {
			t.Fatalf("batched reconstruction root %x != %x", batched.Root(), tree.Root())
		}
	})
}

func benchmarkKeys(n int) []Key {
	rnd := rand.New(rand.NewSource(7))
	keys := make([]Key, n)
	for i := range keys {
		for j := range keys[i] {
			keys[i][j] = rnd.Uint32()
		}
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := benchmarkKeys(b.N)
	tree := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(keys[i], testValue)
	}
}

func BenchmarkGet(b *testing.B) {
	keys := benchmarkKeys(10000)
	tree := New()
	for _, key := range keys {
		tree.Insert(key, testValue)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(keys[i%len(keys)])
	}
}

func BenchmarkProofVerify(b *testing.B) {
	keys := benchmarkKeys(10000)
	tree := New()
	for _, key := range keys {
		tree.Insert(key, testValue)
	}
	root := tree.Root()
	_, proof := tree.Get(keys[0])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !proof.Verify(keys[0], testValue, root) {
			b.Fatal("proof did not verify")
		}
	}
}
