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
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestEmptySubtreeRootsRecursion(t *testing.T) {
	t.Parallel()

	hasher := DefaultHasher()
	table := newEmptySubtreeRoots(hasher)

	if table.entry(LeafDepth) != zeroDigest {
		t.Fatalf("leaf-depth entry is not the zero sentinel: %x", table.entry(LeafDepth))
	}
	for depth := 0; depth < LeafDepth; depth++ {
		want := hasher.HashPair(table.entry(depth+1), table.entry(depth+1))
		if table.entry(depth) != want {
			t.Fatalf("entry at depth %d breaks the recursion %x != %x", depth, table.entry(depth), want)
		}
	}
}

func TestEmptySubtreeRootsVector(t *testing.T) {
	t.Parallel()

	// SHA-256 of 64 zero bytes, the parent of two empty leaves.
	want := common.HexToHash("f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")
	if got := defaultEmptyRoots().entry(LeafDepth - 1); got != want {
		t.Fatalf("depth-63 entry drifted from pinned vector %x != %x", got, want)
	}
}

func TestDefaultTableIsShared(t *testing.T) {
	t.Parallel()

	if defaultEmptyRoots() != defaultEmptyRoots() {
		t.Fatal("default empty-subtree table recomputed per call")
	}
}

func TestNewWithHasherMatchesNew(t *testing.T) {
	t.Parallel()

	custom := NewWithHasher(DefaultHasher())
	if custom.Root() != New().Root() {
		t.Fatalf("explicit default hasher produced a different empty root %x != %x", custom.Root(), New().Root())
	}

	custom.Insert(oneKeyTest, testValue)
	standard := New()
	standard.Insert(oneKeyTest, testValue)
	if custom.Root() != standard.Root() {
		t.Fatalf("explicit default hasher diverged after insert %x != %x", custom.Root(), standard.Root())
	}
}
