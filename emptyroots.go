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

// emptySubtreeRoots memoizes, for every depth, the digest of a
// maximal all-empty subtree rooted at that depth. Entry LeafDepth is
// the zero sentinel (the hash of zero key-value pairs); every
// shallower entry pair-hashes the one below it. The table depends
// only on the hasher, so it is computed once and never mutated.
type emptySubtreeRoots [LeafDepth + 1]Digest

func newEmptySubtreeRoots(hasher Hasher) *emptySubtreeRoots {
	var table emptySubtreeRoots
	table[LeafDepth] = zeroDigest
	for depth := LeafDepth - 1; depth >= 0; depth-- {
		table[depth] = hasher.HashPair(table[depth+1], table[depth+1])
	}
	return &table
}

// entry returns the canonical digest of an empty subtree rooted at
// the given depth.
func (t *emptySubtreeRoots) entry(depth int) Digest {
	return t[depth]
}
