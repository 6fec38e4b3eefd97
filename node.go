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

type side int

const (
	sideLeft side = iota
	sideRight
)

// nodeIndex addresses any node in the tree: the root is at depth 0,
// leaves at depth LeafDepth, and value selects one of the 2^depth
// positions at that depth.
type nodeIndex struct {
	depth int
	value uint64
}

// side reports which half of its sibling pair this node occupies.
func (n nodeIndex) side() side {
	if n.value%2 == 0 {
		return sideLeft
	}
	return sideRight
}

// moveUp repoints the index at its parent. Moving up from the root is
// a programmer error.
func (n *nodeIndex) moveUp() {
	if n.depth == 0 {
		panic("smt: move up past the root")
	}
	n.depth--
	n.value /= 2
}

// innerNode caches the two child digests of the node one level below a
// given nodeIndex. Only nodes whose children differ from the canonical
// empty-subtree digests for their depth are ever stored.
type innerNode struct {
	left  Digest
	right Digest
}
