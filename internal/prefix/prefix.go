// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package prefix implements bit-string prefix codes over a byte alphabet.
//
// A Huffman tree is built from per-symbol counts by repeatedly combining the
// two least subtrees. Ties are broken by the smallest symbol contained in each
// subtree, so the same counts always yield the same tree and the same codes.
//
// Codes are written as strings of '0' and '1' characters rather than as packed
// bits. A '0' selects the left child of a node and a '1' selects the right.
package prefix

import "container/heap"

// MaxSyms is the number of symbols in the byte alphabet.
const MaxSyms = 256

// Node is a node in a Huffman tree.
// A node is a leaf iff both children are nil; there are no nodes with exactly
// one child.
type Node struct {
	Sym   int   // Leaf symbol, or the minimum symbol among all descendants
	Cnt   int   // Leaf count, or the sum of all descendant counts
	Left  *Node // Subtree selected by a '0' bit
	Right *Node // Subtree selected by a '1' bit
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// ComesBefore reports whether node a orders strictly before node b.
// Nodes are ordered by ascending count, and then by ascending symbol.
func ComesBefore(a, b *Node) bool {
	if a.Cnt != b.Cnt {
		return a.Cnt < b.Cnt
	}
	return a.Sym < b.Sym
}

// Combine returns a new internal node with a and b as its children.
// The node that comes before the other is placed on the left.
func Combine(a, b *Node) *Node {
	if ComesBefore(b, a) {
		a, b = b, a
	}
	n := &Node{Sym: a.Sym, Cnt: a.Cnt + b.Cnt, Left: a, Right: b}
	if b.Sym < n.Sym {
		n.Sym = b.Sym
	}
	return n
}

// BuildTree builds the Huffman tree for the given counts, where cnts[i] is the
// number of occurrences of symbol i. Symbols with a non-positive count are
// excluded from the tree.
//
// BuildTree returns nil if there are no symbols, and a single leaf if there is
// exactly one symbol.
func BuildTree(cnts []int) *Node {
	var nh nodeHeap
	for sym, cnt := range cnts {
		if cnt > 0 {
			nh = append(nh, &Node{Sym: sym, Cnt: cnt})
		}
	}
	switch len(nh) {
	case 0:
		return nil
	case 1:
		return nh[0]
	}

	// Each step depends only on the current contents of the queue: the two
	// least nodes are removed and their combination is inserted.
	heap.Init(&nh)
	for nh.Len() > 1 {
		a := heap.Pop(&nh).(*Node)
		b := heap.Pop(&nh).(*Node)
		heap.Push(&nh, Combine(a, b))
	}
	return nh[0]
}

// nodeHeap is a min-heap of nodes ordered by ComesBefore.
type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return ComesBefore(h[i], h[j]) }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}
