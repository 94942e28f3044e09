// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

// Codes is a table of prefix codes indexed by symbol.
// Each code is a string of '0' and '1' characters. Symbols that do not appear
// in the tree have the empty code.
type Codes []string

// GenerateCodes walks the tree rooted at root and returns the code of every
// leaf in a table of numSyms entries.
//
// If root is nil, all codes are empty. If root is itself a leaf, then the code
// for its symbol is also empty since there are no branches to take.
func GenerateCodes(root *Node, numSyms int) Codes {
	codes := make(Codes, numSyms)
	if root == nil {
		return codes
	}

	type frame struct {
		node  *Node
		depth int  // Length of the path to node
		bit   byte // Last bit of the path to node
	}
	var path []byte
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Pop the path back to the parent and push the branch taken.
		if f.depth > 0 {
			path = append(path[:f.depth-1], f.bit)
		}
		if f.node.IsLeaf() {
			codes[f.node.Sym] = string(path)
			continue
		}

		// Right is pushed first so that left subtrees are visited first.
		if f.node.Right != nil {
			stack = append(stack, frame{f.node.Right, f.depth + 1, '1'})
		}
		if f.node.Left != nil {
			stack = append(stack, frame{f.node.Left, f.depth + 1, '0'})
		}
	}
	return codes
}
