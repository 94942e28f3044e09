// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"
	"strings"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// String renders the tree with one node per line, indented by depth.
// Left subtrees are printed before right subtrees.
func (n *Node) String() string {
	if n == nil {
		return "{}"
	}

	type frame struct {
		node  *Node
		depth int
	}
	var ss []string
	ss = append(ss, "{")
	stack := []frame{{n, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := strings.Repeat("\t", f.depth) + fmt.Sprintf("sym: %d, cnt: %d", f.node.Sym, f.node.Cnt)
		if f.node.IsLeaf() {
			s += fmt.Sprintf(", leaf: %q", rune(f.node.Sym))
		}
		ss = append(ss, s)

		if f.node.Right != nil {
			stack = append(stack, frame{f.node.Right, f.depth + 1})
		}
		if f.node.Left != nil {
			stack = append(stack, frame{f.node.Left, f.depth + 1})
		}
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// String renders the non-empty codes, one symbol per line.
func (pc Codes) String() string {
	var maxSym, maxLen int
	for sym, c := range pc {
		if c == "" {
			continue
		}
		maxSym = sym
		if maxLen < len(c) {
			maxLen = len(c)
		}
	}
	maxSymStr := lenBase10(maxSym)

	var ss []string
	ss = append(ss, "{")
	for sym, c := range pc {
		if c == "" {
			continue
		}
		ss = append(ss, fmt.Sprintf("\t%s:  %s%s,",
			padBase10(sym, maxSymStr),
			strings.Repeat(" ", maxLen-len(c)), c,
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
