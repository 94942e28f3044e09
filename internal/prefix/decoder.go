// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"

	"github.com/dsnet/textcode/internal/errors"
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "prefix", Msg: fmt.Sprintf(f, a...)}
}

// Decoder walks a Huffman tree one code bit at a time.
// The zero value is a Decoder for the empty tree.
type Decoder struct {
	root  *Node
	pos   *Node
	depth int // Number of bits consumed since the last symbol
}

// Init resets the Decoder to walk the tree rooted at root.
func (pd *Decoder) Init(root *Node) {
	*pd = Decoder{root: root, pos: root}
}

// AtRoot reports whether the Decoder is positioned between two codes.
func (pd *Decoder) AtRoot() bool { return pd.pos == pd.root }

// Step consumes one code bit, which must be either '0' or '1'.
//
// When the walk arrives at a leaf, Step reports its symbol with ok set to true
// and the Decoder moves back to the root. It is a corruption error for the bit
// to select a child that does not exist, in which case the Decoder is left
// unchanged.
func (pd *Decoder) Step(bit byte) (sym int, ok bool, err error) {
	if pd.pos == nil {
		return 0, false, errorf(errors.Corrupted, "code bit for empty tree")
	}
	var next *Node
	switch bit {
	case '0':
		next = pd.pos.Left
	case '1':
		next = pd.pos.Right
	default:
		return 0, false, errorf(errors.Corrupted, "invalid code bit: %q", bit)
	}
	if next == nil {
		return 0, false, errorf(errors.Corrupted, "no child for bit %q at depth %d", bit, pd.depth)
	}

	if next.IsLeaf() {
		pd.pos, pd.depth = pd.root, 0
		return next.Sym, true, nil
	}
	pd.pos = next
	pd.depth++
	return 0, false, nil
}
