// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ds_lib
// +build !no_ds_lib

package bench

import (
	"io"

	"github.com/dsnet/textcode/huffman"
)

func init() {
	// The static code has no levels, so lvl is ignored.
	RegisterEncoder(FormatHuffman, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			hw, err := huffman.NewWriter(w, nil)
			if err != nil {
				panic(err)
			}
			return hw
		})
	RegisterDecoder(FormatHuffman, "ds",
		func(r io.Reader) io.ReadCloser {
			hr, err := huffman.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return hr
		})
}
