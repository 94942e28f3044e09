// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"os"
)

// EncodeFile codes the text in the file src and writes the result to the file
// dst, which is created or truncated.
func EncodeFile(src, dst string) error {
	return convertFile(src, dst, Encode)
}

// DecodeFile decodes the coded file src and writes the text to the file dst,
// which is created or truncated. If decoding fails, dst may hold partial
// output that must not be used.
func DecodeFile(src, dst string) error {
	return convertFile(src, dst, Decode)
}

func convertFile(src, dst string, convert func(io.Writer, io.Reader) error) error {
	fi, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fi.Close()

	fo, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := convert(fo, fi); err != nil {
		fo.Close()
		return err
	}
	return fo.Close()
}
