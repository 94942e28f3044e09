// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a static Huffman coding of text where the codes
// are written out as '0' and '1' characters.
//
// A coded stream consists of exactly two lines. The first line is a header
// listing the count of every byte that occurs in the text, as space separated
// pairs of decimal integers in ascending byte order:
//
//	97 3 98 4 99 2
//
// The header is followed by a single "\n" and then the body, which is the
// concatenation of the code of every byte of the text, in order:
//
//	11111100001010
//
// The codes are derived from the header alone, so a decoder rebuilds the same
// Huffman tree that the encoder used. Empty text is coded as an empty header
// and an empty body. Text consisting of a single distinct byte has an empty
// code, so its body is also empty and the decoder relies on the header count
// to recover the text.
package huffman

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/dsnet/golib/hashmerge"
	"github.com/dsnet/textcode/internal/errors"
	"github.com/dsnet/textcode/internal/prefix"
)

// NumSymbols is the size of the byte alphabet.
const NumSymbols = prefix.MaxSyms

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "huffman", Msg: fmt.Sprintf(f, a...)}
}

var errClosed = errorf(errors.Closed, "")

// IsFormatError reports whether err was caused by a malformed header or a
// body that does not agree with its header.
func IsFormatError(err error) bool { return errors.IsCorrupted(err) }

// FreqTable holds the number of occurrences of every byte value.
type FreqTable [NumSymbols]int

// Count adds the occurrences of every byte in b.
func (ft *FreqTable) Count(b []byte) {
	for _, c := range b {
		ft[c]++
	}
}

// CountFreqs returns the frequency table of all bytes read from r.
// Any read error other than io.EOF is returned as is.
func CountFreqs(r io.Reader) (FreqTable, error) {
	var ft FreqTable
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		ft.Count(buf[:n])
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return ft, err
		}
	}
}

// Total reports the sum of all counts.
func (ft *FreqTable) Total() (n int) {
	for _, cnt := range ft {
		n += cnt
	}
	return n
}

// Codes returns the code of every byte under the Huffman tree for ft.
func (ft *FreqTable) Codes() (ct CodeTable) {
	copy(ct[:], prefix.GenerateCodes(prefix.BuildTree(ft[:]), NumSymbols))
	return ct
}

// CodeTable holds the code of every byte value as a string of '0' and '1'
// characters. Bytes that do not occur have the empty code.
type CodeTable [NumSymbols]string

func (ct *CodeTable) String() string { return prefix.Codes(ct[:]).String() }

// updateCRC returns crc extended by the bytes in buf.
// The checksum of buf is computed on its own and then folded into crc.
func updateCRC(crc uint32, buf []byte) uint32 {
	if len(buf) == 0 {
		return crc
	}
	return hashmerge.CombineCRC32(crc32.IEEE, crc, crc32.ChecksumIEEE(buf), int64(len(buf)))
}
