// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"math"
	"strconv"
	"strings"

	"github.com/dsnet/textcode/internal/errors"
)

// AppendHeader appends the header line for ft to dst, without a line break.
// Only nonzero counts are listed, in ascending byte order.
func (ft *FreqTable) AppendHeader(dst []byte) []byte {
	var more bool
	for sym, cnt := range ft {
		if cnt == 0 {
			continue
		}
		if more {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendInt(dst, int64(sym), 10)
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(cnt), 10)
		more = true
	}
	return dst
}

// Header returns the header line for ft.
func (ft *FreqTable) Header() string { return string(ft.AppendHeader(nil)) }

// ParseHeader parses a header line produced by AppendHeader.
// A trailing line break is ignored and an empty line is the empty table.
//
// The line must hold an even number of single-space separated decimal
// integers, read as (byte, count) pairs. Bytes must be in 0..255 and counts
// must not be negative. If a byte is listed more than once, the last count
// wins. Bytes that are not listed have a count of zero. The sum of all counts
// must fit in an int.
func ParseHeader(line string) (ft FreqTable, err error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return ft, nil
	}

	var total int
	toks := strings.Split(line, " ")
	if len(toks)%2 != 0 {
		return FreqTable{}, errorf(errors.Corrupted, "odd number of header tokens: %d", len(toks))
	}
	for i := 0; i < len(toks); i += 2 {
		sym, err := strconv.Atoi(toks[i])
		if err != nil || sym < 0 || sym >= NumSymbols {
			return FreqTable{}, errorf(errors.Corrupted, "invalid header symbol: %q", toks[i])
		}
		cnt, err := strconv.Atoi(toks[i+1])
		if err != nil || cnt < 0 {
			return FreqTable{}, errorf(errors.Corrupted, "invalid header count: %q", toks[i+1])
		}
		total -= ft[sym]
		if cnt > math.MaxInt-total {
			return FreqTable{}, errorf(errors.Corrupted, "header counts overflow at symbol %d", sym)
		}
		total += cnt
		ft[sym] = cnt
	}
	return ft, nil
}
