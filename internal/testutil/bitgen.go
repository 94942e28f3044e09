// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]+$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into a code body, which is a
// string of '0' and '1' characters.
//
// The BitGen format allows a code body to be scripted by hand from a series of
// tokens, with comments documenting which symbol each code stands for.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character is ignored.
//
// A token of the pattern "[01]+" forms a bit-string (e.g. 11010) that is
// copied to the output as is.
//
// A token of the pattern "D[0-9]+:[0-9]+" represents a decimal value. The
// first number is the bit-length and the second number is the value, which is
// written most-significant bit first. The bit-length must be long enough to
// contain the value.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times.
//
// Example BitGen string:
//
//	0000 0001  # a f
//	1*3        # d d d
//	D2:1       # c
//
// Generated output: "00000001111" + "01"
func DecodeBitGen(str string) (string, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var sb strings.Builder
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return "", errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			sb.WriteString(strings.Repeat(t, rep))
		case reDec.MatchString(t):
			i := strings.IndexByte(t, ':')
			tn, tv := t[1:i], t[i+1:]
			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, 10, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return "", errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return "", errors.New("testutil: integer overflow on token: " + t)
			}
			var bits []byte
			for i := n - 1; i >= 0; i-- {
				bits = append(bits, '0'+byte(v>>uint(i)&1))
			}
			sb.WriteString(strings.Repeat(string(bits), rep))
		default:
			return "", errors.New("testutil: invalid token: " + t)
		}
	}
	return sb.String(), nil
}
