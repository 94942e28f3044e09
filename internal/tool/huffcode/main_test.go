// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/textcode/huffman"
	"github.com/stretchr/testify/assert"
)

const testdata = "../../../testdata"

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	err := printHeader(&buf, filepath.Join(testdata, "text5.huff"), &huffman.ReaderConfig{})
	assert.Nil(t, err)
	assert.Equal(t, "'a'\t3\n'b'\t4\n'c'\t2\ntotal\t9\n", buf.String())
}

func TestPrintCodes(t *testing.T) {
	var buf bytes.Buffer
	err := printCodes(&buf, filepath.Join(testdata, "file1.txt"))
	assert.Nil(t, err)
	want := strings.Join([]string{
		"' '\t3\t00",
		"'a'\t4\t11",
		"'b'\t3\t01",
		"'c'\t2\t101",
		"'d'\t1\t100",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	assert.Nil(t, printCodes(&buf, filepath.Join(testdata, "single.txt")))
	assert.Equal(t, "'a'\t10\t\n", buf.String())

	buf.Reset()
	assert.Nil(t, printCodes(&buf, filepath.Join(testdata, "empty.txt")))
	assert.Equal(t, "", buf.String())
}

func TestVerify(t *testing.T) {
	var buf bytes.Buffer
	src := filepath.Join(testdata, "declaration.txt")
	assert.Nil(t, verify(&buf, src, &huffman.ReaderConfig{Strict: true}))
	assert.True(t, strings.HasPrefix(buf.String(), src+": 1064 bytes coded to 4829 characters"), "got %q", buf.String())

	err := verify(&buf, filepath.Join(testdata, "missing.txt"), &huffman.ReaderConfig{})
	assert.True(t, os.IsNotExist(err), "got %v", err)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "text5.huff")
	dst := filepath.Join(dir, "text5.txt")
	assert.Nil(t, os.WriteFile(src, []byte("97 3 98 4 99 2\n11111100001010\n"), 0644))

	assert.Nil(t, decodeFile(src, dst, &huffman.ReaderConfig{}))
	got, err := os.ReadFile(dst)
	assert.Nil(t, err)
	assert.Equal(t, "aaabbbbcc", string(got))

	err = decodeFile(src, dst, &huffman.ReaderConfig{Strict: true})
	assert.True(t, huffman.IsFormatError(err), "got %v", err)
}
