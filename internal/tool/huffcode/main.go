// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffcode codes text files with a static Huffman code written out
// as '0' and '1' characters, and decodes them again.
//
// Example usage:
//
//	$ huffcode encode declaration.txt declaration.huff
//	$ huffcode decode declaration.huff declaration.out
//	$ huffcode header declaration.huff
//	$ huffcode codes declaration.txt
//	$ huffcode verify declaration.txt
package main

import (
	"bytes"
	"flag"
	"fmt"
	"hash/crc32"
	"io"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/dsnet/textcode/huffman"
)

const usage = `Usage: huffcode [-strict] COMMAND ARGS...

Commands:
	encode SRC DST   code the text in SRC and write it to DST
	decode SRC DST   decode the coded file SRC and write the text to DST
	header SRC       print the byte counts in the header of the coded file SRC
	codes SRC        print the code of every byte in the text file SRC
	verify SRC       code SRC in memory and check that it decodes back to SRC
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffcode: ")

	strict := flag.Bool("strict", false, "Reject a line break after the coded body")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	conf := &huffman.ReaderConfig{Strict: *strict}
	cmd, args := args[0], args[1:]
	var err error
	switch {
	case cmd == "encode" && len(args) == 2:
		err = huffman.EncodeFile(args[0], args[1])
	case cmd == "decode" && len(args) == 2:
		err = decodeFile(args[0], args[1], conf)
	case cmd == "header" && len(args) == 1:
		err = printHeader(os.Stdout, args[0], conf)
	case cmd == "codes" && len(args) == 1:
		err = printCodes(os.Stdout, args[0])
	case cmd == "verify" && len(args) == 1:
		err = verify(os.Stdout, args[0], conf)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s %s: %v", cmd, args[0], err)
	}
}

func decodeFile(src, dst string, conf *huffman.ReaderConfig) error {
	if !conf.Strict {
		return huffman.DecodeFile(src, dst)
	}
	fi, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fi.Close()
	hr, err := huffman.NewReader(fi, conf)
	if err != nil {
		return err
	}
	fo, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fo, hr); err != nil {
		fo.Close()
		return err
	}
	if err := hr.Close(); err != nil {
		fo.Close()
		return err
	}
	return fo.Close()
}

// printHeader prints one "byte count" line per distinct byte, in byte order.
func printHeader(w io.Writer, src string, conf *huffman.ReaderConfig) error {
	fi, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fi.Close()
	hr, err := huffman.NewReader(fi, conf)
	if err != nil {
		return err
	}
	ft, err := hr.Header()
	if err != nil {
		return err
	}
	for sym, cnt := range ft {
		if cnt > 0 {
			fmt.Fprintf(w, "%q\t%d\n", sym, cnt)
		}
	}
	fmt.Fprintf(w, "total\t%d\n", ft.Total())
	return nil
}

// printCodes prints one "byte count code" line per distinct byte, in byte
// order. A text with a single distinct byte has an empty code.
func printCodes(w io.Writer, src string) error {
	fi, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fi.Close()
	ft, err := huffman.CountFreqs(fi)
	if err != nil {
		return err
	}
	ct := ft.Codes()
	for sym, cnt := range ft {
		if cnt > 0 {
			fmt.Fprintf(w, "%q\t%d\t%s\n", sym, cnt, ct[sym])
		}
	}
	return nil
}

// verify codes the file in memory, decodes the result, and compares digests
// of the original and the decoded text.
func verify(w io.Writer, src string, conf *huffman.ReaderConfig) error {
	text, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	var coded bytes.Buffer
	hw, err := huffman.NewWriter(&coded, nil)
	if err != nil {
		return err
	}
	if _, err := hw.Write(text); err != nil {
		return err
	}
	if err := hw.Close(); err != nil {
		return err
	}
	size := coded.Len()

	hr, err := huffman.NewReader(&coded, conf)
	if err != nil {
		return err
	}
	h := xxhash.New()
	if _, err := io.Copy(h, hr); err != nil {
		return err
	}
	if err := hr.Close(); err != nil {
		return err
	}

	want, got := xxhash.Sum64(text), h.Sum64()
	if got != want || hr.Checksum() != crc32.ChecksumIEEE(text) {
		return fmt.Errorf("round trip mismatch: got digest %016x, want %016x", got, want)
	}
	fmt.Fprintf(w, "%s: %d bytes coded to %d characters, digest %016x, crc %08x\n",
		src, len(text), size, want, hw.Checksum())
	return nil
}
