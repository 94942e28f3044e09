// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/dsnet/textcode/internal/errors"
	"github.com/dsnet/textcode/internal/prefix"
)

// ReaderConfig configures a Reader.
type ReaderConfig struct {
	// Strict rejects a line break after the body. By default a single "\n"
	// or "\r\n" is tolerated, since text editors commonly append one.
	Strict bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// A Reader is an io.ReadCloser that decodes a coded stream.
// The header is read upon the first call to Read.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     *bufio.Reader
	strict bool

	hdrDone bool
	freqs   FreqTable
	left    int  // Number of symbols yet to be decoded
	single  bool // Tree is a single leaf; the body must be empty
	sym     byte // Symbol of the single leaf
	pd      prefix.Decoder

	crc uint32 // CRC-32 of all decoded text
	err error  // Persistent error
}

// NewReader creates a new Reader reading the coded stream from r.
// If conf is nil, then default configuration values are used.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	hr := new(Reader)
	if conf != nil {
		hr.strict = conf.Strict
	}
	if err := hr.Reset(r); err != nil {
		return nil, err
	}
	return hr, nil
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader, but reading from r instead.
// The configuration given to NewReader is retained.
// A nil r is an invalid argument and leaves the Reader unusable.
func (hr *Reader) Reset(r io.Reader) error {
	*hr = Reader{strict: hr.strict}
	switch br, ok := r.(*bufio.Reader); {
	case r == nil:
		hr.err = errorf(errors.Invalid, "nil io.Reader")
	case ok:
		hr.rd = br
	default:
		hr.rd = bufio.NewReader(r)
	}
	return hr.err
}

// Header returns the frequency table read from the header.
// It reads the header if no call to Read has done so yet.
func (hr *Reader) Header() (FreqTable, error) {
	if !hr.hdrDone && hr.err == nil {
		hr.err = hr.readHeader()
	}
	if hr.err != nil && hr.err != io.EOF {
		return FreqTable{}, hr.err
	}
	return hr.freqs, nil
}

// Read decodes text into buf.
// It returns io.EOF once the body has been fully decoded.
func (hr *Reader) Read(buf []byte) (int, error) {
	if hr.err != nil {
		return 0, hr.err
	}
	if !hr.hdrDone {
		if hr.err = hr.readHeader(); hr.err != nil {
			return 0, hr.err
		}
	}

	var cnt int
	cnt, hr.err = hr.decode(buf)
	hr.crc = updateCRC(hr.crc, buf[:cnt])
	hr.OutputOffset += int64(cnt)
	return cnt, hr.err
}

// Checksum reports the CRC-32 (IEEE) of all text decoded so far.
func (hr *Reader) Checksum() uint32 { return hr.crc }

// Close ends the coded stream. It does not close the underlying io.Reader.
func (hr *Reader) Close() error {
	if hr.err == errClosed {
		return nil
	}
	if hr.err != nil && hr.err != io.EOF {
		return hr.err
	}
	hr.err = errClosed
	hr.rd = nil // Release reference to underlying Reader
	return nil
}

// readHeader reads the header line and prepares the tree walk.
func (hr *Reader) readHeader() error {
	line, err := hr.rd.ReadString('\n')
	hr.InputOffset += int64(len(line))
	if err != nil && err != io.EOF {
		return err
	}
	if hr.freqs, err = ParseHeader(line); err != nil {
		return err
	}
	hr.hdrDone = true
	hr.left = hr.freqs.Total()

	root := prefix.BuildTree(hr.freqs[:])
	if root != nil && root.IsLeaf() {
		hr.single, hr.sym = true, byte(root.Sym)
	}
	hr.pd.Init(root)
	return nil
}

// decode fills buf with decoded symbols until either buf is full or all
// symbols listed in the header have been produced.
func (hr *Reader) decode(buf []byte) (cnt int, err error) {
	defer errors.Recover(&err)

	for cnt < len(buf) {
		if hr.left == 0 {
			return cnt, hr.finish()
		}
		if hr.single {
			buf[cnt] = hr.sym
			cnt++
			hr.left--
			continue
		}

		c, err := hr.rd.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = errorf(errors.Corrupted, "body ends with %d symbols left to decode", hr.left)
			}
			errors.Panic(err)
		}
		hr.InputOffset++

		sym, ok, err := hr.pd.Step(c)
		if err != nil {
			errors.Panic(err)
		}
		if ok {
			buf[cnt] = byte(sym)
			cnt++
			hr.left--
		}
	}
	return cnt, nil
}

// finish verifies that nothing other than an optional line break follows the
// last code of the body.
func (hr *Reader) finish() error {
	var tail [3]byte
	n, err := io.ReadFull(hr.rd, tail[:])
	hr.InputOffset += int64(n)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	switch string(tail[:n]) {
	case "":
		return io.EOF
	case "\n", "\r\n":
		if !hr.strict {
			return io.EOF
		}
	}
	return errorf(errors.Corrupted, "unexpected data after body: %q", tail[:n])
}

// Decode decodes the coded stream read from src and writes the text to dst.
func Decode(dst io.Writer, src io.Reader) error {
	hr, err := NewReader(src, nil)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, hr); err != nil {
		return err
	}
	return hr.Close()
}
