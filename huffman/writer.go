// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/dsnet/textcode/internal/errors"
)

// WriterConfig configures a Writer. The coded format has no tunable
// parameters; the type exists so options can be added without changing the
// signature of NewWriter.
type WriterConfig struct {
	_ struct{} // Blank field to prevent unkeyed struct literals
}

// A Writer is an io.WriteCloser that codes all text written to it.
//
// The codes depend on the counts of every byte in the text, so nothing is
// written to the underlying io.Writer until Close is called.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr    io.Writer
	buf   []byte    // Text written so far
	freqs FreqTable // Counts of buf
	crc   uint32    // CRC-32 of buf
	err   error     // Persistent error
}

// NewWriter creates a new Writer that writes the coded text to w.
// If conf is nil, then default configuration values are used.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	hw := new(Writer)
	if err := hw.Reset(w); err != nil {
		return nil, err
	}
	return hw, nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter, but writing to w instead.
// A nil w is an invalid argument and leaves the Writer unusable.
func (hw *Writer) Reset(w io.Writer) error {
	*hw = Writer{wr: w, buf: hw.buf[:0]}
	if w == nil {
		hw.err = errorf(errors.Invalid, "nil io.Writer")
	}
	return hw.err
}

// Write buffers the text in buf.
func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	hw.buf = append(hw.buf, buf...)
	hw.freqs.Count(buf)
	hw.crc = updateCRC(hw.crc, buf)
	hw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Checksum reports the CRC-32 (IEEE) of all text written so far.
func (hw *Writer) Checksum() uint32 { return hw.crc }

// Close writes the header and the coded body to the underlying io.Writer.
// It does not close the underlying io.Writer.
func (hw *Writer) Close() error {
	if hw.err == errClosed {
		return nil
	}
	if hw.err != nil {
		return hw.err
	}

	hw.err = hw.encode()
	if hw.err != nil {
		return hw.err
	}
	hw.err = errClosed
	hw.wr = nil // Release reference to underlying Writer
	return nil
}

func (hw *Writer) encode() error {
	cw := &countWriter{w: hw.wr, n: &hw.OutputOffset}
	bw := bufio.NewWriter(cw)

	hdr := hw.freqs.AppendHeader(nil)
	bw.Write(append(hdr, '\n'))

	codes := hw.freqs.Codes()
	for _, c := range hw.buf {
		bw.WriteString(codes[c])
	}
	return bw.Flush()
}

// countWriter counts the bytes successfully written to w.
type countWriter struct {
	w io.Writer
	n *int64
}

func (cw *countWriter) Write(buf []byte) (int, error) {
	n, err := cw.w.Write(buf)
	*cw.n += int64(n)
	return n, err
}

// Encode codes all text read from src and writes the result to dst.
func Encode(dst io.Writer, src io.Reader) error {
	hw, err := NewWriter(dst, nil)
	if err != nil {
		return err
	}
	if _, err := io.Copy(hw, src); err != nil {
		return err
	}
	return hw.Close()
}
