// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"hash/crc32"
	"io"
	"runtime"
	"testing"

	"github.com/dsnet/textcode/internal/errors"
	"github.com/dsnet/textcode/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var vectors = []struct {
		input  []string // Chunks passed to separate calls to Write
		output string
	}{
		{nil, "\n"},
		{[]string{""}, "\n"},
		{[]string{"a"}, "97 1\n"},
		{[]string{"aaaa", "aaaaaa"}, "97 10\n"},
		{[]string{"aaa", "bbbb", "cc"}, "97 3 98 4 99 2\n11111100001010"},
		{[]string{"ab", "cd ", "abc ab a"}, "32 3 97 4 98 3 99 2 100 1\n11011011000011011010011010011"},
		{[]string{"\n"}, "10 1\n"},
		{[]string{"0", "1"}, "48 1 49 1\n01"},
	}

	for i, v := range vectors {
		var buf bytes.Buffer
		wr, err := NewWriter(&buf, nil)
		if err != nil {
			t.Fatalf("test %d, unexpected NewWriter error: %v", i, err)
		}
		var n int
		for _, s := range v.input {
			cnt, err := wr.Write([]byte(s))
			if err != nil {
				t.Errorf("test %d, unexpected Write error: %v", i, err)
			}
			n += cnt
		}
		if buf.Len() != 0 {
			t.Errorf("test %d, output written before Close", i)
		}
		if err := wr.Close(); err != nil {
			t.Errorf("test %d, unexpected Close error: %v", i, err)
		}

		if got := buf.String(); got != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %q\nwant %q", i, got, v.output)
		}
		if wr.InputOffset != int64(n) {
			t.Errorf("test %d, input offset mismatch: got %d, want %d", i, wr.InputOffset, n)
		}
		if wr.OutputOffset != int64(len(v.output)) {
			t.Errorf("test %d, output offset mismatch: got %d, want %d", i, wr.OutputOffset, len(v.output))
		}
	}
}

func TestWriterClose(t *testing.T) {
	var buf bytes.Buffer
	wr, err := NewWriter(&buf, nil)
	assert.Nil(t, err)
	_, err = wr.Write([]byte("abracadabra"))
	assert.Nil(t, err)
	assert.Equal(t, crc32.ChecksumIEEE([]byte("abracadabra")), wr.Checksum())

	assert.Nil(t, wr.Close())
	out := buf.String()
	assert.Nil(t, wr.Close(), "second Close")
	assert.Equal(t, out, buf.String(), "second Close must not write")

	_, err = wr.Write([]byte("more"))
	assert.True(t, errors.IsClosed(err), "got %v", err)
}

func TestWriterReset(t *testing.T) {
	text, coded := loadGolden(t, "declaration")
	wr, err := NewWriter(io.Discard, nil)
	assert.Nil(t, err)

	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		assert.Nil(t, wr.Reset(&buf))
		assert.Equal(t, uint32(0), wr.Checksum())
		_, err := wr.Write(text)
		assert.Nil(t, err)
		assert.Nil(t, wr.Close())
		assert.Equal(t, string(coded), buf.String(), "iteration %d", i)
	}
}

func TestWriterNil(t *testing.T) {
	_, err := NewWriter(nil, nil)
	assert.True(t, errors.IsInvalid(err), "got %v", err)

	var buf bytes.Buffer
	wr, err := NewWriter(&buf, nil)
	assert.Nil(t, err)
	assert.True(t, errors.IsInvalid(wr.Reset(nil)))
	_, err = wr.Write([]byte("abc"))
	assert.True(t, errors.IsInvalid(err), "got %v", err)
	assert.True(t, errors.IsInvalid(wr.Close()))
	assert.Equal(t, int64(0), wr.InputOffset)

	// Reset with a usable io.Writer recovers.
	assert.Nil(t, wr.Reset(&buf))
	_, err = wr.Write([]byte("abc"))
	assert.Nil(t, err)
	assert.Nil(t, wr.Close())
	assert.Equal(t, "97 1 98 1 99 1\n10110", buf.String())
}

func TestWriterIOError(t *testing.T) {
	text, coded := loadGolden(t, "declaration")
	errBoom := io.ErrClosedPipe

	for _, n := range []int64{0, 1, 100, int64(len(coded)) - 1} {
		var buf bytes.Buffer
		bw := &testutil.BuggyWriter{W: &buf, N: n, Err: errBoom}
		wr, err := NewWriter(bw, nil)
		assert.Nil(t, err)
		_, err = wr.Write(text)
		assert.Nil(t, err, "buffered Write must not fail")

		assert.Equal(t, errBoom, wr.Close(), "failure after %d bytes", n)
		assert.Equal(t, errBoom, wr.Close(), "error must persist")
		assert.Equal(t, int64(buf.Len()), wr.OutputOffset)
		assert.True(t, wr.OutputOffset <= n, "output offset %d exceeds %d", wr.OutputOffset, n)

		_, err = wr.Write(text)
		assert.Equal(t, errBoom, err)
	}
}

func TestEncode(t *testing.T) {
	text, coded := loadGolden(t, "file2")
	errBoom := io.ErrClosedPipe

	var buf bytes.Buffer
	err := Encode(&buf, &testutil.BuggyReader{R: bytes.NewReader(text), N: 4, Err: errBoom})
	assert.Equal(t, errBoom, err)
	assert.Equal(t, 0, buf.Len(), "nothing may be written when the text cannot be read")

	buf.Reset()
	assert.Nil(t, Encode(&buf, bytes.NewReader(text)))
	assert.Equal(t, coded, buf.Bytes())
}

func benchmarkEncode(b *testing.B, file string, n int) {
	b.StopTimer()
	b.SetBytes(int64(n))
	buf := testutil.MustLoadFile(file, n)
	runtime.GC()
	b.ReportAllocs()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		w, err := NewWriter(io.Discard, nil)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		if _, err := w.Write(buf); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		if err := w.Close(); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkEncode1e4(b *testing.B) { benchmarkEncode(b, declaration, 1e4) }
func BenchmarkEncode1e5(b *testing.B) { benchmarkEncode(b, declaration, 1e5) }
func BenchmarkEncode1e6(b *testing.B) { benchmarkEncode(b, declaration, 1e6) }
