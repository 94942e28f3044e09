// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/dsnet/textcode/internal/testutil"
)

func FuzzRoundTrip(f *testing.F) {
	for _, name := range goldenFiles {
		f.Add(testutil.MustLoadFile(filepath.Join("../testdata", name+".txt"), -1))
	}
	f.Add([]byte("null\x00byte"))
	f.Add([]byte("hello世界"))

	f.Fuzz(func(t *testing.T, text []byte) {
		var coded bytes.Buffer
		if err := Encode(&coded, bytes.NewReader(text)); err != nil {
			t.Fatalf("Encode error: %v", err)
		}
		if bytes.Count(coded.Bytes(), []byte("\n")) != 1 {
			t.Fatalf("coded stream must hold exactly one line break: %q", coded.Bytes())
		}

		rd, err := NewReader(&coded, &ReaderConfig{Strict: true})
		if err != nil {
			t.Fatalf("NewReader error: %v", err)
		}
		got, err := io.ReadAll(rd)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if !bytes.Equal(got, text) {
			t.Fatalf("round trip mismatch:\ngot  %q\nwant %q", got, text)
		}
	})
}

func FuzzDecode(f *testing.F) {
	for _, name := range goldenFiles {
		f.Add(testutil.MustLoadFile(filepath.Join("../testdata", name+".huff"), -1))
	}
	f.Add([]byte("97 3 98\n0"))
	f.Add([]byte("97 3 98 4 99 2\n1111110000101x"))

	f.Fuzz(func(t *testing.T, coded []byte) {
		rd, err := NewReader(bytes.NewReader(coded), nil)
		if err != nil {
			t.Fatalf("NewReader error: %v", err)
		}
		// A header may claim any number of copies of a single symbol.
		_, err = io.Copy(io.Discard, io.LimitReader(rd, 1<<20))
		if err != nil && !IsFormatError(err) {
			t.Fatalf("unexpected error class: %v", err)
		}
	})
}
