// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	var vectors = []struct {
		err  error
		want string
	}{
		{Error{}, "unknown error"},
		{Error{Code: Corrupted, Pkg: "huffman"}, "huffman: corrupted input"},
		{Error{Code: Corrupted, Pkg: "huffman", Msg: "odd header"}, "huffman: corrupted input: odd header"},
		{Error{Code: Closed, Msg: "writer"}, "closed handler: writer"},
		{Error{Code: Invalid, Pkg: "huffman", Msg: "nil io.Reader"}, "huffman: invalid argument: nil io.Reader"},
		{New("whoopsie"), "unknown error: whoopsie"},
	}

	for i, v := range vectors {
		if got := v.err.Error(); got != v.want {
			t.Errorf("test %d, Error(): got %q, want %q", i, got, v.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	corrupt := Error{Code: Corrupted}
	assert.True(t, IsCorrupted(corrupt))
	assert.True(t, corrupt.IsCorrupted())
	assert.False(t, IsClosed(corrupt))
	assert.False(t, IsInvalid(corrupt))
	assert.False(t, IsCorrupted(io.EOF))
	assert.False(t, IsCorrupted(nil))
	assert.True(t, IsClosed(Error{Code: Closed}))
	assert.True(t, IsInvalid(Error{Code: Invalid}))
	assert.True(t, Error{Code: Invalid}.IsInvalid())
}

func TestRecover(t *testing.T) {
	raise := func(want error) (err error) {
		defer Recover(&err)
		Panic(want)
		return nil
	}
	want := Error{Code: Corrupted, Msg: "bad bit"}
	assert.Equal(t, want, raise(want))

	assert.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("not from Panic")
	})

	var err error
	func() {
		defer Recover(&err)
	}()
	assert.Nil(t, err)
}
