/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package closeaction provides CLOSE-event listeners that post-process a
// just-closed file path: compress it, move it, or delete it. Each
// listener is meant to be registered on a handle.Handle via
// RegisterListener(handle.EventClose, ...), mirroring the donor's
// EventManager-driven listener registration.
package closeaction

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/nabbar/xopen/codec"
	"github.com/nabbar/xopen/handle"
)

// CompressOnClose returns a handle.Listener that compresses path under f
// when it fires, and records the destination path for Result(). The
// source file is kept unless keep is false.
func CompressOnClose(path string, f codec.Format, level int, keep bool) (handle.Listener, *Result) {
	res := &Result{}

	l := func(_ handle.Handle, _ map[string]interface{}) error {
		dest, err := codec.CompressFile(f, path, codec.FileOptions{Keep: keep})
		res.store(dest, err)
		return err
	}
	return l, res
}

// MoveOnClose returns a handle.Listener that renames path to dest when
// it fires, and records the outcome for Result().
func MoveOnClose(path, dest string) (handle.Listener, *Result) {
	res := &Result{}

	l := func(_ handle.Handle, _ map[string]interface{}) error {
		err := os.Rename(path, dest)
		if err != nil {
			res.store("", err)
			return err
		}
		res.store(dest, nil)
		return nil
	}
	return l, res
}

// DeleteOnClose returns a handle.Listener that removes path when it
// fires, and records the outcome for Result().
func DeleteOnClose(path string) (handle.Listener, *Result) {
	res := &Result{}

	l := func(_ handle.Handle, _ map[string]interface{}) error {
		err := os.Remove(path)
		res.store("", err)
		return err
	}
	return l, res
}

// Result holds the outcome of a close-action listener, safe to read
// from a different goroutine than the one that fired Close.
type Result struct {
	mu   sync.Mutex
	done atomic.Bool
	dest string
	err  error
}

func (r *Result) store(dest string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dest = dest
	r.err = err
	r.done.Store(true)
}

// Done reports whether the listener has fired yet.
func (r *Result) Done() bool {
	return r.done.Load()
}

// Path returns the resulting path (compressed/moved destination) and any
// error the action produced. Calling it before Done() is false returns
// a zero Result.
func (r *Result) Path() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dest, r.err
}
