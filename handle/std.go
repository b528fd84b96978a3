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

package handle

import (
	"os"

	"github.com/nabbar/xopen/source"
)

// NewStd wraps one of os.Stdin/os.Stdout/os.Stderr as a Handle, selected
// by std (source.StdAuto resolves via acc per source.DefaultStdStream).
// Close on a std stream is a no-op for the underlying file descriptor —
// matching the expectation that closing "-" never closes the process's
// real stdio — while still firing CLOSE listeners and marking Closed().
func NewStd(std source.StdStream) *WrappedHandle {
	var (
		f    *os.File
		name string
		mode string
	)

	switch std {
	case source.StdOut:
		f, name, mode = os.Stdout, "<stdout>", "w"
	case source.StdErr:
		f, name, mode = os.Stderr, "<stderr>", "w"
	default:
		f, name, mode = os.Stdin, "<stdin>", "r"
	}

	return New(&noCloseFile{f}, name, mode)
}

// noCloseFile forwards Read/Write/Seek/Fd but swallows Close, since the
// process's real stdio must survive a Handle's Close.
type noCloseFile struct {
	*os.File
}

func (n *noCloseFile) Close() error { return nil }
