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

package source

import (
	"io"
	"net/url"
	"strings"

	"github.com/nabbar/xopen/mode"
)

// Bytes is the BUFFER sentinel: passing a Bytes value (possibly empty) asks
// the opener for a fresh in-memory buffer. A non-empty value seeds the
// buffer's initial contents; this is the one precise semantics chosen for
// the "string/bytes marker" classification rule — there is no separate
// "type token with no contents" case in this port.
type Bytes []byte

// Descriptor is the resolved, tagged form of whatever the caller passed to
// the opener. Exactly the fields relevant to Type are populated.
type Descriptor struct {
	Type FileType

	// Path holds the local path (Local), the URL text (URL), or the
	// command text with its leading "|" stripped (Process).
	Path string

	// Std selects which standard stream a Stdio descriptor refers to.
	Std StdStream

	// Stream is the caller-supplied handle for FileLike.
	Stream interface{}

	// Contents seeds a Buffer descriptor; nil means a fresh, empty buffer.
	Contents []byte
}

// Classify applies the opener's classification precedence (§4.4): STDIO,
// BUFFER, FILELIKE, PROCESS, URL, LOCAL, in that order.
func Classify(src interface{}) (Descriptor, error) {
	switch v := src.(type) {
	case Bytes:
		return Descriptor{Type: Buffer, Contents: []byte(v)}, nil

	case []byte:
		return Descriptor{Type: Buffer, Contents: v}, nil

	case string:
		return classifyString(v), nil

	default:
		if isStream(src) {
			return Descriptor{Type: FileLike, Stream: src}, nil
		}
		return Descriptor{}, ErrorUnsupportedSource.Errorf("%T", src)
	}
}

func classifyString(s string) Descriptor {
	switch s {
	case "-":
		return Descriptor{Type: Stdio, Std: StdAuto}
	case "_":
		return Descriptor{Type: Stdio, Std: StdErr}
	}

	if strings.HasPrefix(s, "|") {
		return Descriptor{Type: Process, Path: strings.TrimPrefix(s, "|")}
	}

	if looksLikeURL(s) {
		return Descriptor{Type: URL, Path: s}
	}

	return Descriptor{Type: Local, Path: s}
}

func looksLikeURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	// A bare scheme with neither host nor path (e.g. "c:" on Windows, or a
	// lone "foo:") is not a URL for our purposes; require one of them.
	return u.Host != "" || u.Opaque != "" || (u.Path != "" && len(u.Scheme) > 1)
}

func isStream(src interface{}) bool {
	switch src.(type) {
	case io.Reader, io.Writer, io.Closer:
		return true
	default:
		return false
	}
}

// DefaultStdStream resolves StdAuto to StdIn or StdOut given an access.
func DefaultStdStream(std StdStream, acc mode.Access) StdStream {
	if std != StdAuto {
		return std
	}
	if acc.Readable() {
		return StdIn
	}
	return StdOut
}
