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

// Package source classifies whatever a caller hands the opener — a path, a
// URL, a "|command" string, an already-open stream, a buffer sentinel, or
// one of the standard-stream tokens — into a single tagged FileType plus
// the fields the opener needs to act on it.
package source

// FileType tags the kind of transport a SourceDescriptor resolves to.
type FileType uint8

const (
	// Stdio is the standard-stream sentinel ("-" for stdin/stdout, "_" for stderr).
	Stdio FileType = iota
	// Local is a path on the local filesystem.
	Local
	// URL is an http(s) or file URL.
	URL
	// Process is a "|<command>" shell-split subprocess spec.
	Process
	// FileLike is a caller-supplied, already-open stream.
	FileLike
	// Buffer is a request for a fresh in-memory buffer, optionally pre-filled.
	Buffer
)

func (t FileType) String() string {
	switch t {
	case Stdio:
		return "stdio"
	case Local:
		return "local"
	case URL:
		return "url"
	case Process:
		return "process"
	case FileLike:
		return "filelike"
	case Buffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// StdStream picks which standard stream a Stdio descriptor refers to.
type StdStream uint8

const (
	// StdAuto lets the opener decide stdin vs stdout from the requested access.
	StdAuto StdStream = iota
	StdIn
	StdOut
	StdErr
)
