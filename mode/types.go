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

// Package mode models the access/coding pair that governs how a source is
// opened: which operations are permitted (read, write, append, ...) and
// whether bytes flow through a text codec or pass through raw.
package mode

// Access is the permitted operation set for an opened source.
type Access uint8

const (
	Read Access = iota
	Write
	ReadWrite
	TruncateReadWrite
	Append
	Exclusive
)

func (a Access) String() string {
	switch a {
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "r+"
	case TruncateReadWrite:
		return "w+"
	case Append:
		return "a"
	case Exclusive:
		return "x"
	default:
		return "r"
	}
}

// Readable reports whether the access permits read operations.
func (a Access) Readable() bool {
	switch a {
	case Read, ReadWrite, TruncateReadWrite:
		return true
	default:
		return false
	}
}

// Writable reports whether the access permits write operations.
func (a Access) Writable() bool {
	switch a {
	case Write, ReadWrite, TruncateReadWrite, Append, Exclusive:
		return true
	default:
		return false
	}
}

// Coding selects whether bytes are decoded as text or passed through raw.
type Coding uint8

const (
	Text Coding = iota
	Binary
)

func (c Coding) String() string {
	if c == Binary {
		return "b"
	}
	return "t"
}
