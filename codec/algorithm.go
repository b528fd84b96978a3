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

package codec

import "bytes"

// Algorithm selects the in-process codec implementation backing a Format.
// It is the low-level "how do I get an io.Reader/io.Writer" switch; Format
// is the higher-level, data-driven record the registry deals in.
type Algorithm uint8

const (
	None Algorithm = iota
	Bzip2
	Gzip
	LZ4
	XZ
	Zstd
)

func (a Algorithm) IsNone() bool {
	return a == None
}

func (a Algorithm) String() string {
	switch a {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case LZ4:
		return "lz4"
	case XZ:
		return "xz"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// DetectHeader reports whether h begins with this algorithm's magic bytes.
// h must hold at least 6 bytes; shorter slices never match.
func (a Algorithm) DetectHeader(h []byte) bool {
	if len(h) < 6 {
		return false
	}

	switch a {
	case Gzip:
		return bytes.Equal(h[0:2], []byte{0x1F, 0x8B})
	case Bzip2:
		return bytes.Equal(h[0:3], []byte{'B', 'Z', 'h'}) && h[3] >= '0' && h[3] <= '9'
	case LZ4:
		return bytes.Equal(h[0:4], []byte{0x04, 0x22, 0x4D, 0x18})
	case XZ:
		exp := []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
		return bytes.Equal(h[0:6], exp)
	case Zstd:
		return bytes.Equal(h[0:4], []byte{0x28, 0xB5, 0x2F, 0xFD})
	default:
		return false
	}
}
