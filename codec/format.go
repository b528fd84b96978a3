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

import "io"

// Format is an immutable record describing one compression codec: its
// canonical name, every alias it answers to (including filename
// extensions and executable names), the default extension, the ordered
// external executables to try, MIME types, magic-byte prefixes, and the
// valid compression-level range. Every alias and every magic prefix maps
// to at most one Format within a Registry.
type Format struct {
	// Name is the canonical identifier, e.g. "gzip".
	Name string

	// Aliases includes extensions and executable names that resolve to
	// this format, e.g. {"gz", "pigz"}. Name itself need not be repeated.
	Aliases []string

	// Extension is the default filename extension, without the dot.
	Extension string

	// Executables lists candidate external commands in preference order,
	// e.g. {"pigz", "gzip"}.
	Executables []string

	// MinLevel, MaxLevel and DefaultLevel bound and default the
	// compress_file/open level knob.
	MinLevel, MaxLevel, DefaultLevel int

	// Parallel reports whether an external executable in Executables
	// accepts a thread-count flag, and ThreadsFlag names it (e.g. "-p").
	Parallel    bool
	ThreadsFlag string

	// MIME lists the format's registered content types.
	MIME []string

	// Magic lists one or more magic-byte prefixes for this format.
	Magic [][]byte

	// Algorithm selects the in-process codec implementation.
	Algorithm Algorithm
}

// Reader opens an in-process decompressing stream for this format.
func (f Format) Reader(r io.Reader) (io.ReadCloser, error) {
	return f.Algorithm.Reader(r)
}

// Writer opens an in-process compressing stream for this format at level
// (clamped to [MinLevel,MaxLevel]; <= 0 asks for DefaultLevel).
func (f Format) Writer(w io.WriteCloser, level int) (io.WriteCloser, error) {
	return f.Algorithm.Writer(w, f.ClampLevel(level))
}

// ClampLevel normalises level into the format's declared range, treating
// a non-positive level as "use the default".
func (f Format) ClampLevel(level int) int {
	if level <= 0 {
		return f.DefaultLevel
	}
	if level < f.MinLevel {
		return f.MinLevel
	}
	if level > f.MaxLevel {
		return f.MaxLevel
	}
	return level
}

// DetectHeader reports whether h (at least 6 bytes) begins with one of
// this format's magic prefixes.
func (f Format) DetectHeader(h []byte) bool {
	for _, m := range f.Magic {
		if len(h) >= len(m) && bytesEqual(h[:len(m)], m) {
			return true
		}
	}
	return false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
