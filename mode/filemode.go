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

package mode

import (
	"strings"
)

// FileMode is the canonical (access, coding) pair governing an opened source.
// Every FileMode has exactly one Access and one Coding; there is no
// "unset" state. The zero value is read-text, matching the default mode
// rule of the unified opener.
type FileMode struct {
	access Access
	coding Coding
}

// New builds a FileMode from an explicit access/coding pair.
func New(a Access, c Coding) FileMode {
	return FileMode{access: a, coding: c}
}

// Default is the opener's implicit mode when none is given: read-text.
func Default() FileMode {
	return FileMode{access: Read, coding: Text}
}

// Parse accepts the canonical grammar `[rwax][+]?[bt]?U?`. Character order
// within each class does not matter ("rt" and "tr" parse identically);
// "U" (universal newlines) is accepted and silently canonicalised away.
// An empty string parses as Default(). Parse never fails: a string that
// does not resemble a mode falls back to read-text, mirroring the
// opener's "missing coding defaults to text" rule; callers that must
// reject malformed input should use ParseStrict.
func Parse(s string) FileMode {
	m, _ := ParseStrict(s)
	return m
}

// ParseStrict is Parse but reports ErrorInvalidMode when the string
// contains characters outside the mode grammar, or combines incompatible
// access markers (e.g. both "r" and "w" without "+").
func ParseStrict(s string) (FileMode, error) {
	var (
		sawAccess Access
		hasAccess bool
		hasPlus   bool
		coding    = Text
		hasCoding bool
	)

	for _, r := range s {
		switch r {
		case 'U', 'u':
			// universal newlines: accepted, canonicalised away.
			continue
		case '+':
			hasPlus = true
		case 'r':
			if hasAccess && sawAccess != Read {
				return FileMode{}, ErrorInvalidMode.Errorf(s)
			}
			sawAccess, hasAccess = Read, true
		case 'w':
			if hasAccess && sawAccess != Write {
				return FileMode{}, ErrorInvalidMode.Errorf(s)
			}
			sawAccess, hasAccess = Write, true
		case 'a':
			if hasAccess && sawAccess != Append {
				return FileMode{}, ErrorInvalidMode.Errorf(s)
			}
			sawAccess, hasAccess = Append, true
		case 'x':
			if hasAccess && sawAccess != Exclusive {
				return FileMode{}, ErrorInvalidMode.Errorf(s)
			}
			sawAccess, hasAccess = Exclusive, true
		case 'b':
			coding, hasCoding = Binary, true
		case 't':
			coding, hasCoding = Text, true
		default:
			return FileMode{}, ErrorInvalidMode.Errorf(s)
		}
	}

	if !hasAccess {
		sawAccess = Read
	}
	if !hasCoding {
		coding = Text
	}

	if hasPlus {
		switch sawAccess {
		case Read:
			sawAccess = ReadWrite
		case Write:
			sawAccess = TruncateReadWrite
		}
	}

	return FileMode{access: sawAccess, coding: coding}, nil
}

func (m FileMode) Access() Access { return m.access }
func (m FileMode) Coding() Coding { return m.coding }

func (m FileMode) Readable() bool { return m.access.Readable() }
func (m FileMode) Writable() bool { return m.access.Writable() }
func (m FileMode) Text() bool     { return m.coding == Text }
func (m FileMode) Binary() bool   { return m.coding == Binary }

// AsBinary returns the same access paired with binary coding.
func (m FileMode) AsBinary() FileMode {
	return FileMode{access: m.access, coding: Binary}
}

// AsText returns the same access paired with text coding.
func (m FileMode) AsText() FileMode {
	return FileMode{access: m.access, coding: Text}
}

// String renders the canonical character-pair form, e.g. "rt", "wb", "r+b".
// Two FileMode values are equal as Go structs iff their canonical strings
// are equal; canonicalisation happens once, at construction, not at
// String() time, so String() is just a direct render.
func (m FileMode) String() string {
	var b strings.Builder

	switch m.access {
	case Read:
		b.WriteByte('r')
	case Write:
		b.WriteByte('w')
	case ReadWrite:
		b.WriteString("r+")
	case TruncateReadWrite:
		b.WriteString("w+")
	case Append:
		b.WriteByte('a')
	case Exclusive:
		b.WriteByte('x')
	}

	b.WriteString(m.coding.String())

	return b.String()
}
