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

import (
	"strings"
	"sync"
)

// Registry is a thread-safe collection of Format records, indexed by
// canonical name, alias, and magic-byte prefix. The zero value is not
// usable; construct one with NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]*Format // canonical name and every alias, lower-cased
	mime map[string]*Format // MIME type, exact
	all  []*Format          // insertion order, for magic-byte scanning
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*Format),
		mime: make(map[string]*Format),
	}
}

// Register adds f to the registry under its canonical name and every
// alias. A later Register overwrites an earlier one that claims the same
// name or alias, so callers that want to extend rather than replace the
// defaults should pick names that do not collide.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := f
	r.byID[strings.ToLower(cp.Name)] = &cp
	for _, a := range cp.Aliases {
		r.byID[strings.ToLower(a)] = &cp
	}
	for _, m := range cp.MIME {
		r.mime[strings.ToLower(m)] = &cp
	}
	r.all = append(r.all, &cp)
}

// Get returns the Format registered under the canonical name or alias
// name (case-insensitive), and whether it was found.
func (r *Registry) Get(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[strings.ToLower(name)]
	if !ok {
		return Format{}, false
	}
	return *f, true
}

// Canonical resolves name to its canonical Format.Name, or returns name
// unchanged if it is not registered.
func (r *Registry) Canonical(name string) string {
	if f, ok := r.Get(name); ok {
		return f.Name
	}
	return name
}

// GuessByName resolves a filename, extension or bare codec/executable name
// to a Format, trying (in order) the full string, then its lower-cased
// form, then the text after the last '.'.
func (r *Registry) GuessByName(name string) (Format, bool) {
	if f, ok := r.Get(name); ok {
		return f, true
	}

	if i := strings.LastIndexByte(name, '.'); i >= 0 && i+1 < len(name) {
		if f, ok := r.Get(name[i+1:]); ok {
			return f, true
		}
	}

	return Format{}, false
}

// ByMIME resolves an exact MIME type to its Format.
func (r *Registry) ByMIME(mime string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.mime[strings.ToLower(strings.TrimSpace(mime))]
	if !ok {
		return Format{}, false
	}
	return *f, true
}

// GuessByHeader scans every registered Format's magic prefixes against h
// and returns the first match in registration order. h should hold at
// least the longest magic prefix registered (6 bytes covers every builtin
// format).
func (r *Registry) GuessByHeader(h []byte) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.all {
		if f.DetectHeader(h) {
			return *f, true
		}
	}
	return Format{}, false
}

// GuessByBytes is GuessByHeader over the first bytes of buf without
// consuming it; it exists as the byte-slice counterpart to
// GuessByPeekable, which works over a stream.
func (r *Registry) GuessByBytes(buf []byte) (Format, bool) {
	return r.GuessByHeader(buf)
}

// Peekable is satisfied by a *bufio.Reader: it allows GuessByPeekable to
// inspect the next bytes of a stream without consuming them, so detection
// never disturbs the reader a caller subsequently wraps in a codec.
type Peekable interface {
	Peek(n int) ([]byte, error)
}

// GuessByPeekable detects a Format from the next bytes of r without
// consuming them. A short read (fewer than 6 bytes available, e.g. at
// EOF) is not an error: it simply fails to match any format.
func (r *Registry) GuessByPeekable(p Peekable) (Format, bool) {
	h, _ := p.Peek(6)
	if len(h) == 0 {
		return Format{}, false
	}
	return r.GuessByHeader(h)
}

// Formats returns every registered Format in registration order.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.all))
	for _, f := range r.all {
		out = append(out, *f)
	}
	return out
}

// defaultRegistry is populated by builtin.go's init() with the required
// gzip, bz2 and lzma formats plus the supplemental lz4 and zstd formats.
var defaultRegistry = NewRegistry()

// Default returns the package-level Registry used by Dispatch and the
// root opener when no explicit Registry is supplied.
func Default() *Registry {
	return defaultRegistry
}
