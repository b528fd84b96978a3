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

// Package execcache memoises os/exec.LookPath lookups for the external
// compressor executables that codec.Format.Executables names. Lookups are
// consulted on unix-like GOOS; on other platforms Resolve always misses,
// which the codec dispatcher treats as "no external collaborator
// available", not an error.
package execcache

import (
	"os/exec"
	"runtime"
	"sync"
)

// Resolution is the outcome of resolving one candidate name.
type Resolution struct {
	Name string // the candidate that resolved, e.g. "pigz"
	Path string // the absolute path exec.LookPath returned
}

// Cache memoises LookPath results so a hot compress/decompress loop does
// not re-stat PATH on every call.
type Cache struct {
	mu   sync.RWMutex
	hit  map[string]string
	miss map[string]struct{}
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		hit:  make(map[string]string),
		miss: make(map[string]struct{}),
	}
}

var defaultCache = New()

// Default returns the package-level Cache shared by codec's external
// dispatch path.
func Default() *Cache {
	return defaultCache
}

// Supported reports whether external-executable resolution is attempted
// at all on this platform. Non-unix platforms degrade to "never
// resolvable" rather than guessing at PATH semantics.
func Supported() bool {
	switch runtime.GOOS {
	case "windows", "plan9", "js":
		return false
	default:
		return true
	}
}

// Resolve tries each name in names, in order, and returns the first one
// resolvable via exec.LookPath. ok is false when none resolve or the
// platform does not support external resolution at all.
func (c *Cache) Resolve(names ...string) (res Resolution, ok bool) {
	if !Supported() {
		return Resolution{}, false
	}

	for _, n := range names {
		if n == "" {
			continue
		}

		c.mu.RLock()
		if p, found := c.hit[n]; found {
			c.mu.RUnlock()
			return Resolution{Name: n, Path: p}, true
		}
		_, missed := c.miss[n]
		c.mu.RUnlock()
		if missed {
			continue
		}

		p, err := exec.LookPath(n)

		c.mu.Lock()
		if err != nil {
			c.miss[n] = struct{}{}
		} else {
			c.hit[n] = p
		}
		c.mu.Unlock()

		if err == nil {
			return Resolution{Name: n, Path: p}, true
		}
	}

	return Resolution{}, false
}

// Invalidate drops any cached lookup for name, forcing the next Resolve
// to re-stat PATH. Useful after a test or caller mutates PATH at runtime.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.hit, name)
	delete(c.miss, name)
}
