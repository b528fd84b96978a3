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

package xopen

import (
	"sync/atomic"

	"github.com/spf13/viper"
)

// Config is the process-wide, read-only snapshot Configure produces: the
// registry, the executable-search cache and the thread ceiling are
// process-global per §5, written once at startup and read thereafter
// without locking.
type Config struct {
	// SearchPath is prepended to PATH when resolving external codec
	// executables, highest-priority entry first.
	SearchPath []string

	// DefaultLevel overrides every Format's DefaultLevel when positive.
	DefaultLevel int

	// ThreadCeiling caps the Threads value Dispatch passes to a
	// parallel-capable external executable.
	ThreadCeiling int

	// ProgressEnabled gates whether CompressFile/DecompressFile attach a
	// progress bar to their chunked-copy OnChunk hook.
	ProgressEnabled bool

	// UseSystem is the default for Options.UseSystem when Open is not
	// given an explicit value.
	UseSystem bool
}

var current atomic.Pointer[Config]

func init() {
	current.Store(&Config{ThreadCeiling: 4})
}

// Configure binds the known viper keys (with their defaults already set
// on v, e.g. by a cobra command's flag bindings) and snapshots the
// result into the process-wide Config thereafter returned by Current.
// It never blocks on I/O itself; v is expected to already have read
// whatever config file/environment the caller wants honoured.
func Configure(v *viper.Viper) Config {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault("search_path", []string{})
	v.SetDefault("default_level", 0)
	v.SetDefault("thread_ceiling", 4)
	v.SetDefault("progress_enabled", false)
	v.SetDefault("use_system", false)

	cfg := Config{
		SearchPath:      v.GetStringSlice("search_path"),
		DefaultLevel:    v.GetInt("default_level"),
		ThreadCeiling:   v.GetInt("thread_ceiling"),
		ProgressEnabled: v.GetBool("progress_enabled"),
		UseSystem:       v.GetBool("use_system"),
	}

	current.Store(&cfg)
	return cfg
}

// Current returns the most recent Config snapshot; before the first
// Configure call it is the zero-value defaults (ThreadCeiling 4, every
// other field at its zero value).
func Current() Config {
	return *current.Load()
}
