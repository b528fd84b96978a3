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

// Package pathutil validates filesystem paths before the root opener
// hands them to os.Open/os.Create: CheckReadable resolves a path to its
// canonical, readable form; CheckWritable does the same for a
// destination, optionally creating missing parent directories.
package pathutil

import (
	"os"
	"path/filepath"

	"github.com/nabbar/xopen/file/perm"
)

// DefaultDirPerm is applied to directories CheckWritable creates on the
// caller's behalf when mkdirs is true.
const DefaultDirPerm perm.Perm = 0o755

// CheckReadable resolves path to an absolute, symlink-free canonical
// path and confirms it names a regular, readable file.
func CheckReadable(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrorNotReadable.Error(err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", ErrorNotReadable.Error(err)
	}

	fi, err := os.Stat(canonical)
	if err != nil {
		return "", ErrorNotReadable.Error(err)
	}
	if fi.IsDir() {
		return "", ErrorNotReadable.Errorf(canonical)
	}

	f, err := os.Open(canonical)
	if err != nil {
		return "", ErrorNotReadable.Error(err)
	}
	_ = f.Close()

	return canonical, nil
}

// CheckWritable resolves path to an absolute canonical path and confirms
// it (or its parent directory) is writable, creating missing parent
// directories when mkdirs is true.
func CheckWritable(path string, mkdirs bool) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrorNotWritable.Error(err)
	}

	dir := filepath.Dir(abs)
	if _, err = os.Stat(dir); err != nil {
		if !mkdirs {
			return "", ErrorNotWritable.Error(err)
		}
		if err = os.MkdirAll(dir, DefaultDirPerm.FileMode()); err != nil {
			return "", ErrorMkdirFailed.Error(err)
		}
	}

	if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
		return "", ErrorNotWritable.Errorf(abs)
	}

	probe, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE, DefaultDirPerm.FileMode())
	if err != nil {
		return "", ErrorNotWritable.Error(err)
	}
	_ = probe.Close()

	return abs, nil
}
