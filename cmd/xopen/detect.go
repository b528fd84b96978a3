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

package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/nabbar/xopen/codec"
	"github.com/nabbar/xopen/console"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <path>",
		Short: "Report the compression format a path's extension and magic bytes imply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(args[0])
		},
	}
}

func runDetect(path string) error {
	byName, nameOK := codec.Default().GuessByName(path)
	byMagic, magicOK := detectByMagic(path)

	switch {
	case nameOK && magicOK && byName.Name == byMagic.Name:
		console.ColorPrint.PrintLnf("%s: %s (name and magic bytes agree)", path, byName.Name)
	case nameOK:
		console.ColorPrint.PrintLnf("%s: %s (by name)", path, byName.Name)
	case magicOK:
		console.ColorPrint.PrintLnf("%s: %s (by magic bytes)", path, byMagic.Name)
	default:
		colorErr.PrintLnf("%s: no codec recognised", path)
	}
	return nil
}

// detectByMagic peeks the first few bytes of path and asks the registry
// to identify a codec from them, without consuming the file.
func detectByMagic(path string) (codec.Format, bool) {
	f, err := os.Open(path)
	if err != nil {
		return codec.Format{}, false
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	return codec.Default().GuessByPeekable(br)
}
