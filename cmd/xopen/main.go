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

// Command xopen is a small dogfood client for the opener library: it
// compresses, decompresses, and detects the codec of local files through
// the exact same Open entry point the library exposes to callers, so it
// doubles as an integration-test harness.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nabbar/xopen"
	"github.com/nabbar/xopen/codec"
	"github.com/nabbar/xopen/console"
	liblvl "github.com/nabbar/xopen/logger/level"
	liblog "github.com/nabbar/xopen/logger"
)

// colorOK and colorErr are console.ColorType ids beyond the package's
// built-in ColorPrint/ColorPrompt, configured once in main for this
// command's own success/error diagnostics.
const (
	colorOK  = console.ColorType(2)
	colorErr = console.ColorType(3)
)

var (
	flagLogLevel   string
	flagUseSystem  bool
	flagLevel      int
	flagThreads    int
	flagNoProgress bool

	log liblog.Logger
)

func main() {
	console.SetColor(colorOK, int(color.FgGreen))
	console.SetColor(colorErr, int(color.FgRed))

	root := &cobra.Command{
		Use:           "xopen",
		Short:         "Open, compress and decompress files through the unified opener",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = liblog.New(context.Background())
			log.SetLevel(liblvl.Parse(flagLogLevel))

			codec.Default().Register(codec.ZstdFormat())

			v := viper.New()
			v.Set("use_system", flagUseSystem)
			v.Set("default_level", flagLevel)
			v.Set("thread_ceiling", flagThreads)
			v.Set("progress_enabled", !flagNoProgress)
			xopen.Configure(v)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: panic, fatal, error, warning, info, debug")
	root.PersistentFlags().BoolVar(&flagUseSystem, "use-system", false, "prefer an external compressor executable over the in-process codec")
	root.PersistentFlags().IntVar(&flagLevel, "level", 0, "compression level (0 = codec default)")
	root.PersistentFlags().IntVar(&flagThreads, "threads", 4, "thread ceiling for parallel codecs")
	root.PersistentFlags().BoolVar(&flagNoProgress, "no-progress", false, "disable the byte-count progress bar")

	root.AddCommand(newCompressCommand())
	root.AddCommand(newDecompressCommand())
	root.AddCommand(newDetectCommand())

	if err := root.Execute(); err != nil {
		colorErr.PrintLnf("error: %v", err)
		os.Exit(1)
	}
}
