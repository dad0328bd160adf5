// Copyright © 2024 closed-unitigs contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"github.com/spf13/cobra"
)

// checkError prints err and exits with a non-zero status. Every
// subcommand funnels its error handling through here so failures look
// the same regardless of where they originate.
func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	s, err := cmd.Flags().GetString(flag)
	checkError(err)
	return s
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	b, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return b
}

// outStream opens file for writing, wrapping it in a gzip writer when
// gzipped is true. file == "-" writes to stdout instead. The caller is
// responsible for flushing/closing the returned writers in the right
// order: bufio.Writer first, then the optional gzip.Writer, then the
// underlying *os.File.
func outStream(file string, gzipped bool) (*bufio.Writer, io.WriteCloser, *os.File, error) {
	var w *os.File
	var err error
	if file == "-" {
		w = os.Stdout
	} else {
		w, err = os.Create(file)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("fail to write %s: %s", file, err)
		}
	}

	if gzipped {
		gw := gzip.NewWriter(w)
		return bufio.NewWriterSize(gw, os.Getpagesize()), gw, w, nil
	}
	return bufio.NewWriterSize(w, os.Getpagesize()), nil, w, nil
}

// stripExt trims a recognized input extension (.fa, .fasta, .unitigs,
// .txt, plus an optional trailing .gz) from file, for deriving a default
// --out-prefix from the input path.
func stripExt(file string) string {
	for _, suf := range []string{".gz"} {
		file = strings.TrimSuffix(file, suf)
	}
	for _, suf := range []string{".fasta", ".fa", ".unitigs", ".txt"} {
		file = strings.TrimSuffix(file, suf)
	}
	return file
}
