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
	"fmt"
	"os"

	"github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
)

// VERSION is the toolkit version, bumped by hand per release.
const VERSION = "0.1.0"

var log = logging.MustGetLogger("clounitig")

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "clounitig",
	Short: "De Bruijn graph closure for unitig files",
	Long: fmt.Sprintf(`clounitig - De Bruijn graph closure for unitig files

A command-line tool that reads a BCALM2-style FASTA of unitigs with
ab:Z: abundance annotations and L: links, builds the underlying
de Bruijn graph, and reports the closed unitigs: the maximal regions
of uniform minimum k-mer support, deduplicated up to reverse
complement.

Version: %s
`, VERSION),
}

// Execute adds all child commands to the root command and runs it.
// Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "", false, "print verbose information")
}
