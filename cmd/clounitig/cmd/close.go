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
	"math"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/stable"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"

	clounitig "github.com/DPDmancul/closed-unitigs"
	"github.com/DPDmancul/closed-unitigs/format"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "close the unitigs in a BCALM2-style annotated FASTA",
	Long: `close the unitigs in a BCALM2-style annotated FASTA

Reads a FASTA-like file of unitigs, each header carrying an ab:Z:
abundance vector and optional L: links to other records, builds the
de Bruijn graph those records describe, and reports the closed
unitigs: maximal regions of uniform minimum k-mer support.

Two sinks are written, positionally aligned: <out-prefix>.clo.fa holds
one '>' header and sequence per closed unitig, in ascending-count
order; <out-prefix>.clo.counts holds the matching counts, one per
line.
`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose := getFlagBool(cmd, "verbose")
		noCompress := getFlagBool(cmd, "no-compress")
		emitUnik := getFlagBool(cmd, "emit-unik")
		printStats := getFlagBool(cmd, "stats")
		outPrefix := getFlagString(cmd, "out-prefix")

		if len(args) != 1 {
			checkError(fmt.Errorf("close requires exactly one input file"))
		}
		inFile := args[0]

		ok, err := pathutil.Exists(inFile)
		checkError(err)
		if !ok {
			checkError(fmt.Errorf("input file does not exist: %s", inFile))
		}

		if outPrefix == "" {
			outPrefix = stripExt(inFile)
		}

		if verbose {
			log.Infof("reading records from %s", inFile)
		}
		records, err := format.ParseRecords(inFile)
		checkError(err)
		if verbose {
			log.Infof("%s records parsed", humanize.Comma(int64(len(records))))
		}

		graph, err := clounitig.Build(records)
		checkError(errors.Wrap(err, "building graph"))
		if verbose {
			nEdges := 0
			for _, n := range graph.Nodes {
				nEdges += len(n.Out)
			}
			log.Infof("graph built: k=%d, %s nodes, %s edges", graph.K,
				humanize.Comma(int64(len(graph.Nodes))), humanize.Comma(int64(nEdges)))
		}

		ctx := clounitig.NewClosureContext(graph)
		ctx.Run()
		closed := ctx.Sorted()
		if verbose {
			log.Infof("%s closed unitigs produced", humanize.Comma(int64(len(closed))))
		}

		gzipped := !noCompress
		seqFile := outPrefix + ".clo.fa"
		countFile := outPrefix + ".clo.counts"
		if gzipped {
			seqFile += ".gz"
			countFile += ".gz"
		}

		seqOutfh, seqGw, seqW, err := outStream(seqFile, gzipped)
		checkError(err)
		countOutfh, countGw, countW, err := outStream(countFile, gzipped)
		checkError(err)

		checkError(clounitig.WriteClosedUnitigs(closed, seqOutfh, countOutfh))

		checkError(seqOutfh.Flush())
		if seqGw != nil {
			checkError(seqGw.Close())
		}
		checkError(seqW.Close())

		checkError(countOutfh.Flush())
		if countGw != nil {
			checkError(countGw.Close())
		}
		checkError(countW.Close())

		if emitUnik {
			unikFile := outPrefix + ".clo.unik"
			unikOutfh, unikGw, unikW, err := outStream(unikFile, false)
			checkError(err)
			checkError(ctx.WriteUnikSidecar(unikOutfh))
			checkError(unikOutfh.Flush())
			if unikGw != nil {
				checkError(unikGw.Close())
			}
			checkError(unikW.Close())
			if verbose {
				log.Infof("wrote canonical closed k-mer set to %s", unikFile)
			}
		}

		if printStats {
			printSummary(graph, closed)
		}
	},
}

func printSummary(graph *clounitig.Graph, closed []clounitig.ClosedUnitig) {
	nEdges := 0
	for _, n := range graph.Nodes {
		nEdges += len(n.Out)
	}

	var min, max uint32
	if len(closed) > 0 {
		min, max = math.MaxUint32, 0
		for _, cu := range closed {
			if cu.Count < min {
				min = cu.Count
			}
			if cu.Count > max {
				max = cu.Count
			}
		}
	}

	style := &stable.TableStyle{
		Name:      "plain",
		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}
	columns := []stable.Column{
		{Header: "k", Align: stable.AlignRight},
		{Header: "nodes", Align: stable.AlignRight},
		{Header: "edges", Align: stable.AlignRight},
		{Header: "closed unitigs", Align: stable.AlignRight},
		{Header: "min count", Align: stable.AlignRight},
		{Header: "max count", Align: stable.AlignRight},
	}
	tbl := stable.New()
	tbl.HeaderWithFormat(columns)
	tbl.AddRow([]interface{}{
		graph.K,
		humanize.Comma(int64(len(graph.Nodes))),
		humanize.Comma(int64(nEdges)),
		humanize.Comma(int64(len(closed))),
		min,
		max,
	})
	fmt.Print(string(tbl.Render(style)))
}

func init() {
	RootCmd.AddCommand(closeCmd)

	closeCmd.Flags().StringP("out-prefix", "o", "", "output path prefix (default: input file with its extension stripped)")
	closeCmd.Flags().BoolP("no-compress", "C", false, "do not gzip the .clo.fa/.clo.counts sinks")
	closeCmd.Flags().BoolP("emit-unik", "", false, "also write <out-prefix>.clo.unik, the canonical closed k-mer set")
	closeCmd.Flags().BoolP("stats", "", false, "print a summary table to stdout after closing")
}
