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

package clounitig

import (
	"fmt"
	"io"
	"sort"

	"github.com/twotwotwo/sorts"
)

// parallelSortThreshold is the result-set size above which the
// ascending-by-count sort uses the parallel quicksort from
// github.com/twotwotwo/sorts instead of sort.Sort, reserving that
// package for large in-memory sorts rather than paying its fixed
// goroutine-fan-out overhead on small ones.
const parallelSortThreshold = 1 << 12

// byCount sorts ClosedUnitigs by ascending support count; a stable
// tie-break is not required.
type byCount []ClosedUnitig

func (s byCount) Len() int           { return len(s) }
func (s byCount) Less(i, j int) bool { return s[i].Count < s[j].Count }
func (s byCount) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sorted returns every closed unitig produced by a Run, sorted by
// ascending count.
func (ctx *ClosureContext) Sorted() []ClosedUnitig {
	out := make([]ClosedUnitig, 0, len(ctx.ClosedOut))
	for _, cu := range ctx.ClosedOut {
		out = append(out, cu)
	}
	if len(out) >= parallelSortThreshold {
		sorts.Quicksort(byCount(out))
	} else {
		sort.Sort(byCount(out))
	}
	return out
}

// WriteClosedUnitigs writes closed unitigs in the order given (Sorted
// returns them in ascending-count order; this function does not sort)
// to two sinks: seqW gets a bare '>' header followed by the raw sequence
// for each unitig (no strand normalization at output), countW gets one
// count per line, positionally aligned with seqW.
func WriteClosedUnitigs(closed []ClosedUnitig, seqW, countW io.Writer) error {
	for _, cu := range closed {
		if _, err := fmt.Fprintf(seqW, ">\n%s\n", cu.Seq); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(countW, "%d\n", cu.Count); err != nil {
			return err
		}
	}
	return nil
}
