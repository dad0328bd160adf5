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
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/DPDmancul/closed-unitigs/format"
)

// closeText writes text to a temp file and runs the full pipeline
// (parse, build, close) over it, returning the sorted closed unitigs.
func closeText(t *testing.T, text string) []ClosedUnitig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	records, err := format.ParseRecords(path)
	if err != nil {
		t.Fatalf("ParseRecords: %s", err)
	}
	g, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %s", err)
	}
	ctx := NewClosureContext(g)
	ctx.Run()
	return ctx.Sorted()
}

func mustFind(t *testing.T, closed []ClosedUnitig, seq string, count uint32) {
	t.Helper()
	want := MustUnitig(seq)
	for _, cu := range closed {
		if cu.Seq.Equal(want) && cu.Count == count {
			return
		}
	}
	t.Errorf("expected closed unitig %q (count %d) in %v", seq, count, closed)
}

func TestSingleNodeClosesToItself(t *testing.T) {
	closed := closeText(t, ">ab:Z:5\nACGTA\n")
	if len(closed) != 1 {
		t.Fatalf("got %d closed unitigs, want 1: %v", len(closed), closed)
	}
	mustFind(t, closed, "ACGTA", 5)
}

func TestUniformSupportClosesToWholeUnitig(t *testing.T) {
	closed := closeText(t, ">ab:Z:3 3 3\nACGTAC\n")
	if len(closed) != 1 {
		t.Fatalf("got %d closed unitigs, want 1: %v", len(closed), closed)
	}
	mustFind(t, closed, "ACGTAC", 3)
}

// A support drop inside a unitig blocks any closure from spanning it:
// three closed unitigs, each with its own count.
func TestSupportDropProducesThreeClosures(t *testing.T) {
	closed := closeText(t, ">ab:Z:5 2 5\nACGTAC\n")
	if len(closed) != 3 {
		t.Fatalf("got %d closed unitigs, want 3: %v", len(closed), closed)
	}
	mustFind(t, closed, "ACGT", 5)
	mustFind(t, closed, "CGTA", 2)
	mustFind(t, closed, "GTAC", 5)
}

// Strand-equivalent single-k-mer records with equal counts dedup to a
// single output line.
func TestStrandEquivalentRecordsDedup(t *testing.T) {
	closed := closeText(t, ">ab:Z:5\nACGTA\n>ab:Z:5\nTACGT\n")
	if len(closed) != 1 {
		t.Fatalf("got %d closed unitigs, want 1 (strand dedup): %v", len(closed), closed)
	}
	if closed[0].Count != 5 {
		t.Errorf("count = %d, want 5", closed[0].Count)
	}
}

// Two unitigs joined by a link grow into one closed unitig across the
// link, provided loop avoidance permits.
func TestClosureGrowsAcrossLink(t *testing.T) {
	closed := closeText(t, ">ab:Z:7 L:+:1:+\nACGTA\n>ab:Z:7\nCGTAC\n")
	if len(closed) != 1 {
		t.Fatalf("got %d closed unitigs, want 1: %v", len(closed), closed)
	}
	mustFind(t, closed, "ACGTAC", 7)
}

// Shrink trims a higher-support extremity back to the core region once
// a closure has grown across it.
func TestShrinkTrimsHigherSupportExtremity(t *testing.T) {
	closed := closeText(t, ">ab:Z:9 3 9\nACGTAC\n")
	mustFind(t, closed, "CGTA", 3)
}

func TestNoDuplicateOutputs(t *testing.T) {
	closed := closeText(t, ">ab:Z:5\nACGTA\n>ab:Z:5\nTACGT\n>ab:Z:5\nACGTA\n")
	seen := map[Unitig]bool{}
	for _, cu := range closed {
		key := cu.Seq.Norm()
		if seen[key] {
			t.Fatalf("duplicate output for %q", cu.Seq)
		}
		seen[key] = true
	}
}

func TestOutputOrderNonDecreasing(t *testing.T) {
	closed := closeText(t, ">ab:Z:5 2 5\nACGTAC\n")
	if !sort.SliceIsSorted(closed, func(i, j int) bool { return closed[i].Count < closed[j].Count }) {
		t.Fatalf("closed unitigs not sorted ascending by count: %v", closed)
	}
}

// Every length-k substring of a closed unitig has support >= its
// reported count, and at least one has support exactly equal to it.
func TestClosureUniformity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(">ab:Z:9 3 9\nACGTAC\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	records, err := format.ParseRecords(path)
	if err != nil {
		t.Fatalf("ParseRecords: %s", err)
	}
	g, err := Build(records)
	if err != nil {
		t.Fatalf("Build: %s", err)
	}
	ctx := NewClosureContext(g)
	ctx.Run()

	for _, cu := range ctx.Sorted() {
		sawEqual := false
		for i := 0; i+g.K <= cu.Seq.Len(); i++ {
			s := ctx.Supp.Support(cu.Seq.Slice(i, i+g.K))
			if s < cu.Count {
				t.Errorf("substring %q of %q has support %d < reported count %d", cu.Seq.Slice(i, i+g.K), cu.Seq, s, cu.Count)
			}
			if s == cu.Count {
				sawEqual = true
			}
		}
		if !sawEqual {
			t.Errorf("no substring of %q has support exactly %d", cu.Seq, cu.Count)
		}
	}
}
