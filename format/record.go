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

package format

// Link is one `L:s:t:e` token: an inter-unitig edge declared on a
// record's header line.
type Link struct {
	// FromPlus is the strand ('s') the edge departs the owning record
	// on: true for '+', false for '-'.
	FromPlus bool
	// Target is the 0-based index, within the same file, of the record
	// this link points to.
	Target int
	// ToPlus is the strand ('e') the edge arrives on.
	ToPlus bool
}

// Record is one header+sequence line pair, after grammar parsing but
// before graph construction. Seq is the raw sequence text, neither
// upper-cased nor validated against the nucleotide alphabet — that is
// the graph builder's job.
type Record struct {
	// LineNo is the 1-based line number of the header line.
	LineNo int
	// Seq is the raw sequence line.
	Seq string
	// Abundances is the ab:Z: vector, length m.
	Abundances []uint32
	// Links are the L:s:t:e tokens found on the header line, in the
	// order they appear.
	Links []Link
}
