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
	"io"

	"github.com/shenwei356/unik/v5"
)

// WriteUnikSidecar writes the canonical k-mer set covered by the
// closure — every k-mer ever marked closed, i.e. claimed by some
// closed unitig — to w in the shared .unik binary format, so the
// result composes with other k-mer-set tooling's set operations
// (inter/union/diff on .unik files) without re-parsing FASTA.
func (ctx *ClosureContext) WriteUnikSidecar(w io.Writer) error {
	writer, err := unik.NewWriter(w, ctx.graph.K, unik.UNIK_CANONICAL)
	if err != nil {
		return err
	}
	for kmer, isClosed := range ctx.closed {
		if !isClosed || kmer.Len() != ctx.graph.K {
			continue // only single k-mers belong in a .unik file, not whole closed unitigs
		}
		if err := writer.WriteKmer([]byte(kmer)); err != nil {
			return err
		}
	}
	return nil
}
