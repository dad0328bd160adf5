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

	"github.com/pkg/errors"

	"github.com/DPDmancul/closed-unitigs/format"
)

// Edge is a directed arc between two node indices. Start and End say
// which strand the arc departs the source on and arrives at the
// target on (true = forward, false = reverse).
type Edge struct {
	To         int
	Start, End bool
}

// Node is one k-mer produced by the graph builder.
type Node struct {
	// Kmer is the k-mer on the forward strand.
	Kmer Unitig
	// Complement is the cached reverse complement of Kmer.
	Complement Unitig
	// Count is the k-mer's observed abundance.
	Count uint32
	Out   []Edge
	In    []Edge
}

// Graph is a compacted de Bruijn graph: an ordered, stable-indexed
// node list plus the shared k-mer length k. It is built once from the
// input stream and is read-only afterwards.
type Graph struct {
	K     int
	Nodes []Node
}

// nodeRange records the node-index span [First, Last] of a single
// input record's k-mers, used to resolve inter-unitig links.
type nodeRange struct {
	First, Last int
}

// pendingLink is an unresolved L:s:t:e token, recorded during the node
// pass and resolved once every record's node range is known.
type pendingLink struct {
	fromRec, toRec int
	fromPlus       bool
	toPlus         bool
}

// Build constructs a Graph from parsed input records, per the
// construction algorithm: one node per k-mer, forward+reverse chaining
// inside each record's unitig, and inter-unitig edges resolved from
// each record's L: tokens after every record has been appended.
//
// A record whose sequence contains a byte outside {A,C,G,T} aborts the
// whole build with the offending line number attached, per the
// propagation policy: the graph layer enriches nucleotide errors with
// line context rather than letting them surface bare.
func Build(records []format.Record) (*Graph, error) {
	g := &Graph{}
	ranges := make([]nodeRange, len(records))
	var pending []pendingLink

	for recIdx, rec := range records {
		m := len(rec.Abundances)
		if g.K == 0 {
			g.K = len(rec.Seq) - m + 1
		}
		k := g.K

		first := len(g.Nodes)
		for i := 0; i < m; i++ {
			kmerStr := rec.Seq[i : i+k]
			kmer, err := NewUnitig(kmerStr)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", rec.LineNo)
			}
			g.Nodes = append(g.Nodes, Node{
				Kmer:       kmer,
				Complement: kmer.RevComplement(),
				Count:      rec.Abundances[i],
			})
		}
		last := len(g.Nodes) - 1
		ranges[recIdx] = nodeRange{First: first, Last: last}

		// Chain k-mers inside the unitig, forward and reverse strand.
		for i := first; i < last; i++ {
			g.Nodes[i].Out = append(g.Nodes[i].Out, Edge{To: i + 1, Start: true, End: true})
			g.Nodes[i+1].In = append(g.Nodes[i+1].In, Edge{To: i, Start: false, End: false})

			g.Nodes[i+1].Out = append(g.Nodes[i+1].Out, Edge{To: i, Start: false, End: false})
			g.Nodes[i].In = append(g.Nodes[i].In, Edge{To: i + 1, Start: true, End: true})
		}

		for _, l := range rec.Links {
			pending = append(pending, pendingLink{
				fromRec:  recIdx,
				toRec:    l.Target,
				fromPlus: l.FromPlus,
				toPlus:   l.ToPlus,
			})
		}
	}

	for _, l := range pending {
		if l.toRec < 0 || l.toRec >= len(ranges) {
			return nil, fmt.Errorf("clounitig: link target record %d out of range", l.toRec)
		}
		fromRange := ranges[l.fromRec]
		toRange := ranges[l.toRec]

		fromNode := fromRange.First
		if l.fromPlus {
			fromNode = fromRange.Last
		}
		toNode := toRange.Last
		if l.toPlus {
			toNode = toRange.First
		}

		if fromNode == toNode {
			continue // no self-loops
		}

		g.Nodes[fromNode].Out = append(g.Nodes[fromNode].Out, Edge{To: toNode, Start: l.fromPlus, End: l.toPlus})
		g.Nodes[toNode].In = append(g.Nodes[toNode].In, Edge{To: fromNode, Start: l.toPlus, End: l.fromPlus})
	}

	return g, nil
}
