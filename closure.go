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

// ClosedUnitig is one produced closed unitig: its sequence, exactly as
// grown and shrunk (no strand normalization), and its support.
type ClosedUnitig struct {
	Seq   Unitig
	Count uint32
}

// ClosureContext holds the mutable state threaded through a closure
// run: the support memo, the set of k-mers already claimed by some
// closed unitig, and the deduplicated output collection. It is created
// fresh per run rather than living in package globals, per the
// project's "explicit ClosureContext value" design note.
type ClosureContext struct {
	graph     *Graph
	Supp      *Memo
	closed    map[Unitig]bool
	ClosedOut map[Unitig]ClosedUnitig // keyed by canonical form, for dedup
}

// NewClosureContext seeds supp with every node's own count and
// marks every node's k-mer as not yet closed.
func NewClosureContext(g *Graph) *ClosureContext {
	ctx := &ClosureContext{
		graph:     g,
		Supp:      NewMemo(g.K),
		closed:    make(map[Unitig]bool, len(g.Nodes)),
		ClosedOut: make(map[Unitig]ClosedUnitig),
	}
	for _, n := range g.Nodes {
		ctx.Supp.Seed(n.Kmer, n.Count)
		ctx.closed[n.Kmer.Norm()] = false
	}
	return ctx
}

func (ctx *ClosureContext) isClosed(u Unitig) bool { return ctx.closed[u.Norm()] }
func (ctx *ClosureContext) markClosed(u Unitig)    { ctx.closed[u.Norm()] = true }

// Run executes the main closure loop: for every node not yet claimed
// by a previous closure, grow it bidirectionally, shrink it, and
// record the result.
func (ctx *ClosureContext) Run() {
	for i := range ctx.graph.Nodes {
		node := &ctx.graph.Nodes[i]
		if ctx.isClosed(node.Kmer) {
			continue
		}
		m := ctx.closure(node.Kmer, i, true, i, true)
		seq, count := ctx.shrink(m)
		ctx.ClosedOut[seq.Norm()] = ClosedUnitig{Seq: seq, Count: count}
	}
}

// closure grows m bidirectionally from the seed endpoints
// (firstNode, firstDir) and (lastNode, lastDir): right extension is
// attempted before left, the first qualifying edge wins (no
// backtracking), and extension stops as soon as no edge on either side
// has abundance >= the current support.
func (ctx *ClosureContext) closure(m Unitig, firstNode int, firstDir bool, lastNode int, lastDir bool) Unitig {
	nodes := ctx.graph.Nodes

outer:
	for {
		s := ctx.Supp.Support(m)

		last := nodes[lastNode]
		for _, e := range last.Out {
			if e.Start != lastDir {
				continue
			}
			cand := nodes[e.To]
			if m.Contains(cand.Kmer) || m.Contains(cand.Complement) {
				continue // loop avoidance
			}
			joining := cand.Complement
			if e.End {
				joining = cand.Kmer
			}
			if cand.Count < s {
				continue
			}
			if cand.Count == s {
				ctx.markClosed(joining)
			}
			m = Concat(m, joining)
			lastNode, lastDir = e.To, e.End
			continue outer
		}

		first := nodes[firstNode]
		for _, e := range first.In {
			if e.Start != firstDir {
				continue
			}
			cand := nodes[e.To]
			if m.Contains(cand.Kmer) || m.Contains(cand.Complement) {
				continue
			}
			joining := cand.Complement
			if e.End {
				joining = cand.Kmer
			}
			if cand.Count < s {
				continue
			}
			if cand.Count == s {
				ctx.markClosed(joining)
			}
			m = Concat(joining, m)
			firstNode, firstDir = e.To, e.End
			continue outer
		}

		break
	}

	ctx.markClosed(m)
	return m
}

// shrink trims the endpoints of a closed unitig whose local support
// strictly exceeds the whole unitig's support. If the trimming loops
// would otherwise leave an empty result (which cannot happen for
// well-formed input, since the seed k-mer's own support always
// matches), u is returned unchanged rather than an empty unitig.
func (ctx *ClosureContext) shrink(u Unitig) (Unitig, uint32) {
	k := ctx.graph.K
	s := ctx.Supp.Support(u)

	a, b := 0, u.Len()
	for a+k < b && ctx.Supp.Support(u.Slice(a, a+k)) > s {
		a++
	}
	for b >= k && ctx.Supp.Support(u.Slice(b-k, b)) > s {
		b--
	}
	if a >= b {
		return u, s
	}
	return u.Slice(a, b), s
}
