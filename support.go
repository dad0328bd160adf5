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

// Memo is the support memoization table: a map from a unitig's
// canonical form to its support (the minimum abundance over its
// constituent k-mers). Keys are normalized internally so the memo
// behaves like a strand-insensitive map without requiring a custom
// hash map implementation.
type Memo struct {
	k     int
	table map[Unitig]uint32
}

// NewMemo returns an empty memo for k-mer length k.
func NewMemo(k int) *Memo {
	return &Memo{k: k, table: make(map[Unitig]uint32)}
}

// Seed records a k-mer's count directly, as the support of a
// length-k unitig is its own count by definition. Called once per
// graph node before closure begins.
func (m *Memo) Seed(kmer Unitig, count uint32) {
	m.table[kmer.Norm()] = count
}

// Support returns the support of u: if u has already been memoized,
// the stored value; otherwise the minimum count over all length-k
// substrings of u (0 for any substring not yet known, meaning an
// unknown k-mer), memoizing the result before returning it.
func (m *Memo) Support(u Unitig) uint32 {
	key := u.Norm()
	if s, ok := m.table[key]; ok {
		return s
	}

	k := m.k
	var s uint32
	if u.Len() >= k {
		first := true
		for i := 0; i+k <= u.Len(); i++ {
			sub := u.Slice(i, i+k)
			c := m.table[sub.Norm()] // missing entry contributes 0
			if first || c < s {
				s = c
				first = false
			}
		}
	}

	m.table[key] = s
	return s
}
