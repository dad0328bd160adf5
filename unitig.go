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

import "strings"

// Unitig is a DNA sequence over {A,C,G,T}, treated up to strand: two
// Unitigs are Equal, and have the same Norm (the form used as a map
// key throughout this package), whenever one is the reverse complement
// of the other. Go's == on the raw value is strand-specific. The zero value is not a valid Unitig; construct one
// with NewUnitig.
//
// The underlying representation is the raw (non-canonicalized) forward
// sequence. Canonicalization happens on demand in Norm, Equal and Less
// so that Contains can keep operating on the literal, strand-specific
// text, as required for loop avoidance during closure.
type Unitig string

// NewUnitig validates s and returns the corresponding Unitig. Input is
// upper-cased before validation, so lower-case bases are accepted.
func NewUnitig(s string) (Unitig, error) {
	if len(s) == 0 {
		return "", &InvalidNucleotideInSeqError{Seq: s}
	}
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := upper(s[i])
		if _, ok := complement(b); !ok {
			return "", &InvalidNucleotideError{Nucleotide: s[i]}
		}
		buf[i] = b
	}
	return Unitig(buf), nil
}

// MustUnitig is like NewUnitig but panics on error. Used for constants
// and for substrings taken from an already-validated Unitig, where
// validation can never fail.
func MustUnitig(s string) Unitig {
	u, err := NewUnitig(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the number of bases.
func (u Unitig) Len() int { return len(u) }

// String satisfies fmt.Stringer, returning the raw forward sequence.
func (u Unitig) String() string { return string(u) }

// Slice returns the substring u[i:j] as a Unitig. Since u is already
// validated, the result needs no further validation.
func (u Unitig) Slice(i, j int) Unitig {
	return Unitig(u[i:j])
}

// RevComplement reverses u and complements every base.
func (u Unitig) RevComplement() Unitig {
	n := len(u)
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		c, _ := complement(u[n-1-i]) // safe: u is already validated
		buf[i] = c
	}
	return Unitig(buf)
}

// Norm returns the canonical strand of u: the lexicographically
// smaller of u and its reverse complement.
func (u Unitig) Norm() Unitig {
	rc := u.RevComplement()
	if rc < u {
		return rc
	}
	return u
}

// Contains reports whether x occurs as a contiguous literal substring
// of u, on u's own strand. This is deliberately not canonical: closure
// loop avoidance needs to test both u.Contains(node.kmer) and
// u.Contains(node.complement) separately.
func (u Unitig) Contains(x Unitig) bool {
	return strings.Contains(string(u), string(x))
}

// Equal reports whether u and other name the same unitig up to strand.
func (u Unitig) Equal(other Unitig) bool {
	return u.Norm() == other.Norm()
}

// Less orders u before other using their canonical forms. Suitable for
// sort.Interface implementations that need a deterministic tie-break.
func (u Unitig) Less(other Unitig) bool {
	return u.Norm() < other.Norm()
}

// Concat joins a and b, which must share a (min(|a|,|b|)-1)-length
// overlap between the suffix of a and the prefix of b. The result is a
// followed by the non-overlapping suffix of b.
//
// Mismatched overlap is a programmer error (the graph's own edges
// always guarantee a valid overlap) and panics.
func Concat(a, b Unitig) Unitig {
	overlap := len(a)
	if len(b) < overlap {
		overlap = len(b)
	}
	overlap--
	if overlap < 0 {
		overlap = 0
	}
	if string(a[len(a)-overlap:]) != string(b[:overlap]) {
		panic("clounitig: unitigs " + string(a) + " and " + string(b) + " are not joinable")
	}
	return a + b[overlap:]
}
