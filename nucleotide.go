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

// Package clounitig implements the de Bruijn graph model and closure
// algorithm used to turn a compacted, abundance-annotated graph into
// closed unitigs: maximal paths of uniform k-mer support.
package clounitig

import "fmt"

// InvalidNucleotideError reports a byte that is not one of A, C, G, T
// (after upper-casing).
type InvalidNucleotideError struct {
	Nucleotide byte
}

func (e *InvalidNucleotideError) Error() string {
	return fmt.Sprintf("clounitig: unknown nucleotide %q", e.Nucleotide)
}

// InvalidNucleotideInSeqError wraps InvalidNucleotideError with the
// offending sequence for contexts where the whole string is useful in
// a diagnostic.
type InvalidNucleotideInSeqError struct {
	Nucleotide byte
	Seq        string
}

func (e *InvalidNucleotideInSeqError) Error() string {
	return fmt.Sprintf("clounitig: unknown nucleotide %q into sequence %q", e.Nucleotide, e.Seq)
}

// complement maps a single upper-case base to its Watson-Crick partner.
// ok is false for anything outside {A,C,G,T}.
func complement(b byte) (byte, bool) {
	switch b {
	case 'A':
		return 'T', true
	case 'C':
		return 'G', true
	case 'G':
		return 'C', true
	case 'T':
		return 'A', true
	default:
		return 0, false
	}
}

// upper upper-cases ASCII letters; used to case-normalize input before
// validation, per spec: "lower -> upper before validation".
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
