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

// Package format parses the line-oriented, BCALM-style annotated FASTA
// grammar described in the project's input specification: pairs of a
// header line (`>ab:Z:<counts> [L:s:t:e]*`) and a sequence line. It
// knows nothing about nucleotide validity or graph semantics — those
// belong to the clounitig package — only about the shape of the text.
package format

import "fmt"

// MalformedError reports that the input does not match the line-pair
// grammar: a missing '>', a missing ab:Z: token, an unparsable
// integer, or a sequence/abundance-vector length mismatch.
type MalformedError struct {
	Line    int
	Message string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Message)
}
