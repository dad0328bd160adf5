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

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shenwei356/breader"
)

var (
	abundanceRe = regexp.MustCompile(`ab:Z:(\d+(?: \d+)*)`)
	linkRe      = regexp.MustCompile(`L:([+-]):(\d+):([+-])`)
)

// ParseRecords reads file and returns the Records it describes, in
// file order. file is opened with breader, a buffered-line reader.
//
// k is inferred from the first record (sequence length minus
// abundance-vector length, plus one). Every later record's sequence
// length is checked against that k, and a record whose length does not
// match is reported as a MalformedError.
func ParseRecords(file string) ([]Record, error) {
	reader, err := breader.NewDefaultBufferedReader(file)
	if err != nil {
		return nil, err
	}

	var lines []string
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, chunk.Err
		}
		for _, d := range chunk.Data {
			lines = append(lines, d.(string))
		}
	}

	if len(lines)%2 != 0 {
		return nil, &MalformedError{Line: len(lines), Message: "sequence line missing for trailing header"}
	}

	records := make([]Record, 0, len(lines)/2)
	k := 0
	for i := 0; i < len(lines); i += 2 {
		header := lines[i]
		seq := lines[i+1]
		lineNo := i + 1

		if !strings.HasPrefix(header, ">") {
			return nil, &MalformedError{Line: lineNo, Message: fmt.Sprintf("header line must start with '>': %q", header)}
		}

		m := abundanceRe.FindStringSubmatch(header)
		if m == nil {
			return nil, &MalformedError{Line: lineNo, Message: "missing ab:Z: abundance vector"}
		}
		fields := strings.Fields(m[1])
		abundances := make([]uint32, len(fields))
		for j, f := range fields {
			n, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Message: fmt.Sprintf("invalid abundance %q: %s", f, err)}
			}
			abundances[j] = uint32(n)
		}

		if k == 0 {
			k = len(seq) - len(abundances) + 1
			if k < 1 {
				return nil, &MalformedError{Line: lineNo, Message: fmt.Sprintf("sequence of length %d too short for %d abundances", len(seq), len(abundances))}
			}
		}
		if want := len(abundances) + k - 1; len(seq) != want {
			return nil, &MalformedError{Line: lineNo, Message: fmt.Sprintf("sequence length %d does not match ab:Z: vector (want %d for k=%d)", len(seq), want, k)}
		}

		var links []Link
		for _, lm := range linkRe.FindAllStringSubmatch(header, -1) {
			target, err := strconv.Atoi(lm[2])
			if err != nil {
				return nil, &MalformedError{Line: lineNo, Message: fmt.Sprintf("invalid link target %q: %s", lm[2], err)}
			}
			links = append(links, Link{
				FromPlus: lm[1] == "+",
				Target:   target,
				ToPlus:   lm[3] == "+",
			})
		}

		records = append(records, Record{
			LineNo:     lineNo,
			Seq:        seq,
			Abundances: abundances,
			Links:      links,
		})
	}

	return records, nil
}
