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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parseText(t *testing.T, text string) ([]Record, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	return ParseRecords(path)
}

func TestParseRecordsBasic(t *testing.T) {
	records, err := parseText(t, ">ab:Z:5 2 5\nACGTAC\n")
	if err != nil {
		t.Fatalf("ParseRecords: %s", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Seq != "ACGTAC" {
		t.Errorf("Seq = %q, want ACGTAC", r.Seq)
	}
	if len(r.Abundances) != 3 || r.Abundances[0] != 5 || r.Abundances[1] != 2 || r.Abundances[2] != 5 {
		t.Errorf("Abundances = %v, want [5 2 5]", r.Abundances)
	}
	if r.LineNo != 1 {
		t.Errorf("LineNo = %d, want 1", r.LineNo)
	}
}

func TestParseRecordsMultiple(t *testing.T) {
	records, err := parseText(t, ">ab:Z:5\nACGTA\n>ab:Z:7\nTTTTT\n")
	if err != nil {
		t.Fatalf("ParseRecords: %s", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].LineNo != 3 {
		t.Errorf("second record LineNo = %d, want 3", records[1].LineNo)
	}
}

func TestParseRecordsLinks(t *testing.T) {
	records, err := parseText(t, ">ab:Z:7 L:+:1:+ L:-:2:-\nACGTA\n>ab:Z:7\nTACGT\n>ab:Z:7\nGGGGG\n")
	if err != nil {
		t.Fatalf("ParseRecords: %s", err)
	}
	links := records[0].Links
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if !links[0].FromPlus || links[0].Target != 1 || !links[0].ToPlus {
		t.Errorf("link[0] = %+v, want {+,1,+}", links[0])
	}
	if links[1].FromPlus || links[1].Target != 2 || links[1].ToPlus {
		t.Errorf("link[1] = %+v, want {-,2,-}", links[1])
	}
}

func TestParseRecordsMissingAbundance(t *testing.T) {
	_, err := parseText(t, ">no abundance here\nACGTA\n")
	if err == nil {
		t.Fatal("expected a MalformedError for a missing ab:Z: vector")
	}
	if _, ok := err.(*MalformedError); !ok {
		t.Errorf("got %T, want *MalformedError", err)
	}
}

func TestParseRecordsBadHeader(t *testing.T) {
	_, err := parseText(t, "ACGTA\nACGTA\n")
	if err == nil {
		t.Fatal("expected a MalformedError for a header not starting with '>'")
	}
}

func TestParseRecordsLengthMismatch(t *testing.T) {
	// The first record fixes k=5; the second then needs 2+5-1=6 bases.
	_, err := parseText(t, ">ab:Z:5\nACGTA\n>ab:Z:5 5\nACGTA\n")
	if err == nil {
		t.Fatal("expected a MalformedError: sequence length does not match the abundance vector")
	}
}

func TestParseRecordsTrailingHeader(t *testing.T) {
	_, err := parseText(t, ">ab:Z:5\n")
	if err == nil {
		t.Fatal("expected a MalformedError for a header with no following sequence line")
	}
}

func TestMalformedErrorMessageIncludesLine(t *testing.T) {
	err := &MalformedError{Line: 42, Message: "boom"}
	got := err.Error()
	if !strings.Contains(got, "line 42") {
		t.Fatalf("Error() = %q, want it to mention line 42", got)
	}
}
