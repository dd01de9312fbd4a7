// Package strfq reads FASTQ records whose header carries the repeat annotation of the read
// in both orientations.
//
// The header line holds nine whitespace-delimited fields:
//
//	@name fwdMotif fwdCopies fwdStart fwdEnd revMotif revCopies revStart revEnd
//
// Start and End are a zero-based, half-open interval over the bases of the read in the
// matching orientation.
package strfq

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"strconv"
	"strings"
)

// numHeaderFields is the number of whitespace-delimited fields in an annotated header.
const numHeaderFields int = 9

// Annotation describes the repeat found in one orientation of a read.
type Annotation struct {
	Motif  string
	Copies int
	Start  int // zero-based start of the repeat
	End    int // exclusive end of the repeat
}

// Read is one annotated sequencing read. Qual holds phred+33 characters.
type Read struct {
	Name string
	Fwd  Annotation
	Rev  Annotation
	Seq  []dna.Base
	Qual []byte
}

// ParseHeader splits an annotated header (without the leading '@') into the read name
// and the forward and reverse annotations.
func ParseHeader(header string) (name string, fwd, rev Annotation, err error) {
	words := strings.Fields(header)
	if len(words) != numHeaderFields {
		return "", fwd, rev, fmt.Errorf("expected %d fields in read name, found %d: %s", numHeaderFields, len(words), header)
	}
	name = words[0]
	if fwd, err = parseAnnotation(words[1:5]); err != nil {
		return "", fwd, rev, fmt.Errorf("read %s: %w", name, err)
	}
	if rev, err = parseAnnotation(words[5:9]); err != nil {
		return "", fwd, rev, fmt.Errorf("read %s: %w", name, err)
	}
	return name, fwd, rev, nil
}

func parseAnnotation(words []string) (Annotation, error) {
	var ans Annotation
	var err error
	ans.Motif = words[0]
	if ans.Motif == "" {
		return ans, fmt.Errorf("empty motif")
	}
	if ans.Copies, err = strconv.Atoi(words[1]); err != nil {
		return ans, err
	}
	if ans.Start, err = strconv.Atoi(words[2]); err != nil {
		return ans, err
	}
	if ans.End, err = strconv.Atoi(words[3]); err != nil {
		return ans, err
	}
	return ans, nil
}

// parseRecord builds a Read from the four lines of a FASTQ record.
func parseRecord(header, seq, plus, qual string) (Read, error) {
	var ans Read
	var err error
	if !strings.HasPrefix(header, "@") {
		return ans, fmt.Errorf("header does not begin with '@': %s", header)
	}
	if !strings.HasPrefix(plus, "+") {
		return ans, fmt.Errorf("expected '+' line for %s, found: %s", header, plus)
	}
	if len(seq) != len(qual) {
		return ans, fmt.Errorf("sequence and quality lengths differ (%d != %d) for %s", len(seq), len(qual), header)
	}
	ans.Name, ans.Fwd, ans.Rev, err = ParseHeader(header[1:])
	if err != nil {
		return ans, err
	}
	ans.Seq = dna.StringToBases(seq)
	ans.Qual = []byte(qual)
	return ans, nil
}

// ReverseComplement reverse complements the bases of r in place and reverses its qualities.
// The annotations are left untouched; Rev already describes the reverse complemented read.
func ReverseComplement(r *Read) {
	dna.ReverseComplement(r.Seq)
	for i, j := 0, len(r.Qual)-1; i < j; i, j = i+1, j-1 {
		r.Qual[i], r.Qual[j] = r.Qual[j], r.Qual[i]
	}
}
