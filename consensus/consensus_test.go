package consensus

import (
	"github.com/dasnellings/strMerge/config"
	"github.com/vertgenlab/gonomics/dna"
	"strings"
	"testing"
)

type alignTest struct {
	name       string
	seq1       string
	qual1      string
	seq2       string
	qual2      string
	rightFlank bool
	expSeq     string
	expQual    string
	expGaps    int
	expMatch   int
	expMis     int
}

const (
	x = "ACGTCAGT"
	y = "GATCCTGA"
)

var alignTests = []alignTest{
	{
		name: "self merge left", seq1: "ACGTAC", qual1: "I5I5I5", seq2: "ACGTAC", qual2: "5I5I5I",
		expSeq: "ACGTAC", expQual: "IIIIII", expMatch: 6,
	},
	{
		name: "self merge right", seq1: "ACGTAC", qual1: "I5I5I5", seq2: "ACGTAC", qual2: "5I5I5I", rightFlank: true,
		expSeq: "ACGTAC", expQual: "IIIIII", expMatch: 6,
	},
	{
		name: "mismatch keeps second when higher quality", seq1: "ACGTA", qual1: "II#II", seq2: "ACCTA", qual2: "IIIII",
		expSeq: "ACCTA", expQual: "IIIII", expMatch: 4, expMis: 1,
	},
	{
		name: "mismatch keeps first when higher quality", seq1: "ACGTA", qual1: "IIIII", seq2: "ACCTA", qual2: "II#II",
		expSeq: "ACGTA", expQual: "IIIII", expMatch: 4, expMis: 1,
	},
	{
		name: "mismatch tie keeps first", seq1: "ACGTA", qual1: "IIIII", seq2: "ACCTA", qual2: "IIIII",
		expSeq: "ACGTA", expQual: "IIIII", expMatch: 4, expMis: 1,
	},
	{
		name: "high quality gapped base kept", seq1: x + "C" + y, qual1: strings.Repeat("I", 17), seq2: x + y, qual2: strings.Repeat("I", 16),
		expSeq: x + "C" + y, expQual: strings.Repeat("I", 17), expGaps: 1, expMatch: 16,
	},
	{
		name: "gapped base just above threshold kept", seq1: x + "C" + y, qual1: strings.Repeat("I", 8) + "6" + strings.Repeat("I", 8), seq2: x + y, qual2: strings.Repeat("I", 16),
		expSeq: x + "C" + y, expQual: strings.Repeat("I", 8) + "6" + strings.Repeat("I", 8), expGaps: 1, expMatch: 16,
	},
	{
		name: "gapped base at threshold dropped", seq1: x + "C" + y, qual1: strings.Repeat("I", 8) + "5" + strings.Repeat("I", 8), seq2: x + y, qual2: strings.Repeat("I", 16),
		expSeq: x + y, expQual: strings.Repeat("I", 16), expGaps: 1, expMatch: 16,
	},
	{
		name: "low quality gapped base dropped", seq1: x + "C" + y, qual1: strings.Repeat("I", 8) + "#" + strings.Repeat("I", 8), seq2: x + y, qual2: strings.Repeat("I", 16),
		expSeq: x + y, expQual: strings.Repeat("I", 16), expGaps: 1, expMatch: 16,
	},
	{
		name: "right flank gaps come from the alignment offset", seq1: x + y, qual1: strings.Repeat("I", 16), seq2: x + "C" + y, qual2: strings.Repeat("I", 8) + "#" + strings.Repeat("I", 8), rightFlank: true,
		expSeq: x + y, expQual: strings.Repeat("I", 16), expMatch: 16,
	},
	{
		name: "right flank keeps overhang of longer flank", seq1: "ACGTCAGTGG", qual1: strings.Repeat("I", 10), seq2: "ACGTCAGT", qual2: strings.Repeat("I", 8), rightFlank: true,
		expSeq: "ACGTCAGTGG", expQual: strings.Repeat("I", 10), expMatch: 8,
	},
	{
		name: "right flank drops unaligned start", seq1: "TTACGTCAGTGATC", qual1: strings.Repeat("I", 14), seq2: "ACGTCAGTGATC", qual2: strings.Repeat("I", 12), rightFlank: true,
		expSeq: "ACGTCAGTGATC", expQual: strings.Repeat("I", 12), expGaps: 2, expMatch: 12,
	},
	{
		// alignment ends at i=11, j=9 so the overhang must start at seq1[11:]
		name: "right flank overhang starts after aligned cell of longer flank", seq1: "GGACGTCAGTTTT", qual1: strings.Repeat("I", 13), seq2: "ACGTCAGTT", qual2: strings.Repeat("I", 9), rightFlank: true,
		expSeq: "ACGTCAGTTTT", expQual: strings.Repeat("I", 11), expGaps: 2, expMatch: 9,
	},
	{
		name: "one base left flanks never align", seq1: "A", qual1: "I", seq2: "C", qual2: "#",
		expSeq: "C", expQual: "#",
	},
	{
		name: "one base right flanks never align", seq1: "A", qual1: "I", seq2: "C", qual2: "#", rightFlank: true,
		expSeq: "", expQual: "",
	},
	{
		name: "left flank keeps prefix of longer flank", seq1: "GTCAGT", qual1: strings.Repeat("I", 6), seq2: "AAGTCAGT", qual2: strings.Repeat("#", 2) + strings.Repeat("I", 6),
		expSeq: "AAGTCAGT", expQual: "##IIIIII", expMatch: 6,
	},
	{
		name: "left flank counts unaligned end of second flank", seq1: "ACGTCAGTGATC", qual1: strings.Repeat("I", 12), seq2: "ACGTCAGTGATCTT", qual2: strings.Repeat("I", 14),
		expSeq: "ACGTCAGTGATC", expQual: strings.Repeat("I", 12), expGaps: 2, expMatch: 12,
	},
	{
		// the two ungapped blocks score equally; the later one must win
		name: "last best cell wins", seq1: x + "CCC" + y, qual1: strings.Repeat("I", 19), seq2: x + y, qual2: strings.Repeat("I", 16),
		expSeq: x + "CCC" + y, expQual: strings.Repeat("I", 19), expMatch: 8,
	},
	{
		name: "nothing aligns", seq1: "AAAAAAAA", qual1: strings.Repeat("I", 8), seq2: "CCCCCCCC", qual2: strings.Repeat("I", 8),
		expSeq: "CCCCCCCC", expQual: strings.Repeat("I", 8),
	},
}

func TestAlign(t *testing.T) {
	a := NewAligner(config.Default())
	for _, test := range alignTests {
		res := a.Align(dna.StringToBases(test.seq1), []byte(test.qual1), dna.StringToBases(test.seq2), []byte(test.qual2), test.rightFlank)
		if dna.BasesToString(res.Seq) != test.expSeq || string(res.Qual) != test.expQual {
			t.Errorf("%s: expected %s %s, found %s %s", test.name, test.expSeq, test.expQual, dna.BasesToString(res.Seq), res.Qual)
		}
		if res.Gaps != test.expGaps || res.Matches != test.expMatch || res.Mismatches != test.expMis {
			t.Errorf("%s: expected gaps=%d matches=%d mismatches=%d, found gaps=%d matches=%d mismatches=%d",
				test.name, test.expGaps, test.expMatch, test.expMis, res.Gaps, res.Matches, res.Mismatches)
		}
		if len(res.Seq) != len(res.Qual) {
			t.Errorf("%s: sequence and quality lengths differ", test.name)
		}
	}
}

func TestAlignerReuse(t *testing.T) {
	reused := NewAligner(config.Default())
	// run the table backwards so the scratch matrices shrink and grow between calls
	for i := len(alignTests) - 1; i >= 0; i-- {
		test := alignTests[i]
		fresh := NewAligner(config.Default())
		a := reused.Align(dna.StringToBases(test.seq1), []byte(test.qual1), dna.StringToBases(test.seq2), []byte(test.qual2), test.rightFlank)
		b := fresh.Align(dna.StringToBases(test.seq1), []byte(test.qual1), dna.StringToBases(test.seq2), []byte(test.qual2), test.rightFlank)
		if dna.BasesToString(a.Seq) != dna.BasesToString(b.Seq) || string(a.Qual) != string(b.Qual) || a.Gaps != b.Gaps || a.Matches != b.Matches || a.Mismatches != b.Mismatches {
			t.Errorf("%s: reused aligner disagrees with fresh aligner", test.name)
		}
	}
}

func TestAlignEmpty(t *testing.T) {
	a := NewAligner(config.Default())
	res := a.Align(nil, nil, dna.StringToBases("ACGT"), []byte("IIII"), false)
	if _, ok := res.PercentIdentity(); ok {
		t.Error("identity should be undefined for an empty alignment")
	}
	if a.Accept(res, "left") {
		t.Error("empty alignment accepted")
	}
}

func TestOneBaseFlanksRejected(t *testing.T) {
	a := NewAligner(config.Default())
	for _, rightFlank := range []bool{false, true} {
		res := a.Align(dna.StringToBases("A"), []byte("I"), dna.StringToBases("C"), []byte("#"), rightFlank)
		if _, ok := res.PercentIdentity(); ok {
			t.Errorf("rightFlank=%v: identity should be undefined", rightFlank)
		}
		if a.Accept(res, "left") {
			t.Errorf("rightFlank=%v: one base flanks accepted", rightFlank)
		}
	}
}

func TestPercentIdentity(t *testing.T) {
	tests := []struct {
		res    Result
		expPid float64
		expOk  bool
	}{
		{Result{Matches: 10}, 100, true},
		{Result{Matches: 9, Mismatches: 1}, 90, true},
		{Result{Matches: 1, Mismatches: 3}, 25, true},
		{Result{}, 0, false},
	}
	for _, test := range tests {
		pid, ok := test.res.PercentIdentity()
		if pid != test.expPid || ok != test.expOk {
			t.Errorf("%+v: expected %v %v, found %v %v", test.res, test.expPid, test.expOk, pid, ok)
		}
	}
}

func TestAccept(t *testing.T) {
	a := NewAligner(config.Default())
	tests := []struct {
		res Result
		exp bool
	}{
		{Result{Matches: 10}, true},
		{Result{Matches: 9, Mismatches: 1}, true},
		{Result{Matches: 9, Mismatches: 1, Gaps: 2}, true},
		{Result{Matches: 8, Mismatches: 1, Gaps: 3}, false},
		{Result{Matches: 17, Mismatches: 2}, false},
		{Result{Gaps: 0}, false},
	}
	for _, test := range tests {
		if a.Accept(test.res, "left") != test.exp {
			t.Errorf("%+v: expected accept=%v", test.res, test.exp)
		}
	}
}
