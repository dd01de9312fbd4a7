// Package consensus locally aligns the flanks of a repeat and builds a quality weighted
// consensus of the aligned bases.
package consensus

import (
	"github.com/dasnellings/strMerge/config"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/numbers"
	"golang.org/x/exp/slices"
	"log"
)

// Scoring used by the local alignment.
const (
	match    int = 1
	mismatch int = -1
	gap      int = -3
)

// MinGapQual is the exclusive lower bound on the quality of a gapped base for it to be
// kept in the consensus. Gapped bases at or below this quality are dropped.
const MinGapQual byte = '5'

// Thresholds an alignment must meet for the two flanks to be merged.
const (
	MinPercentIdentity float64 = 90.0
	MaxGaps            int     = 2
)

// traceback directions
const (
	diag  uint8 = iota // consume a base from both sequences
	left               // consume a base from the first sequence
	up                 // consume a base from the second sequence
)

// Result is the consensus of two aligned flanks.
type Result struct {
	Seq        []dna.Base
	Qual       []byte
	Gaps       int
	Matches    int
	Mismatches int
}

// PercentIdentity returns matches / (matches + mismatches) * 100. ok is false when no
// aligned column was found, in which case the identity is undefined and 0 is returned.
func (r Result) PercentIdentity() (pid float64, ok bool) {
	if r.Matches+r.Mismatches == 0 {
		return 0, false
	}
	return float64(r.Matches) * 100 / float64(r.Matches+r.Mismatches), true
}

// Aligner owns the scratch matrices reused across calls to Align. An Aligner is not safe
// for concurrent use.
type Aligner struct {
	cfg   config.Config
	score []int   // (len1+1)*(len2+1) scores, row major
	trace []uint8 // traceback direction for each cell of score
	seq   []dna.Base
	qual  []byte
}

func NewAligner(cfg config.Config) *Aligner {
	return &Aligner{cfg: cfg}
}

func (a *Aligner) reset(n, m int) {
	size := (n + 1) * (m + 1)
	if cap(a.score) < size {
		a.score = slices.Grow(a.score[:0], size)
		a.trace = slices.Grow(a.trace[:0], size)
	}
	a.score = a.score[:size]
	a.trace = a.trace[:size]
	for i := range a.score {
		a.score[i] = 0
		a.trace[i] = diag
	}
	a.seq = a.seq[:0]
	a.qual = a.qual[:0]
}

// Align locally aligns (seq1, qual1) with (seq2, qual2) and returns their consensus.
//
// At each aligned column the base with the higher quality is kept, with ties going to seq1.
// A gapped base is kept only if its quality is above MinGapQual.
//
// For a left flank (rightFlank false) the alignment is anchored toward the start of the
// flanks: bases before the aligned region are copied from the longer flank and the unaligned
// bases of seq2 after it are counted as gaps. For a right flank the bases after the aligned
// region are copied from the longer flank and the gap count is the offset between the two
// flanks at the start of the alignment.
func (a *Aligner) Align(seq1 []dna.Base, qual1 []byte, seq2 []dna.Base, qual2 []byte, rightFlank bool) Result {
	n, m := len(seq1), len(seq2)
	a.reset(n, m)
	width := m + 1

	var best, bestI, bestJ int
	var i, j, cell, upScore, leftScore, diagScore, s int
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			cell = i*width + j
			upScore = a.score[cell-1] + gap
			leftScore = a.score[cell-width] + gap
			if seq1[i-1] == seq2[j-1] {
				diagScore = a.score[cell-width-1] + match
			} else {
				diagScore = a.score[cell-width-1] + mismatch
			}

			s = numbers.Max(numbers.Max(upScore, leftScore), numbers.Max(diagScore, 0))
			a.score[cell] = s
			switch s {
			case diagScore:
				a.trace[cell] = diag
			case leftScore:
				a.trace[cell] = left
			case upScore:
				a.trace[cell] = up
			default:
				a.trace[cell] = diag
			}

			if s >= best {
				best = s
				bestI = i
				bestJ = j
			}
		}
	}

	var ans Result
	i, j = bestI, bestJ

	// the consensus is built back to front and reversed at the end
	if rightFlank {
		if n > m {
			a.appendRev(seq1[i:], qual1[i:])
		} else {
			a.appendRev(seq2[j:], qual2[j:])
		}
	} else {
		ans.Gaps = m - j
	}

	for s = best; s > 0 && i >= 1 && j >= 1; s = a.score[i*width+j] {
		switch a.trace[i*width+j] {
		case diag:
			if qual1[i-1] >= qual2[j-1] {
				a.push(seq1[i-1], qual1[i-1])
			} else {
				a.push(seq2[j-1], qual2[j-1])
			}
			if seq1[i-1] == seq2[j-1] {
				ans.Matches++
			} else {
				ans.Mismatches++
			}
			i--
			j--
		case left:
			if qual1[i-1] > MinGapQual {
				a.push(seq1[i-1], qual1[i-1])
			}
			i--
			ans.Gaps++
		case up:
			if qual2[j-1] > MinGapQual {
				a.push(seq2[j-1], qual2[j-1])
			}
			j--
			ans.Gaps++
		}
	}

	if rightFlank {
		ans.Gaps = numbers.Max(i, j) - numbers.Min(i, j)
	} else {
		if n > m {
			a.appendRev(seq1[:i], qual1[:i])
		} else {
			a.appendRev(seq2[:j], qual2[:j])
		}
	}

	ans.Seq = make([]dna.Base, len(a.seq))
	ans.Qual = make([]byte, len(a.qual))
	for k := range a.seq {
		ans.Seq[k] = a.seq[len(a.seq)-1-k]
		ans.Qual[k] = a.qual[len(a.qual)-1-k]
	}
	return ans
}

// Accept reports whether r is good enough to merge. side names the flank in debug output.
func (a *Aligner) Accept(r Result, side string) bool {
	pid, ok := r.PercentIdentity()
	if ok && pid >= MinPercentIdentity && r.Gaps <= MaxGaps {
		return true
	}
	if a.cfg.Debug {
		log.Printf("Low pid (%2.2f) or too many gaps (%d) for the %s flank.\n", pid, r.Gaps, side)
	}
	return false
}

func (a *Aligner) push(b dna.Base, q byte) {
	a.seq = append(a.seq, b)
	a.qual = append(a.qual, q)
}

func (a *Aligner) appendRev(seq []dna.Base, qual []byte) {
	for k := len(seq) - 1; k >= 0; k-- {
		a.push(seq[k], qual[k])
	}
}
