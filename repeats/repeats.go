// Package repeats finds perfect short tandem repeats in reads and annotates the reads
// with the repeat in both orientations.
package repeats

import (
	"github.com/vertgenlab/gonomics/dna"
)

// MaxUnitLen is the longest repeat unit that can be annotated.
const MaxUnitLen int = 6

// Repeat is a perfect tandem repeat of Unit covering [Start, End) of a read.
type Repeat struct {
	Unit   []dna.Base
	Start  int
	End    int
	Copies int
}

// Find returns the longest perfect tandem repeat in seq with a unit of at most maxUnitLen bases
// and at least two copies. Only whole copies are reported. Ties go to the shorter unit and
// then to the leftmost repeat. found is false if seq contains no repeat.
func Find(seq []dna.Base, maxUnitLen int) (ans Repeat, found bool) {
	var unitLen, run, i, span, copies, start int
	var bestSpan int
	for unitLen = 1; unitLen <= maxUnitLen; unitLen++ {
		run = 0
		for i = unitLen; i <= len(seq); i++ {
			if i < len(seq) && seq[i] == seq[i-unitLen] && seq[i] != dna.N {
				run++
				continue
			}
			// the periodic region ending at i covers the previous unitLen + run bases
			span = run + unitLen
			copies = span / unitLen
			if copies >= 2 && copies*unitLen > bestSpan {
				start = i - span
				bestSpan = copies * unitLen
				ans = Repeat{Start: start, End: start + bestSpan, Copies: copies, Unit: seq[start : start+unitLen]}
			}
			run = 0
		}
	}
	if bestSpan == 0 {
		return ans, false
	}

	unit := primitive(ans.Unit)
	ans.Copies *= len(ans.Unit) / len(unit)
	ans.Unit = unit
	return ans, true
}
