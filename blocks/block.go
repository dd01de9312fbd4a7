// Package blocks groups reads that support the same repeat allele into consensus blocks.
package blocks

import (
	"github.com/dasnellings/strMerge/strfq"
	"github.com/vertgenlab/gonomics/dna"
	"golang.org/x/exp/slices"
)

// FillerQual is the quality given to every base of the repeat in a block.
const FillerQual byte = '!'

// CopyTally counts the reads of a block that agree on a repeat copy number.
type CopyTally struct {
	Copies   int
	NSupport int
}

// Block is the consensus of the reads supporting one candidate allele. The repeat is held
// as a single copy of the motif at Seq[Start:End], so End == Start + len(motif).
type Block struct {
	Seq      []dna.Base
	Qual     []byte
	Start    int
	End      int
	Support  int         // number of reads merged into the block
	Supports []CopyTally // one entry per distinct copy number, in the order first seen
}

func (b *Block) Len() int {
	return len(b.Seq)
}

// NewBlock seeds a block from a single read. The repeat described by ann is collapsed to
// one copy of the motif.
func NewBlock(r *strfq.Read, ann strfq.Annotation) *Block {
	b := &Block{Support: 1, Supports: []CopyTally{{Copies: ann.Copies, NSupport: 1}}}
	b.splice(r.Seq[:ann.Start], r.Qual[:ann.Start], ann.Motif, r.Seq[ann.End:], r.Qual[ann.End:])
	return b
}

// splice replaces the consensus with left + motif + right.
func (b *Block) splice(leftSeq []dna.Base, leftQual []byte, motif string, rightSeq []dna.Base, rightQual []byte) {
	b.Start = len(leftSeq)
	b.End = b.Start + len(motif)
	length := b.End + len(rightSeq)

	seq := make([]dna.Base, 0, length)
	seq = append(seq, leftSeq...)
	seq = append(seq, dna.StringToBases(motif)...)
	seq = append(seq, rightSeq...)

	qual := make([]byte, 0, length)
	qual = append(qual, leftQual...)
	for i := 0; i < len(motif); i++ {
		qual = append(qual, FillerQual)
	}
	qual = append(qual, rightQual...)

	b.Seq = seq
	b.Qual = qual
}

func (b *Block) tally(copies int) {
	idx := slices.IndexFunc(b.Supports, func(c CopyTally) bool { return c.Copies == copies })
	if idx == -1 {
		b.Supports = append(b.Supports, CopyTally{Copies: copies, NSupport: 1})
		return
	}
	b.Supports[idx].NSupport++
}

func (b *Block) release() {
	b.Seq = nil
	b.Qual = nil
	b.Supports = nil
}
