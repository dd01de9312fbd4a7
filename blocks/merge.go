package blocks

import (
	"github.com/dasnellings/strMerge/strfq"
)

// Merge aligns the flanks of r around the repeat described by ann to the flanks of b. If
// both flanks are accepted b is replaced by the consensus, its support is incremented and the
// copy number of the read is tallied. Otherwise b is left untouched and false is returned.
func (s *Store) Merge(b *Block, r *strfq.Read, ann strfq.Annotation) bool {
	left := s.aligner.Align(b.Seq[:b.Start], b.Qual[:b.Start], r.Seq[:ann.Start], r.Qual[:ann.Start], false)
	if !s.aligner.Accept(left, "left") {
		return false
	}

	right := s.aligner.Align(b.Seq[b.End:], b.Qual[b.End:], r.Seq[ann.End:], r.Qual[ann.End:], true)
	if !s.aligner.Accept(right, "right") {
		return false
	}

	b.splice(left.Seq, left.Qual, ann.Motif, right.Seq, right.Qual)
	b.Support++
	b.tally(ann.Copies)
	return true
}
