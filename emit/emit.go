// Package emit selects the consensus blocks supported well enough to report and writes
// them as FASTQ records.
package emit

import (
	"fmt"
	"github.com/dasnellings/strMerge/blocks"
	"github.com/dasnellings/strMerge/config"
	"github.com/dasnellings/strMerge/flank"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"strconv"
	"strings"
)

// maxSlots is the number of copy number tallies consulted per block. A block with a
// third qualifying copy number is never emitted.
const maxSlots int = 3

// minAlleleSupport is the number of reads that must agree on a copy number for it to count.
const minAlleleSupport int = 2

// Selection holds the copy numbers of a block that are supported by at least
// minAlleleSupport reads.
type Selection struct {
	Copies    []int // at most maxSlots, in the order the copy numbers were first seen
	MaxCopies int
}

// Select picks the first maxSlots tallies of b supported by at least two reads.
func Select(b *blocks.Block) Selection {
	var ans Selection
	for _, t := range b.Supports {
		if t.NSupport < minAlleleSupport {
			continue
		}
		ans.Copies = append(ans.Copies, t.Copies)
		if t.Copies > ans.MaxCopies {
			ans.MaxCopies = t.Copies
		}
		if len(ans.Copies) == maxSlots {
			break
		}
	}
	return ans
}

// Passes reports whether b should be emitted. The support of b must lie within the
// configured thresholds. Unless cfg.IncludeAll is set exactly two copy numbers must be
// selected; with IncludeAll one or two are accepted.
func Passes(cfg config.Config, b *blocks.Block, sel Selection) bool {
	if b.Support < cfg.MinThreshold || b.Support > cfg.MaxThreshold {
		return false
	}
	if cfg.IncludeAll {
		return len(sel.Copies) == 1 || len(sel.Copies) == 2
	}
	return len(sel.Copies) == 2
}

// Render formats b as a FASTQ record. The single motif copy held by the block is expanded
// to sel.MaxCopies copies, each base with filler quality.
func Render(index int, motif string, b *blocks.Block, sel Selection) string {
	if b.End != b.Start+len(motif) {
		log.Panicf("block %d: repeat span %d-%d does not hold motif %s", index, b.Start, b.End, motif)
	}
	copies := make([]string, len(sel.Copies))
	for i := range sel.Copies {
		copies[i] = strconv.Itoa(sel.Copies[i])
	}
	repeatLen := sel.MaxCopies * len(motif)

	s := new(strings.Builder)
	fmt.Fprintf(s, "@Block%d\t%s\t%s\t%d\t%d\n", index, motif, strings.Join(copies, ","), b.Start, b.Start+repeatLen)
	s.WriteString(dna.BasesToString(b.Seq[:b.Start]))
	s.WriteString(strings.Repeat(motif, sel.MaxCopies))
	s.WriteString(dna.BasesToString(b.Seq[b.End:]))
	s.WriteString("\n+\n")
	s.Write(b.Qual[:b.Start])
	s.WriteString(strings.Repeat(string(blocks.FillerQual), repeatLen))
	s.Write(b.Qual[b.End:])
	s.WriteByte('\n')
	return s.String()
}

// Emit evaluates every block in store, writes those that pass to out, and empties the store.
// Keys are visited in the order they were first inserted and blocks in chain order. Every
// block is released after it is evaluated, whether or not it was written.
func Emit(store *blocks.Store, out io.Writer, cfg config.Config) Summary {
	var ans Summary
	var sel Selection
	var err error
	var motif string
	index := 1
	for _, key := range store.Keys() {
		motif, _, _, err = flank.ParseKey(key)
		if err != nil {
			log.Fatalf("ERROR: %s\n", err)
		}
		chain, _ := store.Lookup(key)
		for _, b := range chain {
			ans.Blocks++
			sel = Select(b)
			if !Passes(cfg, b, sel) {
				continue
			}
			_, err = io.WriteString(out, Render(index, motif, b, sel))
			exception.PanicOnErr(err)
			index++
			ans.Support = append(ans.Support, float64(b.Support))
		}
		store.Remove(key)
	}
	store.Reset()
	return ans
}
