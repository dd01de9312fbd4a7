package repeats

import (
	"github.com/dasnellings/strMerge/strfq"
	"github.com/dustin/go-humanize"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fastq"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
	"strings"
)

// phred+33 offset used when writing qualities as text.
const asciiOffset uint8 = 33

// Annotate finds the longest perfect repeat in each read of the fastq file input and writes
// the reads carrying at least minCopies copies to output with the repeat annotated in both
// orientations. Reads without a qualifying repeat are dropped.
func Annotate(input, output string, maxUnitLen, minCopies int) {
	reads := fastq.GoReadToChan(input)
	out := fileio.EasyCreate(output)
	total, kept := annotateReads(reads, out, maxUnitLen, minCopies)
	log.Printf("Annotated %s of %s reads.\n", humanize.Comma(int64(kept)), humanize.Comma(int64(total)))
	err := out.Close()
	exception.PanicOnErr(err)
}

func annotateReads(reads <-chan fastq.Fastq, out io.Writer, maxUnitLen, minCopies int) (total, kept int) {
	var r strfq.Read
	var ok bool
	for fq := range reads {
		total++
		if r, ok = annotate(fq, maxUnitLen, minCopies); !ok {
			continue
		}
		strfq.Write(out, r)
		kept++
	}
	return total, kept
}

// annotate converts fq into an annotated read. ok is false if fq has no name or no repeat of at least minCopies.
func annotate(fq fastq.Fastq, maxUnitLen, minCopies int) (r strfq.Read, ok bool) {
	dna.AllToUpper(fq.Seq)
	name := strings.Fields(fq.Name)
	rep, found := Find(fq.Seq, maxUnitLen)
	if len(name) == 0 || !found || rep.Copies < minCopies {
		return r, false
	}

	revUnit := make([]dna.Base, len(rep.Unit))
	copy(revUnit, rep.Unit)
	dna.ReverseComplement(revUnit)

	r.Name = name[0]
	r.Fwd = strfq.Annotation{Motif: dna.BasesToString(rep.Unit), Copies: rep.Copies, Start: rep.Start, End: rep.End}
	r.Rev = strfq.Annotation{Motif: dna.BasesToString(revUnit), Copies: rep.Copies, Start: len(fq.Seq) - rep.End, End: len(fq.Seq) - rep.Start}
	r.Seq = fq.Seq
	r.Qual = make([]byte, len(fq.Qual))
	for i := range fq.Qual {
		r.Qual[i] = fq.Qual[i] + asciiOffset
	}
	return r, true
}
