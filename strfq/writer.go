package strfq

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/exception"
	"io"
)

// Write writes r to out as a four-line record with the annotation in the header.
func Write(out io.Writer, r Read) {
	_, err := fmt.Fprintf(out, "@%s\t%s\t%d\t%d\t%d\t%s\t%d\t%d\t%d\n%s\n+\n%s\n",
		r.Name,
		r.Fwd.Motif, r.Fwd.Copies, r.Fwd.Start, r.Fwd.End,
		r.Rev.Motif, r.Rev.Copies, r.Rev.Start, r.Rev.End,
		dna.BasesToString(r.Seq), r.Qual)
	exception.PanicOnErr(err)
}
