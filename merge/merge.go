// Package merge runs the full read merging pipeline: every read is folded into the block
// store, then qualifying blocks are emitted.
package merge

import (
	"github.com/dasnellings/strMerge/blocks"
	"github.com/dasnellings/strMerge/config"
	"github.com/dasnellings/strMerge/emit"
	"github.com/dasnellings/strMerge/strfq"
	"github.com/dustin/go-humanize"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"log"
)

// Merge reads the annotated reads in input, merges those supporting the same repeat allele
// and writes qualifying blocks to output. If plotFile is not empty a histogram of the support
// of emitted blocks is saved there.
func Merge(input, output string, cfg config.Config, plotFile string) {
	reads := strfq.GoReadToChan(input)
	out := fileio.EasyCreate(output)

	_, summary := mergeReads(reads, out, cfg)

	err := out.Close()
	exception.PanicOnErr(err)

	if plotFile != "" {
		emit.PlotSupport(summary, plotFile)
	}
}

func mergeReads(reads <-chan strfq.Read, out io.Writer, cfg config.Config) (blocks.Stats, emit.Summary) {
	store := blocks.NewStore(cfg)
	var processed int64
	var outcome blocks.Outcome
	for r := range reads {
		processed++
		if cfg.Debug {
			log.Printf("Processing %s\n", r.Name)
		} else if (processed-1)%int64(cfg.Progress) == 0 {
			log.Printf("Processing read number %s: %s\n", humanize.Comma(processed), r.Name)
		}

		outcome = store.Add(&r)

		if cfg.Debug {
			log.Printf("%s: %s\n", r.Name, outcomeString(outcome))
			log.Println("-----------------------------------------------")
		}
	}
	log.Printf("Processed %s reads.\n", humanize.Comma(processed))
	stats := store.Stats
	log.Printf("Created %s blocks, merged %s reads (%s forward, %s reverse), skipped %s reads.\n",
		humanize.Comma(int64(stats.Created)), humanize.Comma(int64(stats.MergedForward+stats.MergedReverse)),
		humanize.Comma(int64(stats.MergedForward)), humanize.Comma(int64(stats.MergedReverse)), humanize.Comma(int64(stats.Skipped)))
	if cfg.Debug {
		var chain []*blocks.Block
		for _, key := range store.SortedKeys() {
			chain, _ = store.Lookup(key)
			log.Printf("%s: %d blocks\n", key, len(chain))
		}
	}

	summary := emit.Emit(store, out, cfg)
	log.Println(summary)
	if cfg.Debug && summary.Emitted() > 0 {
		log.Printf("\n%s\n", summary.Plot())
	}
	return stats, summary
}

func outcomeString(o blocks.Outcome) string {
	switch o {
	case blocks.MergedForward:
		return "merged (forward)"
	case blocks.MergedReverse:
		return "merged (reverse)"
	case blocks.Created:
		return "new block"
	case blocks.Skipped:
		return "skipped, flanks out of bounds"
	default:
		log.Panicf("unknown outcome %d", o)
		return ""
	}
}
