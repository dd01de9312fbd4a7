package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/strMerge/config"
	"github.com/dasnellings/strMerge/merge"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
)

const version string = "0.0.1"

func usage() {
	fmt.Print(
		"mergeSTRreads - merge reads supporting the same short tandem repeat allele into consensus blocks\n" +
			"Version: " + version + "\n\n" +
			"Usage:\n" +
			"  mergeSTRreads [options] klength reads.str.fq > blocks.fq\n\n" +
			"klength must be an odd integer; even values are reduced by one.\n" +
			"Each read name must carry the repeat annotation in both orientations:\n" +
			"  @name fwdMotif fwdCopies fwdStart fwdEnd revMotif revCopies revStart revEnd\n\n" +
			"Options:\n")
	flag.PrintDefaults()
}

func main() {
	defaults := config.Default()
	minThreshold := flag.Int("min_threshold", defaults.MinThreshold, "Minimum number of reads supporting a block for output.")
	maxThreshold := flag.Int("max_threshold", defaults.MaxThreshold, "Maximum number of reads supporting a block for output.")
	progress := flag.Int("progress", defaults.Progress, "Report progress every INT reads.")
	includeAll := flag.Bool("all", false, "Output non-polymorphic blocks as well as polymorphic blocks.")
	debug := flag.Bool("debug", false, "Print per-read diagnostics to stderr.")
	output := flag.String("o", "stdout", "Output fastq file of merged blocks.")
	plotFile := flag.String("plot", "", "Save a histogram of the read support of output blocks to `file` (.png, .svg, .pdf).")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		errExit("\nERROR: must input a kmer length and an annotated fastq file")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	klength, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("ERROR: kmer length must be an integer: %s\n", flag.Arg(0))
	}

	cfg := config.Config{
		KLength:      klength,
		MinThreshold: *minThreshold,
		MaxThreshold: *maxThreshold,
		Progress:     *progress,
		IncludeAll:   *includeAll,
		Debug:        *debug,
	}
	if err = cfg.Validate(); err != nil {
		log.Fatalf("ERROR: %s\n", err)
	}

	merge.Merge(flag.Arg(1), *output, cfg, *plotFile)
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
