package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/strMerge/repeats"
	"log"
)

func usage() {
	fmt.Print(
		"annotateSTRreads - find the longest perfect tandem repeat in each read and annotate it for mergeSTRreads\n\n" +
			"Usage:\n" +
			"  annotateSTRreads [options] -i reads.fq > reads.str.fq\n\n" +
			"Options:\n")
	flag.PrintDefaults()
}

func main() {
	input := flag.String("i", "", "Input fastq file.")
	output := flag.String("o", "stdout", "Output fastq file with annotated read names.")
	maxUnitLen := flag.Int("maxUnitLen", repeats.MaxUnitLen, "Maximum length of repeat unit to be annotated.")
	minCopies := flag.Int("minCopies", 5, "Minimum number of repeated units for a read to be output.")
	flag.Usage = usage
	flag.Parse()

	if *input == "" {
		usage()
		log.Fatal("ERROR: must input a fastq file with -i")
	}

	if *maxUnitLen < 1 || *maxUnitLen > repeats.MaxUnitLen {
		log.Fatalf("ERROR: maxUnitLen must be between 1 and %d\n", repeats.MaxUnitLen)
	}

	if *minCopies < 2 {
		log.Fatal("ERROR: minCopies must be at least 2")
	}

	repeats.Annotate(*input, *output, *maxUnitLen, *minCopies)
}
