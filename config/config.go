package config

import (
	"fmt"
	"log"
)

// Config holds every user-facing option of a merge run. A single value is passed
// explicitly to the aligner, the block store and the emitter.
type Config struct {
	KLength      int  // length of the flanking k-mers used to build keys
	MinThreshold int  // blocks supported by fewer reads are not emitted
	MaxThreshold int  // blocks supported by more reads are not emitted
	Progress     int  // log progress every Progress reads
	IncludeAll   bool // emit non-polymorphic blocks as well
	Debug        bool // per-read diagnostics on stderr
}

// Default returns the options used when none are given on the command line.
// KLength has no default and must be set by the caller.
func Default() Config {
	return Config{
		MinThreshold: 4,
		MaxThreshold: 10000,
		Progress:     1000000,
	}
}

// Validate checks the options and normalises KLength. An even KLength is decremented
// by one with a warning; values that cannot be used are returned as errors.
func (c *Config) Validate() error {
	if c.KLength < 1 {
		return fmt.Errorf("kmer length should be an odd integer < %d: %d", MaxKLength, c.KLength)
	}
	if c.KLength%2 == 0 {
		c.KLength--
		log.Printf("WARNING: Kmer length should be an odd integer, using %d\n", c.KLength)
	}
	if c.KLength >= MaxKLength {
		return fmt.Errorf("kmer length should be an odd integer < %d: %d", MaxKLength, c.KLength)
	}
	if c.Progress < 1 {
		return fmt.Errorf("progress must be >= 1: %d", c.Progress)
	}
	if c.MinThreshold > c.MaxThreshold {
		return fmt.Errorf("min_threshold (%d) must not be larger than max_threshold (%d)", c.MinThreshold, c.MaxThreshold)
	}
	return nil
}
