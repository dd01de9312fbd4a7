//go:build large

package config

// MaxKLength is the exclusive upper bound on the flank k-mer length in the large build.
const MaxKLength int = 64
