//go:build !large

package config

// MaxKLength is the exclusive upper bound on the flank k-mer length.
const MaxKLength int = 32
