// Package flank builds the grouping keys used to collect reads that support the same repeat.
// A key joins the repeat motif with the k bases immediately before and after the repeat.
package flank

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"strings"
)

// ErrOutOfBounds is returned when the read does not hold k bases on both sides of the repeat.
var ErrOutOfBounds = errors.New("flank extends past the end of the read")

// Key returns "motif left right" where left is the k bases ending at start and right is the
// k bases beginning at end. The read is never read out of bounds: if either flank would
// extend past the ends of seq, or the interval is not a valid repeat span, ErrOutOfBounds is returned.
func Key(motif string, seq []dna.Base, k, start, end int) (string, error) {
	if start < 0 || start > end || start < k || end+k > len(seq) {
		return "", fmt.Errorf("%w: motif %s, k %d, repeat %d-%d, read length %d", ErrOutOfBounds, motif, k, start, end, len(seq))
	}
	s := new(strings.Builder)
	s.Grow(len(motif) + 2*k + 2)
	s.WriteString(motif)
	s.WriteByte(' ')
	s.WriteString(dna.BasesToString(seq[start-k : start]))
	s.WriteByte(' ')
	s.WriteString(dna.BasesToString(seq[end : end+k]))
	return s.String(), nil
}

// ParseKey splits a key built by Key back into its motif and flanks.
func ParseKey(key string) (motif, left, right string, err error) {
	words := strings.Split(key, " ")
	if len(words) != 3 || words[0] == "" {
		return "", "", "", fmt.Errorf("error in parsing key: %s", key)
	}
	return words[0], words[1], words[2], nil
}
