package repeats

import (
	"github.com/vertgenlab/gonomics/dna"
)

// BuildKmpFailure calculates the Knuth-Morris-Pratt failure function for input pattern
// based on https://www.personal.kent.edu/~rmuhamma/Algorithms/MyAlgorithms/StringMatch/kuthMP.htm
func BuildKmpFailure(pattern []dna.Base) []int {
	// failure[i] = length of the longest proper prefix of pattern[0:i+1] which is also a suffix of it
	failure := make([]int, len(pattern))

	// Length of the previous longest prefix-suffix
	length := 0
	i := 1

	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			failure[i] = length + 1
			length++
			i++
		} else {
			if length > 0 {
				// do not increment i, retry with the next shorter prefix-suffix
				length = failure[length-1]
			} else {
				failure[i] = 0
				i++
			}
		}
	}

	return failure
}

// primitive returns the shortest unit that tiles unit exactly, e.g. CA for CACA.
func primitive(unit []dna.Base) []dna.Base {
	if len(unit) < 2 {
		return unit
	}
	failure := BuildKmpFailure(unit)
	period := len(unit) - failure[len(failure)-1]
	if len(unit)%period != 0 {
		return unit
	}
	return unit[:period]
}
