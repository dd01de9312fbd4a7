package blocks

import (
	"github.com/dasnellings/strMerge/config"
	"github.com/dasnellings/strMerge/consensus"
	"github.com/dasnellings/strMerge/flank"
	"github.com/dasnellings/strMerge/strfq"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"log"
)

// Outcome describes what happened to a read passed to Store.Add.
type Outcome int

const (
	MergedForward Outcome = iota // merged into a block under its forward key
	MergedReverse                // merged into a block under its reverse complemented key
	Created                      // seeded a new block
	Skipped                      // could not be keyed in either orientation
)

// Stats counts the outcomes of every read added to a Store.
type Stats struct {
	Reads         int
	MergedForward int
	MergedReverse int
	Created       int
	Skipped       int
}

// Store maps a flank key to the chain of blocks discovered under that key. Each block in a
// chain is a different allele sharing identical flanks.
type Store struct {
	cfg     config.Config
	aligner *consensus.Aligner
	chains  map[string][]*Block
	keys    []string // in order of first insertion
	Stats   Stats
}

func NewStore(cfg config.Config) *Store {
	return &Store{
		cfg:     cfg,
		aligner: consensus.NewAligner(cfg),
		chains:  make(map[string][]*Block),
	}
}

func (s *Store) Lookup(key string) ([]*Block, bool) {
	chain, found := s.chains[key]
	return chain, found
}

// Insert adds b to the chain for key, creating the chain if key is new.
func (s *Store) Insert(key string, b *Block) {
	chain, found := s.chains[key]
	if !found {
		s.keys = append(s.keys, key)
	}
	s.chains[key] = append(chain, b)
}

// Keys returns every key in the order it was first inserted.
func (s *Store) Keys() []string {
	return s.keys
}

// SortedKeys returns every key in lexical order.
func (s *Store) SortedKeys() []string {
	keys := maps.Keys(s.chains)
	slices.Sort(keys)
	return keys
}

func (s *Store) Len() int {
	return len(s.chains)
}

// Remove deletes the chain for key, releasing every block in it.
func (s *Store) Remove(key string) {
	for _, b := range s.chains[key] {
		b.release()
	}
	delete(s.chains, key)
}

func (s *Store) Reset() {
	for _, key := range s.keys {
		s.Remove(key)
	}
	s.keys = nil
}

// TryMergeIntoChain attempts to merge r into each block of chain in order and stops at the
// first block that accepts it.
func (s *Store) TryMergeIntoChain(chain []*Block, r *strfq.Read, ann strfq.Annotation) bool {
	for _, b := range chain {
		if s.Merge(b, r, ann) {
			return true
		}
	}
	return false
}

// Add folds r into the store. The read is first tried under its forward key. If that fails
// the read is reverse complemented in place and tried under its reverse key. If both fail a
// new block is seeded from the reverse complemented read and inserted under the reverse key.
func (s *Store) Add(r *strfq.Read) Outcome {
	s.Stats.Reads++
	key, err := flank.Key(r.Fwd.Motif, r.Seq, s.cfg.KLength, r.Fwd.Start, r.Fwd.End)
	if err == nil {
		if s.cfg.Debug {
			log.Println(key)
		}
		if chain, found := s.Lookup(key); found && s.TryMergeIntoChain(chain, r, r.Fwd) {
			s.Stats.MergedForward++
			return MergedForward
		}
	} else if s.cfg.Debug {
		log.Printf("Forward key for %s: %s\n", r.Name, err)
	}

	strfq.ReverseComplement(r)
	key, err = flank.Key(r.Rev.Motif, r.Seq, s.cfg.KLength, r.Rev.Start, r.Rev.End)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("Reverse key for %s: %s\n", r.Name, err)
		}
		s.Stats.Skipped++
		return Skipped
	}
	if s.cfg.Debug {
		log.Println(key)
	}

	chain, found := s.Lookup(key)
	if found && s.TryMergeIntoChain(chain, r, r.Rev) {
		s.Stats.MergedReverse++
		return MergedReverse
	}

	s.Insert(key, NewBlock(r, r.Rev))
	s.Stats.Created++
	return Created
}
