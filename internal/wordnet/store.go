// Package wordnet holds the in-memory lexical graph: four independent
// per-part-of-speech sub-graphs of synsets, a literal index, the one-shot
// relation inversion pass, and the traversal and similarity algorithms that
// query the finished graph.
//
// The graph is built once by Load and never mutated afterwards, so a
// *Store may be shared read-only across goroutines without locking.
//
// Known limitation: none of the recursive walks guard against cycles. The
// relation graphs of a well-formed source are acyclic per relation type,
// and revisiting diamond-shaped joins is intentional in the trace
// operations, so a visited set would change legitimate output. A malformed
// cyclic input (possible after inversion of a bad also_see loop) makes the
// recursive operations non-terminating.
package wordnet

import (
	"fmt"
	"strconv"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
	"go.uber.org/zap"
)

// subStore is one self-contained part-of-speech sub-graph: the owning
// id-to-synset map plus the literal index derived from every synonym list.
type subStore struct {
	synsets map[string]*schemas.Synset
	// index maps a literal to the ids of every synset containing it, in
	// insertion order. Appended on insert, never recomputed.
	index map[string][]string
}

func newSubStore() *subStore {
	return &subStore{
		synsets: make(map[string]*schemas.Synset),
		index:   make(map[string][]string),
	}
}

// Store is the lexical graph across all four parts of speech. Build it with
// NewStore + Insert + InvertRelations, or in one step with Load.
type Store struct {
	nouns      *subStore
	verbs      *subStore
	adjectives *subStore
	adverbs    *subStore
	log        *zap.Logger
}

// NewStore creates an empty store. Load-time warnings (duplicate ids,
// inversion targets) are written to logger; it is the caller-supplied
// diagnostics sink, not global state.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		nouns:      newSubStore(),
		verbs:      newSubStore(),
		adjectives: newSubStore(),
		adverbs:    newSubStore(),
		log:        logger.Named("wordnet"),
	}
}

// sub selects the sub-graph for pos. Every public operation goes through
// here, making an unrecognized tag fail fast everywhere.
func (s *Store) sub(pos schemas.PartOfSpeech) (*subStore, error) {
	switch pos {
	case schemas.Noun:
		return s.nouns, nil
	case schemas.Verb:
		return s.verbs, nil
	case schemas.Adjective:
		return s.adjectives, nil
	case schemas.Adverb:
		return s.adverbs, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPOS, pos)
	}
}

// Insert stores one parsed synset. Empty records are no-ops. A synset whose
// id already exists in its part-of-speech is rejected with a warning; the
// first-loaded record survives unchanged. sourceLine feeds diagnostics only.
func (s *Store) Insert(syns *schemas.Synset, sourceLine int) error {
	if syns.Empty() {
		return nil
	}
	sub, err := s.sub(syns.POS)
	if err != nil {
		return err
	}

	if _, exists := sub.synsets[syns.ID]; exists {
		s.log.Warn("Synset with this id already exists, keeping the first occurrence",
			zap.String("code", "W01"),
			zap.String("id", syns.ID),
			zap.Int("line", sourceLine))
		return nil
	}

	sub.synsets[syns.ID] = syns
	for _, syn := range syns.Synonyms {
		sub.index[syn.Literal] = append(sub.index[syn.Literal], syns.ID)
	}
	return nil
}

// LookupByID returns the synset stored under (id, pos). A missing id yields
// ErrNotFound; an unrecognized pos yields ErrInvalidPOS.
func (s *Store) LookupByID(id string, pos schemas.PartOfSpeech) (*schemas.Synset, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return nil, err
	}
	syns, ok := sub.synsets[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q (%s)", ErrNotFound, id, pos)
	}
	return syns, nil
}

// LookupByLiteral returns every synset whose synonym list contains literal,
// across all senses, in index-insertion order. Unknown literals yield an
// empty slice, not an error.
func (s *Store) LookupByLiteral(literal string, pos schemas.PartOfSpeech) ([]*schemas.Synset, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return nil, err
	}
	ids := sub.index[literal]
	res := make([]*schemas.Synset, 0, len(ids))
	for _, id := range ids {
		if syns, ok := sub.synsets[id]; ok {
			res = append(res, syns)
		}
	}
	return res, nil
}

// LookupSense returns the synset containing the exact (literal, sense) word
// sense. Sense numbers compare as integers, so "07" matches 7.
func (s *Store) LookupSense(literal string, sense int, pos schemas.PartOfSpeech) (*schemas.Synset, error) {
	candidates, err := s.LookupByLiteral(literal, pos)
	if err != nil {
		return nil, err
	}
	for _, syns := range candidates {
		for _, syn := range syns.Synonyms {
			if syn.Literal != literal {
				continue
			}
			if n, convErr := strconv.Atoi(syn.Sense); convErr == nil && n == sense {
				return syns, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: word sense %s:%d (%s)", ErrNotFound, literal, sense, pos)
}

// Stats summarizes one part-of-speech sub-graph.
type Stats struct {
	Synsets    int `json:"synsets"`
	WordSenses int `json:"word_senses"`
	Words      int `json:"words"`
}

// Stats reports the synset count, the (literal, synset) index entry count
// and the distinct literal count for pos.
func (s *Store) Stats(pos schemas.PartOfSpeech) (Stats, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Synsets: len(sub.synsets), Words: len(sub.index)}
	for _, ids := range sub.index {
		st.WordSenses += len(ids)
	}
	return st, nil
}
