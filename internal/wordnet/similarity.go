package wordnet

import (
	"math"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
)

// Constants for the Leacock-Chodorow similarity measure.
const (
	// maxPathDepth is the assumed longest meaningful path from the root to
	// any node in the graph.
	maxPathDepth = 20

	// SyntheticRoot is the sentinel pseudo-node appended to every leaf when
	// a similarity query asks for an artificial top, guaranteeing any two
	// nodes share a common ancestor. It is not a real synset id.
	SyntheticRoot = "#TOP#"

	// NoConnectionScore is returned when no connecting path exists between
	// two senses. Real scores are never negative, so it is unambiguous.
	NoConnectionScore = -1.0
)

// SynonymScore is the maximum attainable similarity, reached when a sense
// is compared with itself (path length 1). Approximately 1.60206 with
// maxPathDepth=20.
var SynonymScore = -math.Log10(1.0 / (2.0 * maxPathDepth))

// ReachEntry is one node of a reachability enumeration: a reachable id and
// its distance from the start, counting the start node as distance 1.
type ReachEntry struct {
	ID       string
	Distance int
}

// Reach enumerates every (id, distance) pair reachable from id along
// relation, preorder, starting with id itself at distance 1. Nodes
// reachable over several paths appear once per path. With addSyntheticRoot
// set, every node with no outgoing edge of the relation type gets the
// SyntheticRoot sentinel appended one step further out, so all branches
// meet in a common point. An unknown id yields an empty result.
func (s *Store) Reach(id string, pos schemas.PartOfSpeech, relation string, addSyntheticRoot bool) ([]ReachEntry, error) {
	return s.reach(id, pos, relation, addSyntheticRoot, 1)
}

func (s *Store) reach(id string, pos schemas.PartOfSpeech, relation string, addSyntheticRoot bool, distance int) ([]ReachEntry, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return nil, err
	}
	syns, ok := sub.synsets[id]
	if !ok {
		return nil, nil
	}

	res := []ReachEntry{{ID: id, Distance: distance}}
	hasChildren := false
	for _, rel := range syns.Relations {
		if rel.Type != relation {
			continue
		}
		hasChildren = true
		branch, err := s.reach(rel.Target, pos, relation, addSyntheticRoot, distance+1)
		if err != nil {
			return nil, err
		}
		res = append(res, branch...)
	}
	if !hasChildren && addSyntheticRoot {
		res = append(res, ReachEntry{ID: SyntheticRoot, Distance: distance + 1})
	}
	return res, nil
}

// shortestCommonDistance scans the cross product of the two reach sets for
// the common node minimizing the summed distances. The returned path length
// counts the shared node once (d1+d2-1). found is false when the reach sets
// share no node, which can only happen without a synthetic root.
func (s *Store) shortestCommonDistance(id1, id2 string, pos schemas.PartOfSpeech, relation string, addSyntheticRoot bool) (pathLength int, common string, found bool, err error) {
	reach1, err := s.Reach(id1, pos, relation, addSyntheticRoot)
	if err != nil {
		return 0, "", false, err
	}
	reach2, err := s.Reach(id2, pos, relation, addSyntheticRoot)
	if err != nil {
		return 0, "", false, err
	}

	best := 2 * maxPathDepth
	for _, e1 := range reach1 {
		for _, e2 := range reach2 {
			if e1.ID == e2.ID && e1.Distance+e2.Distance < best {
				best = e1.Distance + e2.Distance
				common = e1.ID
				found = true
			}
		}
	}
	// The common node was counted from both sides.
	return best - 1, common, found, nil
}

// Similarity computes the Leacock-Chodorow score between two synsets:
// -log10(pathLength / 2D) over the shortest connecting path of relation
// edges, or NoConnectionScore when no path connects them. Comparing a
// synset with itself yields SynonymScore.
func (s *Store) Similarity(id1, id2 string, pos schemas.PartOfSpeech, relation string, addSyntheticRoot bool) (float64, error) {
	pathLength, _, found, err := s.shortestCommonDistance(id1, id2, pos, relation, addSyntheticRoot)
	if err != nil {
		return 0, err
	}
	if !found {
		return NoConnectionScore, nil
	}
	return -math.Log10(float64(pathLength) / (2.0 * maxPathDepth)), nil
}

// SensePair names the two sense-synsets a similarity score was computed
// from: First is a sense of the first literal, Second of the second.
type SensePair struct {
	First  string
	Second string
}

// SimilarityBetweenLiterals scores every pair drawn from the senses of the
// two literals and returns a map keyed by score. Two sense pairs landing on
// the exact same score collapse into one entry, last write wins; the result
// is empty when either literal is unknown.
func (s *Store) SimilarityBetweenLiterals(literal1, literal2 string, pos schemas.PartOfSpeech, relation string, addSyntheticRoot bool) (map[float64]SensePair, error) {
	senses1, err := s.LookupByLiteral(literal1, pos)
	if err != nil {
		return nil, err
	}
	senses2, err := s.LookupByLiteral(literal2, pos)
	if err != nil {
		return nil, err
	}

	results := make(map[float64]SensePair)
	for _, s1 := range senses1 {
		for _, s2 := range senses2 {
			score, err := s.Similarity(s1.ID, s2.ID, pos, relation, addSyntheticRoot)
			if err != nil {
				return nil, err
			}
			results[score] = SensePair{First: s1.ID, Second: s2.ID}
		}
	}
	return results, nil
}
