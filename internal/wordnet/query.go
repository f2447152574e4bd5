package wordnet

import (
	"fmt"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
)

// hyponymRelation is fixed for LiteralInSynset's descendant search; that
// check is about taxonomy membership, not an arbitrary relation walk.
const hyponymRelation = "hyponym"

// DirectTargets returns the ids of the synsets reachable from id over a
// single edge of the given relation type, preserving relation-list order
// and duplicates. An unknown id yields an empty result.
func (s *Store) DirectTargets(id string, pos schemas.PartOfSpeech, relation string) ([]string, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return nil, err
	}
	syns, ok := sub.synsets[id]
	if !ok {
		return nil, nil
	}
	var targets []string
	for _, rel := range syns.Relations {
		if rel.Type == relation {
			targets = append(targets, rel.Target)
		}
	}
	return targets, nil
}

// Trace does a recursive preorder walk from id along relation and returns
// every id visited. The result always starts with id itself, even when id
// is unknown or has no matching edges.
func (s *Store) Trace(id string, pos schemas.PartOfSpeech, relation string) ([]string, error) {
	targets, err := s.DirectTargets(id, pos, relation)
	if err != nil {
		return nil, err
	}
	res := []string{id}
	for _, target := range targets {
		branch, err := s.Trace(target, pos, relation)
		if err != nil {
			return nil, err
		}
		res = append(res, branch...)
	}
	return res, nil
}

// DepthEntry is one visited node of a depth-tagged trace.
type DepthEntry struct {
	ID    string
	Depth int
}

// TraceWithDepth is Trace with each visited id paired with its distance in
// hops from the start (the start itself is depth 0), preorder.
func (s *Store) TraceWithDepth(id string, pos schemas.PartOfSpeech, relation string) ([]DepthEntry, error) {
	return s.traceDepth(id, pos, relation, 0)
}

func (s *Store) traceDepth(id string, pos schemas.PartOfSpeech, relation string, depth int) ([]DepthEntry, error) {
	targets, err := s.DirectTargets(id, pos, relation)
	if err != nil {
		return nil, err
	}
	res := []DepthEntry{{ID: id, Depth: depth}}
	for _, target := range targets {
		branch, err := s.traceDepth(target, pos, relation, depth+1)
		if err != nil {
			return nil, err
		}
		res = append(res, branch...)
	}
	return res, nil
}

// TraceTree renders the trace as an indented tree, one synset per line in
// its conventional one-line form. Unlike Trace, an unknown starting id
// yields an empty result.
func (s *Store) TraceTree(id string, pos schemas.PartOfSpeech, relation string) ([]string, error) {
	return s.traceTree(id, pos, relation, 0)
}

func (s *Store) traceTree(id string, pos schemas.PartOfSpeech, relation string, level int) ([]string, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return nil, err
	}
	syns, ok := sub.synsets[id]
	if !ok {
		return nil, nil
	}
	lines := []string{indent(level) + syns.String()}
	for _, rel := range syns.Relations {
		if rel.Type != relation {
			continue
		}
		branch, err := s.traceTree(rel.Target, pos, relation, level+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, branch...)
	}
	return lines, nil
}

func indent(level int) string {
	buf := make([]byte, 2*level)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// MaxDepth is the longest root-ward path from id along relation, counting
// the start node: 1 for a top-level synset, 2 for a direct child of one,
// and so on.
func (s *Store) MaxDepth(id string, pos schemas.PartOfSpeech, relation string) (int, error) {
	entries, err := s.TraceWithDepth(id, pos, relation)
	if err != nil {
		return 0, err
	}
	maximum := 0
	for _, entry := range entries {
		if entry.Depth > maximum {
			maximum = entry.Depth
		}
	}
	return maximum + 1, nil
}

// SubgraphSize counts the distinct synsets visited by the recursive walk
// from id along relation. A node reachable over several paths counts once;
// a leaf with no matching edges yields 1.
func (s *Store) SubgraphSize(id string, pos schemas.PartOfSpeech, relation string) (int, error) {
	visited := make(map[string]struct{})
	if err := s.collect(id, pos, relation, visited); err != nil {
		return 0, err
	}
	return len(visited), nil
}

func (s *Store) collect(id string, pos schemas.PartOfSpeech, relation string, visited map[string]struct{}) error {
	targets, err := s.DirectTargets(id, pos, relation)
	if err != nil {
		return err
	}
	visited[id] = struct{}{}
	for _, target := range targets {
		if err := s.collect(target, pos, relation, visited); err != nil {
			return err
		}
	}
	return nil
}

// ConnectedVia searches depth-first from id along relation and returns the
// first member of targets encountered, or id itself when id is in targets.
// Traversal follows DirectTargets order; the first hit wins, which is a
// tie-break rule, not a shortest-path guarantee. An empty string means no
// member of targets is reachable.
func (s *Store) ConnectedVia(id string, pos schemas.PartOfSpeech, relation string, targets map[string]struct{}) (string, error) {
	if _, hit := targets[id]; hit {
		return id, nil
	}
	children, err := s.DirectTargets(id, pos, relation)
	if err != nil {
		return "", err
	}
	for _, child := range children {
		found, err := s.ConnectedVia(child, pos, relation, targets)
		if err != nil {
			return "", err
		}
		if found != "" {
			return found, nil
		}
	}
	return "", nil
}

// LiteralConnectedVia runs ConnectedVia from every sense-synset of literal
// in LookupByLiteral order and reports the first connection as the pair
// (id of the sense the connection starts from, id of the reached target).
// Both are empty when no sense connects.
func (s *Store) LiteralConnectedVia(literal string, pos schemas.PartOfSpeech, relation string, targets map[string]struct{}) (senseID, foundID string, err error) {
	senses, err := s.LookupByLiteral(literal, pos)
	if err != nil {
		return "", "", err
	}
	for _, sense := range senses {
		found, err := s.ConnectedVia(sense.ID, pos, relation, targets)
		if err != nil {
			return "", "", err
		}
		if found != "" {
			return sense.ID, found, nil
		}
	}
	return "", "", nil
}

// LiteralInSynset reports whether literal appears in the synonym list of
// the synset id. With includeHyponyms set it keeps searching the synset's
// hyponym descendants until a match is found or the subtree is exhausted.
func (s *Store) LiteralInSynset(literal string, pos schemas.PartOfSpeech, id string, includeHyponyms bool) (bool, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return false, err
	}
	syns, ok := sub.synsets[id]
	if !ok {
		return false, nil
	}
	for _, syn := range syns.Synonyms {
		if syn.Literal == literal {
			return true, nil
		}
	}
	if includeHyponyms {
		for _, rel := range syns.Relations {
			if rel.Type != hyponymRelation {
				continue
			}
			match, err := s.LiteralInSynset(literal, pos, rel.Target, true)
			if err != nil {
				return false, err
			}
			if match {
				return true, nil
			}
		}
	}
	return false, nil
}

// AreSynonyms reports whether the two literals share a synset in pos,
// returning the id of the first such synset in literal1's sense order. An
// empty id means they are not synonyms. Note there may be further synsets
// containing both.
func (s *Store) AreSynonyms(literal1, literal2 string, pos schemas.PartOfSpeech) (string, error) {
	senses, err := s.LookupByLiteral(literal1, pos)
	if err != nil {
		return "", err
	}
	for _, sense := range senses {
		match, err := s.LiteralInSynset(literal2, pos, sense.ID, false)
		if err != nil {
			return "", err
		}
		if match {
			return sense.ID, nil
		}
	}
	return "", nil
}

// RelationTypes returns the distinct relation types leaving id, in
// relation-list order. The console uses it to summarize a sense.
func (s *Store) RelationTypes(id string, pos schemas.PartOfSpeech) ([]string, error) {
	sub, err := s.sub(pos)
	if err != nil {
		return nil, err
	}
	syns, ok := sub.synsets[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q (%s)", ErrNotFound, id, pos)
	}
	var types []string
	seen := make(map[string]struct{})
	for _, rel := range syns.Relations {
		if _, dup := seen[rel.Type]; dup {
			continue
		}
		seen[rel.Type] = struct{}{}
		types = append(types, rel.Type)
	}
	return types, nil
}
