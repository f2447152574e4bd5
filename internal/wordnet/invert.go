package wordnet

import (
	"sort"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
	"go.uber.org/zap"
)

// inverseRelations maps every invertible relation type to its inverse.
// Several relation types are their own inverse. Types absent from the table
// are left alone.
var inverseRelations = map[string]string{
	"hypernym":                "hyponym",
	"holo_member":             "mero_member",
	"holo_part":               "mero_part",
	"holo_portion":            "mero_portion",
	"region_domain":           "region_member",
	"usage_domain":            "usage_member",
	"category_domain":         "category_member",
	"near_antonym":            "near_antonym",
	"middle":                  "middle",
	"verb_group":              "verb_group",
	"similar_to":              "similar_to",
	"also_see":                "also_see",
	"be_in_state":             "be_in_state",
	"eng_derivative":          "eng_derivative",
	"is_consequent_state_of":  "has_consequent_state",
	"is_preparatory_phase_of": "has_preparatory_phase",
	"is_telos_of":             "has_telos",
	"subevent":                "has_subevent",
	"causes":                  "caused_by",
}

// InvertRelations runs the one-shot inversion pass over all four
// part-of-speech sub-graphs: for every edge of an invertible type it
// appends the reverse-typed edge to the target synset. It must run exactly
// once, after the entire input has been inserted; a forward edge's target
// may not exist yet mid-load.
//
// The pass only adds edges. Originals are never removed or deduplicated, so
// a synset's relation list may hold duplicate pairs when the source data
// already carried both directions.
func (s *Store) InvertRelations() {
	s.log.Info("Inverting relations for nouns...")
	s.invertSub(s.nouns)
	s.log.Info("Inverting relations for verbs...")
	s.invertSub(s.verbs)
	s.log.Info("Inverting relations for adjectives...")
	s.invertSub(s.adjectives)
	s.log.Info("Inverting relations for adverbs...")
	s.invertSub(s.adverbs)
}

// invertSub inverts one sub-graph. Synsets iterate sorted by id and each
// relation list iterates sorted by (target, type) so warnings and additions
// come out in the same order on every run.
func (s *Store) invertSub(sub *subStore) {
	ids := make([]string, 0, len(sub.synsets))
	for id := range sub.synsets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		source := sub.synsets[id]

		relations := make([]schemas.Relation, len(source.Relations))
		copy(relations, source.Relations)
		sort.Slice(relations, func(i, j int) bool {
			if relations[i].Target != relations[j].Target {
				return relations[i].Target < relations[j].Target
			}
			return relations[i].Type < relations[j].Type
		})

		for _, rel := range relations {
			inverse, invertible := inverseRelations[rel.Type]
			if !invertible {
				continue
			}
			target, exists := sub.synsets[rel.Target]
			if !exists {
				s.log.Warn("Synset is missing as a relation target",
					zap.String("code", "W03"),
					zap.String("target", rel.Target),
					zap.String("relation", rel.Type),
					zap.String("source", source.ID))
				continue
			}
			if target.ID == source.ID {
				s.log.Warn("Self-referencing relation",
					zap.String("code", "W04"),
					zap.String("relation", inverse),
					zap.String("id", source.ID))
				continue
			}
			target.Relations = append(target.Relations, schemas.Relation{Target: source.ID, Type: inverse})
			s.log.Info("Added inverted relation",
				zap.String("target", source.ID),
				zap.String("type", inverse),
				zap.String("synset", target.ID))
		}
	}
}
