// Package semfeatures maps semantic feature names (animate, edible, ...)
// to the synset ids interpreting them, loaded from a small XML document.
// Compatibility checks reduce to hypernym connectivity on the lexical
// graph.
package semfeatures

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/xkilldash9x/wnquery-cli/api/schemas"
	"github.com/xkilldash9x/wnquery-cli/internal/wordnet"
	"go.uber.org/zap"
)

// hypernym connectivity is the only graph operation this collaborator uses.
const compatibilityRelation = "hypernym"

// Map holds the feature-to-synset-ids mapping plus the graph it queries.
type Map struct {
	wn       *wordnet.Store
	features map[string][]string
	pairs    int
	log      *zap.Logger
}

// Load reads the feature document at path. An unreadable or malformed file
// is fatal; an empty document is fine.
func Load(path string, wn *wordnet.Store, logger *zap.Logger) (*Map, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("could not parse semantic features from %s: %w", path, err)
	}

	m := &Map{
		wn:       wn,
		features: make(map[string][]string),
		log:      logger.Named("semfeatures"),
	}
	for _, feat := range doc.FindElements("//semfeature") {
		name := feat.SelectAttrValue("name", "")
		if name == "" {
			continue
		}
		for _, syns := range feat.FindElements(".//synset") {
			if id := syns.SelectAttrValue("id", ""); id != "" {
				m.features[name] = append(m.features[name], id)
				m.pairs++
			}
		}
	}

	m.log.Info("Loaded semantic features",
		zap.Int("features", len(m.features)),
		zap.Int("pairs", m.pairs))
	return m, nil
}

// Pairs reports how many (feature, synset id) pairs were read.
func (m *Map) Pairs() int { return m.pairs }

// LookupFeature returns the set of synset ids interpreting the feature,
// empty when the feature is unknown.
func (m *Map) LookupFeature(feature string) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, id := range m.features[feature] {
		ids[id] = struct{}{}
	}
	return ids
}

// LiteralCompatibleWithFeature checks whether any sense of literal is a
// (distant) hyponym of any synset interpreting the feature. On success it
// returns the id of the compatible sense and the feature synset id it
// reached; both are empty when no sense is compatible or the feature is
// unknown.
func (m *Map) LiteralCompatibleWithFeature(literal string, pos schemas.PartOfSpeech, feature string) (senseID, featureID string, err error) {
	ids := m.LookupFeature(feature)
	if len(ids) == 0 {
		return "", "", nil
	}
	return m.wn.LiteralConnectedVia(literal, pos, compatibilityRelation, ids)
}
