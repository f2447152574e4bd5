package schemas

import (
	"fmt"
	"strings"
)

// -- Core Lexical Graph Models --
// These types represent synsets exactly as they arrive from the VisDic XML
// parser. The graph store owns them after insertion; nothing outside the
// inversion pass mutates them afterwards.

// PartOfSpeech selects one of the four independent sub-graphs.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "n"
	Verb      PartOfSpeech = "v"
	Adjective PartOfSpeech = "a"
	Adverb    PartOfSpeech = "b"
)

// AllPartsOfSpeech lists the recognized tags in their conventional order.
var AllPartsOfSpeech = []PartOfSpeech{Noun, Verb, Adjective, Adverb}

// Valid reports whether the tag is one of the four recognized values.
func (p PartOfSpeech) Valid() bool {
	switch p {
	case Noun, Verb, Adjective, Adverb:
		return true
	}
	return false
}

// Synonym is a single word sense inside a synset. The (Literal, Sense) pair
// is unique within a part-of-speech across the whole store; this is a data
// contract, not something the store enforces structurally.
type Synonym struct {
	Literal string `json:"literal"`
	Sense   string `json:"sense"`
	LNote   string `json:"lnote,omitempty"`
	Nucleus string `json:"nucleus,omitempty"`
}

// Relation is a directed, typed edge to another synset in the same
// part-of-speech sub-graph. Targets are referenced by id string, never by
// pointer.
type Relation struct {
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Link is a typed cross-reference to an external resource (SUMO terms,
// other wordnets, verb frames). The core stores these untouched and never
// interprets them.
type Link struct {
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Synset is a concept node: one or more word senses sharing a meaning, plus
// the typed relations connecting it to other synsets of the same
// part-of-speech.
type Synset struct {
	ID         string       `json:"id"`
	ID3        string       `json:"id3,omitempty"` // PWN 3.0 cross-reference id
	POS        PartOfSpeech `json:"pos"`
	Definition string       `json:"def,omitempty"`
	BCS        string       `json:"bcs,omitempty"`
	Stamp      string       `json:"stamp,omitempty"`
	Domain     string       `json:"domain,omitempty"`
	NL         string       `json:"nl,omitempty"`
	TNL        string       `json:"tnl,omitempty"`

	Synonyms  []Synonym  `json:"synonyms"`
	Relations []Relation `json:"relations"`

	// Inert metadata carried through from the source document.
	Usages      []string `json:"usages,omitempty"`
	Notes       []string `json:"notes,omitempty"`
	SumoLinks   []Link   `json:"sumolinks,omitempty"`
	ExtLinks    []Link   `json:"elrs,omitempty"`
	ExtLinks3   []Link   `json:"elrs3,omitempty"`
	EkszLinks   []Link   `json:"ekszlinks,omitempty"`
	VFrameLinks []Link   `json:"vframelinks,omitempty"`
}

// Empty reports whether the synset is the zero-value sentinel. The parser
// hands one of these back when a record carried no content.
func (s *Synset) Empty() bool {
	return s.ID == ""
}

// String renders the conventional one-line form:
//
//	<id>  {literal:sense, ...}  (<definition>)
func (s *Synset) String() string {
	senses := make([]string, 0, len(s.Synonyms))
	for _, syn := range s.Synonyms {
		senses = append(senses, fmt.Sprintf("%s:%s", syn.Literal, syn.Sense))
	}
	return fmt.Sprintf("%s  {%s}  (%s)", s.ID, strings.Join(senses, ", "), s.Definition)
}
