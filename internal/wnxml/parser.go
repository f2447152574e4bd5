// Package wnxml reads and writes the VisDic XML format carrying a
// WordNet-style lexical database: a flat sequence of <SYNSET> records,
// conventionally one per line, optionally wrapped in a <WNXML> root.
package wnxml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/xkilldash9x/wnquery-cli/api/schemas"
	"go.uber.org/zap"
)

const (
	synsetOpenTag  = "<SYNSET>"
	synsetCloseTag = "</SYNSET>"
)

// ParsedSynset pairs a decoded synset with the input line its <SYNSET> tag
// opened on. The line number is used for diagnostics only.
type ParsedSynset struct {
	Synset *schemas.Synset
	Line   int
}

// Parser decodes VisDic documents into synset records. The splitter works
// line-by-line so every record keeps its source position; each complete
// record fragment is then parsed as a standalone XML document. Anything
// outside <SYNSET>...</SYNSET> (the root tags, blank lines) is ignored,
// which matches the fault tolerance of VisDic exports that ship without a
// root element.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a parser that reports record-level problems on logger.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{log: logger.Named("wnxml")}
}

// ParseFile reads and decodes the document at path. A file that cannot be
// opened is a fatal error; there is no partial result.
func (p *Parser) ParseFile(path string) ([]ParsedSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse decodes the document from r, returning the records in document
// order together with their source lines.
func (p *Parser) Parse(r io.Reader) ([]ParsedSynset, error) {
	scanner := bufio.NewScanner(r)
	// Synset records carry whole glosses and usage examples; the default
	// token limit is too small for dense one-line records.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		records   []ParsedSynset
		fragment  strings.Builder
		inRecord  bool
		startLine int
		lineNo    int
	)

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		for {
			if !inRecord {
				i := strings.Index(text, synsetOpenTag)
				if i < 0 {
					break
				}
				inRecord = true
				startLine = lineNo
				text = text[i:]
			}
			j := strings.Index(text, synsetCloseTag)
			if j < 0 {
				fragment.WriteString(text)
				fragment.WriteString("\n")
				break
			}
			end := j + len(synsetCloseTag)
			fragment.WriteString(text[:end])

			syns, err := p.decodeRecord(fragment.String())
			if err != nil {
				return nil, fmt.Errorf("parse error in synset record starting at line %d: %w", startLine, err)
			}
			records = append(records, ParsedSynset{Synset: syns, Line: startLine})

			fragment.Reset()
			inRecord = false
			text = text[end:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	if inRecord {
		return nil, fmt.Errorf("end of input reached before %s (record started at line %d), possibly corrupt input", synsetCloseTag, startLine)
	}

	p.log.Debug("Parsed synset records", zap.Int("count", len(records)))
	return records, nil
}

// decodeRecord parses one complete <SYNSET> fragment into a Synset.
func (p *Parser) decodeRecord(fragment string) (*schemas.Synset, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil || root.Tag != "SYNSET" {
		return nil, fmt.Errorf("record has no SYNSET root element")
	}

	s := &schemas.Synset{
		ID:         childText(root, "ID"),
		ID3:        childText(root, "ID3"),
		POS:        schemas.PartOfSpeech(childText(root, "POS")),
		Definition: childText(root, "DEF"),
		BCS:        childText(root, "BCS"),
		Stamp:      childText(root, "STAMP"),
		Domain:     childText(root, "DOMAIN"),
		NL:         childText(root, "NL"),
		TNL:        childText(root, "TNL"),
	}

	if synonym := root.SelectElement("SYNONYM"); synonym != nil {
		for _, lit := range synonym.SelectElements("LITERAL") {
			s.Synonyms = append(s.Synonyms, schemas.Synonym{
				Literal: lit.Text(),
				Sense:   childText(lit, "SENSE"),
				LNote:   childText(lit, "LNOTE"),
				Nucleus: childText(lit, "NUCLEUS"),
			})
		}
	}

	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "ILR":
			s.Relations = append(s.Relations, schemas.Relation{Target: child.Text(), Type: childText(child, "TYPE")})
		case "USAGE":
			s.Usages = append(s.Usages, child.Text())
		case "SNOTE":
			s.Notes = append(s.Notes, child.Text())
		case "SUMO":
			s.SumoLinks = append(s.SumoLinks, schemas.Link{Target: child.Text(), Type: childText(child, "TYPE")})
		case "ELR":
			s.ExtLinks = append(s.ExtLinks, schemas.Link{Target: child.Text(), Type: childText(child, "TYPE")})
		case "ELR3":
			s.ExtLinks3 = append(s.ExtLinks3, schemas.Link{Target: child.Text(), Type: childText(child, "TYPE")})
		case "EKSZ":
			s.EkszLinks = append(s.EkszLinks, schemas.Link{Target: child.Text(), Type: childText(child, "TYPE")})
		case "VFRAME":
			s.VFrameLinks = append(s.VFrameLinks, schemas.Link{Target: child.Text(), Type: childText(child, "TYPE")})
		// Older exports carry equivalence links as dedicated tags; they
		// normalize onto the external-link list with fixed types.
		case "EQ_NEAR_SYNONYM":
			s.ExtLinks = append(s.ExtLinks, schemas.Link{Target: child.Text(), Type: "eq_near_synonym"})
		case "EQ_HYPERNYM":
			s.ExtLinks = append(s.ExtLinks, schemas.Link{Target: child.Text(), Type: "eq_has_hypernym"})
		case "EQ_HYPONYM":
			s.ExtLinks = append(s.ExtLinks, schemas.Link{Target: child.Text(), Type: "eq_has_hyponym"})
		}
	}

	return s, nil
}

// childText returns the text of the named child element, or "" when the
// child is absent.
func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
