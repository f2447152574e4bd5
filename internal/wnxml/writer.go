package wnxml

import (
	"fmt"
	"io"
	"sort"

	"github.com/beevik/etree"
	"github.com/xkilldash9x/wnquery-cli/api/schemas"
)

// Document framing for full exports.
const (
	docType = `<!DOCTYPE WNXML SYSTEM "wnxml.dtd">`
	rootTag = "WNXML"
)

// WriteHeader writes the XML declaration, DTD reference and opening root
// tag of a full VisDic export.
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n%s\n<%s>\n", docType, rootTag)
	return err
}

// WriteFooter closes the root element opened by WriteHeader.
func WriteFooter(w io.Writer) error {
	_, err := fmt.Fprintf(w, "</%s>\n", rootTag)
	return err
}

// WriteSynset serializes one synset as a single-line <SYNSET> record.
// Escaping is etree's job. The relation list is sorted and deduplicated on
// output only; the in-memory list keeps whatever duplicates inversion
// produced.
func WriteSynset(w io.Writer, s *schemas.Synset) error {
	doc := etree.NewDocument()
	root := doc.CreateElement("SYNSET")

	setTag(root, "ID", s.ID)
	if s.ID3 != "" {
		setTag(root, "ID3", s.ID3)
	}
	setTag(root, "POS", string(s.POS))

	synonym := root.CreateElement("SYNONYM")
	for _, syn := range s.Synonyms {
		lit := synonym.CreateElement("LITERAL")
		lit.CreateText(syn.Literal)
		setTag(lit, "SENSE", syn.Sense)
		if syn.LNote != "" {
			setTag(lit, "LNOTE", syn.LNote)
		}
		if syn.Nucleus != "" {
			setTag(lit, "NUCLEUS", syn.Nucleus)
		}
	}

	for _, rel := range uniqueSortedRelations(s.Relations) {
		el := root.CreateElement("ILR")
		el.CreateText(rel.Target)
		setTag(el, "TYPE", rel.Type)
	}

	if s.Definition != "" {
		setTag(root, "DEF", s.Definition)
	}
	if s.BCS != "" {
		setTag(root, "BCS", s.BCS)
	}
	for _, usage := range s.Usages {
		setTag(root, "USAGE", usage)
	}
	for _, note := range s.Notes {
		setTag(root, "SNOTE", note)
	}
	if s.Stamp != "" {
		setTag(root, "STAMP", s.Stamp)
	}
	if s.Domain != "" {
		setTag(root, "DOMAIN", s.Domain)
	}
	writeLinks(root, "SUMO", s.SumoLinks)
	if s.NL != "" {
		setTag(root, "NL", s.NL)
	}
	if s.TNL != "" {
		setTag(root, "TNL", s.TNL)
	}
	writeLinks(root, "ELR", s.ExtLinks)
	writeLinks(root, "ELR3", s.ExtLinks3)
	writeLinks(root, "EKSZ", s.EkszLinks)
	writeLinks(root, "VFRAME", s.VFrameLinks)

	if _, err := doc.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func setTag(parent *etree.Element, tag, text string) {
	parent.CreateElement(tag).CreateText(text)
}

func writeLinks(parent *etree.Element, tag string, links []schemas.Link) {
	for _, link := range links {
		el := parent.CreateElement(tag)
		el.CreateText(link.Target)
		setTag(el, "TYPE", link.Type)
	}
}

func uniqueSortedRelations(relations []schemas.Relation) []schemas.Relation {
	out := make([]schemas.Relation, 0, len(relations))
	seen := make(map[schemas.Relation]struct{}, len(relations))
	for _, rel := range relations {
		if _, dup := seen[rel]; dup {
			continue
		}
		seen[rel] = struct{}{}
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Target != out[j].Target {
			return out[i].Target < out[j].Target
		}
		return out[i].Type < out[j].Type
	})
	return out
}
