// Package console implements the interactive query loop over a loaded
// lexical graph: one dot-command per line, results on the output stream,
// prompts and caller mistakes on the error stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
	"github.com/xkilldash9x/wnquery-cli/internal/semfeatures"
	"github.com/xkilldash9x/wnquery-cli/internal/wordnet"
	"go.uber.org/zap"
)

// Console dispatches dot-commands against the immutable graph. It holds no
// session state beyond the graph and the optional feature map.
type Console struct {
	wn     *wordnet.Store
	sf     *semfeatures.Map
	prompt string
	log    *zap.Logger
}

// New creates a console. sf may be nil when no semantic features document
// was loaded; the feature commands then report that they are unavailable.
func New(wn *wordnet.Store, sf *semfeatures.Map, prompt string, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{wn: wn, sf: sf, prompt: prompt, log: logger.Named("console")}
}

// Run reads commands from in until .q or EOF. Query results go to out;
// prompts and invalid part-of-speech complaints go to errOut, keeping out
// clean for scripted use.
func (c *Console) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	fmt.Fprintln(errOut, "Type your query, or .h for help, .q to quit")
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(errOut, c.prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == ".q" {
			return nil
		}
		if line == "" {
			continue
		}
		if err := c.Execute(line, out); err != nil {
			if errors.Is(err, wordnet.ErrInvalidPOS) {
				fmt.Fprintln(errOut, err)
				continue
			}
			return err
		}
	}
}

// Execute runs a single query command and writes its result to out. The
// only error it returns for a well-formed command is an invalid
// part-of-speech tag.
func (c *Console) Execute(query string, out io.Writer) error {
	t := strings.Split(query, " ")
	switch t[0] {
	case ".h":
		c.writeHelp(out)
		return nil
	case ".i":
		return c.cmdLookupID(t, out)
	case ".l":
		return c.cmdLookupLiteral(t, out)
	case ".rl":
		return c.cmdRelationsOfLiteral(t, out)
	case ".ri":
		return c.cmdRelationsOfID(t, out)
	case ".ti":
		return c.cmdTraceID(t, out)
	case ".tl":
		return c.cmdTraceLiteral(t, out)
	case ".ci":
		return c.cmdConnectedID(t, out)
	case ".cl":
		return c.cmdConnectedLiteral(t, out)
	case ".cli":
		return c.cmdLiteralInSynset(t, out)
	case ".slc":
		return c.cmdSimilarity(t, out)
	case ".md":
		return c.cmdMaxDepth(t, out)
	case ".sg":
		return c.cmdSubgraphSize(t, out)
	case ".s":
		return c.cmdFeature(t, out)
	case ".sc":
		return c.cmdFeatureCompatible(t, out)
	}
	fmt.Fprintf(out, "Unknown command\n\n")
	return nil
}

func (c *Console) writeHelp(out io.Writer) {
	lines := []string{
		"Available commands:",
		".h                                                this help",
		".q                                                quit",
		".i   <id> <pos>                                   look up synset id in given POS (n,v,a,b)",
		".l   <literal>                                    look up all synsets containing literal in all POS",
		".l   <literal> <pos>                              look up all synsets containing literal in given POS",
		".l   <literal> <sensenum> <pos>                   look up synset containing literal with given sense number in given POS",
		".rl  <literal> <pos>                              list known relations of all senses of literal in POS",
		".rl  <literal> <pos> <relation>                   look up relation (hypernym, hyponym) of all senses of literal with id and POS, list target ids",
		".ri  <id> <pos> <relation>                        look up relation of synset with id and POS, list target ids",
		".ti  <id> <pos> <relation>                        trace relations of synset with id and POS",
		".tl  <literal> <pos> <relation>                   trace relations of all senses of literal in POS",
		".ci  <id> <pos> <relation> <id1> [<id2>...]       check if any of id1,id2,... is reachable from id by following relation",
		".cl  <literal> <pos> <relation> <id1> [<id2>...]  check if any of id1,id2,... is reachable from any sense of literal by following relation",
		".cli <literal> <pos> <id> [hyponyms]              check if synset contains literal, or if \"hyponyms\" is added, any of its hyponyms",
		".slc <literal1> <literal2> <pos> <relation> [top] calculate Leacock-Chodorow similarity for all senses of literals in pos using relation",
		"                                                  if 'top' is added, an artificial root node is added to relation paths, making WN interconnected.",
		".md  <id> <pos> <relation>                        calculate the longest possible path to synset with id and POS from the root level using relation",
		".sg  <id> <pos> <relation>                        calculate the number of nodes in the graph starting from synset id doing a recursive trace using relation",
	}
	if c.sf != nil {
		lines = append(lines,
			".s  <feature>                                     look up semantic feature",
			".sc <literal> <pos> <feature>                    check whether any sense of literal is compatible with semantic feature",
		)
	}
	fmt.Fprintf(out, "%s\n\n", strings.Join(lines, "\n"))
}

func incorrectFormat(out io.Writer, cmd string) {
	fmt.Fprintf(out, "Incorrect format for command %s\n\n", cmd)
}

// writeSynset writes the conventional one-line rendering of a synset.
func writeSynset(out io.Writer, syns *schemas.Synset) {
	fmt.Fprintln(out, syns.String())
}

// writeSynsetByID writes the synset stored under (id, pos), or nothing when
// the id is unknown.
func (c *Console) writeSynsetByID(out io.Writer, id string, pos schemas.PartOfSpeech) error {
	syns, err := c.wn.LookupByID(id, pos)
	if err != nil {
		if errors.Is(err, wordnet.ErrNotFound) {
			return nil
		}
		return err
	}
	writeSynset(out, syns)
	return nil
}

func (c *Console) cmdLookupID(t []string, out io.Writer) error {
	if len(t) != 3 {
		incorrectFormat(out, t[0])
		return nil
	}
	syns, err := c.wn.LookupByID(t[1], schemas.PartOfSpeech(t[2]))
	if err != nil {
		if errors.Is(err, wordnet.ErrNotFound) {
			fmt.Fprintf(out, "Synset not found\n\n")
			return nil
		}
		return err
	}
	writeSynset(out, syns)
	fmt.Fprintln(out)
	return nil
}

func (c *Console) cmdLookupLiteral(t []string, out io.Writer) error {
	switch len(t) {
	case 2:
		// All parts of speech, flattened in conventional POS order.
		var res []*schemas.Synset
		for _, pos := range schemas.AllPartsOfSpeech {
			senses, err := c.wn.LookupByLiteral(t[1], pos)
			if err != nil {
				return err
			}
			res = append(res, senses...)
		}
		writeSynsetList(out, res, "Literal not found")
		return nil
	case 3:
		res, err := c.wn.LookupByLiteral(t[1], schemas.PartOfSpeech(t[2]))
		if err != nil {
			return err
		}
		writeSynsetList(out, res, "Literal not found")
		return nil
	case 4:
		sense, err := strconv.Atoi(t[2])
		if err != nil {
			incorrectFormat(out, t[0])
			return nil
		}
		syns, err := c.wn.LookupSense(t[1], sense, schemas.PartOfSpeech(t[3]))
		if err != nil {
			if errors.Is(err, wordnet.ErrNotFound) {
				fmt.Fprintf(out, "Word sense not found\n\n")
				return nil
			}
			return err
		}
		writeSynset(out, syns)
		fmt.Fprintln(out)
		return nil
	}
	incorrectFormat(out, t[0])
	return nil
}

func writeSynsetList(out io.Writer, res []*schemas.Synset, emptyMsg string) {
	if len(res) == 0 {
		fmt.Fprintf(out, "%s\n\n", emptyMsg)
		return
	}
	for _, syns := range res {
		writeSynset(out, syns)
	}
	fmt.Fprintln(out)
}

func (c *Console) cmdRelationsOfLiteral(t []string, out io.Writer) error {
	if len(t) != 3 && len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	pos := schemas.PartOfSpeech(t[2])
	senses, err := c.wn.LookupByLiteral(t[1], pos)
	if err != nil {
		return err
	}
	if len(senses) == 0 {
		fmt.Fprintln(out, "Literal not found")
		return nil
	}

	if len(t) == 3 {
		// List the distinct relation types of every sense.
		for _, syns := range senses {
			writeSynset(out, syns)
			types, err := c.wn.RelationTypes(syns.ID, pos)
			if err != nil {
				return err
			}
			for _, rel := range types {
				fmt.Fprintf(out, "  %s\n", rel)
			}
			fmt.Fprintln(out)
		}
		return nil
	}

	// List the targets of one relation type for every sense.
	for _, syns := range senses {
		if err := c.writeSynsetByID(out, syns.ID, pos); err != nil {
			return err
		}
		targets, err := c.wn.DirectTargets(syns.ID, pos, t[3])
		if err != nil {
			return err
		}
		for _, id := range targets {
			fmt.Fprint(out, "  ")
			if err := c.writeSynsetByID(out, id, pos); err != nil {
				return err
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func (c *Console) cmdRelationsOfID(t []string, out io.Writer) error {
	if len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	pos := schemas.PartOfSpeech(t[2])
	targets, err := c.wn.DirectTargets(t[1], pos, t[3])
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(out, "Synset not found or has no relations of the specified type")
		return nil
	}
	for _, id := range targets {
		if err := c.writeSynsetByID(out, id, pos); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) cmdTraceID(t []string, out io.Writer) error {
	if len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	lines, err := c.wn.TraceTree(t[1], schemas.PartOfSpeech(t[2]), t[3])
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintf(out, "Synset not found\n\n")
		return nil
	}
	fmt.Fprintf(out, "%s\n\n", strings.Join(lines, "\n"))
	return nil
}

func (c *Console) cmdTraceLiteral(t []string, out io.Writer) error {
	if len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	pos := schemas.PartOfSpeech(t[2])
	senses, err := c.wn.LookupByLiteral(t[1], pos)
	if err != nil {
		return err
	}
	if len(senses) == 0 {
		fmt.Fprintf(out, "Literal not found\n\n")
		return nil
	}
	for _, syns := range senses {
		lines, err := c.wn.TraceTree(syns.ID, pos, t[3])
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			fmt.Fprintf(out, "Synset not found\n\n")
			continue
		}
		fmt.Fprintf(out, "%s\n\n", strings.Join(lines, "\n"))
	}
	return nil
}

func targetSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (c *Console) cmdConnectedID(t []string, out io.Writer) error {
	if len(t) < 5 {
		incorrectFormat(out, t[0])
		return nil
	}
	found, err := c.wn.ConnectedVia(t[1], schemas.PartOfSpeech(t[2]), t[3], targetSet(t[4:]))
	if err != nil {
		return err
	}
	if found == "" {
		fmt.Fprintln(out, "No connection found")
		return nil
	}
	fmt.Fprintf(out, "Connection found to %s\n", found)
	return nil
}

func (c *Console) cmdConnectedLiteral(t []string, out io.Writer) error {
	if len(t) < 5 {
		incorrectFormat(out, t[0])
		return nil
	}
	senseID, foundID, err := c.wn.LiteralConnectedVia(t[1], schemas.PartOfSpeech(t[2]), t[3], targetSet(t[4:]))
	if err != nil {
		return err
	}
	if senseID == "" || foundID == "" {
		fmt.Fprintln(out, "No connection found")
		return nil
	}
	fmt.Fprintf(out, "Connection found:\nSense of literal: %s\nTarget id: %s\n", senseID, foundID)
	return nil
}

func (c *Console) cmdLiteralInSynset(t []string, out io.Writer) error {
	hyponyms := len(t) == 5 && t[4] == "hyponyms"
	if len(t) != 4 && !hyponyms {
		incorrectFormat(out, t[0])
		return nil
	}
	match, err := c.wn.LiteralInSynset(t[1], schemas.PartOfSpeech(t[2]), t[3], hyponyms)
	if err != nil {
		return err
	}
	if match {
		fmt.Fprintln(out, "Compatible")
	} else {
		fmt.Fprintln(out, "Not compatible")
	}
	return nil
}

func (c *Console) cmdSimilarity(t []string, out io.Writer) error {
	addTop := len(t) == 6 && t[5] == "top"
	if len(t) != 5 && !addTop {
		incorrectFormat(out, t[0])
		return nil
	}
	results, err := c.wn.SimilarityBetweenLiterals(t[1], t[2], schemas.PartOfSpeech(t[3]), t[4], addTop)
	if err != nil {
		return err
	}

	scores := make([]float64, 0, len(results))
	for score := range results {
		scores = append(scores, score)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	fmt.Fprintln(out, "Results:")
	for _, score := range scores {
		pair := results[score]
		fmt.Fprintf(out, "  %s\t%s  %s\n", strconv.FormatFloat(score, 'g', -1, 64), pair.First, pair.Second)
	}
	return nil
}

func (c *Console) cmdMaxDepth(t []string, out io.Writer) error {
	if len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	depth, err := c.wn.MaxDepth(t[1], schemas.PartOfSpeech(t[2]), t[3])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, depth)
	return nil
}

func (c *Console) cmdSubgraphSize(t []string, out io.Writer) error {
	if len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	size, err := c.wn.SubgraphSize(t[1], schemas.PartOfSpeech(t[2]), t[3])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, size)
	return nil
}

func (c *Console) cmdFeature(t []string, out io.Writer) error {
	if c.sf == nil {
		fmt.Fprintln(out, "Sorry, semantic features not loaded.")
		return nil
	}
	if len(t) != 2 {
		incorrectFormat(out, t[0])
		return nil
	}
	idSet := c.sf.LookupFeature(t[1])
	if len(idSet) == 0 {
		fmt.Fprintln(out, "Semantic feature not found")
		return nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Fprintf(out, "%d synset(s) found:\n%s\n", len(ids), strings.Join(ids, "\n"))
	return nil
}

func (c *Console) cmdFeatureCompatible(t []string, out io.Writer) error {
	if c.sf == nil {
		fmt.Fprintln(out, "Sorry, semantic features not loaded.")
		return nil
	}
	if len(t) != 4 {
		incorrectFormat(out, t[0])
		return nil
	}
	pos := schemas.PartOfSpeech(t[2])
	senseID, featureID, err := c.sf.LiteralCompatibleWithFeature(t[1], pos, t[3])
	if err != nil {
		return err
	}
	if senseID == "" || featureID == "" {
		fmt.Fprintln(out, "Compatibility not found")
		return nil
	}
	fmt.Fprint(out, "Compatibility found:\nSense of literal: ")
	if err := c.writeSynsetByID(out, senseID, pos); err != nil {
		return err
	}
	fmt.Fprint(out, "Synset ID pertaining to feature: ")
	return c.writeSynsetByID(out, featureID, pos)
}
