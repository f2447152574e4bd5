package wordnet

import (
	"errors"
	"io"

	"github.com/xkilldash9x/wnquery-cli/internal/wnxml"
	"go.uber.org/zap"
)

// Load reads the VisDic document at path, inserts every record and runs the
// inversion pass, returning the finished, immutable graph. An unreadable
// source is the only fatal condition; data-quality issues (duplicate ids,
// invalid tags, bad inversion targets) are logged to logger and recovered.
func Load(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	records, err := wnxml.NewParser(logger).ParseFile(path)
	if err != nil {
		return nil, err
	}
	return build(records, logger), nil
}

// LoadReader is Load over an already-open document stream.
func LoadReader(r io.Reader, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	records, err := wnxml.NewParser(logger).Parse(r)
	if err != nil {
		return nil, err
	}
	return build(records, logger), nil
}

func build(records []wnxml.ParsedSynset, logger *zap.Logger) *Store {
	store := NewStore(logger)
	for _, rec := range records {
		if err := store.Insert(rec.Synset, rec.Line); err != nil {
			// Only an unrecognized POS tag lands here; the record is
			// dropped and the load continues.
			if errors.Is(err, ErrInvalidPOS) {
				store.log.Warn("Invalid part-of-speech for synset, record skipped",
					zap.String("code", "W02"),
					zap.String("id", rec.Synset.ID),
					zap.String("pos", string(rec.Synset.POS)),
					zap.Int("line", rec.Line))
				continue
			}
			store.log.Warn("Record skipped", zap.Error(err), zap.Int("line", rec.Line))
		}
	}
	store.InvertRelations()
	return store
}
