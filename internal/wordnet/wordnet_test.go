package wordnet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
)

const loaderDocument = `<WNXML>
<SYNSET><ID>n1</ID><POS>n</POS><SYNONYM><LITERAL>dog<SENSE>1</SENSE></LITERAL></SYNONYM><ILR>n2<TYPE>hypernym</TYPE></ILR></SYNSET>
<SYNSET><ID>n2</ID><POS>n</POS><SYNONYM><LITERAL>canine<SENSE>1</SENSE></LITERAL></SYNONYM></SYNSET>
<SYNSET><ID>x1</ID><POS>x</POS><SYNONYM><LITERAL>bogus<SENSE>1</SENSE></LITERAL></SYNONYM></SYNSET>
</WNXML>
`

func TestLoadReader(t *testing.T) {
	t.Parallel()

	t.Run("builds and inverts the graph", func(t *testing.T) {
		t.Parallel()
		store, err := LoadReader(strings.NewReader(loaderDocument), zap.NewNop())
		require.NoError(t, err)

		canine, err := store.LookupByID("n2", schemas.Noun)
		require.NoError(t, err)
		assert.Contains(t, canine.Relations, schemas.Relation{Target: "n1", Type: "hyponym"})
	})

	t.Run("skips records with an invalid part of speech", func(t *testing.T) {
		t.Parallel()
		core, logs := observer.New(zap.DebugLevel)
		store, err := LoadReader(strings.NewReader(loaderDocument), zap.New(core))
		require.NoError(t, err)

		warnings := logs.FilterField(zap.String("code", "W02")).All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "x1", warnings[0].ContextMap()["id"])
		assert.EqualValues(t, 4, warnings[0].ContextMap()["line"])

		stats, err := store.Stats(schemas.Noun)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Synsets)
	})

	t.Run("corrupt input is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := LoadReader(strings.NewReader("<SYNSET><ID>n1</ID>"), zap.NewNop())
		require.Error(t, err)
	})
}
