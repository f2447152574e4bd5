package wordnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
)

func TestInvertRelations(t *testing.T) {
	t.Parallel()

	t.Run("hypernym gains a hyponym on the target", func(t *testing.T) {
		t.Parallel()
		store := NewStore(nil)
		mustInsert(t, store, makeSynset(t, "n1", schemas.Noun, []string{"dog"}, "n2", "hypernym"))
		mustInsert(t, store, makeSynset(t, "n2", schemas.Noun, []string{"canine"}))
		store.InvertRelations()

		canine, err := store.LookupByID("n2", schemas.Noun)
		require.NoError(t, err)
		assert.Contains(t, canine.Relations, schemas.Relation{Target: "n1", Type: "hyponym"})

		// The forward edge is untouched.
		dog, err := store.LookupByID("n1", schemas.Noun)
		require.NoError(t, err)
		assert.Equal(t, []schemas.Relation{{Target: "n2", Type: "hypernym"}}, dog.Relations)
	})

	t.Run("non-invertible types are ignored", func(t *testing.T) {
		t.Parallel()
		store := NewStore(nil)
		mustInsert(t, store, makeSynset(t, "n1", schemas.Noun, []string{"a"}, "n2", "particle"))
		mustInsert(t, store, makeSynset(t, "n2", schemas.Noun, []string{"b"}))
		store.InvertRelations()

		target, err := store.LookupByID("n2", schemas.Noun)
		require.NoError(t, err)
		assert.Empty(t, target.Relations)
	})

	t.Run("missing target warns and continues", func(t *testing.T) {
		t.Parallel()
		store, logs := observedStore(t)
		mustInsert(t, store, makeSynset(t, "n1", schemas.Noun, []string{"a"}, "n404", "hypernym", "n2", "hypernym"))
		mustInsert(t, store, makeSynset(t, "n2", schemas.Noun, []string{"b"}))
		store.InvertRelations()

		warnings := logs.FilterField(zap.String("code", "W03")).All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "n404", warnings[0].ContextMap()["target"])

		// The edge with a live target still got inverted.
		target, err := store.LookupByID("n2", schemas.Noun)
		require.NoError(t, err)
		assert.Contains(t, target.Relations, schemas.Relation{Target: "n1", Type: "hyponym"})
	})

	t.Run("self reference warns and adds nothing", func(t *testing.T) {
		t.Parallel()
		store, logs := observedStore(t)
		mustInsert(t, store, makeSynset(t, "n1", schemas.Noun, []string{"a"}, "n1", "hypernym"))
		store.InvertRelations()

		warnings := logs.FilterField(zap.String("code", "W04")).All()
		require.Len(t, warnings, 1)

		syns, err := store.LookupByID("n1", schemas.Noun)
		require.NoError(t, err)
		assert.Equal(t, []schemas.Relation{{Target: "n1", Type: "hypernym"}}, syns.Relations)
	})

	t.Run("symmetric pairs already present in the source duplicate", func(t *testing.T) {
		// near_antonym is its own inverse. When both directions exist in the
		// source, inversion adds each of them again, and the echo appended to
		// a2 while visiting a1 is itself re-inverted when a2's turn comes.
		// The pass never deduplicates.
		t.Parallel()
		store := NewStore(nil)
		mustInsert(t, store, makeSynset(t, "a1", schemas.Adjective, []string{"hot"}, "a2", "near_antonym"))
		mustInsert(t, store, makeSynset(t, "a2", schemas.Adjective, []string{"cold"}, "a1", "near_antonym"))
		store.InvertRelations()

		hot, err := store.LookupByID("a1", schemas.Adjective)
		require.NoError(t, err)
		assert.Equal(t, []schemas.Relation{
			{Target: "a2", Type: "near_antonym"},
			{Target: "a2", Type: "near_antonym"},
			{Target: "a2", Type: "near_antonym"},
		}, hot.Relations)

		cold, err := store.LookupByID("a2", schemas.Adjective)
		require.NoError(t, err)
		assert.Equal(t, []schemas.Relation{
			{Target: "a1", Type: "near_antonym"},
			{Target: "a1", Type: "near_antonym"},
		}, cold.Relations)
	})

	t.Run("each sub-graph inverts independently", func(t *testing.T) {
		t.Parallel()
		store := NewStore(nil)
		mustInsert(t, store, makeSynset(t, "n1", schemas.Noun, []string{"a"}, "n2", "hypernym"))
		mustInsert(t, store, makeSynset(t, "n2", schemas.Noun, []string{"b"}))
		// A verb synset under the same id as the noun target must not be
		// touched by the noun pass.
		mustInsert(t, store, makeSynset(t, "n2", schemas.Verb, []string{"vb"}))
		store.InvertRelations()

		verb, err := store.LookupByID("n2", schemas.Verb)
		require.NoError(t, err)
		assert.Empty(t, verb.Relations)
	})
}
