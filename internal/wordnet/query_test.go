package wordnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/wnquery-cli/api/schemas"
)

func TestDirectTargets(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	t.Run("forward edge", func(t *testing.T) {
		t.Parallel()
		targets, err := store.DirectTargets("n1", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, []string{"n2"}, targets)
	})

	t.Run("inverted edges in inversion order", func(t *testing.T) {
		t.Parallel()
		targets, err := store.DirectTargets("n2", schemas.Noun, "hyponym")
		require.NoError(t, err)
		assert.Equal(t, []string{"n1", "n4"}, targets)
	})

	t.Run("unknown id yields empty", func(t *testing.T) {
		t.Parallel()
		targets, err := store.DirectTargets("n404", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Empty(t, targets)
	})

	t.Run("duplicates are preserved", func(t *testing.T) {
		t.Parallel()
		dup := NewStore(nil)
		mustInsert(t, dup, makeSynset(t, "n1", schemas.Noun, []string{"a"}, "n2", "hypernym", "n2", "hypernym"))
		targets, err := dup.DirectTargets("n1", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, []string{"n2", "n2"}, targets)
	})
}

func TestTrace(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	t.Run("preorder chain", func(t *testing.T) {
		t.Parallel()
		ids, err := store.Trace("n1", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, []string{"n1", "n2", "n3"}, ids)
	})

	t.Run("starts with the id even when unknown", func(t *testing.T) {
		t.Parallel()
		ids, err := store.Trace("n404", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, []string{"n404"}, ids)
	})

	t.Run("branches expand depth first", func(t *testing.T) {
		t.Parallel()
		ids, err := store.Trace("n3", schemas.Noun, "hyponym")
		require.NoError(t, err)
		assert.Equal(t, []string{"n3", "n2", "n1", "n5", "n4"}, ids)
	})
}

func TestTraceWithDepth(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	entries, err := store.TraceWithDepth("n1", schemas.Noun, "hypernym")
	require.NoError(t, err)
	assert.Equal(t, []DepthEntry{
		{ID: "n1", Depth: 0},
		{ID: "n2", Depth: 1},
		{ID: "n3", Depth: 2},
	}, entries)
}

func TestTraceTree(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	t.Run("indents two spaces per level", func(t *testing.T) {
		t.Parallel()
		lines, err := store.TraceTree("n1", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"n1  {dog:1}  ()",
			"  n2  {canine:1}  ()",
			"    n3  {animal:1}  ()",
		}, lines)
	})

	t.Run("unknown id yields empty", func(t *testing.T) {
		t.Parallel()
		lines, err := store.TraceTree("n404", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	for _, tc := range []struct {
		id   string
		want int
	}{
		{"n5", 4}, // puppy -> dog -> canine -> animal
		{"n1", 3},
		{"n3", 1}, // top of the taxonomy
		{"n9", 1}, // no relations at all
	} {
		depth, err := store.MaxDepth(tc.id, schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, tc.want, depth, "id %s", tc.id)
	}
}

func TestSubgraphSize(t *testing.T) {
	t.Parallel()

	t.Run("counts distinct nodes once", func(t *testing.T) {
		t.Parallel()
		store := newAnimalStore(t)
		size, err := store.SubgraphSize("n3", schemas.Noun, "hyponym")
		require.NoError(t, err)
		assert.Equal(t, 5, size)
	})

	t.Run("leaf yields one", func(t *testing.T) {
		t.Parallel()
		store := newAnimalStore(t)
		size, err := store.SubgraphSize("n9", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, 1, size)
	})

	t.Run("diamond join counts the shared ancestor once", func(t *testing.T) {
		t.Parallel()
		store := NewStore(nil)
		mustInsert(t, store, makeSynset(t, "d1", schemas.Noun, []string{"a"}, "d2", "hypernym", "d3", "hypernym"))
		mustInsert(t, store, makeSynset(t, "d2", schemas.Noun, []string{"b"}, "d4", "hypernym"))
		mustInsert(t, store, makeSynset(t, "d3", schemas.Noun, []string{"c"}, "d4", "hypernym"))
		mustInsert(t, store, makeSynset(t, "d4", schemas.Noun, []string{"d"}))

		size, err := store.SubgraphSize("d1", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, 4, size)

		// Trace, by contrast, reports the shared ancestor once per path.
		ids, err := store.Trace("d1", schemas.Noun, "hypernym")
		require.NoError(t, err)
		assert.Equal(t, []string{"d1", "d2", "d4", "d3", "d4"}, ids)
	})
}

func TestConnectedVia(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	targetSet := func(ids ...string) map[string]struct{} {
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		return set
	}

	t.Run("finds an ancestor", func(t *testing.T) {
		t.Parallel()
		found, err := store.ConnectedVia("n1", schemas.Noun, "hypernym", targetSet("n3"))
		require.NoError(t, err)
		assert.Equal(t, "n3", found)
	})

	t.Run("the id itself counts", func(t *testing.T) {
		t.Parallel()
		found, err := store.ConnectedVia("n1", schemas.Noun, "hypernym", targetSet("n1", "n3"))
		require.NoError(t, err)
		assert.Equal(t, "n1", found)
	})

	t.Run("direction matters", func(t *testing.T) {
		t.Parallel()
		found, err := store.ConnectedVia("n3", schemas.Noun, "hypernym", targetSet("n1"))
		require.NoError(t, err)
		assert.Empty(t, found, "n1 is below n3, not above it")
	})

	t.Run("no connection", func(t *testing.T) {
		t.Parallel()
		found, err := store.ConnectedVia("n1", schemas.Noun, "hypernym", targetSet("n9"))
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestLiteralConnectedVia(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	t.Run("reports the connecting sense and the target", func(t *testing.T) {
		t.Parallel()
		senseID, foundID, err := store.LiteralConnectedVia("puppy", schemas.Noun, "hypernym", map[string]struct{}{"n3": {}})
		require.NoError(t, err)
		assert.Equal(t, "n5", senseID)
		assert.Equal(t, "n3", foundID)
	})

	t.Run("no sense connects", func(t *testing.T) {
		t.Parallel()
		senseID, foundID, err := store.LiteralConnectedVia("stone", schemas.Noun, "hypernym", map[string]struct{}{"n3": {}})
		require.NoError(t, err)
		assert.Empty(t, senseID)
		assert.Empty(t, foundID)
	})
}

func TestLiteralInSynset(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	t.Run("direct member", func(t *testing.T) {
		t.Parallel()
		ok, err := store.LiteralInSynset("dog", schemas.Noun, "n1", false)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("hyponym descendants are searched only on request", func(t *testing.T) {
		t.Parallel()
		ok, err := store.LiteralInSynset("puppy", schemas.Noun, "n3", false)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.LiteralInSynset("puppy", schemas.Noun, "n3", true)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown synset", func(t *testing.T) {
		t.Parallel()
		ok, err := store.LiteralInSynset("dog", schemas.Noun, "n404", true)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAreSynonyms(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	mustInsert(t, store, makeSynset(t, "n1", schemas.Noun, []string{"car"}))
	mustInsert(t, store, makeSynset(t, "n2", schemas.Noun, []string{"car", "automobile"}))

	t.Run("shared synset found in first literal's sense order", func(t *testing.T) {
		t.Parallel()
		id, err := store.AreSynonyms("car", "automobile", schemas.Noun)
		require.NoError(t, err)
		assert.Equal(t, "n2", id)
	})

	t.Run("not synonyms", func(t *testing.T) {
		t.Parallel()
		id, err := store.AreSynonyms("car", "dog", schemas.Noun)
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestRelationTypes(t *testing.T) {
	t.Parallel()
	store := newAnimalStore(t)

	t.Run("distinct types in relation-list order", func(t *testing.T) {
		t.Parallel()
		types, err := store.RelationTypes("n2", schemas.Noun)
		require.NoError(t, err)
		assert.Equal(t, []string{"hypernym", "hyponym"}, types)
	})

	t.Run("missing id is an error", func(t *testing.T) {
		t.Parallel()
		_, err := store.RelationTypes("n404", schemas.Noun)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
