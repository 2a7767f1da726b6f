package ldtk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Decode("test.ldtk", strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestFindWorldLevel(t *testing.T) {
	doc := mustDecode(t, multiWorldJSON)

	tests := []struct {
		name  string
		sel   Selection
		world string
		level string
		ok    bool
	}{
		{"first level", ByIndices(0, 0), "Overworld", "Meadow", true},
		{"second world", ByIndices(1, 1), "Underworld", "Pit", true},
		{"world out of range", ByIndices(2, 0), "", "", false},
		{"level out of range", ByIndices(0, 1), "", "", false},
		{"negative index", ByIndices(-1, 0), "", "", false},
		{"by iid", ByIID("0f6a7f10-25d0-11ef-8d9b-000000000021"), "Underworld", "Cave", true},
		{"unknown iid", ByIID("nonexistent"), "", "", false},
		{"empty iid", ByIID(""), "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, level, ok := doc.FindWorldLevel(tt.sel)
			require.Equal(t, tt.ok, ok)
			if !ok {
				assert.Nil(t, world)
				assert.Nil(t, level)
				return
			}
			assert.Equal(t, tt.world, world.Identifier)
			assert.Equal(t, tt.level, level.Identifier)
		})
	}
}

func TestFindWorldLevelFirstIIDMatchWins(t *testing.T) {
	doc := mustDecode(t, multiWorldJSON)
	doc.Worlds[1].Levels[1].IID = doc.Worlds[0].Levels[0].IID

	world, level, ok := doc.FindWorldLevel(ByIID(doc.Worlds[0].Levels[0].IID))
	require.True(t, ok)
	assert.Equal(t, "Overworld", world.Identifier)
	assert.Equal(t, "Meadow", level.Identifier)
}

func TestFindWorldLevelPointsIntoDocument(t *testing.T) {
	doc := mustDecode(t, multiWorldJSON)
	_, level, ok := doc.FindWorldLevel(ByIndices(1, 1))
	require.True(t, ok)
	assert.Same(t, &doc.Worlds[1].Levels[1], level)
}

func TestImplicitWorld(t *testing.T) {
	doc := mustDecode(t, singleWorldJSON)

	worlds := doc.WorldList()
	require.Len(t, worlds, 1)
	assert.Equal(t, DefaultWorldIdentifier, worlds[0].Identifier)
	assert.Equal(t, doc.IID, worlds[0].IID)

	world, level, ok := doc.FindWorldLevel(ByIndices(0, 1))
	require.True(t, ok)
	assert.Equal(t, DefaultWorldIdentifier, world.Identifier)
	assert.Equal(t, "Second", level.Identifier)
	assert.Same(t, &doc.Levels[1], level)

	_, _, ok = doc.FindWorldLevel(ByIndices(1, 0))
	assert.False(t, ok)
}

func TestLevelRefsAndIndicesOf(t *testing.T) {
	doc := mustDecode(t, multiWorldJSON)

	refs := doc.LevelRefs()
	var names []string
	for _, r := range refs {
		names = append(names, r.World.Identifier+"/"+r.Level.Identifier)
	}
	assert.Equal(t, []string{"Overworld/Meadow", "Underworld/Cave", "Underworld/Pit"}, names)

	wi, li, ok := doc.IndicesOf("0f6a7f10-25d0-11ef-8d9b-000000000022")
	require.True(t, ok)
	assert.Equal(t, 1, wi)
	assert.Equal(t, 1, li)

	_, _, ok = doc.IndicesOf("missing")
	assert.False(t, ok)
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "indices(1,2)", ByIndices(1, 2).String())
	assert.Equal(t, "iid(abc)", ByIID("abc").String())
}
