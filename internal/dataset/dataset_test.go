package dataset

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundled(t *testing.T) {
	ds, err := Bundled()
	require.NoError(t, err)

	require.NotEmpty(t, ds.Quests)
	for i := 1; i < len(ds.Quests); i++ {
		assert.Less(t, ds.Quests[i-1].Filename, ds.Quests[i].Filename)
	}

	var cooks bool
	for _, r := range ds.Quests {
		assert.NotEmpty(t, r.Quest.Name, r.Filename)
		assert.NotNil(t, r.Quest.Requirements.Skills, r.Filename)
		assert.NotNil(t, r.Quest.Rewards.Unlocks, r.Filename)
		if r.Filename == "CooksAssistant" {
			cooks = true
			assert.Equal(t, "Cook's Assistant", r.Quest.Name)
		}
	}
	assert.True(t, cooks)

	ids := map[string]int{}
	for _, m := range ds.Masters {
		ids[m.ID] = len(m.Tasks)
	}
	assert.Len(t, ids, 3)
	for _, id := range []string{"duradel", "nieve", "konar"} {
		assert.Positive(t, ids[id], id)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"quests/B.json":      {Data: []byte(`{"name":"Bravo","difficulty":"Novice"}`)},
		"quests/A.json":      {Data: []byte(`{"name":"Alpha","difficulty":"Master"}`)},
		"slayer/Turael.json": {Data: []byte(`{"name":"Turael","tasks":[{"monster":"Birds","amount":{"min":15,"max":50},"weight":6}]}`)},
		"quests/notes.txt":   {Data: []byte(`ignored`)},
	}

	ds, err := Load(fsys)
	require.NoError(t, err)

	require.Len(t, ds.Quests, 2)
	assert.Equal(t, "A", ds.Quests[0].Filename)
	assert.Equal(t, "Alpha", ds.Quests[0].Quest.Name)
	assert.Empty(t, ds.Quests[0].Quest.Rewards.Items)

	require.Len(t, ds.Masters, 1)
	assert.Equal(t, "turael", ds.Masters[0].ID)
	assert.Equal(t, "Birds", ds.Masters[0].Tasks[0].Monster)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(fstest.MapFS{"quests/Bad.json": {Data: []byte(`{`)}})
	assert.ErrorContains(t, err, "quests/Bad.json")

	_, err = Load(fstest.MapFS{"quests/Nameless.json": {Data: []byte(`{"difficulty":"Novice"}`)}})
	assert.ErrorContains(t, err, "has no name")
}
