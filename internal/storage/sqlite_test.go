package storage

import (
	"path/filepath"
	"testing"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

var testQuests = []models.QuestRecord{
	{Filename: "DragonSlayerI", Quest: models.Quest{Name: "Dragon Slayer I", Difficulty: "Experienced", QuestPoints: 2}},
	{Filename: "CooksAssistant", Quest: models.Quest{
		Name:       "Cook's Assistant",
		Difficulty: "Novice",
		Rewards: models.QuestRewards{
			Experience: []models.ExperienceReward{{Skill: "Cooking", Amount: 300}},
		},
	}},
}

var testMaster = models.SlayerMaster{
	ID:   "nieve",
	Name: "Nieve",
	Tasks: []models.SlayerTask{
		{Monster: "Kurask", Amount: models.AmountRange{Min: 120, Max: 185}, Weight: 3, SlayerLevel: 70},
		{Monster: "Abyssal demons", Amount: models.AmountRange{Min: 120, Max: 185}, Weight: 9, SlayerLevel: 85,
			ExtendedAmount: &models.AmountRange{Min: 200, Max: 250}, Unlock: "Augment my abbies"},
	},
}

func TestStore_InMemoryStoresAreIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	require.NoError(t, a.BulkCreateQuests(testQuests))

	empty, err := b.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = a.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestStore_Quests(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.BulkCreateQuests(testQuests))

	q, err := store.GetQuestByName("Cook's Assistant")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Novice", q.Difficulty)
	assert.Equal(t, 300, q.Rewards.Experience[0].Amount)
	assert.NotNil(t, q.Requirements.Quests)

	q, err = store.GetQuestByName("cook's assistant")
	require.NoError(t, err)
	assert.Nil(t, q)

	q, err = store.GetQuestByFilename("DragonSlayerI")
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, 2, q.QuestPoints)

	filenames, err := store.ListQuestFilenames()
	require.NoError(t, err)
	assert.Equal(t, []string{"CooksAssistant", "DragonSlayerI"}, filenames)
}

func TestStore_BulkCreateQuestsReplaces(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.BulkCreateQuests(testQuests))

	updated := []models.QuestRecord{{Filename: "DragonSlayerI", Quest: models.Quest{Name: "Dragon Slayer I", QuestPoints: 3}}}
	require.NoError(t, store.BulkCreateQuests(updated))

	q, err := store.GetQuestByFilename("DragonSlayerI")
	require.NoError(t, err)
	assert.Equal(t, 3, q.QuestPoints)

	filenames, err := store.ListQuestFilenames()
	require.NoError(t, err)
	assert.Len(t, filenames, 2)
}

func TestStore_SlayerTasks(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.ReplaceSlayerMaster(testMaster))

	tasks, err := store.GetSlayerTasks("nieve")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Kurask", tasks[0].Monster)
	assert.Equal(t, "Abyssal demons", tasks[1].Monster)
	require.NotNil(t, tasks[1].ExtendedAmount)
	assert.Equal(t, 250, tasks[1].ExtendedAmount.Max)

	// replacing drops the old table
	shorter := testMaster
	shorter.Tasks = testMaster.Tasks[1:]
	require.NoError(t, store.ReplaceSlayerMaster(shorter))

	tasks, err = store.GetSlayerTasks("nieve")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Abyssal demons", tasks[0].Monster)

	tasks, err = store.GetSlayerTasks("turael")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	masters, err := store.ListSlayerMasters()
	require.NoError(t, err)
	assert.Equal(t, []string{"nieve"}, masters)
}

func TestStore_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osrs.db")

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Seed(testQuests, []models.SlayerMaster{testMaster}))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	empty, err := reopened.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	tasks, err := reopened.GetSlayerTasks("nieve")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
