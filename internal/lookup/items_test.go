package lookup

import (
	"testing"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMapping = []models.ItemMapping{
	{ID: 11832, Name: "Bandos chestplate"},
	{ID: 4151, Name: "Abyssal whip"},
	{ID: 12006, Name: "Abyssal tentacle"},
	{ID: 4587, Name: "Dragon scimitar"},
	{ID: 1305, Name: "Dragon longsword"},
	{ID: 20997, Name: "Twisted bow"},
	{ID: 1377, Name: "Dragon battleaxe"},
	{ID: 22804, Name: "Dragon knife"},
	{ID: 1215, Name: "Dragon dagger"},
	{ID: 5698, Name: "Dragon dagger(p++)"},
	{ID: 11920, Name: "Dragon pickaxe"},
	{ID: 7158, Name: "Dragon 2h sword"},
}

func TestFindItem_ExactBeatsPrefix(t *testing.T) {
	// "Dragon dagger(p++)" does not come first, but the exact name must still win
	mapping := append([]models.ItemMapping{{ID: 5698, Name: "Dragon dagger(p++)"}}, testMapping...)

	item, ok := FindItem(mapping, "DRAGON DAGGER")
	require.True(t, ok)
	assert.Equal(t, 1215, item.ID)
}

func TestFindItem_Prefix(t *testing.T) {
	item, ok := FindItem(testMapping, "abyssal")
	require.True(t, ok)
	assert.Equal(t, "Abyssal whip", item.Name)
}

func TestFindItem_NotFound(t *testing.T) {
	_, ok := FindItem(testMapping, "whip")
	assert.False(t, ok)
}

func TestResolveAlias(t *testing.T) {
	assert.Equal(t, "twisted bow", ResolveAlias("TBOW"))
	assert.Equal(t, "bandos chestplate", ResolveAlias(" bcp "))
	assert.Equal(t, "Abyssal whip", ResolveAlias("Abyssal whip"))

	item, ok := FindItem(testMapping, ResolveAlias("tbow"))
	require.True(t, ok)
	assert.Equal(t, 20997, item.ID)
}

func TestSearchItems_SortedAndLimited(t *testing.T) {
	results := SearchItems(testMapping, "dragon", 4)
	require.Len(t, results, 4)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, len(results[i-1].Name), len(results[i].Name))
	}
	assert.Equal(t, "Dragon knife", results[0].Name)
	assert.Equal(t, "Dragon dagger", results[1].Name)
	assert.Equal(t, "Dragon pickaxe", results[2].Name)
	// "Dragon scimitar" and "Dragon 2h sword" tie on length; mapping order wins
	assert.Equal(t, "Dragon scimitar", results[3].Name)
}

func TestSearchItems_DefaultLimit(t *testing.T) {
	many := make([]models.ItemMapping, 0, 25)
	for i := 0; i < 25; i++ {
		many = append(many, models.ItemMapping{ID: i, Name: "Rune arrow"})
	}

	assert.Len(t, SearchItems(many, "rune", 0), DefaultSearchLimit)
	assert.Len(t, SearchItems(many, "rune", -3), DefaultSearchLimit)
	assert.Len(t, SearchItems(many, "rune", 50), 25)
}

func TestSearchItems_NoHits(t *testing.T) {
	results := SearchItems(testMapping, "zzz", 10)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
