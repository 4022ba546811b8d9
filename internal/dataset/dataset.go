// Package dataset bundles the static quest and slayer data served by the
// gateway. Quests live one per file under quests/, slayer masters one per
// file under slayer/.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/bobbot/osrs-api/internal/models"
)

//go:embed quests/*.json slayer/*.json
var bundled embed.FS

// Dataset is a parsed copy of the static data
type Dataset struct {
	Quests  []models.QuestRecord
	Masters []models.SlayerMaster
}

// Bundled parses the data compiled into the binary.
func Bundled() (*Dataset, error) {
	return Load(bundled)
}

// Load parses quests/*.json and slayer/*.json from fsys. Quests are returned
// in filename order.
func Load(fsys fs.FS) (*Dataset, error) {
	ds := &Dataset{}

	questFiles, err := fs.Glob(fsys, "quests/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	for _, file := range questFiles {
		var q models.Quest
		if err := readJSON(fsys, file, &q); err != nil {
			return nil, err
		}
		if q.Name == "" {
			return nil, fmt.Errorf("quest file %s has no name", file)
		}
		q.Normalize()
		ds.Quests = append(ds.Quests, models.QuestRecord{
			Filename: strings.TrimSuffix(path.Base(file), ".json"),
			Quest:    q,
		})
	}

	masterFiles, err := fs.Glob(fsys, "slayer/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list slayer masters: %w", err)
	}
	for _, file := range masterFiles {
		var m models.SlayerMaster
		if err := readJSON(fsys, file, &m); err != nil {
			return nil, err
		}
		if m.ID == "" {
			m.ID = strings.TrimSuffix(path.Base(file), ".json")
		}
		m.ID = strings.ToLower(m.ID)
		ds.Masters = append(ds.Masters, m)
	}

	return ds, nil
}

func readJSON(fsys fs.FS, file string, v any) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}
