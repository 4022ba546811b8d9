package main

import (
	"flag"
	"log"
	"os"

	"github.com/bobbot/osrs-api/internal/dataset"
	"github.com/bobbot/osrs-api/internal/storage"
)

func main() {
	dbPath := flag.String("db", "./osrs.db", "SQLite database path")
	seedsDir := flag.String("seeds", "", "Directory with quests/*.json and slayer/*.json (default: bundled data)")
	flag.Parse()

	ds, err := load(*seedsDir)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if err := store.Seed(ds.Quests, ds.Masters); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seeded %d quests", len(ds.Quests))
	for _, m := range ds.Masters {
		log.Printf("Seeded slayer master %s (%d tasks)", m.ID, len(m.Tasks))
	}
	log.Println("Seeding complete")
}

func load(dir string) (*dataset.Dataset, error) {
	if dir == "" {
		return dataset.Bundled()
	}
	return dataset.Load(os.DirFS(dir))
}
