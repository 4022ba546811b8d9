package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store holds the bundled quest and slayer dataset
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite. An empty dbPath opens a private
// in-memory database.
func New(dbPath string) (*Store, error) {
	inMemory := dbPath == "" || dbPath == ":memory:"
	dsn := dbPath + "?_foreign_keys=on&_journal_mode=WAL"
	if inMemory {
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if inMemory {
		// the database is dropped when its last connection closes
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS quests (
			filename TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			data TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quests_name ON quests(name)`,
		`CREATE TABLE IF NOT EXISTS slayer_masters (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS slayer_tasks (
			master_id TEXT NOT NULL REFERENCES slayer_masters(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			monster TEXT NOT NULL,
			data TEXT NOT NULL,
			PRIMARY KEY (master_id, position)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// IsEmpty reports whether no quests or slayer masters have been loaded
func (s *Store) IsEmpty() (bool, error) {
	var quests, masters int
	err := s.db.QueryRow(`
		SELECT (SELECT COUNT(*) FROM quests), (SELECT COUNT(*) FROM slayer_masters)
	`).Scan(&quests, &masters)
	if err != nil {
		return false, err
	}
	return quests == 0 && masters == 0, nil
}

// --- Quests ---

// GetQuestByName returns the quest with exactly this name, or nil
func (s *Store) GetQuestByName(name string) (*models.Quest, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM quests WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeQuest(data)
}

// GetQuestByFilename returns the quest loaded from filename, or nil
func (s *Store) GetQuestByFilename(filename string) (*models.Quest, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM quests WHERE filename = ?`, filename).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeQuest(data)
}

// ListQuestFilenames returns every quest filename in ascending order
func (s *Store) ListQuestFilenames() ([]string, error) {
	rows, err := s.db.Query(`SELECT filename FROM quests ORDER BY filename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filenames []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		filenames = append(filenames, f)
	}
	return filenames, rows.Err()
}

// BulkCreateQuests inserts or replaces quests in a transaction
func (s *Store) BulkCreateQuests(records []models.QuestRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO quests (filename, name, data)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		data, err := json.Marshal(r.Quest)
		if err != nil {
			return fmt.Errorf("failed to encode quest %s: %w", r.Filename, err)
		}
		if _, err := stmt.Exec(r.Filename, r.Quest.Name, string(data)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func decodeQuest(data string) (*models.Quest, error) {
	var q models.Quest
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("failed to decode quest: %w", err)
	}
	q.Normalize()
	return &q, nil
}

// --- Slayer ---

// ListSlayerMasters returns the ids of every loaded master
func (s *Store) ListSlayerMasters() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM slayer_masters ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetSlayerTasks returns a master's tasks in table order, or nil if the
// master is unknown
func (s *Store) GetSlayerTasks(masterID string) ([]models.SlayerTask, error) {
	rows, err := s.db.Query(`
		SELECT data FROM slayer_tasks WHERE master_id = ? ORDER BY position
	`, masterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.SlayerTask
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var task models.SlayerTask
		if err := json.Unmarshal([]byte(data), &task); err != nil {
			return nil, fmt.Errorf("failed to decode slayer task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// ReplaceSlayerMaster stores a master and replaces its whole task table
func (s *Store) ReplaceSlayerMaster(master models.SlayerMaster) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO slayer_masters (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, master.ID, master.Name); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM slayer_tasks WHERE master_id = ?`, master.ID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO slayer_tasks (master_id, position, monster, data)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, task := range master.Tasks {
		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to encode task %s: %w", task.Monster, err)
		}
		if _, err := stmt.Exec(master.ID, i, task.Monster, string(data)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Seed loads quests and slayer masters, replacing any existing rows with the
// same keys
func (s *Store) Seed(quests []models.QuestRecord, masters []models.SlayerMaster) error {
	if err := s.BulkCreateQuests(quests); err != nil {
		return fmt.Errorf("failed to seed quests: %w", err)
	}
	for _, m := range masters {
		if err := s.ReplaceSlayerMaster(m); err != nil {
			return fmt.Errorf("failed to seed slayer master %s: %w", m.ID, err)
		}
	}
	return nil
}
