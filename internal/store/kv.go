package store

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// KV is the durable local key-value storage behind carts, wishlists, and
// user preferences: an opaque key -> string map written on every change and
// read at startup. Missing or corrupt entries fall back to a default rather
// than fail.
type KV struct {
	db *sqlx.DB
}

func OpenKV(dsn string) (*KV, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

func (s *KV) Close() error { return s.db.Close() }

// Get returns the stored value, or def when the key is absent or unreadable.
func (s *KV) Get(key, def string) string {
	var v string
	if err := s.db.Get(&v, `SELECT value FROM kv WHERE key=?`, key); err != nil {
		return def
	}
	return v
}

func (s *KV) Put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv(key,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP`,
		key, value)
	return err
}

func (s *KV) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key=?`, key)
	return err
}
