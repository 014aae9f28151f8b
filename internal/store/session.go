// Package store persists the single current-identity record across restarts.
// It is the only durable boundary of the laboratory: one bucket, one key,
// mirroring the single browser-storage slot of the hosted client.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"tfxlab/internal/domain"
)

const (
	bucketName = "session"
	// sessionKey is the well-known slot name; kept stable so existing
	// laboratory databases remain readable.
	sessionKey = "tfx_id_session_v20"
)

// SessionStore wraps BoltDB to hold at most one serialized UserIdentity.
type SessionStore struct {
	db *bolt.DB
}

// Open initializes the database file and ensures the session bucket exists.
func Open(path string) (*SessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &SessionStore{db: db}, nil
}

// Close releases the underlying database file.
func (s *SessionStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the persisted identity, if any. A record that fails to decode
// is deleted and reported as absent; corruption never propagates to callers.
func (s *SessionStore) Load() (*domain.UserIdentity, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(sessionKey)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var identity domain.UserIdentity
	if err := json.Unmarshal(raw, &identity); err != nil {
		_ = s.Clear()
		return nil, nil
	}
	return &identity, nil
}

// Save overwrites the single session slot with the given identity.
func (s *SessionStore) Save(identity domain.UserIdentity) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(sessionKey), payload)
	})
}

// Clear removes the session slot. Clearing an empty slot is not an error.
func (s *SessionStore) Clear() error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(sessionKey))
	})
}
