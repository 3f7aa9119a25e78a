package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	artifactsBucket = "artifacts" // version -> serialized artifact
	metaBucket      = "meta"      // latest pointer
	latestKey       = "latest"
)

// ErrNoArtifact is returned when no training run has been stored yet.
// Callers must handle absence explicitly rather than crash.
var ErrNoArtifact = errors.New("artifact: no trained model available")

// Store persists model artifacts in a BoltDB database. Versions are keyed
// by their sortable timestamps; a latest pointer implements the
// "most recent successful run" retrieval used by the inference boundary.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the artifact database under dataPath.
func Open(dataPath string) (*Store, error) {
	dbPath := filepath.Join(dataPath, "wildfire-models.db")

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(artifactsBucket)); err != nil {
			return fmt.Errorf("create artifacts bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(metaBucket)); err != nil {
			return fmt.Errorf("create meta bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores an artifact and marks it as the latest successful run.
func (s *Store) Save(a *Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(artifactsBucket)).Put([]byte(a.Version), data); err != nil {
			return err
		}
		return tx.Bucket([]byte(metaBucket)).Put([]byte(latestKey), []byte(a.Version))
	})
}

// Latest retrieves the most recent successful run, or ErrNoArtifact when
// no run has completed yet.
func (s *Store) Latest() (*Artifact, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		version := tx.Bucket([]byte(metaBucket)).Get([]byte(latestKey))
		if version == nil {
			return ErrNoArtifact
		}
		raw := tx.Bucket([]byte(artifactsBucket)).Get(version)
		if raw == nil {
			return ErrNoArtifact
		}
		data = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Get retrieves a specific version.
func (s *Store) Get(version string) (*Artifact, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(artifactsBucket)).Get([]byte(version))
		if raw == nil {
			return ErrNoArtifact
		}
		data = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal artifact: %w", err)
	}
	return &a, nil
}

// Versions lists all stored versions in ascending order.
func (s *Store) Versions() ([]string, error) {
	var versions []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(artifactsBucket)).ForEach(func(k, _ []byte) error {
			versions = append(versions, string(k))
			return nil
		})
	})
	return versions, err
}
