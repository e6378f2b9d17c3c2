// Package bbolt implements the ports.Library interface using bbolt
// (embedded B+ tree). Each ontology name gets its own bucket holding the
// raw archive bytes and JSON-serialized metadata. Writes are transactional,
// so a crash mid-import cannot corrupt previously committed archives.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mendelkb/owlkit/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketOntologies = []byte("ontologies")
	keyArchive       = []byte("archive")
	keyMeta          = []byte("meta")
)

// Store implements ports.Library backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the raw archive bytes under name, overwriting any prior
// archive with the same name.
func (s *Store) Save(name string, archive []byte, meta *ports.OntologyMeta) error {
	if meta == nil {
		return fmt.Errorf("nil metadata")
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketOntologies)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
		if err := b.Put(keyArchive, archive); err != nil {
			return err
		}
		return b.Put(keyMeta, metaJSON)
	})
}

// Load retrieves the archive bytes and metadata for name.
// Returns nil, nil, nil if no such ontology exists.
func (s *Store) Load(name string) ([]byte, *ports.OntologyMeta, error) {
	var archive, metaJSON []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketOntologies)
		if root == nil {
			return nil
		}
		b := root.Bucket([]byte(name))
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get(keyArchive); v != nil {
			archive = make([]byte, len(v))
			copy(archive, v)
		}
		if v := b.Get(keyMeta); v != nil {
			metaJSON = make([]byte, len(v))
			copy(metaJSON, v)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if archive == nil && metaJSON == nil {
		return nil, nil, nil
	}

	var meta ports.OntologyMeta
	if metaJSON != nil {
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return nil, nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return archive, &meta, nil
}

// List returns metadata for every stored ontology, sorted by name.
func (s *Store) List() ([]*ports.OntologyMeta, error) {
	var metas []*ports.OntologyMeta

	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketOntologies)
		if root == nil {
			return nil
		}
		return root.ForEachBucket(func(name []byte) error {
			b := root.Bucket(name)
			if b == nil {
				return nil
			}
			meta := &ports.OntologyMeta{Name: string(name)}
			if v := b.Get(keyMeta); v != nil {
				if err := json.Unmarshal(v, meta); err != nil {
					return fmt.Errorf("unmarshal metadata for %s: %w", name, err)
				}
			}
			metas = append(metas, meta)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })
	return metas, nil
}

// Delete removes an ontology. Idempotent: deleting a nonexistent name is
// not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketOntologies)
		if root == nil {
			return nil
		}
		if err := root.DeleteBucket([]byte(name)); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		return nil
	})
}
