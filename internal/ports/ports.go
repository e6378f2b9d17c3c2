// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Progress receives a monotonic counter while a long pass over the ontology
// runs. Purely observational: implementations must not block or cancel the
// operation. A nil Progress is always legal at call sites.
type Progress interface {
	// Report is called with the number of items processed so far and the
	// total item count. current never decreases within one operation.
	Report(current, total int)
}

// OntologyMeta describes one archive held in the library.
type OntologyMeta struct {
	Name       string `json:"name"`
	Source     string `json:"source"`      // original file path or directory entry
	Size       int64  `json:"size"`        // archive size in bytes
	Classes    int    `json:"classes"`     // class count at import time
	ImportedAt int64  `json:"imported_at"` // unix timestamp
}

// Library persists imported ontology archives so later invocations can query
// them by name instead of re-supplying the file. The backing store (bbolt)
// keeps one namespace per ontology name; writes are transactional.
type Library interface {
	// Save stores the raw archive bytes under name, overwriting any prior
	// archive with the same name.
	Save(name string, archive []byte, meta *OntologyMeta) error

	// Load retrieves the archive bytes and metadata for name.
	// Returns nil, nil, nil if no such ontology exists.
	Load(name string) ([]byte, *OntologyMeta, error)

	// List returns metadata for every stored ontology, sorted by name.
	List() ([]*OntologyMeta, error)

	// Delete removes an ontology. Idempotent: deleting a nonexistent name
	// is not an error.
	Delete(name string) error
}

// Watcher monitors a directory of ontology archives and reports changed
// files so the library can be kept in sync.
type Watcher interface {
	// Watch starts monitoring dir. onChange is called with the absolute
	// path of each created or modified archive.
	Watch(dir string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources.
	Stop() error
}
