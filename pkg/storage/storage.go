package storage

import "errors"

// ErrNotFound is returned by Load when no snapshot exists under the name.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore persists named JSON blobs. Implementations do not interpret
// the payload; all snapshot semantics live in the store package.
type SnapshotStore interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
}
