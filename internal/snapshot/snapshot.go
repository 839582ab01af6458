package snapshot

import (
	"encoding/gob"
	"errors"
	"io/fs"
	"os"

	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/memdb"
)

// record is one (key, value) pair in a snapshot file's gob stream.
type record struct {
	Key   []byte
	Value []byte
}

// Load reads path as a gob-encoded snapshot into a fresh MemoryDB. A
// missing file is not an error: it loads as an empty store, matching
// create_if_missing semantics for a destination that doesn't exist yet.
func Load(path string) (*memdb.MemoryDB, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return memdb.New(), nil
	}
	if err != nil {
		return nil, kverrors.IOError(err.Error())
	}
	defer f.Close()

	var records []record
	if err := gob.NewDecoder(f).Decode(&records); err != nil {
		return nil, kverrors.Corruption("invalid snapshot file: " + err.Error())
	}

	db := memdb.New()
	for _, r := range records {
		if err := db.Put(r.Key, r.Value); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Exists reports whether path already names a file, for callers that need
// to enforce error_if_exists before writing a fresh snapshot.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save writes db's entire contents to path as a gob-encoded snapshot,
// overwriting any existing file.
func Save(path string, db *memdb.MemoryDB) error {
	records := make([]record, 0, db.Len())
	db.Each(func(key, value []byte) {
		records = append(records, record{
			Key:   append([]byte(nil), key...),
			Value: append([]byte(nil), value...),
		})
	})

	f, err := os.Create(path)
	if err != nil {
		return kverrors.IOError(err.Error())
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(records); err != nil {
		return kverrors.IOError(err.Error())
	}
	return nil
}
