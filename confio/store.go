package confio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store is the narrow external state interface the adapter owns:
// per-file key/value strings for bookkeeping such as backup paths. It
// is deliberately not part of the parser core.
type Store interface {
	Get(file, key string) (string, bool)
	Set(file, key, value string) error
	Clear(file, key string) error
}

// FileStore keeps the state in one JSON file.
type FileStore struct {
	path string
	m    map[string]map[string]string
}

func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, m: map[string]map[string]string{}}
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(d, &fs.m); err != nil {
		return nil, fmt.Errorf("decoding store %s: %w", path, err)
	}
	return fs, nil
}

func (fs *FileStore) Get(file, key string) (string, bool) {
	v, ok := fs.m[file][key]
	return v, ok
}

func (fs *FileStore) Set(file, key, value string) error {
	if fs.m[file] == nil {
		fs.m[file] = map[string]string{}
	}
	fs.m[file][key] = value
	return fs.flush()
}

func (fs *FileStore) Clear(file, key string) error {
	if m, ok := fs.m[file]; ok {
		delete(m, key)
		if len(m) == 0 {
			delete(fs.m, file)
		}
	}
	return fs.flush()
}

func (fs *FileStore) flush() error {
	d, err := json.MarshalIndent(fs.m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path, d, 0644)
}
