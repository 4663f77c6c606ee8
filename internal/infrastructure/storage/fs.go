package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"svw.info/sudokulab/internal/ports"
)

// FS is a bucketed key-value store of JSON documents: one directory per
// bucket, one file per key.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// NewKey returns a fresh unique key for callers saving without one.
func NewKey() string { return uuid.New().String() }

func (s *FS) pathFor(bucket, key string) (string, error) {
	bucket = strings.TrimSpace(bucket)
	key = strings.TrimSpace(key)
	if bucket == "" || key == "" {
		return "", errors.New("storage: bucket and key must be non-empty")
	}
	// keys become file names; refuse anything that could escape the bucket
	if strings.ContainsAny(bucket+key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("storage: invalid bucket or key %q/%q", bucket, key)
	}
	return filepath.Join(s.dir, bucket, key+".json"), nil
}

func (s *FS) Put(ctx context.Context, bucket, key string, v any) error {
	target, err := s.pathFor(bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (s *FS) Get(ctx context.Context, bucket, key string, v any) error {
	target, err := s.pathFor(bucket, key)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(target)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s/%s", ports.ErrNotFound, bucket, key)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *FS) Delete(ctx context.Context, bucket, key string) error {
	target, err := s.pathFor(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s/%s", ports.ErrNotFound, bucket, key)
		}
		return err
	}
	return nil
}

// Keys lists the keys of a bucket in directory order; a missing bucket is
// an empty bucket.
func (s *FS) Keys(ctx context.Context, bucket string) ([]string, error) {
	ents, err := os.ReadDir(filepath.Join(s.dir, bucket))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		out = append(out, strings.TrimSuffix(name, ".json"))
	}
	return out, nil
}
