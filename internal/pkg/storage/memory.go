package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MemoryStorage serves a fixed object listing. Used by tests and local demos.
type MemoryStorage struct {
	Objects []ObjectInfo
	BaseURL string
	Err     error
}

func (s *MemoryStorage) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	objects := []ObjectInfo{}
	for _, o := range s.Objects {
		if strings.HasPrefix(o.Key, prefix) {
			objects = append(objects, o)
		}
	}
	return objects, nil
}

func (s *MemoryStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.BaseURL, "/"), strings.TrimLeft(path, "/")), nil
}
