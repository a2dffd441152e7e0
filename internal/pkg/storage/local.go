package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

type LocalStorage struct {
	basePath string
	baseURL  string // e.g., "http://localhost:8080/uploads"
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	// Create base directory if not exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: filepath.Clean(basePath),
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	cleanPrefix := path.Clean("/" + filepath.ToSlash(prefix))
	root := filepath.Join(s.basePath, filepath.FromSlash(cleanPrefix))

	// Security check
	if !strings.HasPrefix(root, s.basePath) {
		return nil, fmt.Errorf("invalid prefix: %s", prefix)
	}

	objects := []ObjectInfo{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.basePath, p)
		if err != nil {
			return err
		}

		objects = append(objects, ObjectInfo{
			Key:         filepath.ToSlash(rel),
			Name:        d.Name(),
			ContentType: mime.TypeByExtension(filepath.Ext(d.Name())),
			Size:        info.Size(),
			UpdatedAt:   info.ModTime().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return objects, nil
}

func (s *LocalStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	// For local storage, return static URL
	cleanPath := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
	return fmt.Sprintf("%s/%s", s.baseURL, cleanPath), nil
}
