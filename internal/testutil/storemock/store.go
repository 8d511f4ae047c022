package storemock

import (
	"context"
	"path"

	"bankloan-backend/internal/domain/filestore"
)

var _ filestore.Store = (*Store)(nil)

// Store records every Save and Delete. Without SaveFn it succeeds and
// returns the public path the local store would.
type Store struct {
	SaveFn  func(ctx context.Context, cat filestore.Category, name string, data []byte) (string, error)
	Saved   []string
	Deleted []string
}

func (s *Store) Save(ctx context.Context, cat filestore.Category, name string, data []byte) (string, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, cat, name, data)
	}
	p := path.Join("/uploads", string(cat), name)
	s.Saved = append(s.Saved, p)
	return p, nil
}

func (s *Store) Delete(_ context.Context, publicPath string) error {
	s.Deleted = append(s.Deleted, publicPath)
	return nil
}
