package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/filestore"

	"github.com/spf13/afero"
)

// PublicPrefix is where the upload root is served.
const PublicPrefix = "/uploads"

// Local writes under root on fs. Production passes afero.NewOsFs().
type Local struct {
	fs   afero.Fs
	root string
}

var _ filestore.Store = (*Local)(nil)

func NewLocal(fs afero.Fs, root string) (*Local, error) {
	for _, c := range []filestore.Category{filestore.CategoryAvatars, filestore.CategoryDocuments} {
		if err := fs.MkdirAll(filepath.Join(root, string(c)), 0o755); err != nil {
			return nil, err
		}
	}
	return &Local{fs: fs, root: root}, nil
}

func (s *Local) Save(ctx context.Context, cat filestore.Category, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(filestore.ErrWrite, err)
	}
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || strings.HasPrefix(name, "..") {
		return "", errs.Wrap(filestore.ErrWrite, os.ErrInvalid)
	}

	dst := filepath.Join(s.root, string(cat), name)
	// write to a temp name then rename so readers never see a partial file
	tmp := dst + ".part"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		_ = s.fs.Remove(tmp)
		return "", errs.Wrap(filestore.ErrWrite, err)
	}
	if err := s.fs.Rename(tmp, dst); err != nil {
		_ = s.fs.Remove(tmp)
		return "", errs.Wrap(filestore.ErrWrite, err)
	}
	return path.Join(PublicPrefix, string(cat), name), nil
}

func (s *Local) Delete(ctx context.Context, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel := strings.TrimPrefix(path.Clean(publicPath), PublicPrefix+"/")
	cat, name := path.Split(rel)
	switch filestore.Category(strings.TrimSuffix(cat, "/")) {
	case filestore.CategoryAvatars, filestore.CategoryDocuments:
	default:
		return os.ErrInvalid
	}
	if name == "" || name == ".." {
		return os.ErrInvalid
	}
	err := s.fs.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Root is the directory served at PublicPrefix.
func (s *Local) Root() string { return s.root }
