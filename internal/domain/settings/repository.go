package settings

import "context"

type Repository interface {
	// Get returns gorm.ErrRecordNotFound before the first Save
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
