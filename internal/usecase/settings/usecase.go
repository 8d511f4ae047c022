package settings

import (
	"context"
	"errors"
	"time"

	"bankloan-backend/internal/domain/settings"
	"bankloan-backend/internal/infrastructure/cache"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const cacheKey = "settings:v1"

type Usecase struct {
	repo settings.Repository
	rdb  *redis.Client // nil disables caching
	ttl  time.Duration
	log  *zap.Logger
}

func NewUsecase(repo settings.Repository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, rdb: rdb, ttl: ttl, log: log}
}

// Get is read-through cached. Redis failures fall back to the database.
func (u *Usecase) Get(ctx context.Context) (*SettingsDTO, error) {
	if u.rdb != nil {
		var dto SettingsDTO
		ok, err := cache.GetJSON(ctx, u.rdb, cacheKey, &dto)
		if err != nil {
			u.log.Warn("settings cache read failed", zap.Error(err))
		}
		if ok {
			return &dto, nil
		}
	}

	s, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	dto := toDTO(s)
	if u.rdb != nil {
		if err := cache.SetJSON(ctx, u.rdb, cacheKey, dto, u.ttl); err != nil {
			u.log.Warn("settings cache write failed", zap.Error(err))
		}
	}
	return dto, nil
}

func (u *Usecase) Update(ctx context.Context, p Patch) (*SettingsDTO, error) {
	s, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	if p.InterestRate != nil {
		s.InterestRate = *p.InterestRate
	}
	if p.MinLoanAmount != nil {
		s.MinLoanAmount = *p.MinLoanAmount
	}
	if p.MaxLoanAmount != nil {
		s.MaxLoanAmount = *p.MaxLoanAmount
	}
	if p.MinLoanTerm != nil {
		s.MinLoanTerm = *p.MinLoanTerm
	}
	if p.MaxLoanTerm != nil {
		s.MaxLoanTerm = *p.MaxLoanTerm
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	if u.rdb != nil {
		if err := cache.Invalidate(ctx, u.rdb, cacheKey); err != nil {
			u.log.Warn("settings cache invalidate failed", zap.Error(err))
		}
	}
	u.log.Info("settings updated")
	return toDTO(s), nil
}

// load returns the stored row, seeding the defaults on first use.
func (u *Usecase) load(ctx context.Context) (*settings.Settings, error) {
	s, err := u.repo.Get(ctx)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	d := settings.Defaults()
	if err := u.repo.Save(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
