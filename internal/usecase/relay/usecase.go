// Package relay drains the outbox table into a Publisher.
package relay

import (
	"context"
	"time"

	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

type Result struct {
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

type Usecase struct {
	repo  outbox.Repository
	pub   outbox.Publisher
	batch int
	log   *zap.Logger
	now   func() time.Time
}

func NewUsecase(repo outbox.Repository, pub outbox.Publisher, batch int, log *zap.Logger) *Usecase {
	if batch < 1 {
		batch = 100
	}
	return &Usecase{repo: repo, pub: pub, batch: batch, log: log, now: time.Now}
}

// RelayOnce publishes one batch of pending events, oldest first. A failed
// event stays pending and is retried on the next pass.
func (u *Usecase) RelayOnce(ctx context.Context) (*Result, error) {
	events, err := u.repo.ListPending(ctx, u.batch)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := u.pub.Publish(ctx, e); err != nil {
			res.Failed++
			metrics.OutboxRelayed.WithLabelValues("failed").Inc()
			u.log.Warn("outbox publish failed",
				zap.String("event_id", e.EventID), zap.String("topic", e.Topic),
				zap.Int("attempts", e.Attempts+1), zap.Error(err))
			if err := u.repo.MarkFailed(ctx, e.ID, err.Error()); err != nil {
				return res, err
			}
			continue
		}
		if err := u.repo.MarkPublished(ctx, e.ID, u.now().UTC()); err != nil {
			return res, err
		}
		res.Published++
		metrics.OutboxRelayed.WithLabelValues("published").Inc()
	}
	return res, nil
}

// Run calls RelayOnce every interval until ctx is done.
func (u *Usecase) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			res, err := u.RelayOnce(ctx)
			if err != nil && ctx.Err() == nil {
				u.log.Error("outbox relay pass failed", zap.Error(err))
				continue
			}
			if res != nil && res.Published+res.Failed > 0 {
				u.log.Info("outbox relay pass", zap.Int("published", res.Published), zap.Int("failed", res.Failed))
			}
		}
	}
}
