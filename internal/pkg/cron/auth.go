package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
)

// AuthJobs keeps the in-memory token revocation list bounded.
type AuthJobs struct {
	jwtService    jwt.Service
	clock         clock.Clock
	sweepInterval time.Duration
}

func NewAuthJobs(jwtService jwt.Service, clk clock.Clock, sweepInterval time.Duration) *AuthJobs {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &AuthJobs{
		jwtService:    jwtService,
		clock:         clk,
		sweepInterval: sweepInterval,
	}
}

func (j *AuthJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_revoked_tokens", j.sweepInterval, j.SweepRevokedTokens)
}

// SweepRevokedTokens drops revoked tokens whose expiry has passed.
func (j *AuthJobs) SweepRevokedTokens(ctx context.Context) error {
	removed := j.jwtService.PruneRevoked(j.clock.Now())
	if removed > 0 {
		slog.Info("Cron: swept revoked tokens", "removed", removed)
	}
	return nil
}
