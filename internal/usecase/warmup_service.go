package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/platform/logging"
)

// WarmupService pre-loads the unfiltered queries through the caching
// decorators so the first dashboard interactions hit warm cache. Failures are
// logged and never fatal; the next real request will retry.
type WarmupService struct {
	overview  *OverviewService
	teams     *TeamService
	standings *StandingsService
	logger    *logging.Logger
}

func NewWarmupService(
	overview *OverviewService,
	teams *TeamService,
	standings *StandingsService,
	logger *logging.Logger,
) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		overview:  overview,
		teams:     teams,
		standings: standings,
		logger:    logger,
	}
}

func (s *WarmupService) Warm(ctx context.Context, poolSize int) {
	if poolSize <= 0 {
		poolSize = 4
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		s.logger.WarnContext(ctx, "warmup pool unavailable", "error", err)
		return
	}
	defer pool.Release()

	tasks := map[string]func(context.Context) error{
		"summary": func(ctx context.Context) error {
			_, err := s.overview.Summary(ctx, game.Filter{})
			return err
		},
		"filter_options": func(ctx context.Context) error {
			_, err := s.overview.FilterOptions(ctx)
			return err
		},
		"games": func(ctx context.Context) error {
			_, err := s.overview.ListGames(ctx, game.Filter{})
			return err
		},
		"teams": func(ctx context.Context) error {
			_, err := s.teams.ListTeams(ctx)
			return err
		},
		"top_teams": func(ctx context.Context) error {
			_, err := s.standings.TopTeams(ctx, game.Filter{}, 20)
			return err
		},
	}

	started := time.Now()
	var wg sync.WaitGroup
	for name, task := range tasks {
		name, task := name, task
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := task(ctx); err != nil {
				s.logger.WarnContext(ctx, "warmup task failed", "task", name, "error", err)
			}
		})
		if submitErr != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "warmup task not submitted", "task", name, "error", submitErr)
		}
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "cache warmup finished",
		"tasks", len(tasks),
		"took", time.Since(started).String(),
	)
}

// Run warms once and then re-warms on the given interval until ctx ends.
// A zero interval warms once and returns.
func (s *WarmupService) Run(ctx context.Context, poolSize int, interval time.Duration) {
	s.Warm(ctx, poolSize)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Warm(ctx, poolSize)
		}
	}
}
