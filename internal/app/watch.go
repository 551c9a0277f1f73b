package app

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/adapters"
	"kernel-lifecycle/internal/ports"
)

// Watch plans once, then re-plans after every change to the package state
// file until ctx is cancelled. Planning failures are logged and do not stop
// the watch.
func (s Service) Watch(ctx context.Context, req WatchRequest, onPlan func(PlanResult)) error {
	if onPlan == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("watch callback is required")
	}
	path := snapshotWatchPath(req.Plan)
	changes, err := s.watcher(time.Duration(req.DebounceMs) * time.Millisecond).Watch(ctx, path)
	if err != nil {
		return err
	}
	s.replan(ctx, req.Plan, onPlan)
	log.Ctx(ctx).Info().Str("path", path).Msg("watching package state")
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			log.Ctx(ctx).Debug().Str("path", path).Msg("package state changed")
			s.replan(ctx, req.Plan, onPlan)
		}
	}
}

func (s Service) replan(ctx context.Context, req PlanRequest, onPlan func(PlanResult)) {
	result, err := s.PlanRetention(ctx, req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("retention planning failed")
		return
	}
	onPlan(result)
}

func (s Service) watcher(debounce time.Duration) ports.ChangeWatcherPort {
	if s.Watcher == nil {
		return adapters.NewFileWatchAdapter(debounce)
	}
	return s.Watcher(debounce)
}
