package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/core"
)

// DistroEOL reports whether the release in use has reached, or is close to,
// its end of life.
func (s Service) DistroEOL(ctx context.Context, req EOLRequest) (EOLResult, error) {
	codename, err := s.resolveCodename(ctx, req.Codename, req.OSRelease)
	if err != nil {
		return EOLResult{}, err
	}
	table, err := s.releaseTableSource(req.Releases, req.DistroInfo).LoadReleaseTable(ctx)
	if err != nil {
		return EOLResult{}, err
	}
	now := timeNow(s.Clock)
	_, known := table[codename]
	status := core.DistroEOL(codename, table, now, req.EarlyWarningDays)
	log.Ctx(ctx).Debug().
		Str("codename", codename).
		Bool("known", known).
		Bool("eol", status.IsEndOfLife).
		Bool("warning", status.ShowEarlyWarning).
		Msg("distro end of life checked")
	return EOLResult{
		Codename:    codename,
		Known:       known,
		Status:      status,
		EvaluatedAt: now,
	}, nil
}
