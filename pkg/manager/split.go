package manager

import (
	"context"

	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/animarr/animarr/pkg/logger"
	"github.com/animarr/animarr/pkg/machine"
	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// reorgState tracks one episode through the split task.
type reorgState string

const (
	reorgStateCandidate reorgState = "candidate"
	reorgStateResolved  reorgState = "resolved"
	reorgStateUpdated   reorgState = "updated"
	reorgStateUnchanged reorgState = "unchanged"
)

func newReorgMachine() *machine.StateMachine[reorgState] {
	return machine.New(reorgStateCandidate,
		machine.From(reorgStateCandidate).To(reorgStateResolved, reorgStateUnchanged),
		machine.From(reorgStateResolved).To(reorgStateUpdated, reorgStateUnchanged),
	)
}

// Split moves every non-special episode to its externally-resolved aired
// season. A resolved season of 1, which includes every unresolved lookup,
// and a season matching the stored value are both no-ops, so re-running the
// task is safe.
func (m Manager) Split(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("task", "split"), zap.String("run_id", uuid.NewString()))
	ctx = logger.WithCtx(ctx, log)

	series, err := m.AnimeSeries(ctx)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		log.Info("no anime series matched")
		return nil
	}

	progress := newTracker(len(series), m.progress)

	for _, s := range series {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.splitSeries(ctx, s, progress); err != nil {
			return err
		}

		progress.series()
	}

	log.Info("split complete", zap.Int("series", len(series)))
	return nil
}

func (m Manager) splitSeries(ctx context.Context, series jellyfin.BaseItem, progress *tracker) error {
	log := logger.FromCtx(ctx).With(zap.String("series", series.Name))
	ctx = logger.WithCtx(ctx, log)

	tvdbID, tvdbSlug := seriesScrapeRefs(series)

	episodes, err := m.seriesEpisodes(ctx, series.ID)
	if err != nil {
		log.Warn("failed to list episodes", zap.Error(err))
		return nil
	}

	modified := false
	for i, ep := range episodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress.episode(i, len(episodes))

		current, hasSeason := jellyfin.OrdinalValue(ep.ParentIndexNumber)
		if hasSeason && current == 0 {
			// specials stay in season 0
			continue
		}

		episodeID := ep.ProviderID(jellyfin.ProviderTvdb)
		if episodeID == "" {
			continue
		}

		sm := newReorgMachine()

		aired, err := m.resolver.AiredSeason(ctx, tvdbID, tvdbSlug, episodeID)
		if err != nil {
			return err
		}
		if err := sm.Transition(reorgStateResolved); err != nil {
			return err
		}

		if aired <= 1 || (hasSeason && int32(aired) == current) {
			_ = sm.Transition(reorgStateUnchanged)
			continue
		}

		ep.ParentIndexNumber = nullable.NewNullableWithValue(int32(aired))
		if err := m.jellyfin.UpdateItem(ctx, ep, jellyfin.UpdateReasonMetadataEdit); err != nil {
			log.Warn("failed to move episode to aired season",
				zap.String("episode", ep.ID),
				zap.Int("season", aired),
				zap.Error(err))
			continue
		}
		_ = sm.Transition(reorgStateUpdated)

		log.Debug("episode moved to aired season",
			zap.String("episode", ep.ID),
			zap.Int("season", aired),
			zap.String("state", string(sm.Current())))
		modified = true
	}

	if modified && m.config.Split.Refresh {
		if err := m.jellyfin.RefreshMetadata(ctx, series.ID, jellyfin.NonDestructiveRefresh()); err != nil {
			// applied episode moves stay in place
			log.Warn("metadata refresh failed", zap.Error(err))
		}
	}

	return nil
}
