package manager

import (
	"context"

	"github.com/animarr/animarr/pkg/filler"
	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/animarr/animarr/pkg/logger"
	"github.com/animarr/animarr/pkg/ordinal"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Classify tags every candidate episode with its canon/filler status. The
// pass is non-overwriting: episodes already carrying a status label are
// skipped, so re-running only affects unlabeled episodes. Every failure
// class short of cancellation is a per-unit skip, never a task failure.
func (m Manager) Classify(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("task", "classify"), zap.String("run_id", uuid.NewString()))
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

	var tagged int64
	for _, s := range series {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := m.classifySeries(ctx, s, progress)
		tagged += n
		if err != nil {
			return err
		}

		progress.series()
	}

	log.Info("classification complete",
		zap.Int("series", len(series)),
		zap.String("episodes_tagged", humanize.Comma(tagged)))
	return nil
}

func (m Manager) classifySeries(ctx context.Context, series jellyfin.BaseItem, progress *tracker) (int64, error) {
	log := logger.FromCtx(ctx).With(zap.String("series", series.Name))
	ctx = logger.WithCtx(ctx, log)

	tvdbID, tvdbSlug := seriesScrapeRefs(series)

	slug := tvdbSlug
	if slug == "" {
		slug = filler.Slugify(series.Name)
	}

	table, err := m.filler.Table(ctx, slug)
	if err != nil {
		return 0, err
	}
	if len(table) == 0 {
		log.Debug("no filler data for show", zap.String("slug", slug))
		return 0, nil
	}

	episodes, err := m.seriesEpisodes(ctx, series.ID)
	if err != nil {
		log.Warn("failed to list episodes", zap.Error(err))
		return 0, nil
	}

	var tagged int64
	for i, ep := range episodes {
		if err := ctx.Err(); err != nil {
			return tagged, err
		}
		progress.episode(i, len(episodes))

		if filler.HasStatus(ep.Tags) {
			// already processed on a previous run
			continue
		}

		episodeID := ep.ProviderID(jellyfin.ProviderTvdb)
		if episodeID == "" {
			log.Debug("episode has no provider id", zap.String("episode", ep.ID))
			continue
		}

		abs, err := ordinal.ResolveAbsolute(ctx, m.resolver, tvdbID, tvdbSlug, episodeID)
		if err != nil {
			return tagged, err
		}
		if abs <= 0 {
			log.Debug("absolute number unresolved", zap.String("episode", ep.ID))
			continue
		}

		status, ok := table[abs]
		if !ok {
			continue
		}

		ep.Tags = filler.Reconcile(ep.Tags, status)
		if err := m.jellyfin.UpdateItem(ctx, ep, jellyfin.UpdateReasonMetadataEdit); err != nil {
			log.Warn("failed to update episode tags", zap.String("episode", ep.ID), zap.Error(err))
			continue
		}

		tagged++
	}

	return tagged, nil
}
