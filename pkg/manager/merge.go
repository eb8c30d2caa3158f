package manager

import (
	"context"
	"slices"
	"strings"

	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/animarr/animarr/pkg/logger"
	"github.com/animarr/animarr/pkg/ordinal"
	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// numberingPattern classifies a series' existing in-season numbering.
type numberingPattern struct {
	// sequential holds iff the sorted distinct numbers are exactly 1..count,
	// i.e. the library already stores absolute numbers.
	sequential bool
	// ambiguous holds iff the number 1 occurs more than once, the signature
	// of independent per-season numbering. A legitimately one-episode first
	// season can defeat this; it is a heuristic, not a classifier.
	ambiguous bool
}

func (p numberingPattern) needsRenumber() bool {
	return !p.sequential || p.ambiguous
}

// classifyNumbering inspects the positive in-season numbers of all
// non-special episodes.
func classifyNumbering(episodes []jellyfin.BaseItem) numberingPattern {
	var numbers []int
	ones := 0

	for _, ep := range episodes {
		if isSpecial(ep) {
			continue
		}

		n, ok := jellyfin.OrdinalValue(ep.IndexNumber)
		if !ok || n <= 0 {
			continue
		}

		numbers = append(numbers, int(n))
		if n == 1 {
			ones++
		}
	}

	distinct := slices.Clone(numbers)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)

	sequential := len(distinct) == len(numbers)
	if sequential {
		for i, n := range distinct {
			if n != i+1 {
				sequential = false
				break
			}
		}
	}

	return numberingPattern{sequential: sequential, ambiguous: ones > 1}
}

func isSpecial(ep jellyfin.BaseItem) bool {
	season, ok := jellyfin.OrdinalValue(ep.ParentIndexNumber)
	return ok && season == 0
}

// Merge collapses every non-special episode into season 1. When the
// existing numbering is not already absolute, or looks like independent
// per-season numbering, each moved episode's number is recomputed through
// the resolver chain; an unresolved lookup never overwrites the stored
// number. Emptied season containers are deleted only after every move has
// been issued without failure.
func (m Manager) Merge(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("task", "merge"), zap.String("run_id", uuid.NewString()))
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

		if err := m.mergeSeries(ctx, s, progress); err != nil {
			return err
		}

		progress.series()
	}

	log.Info("merge complete", zap.Int("series", len(series)))
	return nil
}

func (m Manager) mergeSeries(ctx context.Context, series jellyfin.BaseItem, progress *tracker) error {
	log := logger.FromCtx(ctx).With(zap.String("series", series.Name))
	ctx = logger.WithCtx(ctx, log)

	tvdbID, tvdbSlug := seriesScrapeRefs(series)

	episodes, err := m.seriesEpisodes(ctx, series.ID)
	if err != nil {
		log.Warn("failed to list episodes", zap.Error(err))
		return nil
	}

	pattern := classifyNumbering(episodes)

	modified := false
	moveFailed := false
	for i, ep := range episodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress.episode(i, len(episodes))

		if isSpecial(ep) {
			continue
		}

		season, hasSeason := jellyfin.OrdinalValue(ep.ParentIndexNumber)
		if hasSeason && season == 1 {
			continue
		}

		ep.ParentIndexNumber = nullable.NewNullableWithValue(int32(1))

		if pattern.needsRenumber() {
			episodeID := ep.ProviderID(jellyfin.ProviderTvdb)
			abs, err := ordinal.ResolveAbsolute(ctx, m.resolver, tvdbID, tvdbSlug, episodeID)
			if err != nil {
				return err
			}
			if abs > 0 {
				ep.IndexNumber = nullable.NewNullableWithValue(int32(abs))
			}
			// unresolved keeps the stored number
		}

		if err := m.jellyfin.UpdateItem(ctx, ep, jellyfin.UpdateReasonMetadataEdit); err != nil {
			log.Warn("failed to move episode to season 1", zap.String("episode", ep.ID), zap.Error(err))
			moveFailed = true
			continue
		}

		modified = true
	}

	if !modified || !m.config.Merge.Refresh {
		return nil
	}

	if err := m.jellyfin.RefreshMetadata(ctx, series.ID, jellyfin.NonDestructiveRefresh()); err != nil {
		log.Warn("metadata refresh failed", zap.Error(err))
	}

	seasons, err := m.seriesSeasons(ctx, series.ID)
	if err != nil {
		log.Warn("failed to list seasons", zap.Error(err))
		return nil
	}

	for _, season := range seasons {
		num, ok := jellyfin.OrdinalValue(season.IndexNumber)
		if !ok {
			continue
		}

		switch {
		case num == 1:
			if !m.config.Merge.Rename || m.config.Merge.SeasonName == "" {
				continue
			}
			if strings.EqualFold(season.Name, m.config.Merge.SeasonName) {
				continue
			}

			season.Name = m.config.Merge.SeasonName
			if err := m.jellyfin.UpdateItem(ctx, season, jellyfin.UpdateReasonMetadataEdit); err != nil {
				log.Warn("failed to rename season", zap.String("season", season.ID), zap.Error(err))
			}

		case num > 1:
			if moveFailed {
				// a failed move may have left episodes behind
				log.Warn("skipping season delete after failed episode move", zap.String("season", season.ID))
				continue
			}

			if err := m.jellyfin.DeleteItem(ctx, season.ID); err != nil {
				log.Warn("failed to delete emptied season", zap.String("season", season.ID), zap.Error(err))
			}
		}
	}

	return nil
}
