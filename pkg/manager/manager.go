// Package manager runs the batch tasks that enrich an anime library:
// canon/filler classification, split to aired seasons, and merge to a
// single season. Series and episodes are processed strictly sequentially;
// the only throttle on external sources is the delay charged by the shared
// scrape client, and parallel fan-out would defeat it.
package manager

import (
	"context"

	"github.com/animarr/animarr/config"
	"github.com/animarr/animarr/pkg/filler"
	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/animarr/animarr/pkg/logger"
	"github.com/animarr/animarr/pkg/ordinal"
	"github.com/animarr/animarr/pkg/pagination"
	"go.uber.org/zap"
)

const queryPageSize = 500

type Manager struct {
	jellyfin jellyfin.ClientInterface
	resolver ordinal.Resolver
	filler   filler.Source
	config   config.Config
	progress ProgressFunc
}

// Option configures a Manager
type Option func(*Manager)

// WithProgress registers a callback receiving the run's completed fraction
func WithProgress(fn ProgressFunc) Option {
	return func(m *Manager) {
		m.progress = fn
	}
}

func New(client jellyfin.ClientInterface, resolver ordinal.Resolver, fillerSource filler.Source, cfg config.Config, opts ...Option) Manager {
	m := Manager{
		jellyfin: client,
		resolver: resolver,
		filler:   fillerSource,
		config:   cfg,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// AnimeSeries returns the library's series filtered down to the anime
// subset per the configured identification mode.
func (m Manager) AnimeSeries(ctx context.Context) ([]jellyfin.BaseItem, error) {
	series, err := m.allItems(ctx, jellyfin.ItemsFilter{
		IncludeItemTypes: []string{jellyfin.ItemTypeSeries},
		Recursive:        true,
		Fields:           []string{"ProviderIds", "Genres", "Tags"},
	})
	if err != nil {
		return nil, err
	}

	return Select(series, m.config.Identify), nil
}

// seriesEpisodes returns every episode of the series, specials included.
func (m Manager) seriesEpisodes(ctx context.Context, seriesID string) ([]jellyfin.BaseItem, error) {
	return m.allItems(ctx, jellyfin.ItemsFilter{
		ParentID:         seriesID,
		IncludeItemTypes: []string{jellyfin.ItemTypeEpisode},
		Recursive:        true,
		Fields:           []string{"ProviderIds", "Tags"},
	})
}

// seriesSeasons returns the series' season containers.
func (m Manager) seriesSeasons(ctx context.Context, seriesID string) ([]jellyfin.BaseItem, error) {
	return m.allItems(ctx, jellyfin.ItemsFilter{
		ParentID:         seriesID,
		IncludeItemTypes: []string{jellyfin.ItemTypeSeason},
		Recursive:        true,
	})
}

// allItems pages through an item query until exhausted.
func (m Manager) allItems(ctx context.Context, filter jellyfin.ItemsFilter) ([]jellyfin.BaseItem, error) {
	log := logger.FromCtx(ctx)

	var items []jellyfin.BaseItem
	for page := 1; ; page++ {
		offset, limit := pagination.Params{Page: page, PageSize: queryPageSize}.CalculateOffsetLimit()
		filter.StartIndex = offset
		filter.Limit = limit

		resp, err := m.jellyfin.Items(ctx, filter)
		if err != nil {
			return nil, err
		}

		items = append(items, resp.Items...)
		if len(resp.Items) < limit || len(items) >= int(resp.TotalRecordCount) {
			break
		}
	}

	log.Debug("items query complete", zap.Int("count", len(items)))
	return items, nil
}

// seriesScrapeRefs extracts the provider references used to build scrape
// URLs for a series.
func seriesScrapeRefs(series jellyfin.BaseItem) (tvdbID, tvdbSlug string) {
	return series.ProviderID(jellyfin.ProviderTvdb), series.ProviderID(jellyfin.ProviderTvdbSlug)
}
