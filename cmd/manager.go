package cmd

import (
	"github.com/animarr/animarr/config"
	"github.com/animarr/animarr/pkg/filler"
	mhttp "github.com/animarr/animarr/pkg/http"
	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/animarr/animarr/pkg/logger"
	"github.com/animarr/animarr/pkg/manager"
	"github.com/animarr/animarr/pkg/ordinal"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newManager wires the engine from configuration. Every task sharing the
// returned manager also shares one throttled scrape client and one page
// cache, so a page fetched for one task is not re-fetched by the next.
func newManager() (manager.Manager, error) {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return manager.Manager{}, err
	}

	scrapeClient := mhttp.NewThrottledClient(
		mhttp.WithDelay(cfg.Scrape.Delay()),
		mhttp.WithUserAgent(cfg.Scrape.UserAgent),
	)

	jellyfinClient, err := jellyfin.New(cfg.Jellyfin.URI, cfg.Jellyfin.APIKey)
	if err != nil {
		return manager.Manager{}, err
	}

	resolver := ordinal.NewScrapeResolver(scrapeClient,
		ordinal.WithPrimaryURL(cfg.Scrape.PrimaryURI),
		ordinal.WithSecondaryURL(cfg.Scrape.SecondaryURI),
	)

	fillerSource := filler.NewAnimeFillerList(scrapeClient,
		filler.WithSourceURL(cfg.Scrape.FillerURI),
	)

	m := manager.New(jellyfinClient, resolver, fillerSource, cfg,
		manager.WithProgress(func(fraction float64) {
			log.Debug("task progress", zap.Float64("fraction", fraction))
		}),
	)

	return m, nil
}
