package filler

import (
	"context"
	"fmt"
	"net/http"

	mhttp "github.com/animarr/animarr/pkg/http"
	"github.com/animarr/animarr/pkg/logger"
	"go.uber.org/zap"
)

// DefaultSourceURL hosts the fan-maintained canon/filler tables.
const DefaultSourceURL = "https://www.animefillerlist.com"

// Source provides the canon/filler table for one show.
type Source interface {
	Table(ctx context.Context, slug string) (Table, error)
}

// AnimeFillerList scrapes animefillerlist.com show pages. Fetch failures
// resolve to an empty table so classification skips the show instead of
// aborting the run; errors are reserved for context cancellation.
type AnimeFillerList struct {
	client  mhttp.HTTPClient
	baseURL string
}

// SourceOption configures an AnimeFillerList source
type SourceOption func(*AnimeFillerList)

// WithSourceURL overrides the base URL
func WithSourceURL(u string) SourceOption {
	return func(s *AnimeFillerList) {
		if u != "" {
			s.baseURL = u
		}
	}
}

// NewAnimeFillerList creates a source backed by the given http client.
func NewAnimeFillerList(client mhttp.HTTPClient, opts ...SourceOption) *AnimeFillerList {
	s := &AnimeFillerList{
		client:  client,
		baseURL: DefaultSourceURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Table fetches and parses the show's episode table.
func (s *AnimeFillerList) Table(ctx context.Context, slug string) (Table, error) {
	log := logger.FromCtx(ctx)

	if slug == "" {
		return Table{}, nil
	}

	url := fmt.Sprintf("%s/shows/%s", s.baseURL, slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Table{}, nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Debug("filler table fetch failed", zap.String("slug", slug), zap.Error(err))
		return Table{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug("filler table fetch non-ok status", zap.String("slug", slug), zap.String("status", resp.Status))
		return Table{}, nil
	}

	return ParseTable(resp.Body), nil
}
