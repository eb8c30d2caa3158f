package ordinal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/animarr/animarr/pkg/cache"
	mhttp "github.com/animarr/animarr/pkg/http"
	"github.com/animarr/animarr/pkg/logger"
	"go.uber.org/zap"
)

const (
	// DefaultPrimaryURL serves per-episode pages with ordering breadcrumbs.
	DefaultPrimaryURL = "https://thetvdb.com"
	// DefaultSecondaryURL serves bare episode pages addressable by episode id.
	DefaultSecondaryURL = "https://thetvdb.com/dereferrer"
)

// secondaryNumberRegex matches the "- 27 -" style episode ordinal embedded
// in the secondary provider's page title. No structured markup is assumed.
var secondaryNumberRegex = regexp.MustCompile(`-\s*(\d+)\s*-`)

// ScrapeResolver resolves ordinals by scraping two external sources. The
// injected client is expected to throttle outbound requests; the resolver
// issues at most one fetch per call and reuses pages already fetched in
// this run.
type ScrapeResolver struct {
	client       mhttp.HTTPClient
	primaryURL   string
	secondaryURL string
	pages        *cache.Cache[string, []byte]
}

// ScrapeOption configures a ScrapeResolver
type ScrapeOption func(*ScrapeResolver)

// WithPrimaryURL overrides the primary source base URL
func WithPrimaryURL(u string) ScrapeOption {
	return func(r *ScrapeResolver) {
		if u != "" {
			r.primaryURL = u
		}
	}
}

// WithSecondaryURL overrides the secondary source base URL
func WithSecondaryURL(u string) ScrapeOption {
	return func(r *ScrapeResolver) {
		if u != "" {
			r.secondaryURL = u
		}
	}
}

// WithPageCache shares a page cache across resolvers or tasks in one run
func WithPageCache(pages *cache.Cache[string, []byte]) ScrapeOption {
	return func(r *ScrapeResolver) {
		r.pages = pages
	}
}

// NewScrapeResolver creates a resolver backed by the given http client.
func NewScrapeResolver(client mhttp.HTTPClient, opts ...ScrapeOption) *ScrapeResolver {
	r := &ScrapeResolver{
		client:       client,
		primaryURL:   DefaultPrimaryURL,
		secondaryURL: DefaultSecondaryURL,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.pages == nil {
		r.pages = cache.New[string, []byte]()
	}

	return r
}

// AbsoluteFromPrimary parses the absolute-order breadcrumb from the primary
// source's episode page. The series is addressed by numeric id when known,
// otherwise by slug.
func (r *ScrapeResolver) AbsoluteFromPrimary(ctx context.Context, seriesID, seriesSlug, episodeID string) (int, error) {
	url, ok := r.episodeURL(seriesID, seriesSlug, episodeID)
	if !ok {
		return 0, nil
	}

	body, err := r.fetch(ctx, url)
	if err != nil || body == nil {
		return 0, err
	}

	return parseAbsoluteEpisode(body), nil
}

// AbsoluteFromSecondary extracts an absolute number from the secondary
// source's raw page body, keyed only by episode id.
func (r *ScrapeResolver) AbsoluteFromSecondary(ctx context.Context, episodeID string) (int, error) {
	if episodeID == "" {
		return 0, nil
	}

	body, err := r.fetch(ctx, fmt.Sprintf("%s/episode/%s", r.secondaryURL, episodeID))
	if err != nil || body == nil {
		return 0, err
	}

	match := secondaryNumberRegex.FindSubmatch(body)
	if match == nil {
		return 0, nil
	}

	n, err := strconv.Atoi(string(match[1]))
	if err != nil || n <= 0 {
		return 0, nil
	}

	return n, nil
}

// AiredSeason parses the official-order breadcrumb from the primary source.
// Any miss resolves to season 1.
func (r *ScrapeResolver) AiredSeason(ctx context.Context, seriesID, seriesSlug, episodeID string) (int, error) {
	url, ok := r.episodeURL(seriesID, seriesSlug, episodeID)
	if !ok {
		return 1, nil
	}

	body, err := r.fetch(ctx, url)
	if err != nil {
		return 1, err
	}
	if body == nil {
		return 1, nil
	}

	if season := parseAiredSeason(body); season > 0 {
		return season, nil
	}

	return 1, nil
}

func (r *ScrapeResolver) episodeURL(seriesID, seriesSlug, episodeID string) (string, bool) {
	if episodeID == "" {
		return "", false
	}

	series := seriesID
	if series == "" {
		series = seriesSlug
	}
	if series == "" {
		return "", false
	}

	return fmt.Sprintf("%s/series/%s/episodes/%s", r.primaryURL, series, episodeID), true
}

// fetch returns the page body for url, reusing a page already fetched in
// this run. A nil body with nil error means the page is unavailable.
func (r *ScrapeResolver) fetch(ctx context.Context, url string) ([]byte, error) {
	if body, ok := r.pages.Get(url); ok {
		return body, nil
	}

	log := logger.FromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Debug("ordinal fetch failed", zap.String("url", url), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug("ordinal fetch non-ok status", zap.String("url", url), zap.String("status", resp.Status))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("ordinal fetch read failed", zap.String("url", url), zap.Error(err))
		return nil, nil
	}

	r.pages.Set(url, body)
	return body, nil
}
