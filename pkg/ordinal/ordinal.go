// Package ordinal resolves episode ordinals a media library cannot derive
// locally: the show-wide absolute episode number and the originally-aired
// season number. Both come from unreliable scrape-based sources, so every
// operation fails closed; an unresolved lookup is reported as a zero value,
// not an error.
package ordinal

import "context"

// Resolver resolves ordinal numbers for one episode from external sources.
//
// Absolute lookups return 0 when the number cannot be determined; callers
// must never treat 0 or a negative value as resolved. AiredSeason instead
// returns 1 on any miss: season 1 is a safe default for reorganization,
// whereas a guessed absolute number could mislabel an episode. Errors are
// reserved for context cancellation.
type Resolver interface {
	AbsoluteFromPrimary(ctx context.Context, seriesID, seriesSlug, episodeID string) (int, error)
	AbsoluteFromSecondary(ctx context.Context, episodeID string) (int, error)
	AiredSeason(ctx context.Context, seriesID, seriesSlug, episodeID string) (int, error)
}

// ResolveAbsolute runs the provider fallback chain: the primary source
// first, then the secondary keyed only by episode id. Each attempted fetch
// is charged its own rate-limit delay, so a full fallback pays two delays.
// Returns 0 when both providers come up empty.
func ResolveAbsolute(ctx context.Context, r Resolver, seriesID, seriesSlug, episodeID string) (int, error) {
	abs, err := r.AbsoluteFromPrimary(ctx, seriesID, seriesSlug, episodeID)
	if err != nil {
		return 0, err
	}
	if abs > 0 {
		return abs, nil
	}

	abs, err = r.AbsoluteFromSecondary(ctx, episodeID)
	if err != nil {
		return 0, err
	}
	if abs > 0 {
		return abs, nil
	}

	return 0, nil
}
