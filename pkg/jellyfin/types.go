package jellyfin

import (
	"github.com/oapi-codegen/nullable"
)

// Item types returned by the host library.
const (
	ItemTypeSeries  = "Series"
	ItemTypeSeason  = "Season"
	ItemTypeEpisode = "Episode"
)

// Provider id keys as stored by the host library.
const (
	ProviderTvdb     = "Tvdb"
	ProviderTvdbSlug = "TvdbSlug"
)

// BaseItem is the subset of the host library's item model the engine reads
// and writes. Season and episode ordinals are nullable; the host stores no
// number at all for unidentified items, which is distinct from zero.
type BaseItem struct {
	ID                string                   `json:"Id"`
	Name              string                   `json:"Name,omitempty"`
	Type              string                   `json:"Type,omitempty"`
	SeriesID          string                   `json:"SeriesId,omitempty"`
	SeasonID          string                   `json:"SeasonId,omitempty"`
	IndexNumber       nullable.Nullable[int32] `json:"IndexNumber,omitempty"`
	ParentIndexNumber nullable.Nullable[int32] `json:"ParentIndexNumber,omitempty"`
	ProviderIDs       map[string]string        `json:"ProviderIds,omitempty"`
	Genres            []string                 `json:"Genres,omitempty"`
	Tags              []string                 `json:"Tags,omitempty"`
}

// ProviderID returns the stored id for the named external provider, or ""
func (i BaseItem) ProviderID(name string) string {
	return i.ProviderIDs[name]
}

// OrdinalValue unwraps a nullable ordinal. ok is false when the value is
// absent or null.
func OrdinalValue(n nullable.Nullable[int32]) (int32, bool) {
	if !n.IsSpecified() || n.IsNull() {
		return 0, false
	}

	v, err := n.Get()
	if err != nil {
		return 0, false
	}
	return v, true
}

// ItemsFilter narrows an item query.
type ItemsFilter struct {
	ParentID         string
	IncludeItemTypes []string
	Recursive        bool
	Fields           []string
	StartIndex       int
	Limit            int
}

// ItemsResponse is one page of query results.
type ItemsResponse struct {
	Items            []BaseItem `json:"Items"`
	TotalRecordCount int32      `json:"TotalRecordCount"`
}

// UpdateReason describes why an item is being written back.
type UpdateReason string

const (
	UpdateReasonMetadataEdit UpdateReason = "MetadataEdit"
)

// RefreshOptions controls a metadata refresh request.
type RefreshOptions struct {
	MetadataRefreshMode string
	ReplaceAllMetadata  bool
	ReplaceAllImages    bool
}

// NonDestructiveRefresh asks the host to re-read metadata without discarding
// local edits.
func NonDestructiveRefresh() RefreshOptions {
	return RefreshOptions{
		MetadataRefreshMode: "Default",
		ReplaceAllMetadata:  false,
		ReplaceAllImages:    false,
	}
}
