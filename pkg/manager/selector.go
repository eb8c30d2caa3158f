package manager

import (
	"strings"

	"github.com/animarr/animarr/config"
	"github.com/animarr/animarr/pkg/jellyfin"
)

const animeGenre = "Anime"

// Select filters series down to the anime subset. The four identification
// modes combine a genre check (genre list contains "Anime") and a tag check
// (tag list contains the configured tag), both case-insensitive. A selection
// matching nothing returns an empty slice, not an error.
func Select(series []jellyfin.BaseItem, identify config.Identify) []jellyfin.BaseItem {
	selected := make([]jellyfin.BaseItem, 0, len(series))

	for _, s := range series {
		if matches(s, identify) {
			selected = append(selected, s)
		}
	}

	return selected
}

func matches(series jellyfin.BaseItem, identify config.Identify) bool {
	genre := containsFold(series.Genres, animeGenre)
	tag := containsFold(series.Tags, identify.Tag)

	switch identify.Mode {
	case config.ModeGenre:
		return genre
	case config.ModeTag:
		return tag
	case config.ModeGenreOrTag:
		return genre || tag
	case config.ModeGenreAndTag:
		return genre && tag
	default:
		return false
	}
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
