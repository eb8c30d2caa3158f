package manager

import (
	"testing"

	"github.com/animarr/animarr/config"
	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	genreOnly := jellyfin.BaseItem{ID: "genre", Genres: []string{"Action", "anime"}}
	tagOnly := jellyfin.BaseItem{ID: "tag", Tags: []string{"ANIME"}}
	both := jellyfin.BaseItem{ID: "both", Genres: []string{"Anime"}, Tags: []string{"Anime"}}
	neither := jellyfin.BaseItem{ID: "neither", Genres: []string{"Drama"}, Tags: []string{"Documentary"}}

	series := []jellyfin.BaseItem{genreOnly, tagOnly, both, neither}

	tests := []struct {
		name string
		mode config.IdentificationMode
		want []string
	}{
		{"genre", config.ModeGenre, []string{"genre", "both"}},
		{"tag", config.ModeTag, []string{"tag", "both"}},
		{"genre or tag", config.ModeGenreOrTag, []string{"genre", "tag", "both"}},
		{"genre and tag", config.ModeGenreAndTag, []string{"both"}},
		{"unknown mode matches nothing", config.IdentificationMode("bogus"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := Select(series, config.Identify{Mode: tt.mode, Tag: "Anime"})

			ids := make([]string, 0, len(selected))
			for _, s := range selected {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	t.Run("tag comparison follows the configured tag", func(t *testing.T) {
		tagged := jellyfin.BaseItem{ID: "jp", Tags: []string{"japanese animation"}}

		selected := Select([]jellyfin.BaseItem{tagged, neither}, config.Identify{
			Mode: config.ModeTag,
			Tag:  "Japanese Animation",
		})

		assert.Len(t, selected, 1)
		assert.Equal(t, "jp", selected[0].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, Select(nil, config.Identify{Mode: config.ModeGenre}))
	})
}
