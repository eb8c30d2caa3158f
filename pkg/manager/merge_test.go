package manager

import (
	"context"
	"testing"

	"github.com/animarr/animarr/config"
	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassifyNumbering(t *testing.T) {
	episode := func(season, num int32) jellyfin.BaseItem {
		return jellyfin.BaseItem{ParentIndexNumber: number(season), IndexNumber: number(num)}
	}

	tests := []struct {
		name          string
		episodes      []jellyfin.BaseItem
		needsRenumber bool
	}{
		{
			name:          "absolute numbering needs no renumber",
			episodes:      []jellyfin.BaseItem{episode(1, 1), episode(1, 2), episode(2, 3)},
			needsRenumber: false,
		},
		{
			name:          "duplicate numbers force a renumber",
			episodes:      []jellyfin.BaseItem{episode(1, 1), episode(2, 1), episode(2, 2)},
			needsRenumber: true,
		},
		{
			name:          "a gap forces a renumber",
			episodes:      []jellyfin.BaseItem{episode(1, 1), episode(1, 2), episode(2, 4)},
			needsRenumber: true,
		},
		{
			name:          "specials do not count",
			episodes:      []jellyfin.BaseItem{episode(0, 1), episode(1, 1), episode(1, 2)},
			needsRenumber: false,
		},
		{
			name:          "unnumbered episodes do not count",
			episodes:      []jellyfin.BaseItem{{ParentIndexNumber: number(1)}, episode(1, 1)},
			needsRenumber: false,
		},
		{
			name:          "no numbered episodes needs no renumber",
			episodes:      nil,
			needsRenumber: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.needsRenumber, classifyNumbering(tt.episodes).needsRenumber())
		})
	}
}

func TestMerge(t *testing.T) {
	ctx := context.Background()

	naruto := jellyfin.BaseItem{
		ID:     "series-1",
		Name:   "Naruto",
		Genres: []string{"Anime"},
		ProviderIDs: map[string]string{
			jellyfin.ProviderTvdb:     "81920",
			jellyfin.ProviderTvdbSlug: "naruto",
		},
	}

	episode := func(id string, season, num int32) jellyfin.BaseItem {
		return jellyfin.BaseItem{
			ID:                id,
			ParentIndexNumber: number(season),
			IndexNumber:       number(num),
			ProviderIDs:       map[string]string{jellyfin.ProviderTvdb: "tvdb-" + id},
		}
	}

	t.Run("absolute numbering moves without the resolver", func(t *testing.T) {
		m, mocks := newTestManager(t, testConfig())

		special := episode("ep-sp", 0, 1)
		inPlace := episode("ep-1", 1, 1)
		second := episode("ep-2", 1, 2)
		third := episode("ep-3", 2, 3)
		fourth := episode("ep-4", 2, 4)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			Return(page(special, inPlace, second, third, fourth), nil)

		var moved []jellyfin.BaseItem
		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			DoAndReturn(func(_ context.Context, item jellyfin.BaseItem, _ jellyfin.UpdateReason) error {
				moved = append(moved, item)
				return nil
			}).Times(2)

		mocks.jellyfin.EXPECT().
			RefreshMetadata(gomock.Any(), "series-1", jellyfin.NonDestructiveRefresh()).
			Return(nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f jellyfin.ItemsFilter) (*jellyfin.ItemsResponse, error) {
				assert.Equal(t, []string{jellyfin.ItemTypeSeason}, f.IncludeItemTypes)
				return page(
					jellyfin.BaseItem{ID: "season-1", Name: "Season 1", IndexNumber: number(1)},
					jellyfin.BaseItem{ID: "season-2", Name: "Season 2", IndexNumber: number(2)},
				), nil
			})
		mocks.jellyfin.EXPECT().DeleteItem(gomock.Any(), "season-2").Return(nil)

		require.NoError(t, m.Merge(ctx))

		require.Len(t, moved, 2)
		for _, item := range moved {
			season, ok := jellyfin.OrdinalValue(item.ParentIndexNumber)
			require.True(t, ok)
			assert.Equal(t, int32(1), season)
		}
		// in-season numbers untouched on the sequential path
		num, _ := jellyfin.OrdinalValue(moved[0].IndexNumber)
		assert.Equal(t, int32(3), num)
	})

	t.Run("per-season numbering is recomputed through the resolver", func(t *testing.T) {
		cfg := testConfig()
		cfg.Merge = config.Merge{Refresh: false}
		m, mocks := newTestManager(t, cfg)

		first := episode("ep-1", 1, 1)
		restart := episode("ep-2", 2, 1)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(first, restart), nil)

		mocks.resolver.EXPECT().
			AbsoluteFromPrimary(gomock.Any(), "81920", "naruto", "tvdb-ep-2").
			Return(27, nil)

		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			DoAndReturn(func(_ context.Context, item jellyfin.BaseItem, _ jellyfin.UpdateReason) error {
				assert.Equal(t, "ep-2", item.ID)
				num, ok := jellyfin.OrdinalValue(item.IndexNumber)
				require.True(t, ok)
				assert.Equal(t, int32(27), num)
				return nil
			})

		require.NoError(t, m.Merge(ctx))
	})

	t.Run("unresolved lookup keeps the stored number", func(t *testing.T) {
		cfg := testConfig()
		cfg.Merge = config.Merge{Refresh: false}
		m, mocks := newTestManager(t, cfg)

		first := episode("ep-1", 1, 1)
		restart := episode("ep-2", 2, 1)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(first, restart), nil)

		mocks.resolver.EXPECT().
			AbsoluteFromPrimary(gomock.Any(), "81920", "naruto", "tvdb-ep-2").
			Return(0, nil)
		mocks.resolver.EXPECT().
			AbsoluteFromSecondary(gomock.Any(), "tvdb-ep-2").
			Return(0, nil)

		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			DoAndReturn(func(_ context.Context, item jellyfin.BaseItem, _ jellyfin.UpdateReason) error {
				num, ok := jellyfin.OrdinalValue(item.IndexNumber)
				require.True(t, ok)
				assert.Equal(t, int32(1), num)
				return nil
			})

		require.NoError(t, m.Merge(ctx))
	})

	t.Run("a failed move blocks season deletion", func(t *testing.T) {
		m, mocks := newTestManager(t, testConfig())

		inPlace := episode("ep-1", 1, 1)
		second := episode("ep-2", 1, 2)
		failing := episode("ep-3", 2, 3)
		moving := episode("ep-4", 2, 4)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			Return(page(inPlace, second, failing, moving), nil)

		gomock.InOrder(
			mocks.jellyfin.EXPECT().
				UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
				Return(assert.AnError),
			mocks.jellyfin.EXPECT().
				UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
				Return(nil),
		)

		mocks.jellyfin.EXPECT().
			RefreshMetadata(gomock.Any(), "series-1", jellyfin.NonDestructiveRefresh()).
			Return(nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			Return(page(
				jellyfin.BaseItem{ID: "season-1", Name: "Season 1", IndexNumber: number(1)},
				jellyfin.BaseItem{ID: "season-2", Name: "Season 2", IndexNumber: number(2)},
			), nil)
		// no DeleteItem expectation: season 2 may still hold the failed episode

		require.NoError(t, m.Merge(ctx))
	})

	t.Run("renames the surviving season when configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Merge = config.Merge{Refresh: true, Rename: true, SeasonName: "All Episodes"}
		m, mocks := newTestManager(t, cfg)

		inPlace := episode("ep-1", 1, 1)
		moving := episode("ep-2", 2, 2)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(inPlace, moving), nil)
		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			Return(nil)

		mocks.jellyfin.EXPECT().
			RefreshMetadata(gomock.Any(), "series-1", jellyfin.NonDestructiveRefresh()).
			Return(nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			Return(page(
				jellyfin.BaseItem{ID: "season-1", Name: "Season 1", IndexNumber: number(1)},
				jellyfin.BaseItem{ID: "season-2", Name: "Season 2", IndexNumber: number(2)},
			), nil)
		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			DoAndReturn(func(_ context.Context, item jellyfin.BaseItem, _ jellyfin.UpdateReason) error {
				assert.Equal(t, "season-1", item.ID)
				assert.Equal(t, "All Episodes", item.Name)
				return nil
			})
		mocks.jellyfin.EXPECT().DeleteItem(gomock.Any(), "season-2").Return(nil)

		require.NoError(t, m.Merge(ctx))
	})

	t.Run("a matching season name is not rewritten", func(t *testing.T) {
		cfg := testConfig()
		cfg.Merge = config.Merge{Refresh: true, Rename: true, SeasonName: "Season 1"}
		m, mocks := newTestManager(t, cfg)

		inPlace := episode("ep-1", 1, 1)
		moving := episode("ep-2", 2, 2)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(inPlace, moving), nil)
		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			Return(nil)

		mocks.jellyfin.EXPECT().
			RefreshMetadata(gomock.Any(), "series-1", jellyfin.NonDestructiveRefresh()).
			Return(nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).
			Return(page(jellyfin.BaseItem{ID: "season-1", Name: "season 1", IndexNumber: number(1)}), nil)

		require.NoError(t, m.Merge(ctx))
	})

	t.Run("refresh disabled leaves containers alone", func(t *testing.T) {
		cfg := testConfig()
		cfg.Merge = config.Merge{Refresh: false, Rename: true, SeasonName: "Season 1"}
		m, mocks := newTestManager(t, cfg)

		inPlace := episode("ep-1", 1, 1)
		moving := episode("ep-2", 2, 2)

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(naruto), nil)
		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(page(inPlace, moving), nil)
		mocks.jellyfin.EXPECT().
			UpdateItem(gomock.Any(), gomock.Any(), jellyfin.UpdateReasonMetadataEdit).
			Return(nil)

		require.NoError(t, m.Merge(ctx))
	})
}
