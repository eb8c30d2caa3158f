package manager

import (
	"context"
	"fmt"
	"testing"

	"github.com/animarr/animarr/config"
	fillermock "github.com/animarr/animarr/pkg/filler/mocks"
	"github.com/animarr/animarr/pkg/jellyfin"
	jfmock "github.com/animarr/animarr/pkg/jellyfin/mocks"
	ordmock "github.com/animarr/animarr/pkg/ordinal/mocks"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	jellyfin *jfmock.MockClientInterface
	resolver *ordmock.MockResolver
	source   *fillermock.MockSource
}

func newTestManager(t *testing.T, cfg config.Config, opts ...Option) (Manager, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		jellyfin: jfmock.NewMockClientInterface(ctrl),
		resolver: ordmock.NewMockResolver(ctrl),
		source:   fillermock.NewMockSource(ctrl),
	}

	return New(m.jellyfin, m.resolver, m.source, cfg, opts...), m
}

func testConfig() config.Config {
	return config.Config{
		Identify: config.Identify{Mode: config.ModeGenre, Tag: "Anime"},
		Split:    config.Split{Refresh: true},
		Merge:    config.Merge{Refresh: true, Rename: true, SeasonName: "Season 1"},
	}
}

func page(items ...jellyfin.BaseItem) *jellyfin.ItemsResponse {
	return &jellyfin.ItemsResponse{Items: items, TotalRecordCount: int32(len(items))}
}

func number(v int32) nullable.Nullable[int32] {
	return nullable.NewNullableWithValue(v)
}

func TestAnimeSeries(t *testing.T) {
	ctx := context.Background()

	t.Run("filters the library to the anime subset", func(t *testing.T) {
		m, mocks := newTestManager(t, testConfig())

		anime := jellyfin.BaseItem{ID: "s1", Name: "Naruto", Genres: []string{"Anime", "Action"}}
		other := jellyfin.BaseItem{ID: "s2", Name: "The Office", Genres: []string{"Comedy"}}

		mocks.jellyfin.EXPECT().
			Items(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter jellyfin.ItemsFilter) (*jellyfin.ItemsResponse, error) {
				assert.Equal(t, []string{jellyfin.ItemTypeSeries}, filter.IncludeItemTypes)
				assert.True(t, filter.Recursive)
				assert.Contains(t, filter.Fields, "ProviderIds")
				return page(anime, other), nil
			})

		series, err := m.AnimeSeries(ctx)
		require.NoError(t, err)
		assert.Equal(t, []jellyfin.BaseItem{anime}, series)
	})

	t.Run("pages through large libraries", func(t *testing.T) {
		m, mocks := newTestManager(t, testConfig())

		first := make([]jellyfin.BaseItem, queryPageSize)
		for i := range first {
			first[i] = jellyfin.BaseItem{ID: fmt.Sprintf("s%d", i), Genres: []string{"Anime"}}
		}
		last := jellyfin.BaseItem{ID: "last", Genres: []string{"Anime"}}

		total := int32(queryPageSize + 1)
		mocks.jellyfin.EXPECT().
			Items(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter jellyfin.ItemsFilter) (*jellyfin.ItemsResponse, error) {
				assert.Equal(t, 0, filter.StartIndex)
				return &jellyfin.ItemsResponse{Items: first, TotalRecordCount: total}, nil
			})
		mocks.jellyfin.EXPECT().
			Items(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter jellyfin.ItemsFilter) (*jellyfin.ItemsResponse, error) {
				assert.Equal(t, queryPageSize, filter.StartIndex)
				return &jellyfin.ItemsResponse{Items: []jellyfin.BaseItem{last}, TotalRecordCount: total}, nil
			})

		series, err := m.AnimeSeries(ctx)
		require.NoError(t, err)
		assert.Len(t, series, queryPageSize+1)
	})

	t.Run("query failures surface", func(t *testing.T) {
		m, mocks := newTestManager(t, testConfig())

		mocks.jellyfin.EXPECT().Items(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := m.AnimeSeries(ctx)
		assert.Error(t, err)
	})
}
