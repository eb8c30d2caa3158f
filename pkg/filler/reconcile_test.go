package filler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasStatus(t *testing.T) {
	t.Run("detects any status label", func(t *testing.T) {
		for _, status := range Statuses() {
			assert.True(t, HasStatus([]string{"Action", string(status)}))
		}
	})

	t.Run("ignores non-status tags", func(t *testing.T) {
		assert.False(t, HasStatus([]string{"Action", "filler", "Favorite"}))
		assert.False(t, HasStatus(nil))
	})
}

func TestReconcile(t *testing.T) {
	t.Run("applies status", func(t *testing.T) {
		got := Reconcile([]string{"Action", "Favorite"}, StatusFiller)
		assert.Equal(t, []string{"Action", "Favorite", "Filler"}, got)
	})

	t.Run("replaces old status", func(t *testing.T) {
		got := Reconcile([]string{"Manga Canon", "Action"}, StatusAnimeCanon)
		assert.Equal(t, []string{"Action", "Anime Canon"}, got)
	})

	t.Run("never yields two status labels", func(t *testing.T) {
		tags := []string{"Filler", "Mixed Canon/Filler", "Action", "Anime Canon"}
		got := Reconcile(tags, StatusMangaCanon)

		count := 0
		for _, tag := range got {
			if _, ok := ParseStatus(tag); ok {
				count++
			}
		}
		assert.Equal(t, 1, count)
		assert.Equal(t, []string{"Action", "Manga Canon"}, got)
	})

	t.Run("relabeling same status is idempotent", func(t *testing.T) {
		once := Reconcile([]string{"Action", "Filler"}, StatusFiller)
		twice := Reconcile(once, StatusFiller)
		assert.Equal(t, once, twice)
	})

	t.Run("empty status removes without adding", func(t *testing.T) {
		got := Reconcile([]string{"Filler", "Action"}, "")
		assert.Equal(t, []string{"Action"}, got)
	})

	t.Run("drops duplicate non-status tags", func(t *testing.T) {
		got := Reconcile([]string{"Action", "Action"}, StatusFiller)
		assert.Equal(t, []string{"Action", "Filler"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, []string{"Filler"}, Reconcile(nil, StatusFiller))
		assert.Empty(t, Reconcile(nil, ""))
	})
}
