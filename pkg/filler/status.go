// Package filler classifies anime episodes as canon or filler from a
// fan-maintained episode table and reconciles the resulting labels onto
// library tag sets.
package filler

// Status is one of the closed set of canon/filler labels. An episode's tag
// set carries at most one of them at a time.
type Status string

const (
	StatusMangaCanon Status = "Manga Canon"
	StatusMixed      Status = "Mixed Canon/Filler"
	StatusFiller     Status = "Filler"
	StatusAnimeCanon Status = "Anime Canon"
)

// Statuses lists every recognized label.
func Statuses() []Status {
	return []Status{StatusMangaCanon, StatusMixed, StatusFiller, StatusAnimeCanon}
}

// ParseStatus maps a table label cell to a Status. ok is false for any text
// outside the closed set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusMangaCanon, StatusMixed, StatusFiller, StatusAnimeCanon:
		return Status(s), true
	}
	return "", false
}
