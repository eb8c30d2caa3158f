package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// IdentificationMode selects how series are recognized as anime.
type IdentificationMode string

const (
	ModeGenre       IdentificationMode = "genre"
	ModeTag         IdentificationMode = "tag"
	ModeGenreOrTag  IdentificationMode = "genreortag"
	ModeGenreAndTag IdentificationMode = "genreandtag"
)

type Config struct {
	Jellyfin Jellyfin `json:"jellyfin" yaml:"jellyfin" mapstructure:"jellyfin"`
	Scrape   Scrape   `json:"scrape" yaml:"scrape" mapstructure:"scrape"`
	Identify Identify `json:"identify" yaml:"identify" mapstructure:"identify"`
	Split    Split    `json:"split" yaml:"split" mapstructure:"split"`
	Merge    Merge    `json:"merge" yaml:"merge" mapstructure:"merge"`
}

// Jellyfin points at the host library server.
type Jellyfin struct {
	URI    string `json:"uri" yaml:"uri" mapstructure:"uri" validate:"required,url"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
}

// Scrape configures the external ordinal and filler sources.
type Scrape struct {
	PrimaryURI   string `json:"primaryUri" yaml:"primaryUri" mapstructure:"primaryUri" validate:"omitempty,url"`
	SecondaryURI string `json:"secondaryUri" yaml:"secondaryUri" mapstructure:"secondaryUri" validate:"omitempty,url"`
	FillerURI    string `json:"fillerUri" yaml:"fillerUri" mapstructure:"fillerUri" validate:"omitempty,url"`
	DelayMs      int    `json:"delayMs" yaml:"delayMs" mapstructure:"delayMs" validate:"gte=0"`
	UserAgent    string `json:"userAgent" yaml:"userAgent" mapstructure:"userAgent"`
}

// Delay returns the configured inter-request delay. The floor is enforced
// by the throttled client, not here.
func (s Scrape) Delay() time.Duration {
	return time.Duration(s.DelayMs) * time.Millisecond
}

// Identify configures anime detection.
type Identify struct {
	Mode IdentificationMode `json:"mode" yaml:"mode" mapstructure:"mode" validate:"oneof=genre tag genreortag genreandtag"`
	Tag  string             `json:"tag" yaml:"tag" mapstructure:"tag" validate:"required"`
}

// Split configures the split-to-aired-seasons task.
type Split struct {
	Refresh bool `json:"refresh" yaml:"refresh" mapstructure:"refresh"`
}

// Merge configures the merge-to-single-season task.
type Merge struct {
	Refresh    bool   `json:"refresh" yaml:"refresh" mapstructure:"refresh"`
	Rename     bool   `json:"rename" yaml:"rename" mapstructure:"rename"`
	SeasonName string `json:"seasonName" yaml:"seasonName" mapstructure:"seasonName"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads and validates a configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	return c, err
}
