package cmd

import (
	"os"
	"strings"

	"github.com/animarr/animarr/pkg/filler"
	mhttp "github.com/animarr/animarr/pkg/http"
	"github.com/animarr/animarr/pkg/ordinal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animarr",
	Short: "anime library organizer",
	Long: `animarr enriches a Jellyfin library's anime series with canon/filler
tags and reorganizes season structure from externally-resolved episode
ordinals.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("ANIMARR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("jellyfin.uri", "http://localhost:8096")
	viper.SetDefault("jellyfin.apiKey", "")

	viper.SetDefault("scrape.primaryUri", ordinal.DefaultPrimaryURL)
	viper.SetDefault("scrape.secondaryUri", ordinal.DefaultSecondaryURL)
	viper.SetDefault("scrape.fillerUri", filler.DefaultSourceURL)
	viper.SetDefault("scrape.delayMs", int(mhttp.DefaultDelay.Milliseconds()))
	viper.SetDefault("scrape.userAgent", mhttp.DefaultUserAgent)

	viper.SetDefault("identify.mode", "genre")
	viper.SetDefault("identify.tag", "Anime")

	viper.SetDefault("split.refresh", true)

	viper.SetDefault("merge.refresh", true)
	viper.SetDefault("merge.rename", false)
	viper.SetDefault("merge.seasonName", "Season 1")
}
