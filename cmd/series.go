package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/animarr/animarr/pkg/jellyfin"
	"github.com/animarr/animarr/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "list series identified as anime",
	Long:  `list series identified as anime under the configured identification mode`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m, err := newManager()
		if err != nil {
			log.Fatal("failed to set up", zap.Error(err))
		}

		series, err := m.AnimeSeries(ctx)
		if err != nil {
			log.Fatal("failed to list series", zap.Error(err))
		}

		for _, s := range series {
			fmt.Printf("%s\t%s\n", s.Name, s.ProviderID(jellyfin.ProviderTvdb))
		}
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}
