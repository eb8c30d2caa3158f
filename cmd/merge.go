package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/animarr/animarr/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "merge anime series into a single season",
	Long:  `merge anime series into a single season`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m, err := newManager()
		if err != nil {
			log.Fatal("failed to set up", zap.Error(err))
		}

		if err := m.Merge(ctx); err != nil {
			log.Fatal("merge failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
