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

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "split anime series into aired seasons",
	Long:  `split anime series into aired seasons`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m, err := newManager()
		if err != nil {
			log.Fatal("failed to set up", zap.Error(err))
		}

		if err := m.Split(ctx); err != nil {
			log.Fatal("split failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
