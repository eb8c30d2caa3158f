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

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "tag anime episodes with canon/filler status",
	Long:  `tag anime episodes with canon/filler status`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m, err := newManager()
		if err != nil {
			log.Fatal("failed to set up", zap.Error(err))
		}

		if err := m.Classify(ctx); err != nil {
			log.Fatal("classify failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
