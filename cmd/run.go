package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/animarr/animarr/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd executes several tasks back to back with one shared manager, so
// pages scraped by one task are reused by the next.
var runCmd = &cobra.Command{
	Use:       "run [classify|split|merge]...",
	Short:     "run tasks in order",
	Long:      `run the named tasks in order, sharing one scrape session; all three when none are named`,
	Args:      cobra.OnlyValidArgs,
	ValidArgs: []string{"classify", "split", "merge"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m, err := newManager()
		if err != nil {
			log.Fatal("failed to set up", zap.Error(err))
		}

		tasks := map[string]func(context.Context) error{
			"classify": m.Classify,
			"split":    m.Split,
			"merge":    m.Merge,
		}

		if len(args) == 0 {
			args = []string{"classify", "split", "merge"}
		}

		for _, name := range args {
			task, ok := tasks[name]
			if !ok {
				log.Fatal(fmt.Sprintf("unknown task: %s", name))
			}

			if err := task(ctx); err != nil {
				log.Fatal("task failed", zap.String("task", name), zap.Error(err))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
