package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kernel-lifecycle/internal/app"
)

type watchOptions struct {
	Plan       planOptions
	DebounceMs int
}

func newWatchCommand() *cobra.Command {
	opts := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-plan kernel retention whenever the package database changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd.Context(), cmd, opts)
		},
	}
	addPlanFlags(cmd, &opts.Plan)
	cmd.Flags().IntVar(&opts.DebounceMs, "debounce-ms", 500, "Quiet period before re-planning")
	_ = viper.BindPFlag("debounce_ms", cmd.Flags().Lookup("debounce-ms"))
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts watchOptions) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := newAppService()
	out := cmd.OutOrStdout()
	return service.Watch(ctx, app.WatchRequest{
		Plan:       planRequest(cmd, opts.Plan),
		DebounceMs: resolveInt(cmd, opts.DebounceMs, "debounce_ms", "debounce-ms"),
	}, func(result app.PlanResult) {
		renderPlan(out, result)
	})
}
