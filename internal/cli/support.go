package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kernel-lifecycle/internal/adapters"
	"kernel-lifecycle/internal/app"
)

type supportOptions struct {
	Releases      string
	Codename      string
	OSRelease     string
	RunningKernel string
}

func newSupportCommand() *cobra.Command {
	opts := supportOptions{}
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Show estimated support windows of the release's kernel point releases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSupport(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Releases, "releases", "", "Release metadata YAML")
	cmd.Flags().StringVar(&opts.Codename, "codename", "", "Release codename (defaults to os-release)")
	cmd.Flags().StringVar(&opts.OSRelease, "os-release", adapters.DefaultOSReleasePath, "os-release file")
	cmd.Flags().StringVar(&opts.RunningKernel, "running-kernel", "", "Running kernel release (defaults to uname)")
	_ = viper.BindPFlag("releases", cmd.Flags().Lookup("releases"))
	_ = viper.BindPFlag("codename", cmd.Flags().Lookup("codename"))
	_ = viper.BindPFlag("os_release", cmd.Flags().Lookup("os-release"))
	_ = viper.BindPFlag("running_kernel", cmd.Flags().Lookup("running-kernel"))
	return cmd
}

func runSupport(ctx context.Context, cmd *cobra.Command, opts supportOptions) error {
	service := newAppService()
	result, err := service.SupportStatus(ctx, app.SupportRequest{
		Releases:      resolveString(cmd, opts.Releases, "releases", "releases"),
		Codename:      resolveString(cmd, opts.Codename, "codename", "codename"),
		OSRelease:     resolveString(cmd, opts.OSRelease, "os_release", "os-release"),
		RunningKernel: resolveString(cmd, opts.RunningKernel, "running_kernel", "running-kernel"),
	})
	if err != nil {
		return err
	}
	renderSupport(cmd.OutOrStdout(), result)
	return nil
}
