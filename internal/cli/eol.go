package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kernel-lifecycle/internal/adapters"
	"kernel-lifecycle/internal/app"
	"kernel-lifecycle/internal/core"
)

type eolOptions struct {
	Releases         string
	DistroInfo       string
	Codename         string
	OSRelease        string
	EarlyWarningDays int
}

func newEOLCommand() *cobra.Command {
	opts := eolOptions{}
	cmd := &cobra.Command{
		Use:   "eol",
		Short: "Check whether the distribution release is at or near end of life",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEOL(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Releases, "releases", "", "Release metadata YAML (instead of distro-info)")
	cmd.Flags().StringVar(&opts.DistroInfo, "distro-info", adapters.DefaultDistroInfoPath, "distro-info CSV")
	cmd.Flags().StringVar(&opts.Codename, "codename", "", "Release codename (defaults to os-release)")
	cmd.Flags().StringVar(&opts.OSRelease, "os-release", adapters.DefaultOSReleasePath, "os-release file")
	cmd.Flags().IntVar(&opts.EarlyWarningDays, "early-warning-days", core.DefaultEarlyWarningDays, "Warn this many days before end of life")
	_ = viper.BindPFlag("releases", cmd.Flags().Lookup("releases"))
	_ = viper.BindPFlag("distro_info", cmd.Flags().Lookup("distro-info"))
	_ = viper.BindPFlag("codename", cmd.Flags().Lookup("codename"))
	_ = viper.BindPFlag("os_release", cmd.Flags().Lookup("os-release"))
	_ = viper.BindPFlag("early_warning_days", cmd.Flags().Lookup("early-warning-days"))
	return cmd
}

func runEOL(ctx context.Context, cmd *cobra.Command, opts eolOptions) error {
	service := newAppService()
	result, err := service.DistroEOL(ctx, app.EOLRequest{
		Releases:         resolveString(cmd, opts.Releases, "releases", "releases"),
		DistroInfo:       resolveString(cmd, opts.DistroInfo, "distro_info", "distro-info"),
		Codename:         resolveString(cmd, opts.Codename, "codename", "codename"),
		OSRelease:        resolveString(cmd, opts.OSRelease, "os_release", "os-release"),
		EarlyWarningDays: resolveInt(cmd, opts.EarlyWarningDays, "early_warning_days", "early-warning-days"),
	})
	if err != nil {
		return err
	}
	renderEOL(cmd.OutOrStdout(), result)
	return nil
}
