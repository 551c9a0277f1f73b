package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kernel-lifecycle/internal/adapters"
	"kernel-lifecycle/internal/app"
	"kernel-lifecycle/internal/types"
)

type planOptions struct {
	Snapshot          string
	DpkgStatus        string
	AptExtendedStates string
	RunningKernel     string
	Flavor            string
	Output            string
	OutputFormat      string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan which installed kernels stay protected from autoremove",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	addPlanFlags(cmd, &opts)
	return cmd
}

// addPlanFlags registers the flags shared by plan and watch.
func addPlanFlags(cmd *cobra.Command, opts *planOptions) {
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Kernel snapshot YAML (instead of the dpkg database)")
	cmd.Flags().StringVar(&opts.DpkgStatus, "dpkg-status", adapters.DefaultDpkgStatusPath, "dpkg status file")
	cmd.Flags().StringVar(&opts.AptExtendedStates, "apt-extended-states", adapters.DefaultExtendedStatesPath, "apt extended_states file")
	cmd.Flags().StringVar(&opts.RunningKernel, "running-kernel", "", "Running kernel release (defaults to uname)")
	cmd.Flags().StringVar(&opts.Flavor, "flavor", string(types.DefaultKernelFlavor), "Kernel flavor")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write mark directives to this path")
	cmd.Flags().StringVar(&opts.OutputFormat, "output-format", string(adapters.DirectiveFormatYAML), "Directive format (yaml|script)")
	_ = viper.BindPFlag("snapshot", cmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("dpkg_status", cmd.Flags().Lookup("dpkg-status"))
	_ = viper.BindPFlag("apt_extended_states", cmd.Flags().Lookup("apt-extended-states"))
	_ = viper.BindPFlag("running_kernel", cmd.Flags().Lookup("running-kernel"))
	_ = viper.BindPFlag("kernel_flavor", cmd.Flags().Lookup("flavor"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output_format", cmd.Flags().Lookup("output-format"))
}

func planRequest(cmd *cobra.Command, opts planOptions) app.PlanRequest {
	return app.PlanRequest{
		Snapshot:          resolveString(cmd, opts.Snapshot, "snapshot", "snapshot"),
		DpkgStatus:        resolveString(cmd, opts.DpkgStatus, "dpkg_status", "dpkg-status"),
		AptExtendedStates: resolveString(cmd, opts.AptExtendedStates, "apt_extended_states", "apt-extended-states"),
		RunningKernel:     resolveString(cmd, opts.RunningKernel, "running_kernel", "running-kernel"),
		Flavor:            resolveString(cmd, opts.Flavor, "kernel_flavor", "flavor"),
		Output:            resolveString(cmd, opts.Output, "output", "output"),
		OutputFormat:      resolveString(cmd, opts.OutputFormat, "output_format", "output-format"),
	}
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.PlanRetention(ctx, planRequest(cmd, opts))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderPlan(out, result)
	if result.OutputPath != "" {
		fmt.Fprintf(out, "wrote %d directives to %s\n", len(result.Plan.Directives), result.OutputPath)
	}
	return nil
}
