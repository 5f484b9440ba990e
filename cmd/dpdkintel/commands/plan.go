package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/daemon"
	"github.com/livp123/dpdkintel/internal/dpdk"
	"github.com/livp123/dpdkintel/internal/runmode"
	"github.com/livp123/dpdkintel/internal/utils/fmtutil"
)

// PlanCmd implements the 'plan' command
// PlanCmd 实现 'plan' 命令
var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the port map and worker plan",
	// Short: 显示端口映射和工作线程规划
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := daemon.TestConfiguration(cmd.Context(), config.GetConfigPath())
		if err != nil {
			return err
		}
		showPlan(cmd.OutOrStdout(), plan)
		return nil
	},
}

// WorkersCmd implements the 'workers' command
// WorkersCmd 实现 'workers' 命令
var WorkersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Show the worker count estimated from live receive queues",
	// Short: 显示根据实时接收队列估算的工作线程数
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig(config.GetConfigPath())
		if err != nil {
			return err
		}
		src, err := dpdk.NewSource(cfg.Capture)
		if err != nil {
			return err
		}
		n, err := runmode.EstimateWorkers(src)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
		return nil
	},
}

// RunmodesCmd implements the 'runmodes' command
// RunmodesCmd 实现 'runmodes' 命令
var RunmodesCmd = &cobra.Command{
	Use:   "runmodes",
	Short: "List registered runmodes",
	// Short: 列出已注册的运行模式
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s %s\n", "Name", "Description")
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for _, m := range runmode.Modes() {
			name := m.Name
			if name == runmode.DefaultMode() {
				name += "*"
			}
			fmt.Fprintf(out, "%-10s %s\n", name, m.Description)
		}
	},
}

func showPlan(out io.Writer, plan *daemon.Plan) {
	fmt.Fprintf(out, "Runmode: %s, opmode: %s\n", plan.Mode.Name, plan.Config.Mode)
	fmt.Fprintf(out, "Cores: %s\n", fmtutil.FormatCores(plan.Cores))

	fmt.Fprintf(out, "\nPort map (%d):\n", len(plan.PortMap))
	fmt.Fprintf(out, "%-6s %-8s %-8s\n", "Ring", "In", "Out")
	fmt.Fprintln(out, strings.Repeat("-", 24))
	for _, e := range plan.PortMap {
		outPort := "-"
		if !plan.Config.Mode.Passive() {
			outPort = fmt.Sprintf("%d", e.OutPort)
		}
		fmt.Fprintf(out, "%-6d %-8d %-8s\n", e.RingID, e.InPort, outPort)
	}

	chain := make([]string, len(plan.Chain))
	for i, id := range plan.Chain {
		chain[i] = id.String()
	}
	fmt.Fprintf(out, "\nWorkers (%d): %s\n", plan.Workers, strings.Join(chain, " -> "))
	fmt.Fprintf(out, "%-18s %-5s %s\n", "Name", "CPU", "Binding")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for i, b := range plan.Bindings {
		fmt.Fprintf(out, "%-18s %-5d %s\n", plan.Names[i], plan.Cores[i], b)
	}
}
