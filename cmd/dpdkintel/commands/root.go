package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/runtime"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

var RootCmd = &cobra.Command{
	Use:   "dpdkintel",
	Short: "Port pairing and worker topology for the DPDK capture runmode",
	// Short: DPDK 抓包运行模式的端口配对与工作线程拓扑
	Long: `dpdkintel resolves the interface pairing configuration into a port map and
plans one pinned worker per receive queue.
dpdkintel 将接口配对配置解析为端口映射，并为每个接收队列规划一个绑核工作线程。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		globalCfg, err := config.LoadGlobalConfig(config.GetConfigPath())
		if err != nil {
			// If config fails to load, use default logging config (console only)
			// 如果加载配置失败，使用默认日志配置（仅控制台）
			logger.Init(logger.LoggingConfig{
				Enabled: true,
				Level:   "info",
			})
		} else {
			logger.Init(globalCfg.Logging)
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	RootCmd.AddCommand(TestCmd)
	RootCmd.AddCommand(PlanCmd)
	RootCmd.AddCommand(WorkersCmd)
	RootCmd.AddCommand(RunmodesCmd)
	RootCmd.AddCommand(InitCmd)
	RootCmd.AddCommand(VersionCmd)

	RootCmd.CompletionOptions.DisableDescriptions = true
}

// Execute runs the root command and exits non-zero on any error.
// Execute 运行根命令，出错时以非零状态退出。
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		_ = logger.Sync()
		os.Exit(apperrors.ExitCode(err))
	}
}

func formatError(err error) string {
	return fmt.Sprintf("[ERROR] %s: %v", apperrors.Class(err), err)
}
