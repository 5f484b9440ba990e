package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/daemon"
)

// TestCmd implements the 'test' command
// TestCmd 实现 'test' 命令
var TestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test configuration",
	// Short: 测试配置
	Long: `Validate the configuration file and resolve the port map without starting workers`,
	// Long: 验证配置文件并解析端口映射，不启动工作线程
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := daemon.TestConfiguration(cmd.Context(), config.GetConfigPath()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "[OK] Configuration test passed")
		return nil
	},
}

// InitCmd implements the 'init' command
// InitCmd 实现 'init' 命令
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	// Short: 初始化配置
	Long: `Write the default configuration file unless one already exists`,
	// Long: 写入默认配置文件（如已存在则跳过）
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()
		written, err := config.InitConfig(path)
		if err != nil {
			return err
		}
		if written {
			fmt.Fprintf(cmd.OutOrStdout(), "[OK] Configuration written to %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "[INFO] Configuration already exists at %s\n", path)
		}
		return nil
	},
}
