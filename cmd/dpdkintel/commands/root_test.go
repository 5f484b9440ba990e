package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livp123/dpdkintel/internal/version"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

const passiveConfig = `
runmode:
  cpus: "0"
capture:
  ports:
    - rx_queues: 1
dpdkintel:
  opmode: ids
  inputs:
    - interface: "0"
`

// executeCommand executes a cobra command and returns output.
// executeCommand 执行 cobra 命令并返回输出。
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dpdkintel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

// TestRootCommandHelp tests root command help output.
// TestRootCommandHelp 测试根命令帮助输出。
func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand(RootCmd, "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Available Commands:")
	for _, name := range []string{"test", "plan", "workers", "runmodes", "init", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestVersionCmd(t *testing.T) {
	output, err := executeCommand(RootCmd, "version")
	require.NoError(t, err)
	assert.Contains(t, output, version.Version)
}

func TestRunmodesCmd(t *testing.T) {
	output, err := executeCommand(RootCmd, "runmodes")
	require.NoError(t, err)
	assert.Contains(t, output, "workers*")
	assert.Contains(t, output, "Acquisition is done by separate core per interface")
}

func TestTestCmd(t *testing.T) {
	output, err := executeCommand(RootCmd, "test", "-c", writeConfig(t, passiveConfig))
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration test passed")
}

func TestTestCmdInvalid(t *testing.T) {
	doc := `
capture:
  ports:
    - rx_queues: 1
    - rx_queues: 1
dpdkintel:
  opmode: ips
  inputs:
    - interface: "0"
      copy-interface: "0"
    - interface: "1"
      copy-interface: "0"
`
	_, err := executeCommand(RootCmd, "test", "-c", writeConfig(t, doc))
	require.Error(t, err)
	assert.Equal(t, 1, apperrors.ExitCode(err))
	assert.Contains(t, formatError(err), "[ERROR] ConfigurationError:")
	assert.Contains(t, formatError(err), "copy-interface")
}

func TestPlanCmd(t *testing.T) {
	output, err := executeCommand(RootCmd, "plan", "-c", writeConfig(t, passiveConfig))
	require.NoError(t, err)
	assert.Contains(t, output, "opmode: ids")
	assert.Contains(t, output, "Port map (1)")
	assert.Contains(t, output, "Cores: 0\n")
	assert.Contains(t, output, "DPDK-WORKER-0")
	assert.Contains(t, output, "DpdkIntelReceive -> DpdkIntelDecode -> StreamTcp -> Detect -> RespondReject")
}

func TestWorkersCmd(t *testing.T) {
	doc := `
capture:
  ports:
    - rx_queues: 4
    - rx_queues: 2
dpdkintel:
  opmode: ids
  inputs: []
`
	output, err := executeCommand(RootCmd, "workers", "-c", writeConfig(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "6\n", output)
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "dpdkintel.yaml")

	output, err := executeCommand(RootCmd, "init", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, output, "written")
	_, err = os.Stat(path)
	require.NoError(t, err)

	output, err = executeCommand(RootCmd, "init", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, output, "already exists")
}

func TestMissingConfig(t *testing.T) {
	_, err := executeCommand(RootCmd, "test", "-c", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfigNotFound))
	assert.Contains(t, formatError(err), "ConfigurationError")
}
