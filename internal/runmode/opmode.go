// Package runmode turns the dpdkintel configuration into a port map and
// builds the pinned worker fleet that consumes it.
// runmode 包将 dpdkintel 配置解析为端口映射，并构建消费这些端口的绑核工作线程。
package runmode

import "strings"

// OpMode is the operational mode of the capture front end.
// OpMode 是抓包前端的运行模式。
type OpMode int

const (
	// OpModeBypass forwards between paired ports without blocking.
	OpModeBypass OpMode = iota
	// OpModeIPS forwards between paired ports and may block.
	OpModeIPS
	// OpModeIDS only observes, nothing is forwarded.
	OpModeIDS
)

func (m OpMode) String() string {
	switch m {
	case OpModeIPS:
		return "ips"
	case OpModeIDS:
		return "ids"
	default:
		return "bypass"
	}
}

// Passive reports whether the mode never forwards traffic.
func (m OpMode) Passive() bool {
	return m == OpModeIDS
}

// ParseOpMode decodes dpdkintel.opmode. Only three-character tokens are
// compared, case-insensitively, against "ips" and "ids". Everything else,
// typos included, is bypass.
// ParseOpMode 解析 dpdkintel.opmode。仅比较长度为 3 的值（不区分大小写），
// 其他值（包括拼写错误）均视为 bypass。
func ParseOpMode(token string) OpMode {
	if len(token) != 3 {
		return OpModeBypass
	}
	switch {
	case strings.EqualFold(token, "ips"):
		return OpModeIPS
	case strings.EqualFold(token, "ids"):
		return OpModeIDS
	default:
		return OpModeBypass
	}
}
