package runmode

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/livp123/dpdkintel/internal/conftree"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

const (
	keySection       = "dpdkintel"
	keyOpMode        = "dpdkintel.opmode"
	keyInputs        = "dpdkintel.inputs"
	keyInterface     = "interface"
	keyCopyInterface = "copy-interface"
)

// PortMapEntry is one resolved pairing. OutPort is sdk.NoPort in IDS mode.
// PortMapEntry 是一个已解析的端口配对，IDS 模式下 OutPort 为 sdk.NoPort。
type PortMapEntry struct {
	InPort  int
	OutPort int
	RingID  int
}

func (e PortMapEntry) String() string {
	if e.OutPort == sdk.NoPort {
		return fmt.Sprintf("in=%d ring=%d", e.InPort, e.RingID)
	}
	return fmt.Sprintf("in=%d out=%d ring=%d", e.InPort, e.OutPort, e.RingID)
}

// PortMap lists pairings in resolution order. The index is not a port number.
// PortMap 按解析顺序列出端口配对，下标并非端口号。
type PortMap []PortMapEntry

// GlobalDpdkConfig is built once before any worker exists and only read afterwards.
// GlobalDpdkConfig 在任何工作线程存在之前构建一次，之后只读。
type GlobalDpdkConfig struct {
	Mode  OpMode
	Ports int
}

// pairing completion marker bits
const (
	inputSet  uint8 = 1 << 0
	outputSet uint8 = 1 << 1
)

type resolver struct {
	mode      OpMode
	inputs    *conftree.Node
	portTotal int

	state uint8
	seen  map[int]string
	pm    PortMap
}

// Resolve reads the dpdkintel section of root and pairs every device in
// enumeration order. The first problem aborts resolution and nothing is
// returned but the error.
// Resolve 读取 root 中的 dpdkintel 段，并按枚举顺序为每个设备配对。
// 遇到第一个问题即中止解析，只返回错误。
func Resolve(ctx context.Context, root *conftree.Node, devices []string, portTotal int) (*GlobalDpdkConfig, PortMap, error) {
	log := logger.Get(ctx)

	section := root.Child(keySection)
	if section == nil {
		return nil, nil, apperrors.NewConfigError(keySection, "section is missing")
	}
	token, ok := section.ChildValue("opmode")
	if !ok {
		return nil, nil, apperrors.NewConfigError(keyOpMode, "opmode is missing")
	}
	mode := ParseOpMode(token)
	if mode == OpModeBypass && !strings.EqualFold(token, "bypass") {
		log.Warnf("[WARN] Unrecognized opmode %q, falling back to %s", token, mode)
	}

	inputs := section.Child("inputs")
	if inputs == nil {
		return nil, nil, apperrors.NewConfigError(keyInputs, "inputs are missing")
	}

	r := &resolver{
		mode:      mode,
		inputs:    inputs,
		portTotal: portTotal,
		seen:      make(map[int]string, len(devices)),
	}
	for _, dev := range devices {
		if err := r.add(dev); err != nil {
			return nil, nil, err
		}
	}

	log.Infof("[CONF] dpdkintel opmode=%s, %d port(s) resolved", mode, len(r.pm))
	return &GlobalDpdkConfig{Mode: mode, Ports: len(r.pm)}, r.pm, nil
}

func (r *resolver) add(dev string) error {
	node := r.inputs.LookupKeyValue(keyInterface, dev)
	if node == nil {
		return apperrors.NewConfigError(keyInputs, "no entry for interface %q", dev)
	}

	in, err := r.portID(dev)
	if err != nil {
		return err
	}
	if prev, dup := r.seen[in]; dup {
		return apperrors.NewConfigError(keyInputs, "interface %q uses port %d already taken by %q", dev, in, prev)
	}
	r.state |= inputSet

	out := sdk.NoPort
	if !r.mode.Passive() {
		peer, ok := node.ChildValue(keyCopyInterface)
		if !ok {
			return apperrors.NewConfigError(keyInputs, "interface %q: %s is required in %s mode", dev, keyCopyInterface, r.mode)
		}
		if peer == dev {
			return apperrors.NewConfigError(keyInputs, "interface %q: %s must differ from the interface", dev, keyCopyInterface)
		}
		if out, err = r.portID(peer); err != nil {
			return err
		}
		if out == in {
			return apperrors.NewConfigError(keyInputs, "interface %q: %s %q is the same port", dev, keyCopyInterface, peer)
		}
		r.state |= outputSet
	}

	switch {
	case !r.mode.Passive() && r.state == inputSet|outputSet,
		r.mode.Passive() && r.state == inputSet:
		r.pm = append(r.pm, PortMapEntry{InPort: in, OutPort: out, RingID: len(r.pm)})
		r.seen[in] = dev
		r.state = 0
		return nil
	default:
		// Unreachable today: every path above sets its bits or returns.
		// 目前不可达：上面每条路径要么设置标记位，要么已经返回。
		return apperrors.NewConfigError(keyInputs, "interface %q: incomplete pairing (state %02b) in %s mode", dev, r.state, r.mode)
	}
}

// portID parses an interface name as a port id in [0, portTotal).
func (r *resolver) portID(name string) (int, error) {
	id, err := strconv.Atoi(name)
	if err != nil {
		return 0, apperrors.NewConfigError(keyInputs, "interface %q is not a port id", name)
	}
	if id < 0 || id >= r.portTotal {
		return 0, apperrors.NewConfigError(keyInputs, "port %d out of range [0, %d)", id, r.portTotal)
	}
	return id, nil
}
