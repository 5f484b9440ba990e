package sdk

// Verdict is the decision stages leave on a packet.
type Verdict uint8

const (
	VerdictPass Verdict = iota
	VerdictDrop
	VerdictReject
)

// Packet is a captured frame travelling through one worker's chain.
// Packet 是在单个工作线程模块链中传递的抓取帧。
type Packet struct {
	Data    []byte
	InPort  int
	QueueID int
	Verdict Verdict

	// Layers is free-form per-stage state, e.g. decoded headers.
	Layers map[string]interface{}
}
