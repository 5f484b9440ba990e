package runmode

import (
	"fmt"

	"github.com/livp123/dpdkintel/internal/dpdk"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// EstimateWorkers sums the receive queues of every live port, one worker per
// queue. Ports missing from the port map are counted too.
// EstimateWorkers 统计所有实时端口的接收队列总数，每个队列一个工作线程。
// 未出现在端口映射中的端口同样计入。
func EstimateWorkers(src dpdk.PortSource) (int, error) {
	total := 0
	for port := 0; port < src.PortCount(); port++ {
		q, err := src.RxQueues(port)
		if err != nil {
			return 0, apperrors.NewResourceError(fmt.Sprintf("rx queues of port %d", port), err)
		}
		total += q
	}
	return total, nil
}
