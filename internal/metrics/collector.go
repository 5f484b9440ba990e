package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Port map metrics
	PortMapEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dpdkintel_port_map_entries",
			Help: "Number of resolved port map entries",
		},
	)
	RxQueues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dpdkintel_rx_queues",
			Help: "Receive queues per live port",
		},
		[]string{"port"},
	)

	// Worker metrics
	Workers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dpdkintel_workers",
			Help: "Number of running workers",
		},
	)
)

// WorkerStats is the per-worker view the collector reads.
// WorkerStats 是采集器读取的单个工作线程统计视图。
type WorkerStats interface {
	Name() string
	Packets() uint64
	Errors() uint64
}

var (
	packetsDesc = prometheus.NewDesc(
		"dpdkintel_worker_packets_total",
		"Packets processed by a worker",
		[]string{"worker"}, nil,
	)
	errorsDesc = prometheus.NewDesc(
		"dpdkintel_worker_errors_total",
		"Packets dropped by a failing module",
		[]string{"worker"}, nil,
	)
)

// WorkerCollector exports the counters workers keep themselves.
// WorkerCollector 导出工作线程自身维护的计数器。
type WorkerCollector struct {
	workers []WorkerStats
}

// NewWorkerCollector creates a collector over a fixed fleet.
func NewWorkerCollector(workers []WorkerStats) *WorkerCollector {
	return &WorkerCollector{workers: workers}
}

func (c *WorkerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- packetsDesc
	ch <- errorsDesc
}

func (c *WorkerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, w := range c.workers {
		ch <- prometheus.MustNewConstMetric(packetsDesc, prometheus.CounterValue, float64(w.Packets()), w.Name())
		ch <- prometheus.MustNewConstMetric(errorsDesc, prometheus.CounterValue, float64(w.Errors()), w.Name())
	}
}
