// Package metrics exposes the port map and the worker fleet to Prometheus.
// metrics 包向 Prometheus 暴露端口映射和工作线程的指标。
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/utils/logger"
)

// MetricsServer serves /metrics over HTTP.
// MetricsServer 通过 HTTP 提供 /metrics。
type MetricsServer struct {
	config   config.MetricsConfig
	gatherer prometheus.Gatherer
	server   *http.Server
	running  bool
	mu       sync.RWMutex
}

// NewMetricsServer creates a server over the default registry.
// NewMetricsServer 基于默认注册表创建指标服务器。
func NewMetricsServer(cfg config.MetricsConfig) *MetricsServer {
	return &MetricsServer{config: cfg, gatherer: prometheus.DefaultGatherer}
}

// IsRunning returns whether the server is running (thread-safe).
func (m *MetricsServer) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

func (m *MetricsServer) setRunning(running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = running
}

// Handler returns the /metrics mux.
func (m *MetricsServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Start starts the metrics server.
// Start 启动指标服务器。
func (m *MetricsServer) Start(ctx context.Context) error {
	if !m.config.Enabled {
		logger.Get(ctx).Infof("[METRICS] Metrics server is disabled via config.")
		return nil
	}

	m.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", m.config.Port),
		Handler:           m.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	m.setRunning(true)

	go func() {
		logger.Get(ctx).Infof("[METRICS] Metrics server starting on :%d", m.config.Port)
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get(ctx).Errorf("[ERROR] Metrics server error: %v", err)
			m.setRunning(false)
		}
	}()
	return nil
}

// Stop stops the metrics server.
// Stop 停止指标服务器。
func (m *MetricsServer) Stop() error {
	m.setRunning(false)
	if m.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return m.server.Shutdown(ctx)
	}
	return nil
}
