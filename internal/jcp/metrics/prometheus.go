// Package metrics 提供 Prometheus 指标
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// 需要跟踪的指标
var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jcp_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"operation", "code"}, // operation 是路由模板，code 是 HTTP 状态码
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jcp_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	ProviderErrorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jcp_provider_errors_total",
			Help: "Total number of errors returned by the cloud provider",
		},
		[]string{"code"}, // code 是云端返回的错误代码
	)
)

var initOnce sync.Once

// Init 注册所有指标，重复调用只注册一次
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCount, RequestDuration, ProviderErrorCount)
	})
}
