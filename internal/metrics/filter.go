package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Filter pipeline Prometheus metrics.
var (
	FilterApplyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "filter_apply_duration_seconds",
			Help:      "Time spent deriving a filtered view",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"engine"},
	)

	FilterResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "filter_result_size",
			Help:      "Number of records left after filtering",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"engine"},
	)

	FilterMemoTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "filter_memo_total",
			Help:      "Filter memo lookups",
		},
		[]string{"engine", "result"}, // "hit" / "miss" / "bypass"
	)
)

var registerFilterOnce sync.Once

// RegisterFilterMetrics registers filter pipeline metrics. Safe to call more than once.
func RegisterFilterMetrics() {
	registerFilterOnce.Do(func() {
		prometheus.MustRegister(FilterApplyDuration)
		prometheus.MustRegister(FilterResultSize)
		prometheus.MustRegister(FilterMemoTotal)
	})
}

// MemoLookups returns the memo counter curried for one engine.
func MemoLookups(engine string) *prometheus.CounterVec {
	return FilterMemoTotal.MustCurryWith(prometheus.Labels{"engine": engine})
}

// ObserveFilter records one filter derivation.
func ObserveFilter(engine string, started time.Time, size int) {
	FilterApplyDuration.WithLabelValues(engine).Observe(time.Since(started).Seconds())
	FilterResultSize.WithLabelValues(engine).Observe(float64(size))
}
