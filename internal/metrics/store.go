package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

// StoreMetrics records state store activity.
type StoreMetrics struct {
	operations *prometheus.CounterVec
	cartItems  prometheus.Gauge
	saveTime   *prometheus.HistogramVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
// A nil registerer yields a recorder whose methods do nothing.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "State store operations by name and result.",
	}, []string{"operation", "result"})
	cartItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_items",
		Help: "Units currently in the cart.",
	})
	saveTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storage_save_seconds",
		Help:    "Duration of snapshot saves in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"driver"})
	reg.MustRegister(operations, cartItems, saveTime)
	return &StoreMetrics{
		operations: operations,
		cartItems:  cartItems,
		saveTime:   saveTime,
	}
}

// ObserveOperation counts one store operation.
func (m *StoreMetrics) ObserveOperation(operation string, err error) {
	if m == nil || m.operations == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.operations.WithLabelValues(normalizeLabel(operation), result).Inc()
}

// SetCartItems sets the cart unit gauge.
func (m *StoreMetrics) SetCartItems(n int) {
	if m == nil || m.cartItems == nil {
		return
	}
	m.cartItems.Set(float64(n))
}

// ObserveSave records a snapshot save; it satisfies storage.SaveObserver.
func (m *StoreMetrics) ObserveSave(driver string, d time.Duration, err error) {
	if m == nil || m.saveTime == nil {
		return
	}
	m.saveTime.WithLabelValues(normalizeLabel(driver)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
