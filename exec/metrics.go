package exec

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	batches prometheus.Counter
	rows    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &metrics{
		batches: factory.NewCounter(prometheus.CounterOpts{
			Name: "quarry_exec_batches_total",
			Help: "Number of batches pulled across all partitions.",
		}),
		rows: factory.NewCounter(prometheus.CounterOpts{
			Name: "quarry_exec_rows_total",
			Help: "Number of rows folded into aggregate state.",
		}),
	}
}
