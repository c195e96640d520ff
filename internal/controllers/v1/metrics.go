package v1

import (
	"github.com/goalsplit/backend/internal/allocation"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors of this API version. They are
// registered and unregistered by the router.
var Metrics = []prometheus.Collector{
	previewCount,
}

var previewCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "allocation_previews_total",
		Help: "How many budget previews were calculated, partitioned by result.",
	},
	[]string{"result"},
)

// countPreview records the outcome of a budget preview. Errors not coming
// from the allocation engine are counted as "error".
func countPreview(err error) {
	result := "ok"
	if err != nil {
		result = allocation.Kind(err)
		if result == "" {
			result = "error"
		}
	}

	previewCount.WithLabelValues(result).Inc()
}
