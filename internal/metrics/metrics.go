package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agriguru_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agriguru_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	AdviceRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agriguru_advice_total",
			Help: "Total number of advice blocks rendered by template kind",
		},
		[]string{"kind"},
	)

	CropClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agriguru_crop_classifications_total",
			Help: "Total number of crop image classifications by label",
		},
		[]string{"label"},
	)
)
