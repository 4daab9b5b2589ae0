package httplimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	promNamespace = "httplimit"

	endpointLabel = "http_endpoint"
)

var limitHitCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: promNamespace,
	Name:      "request_body_limit_hit_total",
	Help:      "The total number of request bodies that hit the configured length limit",
}, []string{endpointLabel})
