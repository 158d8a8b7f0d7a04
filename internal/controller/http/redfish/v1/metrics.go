package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeNotFound     = "not_found"
	outcomeNotSupported = "not_supported"
	outcomeError        = "error"
)

var networkPortRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "redfish",
	Name:      "network_port_requests_total",
	Help:      "NetworkPort resource requests by resource and outcome.",
}, []string{"resource", "outcome"})
