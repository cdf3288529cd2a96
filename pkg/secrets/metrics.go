package secrets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tracks secret lookups across all instrumented clients.
var lookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "secret_lookups_total",
		Help: "Total number of secret lookups (by result).",
	},
	[]string{"result"},
)

// InstrumentedClient wraps a Client and counts lookups by result. Values and
// errors pass through untouched.
type InstrumentedClient struct {
	inner Client
}

var _ Client = (*InstrumentedClient)(nil)

// NewInstrumentedClient wraps inner with lookup metrics.
func NewInstrumentedClient(inner Client) *InstrumentedClient {
	return &InstrumentedClient{inner: inner}
}

func (c *InstrumentedClient) GetByKey(key string) (string, error) {
	secret, err := c.inner.GetByKey(key)
	if err != nil {
		lookupsTotal.WithLabelValues("miss").Inc()
		return "", err
	}
	lookupsTotal.WithLabelValues("hit").Inc()
	return secret, nil
}
