package storage

import (
	"context"
	"time"

	"github.com/dmehra/clinicdesk/pkg/metrics"
)

// InstrumentedStore wraps a Store with operation counters and latency
// histograms.
type InstrumentedStore struct {
	inner Store
	m     *metrics.Metrics
}

func Instrument(inner Store, m *metrics.Metrics) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, m: m}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.m.StorageOps.WithLabelValues(op, status).Inc()
	s.m.StorageLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) Load(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := s.inner.Load(ctx, key)
	s.observe("load", start, err)
	return v, ok, err
}

func (s *InstrumentedStore) Save(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.inner.Save(ctx, key, value)
	s.observe("save", start, err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *InstrumentedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *InstrumentedStore) Close() error {
	return s.inner.Close()
}
