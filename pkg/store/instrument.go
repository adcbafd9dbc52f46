package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JaimeStill/promptcraft/pkg/lifecycle"
	"github.com/JaimeStill/promptcraft/pkg/metrics"
	"github.com/JaimeStill/promptcraft/pkg/query"
)

type instrumented struct {
	System
	metrics *metrics.Metrics
}

// Instrument wraps s so every Query and Exec is recorded in m.
func Instrument(s System, m *metrics.Metrics) System {
	return &instrumented{System: s, metrics: m}
}

func (i *instrumented) Query(ctx context.Context, stmt query.Statement) (json.RawMessage, error) {
	start := time.Now()
	data, err := i.System.Query(ctx, stmt)
	i.metrics.ObserveStore(i.Backend(), "query", start, err)
	return data, err
}

func (i *instrumented) Exec(ctx context.Context, stmt query.Statement) error {
	start := time.Now()
	err := i.System.Exec(ctx, stmt)
	i.metrics.ObserveStore(i.Backend(), "exec", start, err)
	return err
}

func (i *instrumented) Start(lc *lifecycle.Coordinator) error {
	return i.System.Start(lc)
}
