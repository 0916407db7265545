package generator

import (
	"context"
	"time"

	"case-studio/metrics"
)

// Instrumented records Prometheus metrics around another Generator.
type Instrumented struct {
	next Generator
}

func NewInstrumented(next Generator) *Instrumented {
	return &Instrumented{next: next}
}

func (g *Instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	route := RouteFrom(ctx)

	inFlight := metrics.GenerationsInFlight.WithLabelValues(route)
	inFlight.Inc()
	defer inFlight.Dec()

	start := time.Now()
	out, err := g.next.Generate(ctx, prompt)
	metrics.GenerationDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GenerationRequests.WithLabelValues(route, "failure", string(Classify(err).Kind)).Inc()
		return "", err
	}
	metrics.GenerationRequests.WithLabelValues(route, "success", "").Inc()
	return out, nil
}
