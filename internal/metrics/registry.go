package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry holds the engine's instruments. Recording goes through the otel
// metric API; exporter wiring belongs to the embedding process.
type Registry struct {
	meter metric.Meter

	// Aggregation
	AggregationDuration metric.Float64Histogram
	RecordsAggregated   metric.Int64Counter

	// Compliance validation
	FindingCounter  metric.Int64Counter
	NonCompliantRun metric.Int64Counter

	// Disclosure assembly
	DisclosuresBuilt  metric.Int64Counter
	DisclosureFailure metric.Int64Counter
}

// NewRegistry creates a metrics registry for the disclosure engine.
func NewRegistry(meterName string) (*Registry, error) {
	meter := otel.Meter(meterName)
	r := &Registry{meter: meter}

	var err error

	r.AggregationDuration, err = meter.Float64Histogram(
		"emissions.aggregation.duration",
		metric.WithDescription("Time to aggregate a reporting period's records"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	r.RecordsAggregated, err = meter.Int64Counter(
		"emissions.aggregation.records",
		metric.WithDescription("Activity emission records aggregated"),
	)
	if err != nil {
		return nil, err
	}

	r.FindingCounter, err = meter.Int64Counter(
		"compliance.findings",
		metric.WithDescription("Compliance findings emitted, by status"),
	)
	if err != nil {
		return nil, err
	}

	r.NonCompliantRun, err = meter.Int64Counter(
		"compliance.non_compliant_runs",
		metric.WithDescription("Validation runs concluding non-compliance"),
	)
	if err != nil {
		return nil, err
	}

	r.DisclosuresBuilt, err = meter.Int64Counter(
		"disclosure.built",
		metric.WithDescription("Disclosure bundles assembled"),
	)
	if err != nil {
		return nil, err
	}

	r.DisclosureFailure, err = meter.Int64Counter(
		"disclosure.failures",
		metric.WithDescription("Disclosure assembly failures, by error code"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// RecordFindings counts findings by status for one validation run.
func (r *Registry) RecordFindings(ctx context.Context, status string, count int) {
	if count == 0 {
		return
	}
	r.FindingCounter.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("status", status)))
}

// RecordFailure counts one disclosure assembly failure by error code.
func (r *Registry) RecordFailure(ctx context.Context, code string) {
	r.DisclosureFailure.Add(ctx, 1,
		metric.WithAttributes(attribute.String("code", code)))
}
