package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	invoicesGenerated metric.Int64Counter
	paymentsRecorded  metric.Int64Counter
	planChanges       metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "railbill"
	}
	meter := provider.Meter(name)

	invoicesGenerated, err := meter.Int64Counter("railbill_invoices_generated_total")
	if err != nil {
		return nil, err
	}
	paymentsRecorded, err := meter.Int64Counter("railbill_payments_recorded_total")
	if err != nil {
		return nil, err
	}
	planChanges, err := meter.Int64Counter("railbill_plan_changes_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		invoicesGenerated: invoicesGenerated,
		paymentsRecorded:  paymentsRecorded,
		planChanges:       planChanges,
	}, nil
}

// RecordInvoiceGenerated increments invoice generation counts.
func (m *Metrics) RecordInvoiceGenerated(ctx context.Context, planKind, discountCode string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("plan_kind", strings.TrimSpace(planKind)),
		attribute.String("discount_code", strings.TrimSpace(discountCode)),
	)
	m.invoicesGenerated.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordPaymentRecorded increments payment counts.
func (m *Metrics) RecordPaymentRecorded(ctx context.Context) {
	if m == nil {
		return
	}
	m.paymentsRecorded.Add(ctx, 1)
}

// RecordPlanChange increments plan change counts.
func (m *Metrics) RecordPlanChange(ctx context.Context, fromPlan, toPlan string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("from_plan", strings.TrimSpace(fromPlan)),
		attribute.String("to_plan", strings.TrimSpace(toPlan)),
	)
	m.planChanges.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"plan_kind":     {},
	"discount_code": {},
	"from_plan":     {},
	"to_plan":       {},
	"event_type":    {},
}

// FilterAttributes drops labels outside the allow list so high-cardinality
// or personal fields never reach the exporter.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}
